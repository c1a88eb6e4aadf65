package eval

// Accuracy es la fracción de predicciones correctas.
func Accuracy(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}
	hits := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			hits++
		}
	}
	return float64(hits) / float64(len(yTrue))
}

// WeightedF1 promedia el F1 por clase ponderado por la frecuencia de cada
// clase en yTrue (el "weighted" de sklearn).
func WeightedF1(yTrue, yPred []int) float64 {
	if len(yTrue) == 0 {
		return 0
	}

	support := make(map[int]int)
	tp := make(map[int]int)
	fp := make(map[int]int)
	fn := make(map[int]int)
	for i := range yTrue {
		support[yTrue[i]]++
		if yTrue[i] == yPred[i] {
			tp[yTrue[i]]++
		} else {
			fn[yTrue[i]]++
			fp[yPred[i]]++
		}
	}

	total := float64(len(yTrue))
	var weighted float64
	for cls, sup := range support {
		var precision, recall, f1 float64
		if tp[cls]+fp[cls] > 0 {
			precision = float64(tp[cls]) / float64(tp[cls]+fp[cls])
		}
		if tp[cls]+fn[cls] > 0 {
			recall = float64(tp[cls]) / float64(tp[cls]+fn[cls])
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		weighted += f1 * float64(sup) / total
	}
	return weighted
}
