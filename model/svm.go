package model

/*
SVC CON KERNEL RBF (SMO simplificado, multiclase uno-contra-uno)

- Kernel: K(a,b) = exp(-gamma * ||a-b||²); gamma=0 pide el modo "scale"
  de sklearn: 1 / (p * Var(X)).
- Entrenamiento: SMO simplificado por par de clases (C=1, tol=1e-3). La
  elección del segundo multiplicador es aleatoria y sale de la semilla,
  que es lo único estocástico del ajuste.
- Predicción: voto entre los C(n,2) clasificadores binarios; empate →
  código de clase más bajo. PredictProba expone la fracción de votos.
*/

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

type SVC struct {
	C           float64
	Gamma       float64 // 0 = "scale"
	Seed        int64
	Probability bool

	Tol       float64
	MaxPasses int

	gamma   float64
	classes []int
	pairs   []*binarySVM
}

// binarySVM guarda el resultado del SMO para un par (ci, cj): vectores de
// soporte, coeficientes alpha*y y el sesgo.
type binarySVM struct {
	ci, cj int
	sv     [][]float64
	coef   []float64
	b      float64
}

func NewSVC(seed int64) *SVC {
	return &SVC{
		C:           1.0,
		Gamma:       0, // scale
		Seed:        seed,
		Probability: true,
		Tol:         1e-3,
		MaxPasses:   5,
	}
}

func (s *SVC) Name() string { return "SVC(rbf)" }

func (s *SVC) Fit(X *mat.Dense, y []int) error {
	rows, p := X.Dims()
	if rows == 0 {
		return errors.New("svc: matriz de entrenamiento vacía")
	}
	if rows != len(y) {
		return fmt.Errorf("svc: %d filas vs %d etiquetas", rows, len(y))
	}

	s.gamma = s.Gamma
	if s.gamma == 0 {
		v := matVariance(X)
		if v == 0 {
			v = 1
		}
		s.gamma = 1.0 / (float64(p) * v)
	}

	uniq := make(map[int]struct{}, len(y))
	for _, cls := range y {
		uniq[cls] = struct{}{}
	}
	s.classes = make([]int, 0, len(uniq))
	for cls := range uniq {
		s.classes = append(s.classes, cls)
	}
	sort.Ints(s.classes)

	rng := rand.New(rand.NewSource(s.Seed))
	s.pairs = s.pairs[:0]
	for a := 0; a < len(s.classes); a++ {
		for bIdx := a + 1; bIdx < len(s.classes); bIdx++ {
			ci, cj := s.classes[a], s.classes[bIdx]
			bin := s.fitPair(X, y, ci, cj, rng)
			s.pairs = append(s.pairs, bin)
		}
	}
	return nil
}

// fitPair entrena el clasificador binario ci(+1) vs cj(-1).
func (s *SVC) fitPair(X *mat.Dense, y []int, ci, cj int, rng *rand.Rand) *binarySVM {
	var xs [][]float64
	var ys []float64
	rows, _ := X.Dims()
	for i := 0; i < rows; i++ {
		switch y[i] {
		case ci:
			xs = append(xs, X.RawRowView(i))
			ys = append(ys, 1)
		case cj:
			xs = append(xs, X.RawRowView(i))
			ys = append(ys, -1)
		}
	}
	n := len(xs)

	// matriz kernel del par (los datasets de este curso caben de sobra)
	K := make([][]float64, n)
	for i := range K {
		K[i] = make([]float64, n)
		for j := range K[i] {
			K[i][j] = s.rbf(xs[i], xs[j])
		}
	}

	alpha := make([]float64, n)
	b := 0.0
	f := func(i int) float64 {
		sum := b
		for j := 0; j < n; j++ {
			if alpha[j] != 0 {
				sum += alpha[j] * ys[j] * K[i][j]
			}
		}
		return sum
	}

	passes := 0
	for passes < s.MaxPasses {
		changed := 0
		for i := 0; i < n; i++ {
			Ei := f(i) - ys[i]
			if !((ys[i]*Ei < -s.Tol && alpha[i] < s.C) || (ys[i]*Ei > s.Tol && alpha[i] > 0)) {
				continue
			}
			j := rng.Intn(n - 1)
			if j >= i {
				j++
			}
			Ej := f(j) - ys[j]

			aiOld, ajOld := alpha[i], alpha[j]
			var L, H float64
			if ys[i] != ys[j] {
				L = math.Max(0, alpha[j]-alpha[i])
				H = math.Min(s.C, s.C+alpha[j]-alpha[i])
			} else {
				L = math.Max(0, alpha[i]+alpha[j]-s.C)
				H = math.Min(s.C, alpha[i]+alpha[j])
			}
			if L == H {
				continue
			}
			eta := 2*K[i][j] - K[i][i] - K[j][j]
			if eta >= 0 {
				continue
			}
			alpha[j] -= ys[j] * (Ei - Ej) / eta
			if alpha[j] > H {
				alpha[j] = H
			} else if alpha[j] < L {
				alpha[j] = L
			}
			if math.Abs(alpha[j]-ajOld) < 1e-5 {
				continue
			}
			alpha[i] += ys[i] * ys[j] * (ajOld - alpha[j])

			b1 := b - Ei - ys[i]*(alpha[i]-aiOld)*K[i][i] - ys[j]*(alpha[j]-ajOld)*K[i][j]
			b2 := b - Ej - ys[i]*(alpha[i]-aiOld)*K[i][j] - ys[j]*(alpha[j]-ajOld)*K[j][j]
			switch {
			case alpha[i] > 0 && alpha[i] < s.C:
				b = b1
			case alpha[j] > 0 && alpha[j] < s.C:
				b = b2
			default:
				b = (b1 + b2) / 2
			}
			changed++
		}
		if changed == 0 {
			passes++
		} else {
			passes = 0
		}
	}

	// conservar solo vectores de soporte (alpha > 0)
	bin := &binarySVM{ci: ci, cj: cj, b: b}
	for i := 0; i < n; i++ {
		if alpha[i] > 0 {
			bin.sv = append(bin.sv, xs[i])
			bin.coef = append(bin.coef, alpha[i]*ys[i])
		}
	}
	return bin
}

func (s *SVC) Predict(X *mat.Dense) ([]int, error) {
	votes, err := s.votes(X)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(votes))
	for i, v := range votes {
		best, bestVotes := -1, -1
		for _, cls := range s.classes {
			if v[cls] > bestVotes {
				best, bestVotes = cls, v[cls]
			}
		}
		out[i] = best
	}
	return out, nil
}

// PredictProba devuelve, por fila y clase (en el orden de Classes), la
// fracción de votos uno-contra-uno.
func (s *SVC) PredictProba(X *mat.Dense) ([][]float64, error) {
	votes, err := s.votes(X)
	if err != nil {
		return nil, err
	}
	total := float64(len(s.pairs))
	if total == 0 {
		total = 1
	}
	out := make([][]float64, len(votes))
	for i, v := range votes {
		probs := make([]float64, len(s.classes))
		for k, cls := range s.classes {
			probs[k] = float64(v[cls]) / total
		}
		out[i] = probs
	}
	return out, nil
}

// Classes expone los códigos de clase en el orden de PredictProba.
func (s *SVC) Classes() []int { return append([]int(nil), s.classes...) }

func (s *SVC) votes(X *mat.Dense) ([]map[int]int, error) {
	if len(s.pairs) == 0 && len(s.classes) == 0 {
		return nil, errors.New("svc: Predict antes de Fit")
	}
	rows, _ := X.Dims()
	votes := make([]map[int]int, rows)
	for i := 0; i < rows; i++ {
		x := X.RawRowView(i)
		v := make(map[int]int, len(s.classes))
		for _, bin := range s.pairs {
			if bin.decision(x, s.gamma) >= 0 {
				v[bin.ci]++
			} else {
				v[bin.cj]++
			}
		}
		// una sola clase en train: no hay pares, vota ella misma
		if len(s.pairs) == 0 {
			v[s.classes[0]]++
		}
		votes[i] = v
	}
	return votes, nil
}

func (bin *binarySVM) decision(x []float64, gamma float64) float64 {
	sum := bin.b
	for i, sv := range bin.sv {
		d := floats.Distance(sv, x, 2)
		sum += bin.coef[i] * math.Exp(-gamma*d*d)
	}
	return sum
}

func (s *SVC) rbf(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)
	return math.Exp(-s.gamma * d * d)
}

func matVariance(X *mat.Dense) float64 {
	rows, cols := X.Dims()
	n := float64(rows * cols)
	if n == 0 {
		return 0
	}
	var sum, sumSq float64
	for i := 0; i < rows; i++ {
		for _, v := range X.RawRowView(i) {
			sum += v
			sumSq += v * v
		}
	}
	mean := sum / n
	return sumSq/n - mean*mean
}
