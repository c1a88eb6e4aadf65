package eval

/*
EVALUACIÓN (cinco métricas × dos modelos)

- Hold-out estratificado 80/20 hecho UNA vez (semilla fija) y reutilizado
  por las cinco métricas y los dos modelos.
- Por métrica: KNN(k, métrica) y SVC(rbf), cada uno con
  {media de accuracy en 5-fold sobre el train, accuracy en test, F1
  ponderado en test}. El preprocesamiento se reajusta dentro de cada fold
  para no filtrar información del fold de validación.
- Con --workers > 1 las cinco configuraciones se reparten en un pool de
  workers por canal; el resumen sale igual en el orden de las métricas.
*/

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-gota/gota/dataframe"

	"tf/dataset"
	"tf/model"
	"tf/pipeline"
)

type Config struct {
	X        dataframe.DataFrame // features tras el filtro de clases raras
	Y        []int
	NumCols  []string
	CatCols  []string
	K        int
	Folds    int
	TestFrac float64
	Seed     int64
	Workers  int
}

// Scores son los tres números que se reportan por modelo.
type Scores struct {
	CVAcc   float64
	TestAcc float64
	TestF1  float64
}

type Result struct {
	Metric model.Metric
	KNN    Scores
	SVC    Scores
}

// Run ejecuta la evaluación completa y devuelve un resultado por métrica,
// en el orden de model.Metrics.
func Run(cfg Config) ([]Result, error) {
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	trainIdx, testIdx := dataset.StratifiedSplit(cfg.Y, cfg.TestFrac, cfg.Seed)
	xTrain := cfg.X.Subset(trainIdx)
	xTest := cfg.X.Subset(testIdx)
	yTrain := subsetInts(cfg.Y, trainIdx)
	yTest := subsetInts(cfg.Y, testIdx)

	results := make([]Result, len(model.Metrics))
	errs := make([]error, len(model.Metrics))

	job := func(i int) {
		m := model.Metrics[i]
		r := Result{Metric: m}

		knn := func() model.Classifier { return model.NewKNN(cfg.K, m) }
		svc := func() model.Classifier { return model.NewSVC(cfg.Seed) }

		var err error
		if r.KNN, err = evalModel(knn, cfg, xTrain, yTrain, xTest, yTest); err != nil {
			errs[i] = fmt.Errorf("métrica %s / KNN: %w", m, err)
			return
		}
		if r.SVC, err = evalModel(svc, cfg, xTrain, yTrain, xTest, yTest); err != nil {
			errs[i] = fmt.Errorf("métrica %s / SVC: %w", m, err)
			return
		}
		results[i] = r
	}

	if cfg.Workers == 1 {
		for i := range model.Metrics {
			job(i)
		}
	} else {
		jobs := make(chan int)
		var wg sync.WaitGroup
		for w := 0; w < cfg.Workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for i := range jobs {
					job(i)
				}
			}()
		}
		for i := range model.Metrics {
			jobs <- i
		}
		close(jobs)
		wg.Wait()
	}

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// evalModel corre CV sobre el train, ajusta con todo el train y evalúa en
// el test. build entrega un clasificador nuevo por cada ajuste.
func evalModel(build func() model.Classifier, cfg Config,
	xTrain dataframe.DataFrame, yTrain []int,
	xTest dataframe.DataFrame, yTest []int) (Scores, error) {

	cv, err := CrossVal(build, cfg, xTrain, yTrain)
	if err != nil {
		return Scores{}, err
	}

	pre := pipeline.New(cfg.NumCols, cfg.CatCols)
	mTrain, err := pre.FitTransform(xTrain)
	if err != nil {
		return Scores{}, err
	}
	clf := build()
	if err := clf.Fit(mTrain, yTrain); err != nil {
		return Scores{}, err
	}
	mTest, err := pre.Transform(xTest)
	if err != nil {
		return Scores{}, err
	}
	pred, err := clf.Predict(mTest)
	if err != nil {
		return Scores{}, err
	}

	return Scores{
		CVAcc:   cv,
		TestAcc: Accuracy(yTest, pred),
		TestF1:  WeightedF1(yTest, pred),
	}, nil
}

// CrossVal devuelve la media de accuracy del K-fold estratificado barajado
// sobre la partición de entrenamiento. El pipeline se ajusta dentro de cada
// fold, solo con los datos de ese fold-train.
func CrossVal(build func() model.Classifier, cfg Config,
	xTrain dataframe.DataFrame, yTrain []int) (float64, error) {

	folds := dataset.StratifiedKFold(yTrain, cfg.Folds, cfg.Seed)

	var sum float64
	var used int
	for f, valIdx := range folds {
		if len(valIdx) == 0 {
			continue
		}
		inVal := make(map[int]struct{}, len(valIdx))
		for _, i := range valIdx {
			inVal[i] = struct{}{}
		}
		fitIdx := make([]int, 0, len(yTrain)-len(valIdx))
		for i := range yTrain {
			if _, ok := inVal[i]; !ok {
				fitIdx = append(fitIdx, i)
			}
		}
		if len(fitIdx) == 0 {
			continue
		}

		pre := pipeline.New(cfg.NumCols, cfg.CatCols)
		mFit, err := pre.FitTransform(xTrain.Subset(fitIdx))
		if err != nil {
			return 0, fmt.Errorf("fold %d: %w", f, err)
		}
		clf := build()
		if err := clf.Fit(mFit, subsetInts(yTrain, fitIdx)); err != nil {
			return 0, fmt.Errorf("fold %d: %w", f, err)
		}
		mVal, err := pre.Transform(xTrain.Subset(valIdx))
		if err != nil {
			return 0, fmt.Errorf("fold %d: %w", f, err)
		}
		pred, err := clf.Predict(mVal)
		if err != nil {
			return 0, fmt.Errorf("fold %d: %w", f, err)
		}
		sum += Accuracy(subsetInts(yTrain, valIdx), pred)
		used++
	}
	if used == 0 {
		return 0, fmt.Errorf("cross-validation sin folds utilizables")
	}
	return sum / float64(used), nil
}

// Summary arma el bloque de resumen por métrica, en orden de iteración.
// El mismo texto va a consola y al reporte en artifacts/.
func Summary(results []Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "== RESUMEN DE EVALUACIÓN (KNN k-vecinos vs SVC rbf) ==\n")
	for _, r := range results {
		fmt.Fprintf(&b, "\n-- Métrica: %s --\n", r.Metric)
		fmt.Fprintf(&b, "  KNN   cv-acc=%.4f  test-acc=%.4f  test-f1=%.4f\n",
			r.KNN.CVAcc, r.KNN.TestAcc, r.KNN.TestF1)
		fmt.Fprintf(&b, "  SVC   cv-acc=%.4f  test-acc=%.4f  test-f1=%.4f\n",
			r.SVC.CVAcc, r.SVC.TestAcc, r.SVC.TestF1)
	}
	return b.String()
}

func subsetInts(y []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = y[j]
	}
	return out
}
