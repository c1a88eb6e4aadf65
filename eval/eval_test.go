package eval

import (
	"strings"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"tf/model"
)

// dos nubes bien separadas, 10 puntos por clase. Dos columnas para que el
// coseno tenga direcciones distintas tras estandarizar.
func syntheticConfig(workers int) Config {
	var f1, f2 []float64
	var y []int
	for i := 0; i < 10; i++ {
		j := float64(i) * 0.05
		f1 = append(f1, j)
		f2 = append(f2, j)
		y = append(y, 0)
	}
	for i := 0; i < 10; i++ {
		j := float64(i) * 0.05
		f1 = append(f1, 10+j)
		f2 = append(f2, 10+j)
		y = append(y, 1)
	}
	X := dataframe.New(
		series.New(f1, series.Float, "f1"),
		series.New(f2, series.Float, "f2"),
	)
	return Config{
		X:        X,
		Y:        y,
		NumCols:  []string{"f1", "f2"},
		K:        3,
		Folds:    5,
		TestFrac: 0.2,
		Seed:     42,
		Workers:  workers,
	}
}

func TestRunSequential(t *testing.T) {
	results, err := Run(syntheticConfig(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(model.Metrics) {
		t.Fatalf("resultados = %d, se esperaban %d", len(results), len(model.Metrics))
	}
	for i, r := range results {
		if r.Metric != model.Metrics[i] {
			t.Fatalf("resultado %d con métrica %s, se esperaba %s", i, r.Metric, model.Metrics[i])
		}
		// nubes tan separadas: KNN debe clasificar el test sin error
		if r.KNN.TestAcc != 1 {
			t.Fatalf("%s: KNN test-acc = %v", r.Metric, r.KNN.TestAcc)
		}
		for _, s := range []Scores{r.KNN, r.SVC} {
			for _, v := range []float64{s.CVAcc, s.TestAcc, s.TestF1} {
				if v < 0 || v > 1 {
					t.Fatalf("%s: puntaje fuera de [0,1]: %+v", r.Metric, s)
				}
			}
		}
	}
}

func TestRunWorkersMatchSequential(t *testing.T) {
	seq, err := Run(syntheticConfig(1))
	if err != nil {
		t.Fatalf("Run secuencial: %v", err)
	}
	par, err := Run(syntheticConfig(3))
	if err != nil {
		t.Fatalf("Run con workers: %v", err)
	}
	for i := range seq {
		if seq[i] != par[i] {
			t.Fatalf("métrica %s: %+v vs %+v", seq[i].Metric, seq[i], par[i])
		}
	}
}

func TestSummaryFormat(t *testing.T) {
	results, err := Run(syntheticConfig(1))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	out := Summary(results)
	for _, m := range model.Metrics {
		if !strings.Contains(out, "-- Métrica: "+string(m)+" --") {
			t.Fatalf("el resumen no contiene el bloque de %s:\n%s", m, out)
		}
	}
	if !strings.Contains(out, "cv-acc=") || !strings.Contains(out, "test-f1=") {
		t.Fatalf("resumen incompleto:\n%s", out)
	}
}
