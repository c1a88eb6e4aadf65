package model

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func threeClusters() (*mat.Dense, []int) {
	data := []float64{
		0, 0,
		0.3, 0.1,
		0.1, 0.3,
		8, 0,
		8.2, 0.1,
		8.1, 0.3,
		0, 8,
		0.2, 8.1,
		0.1, 8.3,
	}
	return mat.NewDense(9, 2, data), []int{0, 0, 0, 1, 1, 1, 2, 2, 2}
}

func TestSVCSeparableBinary(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{0, 0.5, 9.5, 10})
	y := []int{0, 0, 1, 1}

	clf := NewSVC(42)
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}
	pred, err := clf.Predict(mat.NewDense(2, 1, []float64{0.2, 9.8}))
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	if pred[0] != 0 || pred[1] != 1 {
		t.Fatalf("predicciones = %v", pred)
	}
}

func TestSVCMulticlass(t *testing.T) {
	X, y := threeClusters()
	clf := NewSVC(42)
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	pred, err := clf.Predict(X)
	if err != nil {
		t.Fatalf("Predict: %v", err)
	}
	for i := range y {
		if pred[i] != y[i] {
			t.Fatalf("fila %d: predijo %d, se esperaba %d", i, pred[i], y[i])
		}
	}
}

func TestSVCPredictProba(t *testing.T) {
	X, y := threeClusters()
	clf := NewSVC(42)
	if err := clf.Fit(X, y); err != nil {
		t.Fatalf("Fit: %v", err)
	}

	probs, err := clf.PredictProba(X)
	if err != nil {
		t.Fatalf("PredictProba: %v", err)
	}
	classes := clf.Classes()
	if len(classes) != 3 {
		t.Fatalf("clases = %v", classes)
	}
	for i, row := range probs {
		var sum float64
		for _, p := range row {
			if p < 0 || p > 1 {
				t.Fatalf("fila %d: proporción fuera de [0,1]: %v", i, row)
			}
			sum += p
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("fila %d: las proporciones suman %v", i, sum)
		}
	}
}

func TestSVCDeterministic(t *testing.T) {
	X, y := threeClusters()

	run := func() []int {
		clf := NewSVC(7)
		if err := clf.Fit(X, y); err != nil {
			t.Fatalf("Fit: %v", err)
		}
		pred, err := clf.Predict(X)
		if err != nil {
			t.Fatalf("Predict: %v", err)
		}
		return pred
	}

	p1, p2 := run(), run()
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("misma semilla, predicciones distintas en fila %d", i)
		}
	}
}

func TestSVCErrors(t *testing.T) {
	clf := NewSVC(1)
	if _, err := clf.Predict(mat.NewDense(1, 2, nil)); err == nil {
		t.Fatalf("Predict sin Fit debía fallar")
	}
	if err := clf.Fit(mat.NewDense(2, 2, nil), []int{0}); err == nil {
		t.Fatalf("Fit con tamaños inconsistentes debía fallar")
	}
}
