package model

import (
	"math"
	"testing"
)

func TestDistances(t *testing.T) {
	a := []float64{0, 0}
	b := []float64{3, 4}

	cases := []struct {
		metric Metric
		want   float64
	}{
		{Euclidean, 5},
		{Manhattan, 7},
		{Chebyshev, 4},
		{Minkowski, math.Pow(27+64, 1.0/3.0)},
	}
	for _, c := range cases {
		if got := c.metric.Distance(a, b); math.Abs(got-c.want) > 1e-12 {
			t.Fatalf("%s(a,b) = %v, se esperaba %v", c.metric, got, c.want)
		}
	}
}

func TestCosineDistance(t *testing.T) {
	// ortogonales → 1; colineales → 0; vector nulo → 1 (guarda)
	if got := Cosine.Distance([]float64{1, 0}, []float64{0, 1}); math.Abs(got-1) > 1e-12 {
		t.Fatalf("ortogonales: %v", got)
	}
	if got := Cosine.Distance([]float64{1, 0}, []float64{2, 0}); math.Abs(got) > 1e-12 {
		t.Fatalf("colineales: %v", got)
	}
	if got := Cosine.Distance([]float64{0, 0}, []float64{1, 1}); got != 1 {
		t.Fatalf("vector nulo: %v", got)
	}
}

func TestMetricOrder(t *testing.T) {
	// el orden de iteración es el del diccionario original
	want := []Metric{Euclidean, Manhattan, Cosine, Chebyshev, Minkowski}
	if len(Metrics) != len(want) {
		t.Fatalf("métricas = %v", Metrics)
	}
	for i := range want {
		if Metrics[i] != want[i] {
			t.Fatalf("Metrics[%d] = %s, se esperaba %s", i, Metrics[i], want[i])
		}
	}
}
