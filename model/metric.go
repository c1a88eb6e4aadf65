package model

/*
MÉTRICAS DE DISTANCIA

Las cinco métricas que recorre la evaluación. Las normas L1/L2/L3/L∞ se
delegan a gonum (floats.Distance); el coseno se arma con Dot/Norm porque es
una similitud convertida a distancia (1 - cos) con guarda para vectores nulos.
*/

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

type Metric string

const (
	Euclidean Metric = "euclidean"
	Manhattan Metric = "manhattan"
	Cosine    Metric = "cosine"
	Chebyshev Metric = "chebyshev"
	Minkowski Metric = "minkowski" // orden 3
)

// Metrics fija el orden de iteración de la evaluación (y del resumen final).
var Metrics = []Metric{Euclidean, Manhattan, Cosine, Chebyshev, Minkowski}

// Distance calcula la distancia entre dos vectores de igual longitud.
func (m Metric) Distance(a, b []float64) float64 {
	switch m {
	case Euclidean:
		return floats.Distance(a, b, 2)
	case Manhattan:
		return floats.Distance(a, b, 1)
	case Chebyshev:
		return floats.Distance(a, b, math.Inf(1))
	case Minkowski:
		return floats.Distance(a, b, 3)
	case Cosine:
		na := floats.Norm(a, 2)
		nb := floats.Norm(b, 2)
		if na == 0 || nb == 0 {
			// vector nulo: sin dirección definida, distancia máxima
			return 1
		}
		return 1 - floats.Dot(a, b)/(na*nb)
	}
	panic("métrica desconocida: " + string(m))
}
