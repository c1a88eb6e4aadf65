package model

import "gonum.org/v1/gonum/mat"

// Classifier es el contrato mínimo que comparten KNN y SVC: ajustar con una
// matriz densa ya preprocesada y predecir códigos de clase.
type Classifier interface {
	Fit(X *mat.Dense, y []int) error
	Predict(X *mat.Dense) ([]int, error)
	Name() string
}
