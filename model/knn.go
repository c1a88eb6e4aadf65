package model

/*
KNN (k vecinos más cercanos, voto mayoritario)

Mismo esquema que los Top-K de similitud del curso: distancia contra todo el
train, orden estable por (distancia, índice) y voto entre los k primeros.
Empates de voto: gana la clase con menor suma de distancias entre sus
vecinos; si persiste, el código de clase más bajo.
*/

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

type KNN struct {
	K      int
	Metric Metric

	trainX *mat.Dense
	trainY []int
}

func NewKNN(k int, m Metric) *KNN {
	return &KNN{K: k, Metric: m}
}

func (c *KNN) Name() string {
	return fmt.Sprintf("KNN(k=%d, %s)", c.K, c.Metric)
}

func (c *KNN) Fit(X *mat.Dense, y []int) error {
	rows, _ := X.Dims()
	if rows == 0 {
		return errors.New("knn: matriz de entrenamiento vacía")
	}
	if rows != len(y) {
		return fmt.Errorf("knn: %d filas vs %d etiquetas", rows, len(y))
	}
	c.trainX = X
	c.trainY = y
	return nil
}

func (c *KNN) Predict(X *mat.Dense) ([]int, error) {
	if c.trainX == nil {
		return nil, errors.New("knn: Predict antes de Fit")
	}
	nTrain, pTrain := c.trainX.Dims()
	rows, p := X.Dims()
	if p != pTrain {
		return nil, fmt.Errorf("knn: dimensión %d, se esperaba %d", p, pTrain)
	}

	k := c.K
	if k > nTrain {
		k = nTrain
	}

	type neighbor struct {
		idx  int
		dist float64
	}

	out := make([]int, rows)
	neighbors := make([]neighbor, nTrain)
	for i := 0; i < rows; i++ {
		x := X.RawRowView(i)
		for j := 0; j < nTrain; j++ {
			neighbors[j] = neighbor{idx: j, dist: c.Metric.Distance(x, c.trainX.RawRowView(j))}
		}
		sort.Slice(neighbors, func(a, b int) bool {
			if neighbors[a].dist != neighbors[b].dist {
				return neighbors[a].dist < neighbors[b].dist
			}
			return neighbors[a].idx < neighbors[b].idx
		})

		votes := make(map[int]int, k)
		distSum := make(map[int]float64, k)
		for _, nb := range neighbors[:k] {
			cls := c.trainY[nb.idx]
			votes[cls]++
			distSum[cls] += nb.dist
		}

		best, bestVotes, bestDist := -1, -1, 0.0
		for cls, v := range votes {
			d := distSum[cls]
			switch {
			case v > bestVotes,
				v == bestVotes && d < bestDist,
				v == bestVotes && d == bestDist && cls < best:
				best, bestVotes, bestDist = cls, v, d
			}
		}
		out[i] = best
	}
	return out, nil
}
