package dataset

/*
SPLIT ESTRATIFICADO (hold-out 80/20 + K-fold barajado)

- El hold-out se hace UNA sola vez con semilla fija y se reutiliza sin
  cambios para las cinco métricas y los dos modelos: así el efecto
  métrica/modelo queda aislado de la varianza del split.
- El K-fold reparte cada clase por separado (barajada con la misma semilla)
  en round-robin: una clase con menos ejemplares que folds simplemente no
  aparece en algunos folds, nunca revienta.
*/

import (
	"math"
	"math/rand"
	"sort"
)

// StratifiedSplit devuelve índices (train, test) preservando la proporción
// de cada clase. Garantiza ≥1 ejemplar por clase en cada lado, por eso las
// clases de un solo miembro deben excluirse antes (FilterRareClasses).
func StratifiedSplit(y []int, testFrac float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))

	byClass := groupByClass(y)
	for _, cls := range sortedClasses(byClass) {
		idx := byClass[cls]
		perm := rng.Perm(len(idx))

		nTest := int(math.Round(testFrac * float64(len(idx))))
		if nTest < 1 {
			nTest = 1
		}
		if nTest > len(idx)-1 {
			nTest = len(idx) - 1
		}
		for k, p := range perm {
			if k < nTest {
				test = append(test, idx[p])
			} else {
				train = append(train, idx[p])
			}
		}
	}
	sort.Ints(train)
	sort.Ints(test)
	return train, test
}

// StratifiedKFold reparte los índices en k folds estratificados y barajados.
// Los folds son disjuntos y su unión cubre todos los índices.
func StratifiedKFold(y []int, k int, seed int64) [][]int {
	rng := rand.New(rand.NewSource(seed))
	folds := make([][]int, k)

	byClass := groupByClass(y)
	offset := 0
	for _, cls := range sortedClasses(byClass) {
		idx := byClass[cls]
		perm := rng.Perm(len(idx))
		for j, p := range perm {
			f := (offset + j) % k
			folds[f] = append(folds[f], idx[p])
		}
		// desfasar el round-robin para no cargar siempre el fold 0
		offset = (offset + len(idx)) % k
	}
	for _, f := range folds {
		sort.Ints(f)
	}
	return folds
}

func groupByClass(y []int) map[int][]int {
	byClass := make(map[int][]int)
	for i, cls := range y {
		byClass[cls] = append(byClass[cls], i)
	}
	return byClass
}

func sortedClasses(byClass map[int][]int) []int {
	classes := make([]int, 0, len(byClass))
	for cls := range byClass {
		classes = append(classes, cls)
	}
	sort.Ints(classes)
	return classes
}
