package dataset

import (
	"reflect"
	"sort"
	"testing"
)

// y sintético: clase 0 × 10, clase 1 × 5, clase 2 × 2.
func sampleY() []int {
	var y []int
	for i := 0; i < 10; i++ {
		y = append(y, 0)
	}
	for i := 0; i < 5; i++ {
		y = append(y, 1)
	}
	y = append(y, 2, 2)
	return y
}

func TestStratifiedSplitCoversAndPreserves(t *testing.T) {
	y := sampleY()
	train, test := StratifiedSplit(y, 0.2, 42)

	if len(train)+len(test) != len(y) {
		t.Fatalf("train+test = %d, se esperaba %d", len(train)+len(test), len(y))
	}
	seen := map[int]bool{}
	for _, i := range append(append([]int{}, train...), test...) {
		if seen[i] {
			t.Fatalf("índice %d repetido entre particiones", i)
		}
		seen[i] = true
	}

	// toda clase aparece en ambos lados, incluso la de 2 miembros
	for _, side := range [][]int{train, test} {
		got := map[int]int{}
		for _, i := range side {
			got[y[i]]++
		}
		for cls := 0; cls <= 2; cls++ {
			if got[cls] == 0 {
				t.Fatalf("clase %d ausente en una partición: %v", cls, got)
			}
		}
	}

	// proporciones aproximadas: clase 0 → 2 en test, clase 1 → 1, clase 2 → 1
	testCounts := map[int]int{}
	for _, i := range test {
		testCounts[y[i]]++
	}
	if testCounts[0] != 2 || testCounts[1] != 1 || testCounts[2] != 1 {
		t.Fatalf("conteos de test por clase = %v", testCounts)
	}
}

func TestStratifiedSplitDeterministic(t *testing.T) {
	y := sampleY()
	train1, test1 := StratifiedSplit(y, 0.2, 7)
	train2, test2 := StratifiedSplit(y, 0.2, 7)
	if !reflect.DeepEqual(train1, train2) || !reflect.DeepEqual(test1, test2) {
		t.Fatalf("misma semilla produjo splits distintos")
	}
}

func TestStratifiedKFoldPartition(t *testing.T) {
	y := sampleY()
	folds := StratifiedKFold(y, 5, 42)

	if len(folds) != 5 {
		t.Fatalf("folds = %d", len(folds))
	}
	var all []int
	for _, f := range folds {
		all = append(all, f...)
	}
	sort.Ints(all)
	if len(all) != len(y) {
		t.Fatalf("la unión de folds tiene %d índices, se esperaban %d", len(all), len(y))
	}
	for i := 1; i < len(all); i++ {
		if all[i] == all[i-1] {
			t.Fatalf("índice %d repetido entre folds", all[i])
		}
	}

	// la clase de 2 miembros cae en exactamente 2 folds, sin error
	foldsWithCls2 := 0
	for _, f := range folds {
		for _, i := range f {
			if y[i] == 2 {
				foldsWithCls2++
				break
			}
		}
	}
	if foldsWithCls2 != 2 {
		t.Fatalf("la clase rara aparece en %d folds, se esperaban 2", foldsWithCls2)
	}
}
