package dataset

import (
	"math"
	"reflect"
	"testing"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

func makeDF(records [][]string) dataframe.DataFrame {
	return dataframe.LoadRecords(records,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}

func TestDedupIdempotent(t *testing.T) {
	df := makeDF([][]string{
		{"Name", "Zone"},
		{"Taj Mahal", "Northern"},
		{"Taj Mahal", "Northern"},
		{"Gateway of India", "Western"},
		{"Taj Mahal", "Northern"},
	})

	once := Dedup(df)
	if once.Nrow() != 2 {
		t.Fatalf("tras deduplicar se esperaban 2 filas, hay %d", once.Nrow())
	}
	twice := Dedup(once)
	if twice.Nrow() != once.Nrow() {
		t.Fatalf("dedup no es idempotente: %d vs %d filas", twice.Nrow(), once.Nrow())
	}
	// la primera aparición conserva el orden
	names := twice.Col("Name").Records()
	if names[0] != "Taj Mahal" || names[1] != "Gateway of India" {
		t.Fatalf("orden inesperado tras dedup: %v", names)
	}
}

func TestDropIndexColumn(t *testing.T) {
	withIdx := makeDF([][]string{
		{"Unnamed: 0", "Name"},
		{"0", "Taj Mahal"},
	})
	got := DropIndexColumn(withIdx)
	if len(got.Names()) != 1 || got.Names()[0] != "Name" {
		t.Fatalf("no se eliminó la columna índice: %v", got.Names())
	}

	// solo se elimina cuando es la PRIMERA columna
	middle := makeDF([][]string{
		{"Name", "Unnamed: 0"},
		{"Taj Mahal", "0"},
	})
	got = DropIndexColumn(middle)
	if len(got.Names()) != 2 {
		t.Fatalf("se eliminó una columna que no era la primera: %v", got.Names())
	}
}

func TestMapBinaryTotal(t *testing.T) {
	df := makeDF([][]string{
		{ColAirport, ColDSLR},
		{"Yes", "No"},
		{"No", "Yes"},
		{"yes", "tal vez"}, // fuera de {"Yes","No"}: faltante, no error
		{"", "42"},
	})
	got := MapBinary(df)

	airport := got.Col(ColAirport).Float()
	dslr := got.Col(ColDSLR).Float()
	wantAirport := []float64{1, 0, math.NaN(), math.NaN()}
	wantDSLR := []float64{0, 1, math.NaN(), math.NaN()}
	for i := range wantAirport {
		if !sameFloat(airport[i], wantAirport[i]) {
			t.Fatalf("airport[%d] = %v, se esperaba %v", i, airport[i], wantAirport[i])
		}
		if !sameFloat(dslr[i], wantDSLR[i]) {
			t.Fatalf("dslr[%d] = %v, se esperaba %v", i, dslr[i], wantDSLR[i])
		}
	}
}

func TestCleanYear(t *testing.T) {
	df := makeDF([][]string{
		{ColYear},
		{"1632"},
		{"Unknown"},
		{"unknown123"},
		{"-300"}, // error de digitación, no fecha a.C.
		{"1986.0"},
	})
	got := CleanYear(df).Col(ColYear).Float()

	want := []float64{1632, math.NaN(), math.NaN(), math.NaN(), 1986}
	for i := range want {
		if !sameFloat(got[i], want[i]) {
			t.Fatalf("year[%d] = %v, se esperaba %v", i, got[i], want[i])
		}
		if !math.IsNaN(got[i]) && got[i] < 0 {
			t.Fatalf("year[%d] = %v: sobrevivió un valor negativo", i, got[i])
		}
	}
}

func TestCoerceNumeric(t *testing.T) {
	df := makeDF([][]string{
		{ColHours, ColRating, ColFee, ColReviews},
		{"2.5", "4.7", "no aplica", "0.3"},
	})
	got := CoerceNumeric(df)
	if v := got.Col(ColHours).Float()[0]; v != 2.5 {
		t.Fatalf("hours = %v", v)
	}
	if v := got.Col(ColFee).Float()[0]; !math.IsNaN(v) {
		t.Fatalf("fee malformado debía ser NaN, es %v", v)
	}
}

func TestFilterRareClasses(t *testing.T) {
	df := makeDF([][]string{
		{ColName, ColType},
		{"a", "Temple"},
		{"b", "Temple"},
		{"c", "Temple"},
		{"d", "Fort"},
		{"e", "Fort"},
		{"f", "Observatory"}, // un solo ejemplar
	})

	got, excluded := FilterRareClasses(df)
	if !reflect.DeepEqual(excluded, []string{"Observatory"}) {
		t.Fatalf("excluidas = %v", excluded)
	}

	counts := map[string]int{}
	for _, l := range got.Col(ColType).Records() {
		counts[l]++
	}
	for cls, c := range counts {
		if c < 2 {
			t.Fatalf("la clase %q quedó con %d ejemplar(es)", cls, c)
		}
	}
	if got.Nrow() != 5 {
		t.Fatalf("quedaron %d filas, se esperaban 5", got.Nrow())
	}
}

func TestFilterRareClassesNoRare(t *testing.T) {
	df := makeDF([][]string{
		{ColName, ColType},
		{"a", "Temple"},
		{"b", "Temple"},
	})
	got, excluded := FilterRareClasses(df)
	if len(excluded) != 0 {
		t.Fatalf("no debía excluir nada: %v", excluded)
	}
	if got.Nrow() != 2 {
		t.Fatalf("filas = %d", got.Nrow())
	}
}

func TestEncodeLabels(t *testing.T) {
	y, classes := EncodeLabels([]string{"Fort", "Temple", "Fort", "Beach"})
	if !reflect.DeepEqual(classes, []string{"Beach", "Fort", "Temple"}) {
		t.Fatalf("clases = %v", classes)
	}
	if !reflect.DeepEqual(y, []int{1, 2, 1, 0}) {
		t.Fatalf("códigos = %v", y)
	}
}

func TestDistinctValues(t *testing.T) {
	df := makeDF([][]string{
		{ColZone},
		{"Northern"},
		{"Southern"},
		{"Northern"},
		{""},
		{"NaN"},
	})
	got := DistinctValues(df, ColZone)
	if !reflect.DeepEqual(got, []string{"Northern", "Southern"}) {
		t.Fatalf("distintos = %v", got)
	}
}

func sameFloat(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return a == b
}
