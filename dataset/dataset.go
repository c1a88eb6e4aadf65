package dataset

/*
PREPARACIÓN DE DATOS (destinos turísticos de la India)

Objetivo:
- Cargar el CSV de destinos y aplicar la limpieza columna a columna:
  duplicados exactos, columna índice residual, columnas Sí/No, año de
  fundación y coerción numérica.
- Separar (features, target) para el modelado, excluyendo antes las clases
  con un solo ejemplar (el split estratificado exige ≥2 por clase).

El dataframe se lee con detección de tipos apagada: toda conversión es
explícita y los valores malformados terminan en NaN, nunca en error.
*/

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
)

var nan = math.NaN()

// Nombres de columna, exactos al CSV de origen.
const (
	ColZone         = "Zone"
	ColState        = "State"
	ColCity         = "City"
	ColType         = "Type"
	ColName         = "Name"
	ColAirport      = "Airport with 50km Radius"
	ColDSLR         = "DSLR Allowed"
	ColYear         = "Establishment Year"
	ColHours        = "time needed to visit in hrs"
	ColRating       = "Google review rating"
	ColFee          = "Entrance Fee in INR"
	ColReviews      = "Number of google review in lakhs"
	ColWeeklyOff    = "Weekly Off"
	ColSignificance = "Significance"
	ColBestTime     = "Best Time to visit"
)

// indexCol es la columna índice que deja pandas al re-serializar el CSV.
const indexCol = "Unnamed: 0"

// Grupos de atributos con su receta de transformación (ver pipeline).
var (
	NumericCols     = []string{ColYear, ColHours, ColRating, ColFee, ColReviews}
	BinaryCols      = []string{ColAirport, ColDSLR}
	CategoricalCols = []string{ColZone, ColState, ColCity, ColWeeklyOff, ColSignificance, ColBestTime}
)

// Load abre y parsea el CSV. El error de archivo ausente se devuelve al
// caller (main lo reporta y termina con exit != 0, no con un panic).
func Load(path string) (dataframe.DataFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("abrir %s: %w", path, err)
	}
	defer f.Close()

	df := dataframe.ReadCSV(f,
		dataframe.HasHeader(true),
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
	if df.Err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("parsear %s: %w", path, df.Err)
	}
	return df, nil
}

// Clean aplica la limpieza completa en el orden del guion original:
// duplicados → columna índice → binarias → año → numéricas.
func Clean(df dataframe.DataFrame) dataframe.DataFrame {
	df = Dedup(df)
	df = DropIndexColumn(df)
	df = MapBinary(df)
	df = CleanYear(df)
	df = CoerceNumeric(df)
	return df
}

// Dedup elimina filas duplicadas exactas conservando la primera aparición.
// Correr dos veces deja el mismo número de filas que correr una.
func Dedup(df dataframe.DataFrame) dataframe.DataFrame {
	recs := df.Records() // incluye cabecera
	if len(recs) <= 1 {
		return df
	}
	seen := make(map[string]struct{}, len(recs))
	kept := make([][]string, 0, len(recs))
	kept = append(kept, recs[0])
	for _, row := range recs[1:] {
		key := strings.Join(row, "\x1f")
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, row)
	}
	return dataframe.LoadRecords(kept,
		dataframe.DetectTypes(false),
		dataframe.DefaultType(series.String),
	)
}

// DropIndexColumn quita la columna índice residual solo si aparece como
// primera columna (heurística del guion original).
func DropIndexColumn(df dataframe.DataFrame) dataframe.DataFrame {
	names := df.Names()
	if len(names) > 0 && names[0] == indexCol {
		return df.Drop(indexCol)
	}
	return df
}

// MapBinary lleva las dos columnas Sí/No a {1, 0}. Cualquier otro valor se
// vuelve NaN (dato faltante, no error): el mapeo es total.
func MapBinary(df dataframe.DataFrame) dataframe.DataFrame {
	for _, col := range BinaryCols {
		recs := df.Col(col).Records()
		vals := make([]float64, len(recs))
		for i, r := range recs {
			switch strings.TrimSpace(r) {
			case "Yes":
				vals[i] = 1
			case "No":
				vals[i] = 0
			default:
				vals[i] = nan
			}
		}
		df = df.Mutate(series.New(vals, series.Float, col))
	}
	return df
}

// CleanYear normaliza el año de fundación: el literal "Unknown" y cualquier
// valor no numérico pasan a NaN; los negativos se tratan como errores de
// digitación (no como fechas a.C.) y también pasan a NaN.
func CleanYear(df dataframe.DataFrame) dataframe.DataFrame {
	recs := df.Col(ColYear).Records()
	vals := make([]float64, len(recs))
	for i, r := range recs {
		r = strings.TrimSpace(r)
		if r == "Unknown" {
			vals[i] = nan
			continue
		}
		v, err := strconv.ParseFloat(r, 64)
		if err != nil || v < 0 {
			vals[i] = nan
			continue
		}
		vals[i] = v
	}
	return df.Mutate(series.New(vals, series.Float, ColYear))
}

// CoerceNumeric convierte el resto de columnas numéricas declaradas;
// lo no parseable termina en NaN.
func CoerceNumeric(df dataframe.DataFrame) dataframe.DataFrame {
	for _, col := range NumericCols {
		if col == ColYear {
			continue // ya tratada por CleanYear
		}
		recs := df.Col(col).Records()
		vals := make([]float64, len(recs))
		for i, r := range recs {
			v, err := strconv.ParseFloat(strings.TrimSpace(r), 64)
			if err != nil {
				vals[i] = nan
				continue
			}
			vals[i] = v
		}
		df = df.Mutate(series.New(vals, series.Float, col))
	}
	return df
}

// FilterRareClasses excluye las filas cuyo Type aparece exactamente una vez
// y devuelve los nombres excluidos para reportarlos (nunca se omite en
// silencio). Postcondición: toda clase restante tiene ≥2 ejemplares.
func FilterRareClasses(df dataframe.DataFrame) (dataframe.DataFrame, []string) {
	labels := df.Col(ColType).Records()
	counts := make(map[string]int, len(labels))
	for _, l := range labels {
		counts[l]++
	}

	var excluded []string
	for l, c := range counts {
		if c == 1 {
			excluded = append(excluded, l)
		}
	}
	sort.Strings(excluded)
	if len(excluded) == 0 {
		return df, nil
	}

	keep := make([]int, 0, len(labels))
	for i, l := range labels {
		if counts[l] > 1 {
			keep = append(keep, i)
		}
	}
	return df.Subset(keep), excluded
}

// SplitFeaturesTarget separa la matriz de atributos (todo menos Name y Type)
// del vector objetivo (Type).
func SplitFeaturesTarget(df dataframe.DataFrame) (dataframe.DataFrame, []string) {
	X := df.Drop([]string{ColName, ColType})
	y := df.Col(ColType).Records()
	return X, y
}

// EncodeLabels codifica las clases a enteros. Las clases se ordenan
// alfabéticamente para que la codificación sea determinista.
func EncodeLabels(labels []string) ([]int, []string) {
	uniq := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		uniq[l] = struct{}{}
	}
	classes := make([]string, 0, len(uniq))
	for l := range uniq {
		classes = append(classes, l)
	}
	sort.Strings(classes)

	code := make(map[string]int, len(classes))
	for i, c := range classes {
		code[c] = i
	}
	encoded := make([]int, len(labels))
	for i, l := range labels {
		encoded[i] = code[l]
	}
	return encoded, classes
}

// DistinctValues lista los valores distintos no faltantes de una columna,
// ordenados. Se usa para validar la entrada interactiva del recomendador.
func DistinctValues(df dataframe.DataFrame, col string) []string {
	recs := df.Col(col).Records()
	uniq := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		r = strings.TrimSpace(r)
		if r == "" || r == "NaN" || r == "NA" {
			continue
		}
		uniq[r] = struct{}{}
	}
	out := make([]string, 0, len(uniq))
	for v := range uniq {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
