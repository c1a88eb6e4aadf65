package pipeline

/*
PREPROCESAMIENTO COMPARTIDO (ambos clasificadores usan la misma receta)

Dos ramas independientes, concatenadas columna a columna en una matriz
densa (los clasificadores de distancia necesitan entrada densa):

  - numéricas + binarias: imputación por media y luego escalado
    media-cero / varianza-uno. Los estadísticos se ajustan SOLO con el
    train y se aplican tal cual al test (sin fuga de información).
  - categóricas: imputación con la categoría centinela "faltante" y
    expansión a indicadores por categoría observada en train. Una
    categoría nunca vista en inferencia produce una fila de indicadores
    toda en cero, no un error.
*/

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Sentinel es la categoría constante que reemplaza a los faltantes en la
// rama categórica.
const Sentinel = "faltante"

var errNotFitted = errors.New("pipeline: Transform antes de Fit")

// Preprocessor implementa la receta fit/transform de las dos ramas.
type Preprocessor struct {
	NumCols []string // numéricas + binarias (series float con NaN)
	CatCols []string // categóricas (series string)

	fitted bool
	means  []float64        // media de imputación por columna numérica
	mus    []float64        // media del escalado (post-imputación)
	sigmas []float64        // desviación del escalado (0 → 1, passthrough)
	cats   [][]string       // categorías por columna, ordenadas
	catIdx []map[string]int // categoría → posición del indicador
}

func New(numCols, catCols []string) *Preprocessor {
	return &Preprocessor{
		NumCols: append([]string(nil), numCols...),
		CatCols: append([]string(nil), catCols...),
	}
}

// Fit ajusta imputación, escalado y vocabularios con los datos recibidos
// (la partición de entrenamiento).
func (p *Preprocessor) Fit(df dataframe.DataFrame) error {
	if err := checkColumns(df, p.NumCols, p.CatCols); err != nil {
		return err
	}

	p.means = make([]float64, len(p.NumCols))
	p.mus = make([]float64, len(p.NumCols))
	p.sigmas = make([]float64, len(p.NumCols))
	for j, col := range p.NumCols {
		vals := df.Col(col).Float()
		p.means[j] = meanSkipNaN(vals)

		imputed := make([]float64, len(vals))
		for i, v := range vals {
			if math.IsNaN(v) {
				v = p.means[j]
			}
			imputed[i] = v
		}
		p.mus[j] = stat.Mean(imputed, nil)
		sigma := stat.PopStdDev(imputed, nil)
		if sigma == 0 || math.IsNaN(sigma) {
			sigma = 1 // columna constante: escalar sería dividir por cero
		}
		p.sigmas[j] = sigma
	}

	p.cats = make([][]string, len(p.CatCols))
	p.catIdx = make([]map[string]int, len(p.CatCols))
	for j, col := range p.CatCols {
		recs := df.Col(col).Records()
		uniq := make(map[string]struct{}, len(recs))
		for _, r := range recs {
			uniq[normalizeCat(r)] = struct{}{}
		}
		cats := make([]string, 0, len(uniq))
		for c := range uniq {
			cats = append(cats, c)
		}
		sort.Strings(cats)
		p.cats[j] = cats

		idx := make(map[string]int, len(cats))
		for i, c := range cats {
			idx[c] = i
		}
		p.catIdx[j] = idx
	}

	p.fitted = true
	return nil
}

// Transform aplica la receta ajustada y devuelve la matriz densa
// [numéricas escaladas | indicadores categóricos].
func (p *Preprocessor) Transform(df dataframe.DataFrame) (*mat.Dense, error) {
	if !p.fitted {
		return nil, errNotFitted
	}
	if err := checkColumns(df, p.NumCols, p.CatCols); err != nil {
		return nil, err
	}

	rows := df.Nrow()
	cols := p.OutputDim()
	out := mat.NewDense(rows, cols, nil)

	for j, col := range p.NumCols {
		vals := df.Col(col).Float()
		for i, v := range vals {
			if math.IsNaN(v) {
				v = p.means[j]
			}
			out.Set(i, j, (v-p.mus[j])/p.sigmas[j])
		}
	}

	offset := len(p.NumCols)
	for j, col := range p.CatCols {
		recs := df.Col(col).Records()
		for i, r := range recs {
			if k, ok := p.catIdx[j][normalizeCat(r)]; ok {
				out.Set(i, offset+k, 1)
			}
			// categoría no vista: bloque de indicadores queda en cero
		}
		offset += len(p.cats[j])
	}
	return out, nil
}

func (p *Preprocessor) FitTransform(df dataframe.DataFrame) (*mat.Dense, error) {
	if err := p.Fit(df); err != nil {
		return nil, err
	}
	return p.Transform(df)
}

// OutputDim es el ancho de la matriz transformada.
func (p *Preprocessor) OutputDim() int {
	n := len(p.NumCols)
	for _, c := range p.cats {
		n += len(c)
	}
	return n
}

func normalizeCat(r string) string {
	r = strings.TrimSpace(r)
	if r == "" || r == "NaN" || r == "NA" {
		return Sentinel
	}
	return r
}

func meanSkipNaN(vals []float64) float64 {
	var sum float64
	var n int
	for _, v := range vals {
		if math.IsNaN(v) {
			continue
		}
		sum += v
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func checkColumns(df dataframe.DataFrame, groups ...[]string) error {
	have := make(map[string]struct{})
	for _, n := range df.Names() {
		have[n] = struct{}{}
	}
	for _, g := range groups {
		for _, col := range g {
			if _, ok := have[col]; !ok {
				return fmt.Errorf("pipeline: falta la columna %q", col)
			}
		}
	}
	return nil
}
