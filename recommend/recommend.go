package recommend

/*
RECOMENDADOR INTERACTIVO (leer → filtrar → ordenar → imprimir)

- Opera sobre la tabla limpia COMPLETA (antes del filtro de clases raras) y
  nunca la muta: el saneo numérico del ranking (NaN→0 en rating y reseñas)
  vive solo en la vista local de cada consulta.
- Validación por pertenencia a los valores distintos observados en la tabla
  completa; entrada inválida reporta y vuelve a preguntar ambas cosas.
- Ranking: rating descendente, empates por volumen de reseñas descendente.
  Top 10, proyección fija de columnas, sin columna índice.
- El token afirmativo literal es "s"; cualquier otra respuesta despide y
  termina. E/S inyectadas para poder probar el loop con entradas simuladas.
*/

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"sort"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"

	"tf/dataset"
)

// ContinueToken es la única respuesta que mantiene vivo el loop.
const ContinueToken = "s"

// Row es la proyección fija que se imprime por destino.
type Row struct {
	Name    string
	City    string
	State   string
	Type    string
	Rating  float64 // saneado NaN→0, solo vista local
	Reviews float64 // ídem (lakhs)
	Fee     float64 // NaN si falta
	Hours   float64 // NaN si falta
}

type Recommender struct {
	df    dataframe.DataFrame
	zones map[string]struct{}
	sigs  map[string]struct{}
	topN  int

	in  *bufio.Scanner
	out io.Writer
}

// New construye el recomendador sobre la tabla limpia completa. in/out se
// inyectan (stdin/stdout en producción, buffers en tests).
func New(df dataframe.DataFrame, topN int, in io.Reader, out io.Writer) *Recommender {
	return &Recommender{
		df:    df,
		zones: toSet(dataset.DistinctValues(df, dataset.ColZone)),
		sigs:  toSet(dataset.DistinctValues(df, dataset.ColSignificance)),
		topN:  topN,
		in:    bufio.NewScanner(in),
		out:   out,
	}
}

// Run ejecuta el loop hasta la despedida (o hasta agotar la entrada).
func (r *Recommender) Run() {
	for {
		zone, ok := r.prompt("Zona (ej. Northern): ")
		if !ok {
			return
		}
		sig, ok := r.prompt("Significancia (ej. Historical): ")
		if !ok {
			return
		}

		if _, known := r.zones[zone]; !known {
			fmt.Fprintf(r.out, "Zona no reconocida: %q. Intente de nuevo.\n", zone)
			continue
		}
		if _, known := r.sigs[sig]; !known {
			fmt.Fprintf(r.out, "Significancia no reconocida: %q. Intente de nuevo.\n", sig)
			continue
		}

		rows := r.Query(zone, sig)
		if len(rows) == 0 {
			fmt.Fprintf(r.out, "Sin coincidencias para zona=%q y significancia=%q.\n", zone, sig)
		} else {
			r.printRows(rows)
			r.printNearby(rows[0])
		}

		answer, ok := r.prompt("¿Otra consulta? (s/n): ")
		if !ok || answer != ContinueToken {
			fmt.Fprintln(r.out, "¡Gracias por usar el recomendador! Buen viaje.")
			return
		}
	}
}

// Query filtra por coincidencia exacta en zona y significancia y devuelve
// hasta topN filas ya ordenadas. No modifica la tabla subyacente.
func (r *Recommender) Query(zone, sig string) []Row {
	filtered := r.df.
		Filter(dataframe.F{Colname: dataset.ColZone, Comparator: series.Eq, Comparando: zone}).
		Filter(dataframe.F{Colname: dataset.ColSignificance, Comparator: series.Eq, Comparando: sig})
	if filtered.Err != nil || filtered.Nrow() == 0 {
		return nil
	}

	rows := collectRows(filtered)
	RankRows(rows)
	if len(rows) > r.topN {
		rows = rows[:r.topN]
	}
	return rows
}

// RankRows ordena descendente por rating; empates, descendente por volumen
// de reseñas. El orden es estable para lo demás.
func RankRows(rows []Row) {
	sort.SliceStable(rows, func(a, b int) bool {
		if rows[a].Rating != rows[b].Rating {
			return rows[a].Rating > rows[b].Rating
		}
		return rows[a].Reviews > rows[b].Reviews
	})
}

func collectRows(df dataframe.DataFrame) []Row {
	names := df.Col(dataset.ColName).Records()
	cities := df.Col(dataset.ColCity).Records()
	states := df.Col(dataset.ColState).Records()
	types := df.Col(dataset.ColType).Records()
	ratings := df.Col(dataset.ColRating).Float()
	reviews := df.Col(dataset.ColReviews).Float()
	fees := df.Col(dataset.ColFee).Float()
	hours := df.Col(dataset.ColHours).Float()

	rows := make([]Row, len(names))
	for i := range names {
		rows[i] = Row{
			Name:    names[i],
			City:    cities[i],
			State:   states[i],
			Type:    types[i],
			Rating:  zeroIfNaN(ratings[i]),
			Reviews: zeroIfNaN(reviews[i]),
			Fee:     fees[i],
			Hours:   hours[i],
		}
	}
	return rows
}

func (r *Recommender) printRows(rows []Row) {
	fmt.Fprintf(r.out, "%-42s %-18s %-18s %-22s %7s %9s %8s %6s\n",
		"Nombre", "Ciudad", "Estado", "Tipo", "Rating", "Reseñas", "Entrada", "Horas")
	for _, row := range rows {
		fmt.Fprintf(r.out, "%-42s %-18s %-18s %-22s %7.1f %9.2f %8s %6s\n",
			row.Name, row.City, row.State, row.Type,
			row.Rating, row.Reviews, formatNum(row.Fee, 0), formatNum(row.Hours, 1))
	}
}

// printNearby lista hasta 3 destinos más de la ciudad del mejor resultado
// (la función "lugares cercanos" de la app original).
func (r *Recommender) printNearby(top Row) {
	nearby := r.df.
		Filter(dataframe.F{Colname: dataset.ColCity, Comparator: series.Eq, Comparando: top.City}).
		Filter(dataframe.F{Colname: dataset.ColName, Comparator: series.Neq, Comparando: top.Name})
	if nearby.Err != nil || nearby.Nrow() == 0 {
		return
	}
	names := nearby.Col(dataset.ColName).Records()
	types := nearby.Col(dataset.ColType).Records()
	ratings := nearby.Col(dataset.ColRating).Float()

	fmt.Fprintf(r.out, "\nCerca de %s, en %s:\n", top.Name, top.City)
	for i := 0; i < len(names) && i < 3; i++ {
		fmt.Fprintf(r.out, "  • %s (%s) — rating %.1f\n", names[i], types[i], zeroIfNaN(ratings[i]))
	}
}

func (r *Recommender) prompt(msg string) (string, bool) {
	fmt.Fprint(r.out, msg)
	if !r.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(r.in.Text()), true
}

func toSet(vals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		set[v] = struct{}{}
	}
	return set
}

func zeroIfNaN(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v
}

func formatNum(v float64, decimals int) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.*f", decimals, v)
}
