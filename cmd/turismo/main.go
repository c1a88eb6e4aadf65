package main

/*
RECOMENDADOR DE DESTINOS TURÍSTICOS (pasada única)

Tres etapas secuenciales, sin retroalimentación entre ellas:
 1) Preparación    — cargar CSV, deduplicar, limpiar columnas, excluir
                     clases raras, separar (features, target).
 2) Evaluación     — por cada métrica de distancia {euclidean, manhattan,
                     cosine, chebyshev, minkowski}: KNN(k=5) y SVC(rbf)
                     con el mismo preprocesamiento; CV 5-fold sobre el
                     train y accuracy/F1 sobre el hold-out 80/20.
 3) Recomendación  — loop interactivo zona+significancia sobre la tabla
                     limpia completa (independiente de los modelos).

Entrada:
  - data/final.csv  (o --data)

Salidas:
  - resumen por consola
  - artifacts/eval_report.txt

Sin flags se reproduce exactamente el guion original (semilla 42, k=5,
5 folds, test 20%, top 10, secuencial).
*/

import (
	"flag"
	"fmt"
	"os"

	"tf/dataset"
	"tf/eval"
	"tf/recommend"
	"tf/utils"
)

const (
	defaultData = "data/final.csv"
	reportPath  = "artifacts/eval_report.txt"
)

func main() {
	var (
		dataPath = flag.String("data", defaultData, "ruta del CSV de destinos")
		seed     = flag.Int64("seed", 42, "semilla de split, CV y SVC")
		k        = flag.Int("k", 5, "vecinos del KNN")
		folds    = flag.Int("folds", 5, "folds de la cross-validation")
		testFrac = flag.Float64("test", 0.2, "fracción de test del hold-out")
		topN     = flag.Int("top", 10, "resultados por consulta")
		workers  = flag.Int("workers", 1, "workers para evaluar métricas en paralelo")
	)
	flag.Parse()

	log := utils.NewLogger(true)
	timer := utils.NewTimer()

	// ==================== ETAPA 1: PREPARACIÓN ====================
	df, err := dataset.Load(*dataPath)
	if err != nil {
		log.Error("no se pudo cargar el dataset: %v", err)
		os.Exit(1)
	}
	rawRows := df.Nrow()
	clean := dataset.Clean(df)
	log.Info("Dataset: %d filas leídas, %d tras limpieza", rawRows, clean.Nrow())

	modelable, excluded := dataset.FilterRareClasses(clean)
	if len(excluded) > 0 {
		log.Warn("Clases con un solo ejemplar, excluidas del modelado: %v", excluded)
	}
	X, yLabels := dataset.SplitFeaturesTarget(modelable)
	y, classes := dataset.EncodeLabels(yLabels)
	log.Info("Modelado: %d filas, %d clases de destino", modelable.Nrow(), len(classes))
	log.Info("Preparación en %s", timer.Lap())

	// ==================== ETAPA 2: EVALUACIÓN ====================
	numCols := append(append([]string{}, dataset.NumericCols...), dataset.BinaryCols...)
	results, err := eval.Run(eval.Config{
		X:        X,
		Y:        y,
		NumCols:  numCols,
		CatCols:  dataset.CategoricalCols,
		K:        *k,
		Folds:    *folds,
		TestFrac: *testFrac,
		Seed:     *seed,
		Workers:  *workers,
	})
	if err != nil {
		log.Error("la evaluación falló: %v", err)
		os.Exit(1)
	}
	summary := eval.Summary(results)
	fmt.Print(summary)
	if err := os.MkdirAll("artifacts", 0o755); err != nil {
		log.Warn("no se pudo crear artifacts/: %v", err)
	} else if err := os.WriteFile(reportPath, []byte(summary), 0o644); err != nil {
		log.Warn("no se pudo escribir %s: %v", reportPath, err)
	} else {
		log.Info("Reporte en %s", reportPath)
	}
	log.Info("Evaluación en %s", timer.Lap())

	// ==================== ETAPA 3: RECOMENDACIÓN ====================
	// El loop usa la tabla limpia completa (pre-filtro de clases raras) y
	// solo termina por su propia despedida.
	recommend.New(clean, *topN, os.Stdin, os.Stdout).Run()

	log.Info("Tiempo total: %s", timer.Elapsed())
}
