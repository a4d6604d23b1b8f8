package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"diabetesrisk/internal/app"
	"diabetesrisk/internal/data"
	"diabetesrisk/internal/inspect"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file")
	n := flag.Int("n", 5000, "Number of synthetic respondents to score")
	seed := flag.Int64("seed", 1, "Random seed for the synthetic sample")
	bins := flag.Int("bins", 20, "Histogram bins")
	outImg := flag.String("out_img", "data/probability_hist.png", "Histogram PNG")
	outCsv := flag.String("out_csv", "data/scored_sample.csv", "Scored sample CSV")
	flag.Parse()
	if *n <= 0 {
		fmt.Fprintln(os.Stderr, "-n must be positive")
		os.Exit(2)
	}

	env, err := app.Bootstrap(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}
	logger := env.Logger
	defer logger.Sync()

	b := env.Adapter.Binding()
	fmt.Printf("Modelo: %s (%d features, clase positiva %d)\n", env.Adapter.ModelName(), len(b.Columns()), env.Artifact.PositiveClass())
	if err := inspect.WriteAlignment(os.Stdout, b); err != nil {
		logger.Fatal("write alignment", zap.Error(err))
	}

	sample, sum, err := inspect.Score(context.Background(), env.Adapter, *n, *seed)
	if err != nil {
		logger.Fatal("score sample", zap.Error(err))
	}
	logger.Info("sample scored",
		zap.Int("n", sum.N),
		zap.Int("failed", sum.Failed),
		zap.Int("high_risk", sum.HighRisk),
		zap.Float64("mean", sum.Mean),
		zap.Float64("stddev", sum.StdDev),
		zap.Float64("p10", sum.P10),
		zap.Float64("median", sum.Median),
		zap.Float64("p90", sum.P90),
	)

	if err := data.WriteScoredCSV(*outCsv, b.Columns(), sample.Rows, sample.Probs, sample.Labels); err != nil {
		logger.Warn("write scored sample", zap.Error(err))
	} else {
		fmt.Println("Muestra guardada en:", *outCsv)
	}
	if err := inspect.PlotHistogram(*outImg, sample.Probs, *bins); err != nil {
		logger.Warn("plot histogram", zap.Error(err))
	} else {
		fmt.Println("Histograma guardado en:", *outImg)
	}
}
