package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"diabetesrisk/internal/app"
	"diabetesrisk/internal/collector"
	"diabetesrisk/internal/inference"
)

func main() {
	configPath := flag.String("config", "", "Path to the YAML config file")
	flag.Parse()

	env, err := app.Bootstrap(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "startup:", err)
		os.Exit(1)
	}
	logger := env.Logger
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	col := collector.New(env.Adapter.Binding(), logger)
	fmt.Println("Predicción de Riesgo de Diabetes")

	rec, err := col.Collect(ctx, collector.PromptSource{Prompter: collector.SurveyPrompter{}, Out: os.Stdout})
	if errors.Is(err, collector.ErrAborted) || errors.Is(err, context.Canceled) {
		fmt.Println("Cancelado.")
		return
	}
	if err != nil {
		logger.Fatal("collect answers", zap.Error(err))
	}

	res, err := env.Adapter.Predict(ctx, rec)
	if err != nil {
		fmt.Println("Error en la predicción. Revise los datos e intente de nuevo.")
		os.Exit(2)
	}
	fmt.Printf("\nProbabilidad de Diabetes: %s\n", res.Percent())
	if res.Label == inference.HighRisk {
		fmt.Println("Alto riesgo de diabetes")
	} else {
		fmt.Println("Bajo riesgo de diabetes")
	}
}
