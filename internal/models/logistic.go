package models

import (
	"gonum.org/v1/gonum/floats"
)

// Logistic is a linear model on the log-odds scale.
type Logistic struct {
	Weights   []float64
	Intercept float64
}

func (l *Logistic) Name() string { return "LogisticRegression" }

// PredictProba panics if a row's width differs from len(Weights).
func (l *Logistic) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, x := range X {
		out[i] = sigmoid(floats.Dot(l.Weights, x) + l.Intercept)
	}
	return out
}

func (l *Logistic) Predict(X [][]float64) []int {
	return threshold(l.PredictProba(X))
}

func (l *Logistic) maxFeature() int { return len(l.Weights) - 1 }
