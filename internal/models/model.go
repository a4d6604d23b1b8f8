package models

import "math"

//go:generate mockgen -source=model.go -destination=mock_models/model_mock.go -package=mock_models

// Model is a trained binary classifier. X holds one row per sample, columns
// in the artifact's declared feature order.
type Model interface {
	Predict(X [][]float64) []int
	Name() string
}

// ProbaModel is a Model that can also estimate the positive-class
// probability.
type ProbaModel interface {
	Model
	PredictProba(X [][]float64) []float64
}

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func threshold(ps []float64) []int {
	out := make([]int, len(ps))
	for i := range ps {
		if ps[i] >= 0.5 {
			out[i] = 1
		}
	}
	return out
}
