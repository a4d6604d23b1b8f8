package models

// Stump is a depth-one regression tree on the log-odds scale.
type Stump struct {
	Feature   int
	Threshold float64
	LeftVal   float64
	RightVal  float64
}

// GradientBoosting sums shrunken stump outputs on top of the initial
// log-odds Bias.
type GradientBoosting struct {
	Bias         float64
	LearningRate float64
	Trees        []Stump
}

func (gb *GradientBoosting) Name() string { return "GradientBoosting" }

func (gb *GradientBoosting) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		f := gb.Bias
		for _, t := range gb.Trees {
			inc := t.LeftVal
			if X[i][t.Feature] > t.Threshold {
				inc = t.RightVal
			}
			f += gb.LearningRate * inc
		}
		out[i] = sigmoid(f)
	}
	return out
}

func (gb *GradientBoosting) Predict(X [][]float64) []int {
	return threshold(gb.PredictProba(X))
}

func (gb *GradientBoosting) maxFeature() int {
	m := -1
	for _, t := range gb.Trees {
		if t.Feature > m {
			m = t.Feature
		}
	}
	return m
}
