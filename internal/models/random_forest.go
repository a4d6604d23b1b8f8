package models

// RandomForest averages the leaf probabilities of its trees.
type RandomForest struct {
	Trees []*DecisionTree
}

func (rf *RandomForest) Name() string { return "RandomForest" }

func (rf *RandomForest) Predict(X [][]float64) []int {
	return threshold(rf.PredictProba(X))
}

func (rf *RandomForest) PredictProba(X [][]float64) []float64 {
	return averageTrees(rf.Trees, X)
}

func (rf *RandomForest) maxFeature() int { return maxTreesFeature(rf.Trees) }

func averageTrees(trees []*DecisionTree, X [][]float64) []float64 {
	n := len(X)
	out := make([]float64, n)
	if len(trees) == 0 {
		for i := range out {
			out[i] = 0.5
		}
		return out
	}
	for _, dt := range trees {
		p := dt.PredictProba(X)
		for i := 0; i < n; i++ {
			out[i] += p[i]
		}
	}
	m := float64(len(trees))
	for i := 0; i < n; i++ {
		out[i] /= m
	}
	return out
}

func maxTreesFeature(trees []*DecisionTree) int {
	m := -1
	for _, t := range trees {
		if f := t.maxFeature(); f > m {
			m = f
		}
	}
	return m
}
