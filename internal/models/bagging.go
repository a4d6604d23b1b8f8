package models

// Bagging is a bootstrap ensemble of full-feature trees. Prediction is the
// same average as RandomForest; the type is kept distinct so artifacts
// report the estimator they were trained as.
type Bagging struct {
	Trees []*DecisionTree
}

func (bg *Bagging) Name() string { return "Bagging" }

func (bg *Bagging) Predict(X [][]float64) []int {
	return threshold(bg.PredictProba(X))
}

func (bg *Bagging) PredictProba(X [][]float64) []float64 {
	return averageTrees(bg.Trees, X)
}

func (bg *Bagging) maxFeature() int { return maxTreesFeature(bg.Trees) }
