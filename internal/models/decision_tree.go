package models

// DTNode is one split or leaf of a decision tree. Rows with
// x[Feature] <= Threshold go left.
type DTNode struct {
	Feature   int
	Threshold float64
	Left      *DTNode
	Right     *DTNode
	IsLeaf    bool
	ProbaLeaf float64
}

type DecisionTree struct {
	Root *DTNode
}

func (dt *DecisionTree) Name() string { return "DecisionTree" }

func (dt *DecisionTree) Predict(X [][]float64) []int {
	return threshold(dt.PredictProba(X))
}

func (dt *DecisionTree) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = dt.predictProbaOne(X[i])
	}
	return out
}

func (dt *DecisionTree) predictProbaOne(x []float64) float64 {
	n := dt.Root
	if n == nil {
		return 0.5
	}
	for !n.IsLeaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
		if n == nil {
			return 0.5
		}
	}
	return n.ProbaLeaf
}

func (dt *DecisionTree) maxFeature() int {
	return maxNodeFeature(dt.Root)
}

func maxNodeFeature(n *DTNode) int {
	if n == nil || n.IsLeaf {
		return -1
	}
	m := n.Feature
	if l := maxNodeFeature(n.Left); l > m {
		m = l
	}
	if r := maxNodeFeature(n.Right); r > m {
		m = r
	}
	return m
}

// Leaf and Split build trees by hand.
func Leaf(p float64) *DTNode { return &DTNode{IsLeaf: true, ProbaLeaf: p} }

func Split(feature int, thr float64, left, right *DTNode) *DTNode {
	return &DTNode{Feature: feature, Threshold: thr, Left: left, Right: right}
}
