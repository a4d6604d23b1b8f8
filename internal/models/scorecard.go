package models

// Rule adds Points when the row's Feature compares to Value with Op
// (one of ">=", "<=", "==").
type Rule struct {
	Feature int
	Op      string
	Value   float64
	Points  float64
}

func (r Rule) match(x []float64) bool {
	v := x[r.Feature]
	switch r.Op {
	case ">=":
		return v >= r.Value
	case "<=":
		return v <= r.Value
	case "==":
		return v == r.Value
	}
	return false
}

// Scorecard is a points-based classifier: positive when the summed points
// reach Cutoff. It has no calibrated probability, so it does not implement
// ProbaModel.
type Scorecard struct {
	Rules  []Rule
	Cutoff float64
}

func (s *Scorecard) Name() string { return "Scorecard" }

func (s *Scorecard) Predict(X [][]float64) []int {
	out := make([]int, len(X))
	for i, x := range X {
		if s.score(x) >= s.Cutoff {
			out[i] = 1
		}
	}
	return out
}

func (s *Scorecard) score(x []float64) float64 {
	total := 0.0
	for _, r := range s.Rules {
		if r.match(x) {
			total += r.Points
		}
	}
	return total
}

func (s *Scorecard) maxFeature() int {
	m := -1
	for _, r := range s.Rules {
		if r.Feature > m {
			m = r.Feature
		}
	}
	return m
}
