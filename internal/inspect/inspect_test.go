package inspect

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"diabetesrisk/internal/features"
	"diabetesrisk/internal/inference"
	"diabetesrisk/internal/models"
	"diabetesrisk/internal/schema"
)

var compactFeatures = []string{
	"HighBP", "HighChol", "CholCheck", "BMI", "Stroke", "HeartDiseaseorAttack",
	"HvyAlcoholConsump", "GenHlth", "PhysHlth", "DiffWalk", "Sex", "Age", "Education", "Income",
}

func adapter(t *testing.T, names []string) *inference.Adapter {
	t.Helper()
	b, err := features.Bind(schema.Default(), schema.CompactLayout(), names)
	if err != nil {
		t.Fatal(err)
	}
	tree := &models.DecisionTree{Root: models.Split(3, 30, models.Leaf(0.1), models.Split(0, 0.5, models.Leaf(0.4), models.Leaf(0.8)))}
	return inference.New(&models.Artifact{FeatureNames: names, Model: tree}, b, nil)
}

func TestScore(t *testing.T) {
	s, sum, err := Score(context.Background(), adapter(t, compactFeatures), 400, 3)
	if err != nil {
		t.Fatal(err)
	}
	if sum.Failed != 0 || len(s.Probs) != 400 {
		t.Fatalf("failed=%d scored=%d", sum.Failed, len(s.Probs))
	}
	for _, p := range s.Probs {
		if p != 0.1 && p != 0.4 && p != 0.8 {
			t.Fatalf("unexpected leaf probability %v", p)
		}
	}
	if sum.HighRisk == 0 || sum.HighRisk == 400 {
		t.Fatalf("high-risk count %d is degenerate", sum.HighRisk)
	}
	if sum.P10 > sum.Median || sum.Median > sum.P90 {
		t.Fatalf("quantiles out of order: %+v", sum)
	}
	if sum.Mean < 0.1 || sum.Mean > 0.8 {
		t.Fatalf("mean %v outside leaf range", sum.Mean)
	}

	again, _, err := Score(context.Background(), adapter(t, compactFeatures), 400, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i := range s.Probs {
		if s.Probs[i] != again.Probs[i] {
			t.Fatal("same seed produced different scores")
		}
	}
}

func TestScoreRejectsNonPositiveSize(t *testing.T) {
	a := adapter(t, compactFeatures)
	for _, n := range []int{0, -5} {
		if _, _, err := Score(context.Background(), a, n, 1); err == nil {
			t.Errorf("n=%d: expected error", n)
		}
	}
}

func TestScoreCoversUnplacedFeatures(t *testing.T) {
	names := append(append([]string{}, compactFeatures...), "Fruits")
	_, sum, err := Score(context.Background(), adapter(t, names), 10, 1)
	if err != nil {
		t.Fatal(err)
	}
	// Fruits is generated from its domain, so every row still scores.
	if sum.Failed != 0 {
		t.Fatalf("failed = %d", sum.Failed)
	}
}

func TestWriteAlignment(t *testing.T) {
	names := append(append([]string{}, compactFeatures...), "Fruits")
	var buf bytes.Buffer
	if err := WriteAlignment(&buf, adapter(t, names).Binding()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Fruits") || !strings.Contains(out, "NOT IN FORM") {
		t.Fatalf("drift not reported:\n%s", out)
	}
	if got := strings.Count(out, "\n"); got != len(names) {
		t.Fatalf("got %d lines, want %d", got, len(names))
	}
}

func TestPlotHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plots", "hist.png")
	if err := PlotHistogram(path, []float64{0.1, 0.2, 0.2, 0.7, 0.9}, 10); err != nil {
		t.Fatal(err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Fatal("empty PNG")
	}
}
