package inference

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"diabetesrisk/internal/data"
	"diabetesrisk/internal/features"
	"diabetesrisk/internal/models"
	"diabetesrisk/internal/models/mock_models"
	"diabetesrisk/internal/schema"
)

var compactFeatures = []string{
	"HighBP", "HighChol", "CholCheck", "BMI", "Stroke", "HeartDiseaseorAttack",
	"HvyAlcoholConsump", "GenHlth", "PhysHlth", "DiffWalk", "Sex", "Age", "Education", "Income",
}

func bind(t *testing.T) *features.Binding {
	t.Helper()
	b, err := features.Bind(schema.Default(), schema.CompactLayout(), compactFeatures)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func logisticArtifact() *models.Artifact {
	w := []float64{0.7, 0.6, 0.3, 0.06, 0.2, 0.3, -0.6, 0.5, 0.01, 0.2, 0.25, 0.15, -0.05, -0.06}
	return &models.Artifact{
		FeatureNames: compactFeatures,
		Classes:      []int{0, 1},
		Model:        &models.Logistic{Weights: w, Intercept: -5},
	}
}

// minimalRecord is binary fields "No", discrete fields at their minimum and
// BMI at its midpoint.
func minimalRecord(b *features.Binding) data.Record {
	rec := data.Record{}
	for _, s := range b.Specs() {
		switch s.Kind {
		case schema.KindContinuous:
			rec[s.Name] = s.Default
		default:
			rec[s.Name] = s.Minimum()
		}
	}
	return rec
}

func TestPredictMinimalScenario(t *testing.T) {
	b := bind(t)
	rec := minimalRecord(b)
	if rec["BMI"] != 39 {
		t.Fatalf("BMI midpoint = %v, want 39", rec["BMI"])
	}
	a := New(logisticArtifact(), b, zap.NewNop())
	res, err := a.Predict(context.Background(), rec)
	if err != nil {
		t.Fatal(err)
	}
	if res.Probability < 0 || res.Probability > 1 {
		t.Fatalf("probability %v outside [0,1]", res.Probability)
	}
	if res.Label != LowRisk && res.Label != HighRisk {
		t.Fatalf("unexpected label %q", res.Label)
	}
	if res.Model != "LogisticRegression" {
		t.Fatalf("model = %q", res.Model)
	}
}

func TestPredictIsDeterministic(t *testing.T) {
	b := bind(t)
	a := New(logisticArtifact(), b, nil)
	rec := minimalRecord(b)
	rec["HighBP"], rec["Age"], rec["BMI"] = 1, 11, 44.5
	first, err := a.Predict(context.Background(), rec)
	if err != nil {
		t.Fatal(err)
	}
	second, err := a.Predict(context.Background(), rec.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Fatalf("results differ: %+v vs %+v", first, second)
	}
}

func TestPredictEveryDomainValue(t *testing.T) {
	b := bind(t)
	tree := &models.DecisionTree{Root: models.Split(3, 30, models.Leaf(0.2), models.Split(0, 0.5, models.Leaf(0.45), models.Leaf(0.85)))}
	for _, art := range []*models.Artifact{
		logisticArtifact(),
		{FeatureNames: compactFeatures, Model: tree},
	} {
		a := New(art, b, nil)
		for _, s := range b.Specs() {
			values := s.Choices()
			if s.Kind == schema.KindContinuous {
				values = []float64{s.Min, s.Default, s.Max}
			}
			for _, v := range values {
				rec := minimalRecord(b)
				rec[s.Name] = v
				res, err := a.Predict(context.Background(), rec)
				if err != nil {
					t.Fatalf("%s %s=%v: %v", art.Model.Name(), s.Name, v, err)
				}
				if res.Probability < 0 || res.Probability > 1 {
					t.Fatalf("%s %s=%v: probability %v", art.Model.Name(), s.Name, v, res.Probability)
				}
			}
		}
	}
}

func TestPredictMissingFieldIsGenericError(t *testing.T) {
	b := bind(t)
	core, logs := observer.New(zap.WarnLevel)
	a := New(logisticArtifact(), b, zap.New(core))
	for _, name := range compactFeatures {
		rec := minimalRecord(b)
		delete(rec, name)
		_, err := a.Predict(context.Background(), rec)
		if !errors.Is(err, ErrInferenceFailed) {
			t.Fatalf("dropping %s: expected ErrInferenceFailed, got %v", name, err)
		}
	}
	if logs.Len() != len(compactFeatures) {
		t.Fatalf("got %d warnings, want %d", logs.Len(), len(compactFeatures))
	}
}

func TestPredictRecoversModelPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_models.NewMockProbaModel(ctrl)
	m.EXPECT().Name().Return("Broken").AnyTimes()
	m.EXPECT().Predict(gomock.Any()).Return([]int{1})
	m.EXPECT().PredictProba(gomock.Any()).DoAndReturn(func(X [][]float64) []float64 {
		panic("index out of range")
	})

	b := bind(t)
	a := New(&models.Artifact{FeatureNames: compactFeatures, Model: m}, b, nil)
	_, err := a.Predict(context.Background(), minimalRecord(b))
	if !errors.Is(err, ErrInferenceFailed) {
		t.Fatalf("expected ErrInferenceFailed, got %v", err)
	}
}

func TestPredictWithoutProbabilityFallsBackToPrediction(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := mock_models.NewMockModel(ctrl)
	m.EXPECT().Name().Return("Rules").AnyTimes()
	m.EXPECT().Predict(gomock.Len(1)).Return([]int{1})

	b := bind(t)
	a := New(&models.Artifact{FeatureNames: compactFeatures, Model: m}, b, nil)
	res, err := a.Predict(context.Background(), minimalRecord(b))
	if err != nil {
		t.Fatal(err)
	}
	if res.Probability != 1 || res.Label != HighRisk {
		t.Fatalf("got %+v", res)
	}
	if res.Percent() != "100.00%" {
		t.Fatalf("percent = %q", res.Percent())
	}
}

func TestLabelFollowsHardPrediction(t *testing.T) {
	tests := []struct {
		name    string
		classes []int
		pred    int
		proba   float64
		want    Label
	}{
		{name: "negative despite high proba", pred: 0, proba: 0.9, want: LowRisk},
		{name: "positive", pred: 1, proba: 0.51, want: HighRisk},
		{name: "explicit classes", classes: []int{0, 1}, pred: 1, proba: 0.7, want: HighRisk},
		{name: "explicit classes negative", classes: []int{0, 1}, pred: 0, proba: 0.3, want: LowRisk},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mock_models.NewMockProbaModel(ctrl)
			m.EXPECT().Name().Return("Mock").AnyTimes()
			m.EXPECT().Predict(gomock.Any()).Return([]int{tt.pred})
			m.EXPECT().PredictProba(gomock.Any()).Return([]float64{tt.proba})

			b := bind(t)
			a := New(&models.Artifact{FeatureNames: compactFeatures, Classes: tt.classes, Model: m}, b, nil)
			res, err := a.Predict(context.Background(), minimalRecord(b))
			if err != nil {
				t.Fatal(err)
			}
			if res.Label != tt.want {
				t.Fatalf("label = %q, want %q", res.Label, tt.want)
			}
			if res.Probability != tt.proba {
				t.Fatalf("probability = %v, want %v", res.Probability, tt.proba)
			}
		})
	}
}

func TestPredictRejectsBadModelOutput(t *testing.T) {
	tests := []struct {
		name  string
		preds []int
		proba []float64
	}{
		{name: "probability above one", preds: []int{1}, proba: []float64{1.2}},
		{name: "negative probability", preds: []int{0}, proba: []float64{-0.1}},
		{name: "no probabilities", preds: []int{0}, proba: []float64{}},
		{name: "no predictions", preds: []int{}, proba: []float64{0.3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := mock_models.NewMockProbaModel(ctrl)
			m.EXPECT().Name().Return("Mock").AnyTimes()
			m.EXPECT().Predict(gomock.Any()).Return(tt.preds)
			m.EXPECT().PredictProba(gomock.Any()).Return(tt.proba).MaxTimes(1)

			b := bind(t)
			a := New(&models.Artifact{FeatureNames: compactFeatures, Model: m}, b, nil)
			if _, err := a.Predict(context.Background(), minimalRecord(b)); !errors.Is(err, ErrInferenceFailed) {
				t.Fatalf("expected ErrInferenceFailed, got %v", err)
			}
		})
	}
}

func TestPredictCancelledContext(t *testing.T) {
	b := bind(t)
	a := New(logisticArtifact(), b, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := a.Predict(ctx, minimalRecord(b)); !errors.Is(err, ErrInferenceFailed) {
		t.Fatalf("expected ErrInferenceFailed, got %v", err)
	}
}
