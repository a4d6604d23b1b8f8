package models

import (
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

func init() {
	gob.Register(&DecisionTree{})
	gob.Register(&RandomForest{})
	gob.Register(&Bagging{})
	gob.Register(&GradientBoosting{})
	gob.Register(&Logistic{})
	gob.Register(&Scorecard{})
}

// Artifact is the serialized form of a trained model together with its
// feature-order contract. FeatureNames is the exact column order Model
// expects. Classes, when present, must be {0, 1}: every estimator predicts
// those labels and PredictProba scores label 1.
type Artifact struct {
	FeatureNames []string
	Classes      []int
	Model        Model
}

// featureUser is implemented by models that index into the row; it returns
// the highest column index the model reads, or -1.
type featureUser interface {
	maxFeature() int
}

// PositiveClass is the label that marks presence of the condition.
func (a *Artifact) PositiveClass() int { return positiveClass }

const positiveClass = 1

// Validate checks the artifact is usable: a model, a non-empty feature list
// without duplicates, binary {0, 1} classes, and no split referencing a
// column past the list.
func (a *Artifact) Validate() error {
	if a.Model == nil {
		return errors.New("artifact has no model")
	}
	if len(a.Classes) != 0 && (len(a.Classes) != 2 || a.Classes[0] != 0 || a.Classes[1] != positiveClass) {
		return errors.Errorf("classes %v: only binary {0, 1} artifacts are supported", a.Classes)
	}
	if len(a.FeatureNames) == 0 {
		return errors.New("artifact declares no features")
	}
	seen := make(map[string]bool, len(a.FeatureNames))
	for _, n := range a.FeatureNames {
		if n == "" {
			return errors.New("artifact declares an empty feature name")
		}
		if seen[n] {
			return errors.Errorf("feature %q declared twice", n)
		}
		seen[n] = true
	}
	if fu, ok := a.Model.(featureUser); ok {
		if m := fu.maxFeature(); m >= len(a.FeatureNames) {
			return errors.Errorf("%s reads column %d but only %d features are declared", a.Model.Name(), m, len(a.FeatureNames))
		}
	}
	return nil
}

// Load decodes and validates a gob artifact.
func Load(path string) (*Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open artifact")
	}
	defer f.Close()
	var a Artifact
	if err := gob.NewDecoder(f).Decode(&a); err != nil {
		return nil, errors.Wrapf(err, "decode artifact %s", path)
	}
	if err := a.Validate(); err != nil {
		return nil, errors.Wrapf(err, "artifact %s", path)
	}
	return &a, nil
}

// Save writes a as a gob artifact.
func Save(path string, a *Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "mkdir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create artifact")
	}
	if err := gob.NewEncoder(f).Encode(a); err != nil {
		f.Close()
		return errors.Wrap(err, "encode artifact")
	}
	return f.Close()
}
