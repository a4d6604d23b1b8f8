// Package inference maps a collected record onto a model artifact and turns
// the model output into a risk result.
package inference

import (
	"context"
	"fmt"
	"math"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"diabetesrisk/internal/data"
	"diabetesrisk/internal/features"
	"diabetesrisk/internal/models"
)

// ErrInferenceFailed is the only error Predict returns. The wrapped cause is
// for logs, never for users.
var ErrInferenceFailed = errors.New("inference failed")

type Label string

const (
	LowRisk  Label = "low-risk"
	HighRisk Label = "high-risk"
)

type Result struct {
	Probability float64
	Label       Label
	Model       string
}

// Percent formats the probability for display.
func (r Result) Percent() string {
	return fmt.Sprintf("%.2f%%", r.Probability*100)
}

func (r Result) High() bool { return r.Label == HighRisk }

// Adapter holds the loaded artifact and its binding. Both are read-only, so
// one Adapter may serve concurrent requests.
type Adapter struct {
	artifact *models.Artifact
	binding  *features.Binding
	logger   *zap.Logger
}

func New(artifact *models.Artifact, binding *features.Binding, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{artifact: artifact, binding: binding, logger: logger}
}

func (a *Adapter) ModelName() string { return a.artifact.Model.Name() }

func (a *Adapter) Binding() *features.Binding { return a.binding }

// Predict reindexes rec into the model's column order and runs the model.
// Any failure, including a panic inside the model, comes back wrapped in
// ErrInferenceFailed.
func (a *Adapter) Predict(ctx context.Context, rec data.Record) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("model panicked: %v", r)
		}
		if err != nil {
			a.logger.Warn("inference failed",
				zap.String("model", a.artifact.Model.Name()),
				zap.Strings("fields", rec.Names()),
				zap.Error(err),
			)
			res = Result{}
			err = errors.Wrap(ErrInferenceFailed, err.Error())
		}
	}()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	x, err := a.binding.Vectorize(rec)
	if err != nil {
		return Result{}, err
	}
	X := [][]float64{x}
	m := a.artifact.Model

	preds := m.Predict(X)
	if len(preds) != 1 {
		return Result{}, errors.Errorf("%s returned %d predictions for one row", m.Name(), len(preds))
	}

	var p float64
	if pm, ok := m.(models.ProbaModel); ok {
		ps := pm.PredictProba(X)
		if len(ps) != 1 {
			return Result{}, errors.Errorf("%s returned %d probabilities for one row", m.Name(), len(ps))
		}
		p = ps[0]
	} else {
		p = float64(preds[0])
	}
	if math.IsNaN(p) || p < 0 || p > 1 {
		return Result{}, errors.Errorf("%s produced probability %v outside [0,1]", m.Name(), p)
	}

	res = Result{Probability: p, Label: LowRisk, Model: m.Name()}
	if preds[0] == a.artifact.PositiveClass() {
		res.Label = HighRisk
	}
	a.logger.Debug("inference",
		zap.String("model", res.Model),
		zap.Float64("probability", p),
		zap.String("label", string(res.Label)),
	)
	return res, nil
}
