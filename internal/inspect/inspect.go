// Package inspect scores synthetic respondents against a loaded artifact and
// summarises the output distribution.
package inspect

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"diabetesrisk/internal/data"
	"diabetesrisk/internal/features"
	"diabetesrisk/internal/inference"
)

type Summary struct {
	N        int
	Failed   int
	HighRisk int
	Mean     float64
	StdDev   float64
	P10      float64
	Median   float64
	P90      float64
}

type Sample struct {
	Rows   []data.Record
	Probs  []float64
	Labels []string
}

// Score draws n respondents from the bound field domains and runs each one
// through the adapter.
func Score(ctx context.Context, a *inference.Adapter, n int, seed int64) (Sample, Summary, error) {
	if n <= 0 {
		return Sample{}, Summary{}, errors.Errorf("sample size must be positive, got %d", n)
	}
	rng := rand.New(rand.NewSource(seed))
	rows := data.GenerateRespondents(rng, n, a.Binding().Specs())
	var s Sample
	sum := Summary{N: n}
	for _, r := range rows {
		if err := ctx.Err(); err != nil {
			return Sample{}, Summary{}, err
		}
		res, err := a.Predict(ctx, r)
		if err != nil {
			sum.Failed++
			continue
		}
		s.Rows = append(s.Rows, r)
		s.Probs = append(s.Probs, res.Probability)
		s.Labels = append(s.Labels, string(res.Label))
		if res.Label == inference.HighRisk {
			sum.HighRisk++
		}
	}
	if len(s.Probs) == 0 {
		return s, sum, nil
	}
	sorted := append([]float64(nil), s.Probs...)
	sort.Float64s(sorted)
	sum.Mean, sum.StdDev = stat.MeanStdDev(sorted, nil)
	sum.P10 = stat.Quantile(0.1, stat.Empirical, sorted, nil)
	sum.Median = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	sum.P90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return s, sum, nil
}

// WriteAlignment prints, per model column, the field domain and whether the
// form layout places it.
func WriteAlignment(w io.Writer, b *features.Binding) error {
	unplaced := make(map[string]bool)
	for _, n := range b.Unplaced() {
		unplaced[n] = true
	}
	for i, s := range b.Specs() {
		status := "ok"
		if unplaced[s.Name] {
			status = "NOT IN FORM"
		}
		if _, err := fmt.Fprintf(w, "%2d  %-22s %-10s %s\n", i, s.Name, s.Kind, status); err != nil {
			return err
		}
	}
	for _, n := range b.Unused() {
		if _, err := fmt.Fprintf(w, "--  %-22s %-10s unused by model\n", n, ""); err != nil {
			return err
		}
	}
	return nil
}

// PlotHistogram saves a histogram of probabilities as a PNG.
func PlotHistogram(path string, probs []float64, bins int) error {
	if bins <= 0 {
		bins = 20
	}
	p := plot.New()
	p.Title.Text = "Distribución de probabilidad"
	p.X.Label.Text = "Probabilidad de diabetes"
	p.Y.Label.Text = "Respondentes"
	p.X.Min = 0
	p.X.Max = 1

	h, err := plotter.NewHist(plotter.Values(probs), bins)
	if err != nil {
		return err
	}
	p.Add(h)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
