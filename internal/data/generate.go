package data

import (
	"encoding/csv"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"

	"diabetesrisk/internal/schema"
)

// GenerateRespondents draws n synthetic answers uniformly from each field's
// domain. Continuous values are snapped to the field step.
func GenerateRespondents(rng *rand.Rand, n int, specs []schema.FieldSpec) []Record {
	out := make([]Record, 0, n)
	for i := 0; i < n; i++ {
		rec := make(Record, len(specs))
		for _, s := range specs {
			rec[s.Name] = sample(rng, s)
		}
		out = append(out, rec)
	}
	return out
}

func sample(rng *rand.Rand, s schema.FieldSpec) float64 {
	switch s.Kind {
	case schema.KindBinary, schema.KindDiscrete:
		cs := s.Choices()
		if len(cs) == 0 {
			return s.Default
		}
		return cs[rng.Intn(len(cs))]
	case schema.KindContinuous:
		v := s.Min + rng.Float64()*(s.Max-s.Min)
		if s.Step > 0 {
			v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
			v = math.Round(v*1e6) / 1e6
		}
		return math.Min(math.Max(v, s.Min), s.Max)
	}
	return s.Default
}

// WriteScoredCSV writes one line per respondent: the columns in order,
// then the probability and label.
func WriteScoredCSV(path string, columns []string, rows []Record, probs []float64, labels []string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	header := append(append([]string{}, columns...), "probability", "label")
	if err := w.Write(header); err != nil {
		return err
	}
	for i, r := range rows {
		rec := make([]string, 0, len(header))
		for _, c := range columns {
			rec = append(rec, schema.FormatValue(r[c]))
		}
		rec = append(rec, strconv.FormatFloat(probs[i], 'f', 6, 64), labels[i])
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
