package schema

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind is the structural shape of a field's legal values.
type Kind string

const (
	KindBinary     Kind = "binary"
	KindDiscrete   Kind = "discrete"
	KindContinuous Kind = "continuous"
	KindFree       Kind = "free"
)

// Option is one labelled choice of a binary field.
type Option struct {
	Label string
	Value float64
}

// FieldSpec describes the domain and display text of one survey field.
type FieldSpec struct {
	Name        string
	Kind        Kind
	Options     []Option
	Values      []float64
	Min         float64
	Max         float64
	Step        float64
	Default     float64
	Label       string
	Description string
}

var ErrOutOfDomain = errors.New("value outside field domain")

// Accept reports whether v is a legal value for the field.
func (f FieldSpec) Accept(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	switch f.Kind {
	case KindBinary:
		for _, o := range f.Options {
			if o.Value == v {
				return true
			}
		}
		return false
	case KindDiscrete:
		for _, d := range f.Values {
			if d == v {
				return true
			}
		}
		return false
	case KindContinuous:
		return v >= f.Min && v <= f.Max
	default:
		return true
	}
}

// Parse reads a submitted value and checks it against the domain.
func (f FieldSpec) Parse(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, errors.Errorf("%s: empty value", f.Name)
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
	if err != nil {
		return 0, errors.Wrapf(err, "%s: parse %q", f.Name, raw)
	}
	if !f.Accept(v) {
		return 0, errors.Wrapf(ErrOutOfDomain, "%s: %v", f.Name, v)
	}
	return v, nil
}

// Choices lists the legal values in display order. Continuous and free
// fields have no finite choice set and return nil.
func (f FieldSpec) Choices() []float64 {
	switch f.Kind {
	case KindBinary:
		out := make([]float64, len(f.Options))
		for i, o := range f.Options {
			out[i] = o.Value
		}
		return out
	case KindDiscrete:
		out := make([]float64, len(f.Values))
		copy(out, f.Values)
		return out
	}
	return nil
}

// Minimum is the smallest legal value, or the default for free fields.
func (f FieldSpec) Minimum() float64 {
	switch f.Kind {
	case KindContinuous:
		return f.Min
	case KindBinary, KindDiscrete:
		cs := f.Choices()
		if len(cs) == 0 {
			return f.Default
		}
		m := cs[0]
		for _, c := range cs[1:] {
			m = math.Min(m, c)
		}
		return m
	}
	return f.Default
}

// FormatValue renders v the way inputs submit it back.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func binary(name, label, desc string) FieldSpec {
	return FieldSpec{
		Name:        name,
		Kind:        KindBinary,
		Options:     []Option{{Label: "Sí", Value: 1}, {Label: "No", Value: 0}},
		Default:     1,
		Label:       label,
		Description: desc,
	}
}

func discrete(name, label, desc string, values ...float64) FieldSpec {
	return FieldSpec{
		Name:        name,
		Kind:        KindDiscrete,
		Values:      values,
		Default:     values[0],
		Label:       label,
		Description: desc,
	}
}

func continuous(name, label, desc string, min, max float64) FieldSpec {
	return FieldSpec{
		Name:        name,
		Kind:        KindContinuous,
		Min:         min,
		Max:         max,
		Step:        0.1,
		Default:     (min + max) / 2,
		Label:       label,
		Description: desc,
	}
}

func free(name string) FieldSpec {
	return FieldSpec{Name: name, Kind: KindFree, Default: 0, Label: name}
}
