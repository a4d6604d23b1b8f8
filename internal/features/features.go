package features

import (
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"diabetesrisk/internal/data"
	"diabetesrisk/internal/schema"
)

// ErrMissingFeature marks a model feature absent from a record or layout.
var ErrMissingFeature = errors.New("missing feature")

// Section is a layout section reduced to the fields the model consumes.
type Section struct {
	Title   string
	Columns [2][]schema.FieldSpec
}

// Binding is the intersection of the form layout with a model's declared
// feature list, computed once at startup.
type Binding struct {
	columns  []string
	specs    []schema.FieldSpec
	index    map[string]int
	sections []Section
	unplaced []string
	unused   []string
}

// Bind intersects layout with featureNames. Layout fields the model does
// not declare are dropped and reported by Unused; model features the layout
// never places are reported by Check.
func Bind(reg *schema.Registry, layout schema.Layout, featureNames []string) (*Binding, error) {
	if len(featureNames) == 0 {
		return nil, errors.New("model declares no features")
	}
	b := &Binding{
		columns: append([]string(nil), featureNames...),
		index:   make(map[string]int, len(featureNames)),
	}
	for i, n := range featureNames {
		if _, dup := b.index[n]; dup {
			return nil, errors.Errorf("feature %q declared twice", n)
		}
		b.index[n] = i
		b.specs = append(b.specs, reg.Lookup(n))
	}

	placed := make(map[string]bool)
	for _, s := range layout {
		sec := Section{Title: s.Title}
		for c, col := range s.Columns {
			for _, name := range col {
				if _, ok := b.index[name]; !ok {
					b.unused = append(b.unused, name)
					continue
				}
				if placed[name] {
					return nil, errors.Errorf("layout places %q twice", name)
				}
				placed[name] = true
				sec.Columns[c] = append(sec.Columns[c], reg.Lookup(name))
			}
		}
		if len(sec.Columns[0])+len(sec.Columns[1]) > 0 {
			b.sections = append(b.sections, sec)
		}
	}
	for _, n := range featureNames {
		if !placed[n] {
			b.unplaced = append(b.unplaced, n)
		}
	}
	return b, nil
}

// Check reports every model feature the form will never collect.
func (b *Binding) Check() error {
	var err error
	for _, n := range b.unplaced {
		err = multierr.Append(err, errors.Wrapf(ErrMissingFeature, "%q is not placed in the form layout", n))
	}
	return err
}

// Columns is the model's declared feature order.
func (b *Binding) Columns() []string { return append([]string(nil), b.columns...) }

// Specs returns the field specs in column order.
func (b *Binding) Specs() []schema.FieldSpec { return append([]schema.FieldSpec(nil), b.specs...) }

// Sections returns the bound layout in display order.
func (b *Binding) Sections() []Section { return b.sections }

// Unused lists layout fields the model does not consume.
func (b *Binding) Unused() []string { return append([]string(nil), b.unused...) }

// Unplaced lists model features absent from the layout.
func (b *Binding) Unplaced() []string { return append([]string(nil), b.unplaced...) }

// Wants reports whether name is one of the model's features.
func (b *Binding) Wants(name string) bool {
	_, ok := b.index[name]
	return ok
}

// Row is a record reindexed into model column order.
type Row struct {
	Columns []string
	Values  []float64
}

// Record converts the row back into a name-keyed record.
func (r Row) Record() data.Record {
	out := make(data.Record, len(r.Columns))
	for i, c := range r.Columns {
		out[c] = r.Values[i]
	}
	return out
}

// Reindex selects the model's columns from rec in declared order. Keys the
// model does not declare are dropped; every missing column is reported.
func (b *Binding) Reindex(rec data.Record) (Row, error) {
	row := Row{Columns: b.Columns(), Values: make([]float64, len(b.columns))}
	var err error
	for i, c := range b.columns {
		v, ok := rec[c]
		if !ok {
			err = multierr.Append(err, errors.Wrap(ErrMissingFeature, c))
			continue
		}
		row.Values[i] = v
	}
	if err != nil {
		return Row{}, err
	}
	return row, nil
}

// Vectorize is Reindex returning only the values, ready for a model.
func (b *Binding) Vectorize(rec data.Record) ([]float64, error) {
	row, err := b.Reindex(rec)
	if err != nil {
		return nil, err
	}
	return row.Values, nil
}
