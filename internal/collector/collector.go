// Package collector gathers one value per bound form field into a record.
package collector

import (
	"context"
	"net/url"

	"go.uber.org/zap"

	"diabetesrisk/internal/data"
	"diabetesrisk/internal/features"
	"diabetesrisk/internal/schema"
)

// Source supplies a value for one field. ok is false when the source has no
// usable value; err is reserved for failures of the source itself.
type Source interface {
	Value(ctx context.Context, spec schema.FieldSpec) (v float64, ok bool, err error)
}

// SectionAware sources are told when a new form section starts.
type SectionAware interface {
	BeginSection(number int, title string)
}

type Collector struct {
	binding *features.Binding
	logger  *zap.Logger
}

func New(binding *features.Binding, logger *zap.Logger) *Collector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Collector{binding: binding, logger: logger}
}

// Collect walks the bound layout in display order. Fields the source cannot
// supply are left out of the record.
func (c *Collector) Collect(ctx context.Context, src Source) (data.Record, error) {
	rec := make(data.Record)
	sa, _ := src.(SectionAware)
	for i, sec := range c.binding.Sections() {
		if sa != nil {
			sa.BeginSection(i+1, sec.Title)
		}
		for _, col := range sec.Columns {
			for _, spec := range col {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				v, ok, err := src.Value(ctx, spec)
				if err != nil {
					return nil, err
				}
				if !ok {
					c.logger.Debug("field not collected", zap.String("field", spec.Name))
					continue
				}
				rec[spec.Name] = v
			}
		}
	}
	return rec, nil
}

// FormSource reads submitted form values. A value that is absent or
// outside the field's domain is treated as not supplied.
type FormSource url.Values

func (f FormSource) Value(_ context.Context, spec schema.FieldSpec) (float64, bool, error) {
	raw, present := url.Values(f)[spec.Name]
	if !present || len(raw) == 0 {
		return 0, false, nil
	}
	v, err := spec.Parse(raw[0])
	if err != nil {
		return 0, false, nil
	}
	return v, true, nil
}
