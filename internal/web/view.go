package web

import (
	"html/template"
	"net/url"

	"diabetesrisk/internal/features"
	"diabetesrisk/internal/inference"
	"diabetesrisk/internal/schema"
)

// errorMessage is the only failure text users ever see.
const errorMessage = "Error en la predicción. Revise los datos e intente de nuevo."

type page struct {
	Sections []sectionView
	Result   *inference.Result
	Error    string
}

type sectionView struct {
	Number  int
	Title   string
	Columns [2][]fieldView
}

type fieldView struct {
	Name        string
	Kind        string
	Label       template.HTML
	Description template.HTML
	Options     []optionView
	Min         string
	Max         string
	Step        string
	Value       string
}

type optionView struct {
	Label    string
	Value    string
	Selected bool
}

// buildPage renders the bound sections, pre-filling each field from form
// when it holds a legal value and from the field default otherwise.
func buildPage(sections []features.Section, form url.Values) page {
	p := page{Sections: make([]sectionView, 0, len(sections))}
	for i, sec := range sections {
		sv := sectionView{Number: i + 1, Title: sec.Title}
		for c, col := range sec.Columns {
			for _, spec := range col {
				sv.Columns[c] = append(sv.Columns[c], buildField(spec, current(spec, form)))
			}
		}
		p.Sections = append(p.Sections, sv)
	}
	return p
}

func current(spec schema.FieldSpec, form url.Values) float64 {
	if form != nil {
		if v, err := spec.Parse(form.Get(spec.Name)); err == nil {
			return v
		}
	}
	return spec.Default
}

func buildField(spec schema.FieldSpec, value float64) fieldView {
	fv := fieldView{
		Name:        spec.Name,
		Kind:        string(spec.Kind),
		Label:       template.HTML(spec.Label),
		Description: template.HTML(spec.Description),
		Value:       schema.FormatValue(value),
	}
	switch spec.Kind {
	case schema.KindBinary:
		for _, o := range spec.Options {
			fv.Options = append(fv.Options, optionView{Label: o.Label, Value: schema.FormatValue(o.Value), Selected: o.Value == value})
		}
	case schema.KindDiscrete:
		for _, v := range spec.Values {
			s := schema.FormatValue(v)
			fv.Options = append(fv.Options, optionView{Label: s, Value: s, Selected: v == value})
		}
	case schema.KindContinuous:
		fv.Min = schema.FormatValue(spec.Min)
		fv.Max = schema.FormatValue(spec.Max)
		fv.Step = schema.FormatValue(spec.Step)
	}
	return fv
}
