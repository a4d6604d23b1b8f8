package schema

import (
	"github.com/pkg/errors"
)

// Section is one titled group of the form, split into two columns.
type Section struct {
	Title   string
	Columns [2][]string
}

// Fields returns the section's field names, left column first.
func (s Section) Fields() []string {
	out := make([]string, 0, len(s.Columns[0])+len(s.Columns[1]))
	out = append(out, s.Columns[0]...)
	return append(out, s.Columns[1]...)
}

// Layout is the ordered list of form sections.
type Layout []Section

// Fields returns every field name in display order.
func (l Layout) Fields() []string {
	var out []string
	for _, s := range l {
		out = append(out, s.Fields()...)
	}
	return out
}

const (
	LayoutCompact = "compact"
	LayoutFull    = "full"
)

// CompactLayout is the grouping served with the reduced-feature model.
func CompactLayout() Layout {
	return Layout{
		{Title: "Datos Demográficos", Columns: [2][]string{
			{"Age", "Income"},
			{"Education", "Sex"},
		}},
		{Title: "Salud y Bienestar", Columns: [2][]string{
			{"BMI", "PhysHlth"},
			{"HvyAlcoholConsump", "GenHlth"},
		}},
		{Title: "Antecedentes Médicos", Columns: [2][]string{
			{"CholCheck", "HighBP", "HighChol", "Stroke"},
			{"HeartDiseaseorAttack", "DiffWalk"},
		}},
	}
}

// FullLayout places all 21 predictors.
func FullLayout() Layout {
	return Layout{
		{Title: "Datos Demográficos", Columns: [2][]string{
			{"Age", "Income"},
			{"Education", "Sex"},
		}},
		{Title: "Salud y Bienestar", Columns: [2][]string{
			{"BMI", "MentHlth", "PhysHlth", "AnyHealthcare", "PhysActivity"},
			{"Fruits", "Veggies", "HvyAlcoholConsump", "NoDocbcCost", "Smoker"},
		}},
		{Title: "Antecedentes Médicos", Columns: [2][]string{
			{"CholCheck", "HighBP", "HighChol", "Stroke"},
			{"HeartDiseaseorAttack", "DiffWalk"},
		}},
		{Title: "Evaluación General", Columns: [2][]string{
			{"GenHlth"},
			{},
		}},
	}
}

// LayoutByName resolves a configured layout name.
func LayoutByName(name string) (Layout, error) {
	switch name {
	case "", LayoutCompact:
		return CompactLayout(), nil
	case LayoutFull:
		return FullLayout(), nil
	}
	return nil, errors.Errorf("unknown layout %q", name)
}
