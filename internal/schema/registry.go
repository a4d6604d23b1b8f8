package schema

import (
	"sort"
)

// Registry holds the static field definitions. It is built once at startup
// and never mutated afterwards.
type Registry struct {
	fields map[string]FieldSpec
}

func NewRegistry(specs ...FieldSpec) *Registry {
	r := &Registry{fields: make(map[string]FieldSpec, len(specs))}
	for _, s := range specs {
		r.fields[s.Name] = s
	}
	return r
}

// Default returns the registry for the BRFSS diabetes health indicators.
func Default() *Registry {
	sex := binary("Sex", "Sexo", "¿Cuál es su sexo?")
	sex.Options = []Option{{Label: "Hombre", Value: 1}, {Label: "Mujer", Value: 0}}

	return NewRegistry(
		binary("Diabetes_binary", "Diabetes", "¿Alguna vez le han diagnosticado diabetes o prediabetes?"),
		binary("HighBP", "Presión Alta", "¿Alguna vez le han dicho que tiene presión arterial alta?"),
		binary("HighChol", "Colesterol Alto", "¿Alguna vez le han dicho que tiene colesterol alto?"),
		binary("CholCheck", "Chequeo de Colesterol", "¿Se ha hecho un chequeo de colesterol en los últimos 5 años?"),
		binary("Smoker", "Fumador", "¿Es usted fumador?"),
		binary("Stroke", "Accidente Cerebrovascular", "¿Alguna vez ha tenido un accidente cerebrovascular?"),
		binary("HeartDiseaseorAttack", "Enfermedad Cardiaca", "¿Alguna vez le han dicho que tiene enfermedad cardíaca?"),
		binary("PhysActivity", "Actividad Física", "¿Realiza alguna actividad física regularmente?"),
		binary("Fruits", "Consumo de Frutas", "¿Consume frutas al menos una vez al día?"),
		binary("Veggies", "Consumo de Verduras", "¿Consume verduras al menos una vez al día?"),
		binary("HvyAlcoholConsump", "Consumo Excesivo de Alcohol", "¿Consume alcohol en exceso?"),
		binary("AnyHealthcare", "Atención Médica", "¿Tiene acceso a atención médica?"),
		binary("NoDocbcCost", "Costo de Atención Médica", "¿Alguna vez no ha podido ver a un médico debido a costos?"),
		binary("DiffWalk", "Dificultad para Caminar", "¿Tiene dificultad para caminar o subir escaleras?"),
		sex,
		discrete("GenHlth", "Salud General", "¿Cómo calificaría su salud en general?", 1, 2, 3, 4, 5),
		discrete("MentHlth", "Salud Mental", "¿Cuántos días en el último mes ha tenido problemas de salud mental?",
			0, 1, 2, 3, 4, 5, 7, 10, 15, 30),
		discrete("PhysHlth", "Salud Física", "¿Cuántos días en el último mes ha tenido problemas de salud física?",
			0, 1, 2, 3, 4, 5, 6, 10, 15, 30),
		discrete("Age", "Edad", "¿Cuál es su grupo de edad?", 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13),
		discrete("Education", "Nivel Educativo", "¿Cuál es su nivel educativo?", 1, 2, 3, 4, 5, 6),
		discrete("Income", "Ingreso Familiar", "¿Cuál es su nivel de ingreso familiar?", 1, 2, 3, 4, 5, 6, 7, 8),
		continuous("BMI", "Índice de Masa Corporal", "¿Cuál es su índice de masa corporal (IMC)?", 18.0, 60.0),
	)
}

// Lookup returns the spec for name. Unknown names get a free-form numeric
// spec with default 0.
func (r *Registry) Lookup(name string) FieldSpec {
	if s, ok := r.fields[name]; ok {
		return s
	}
	return free(name)
}

func (r *Registry) Has(name string) bool {
	_, ok := r.fields[name]
	return ok
}

// Names returns the registered field names, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.fields))
	for n := range r.fields {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// WithTexts returns a copy of the registry with display text replaced.
// Entries for unknown fields are ignored.
func (r *Registry) WithTexts(texts map[string]Text) *Registry {
	out := &Registry{fields: make(map[string]FieldSpec, len(r.fields))}
	for name, s := range r.fields {
		if t, ok := texts[name]; ok {
			if l := sanitizeText(t.Label); l != "" {
				s.Label = l
			}
			if d := sanitizeText(t.Description); d != "" {
				s.Description = d
			}
		}
		out.fields[name] = s
	}
	return out
}
