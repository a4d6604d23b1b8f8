package data

import "sort"

// Record is one submission: a value per collected field name. It is built
// fresh for every submission and discarded afterwards.
type Record map[string]float64

func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Names returns the record's field names, sorted.
func (r Record) Names() []string {
	out := make([]string, 0, len(r))
	for k := range r {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
