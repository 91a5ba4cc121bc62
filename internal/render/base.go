package render

import "github.com/a1s/w1s/internal/model1"

// Display values.
const (
	MissingValue = "<none>"
	NAValue      = model1.NAValue
)

// Base carries the behavior shared by all renderers.
type Base struct{}

// ColorerFunc colors rows by event kind and grays out invalid rows.
func (Base) ColorerFunc() model1.ColorerFunc {
	return model1.DefaultColorer
}

// fieldsOf renders the header fields of r in column order. Undefined fields
// render blank.
func fieldsOf(r model1.Record, h model1.Header) model1.Fields {
	ff := make(model1.Fields, 0, len(h))
	for _, col := range h {
		v, _ := r.Field(col.Field)
		ff = append(ff, v)
	}

	return ff
}
