package model1

// Attrs are the display attributes of a column.
type Attrs struct {
	// Align is a tview alignment.
	Align int

	// Required marks the row invalid when the cell is blank.
	Required bool

	Decorator DecoratorFunc
}

// HeaderColumn is a table column bound to a record field. Columns of
// derived tables, like tallies, may have no field.
type HeaderColumn struct {
	Name  string
	Field string
	Attrs
}

// Header lists the columns of a table in display order.
type Header []HeaderColumn

// IndexOfField returns the column bound to a record field.
func (h Header) IndexOfField(field string) (int, bool) {
	for i, c := range h {
		if c.Field == field {
			return i, true
		}
	}
	return -1, false
}

// FieldAt returns the record field of column col.
func (h Header) FieldAt(col int) (string, bool) {
	if col < 0 || col >= len(h) || h[col].Field == "" {
		return "", false
	}
	return h[col].Field, true
}

// ColumnNames returns the column titles.
func (h Header) ColumnNames() []string {
	cc := make([]string, 0, len(h))
	for _, c := range h {
		cc = append(cc, c.Name)
	}
	return cc
}

// Fields returns the record fields backing the header, in column order.
func (h Header) Fields() []string {
	ff := make([]string, 0, len(h))
	for _, c := range h {
		if c.Field != "" {
			ff = append(ff, c.Field)
		}
	}
	return ff
}
