package model1

// Fields holds the rendered cells of a row, in header order.
type Fields []string

// Row is a rendered record keyed by the record id.
type Row struct {
	ID     string
	Fields Fields
}

// NewRow returns a row with size blank cells.
func NewRow(size int) Row {
	return Row{Fields: make(Fields, size)}
}
