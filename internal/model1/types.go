package model1

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

const NAValue = "n/a"

// ResEvent tells how a row changed since the previous load.
type ResEvent int

const (
	EventUnchanged ResEvent = 1 << iota
	EventAdd
	EventUpdate
)

// DecoratorFunc decorates a string
type DecoratorFunc func(string) string

// ColorerFunc represents a resource row colorer
type ColorerFunc func(h Header, re *RowEvent) tcell.Color

// Renderer represents a resource renderer
type Renderer interface {
	Render(o any, row *Row) error
	Header() Header
	ColorerFunc() ColorerFunc
}

// Record is a table entry. Field reports false when the named field is
// undefined for this record.
type Record interface {
	ID() string
	Field(name string) (string, bool)
}

// Labeled is an entry tagged with a group label.
type Labeled interface {
	ID() string
	Label() (string, bool)
}

// MalformedRecordError flags a record missing a required field.
type MalformedRecordError struct {
	ID    string
	Field string
}

func (e *MalformedRecordError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("malformed record: missing %q", e.Field)
	}
	return fmt.Sprintf("malformed record %q: missing %q", e.ID, e.Field)
}
