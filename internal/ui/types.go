package ui

import (
	"context"
	"strconv"

	"github.com/a1s/w1s/internal/model"
	"github.com/a1s/w1s/internal/model1"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
	"github.com/fvbommel/sortorder"
	gcell "github.com/gdamore/tcell/v2"
)

// Tabular represents a paged table model.
type Tabular interface {
	// Peek returns current model data.
	Peek() *model1.TableData

	// SetSort sorts by a record field, toggling direction on repeat.
	SetSort(string)

	// SetNameFilter filters records by name.
	SetNameFilter(string)

	// NextPage moves to the next page if any.
	NextPage() bool

	// PrevPage moves to the previous page if any.
	PrevPage() bool

	// Select marks the record behind a visible row as selected.
	Select(id string) (model1.Record, bool)

	// SelectRecord sets or clears the selected record.
	SelectRecord(model1.Record)

	// AddListener registers a model listener.
	AddListener(model.TableListener)

	// RemoveListener unregister a model listener.
	RemoveListener(model.TableListener)
}

// MenuHint represents a keyboard mnemonic.
type MenuHint struct {
	Mnemonic    string
	Description string
	Visible     bool
}

// IsBlank checks if menu hint is a placeholder.
func (m MenuHint) IsBlank() bool {
	return m.Mnemonic == "" && m.Description == "" && !m.Visible
}

// MenuHints represents a collection of hints.
type MenuHints []MenuHint

// Len returns the hints length.
func (h MenuHints) Len() int {
	return len(h)
}

// Swap swaps two elements.
func (h MenuHints) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

// Less sorts numeric mnemonics first, then by description.
func (h MenuHints) Less(i, j int) bool {
	n, err1 := strconv.Atoi(h[i].Mnemonic)
	m, err2 := strconv.Atoi(h[j].Mnemonic)
	switch {
	case err1 == nil && err2 == nil:
		return n < m
	case err1 == nil:
		return true
	case err2 == nil:
		return false
	}
	return sortorder.NaturalLess(h[i].Description, h[j].Description)
}

// Hinter represent a menu mnemonic provider.
type Hinter interface {
	// Hints returns a collection of menu hints.
	Hints() MenuHints
}

// Primitive represents a UI primitive.
type Primitive interface {
	tview.Primitive

	// Name returns the view name.
	Name() string
}

// Igniter represents a runnable view.
type Igniter interface {
	// Init initializes a component.
	Init(ctx context.Context) error

	// Start starts a component.
	Start()

	// Stop terminates a component.
	Stop()
}

// Component represents a ui component.
type Component interface {
	Primitive
	Igniter
	Hinter
}

// AsColor converts a model color to a screen color.
func AsColor(c gcell.Color) tcell.Color {
	if !c.Valid() {
		return tcell.ColorDefault
	}
	return tcell.NewHexColor(c.Hex())
}
