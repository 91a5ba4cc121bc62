package render

import (
	"fmt"

	"github.com/a1s/w1s/internal/model1"
	"github.com/derailed/tview"
)

// Tally renders continent tallies.
type Tally struct {
	Base

	total int
}

// NewTally returns a renderer computing shares against total.
func NewTally(total int) *Tally {
	return &Tally{total: total}
}

// Header returns the tally header.
func (*Tally) Header() model1.Header {
	return model1.Header{
		{Name: "CONTINENT", Attrs: model1.Attrs{Required: true}},
		{Name: "COUNT", Attrs: model1.Attrs{Align: tview.AlignRight}},
		{Name: "SHARE", Attrs: model1.Attrs{Align: tview.AlignRight}},
	}
}

// Render renders a tally to a row.
func (t *Tally) Render(o any, row *model1.Row) error {
	ta, ok := o.(model1.Tally)
	if !ok {
		return fmt.Errorf("expected Tally, got %T", o)
	}

	row.ID = ta.Label
	row.Fields = model1.Fields{
		ta.Label,
		AsCount(ta.Count),
		AsPercent(ta.Count, t.total),
	}

	return nil
}
