package ui

import (
	"fmt"

	"github.com/a1s/w1s/internal/model1"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	pagerFmt    = "%s  [white::b]Page %d of %d[-::-]  %s"
	prevLabel   = "◀ Previous"
	nextLabel   = "Next ▶"
	enabledFmt  = "[aqua::]%s[-::]"
	disabledFmt = "[gray::d]%s[-::-]"
)

// Pager shows the current page and whether paging is possible.
type Pager struct {
	*tview.TextView
}

// NewPager returns a new pager.
func NewPager() *Pager {
	p := Pager{TextView: tview.NewTextView()}
	p.SetDynamicColors(true)
	p.SetTextAlign(tview.AlignCenter)
	p.SetBackgroundColor(tcell.ColorDefault)

	return &p
}

// Update renders the pager for a page of data.
func (p *Pager) Update(data *model1.TableData) {
	p.SetText(PagerText(data.State(), data.PageCount()))
}

// PagerText returns the pager label. Previous is disabled on the first page,
// Next on the last one.
func PagerText(st model1.ViewState, pageCount int) string {
	return fmt.Sprintf(pagerFmt,
		toggle(prevLabel, st.HasPrev()),
		st.CurrentPage,
		pageCount,
		toggle(nextLabel, st.HasNext(pageCount)),
	)
}

func toggle(label string, enabled bool) string {
	if enabled {
		return fmt.Sprintf(enabledFmt, label)
	}
	return fmt.Sprintf(disabledFmt, label)
}
