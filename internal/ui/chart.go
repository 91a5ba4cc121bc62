package ui

import (
	"fmt"
	"strings"

	"github.com/a1s/w1s/internal/model1"
	"github.com/a1s/w1s/internal/render"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	// ChartTitle titles the continent chart.
	ChartTitle = "Distribution of Countries Across Continents"

	chartTitleFmt   = " %s "
	skippedTitleFmt = " %s [orange::](%d skipped)[-::] "
	defaultBarWidth = 30
)

// Chart draws continent tallies as colored horizontal bars.
type Chart struct {
	*tview.TextView

	barWidth int
}

// NewChart returns a new chart.
func NewChart() *Chart {
	c := Chart{
		TextView: tview.NewTextView(),
		barWidth: defaultBarWidth,
	}
	c.SetDynamicColors(true)
	c.SetWrap(false)
	c.SetBorder(true)
	c.SetBorderPadding(1, 0, 1, 1)
	c.SetBackgroundColor(tcell.ColorDefault)
	c.SetTitle(fmt.Sprintf(chartTitleFmt, ChartTitle))
	c.ShowLoading()

	return &c
}

// ShowLoading displays the loading state.
func (c *Chart) ShowLoading() {
	c.SetText("[gray::]" + LoadingMsg + "[-::]")
}

// ShowError displays a load failure.
func (c *Chart) ShowError(err error) {
	c.SetText(fmt.Sprintf("[red::]"+ErrorFmt+"[-::]", sanitize(err.Error())))
}

// Update draws the tallies. Skipped records are counted in the title.
func (c *Chart) Update(tt model1.Tallies, skipped int) {
	c.SetTitle(ChartTitleText(skipped))
	c.SetText(ChartText(tt, c.barWidth))
}

// ChartTitleText returns the chart title.
func ChartTitleText(skipped int) string {
	if skipped > 0 {
		return fmt.Sprintf(skippedTitleFmt, ChartTitle, skipped)
	}
	return fmt.Sprintf(chartTitleFmt, ChartTitle)
}

// ChartText renders one bar per tally in tally order, colored by palette index.
func ChartText(tt model1.Tallies, width int) string {
	if len(tt) == 0 {
		return "[gray::]No continents found[-::]"
	}

	var labelWidth int
	for _, t := range tt {
		labelWidth = max(labelWidth, len([]rune(t.DisplayLabel)))
	}

	r := render.NewTally(tt.Total())
	maxCount := tt.Max()
	var b strings.Builder
	for _, t := range tt {
		row := model1.NewRow(len(r.Header()))
		if err := r.Render(t, &row); err != nil {
			continue
		}
		fmt.Fprintf(&b, "[#%06x]■[-] %-*s [#%06x]%s[-] %s\n",
			model1.PaletteColor(t.ColorIndex).Hex(),
			labelWidth,
			sanitize(t.DisplayLabel),
			model1.PaletteColor(t.ColorIndex).Hex(),
			render.Bar(t.Count, maxCount, width),
			row.Fields[2],
		)
	}

	return b.String()
}

var tagReplacer = strings.NewReplacer("[", "(", "]", ")")

// sanitize keeps text from being parsed as color tags.
func sanitize(s string) string {
	return tagReplacer.Replace(s)
}
