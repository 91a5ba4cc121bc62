package main

import (
	"fmt"
	"io"

	"github.com/derailed/tview"
	"github.com/olekukonko/tablewriter"

	"github.com/a1s/w1s/internal/model1"
	"github.com/a1s/w1s/internal/render"
)

// newPlainWriter returns a borderless, left aligned table writer.
func newPlainWriter(w io.Writer) *tablewriter.Table {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)

	return tw
}

func newWriter(w io.Writer, h model1.Header) *tablewriter.Table {
	tw := newPlainWriter(w)
	tw.SetHeader(h.ColumnNames())
	aa := make([]int, 0, len(h))
	for _, c := range h {
		aa = append(aa, asAlign(c.Align))
	}
	tw.SetColumnAlignment(aa)

	return tw
}

func asAlign(a int) int {
	switch a {
	case tview.AlignRight:
		return tablewriter.ALIGN_RIGHT
	case tview.AlignCenter:
		return tablewriter.ALIGN_CENTER
	default:
		return tablewriter.ALIGN_LEFT
	}
}

// printTable writes the visible page of a country table.
func printTable(w io.Writer, data *model1.TableData) error {
	if data.HasError() {
		return fmt.Errorf("%s", data.Error())
	}
	if data.Empty() {
		if st := data.State(); st.NameFilter != "" {
			_, err := fmt.Fprintln(w, "No matching countries")
			return err
		}
		_, err := fmt.Fprintln(w, "No countries found")
		return err
	}

	tw := newWriter(w, data.Header())
	data.RowEvents().Range(func(_ int, re model1.RowEvent) bool {
		ff := make([]string, 0, len(re.Row.Fields))
		for _, f := range re.Row.Fields {
			ff = append(ff, render.Missing(f))
		}
		tw.Append(ff)
		return true
	})
	tw.Render()

	filtered, total := data.Counts()
	st := data.State()
	_, err := fmt.Fprintf(w, "\nPage %d of %d (%d of %d countries)\n", st.CurrentPage, data.PageCount(), filtered, total)

	return err
}

// printTallies writes continent tallies and the number of skipped records.
func printTallies(w io.Writer, tt model1.Tallies, skipped int) error {
	if len(tt) == 0 {
		if _, err := fmt.Fprintln(w, "No continents found"); err != nil {
			return err
		}
	} else {
		r := render.NewTally(tt.Total())
		tw := newWriter(w, r.Header())
		for _, t := range tt {
			var row model1.Row
			if err := r.Render(t, &row); err != nil {
				return err
			}
			tw.Append(row.Fields)
		}
		tw.Render()
	}
	if skipped > 0 {
		_, err := fmt.Fprintf(w, "\nSkipped %d malformed record%s\n", skipped, plural(skipped))
		return err
	}

	return nil
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
