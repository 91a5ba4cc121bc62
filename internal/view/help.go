// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of a1s

package view

import (
	"fmt"

	"github.com/a1s/w1s/internal/ui"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const helpPage = "help"

// Help displays the keybindings of the current view.
type Help struct {
	*tview.Table

	closeFn func()
}

// NewHelp creates a new help view for the given view hints.
func NewHelp(view ui.MenuHints) *Help {
	h := Help{Table: tview.NewTable()}
	h.build(view)

	return &h
}

// SetCloseFn sets the callback when help is closed.
func (h *Help) SetCloseFn(fn func()) {
	h.closeFn = fn
}

func (h *Help) build(view ui.MenuHints) {
	h.SetBorder(true)
	h.SetTitle(" Help ")
	h.SetTitleAlign(tview.AlignCenter)
	h.SetBorderColor(tcell.ColorYellow)
	h.SetBackgroundColor(tcell.ColorDefault)
	h.SetSelectable(false, false)
	h.populate(view)

	h.SetInputCapture(func(evt *tcell.EventKey) *tcell.EventKey {
		if evt.Key() == tcell.KeyEsc || evt.Key() == tcell.KeyEnter || evt.Rune() == '?' {
			if h.closeFn != nil {
				h.closeFn()
			}
			return nil
		}
		return evt
	})
}

// helpColumns returns the help sections in display order.
func helpColumns(view ui.MenuHints) ([]string, []ui.MenuHints) {
	general := ui.MenuHints{
		{Mnemonic: "?", Description: "Help"},
		{Mnemonic: "Ctrl-R", Description: "Refresh"},
		{Mnemonic: "q", Description: "Quit"},
	}
	nav := ui.MenuHints{
		{Mnemonic: "j", Description: "Down"},
		{Mnemonic: "k", Description: "Up"},
		{Mnemonic: "g", Description: "Top"},
		{Mnemonic: "G", Description: "Bottom"},
		{Mnemonic: "n ] PgDn", Description: "Next Page"},
		{Mnemonic: "p [ PgUp", Description: "Prev Page"},
		{Mnemonic: "Esc", Description: "Clear Filter"},
	}

	return []string{"COUNTRIES", "GENERAL", "NAVIGATION"}, []ui.MenuHints{view, general, nav}
}

func (h *Help) populate(view ui.MenuHints) {
	headers, columns := helpColumns(view)

	var maxRows int
	for _, col := range columns {
		maxRows = max(maxRows, len(col))
	}

	// Each section spans a key, a description and a spacer column.
	const colWidth = 3
	for colIdx, col := range columns {
		baseCol := colIdx * colWidth
		h.SetCell(0, baseCol, tview.NewTableCell(headers[colIdx]).
			SetTextColor(tcell.ColorAqua).
			SetAttributes(tcell.AttrBold).
			SetSelectable(false))

		for rowIdx, hint := range col {
			h.SetCell(rowIdx+1, baseCol, tview.NewTableCell(fmt.Sprintf("<%s>", hint.Mnemonic)).
				SetTextColor(tcell.ColorYellow).
				SetSelectable(false))
			h.SetCell(rowIdx+1, baseCol+1, tview.NewTableCell(hint.Description).
				SetTextColor(tcell.ColorWhite).
				SetSelectable(false).
				SetExpansion(1))
		}
		if colIdx == len(columns)-1 {
			continue
		}
		for row := 0; row <= maxRows; row++ {
			h.SetCell(row, baseCol+2, tview.NewTableCell("").
				SetSelectable(false).
				SetExpansion(1))
		}
	}

	h.SetCell(maxRows+2, 0, tview.NewTableCell("<esc> to close").
		SetTextColor(tcell.ColorGray).
		SetSelectable(false))
}
