// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of a1s

package ui

import (
	"fmt"

	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	// DetailPage is the page id of the record detail dialog.
	DetailPage = "detail-dialog"

	// ErrorPage is the page id of the error dialog.
	ErrorPage = "error-dialog"

	// CloseLabel labels the dialog dismiss button.
	CloseLabel = "Close"

	dialogTextFmt = "[yellow::b]%s[-::-]\n\n%s"
)

// DialogCallback is called when dialog is dismissed.
type DialogCallback func()

// Dialog represents a modal dialog shown over a page stack.
type Dialog struct {
	*tview.Modal

	pages  *Pages
	pageID string
	title  string
	onDone DialogCallback
}

// NewDialog creates a new dialog.
func NewDialog(pages *Pages, pageID string) *Dialog {
	d := &Dialog{
		Modal:  tview.NewModal(),
		pages:  pages,
		pageID: pageID,
	}
	d.SetBackgroundColor(tcell.ColorDefault)
	d.SetTextColor(tcell.ColorWhite)

	return d
}

// SetTitle sets the dialog heading.
func (d *Dialog) SetTitle(title string) *Dialog {
	d.title = title
	return d
}

// SetMessage sets the dialog body below the heading.
func (d *Dialog) SetMessage(msg string) *Dialog {
	if d.title == "" {
		d.Modal.SetText(msg)
		return d
	}
	d.Modal.SetText(fmt.Sprintf(dialogTextFmt, d.title, msg))
	return d
}

// SetButtons configures dialog buttons.
func (d *Dialog) SetButtons(labels []string) *Dialog {
	d.AddButtons(labels)
	return d
}

// SetDoneCallback sets the callback for when dialog closes.
func (d *Dialog) SetDoneCallback(fn DialogCallback) *Dialog {
	d.onDone = fn
	return d
}

// SetButtonHandler dismisses the dialog on any button, then calls handler.
func (d *Dialog) SetButtonHandler(handler func(int, string)) *Dialog {
	d.SetDoneFunc(func(buttonIndex int, buttonLabel string) {
		d.Dismiss()
		if handler != nil {
			handler(buttonIndex, buttonLabel)
		}
	})
	return d
}

// SetColors configures dialog colors.
func (d *Dialog) SetColors(text, btnBg, btnText tcell.Color) *Dialog {
	d.SetTextColor(text)
	d.SetButtonBackgroundColor(btnBg)
	d.SetButtonTextColor(btnText)
	return d
}

// Show displays the dialog as a modal overlay.
func (d *Dialog) Show() {
	if d.pages != nil {
		d.pages.AddPage(d.pageID, d, true, true)
	}
}

// Dismiss removes the dialog from display.
func (d *Dialog) Dismiss() {
	if d.pages != nil {
		d.pages.RemovePage(d.pageID)
	}
	if d.onDone != nil {
		d.onDone()
	}
}

// PageID returns the dialog's page identifier.
func (d *Dialog) PageID() string {
	return d.pageID
}

// DetailDialog shows a record document with a Close button.
func DetailDialog(pages *Pages, title, body string, done DialogCallback) *Dialog {
	return NewDialog(pages, DetailPage).
		SetTitle(title).
		SetMessage(body).
		SetButtons([]string{CloseLabel}).
		SetColors(tcell.ColorWhite, tcell.ColorDarkCyan, tcell.ColorWhite).
		SetDoneCallback(done).
		SetButtonHandler(nil)
}

// ErrorDialog creates a styled error dialog.
func ErrorDialog(pages *Pages, title, message string, done DialogCallback) *Dialog {
	return NewDialog(pages, ErrorPage).
		SetTitle(title).
		SetMessage(message).
		SetButtons([]string{CloseLabel}).
		SetColors(tcell.ColorRed, tcell.ColorRed, tcell.ColorWhite).
		SetDoneCallback(done).
		SetButtonHandler(nil)
}
