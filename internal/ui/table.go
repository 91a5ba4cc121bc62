// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of a1s

package ui

import (
	"fmt"
	"sync"

	"github.com/a1s/w1s/internal/dao"
	"github.com/a1s/w1s/internal/model1"
	"github.com/derailed/tcell/v2"
	"github.com/derailed/tview"
)

const (
	// TitleFmt formats the table title with resource, matches and total.
	TitleFmt = " <%s>[%d/%d] "

	// FilterTitleFmt formats the table title while a name filter is set.
	FilterTitleFmt = " <%s>[%d/%d] Filter: %s%s "

	filterCursor  = "█"
	ascIndicator  = " ▲"
	descIndicator = " ▼"

	// LoadingMsg shows while the first load is pending.
	LoadingMsg = "Loading..."

	// ErrorFmt formats a load failure.
	ErrorFmt = "Error: %s"

	noDataMsg     = "No countries found"
	noMatchingMsg = "No matching countries"
)

// SelectFunc receives the record selected in the table.
type SelectFunc func(model1.Record)

// Table renders a page of records and forwards view state changes to its model.
type Table struct {
	*tview.Table

	resourceID   *dao.ResourceID
	actions      *KeyActions
	model        Tabular
	colorerFn    model1.ColorerFunc
	selectFn     SelectFunc
	data         *model1.TableData
	filterText   string
	filterActive bool
	mx           sync.RWMutex
}

// NewTable returns a new table instance.
func NewTable(rid *dao.ResourceID) *Table {
	return &Table{
		Table:      tview.NewTable(),
		resourceID: rid,
		actions:    NewKeyActions(),
		colorerFn:  model1.DefaultColorer,
	}
}

// Init initializes the table component.
func (t *Table) Init() {
	t.SetFixed(1, 0)
	t.SetBorder(true)
	t.SetBorderAttributes(tcell.AttrBold)
	t.SetBorderPadding(0, 0, 1, 1)
	t.SetSelectable(true, false)
	t.SetBackgroundColor(tcell.ColorDefault)
	t.SetBorderColor(tcell.ColorWhite)
	t.SetTitle(fmt.Sprintf(TitleFmt, t.resourceID.String(), 0, 0))
	t.ShowLoading()
	t.SetInputCapture(t.keyboard)
	t.bindKeys()
}

// SetModel sets the table data model.
func (t *Table) SetModel(m Tabular) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.model = m
}

// GetModel returns the current table model.
func (t *Table) GetModel() Tabular {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.model
}

// SetColorerFn sets the row colorer.
func (t *Table) SetColorerFn(f model1.ColorerFunc) {
	t.mx.Lock()
	defer t.mx.Unlock()
	if f == nil {
		f = model1.DefaultColorer
	}
	t.colorerFn = f
}

// SetSelectFn sets the callback invoked when a row is selected.
func (t *Table) SetSelectFn(f SelectFunc) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.selectFn = f
}

// ResourceID returns the resource identifier.
func (t *Table) ResourceID() *dao.ResourceID {
	return t.resourceID
}

// Actions returns the key actions.
func (t *Table) Actions() *KeyActions {
	return t.actions
}

// Hints returns menu hints for key bindings.
func (t *Table) Hints() MenuHints {
	return t.actions.Hints()
}

// FilterText returns the current name filter.
func (t *Table) FilterText() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.filterText
}

// FilterActive returns true while the filter is being edited.
func (t *Table) FilterActive() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.filterActive
}

func (t *Table) bindKeys() {
	t.actions.Bulk(KeyMap{
		Key1:            NewKeyAction("Sort Name", t.sortColCmd(0), true),
		Key2:            NewKeyAction("Sort Code", t.sortColCmd(1), true),
		Key3:            NewKeyAction("Sort Region", t.sortColCmd(2), true),
		Key4:            NewKeyAction("Sort Currency", t.sortColCmd(3), true),
		tcell.KeyCtrlS:  NewKeyAction("Sort Next", t.sortNextCmd, false),
		KeyN:            NewKeyAction("Next Page", t.nextPageCmd, true),
		KeyP:            NewKeyAction("Prev Page", t.prevPageCmd, true),
		KeyRightBracket: NewKeyAction("Next Page", t.nextPageCmd, false),
		KeyLeftBracket:  NewKeyAction("Prev Page", t.prevPageCmd, false),
		tcell.KeyPgDn:   NewKeyAction("Next Page", t.nextPageCmd, false),
		tcell.KeyPgUp:   NewKeyAction("Prev Page", t.prevPageCmd, false),
		tcell.KeyEnter:  NewKeyAction("Summary", t.selectCmd, true),
		KeySlash:        NewKeyAction("Filter", t.filterCmd, true),
		tcell.KeyEsc:    NewKeyAction("Clear Filter", t.clearFilterCmd, false),
	})
}

// keyboard handles table keyboard input.
func (t *Table) keyboard(evt *tcell.EventKey) *tcell.EventKey {
	if t.FilterActive() {
		return t.handleFilterInput(evt)
	}

	key := evt.Key()
	row, col := t.GetSelection()
	rowCount := t.GetRowCount()

	if key == tcell.KeyRune {
		switch evt.Rune() {
		case 'j':
			if row < rowCount-1 {
				t.Select(row+1, col)
			}
			return nil
		case 'k':
			if row > 1 {
				t.Select(row-1, col)
			}
			return nil
		case 'g':
			if rowCount > 1 {
				t.Select(1, col)
			}
			return nil
		case 'G':
			if rowCount > 1 {
				t.Select(rowCount-1, col)
			}
			return nil
		}
	}

	actionKey := key
	if key == tcell.KeyRune {
		actionKey = tcell.Key(evt.Rune())
	}
	if action, ok := t.actions.Get(actionKey); ok {
		return action.Action(evt)
	}

	return evt
}

// handleFilterInput edits the name filter. Every keystroke refilters.
func (t *Table) handleFilterInput(evt *tcell.EventKey) *tcell.EventKey {
	t.mx.Lock()
	switch evt.Key() {
	case tcell.KeyEsc:
		t.filterActive, t.filterText = false, ""
	case tcell.KeyEnter:
		t.filterActive = false
		t.mx.Unlock()
		t.updateTitle()
		return nil
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if rr := []rune(t.filterText); len(rr) > 0 {
			t.filterText = string(rr[:len(rr)-1])
		}
	case tcell.KeyRune:
		t.filterText += string(evt.Rune())
	default:
		t.mx.Unlock()
		return evt
	}
	text := t.filterText
	t.mx.Unlock()

	t.applyFilter(text)
	return nil
}

func (t *Table) applyFilter(text string) {
	t.updateTitle()
	if m := t.GetModel(); m != nil {
		m.SetNameFilter(text)
	}
}

func (t *Table) sortColCmd(col int) ActionHandler {
	return func(*tcell.EventKey) *tcell.EventKey {
		m, data := t.GetModel(), t.peekData()
		if m == nil || data == nil {
			return nil
		}
		if field, ok := data.Header().FieldAt(col); ok {
			m.SetSort(field)
		}
		return nil
	}
}

// sortNextCmd sorts by the column after the current sort column.
func (t *Table) sortNextCmd(*tcell.EventKey) *tcell.EventKey {
	m, data := t.GetModel(), t.peekData()
	if m == nil || data == nil || len(data.Header()) == 0 {
		return nil
	}
	h := data.Header()
	next := 0
	if idx, ok := h.IndexOfField(data.State().SortColumn); ok {
		next = (idx + 1) % len(h)
	}
	if field, ok := h.FieldAt(next); ok {
		m.SetSort(field)
	}
	return nil
}

func (t *Table) nextPageCmd(*tcell.EventKey) *tcell.EventKey {
	if m := t.GetModel(); m != nil {
		m.NextPage()
	}
	return nil
}

func (t *Table) prevPageCmd(*tcell.EventKey) *tcell.EventKey {
	if m := t.GetModel(); m != nil {
		m.PrevPage()
	}
	return nil
}

func (t *Table) selectCmd(*tcell.EventKey) *tcell.EventKey {
	id := t.GetSelectedItem()
	m := t.GetModel()
	if id == "" || m == nil {
		return nil
	}
	r, ok := m.Select(id)
	if !ok {
		return nil
	}

	t.mx.RLock()
	fn := t.selectFn
	t.mx.RUnlock()
	if fn != nil {
		fn(r)
	}
	return nil
}

func (t *Table) filterCmd(*tcell.EventKey) *tcell.EventKey {
	t.mx.Lock()
	t.filterActive = true
	t.mx.Unlock()
	t.updateTitle()
	return nil
}

func (t *Table) clearFilterCmd(*tcell.EventKey) *tcell.EventKey {
	t.mx.Lock()
	wasSet := t.filterActive || t.filterText != ""
	t.filterActive, t.filterText = false, ""
	t.mx.Unlock()

	if wasSet {
		t.applyFilter("")
	}
	return nil
}

// GetSelectedItem returns the id of the selected row.
func (t *Table) GetSelectedItem() string {
	row, _ := t.GetSelection()
	if row < 1 {
		return ""
	}
	cell := t.GetCell(row, 0)
	if cell == nil {
		return ""
	}
	if id, ok := cell.GetReference().(string); ok {
		return id
	}
	return ""
}

func (t *Table) peekData() *model1.TableData {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data
}

// ShowLoading displays the loading state.
func (t *Table) ShowLoading() {
	t.showMessage(LoadingMsg, tcell.ColorGray)
}

// ShowError displays a load failure.
func (t *Table) ShowError(err error) {
	t.showMessage(fmt.Sprintf(ErrorFmt, sanitize(err.Error())), tcell.ColorRed)
}

func (t *Table) showMessage(msg string, color tcell.Color) {
	t.Clear()
	cell := tview.NewTableCell(msg)
	cell.SetTextColor(color)
	cell.SetAlign(tview.AlignCenter)
	cell.SetSelectable(false)
	t.SetCell(0, 0, cell)
}

// UpdateUI renders a page of table data. Pages older than the one on screen
// are dropped and UpdateUI returns false.
func (t *Table) UpdateUI(data *model1.TableData) bool {
	t.mx.Lock()
	if data != nil && t.data != nil && data.Seq() < t.data.Seq() {
		t.mx.Unlock()
		return false
	}
	t.data = data
	colorerFn := t.colorerFn
	filter := t.filterText
	t.mx.Unlock()

	defer t.updateTitle()
	if data == nil || data.Empty() {
		if filter != "" {
			t.showMessage(noMatchingMsg, tcell.ColorGray)
		} else {
			t.showMessage(noDataMsg, tcell.ColorGray)
		}
		return true
	}

	selected := t.GetSelectedItem()
	t.Clear()
	header := data.Header()
	t.buildHeader(header, data.State())
	data.RowEvents().Range(func(idx int, re model1.RowEvent) bool {
		t.buildRow(re, header, idx+1, colorerFn)
		return true
	})

	row := 1
	if idx, ok := data.RowEvents().FindIndex(selected); ok {
		row = idx + 1
	}
	t.Select(row, 0)

	return true
}

func (t *Table) buildHeader(header model1.Header, st model1.ViewState) {
	for col, h := range header {
		cell := tview.NewTableCell(h.Name)
		cell.SetTextColor(tcell.ColorYellow)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(h.Align)
		cell.SetExpansion(1)
		cell.SetSelectable(false)
		if st.IsSorted() && h.Field == st.SortColumn {
			cell.SetText(h.Name + sortIndicator(st.SortDirection))
			cell.SetAttributes(tcell.AttrBold)
		}
		t.SetCell(0, col, cell)
	}
}

func sortIndicator(d model1.SortDirection) string {
	if d == model1.SortDesc {
		return descIndicator
	}
	return ascIndicator
}

func (t *Table) buildRow(re model1.RowEvent, header model1.Header, rowIdx int, colorerFn model1.ColorerFunc) {
	fg := AsColor(colorerFn(header, &re))
	for col, field := range re.Row.Fields {
		if col >= len(header) {
			break
		}
		if d := header[col].Decorator; d != nil {
			field = d(field)
		}

		cell := tview.NewTableCell(field)
		cell.SetTextColor(fg)
		cell.SetBackgroundColor(tcell.ColorDefault)
		cell.SetAlign(header[col].Align)
		cell.SetExpansion(1)
		if re.Changed(col) {
			cell.SetAttributes(tcell.AttrBold)
		}
		if col == 0 {
			cell.SetReference(re.Row.ID)
		}
		t.SetCell(rowIdx, col, cell)
	}
}

func (t *Table) updateTitle() {
	t.SetTitle(t.titleText())
}

func (t *Table) titleText() string {
	t.mx.RLock()
	filter, active, data := t.filterText, t.filterActive, t.data
	t.mx.RUnlock()

	var filtered, total int
	if data != nil {
		filtered, total = data.Counts()
	}
	resource := t.resourceID.String()
	if !active && filter == "" {
		return fmt.Sprintf(TitleFmt, resource, filtered, total)
	}
	cursor := ""
	if active {
		cursor = filterCursor
	}

	return fmt.Sprintf(FilterTitleFmt, resource, filtered, total, filter, cursor)
}
