package model1

import "sync"

// TableData tracks the rendered page of a table.
type TableData struct {
	header    Header
	rowEvents *RowEvents
	records   map[string]Record
	state     ViewState
	pageCount int
	filtered  int
	total     int
	errMsg    string
	seq       uint64
	mx        sync.RWMutex
}

// NewTableData returns a new table.
func NewTableData() *TableData {
	return &TableData{
		rowEvents: NewRowEvents(DefaultPageSize),
		records:   make(map[string]Record),
		state:     NewViewState(),
	}
}

// Header returns the table header.
func (t *TableData) Header() Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.header
}

// SetHeader sets the table header.
func (t *TableData) SetHeader(h Header) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.header = h
}

// RowEvents returns the row events.
func (t *TableData) RowEvents() *RowEvents {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents
}

// SetRows replaces the visible rows with a derived page.
func (t *TableData) SetRows(p Page, st ViewState, ee *RowEvents) {
	t.mx.Lock()
	defer t.mx.Unlock()

	t.rowEvents = ee
	t.records = make(map[string]Record, len(p.Rows))
	for _, r := range p.Rows {
		t.records[r.ID()] = r
	}
	t.state = st
	t.pageCount, t.filtered, t.total = p.PageCount, p.Filtered, p.Total
	t.errMsg = ""
}

// Record returns the record behind a row id.
func (t *TableData) Record(id string) (Record, bool) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	r, ok := t.records[id]
	return r, ok
}

// State returns the view state the page was derived from.
func (t *TableData) State() ViewState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state
}

// PageCount returns the number of pages after filtering.
func (t *TableData) PageCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pageCount
}

// Counts returns the filtered and total record counts.
func (t *TableData) Counts() (filtered, total int) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.filtered, t.total
}

// Empty returns true if no data is available.
func (t *TableData) Empty() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents.Empty()
}

// RowCount returns the number of rows.
func (t *TableData) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.rowEvents.Count()
}

// Clone returns a shallow copy of the table data.
func (t *TableData) Clone() *TableData {
	t.mx.RLock()
	defer t.mx.RUnlock()

	return &TableData{
		header:    t.header,
		rowEvents: t.rowEvents,
		records:   t.records,
		state:     t.state,
		pageCount: t.pageCount,
		filtered:  t.filtered,
		total:     t.total,
		errMsg:    t.errMsg,
		seq:       t.seq,
	}
}

// Seq returns the derivation sequence. Later pages carry higher numbers.
func (t *TableData) Seq() uint64 {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.seq
}

// SetSeq sets the derivation sequence.
func (t *TableData) SetSeq(n uint64) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.seq = n
}

// SetError sets an error message to display instead of data.
func (t *TableData) SetError(msg string) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.errMsg = msg
}

// Error returns the error message, if any.
func (t *TableData) Error() string {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.errMsg
}

// HasError returns true if there's an error message.
func (t *TableData) HasError() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.errMsg != ""
}
