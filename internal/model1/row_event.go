package model1

// RowEvent is a rendered row and how it changed since the previous load.
type RowEvent struct {
	Kind   ResEvent
	Row    Row
	Deltas DeltaRow
}

// NewRowEvent returns a row event without deltas.
func NewRowEvent(kind ResEvent, row Row) RowEvent {
	return RowEvent{Kind: kind, Row: row}
}

// NewRowEventWithDeltas returns an update event carrying the previous cell values.
func NewRowEventWithDeltas(row Row, delta DeltaRow) RowEvent {
	return RowEvent{Kind: EventUpdate, Row: row, Deltas: delta}
}

// Changed returns true if cell col holds a new value.
func (r RowEvent) Changed(col int) bool {
	return col < len(r.Deltas) && r.Deltas[col] != ""
}

// RowEvents holds the rows of a page in display order, indexed by row id.
type RowEvents struct {
	events []RowEvent
	index  map[string]int
}

// NewRowEvents returns an empty collection sized for a page.
func NewRowEvents(size int) *RowEvents {
	return &RowEvents{
		events: make([]RowEvent, 0, size),
		index:  make(map[string]int, size),
	}
}

// Add appends an event. An event for a known id replaces it in place.
func (r *RowEvents) Add(re RowEvent) {
	if i, ok := r.index[re.Row.ID]; ok {
		r.events[i] = re
		return
	}
	r.index[re.Row.ID] = len(r.events)
	r.events = append(r.events, re)
}

// At returns the event at display position i.
func (r *RowEvents) At(i int) (RowEvent, bool) {
	if i < 0 || i >= len(r.events) {
		return RowEvent{}, false
	}
	return r.events[i], true
}

// Get returns the event of row id.
func (r *RowEvents) Get(id string) (RowEvent, bool) {
	i, ok := r.index[id]
	if !ok {
		return RowEvent{}, false
	}
	return r.events[i], true
}

// FindIndex returns the display position of row id.
func (r *RowEvents) FindIndex(id string) (int, bool) {
	i, ok := r.index[id]
	return i, ok
}

// Empty returns true if there are no rows.
func (r *RowEvents) Empty() bool {
	return len(r.events) == 0
}

// Count returns the number of rows.
func (r *RowEvents) Count() int {
	return len(r.events)
}

// Range calls f for each event in display order until f returns false.
func (r *RowEvents) Range(f func(int, RowEvent) bool) {
	for i, e := range r.events {
		if !f(i, e) {
			return
		}
	}
}
