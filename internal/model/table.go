package model

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/a1s/w1s/internal/dao"
	"github.com/a1s/w1s/internal/model1"
	"github.com/a1s/w1s/internal/render"
	"go.uber.org/zap"
)

var _ TableModel = (*Table)(nil)

// Table fetches records from a DAO and derives the visible page from its
// view state.
type Table struct {
	loader

	rid       *dao.ResourceID
	factory   dao.Factory
	accessor  dao.Accessor
	renderer  model1.Renderer
	comparer  *model1.Comparer
	pageSize  int
	raw       []model1.Record
	loaded    bool
	prev      map[string]model1.Record
	seq       uint64
	state     model1.ViewState
	data      *model1.TableData
	listeners []TableListener
	logger    *zap.Logger
	mx        sync.RWMutex
}

// NewTable creates a new table model.
func NewTable(rid *dao.ResourceID, factory dao.Factory, pageSize int) *Table {
	if pageSize < 1 {
		pageSize = model1.DefaultPageSize
	}

	return &Table{
		rid:       rid,
		factory:   factory,
		comparer:  model1.NewComparer(model1.DefaultLocale),
		pageSize:  pageSize,
		state:     model1.NewViewState(),
		data:      model1.NewTableData(),
		listeners: make([]TableListener, 0, 2),
		logger:    zap.NewNop(),
	}
}

// Init resolves the accessor and renderer for the table resource.
func (t *Table) Init() error {
	acc, err := dao.AccessorFor(t.factory, t.rid)
	if err != nil {
		return err
	}
	r, err := RendererFor(t.rid)
	if err != nil {
		return err
	}

	t.mx.Lock()
	defer t.mx.Unlock()
	t.accessor, t.renderer = acc, r
	t.data.SetHeader(r.Header())
	if l, ok := acc.(interface{ SetLogger(*zap.Logger) }); ok {
		l.SetLogger(t.logger)
	}

	return nil
}

// SetAccessor sets the DAO accessor.
func (t *Table) SetAccessor(a dao.Accessor) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.accessor = a
}

// SetRenderer sets the renderer for converting records to rows.
func (t *Table) SetRenderer(r model1.Renderer) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.renderer = r
	t.data.SetHeader(r.Header())
}

// SetComparer sets the collation used for sorting.
func (t *Table) SetComparer(c *model1.Comparer) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.comparer = c
}

// SetLogger sets the table logger.
func (t *Table) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	t.mx.Lock()
	defer t.mx.Unlock()
	t.logger = l
}

// SetCache sets the accessor object cache.
func (t *Table) SetCache(c *dao.ResourceCache) {
	t.mx.RLock()
	defer t.mx.RUnlock()
	if a, ok := t.accessor.(interface{ SetCache(*dao.ResourceCache) }); ok {
		a.SetCache(c)
	}
}

// PageSize returns the number of rows per page.
func (t *Table) PageSize() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.pageSize
}

// Header returns the table header.
func (t *Table) Header() model1.Header {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data.Header()
}

// RowCount returns the number of visible rows.
func (t *Table) RowCount() int {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data.RowCount()
}

// Empty returns true if the visible page has no rows.
func (t *Table) Empty() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data.Empty()
}

// Loaded returns true once a fetch has completed.
func (t *Table) Loaded() bool {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.loaded
}

// Peek returns a clone of the current table data.
func (t *Table) Peek() *model1.TableData {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.data.Clone()
}

// State returns the current view state.
func (t *Table) State() model1.ViewState {
	t.mx.RLock()
	defer t.mx.RUnlock()
	return t.state
}

// AddListener registers a table listener.
func (t *Table) AddListener(l TableListener) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.listeners = append(t.listeners, l)
}

// RemoveListener unregisters a table listener.
func (t *Table) RemoveListener(l TableListener) {
	t.mx.Lock()
	defer t.mx.Unlock()

	for i, listener := range t.listeners {
		if listener == l {
			t.listeners = append(t.listeners[:i], t.listeners[i+1:]...)
			return
		}
	}
}

// Watch loads the table in the background. Results arriving after Stop or
// a later Watch are dropped.
func (t *Table) Watch(ctx context.Context) error {
	t.mx.RLock()
	ready := t.accessor != nil && t.renderer != nil
	t.mx.RUnlock()
	if !ready {
		return errors.New("table model not initialized")
	}

	ctx, gen := t.start(ctx)
	go func() {
		if err := t.refresh(ctx, gen); err != nil {
			t.notifyLoadFailed(ctx, gen, err)
		}
	}()

	return nil
}

// Refresh fetches data from the DAO immediately.
func (t *Table) Refresh(ctx context.Context) error {
	return t.refresh(ctx, t.generation())
}

func (t *Table) refresh(ctx context.Context, gen uint64) error {
	t.mx.RLock()
	accessor, logger := t.accessor, t.logger
	t.mx.RUnlock()

	if accessor == nil {
		return fmt.Errorf("no accessor configured")
	}

	oo, err := accessor.List(ctx)
	if err != nil {
		logger.Error("Table load failed", zap.Stringer("rid", t.rid), zap.Error(err))
		return err
	}

	rr := make([]model1.Record, 0, len(oo))
	for _, o := range oo {
		if r, ok := o.(model1.Record); ok {
			rr = append(rr, r)
		}
	}
	logger.Debug("Table loaded", zap.Stringer("rid", t.rid), zap.Int("count", len(rr)))

	var (
		data      *model1.TableData
		listeners []TableListener
	)
	ok := t.publish(ctx, gen, func() {
		t.mx.Lock()
		defer t.mx.Unlock()
		if t.loaded {
			t.prev = make(map[string]model1.Record, len(t.raw))
			for _, r := range t.raw {
				t.prev[r.ID()] = r
			}
		}
		t.raw, t.loaded = rr, true
		data = t.rederive(true)
		// Deltas only highlight the page rendered right after a load.
		t.prev = nil
		listeners = slices.Clone(t.listeners)
	})
	if !ok {
		logger.Debug("Dropping stale table load", zap.Stringer("rid", t.rid))
		return ctx.Err()
	}
	notify(listeners, data)

	return nil
}

// SetSort sorts by col, toggling the direction if already sorted by col.
func (t *Table) SetSort(col string) {
	t.update(false, func(st *model1.ViewState) { st.SetSort(col) })
}

// SetNameFilter filters rows by name. The page is clamped to the new page count.
func (t *Table) SetNameFilter(s string) {
	t.update(true, func(st *model1.ViewState) { st.SetNameFilter(s) })
}

// SetPage jumps to page n without bounds checks.
func (t *Table) SetPage(n int) {
	t.update(false, func(st *model1.ViewState) { st.SetPage(n) })
}

// NextPage moves forward one page unless on the last page.
func (t *Table) NextPage() bool {
	t.mx.RLock()
	ok := t.state.HasNext(t.data.PageCount())
	t.mx.RUnlock()
	if ok {
		t.update(false, func(st *model1.ViewState) { st.SetPage(st.CurrentPage + 1) })
	}
	return ok
}

// PrevPage moves back one page unless on the first page.
func (t *Table) PrevPage() bool {
	t.mx.RLock()
	ok := t.state.HasPrev()
	t.mx.RUnlock()
	if ok {
		t.update(false, func(st *model1.ViewState) { st.SetPage(st.CurrentPage - 1) })
	}
	return ok
}

// SelectRecord sets or clears (nil) the selected record.
func (t *Table) SelectRecord(r model1.Record) {
	t.mx.Lock()
	defer t.mx.Unlock()
	t.state.SelectRecord(r)
}

// Select selects the record behind a visible row id.
func (t *Table) Select(id string) (model1.Record, bool) {
	t.mx.Lock()
	defer t.mx.Unlock()

	r, ok := t.data.Record(id)
	if !ok {
		return nil, false
	}
	t.state.SelectRecord(r)

	return r, true
}

func (t *Table) update(clamp bool, f func(*model1.ViewState)) {
	t.mx.Lock()
	f(&t.state)
	if !t.loaded {
		t.mx.Unlock()
		return
	}
	data := t.rederive(clamp)
	listeners := slices.Clone(t.listeners)
	t.mx.Unlock()

	notify(listeners, data)
}

// rederive recomputes the visible page. Caller must hold the lock.
func (t *Table) rederive(clamp bool) *model1.TableData {
	p := model1.Derive(t.raw, t.state, t.pageSize, t.comparer)
	if clamp && t.state.Clamp(p.PageCount) {
		p = model1.Derive(t.raw, t.state, t.pageSize, t.comparer)
	}

	header := t.renderer.Header()
	ee := model1.NewRowEvents(len(p.Rows))
	for _, r := range p.Rows {
		row := model1.NewRow(len(header))
		if err := t.renderer.Render(r, &row); err != nil {
			t.logger.Warn("Render failed", zap.String("id", r.ID()), zap.Error(err))
			continue
		}
		ee.Add(t.rowEvent(header, r, row))
	}

	t.seq++
	data := model1.NewTableData()
	data.SetHeader(header)
	data.SetRows(p, t.state, ee)
	data.SetSeq(t.seq)
	t.data = data

	return data.Clone()
}

func (t *Table) rowEvent(h model1.Header, r model1.Record, row model1.Row) model1.RowEvent {
	if t.prev == nil {
		return model1.NewRowEvent(model1.EventUnchanged, row)
	}
	old, ok := t.prev[r.ID()]
	if !ok {
		return model1.NewRowEvent(model1.EventAdd, row)
	}
	changed, err := model1.ChangedFields(old, r, h.Fields())
	if err != nil || len(changed) == 0 {
		return model1.NewRowEvent(model1.EventUnchanged, row)
	}
	oldRow := model1.NewRow(len(h))
	if err := t.renderer.Render(old, &oldRow); err != nil {
		return model1.NewRowEvent(model1.EventUpdate, row)
	}

	return model1.NewRowEventWithDeltas(row, model1.NewDeltaRow(oldRow, h, changed))
}

// Stop cancels any pending load.
func (t *Table) Stop() {
	t.stop()
}

func notify(listeners []TableListener, data *model1.TableData) {
	for _, l := range listeners {
		if data.Empty() {
			l.TableNoData(data)
		} else {
			l.TableDataChanged(data)
		}
	}
}

// notifyLoadFailed notifies listeners that loading failed.
func (t *Table) notifyLoadFailed(ctx context.Context, gen uint64, err error) {
	var listeners []TableListener
	ok := t.publish(ctx, gen, func() {
		t.mx.RLock()
		defer t.mx.RUnlock()
		listeners = slices.Clone(t.listeners)
	})
	if !ok {
		return
	}
	for _, l := range listeners {
		l.TableLoadFailed(err)
	}
}

// RendererFor returns the appropriate renderer for the given resource ID.
func RendererFor(rid *dao.ResourceID) (model1.Renderer, error) {
	switch *rid {
	case dao.CountryRID:
		return &render.Country{}, nil
	default:
		return nil, fmt.Errorf("no renderer for resource: %s", rid.String())
	}
}
