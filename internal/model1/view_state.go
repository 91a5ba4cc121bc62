package model1

// Record fields understood by the country table.
const (
	FieldName      = "name"
	FieldCode      = "code"
	FieldAWSRegion = "awsRegion"
	FieldCurrency  = "currency"
)

// DefaultPageSize is the number of rows per table page.
const DefaultPageSize = 10

// SortDirection orders a sorted column.
type SortDirection int

const (
	SortAsc SortDirection = iota
	SortDesc
)

func (d SortDirection) String() string {
	if d == SortDesc {
		return "desc"
	}
	return "asc"
}

// Toggle flips the direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortAsc {
		return SortDesc
	}
	return SortAsc
}

// ViewState tracks what a table view shows: sort, name filter, page and selection.
type ViewState struct {
	SortColumn    string
	SortDirection SortDirection
	NameFilter    string
	CurrentPage   int
	Selected      Record
}

// NewViewState returns the state of a freshly mounted table.
func NewViewState() ViewState {
	return ViewState{
		SortDirection: SortAsc,
		CurrentPage:   1,
	}
}

// IsSorted returns true if a sort column is set.
func (v ViewState) IsSorted() bool {
	return v.SortColumn != ""
}

// SetSort toggles the direction when col is already the sort column,
// otherwise sorts by col ascending.
func (v *ViewState) SetSort(col string) {
	if v.SortColumn == col {
		v.SortDirection = v.SortDirection.Toggle()
		return
	}
	v.SortColumn, v.SortDirection = col, SortAsc
}

// SetNameFilter stores the filter text as typed.
func (v *ViewState) SetNameFilter(s string) {
	v.NameFilter = s
}

// SetPage moves to page n. Bounds are the caller's concern.
func (v *ViewState) SetPage(n int) {
	v.CurrentPage = n
}

// SelectRecord sets or clears (nil) the selected record.
func (v *ViewState) SelectRecord(r Record) {
	v.Selected = r
}

// Clamp pulls the current page back to max(1, min(page, pageCount)).
// Returns true if the page changed.
func (v *ViewState) Clamp(pageCount int) bool {
	p := min(v.CurrentPage, pageCount)
	p = max(p, 1)
	if p == v.CurrentPage {
		return false
	}
	v.CurrentPage = p
	return true
}

// HasPrev returns true if a previous page exists.
func (v ViewState) HasPrev() bool {
	return v.CurrentPage > 1
}

// HasNext returns true if a next page exists given pageCount.
func (v ViewState) HasNext(pageCount int) bool {
	return v.CurrentPage < pageCount
}
