package model1

import (
	"slices"

	"github.com/fvbommel/sortorder"
)

// Page is the visible window of a derived table.
type Page struct {
	Rows      []Record
	PageCount int
	Filtered  int
	Total     int
	Number    int
}

// Empty returns true if the page holds no rows.
func (p Page) Empty() bool {
	return len(p.Rows) == 0
}

// PageCount returns ceil(n / pageSize).
func PageCount(n, pageSize int) int {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Derive computes the visible rows for the given state. It does not mutate
// raw or st. Records missing the sort field always land after the ones
// that have it, regardless of direction.
func Derive(raw []Record, st ViewState, pageSize int, cmp *Comparer) Page {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if cmp == nil {
		cmp = NewComparer(DefaultLocale)
	}

	rr := slices.Clone(raw)
	if st.IsSorted() {
		sortRecords(rr, st.SortColumn, st.SortDirection, cmp)
	}

	filtered := rr[:0:0]
	for _, r := range rr {
		name, _ := r.Field(FieldName)
		if MatchesName(name, st.NameFilter) {
			filtered = append(filtered, r)
		}
	}

	page := Page{
		PageCount: PageCount(len(filtered), pageSize),
		Filtered:  len(filtered),
		Total:     len(raw),
		Number:    st.CurrentPage,
	}
	start := (st.CurrentPage - 1) * pageSize
	if start < 0 || start >= len(filtered) {
		return page
	}
	end := min(start+pageSize, len(filtered))
	page.Rows = filtered[start:end]

	return page
}

func sortRecords(rr []Record, field string, dir SortDirection, cmp *Comparer) {
	slices.SortStableFunc(rr, func(a, b Record) int {
		va, oka := a.Field(field)
		vb, okb := b.Field(field)
		switch {
		case !oka && !okb:
			return byID(a, b)
		case !oka:
			return 1
		case !okb:
			return -1
		}
		r := cmp.Compare(va, vb)
		if r == 0 {
			return byID(a, b)
		}
		if dir == SortDesc {
			return -r
		}
		return r
	})
}

func byID(a, b Record) int {
	switch {
	case a.ID() == b.ID():
		return 0
	case sortorder.NaturalLess(a.ID(), b.ID()):
		return -1
	default:
		return 1
	}
}
