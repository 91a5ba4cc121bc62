package model1_test

import (
	"fmt"
	"testing"

	"github.com/a1s/w1s/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRec struct {
	code, name string
	fields     map[string]string
}

func newRec(code, name string, kv ...string) *testRec {
	r := testRec{code: code, name: name, fields: make(map[string]string)}
	for i := 0; i+1 < len(kv); i += 2 {
		r.fields[kv[i]] = kv[i+1]
	}
	return &r
}

func (r *testRec) ID() string { return r.code }

func (r *testRec) Field(f string) (string, bool) {
	switch f {
	case model1.FieldCode:
		return r.code, true
	case model1.FieldName:
		return r.name, true
	}
	v, ok := r.fields[f]
	return v, ok
}

func names(rr []model1.Record) []string {
	nn := make([]string, 0, len(rr))
	for _, r := range rr {
		n, _ := r.Field(model1.FieldName)
		nn = append(nn, n)
	}
	return nn
}

func makeRecs(n int) []model1.Record {
	rr := make([]model1.Record, 0, n)
	for i := range n {
		rr = append(rr, newRec(fmt.Sprintf("C%02d", i), fmt.Sprintf("Country %02d", i)))
	}
	return rr
}

func TestDeriveEmpty(t *testing.T) {
	p := model1.Derive(nil, model1.NewViewState(), 10, nil)

	assert.Empty(t, p.Rows)
	assert.Equal(t, 0, p.PageCount)
	assert.True(t, p.Empty())
}

func TestDerivePagination(t *testing.T) {
	raw := makeRecs(12)
	st := model1.NewViewState()

	p := model1.Derive(raw, st, 10, nil)
	assert.Len(t, p.Rows, 10)
	assert.Equal(t, 2, p.PageCount)
	assert.Equal(t, 12, p.Filtered)

	st.SetPage(2)
	p = model1.Derive(raw, st, 10, nil)
	assert.Equal(t, []string{"Country 10", "Country 11"}, names(p.Rows))

	st.SetPage(3)
	p = model1.Derive(raw, st, 10, nil)
	assert.Empty(t, p.Rows)
	assert.Equal(t, 2, p.PageCount)
}

func TestDerivePageBounds(t *testing.T) {
	uu := map[string]struct {
		n, size, count int
	}{
		"exact":    {n: 20, size: 10, count: 2},
		"partial":  {n: 21, size: 10, count: 3},
		"single":   {n: 1, size: 10, count: 1},
		"fallback": {n: 25, size: 0, count: 3},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			raw := makeRecs(u.n)
			st := model1.NewViewState()
			size := u.size
			if size < 1 {
				size = model1.DefaultPageSize
			}
			for page := 1; page <= u.count; page++ {
				st.SetPage(page)
				p := model1.Derive(raw, st, u.size, nil)
				assert.Equal(t, u.count, p.PageCount)
				assert.LessOrEqual(t, len(p.Rows), size)
				if page < u.count {
					assert.Len(t, p.Rows, size)
				}
			}
		})
	}
}

func TestDeriveFilter(t *testing.T) {
	raw := []model1.Record{
		newRec("FR", "France"),
		newRec("DE", "Germany"),
		newRec("AF", "Africa Republic"),
	}
	st := model1.NewViewState()
	st.SetNameFilter("fr")

	p := model1.Derive(raw, st, 10, nil)
	assert.Equal(t, []string{"France", "Africa Republic"}, names(p.Rows))
	assert.Equal(t, 1, p.PageCount)

	st.SetNameFilter("FRANCE")
	p = model1.Derive(raw, st, 10, nil)
	assert.Equal(t, []string{"France"}, names(p.Rows))

	st.SetNameFilter("zz")
	p = model1.Derive(raw, st, 10, nil)
	assert.Empty(t, p.Rows)
	assert.Equal(t, 0, p.PageCount)
}

func TestDeriveSort(t *testing.T) {
	raw := []model1.Record{
		newRec("DE", "Germany", model1.FieldCurrency, "EUR"),
		newRec("AQ", "Antarctica"),
		newRec("JP", "Japan", model1.FieldCurrency, "JPY"),
		newRec("FR", "France", model1.FieldCurrency, "EUR"),
		newRec("US", "United States", model1.FieldCurrency, "USD"),
	}
	st := model1.NewViewState()

	st.SetSort(model1.FieldName)
	p := model1.Derive(raw, st, 10, nil)
	assert.Equal(t, []string{"Antarctica", "France", "Germany", "Japan", "United States"}, names(p.Rows))

	st.SetSort(model1.FieldName)
	require.Equal(t, model1.SortDesc, st.SortDirection)
	p = model1.Derive(raw, st, 10, nil)
	assert.Equal(t, []string{"United States", "Japan", "Germany", "France", "Antarctica"}, names(p.Rows))

	st.SetSort(model1.FieldCurrency)
	require.Equal(t, model1.SortAsc, st.SortDirection)
	p = model1.Derive(raw, st, 10, nil)
	assert.Equal(t, []string{"Germany", "France", "Japan", "United States", "Antarctica"}, names(p.Rows))

	st.SetSort(model1.FieldCurrency)
	p = model1.Derive(raw, st, 10, nil)
	assert.Equal(t, []string{"United States", "Japan", "Germany", "France", "Antarctica"}, names(p.Rows))
}

func TestDeriveLocale(t *testing.T) {
	raw := []model1.Record{
		newRec("ZA", "Zambia"),
		newRec("AX", "Åland Islands"),
		newRec("AT", "Austria"),
		newRec("EC", "ecuador"),
	}
	st := model1.NewViewState()
	st.SetSort(model1.FieldName)

	p := model1.Derive(raw, st, 10, model1.NewComparer("en"))
	assert.Equal(t, []string{"Åland Islands", "Austria", "ecuador", "Zambia"}, names(p.Rows))

	// Case orders before the code tie-break.
	raw = []model1.Record{newRec("AA", "Chad"), newRec("ZZ", "chad")}
	p = model1.Derive(raw, st, 10, model1.NewComparer("en"))
	assert.Equal(t, []string{"chad", "Chad"}, names(p.Rows))
}

func TestDeriveIdempotent(t *testing.T) {
	raw := makeRecs(25)
	st := model1.NewViewState()
	st.SetSort(model1.FieldName)
	st.SetSort(model1.FieldName)
	st.SetNameFilter("1")
	st.SetPage(2)

	p1 := model1.Derive(raw, st, 5, nil)
	p2 := model1.Derive(raw, st, 5, nil)
	assert.Equal(t, names(p1.Rows), names(p2.Rows))
	assert.Equal(t, p1.PageCount, p2.PageCount)
	assert.Equal(t, "Country 00", names(raw)[0])
}
