package dao_test

import (
	"context"
	"testing"

	"github.com/a1s/w1s/internal/dao"
	"github.com/a1s/w1s/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const continentsData = `{"countries":[
  {"code":"FR","continent":{"name":"Europe"}},
  {"code":"DE","continent":{"name":"Europe"}},
  {"code":"JP","continent":{"name":"Asia"}},
  {"code":"XX","continent":null}
]}`

func TestParseContinentTags(t *testing.T) {
	tt, err := dao.ParseContinentTags([]byte(continentsData))
	require.NoError(t, err)
	require.Len(t, tt, 4)

	l, ok := tt[0].Label()
	assert.True(t, ok)
	assert.Equal(t, "Europe", l)

	_, ok = tt[3].Label()
	assert.False(t, ok)
}

func TestContinentAccessorAggregate(t *testing.T) {
	conn := new(mockConn)
	conn.On("Query", mock.Anything, dao.ContinentsQuery, map[string]any(nil)).
		Return([]byte(continentsData), nil)

	acc, err := dao.AccessorFor(dao.NewFactory(conn), &dao.ContinentRID)
	require.NoError(t, err)
	oo, err := acc.List(context.Background())
	require.NoError(t, err)

	ll := make([]model1.Labeled, 0, len(oo))
	for _, o := range oo {
		ll = append(ll, o.(model1.Labeled))
	}
	tt, skipped := model1.Aggregate(ll)
	assert.Equal(t, "Europe (2)", tt[0].DisplayLabel)
	assert.Equal(t, "Asia (1)", tt[1].DisplayLabel)
	require.Len(t, skipped, 1)
	assert.Equal(t, "XX", skipped[0].ID)
}

func TestResourceIDParse(t *testing.T) {
	var rid dao.ResourceID
	require.NoError(t, rid.Parse("countries/country"))
	assert.Equal(t, dao.CountryRID, rid)

	assert.Error(t, rid.Parse("countries"))
	assert.Error(t, rid.Parse("/country"))
}

func TestListAccessors(t *testing.T) {
	rids := dao.ListAccessors()

	require.Len(t, rids, 2)
	assert.Equal(t, dao.ContinentRID, *rids[0])
	assert.Equal(t, dao.CountryRID, *rids[1])

	_, err := dao.AccessorFor(dao.NewFactory(nil), &dao.ResourceID{Service: "x", Resource: "y"})
	assert.EqualError(t, err, "no accessor for: x/y")
}
