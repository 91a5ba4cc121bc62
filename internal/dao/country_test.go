package dao_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/a1s/w1s/internal/dao"
	"github.com/a1s/w1s/internal/graphql"
	"github.com/a1s/w1s/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockConn struct {
	mock.Mock
}

func (m *mockConn) Config() *graphql.ClientConfig {
	return &graphql.ClientConfig{Endpoint: m.Endpoint()}
}

func (m *mockConn) Endpoint() string {
	return "http://fake/"
}

func (m *mockConn) Query(ctx context.Context, q string, vars map[string]any) ([]byte, error) {
	args := m.Called(ctx, q, vars)
	raw, _ := args.Get(0).([]byte)
	return raw, args.Error(1)
}

const countriesData = `{"countries":[
  {"code":"FR","name":"France","awsRegion":"eu-west-3","currency":"EUR"},
  {"code":"AQ","name":"Antarctica","awsRegion":null,"currency":null},
  {"name":"Nowhere"},
  {"code":"ZZ"}
]}`

func TestParseCountries(t *testing.T) {
	cc, skipped, err := dao.ParseCountries([]byte(countriesData))
	require.NoError(t, err)

	require.Len(t, cc, 2)
	assert.Equal(t, "FR", cc[0].ID())
	v, ok := cc[0].Field(model1.FieldAWSRegion)
	assert.True(t, ok)
	assert.Equal(t, "eu-west-3", v)

	_, ok = cc[1].Field(model1.FieldCurrency)
	assert.False(t, ok)
	_, ok = cc[1].Field("bogus")
	assert.False(t, ok)

	require.Len(t, skipped, 2)
	assert.Equal(t, &model1.MalformedRecordError{ID: "Nowhere", Field: model1.FieldCode}, skipped[0])
	assert.Equal(t, &model1.MalformedRecordError{ID: "ZZ", Field: model1.FieldName}, skipped[1])
}

func TestParseCountriesMalformed(t *testing.T) {
	_, _, err := dao.ParseCountries([]byte(`{"countries":{}}`))
	assert.ErrorIs(t, err, graphql.ErrMalformedPayload)
}

func TestCountryAccessorList(t *testing.T) {
	conn := new(mockConn)
	conn.On("Query", mock.Anything, dao.CountriesQuery, map[string]any(nil)).
		Return([]byte(countriesData), nil).Once()

	acc, err := dao.AccessorFor(dao.NewFactory(conn), &dao.CountryRID)
	require.NoError(t, err)
	acc.(*dao.CountryAccessor).SetCache(dao.NewResourceCache(time.Minute))

	oo, err := acc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, dao.Countries(oo), 2)

	oo, err = acc.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, oo, 2)
	conn.AssertExpectations(t)
}

func TestCountryAccessorListFails(t *testing.T) {
	conn := new(mockConn)
	conn.On("Query", mock.Anything, dao.CountriesQuery, map[string]any(nil)).
		Return(nil, errors.New("boom"))

	acc, err := dao.AccessorFor(dao.NewFactory(conn), &dao.CountryRID)
	require.NoError(t, err)

	_, err = acc.List(context.Background())
	assert.EqualError(t, err, "failed to list countries/country: boom")
}

func TestCountryAccessorNoConnection(t *testing.T) {
	acc, err := dao.AccessorFor(dao.NewFactory(nil), &dao.CountryRID)
	require.NoError(t, err)

	_, err = acc.List(context.Background())
	assert.Error(t, err)
}
