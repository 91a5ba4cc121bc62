package model1_test

import (
	"testing"

	"github.com/a1s/w1s/internal/model1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var deltaHeader = model1.Header{
	{Name: "NAME", Field: model1.FieldName},
	{Name: "CODE", Field: model1.FieldCode},
	{Name: "CURRENCY", Field: model1.FieldCurrency},
}

func TestChangedFields(t *testing.T) {
	o := newRec("FR", "France", model1.FieldCurrency, "FRF")
	n := newRec("FR", "France", model1.FieldCurrency, "EUR")

	ff, err := model1.ChangedFields(o, n, deltaHeader.Fields())
	require.NoError(t, err)
	assert.Equal(t, []string{model1.FieldCurrency}, ff)

	ff, err = model1.ChangedFields(n, n, deltaHeader.Fields())
	require.NoError(t, err)
	assert.Empty(t, ff)
}

func TestChangedFieldsAdded(t *testing.T) {
	o := newRec("AQ", "Antarctica")
	n := newRec("AQ", "Antarctica", model1.FieldCurrency, "USD")

	ff, err := model1.ChangedFields(o, n, deltaHeader.Fields())
	require.NoError(t, err)
	assert.Equal(t, []string{model1.FieldCurrency}, ff)
}

func TestNewDeltaRow(t *testing.T) {
	old := model1.Row{ID: "FR", Fields: model1.Fields{"France", "FR", "FRF"}}

	d := model1.NewDeltaRow(old, deltaHeader, []string{model1.FieldCurrency, "bogus"})
	assert.Equal(t, model1.DeltaRow{"", "", "FRF"}, d)
	assert.False(t, d.IsBlank())

	d = model1.NewDeltaRow(model1.Row{ID: "AQ", Fields: model1.Fields{"Antarctica", "AQ", ""}}, deltaHeader, []string{model1.FieldCurrency})
	assert.Equal(t, model1.DeltaRow{"", "", model1.NAValue}, d)

	assert.True(t, model1.NewDeltaRow(old, deltaHeader, nil).IsBlank())
}
