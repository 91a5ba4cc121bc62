package model1_test

import (
	"testing"

	"github.com/a1s/w1s/internal/model1"
	"github.com/stretchr/testify/assert"
)

func TestRowEvents(t *testing.T) {
	ee := model1.NewRowEvents(2)
	assert.True(t, ee.Empty())

	ee.Add(model1.NewRowEvent(model1.EventAdd, model1.Row{ID: "FR", Fields: model1.Fields{"France"}}))
	ee.Add(model1.NewRowEvent(model1.EventUnchanged, model1.Row{ID: "DE", Fields: model1.Fields{"Germany"}}))
	ee.Add(model1.NewRowEventWithDeltas(model1.Row{ID: "FR", Fields: model1.Fields{"République"}}, model1.DeltaRow{"France"}))

	assert.Equal(t, 2, ee.Count())
	i, ok := ee.FindIndex("DE")
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	fr, ok := ee.Get("FR")
	assert.True(t, ok)
	assert.Equal(t, model1.EventUpdate, fr.Kind)
	assert.True(t, fr.Changed(0))
	assert.False(t, fr.Changed(1))

	_, ok = ee.At(2)
	assert.False(t, ok)

	var ids []string
	ee.Range(func(_ int, re model1.RowEvent) bool {
		ids = append(ids, re.Row.ID)
		return true
	})
	assert.Equal(t, []string{"FR", "DE"}, ids)
}
