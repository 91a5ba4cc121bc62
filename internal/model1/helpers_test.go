package model1_test

import (
	"testing"

	"github.com/a1s/w1s/internal/model1"
	"github.com/stretchr/testify/assert"
)

func TestMatchesName(t *testing.T) {
	uu := map[string]struct {
		name, filter string
		e            bool
	}{
		"blank":     {name: "France", e: true},
		"prefix":    {name: "France", filter: "fr", e: true},
		"infix":     {name: "South Africa", filter: "AFR", e: true},
		"miss":      {name: "Germany", filter: "fr"},
		"no-tokens": {name: "United States", filter: "us st"},
	}

	for k := range uu {
		u := uu[k]
		t.Run(k, func(t *testing.T) {
			assert.Equal(t, u.e, model1.MatchesName(u.name, u.filter))
		})
	}
}

func TestComparer(t *testing.T) {
	c := model1.NewComparer("fr")

	assert.Equal(t, "fr", c.Locale())
	assert.Negative(t, c.Compare("Égypte", "Espagne"))
	assert.Negative(t, c.Compare("chad", "Chad"))
	assert.Negative(t, c.Compare("Chad", "chile"))
	assert.Zero(t, c.Compare("Chad", "Chad"))
}

func TestComparerFallback(t *testing.T) {
	assert.Equal(t, model1.DefaultLocale, model1.NewComparer("").Locale())
	assert.Equal(t, model1.DefaultLocale, model1.NewComparer("!!bogus!!").Locale())
}

func TestPaletteColor(t *testing.T) {
	n := len(model1.Palette)

	assert.Equal(t, model1.Palette[0], model1.PaletteColor(0))
	assert.Equal(t, model1.Palette[1], model1.PaletteColor(n+1))
}

func TestIsValid(t *testing.T) {
	h := model1.Header{
		{Name: "NAME", Field: model1.FieldName, Attrs: model1.Attrs{Required: true}},
		{Name: "CURRENCY", Field: model1.FieldCurrency},
	}

	assert.True(t, model1.IsValid(h, model1.Row{Fields: model1.Fields{"France", ""}}))
	assert.False(t, model1.IsValid(h, model1.Row{Fields: model1.Fields{" ", "EUR"}}))
}
