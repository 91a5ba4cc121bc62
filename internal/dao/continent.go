package dao

import (
	"context"
	"fmt"

	"github.com/a1s/w1s/internal/graphql"
	"github.com/tidwall/gjson"
)

// ContinentsQuery fetches the continent of every country.
const ContinentsQuery = `query CountryContinents {
  countries {
    code
    continent {
      name
    }
  }
}`

func init() {
	RegisterAccessor(&ContinentRID, func() Accessor { return new(ContinentAccessor) })
}

// ContinentTag ties a country to its continent.
type ContinentTag struct {
	Code      string
	Continent string
	present   bool
}

// NewContinentTag returns a tag with a known continent.
func NewContinentTag(code, continent string) *ContinentTag {
	return &ContinentTag{Code: code, Continent: continent, present: true}
}

// ID returns the country code.
func (c *ContinentTag) ID() string {
	return c.Code
}

// Label returns the continent name, false if the record has none.
func (c *ContinentTag) Label() (string, bool) {
	return c.Continent, c.present
}

// ContinentAccessor lists continent tags. Tags without a continent are
// kept so aggregation can report them.
type ContinentAccessor struct {
	Resource
}

// List returns a continent tag per country.
func (a *ContinentAccessor) List(ctx context.Context) ([]Object, error) {
	return a.list(ctx, func(ctx context.Context) ([]Object, error) {
		raw, err := a.query(ctx, ContinentsQuery)
		if err != nil {
			return nil, err
		}
		tt, err := ParseContinentTags(raw)
		if err != nil {
			return nil, err
		}

		oo := make([]Object, 0, len(tt))
		for _, t := range tt {
			oo = append(oo, t)
		}
		return oo, nil
	})
}

// ParseContinentTags decodes the data member of a continents query.
func ParseContinentTags(data []byte) ([]*ContinentTag, error) {
	list := gjson.GetBytes(data, "countries")
	if !list.IsArray() {
		return nil, fmt.Errorf("continents: %w", graphql.ErrMalformedPayload)
	}

	var tt []*ContinentTag
	list.ForEach(func(_, v gjson.Result) bool {
		name := v.Get("continent.name")
		t := ContinentTag{Code: v.Get("code").String()}
		if name.Type == gjson.String {
			t.Continent, t.present = name.Str, true
		}
		tt = append(tt, &t)
		return true
	})

	return tt, nil
}
