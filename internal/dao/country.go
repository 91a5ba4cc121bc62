package dao

import (
	"context"
	"fmt"

	"github.com/a1s/w1s/internal/graphql"
	"github.com/a1s/w1s/internal/model1"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// CountriesQuery fetches the flat country records shown in the table.
const CountriesQuery = `query Countries {
  countries {
    code
    name
    awsRegion
    currency
  }
}`

func init() {
	RegisterAccessor(&CountryRID, func() Accessor { return new(CountryAccessor) })
}

// Country is a flat country record.
type Country struct {
	Code      string  `json:"code" yaml:"code"`
	Name      string  `json:"name" yaml:"name"`
	AWSRegion *string `json:"awsRegion,omitempty" yaml:"awsRegion,omitempty"`
	Currency  *string `json:"currency,omitempty" yaml:"currency,omitempty"`
}

// ID returns the country code.
func (c *Country) ID() string {
	return c.Code
}

// Field returns a field value by name.
func (c *Country) Field(name string) (string, bool) {
	switch name {
	case model1.FieldCode:
		return c.Code, true
	case model1.FieldName:
		return c.Name, true
	case model1.FieldAWSRegion:
		return deref(c.AWSRegion)
	case model1.FieldCurrency:
		return deref(c.Currency)
	default:
		return "", false
	}
}

func deref(s *string) (string, bool) {
	if s == nil {
		return "", false
	}
	return *s, true
}

// CountryAccessor lists countries.
type CountryAccessor struct {
	Resource
}

// List returns all well formed countries. Malformed entries are logged and dropped.
func (a *CountryAccessor) List(ctx context.Context) ([]Object, error) {
	return a.list(ctx, func(ctx context.Context) ([]Object, error) {
		raw, err := a.query(ctx, CountriesQuery)
		if err != nil {
			return nil, err
		}
		cc, skipped, err := ParseCountries(raw)
		if err != nil {
			return nil, err
		}
		for _, s := range skipped {
			a.getLogger().Warn("Skipping country", zap.Error(s))
		}

		oo := make([]Object, 0, len(cc))
		for _, c := range cc {
			oo = append(oo, c)
		}
		return oo, nil
	})
}

// ParseCountries decodes the data member of a countries query.
func ParseCountries(data []byte) ([]*Country, []*model1.MalformedRecordError, error) {
	list := gjson.GetBytes(data, "countries")
	if !list.IsArray() {
		return nil, nil, fmt.Errorf("countries: %w", graphql.ErrMalformedPayload)
	}

	var (
		cc      []*Country
		skipped []*model1.MalformedRecordError
	)
	list.ForEach(func(_, v gjson.Result) bool {
		code, name := v.Get(model1.FieldCode), v.Get(model1.FieldName)
		switch {
		case code.Type != gjson.String || code.Str == "":
			skipped = append(skipped, &model1.MalformedRecordError{ID: name.String(), Field: model1.FieldCode})
			return true
		case name.Type != gjson.String:
			skipped = append(skipped, &model1.MalformedRecordError{ID: code.Str, Field: model1.FieldName})
			return true
		}
		cc = append(cc, &Country{
			Code:      code.Str,
			Name:      name.Str,
			AWSRegion: optString(v.Get(model1.FieldAWSRegion)),
			Currency:  optString(v.Get(model1.FieldCurrency)),
		})
		return true
	})

	return cc, skipped, nil
}

func optString(r gjson.Result) *string {
	if !r.Exists() || r.Type == gjson.Null {
		return nil
	}
	s := r.String()
	return &s
}

// Countries narrows listed objects to countries.
func Countries(oo []Object) []*Country {
	cc := make([]*Country, 0, len(oo))
	for _, o := range oo {
		if c, ok := o.(*Country); ok {
			cc = append(cc, c)
		}
	}
	return cc
}
