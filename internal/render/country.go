package render

import (
	"fmt"

	"github.com/a1s/w1s/internal/model1"
)

// Country renders countries.
type Country struct {
	Base
}

// Header returns the country header.
func (*Country) Header() model1.Header {
	return model1.Header{
		{Name: "NAME", Field: model1.FieldName, Attrs: model1.Attrs{Required: true}},
		{Name: "CODE", Field: model1.FieldCode, Attrs: model1.Attrs{Required: true}},
		{Name: "AWS REGION", Field: model1.FieldAWSRegion},
		{Name: "CURRENCY", Field: model1.FieldCurrency},
	}
}

// Render renders a country to a row.
func (c *Country) Render(o any, row *model1.Row) error {
	r, ok := o.(model1.Record)
	if !ok {
		return fmt.Errorf("expected Record, got %T", o)
	}

	row.ID = r.ID()
	row.Fields = fieldsOf(r, c.Header())

	return nil
}
