package render

import (
	"fmt"
	"strings"

	"github.com/a1s/w1s/internal/model1"
	"gopkg.in/yaml.v3"
)

// SummaryTitle titles the country detail document.
const SummaryTitle = "Country Summary"

// Summary is the detail document of a country. Undefined fields render as null.
type Summary struct {
	Name      string  `yaml:"Name"`
	Code      string  `yaml:"Code"`
	AWSRegion *string `yaml:"AWS Region"`
	Currency  *string `yaml:"Currency"`
}

// NewSummary builds the detail document of a record.
func NewSummary(r model1.Record) Summary {
	name, _ := r.Field(model1.FieldName)
	s := Summary{
		Name: name,
		Code: r.ID(),
	}
	if v, ok := r.Field(model1.FieldAWSRegion); ok {
		s.AWSRegion = &v
	}
	if v, ok := r.Field(model1.FieldCurrency); ok {
		s.Currency = &v
	}

	return s
}

// Detail renders a record summary as YAML.
func Detail(r model1.Record) (string, error) {
	raw, err := yaml.Marshal(NewSummary(r))
	if err != nil {
		return "", fmt.Errorf("failed to render %q: %w", r.ID(), err)
	}
	return string(raw), nil
}

// HighlightYAML colors keys and null values using tview color tags.
func HighlightYAML(content string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimRight(content, "\n"), "\n") {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			b.WriteString(line + "\n")
			continue
		}
		value = strings.TrimSpace(value)
		switch value {
		case "":
			fmt.Fprintf(&b, "[aqua::b]%s:[-::-]\n", key)
		case "null":
			fmt.Fprintf(&b, "[aqua::b]%s:[-::-] [gray::]%s[-::]\n", key, MissingValue)
		default:
			fmt.Fprintf(&b, "[aqua::b]%s:[-::-] %s\n", key, value)
		}
	}

	return b.String()
}
