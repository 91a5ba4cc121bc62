package model1

import (
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultLocale is used when no locale is configured.
const DefaultLocale = "en"

// Comparer orders strings using locale-aware collation.
type Comparer struct {
	tag      language.Tag
	collator *collate.Collator
	mx       sync.Mutex
}

// NewComparer returns a comparer for the given BCP 47 locale.
// Unknown or empty locales fall back to DefaultLocale.
func NewComparer(locale string) *Comparer {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.MustParse(DefaultLocale)
	}

	return &Comparer{
		tag:      tag,
		collator: collate.New(tag),
	}
}

// Locale returns the comparer language tag.
func (c *Comparer) Locale() string {
	return c.tag.String()
}

// Compare returns -1, 0 or 1 comparing a and b. Case only breaks ties
// between otherwise equal strings, lower case first.
func (c *Comparer) Compare(a, b string) int {
	c.mx.Lock()
	defer c.mx.Unlock()
	return c.collator.CompareString(a, b)
}

// MatchesName returns true if name contains filter, case insensitive.
// A blank filter matches everything.
func MatchesName(name, filter string) bool {
	if filter == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}

// IsBlank returns true if the value is empty once trimmed.
func IsBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
