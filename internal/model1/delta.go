package model1

import (
	"fmt"
	"slices"
	"strings"

	"github.com/wI2L/jsondiff"
)

// DeltaRow holds the previous value of every changed cell, blank otherwise.
type DeltaRow []string

// RecordDoc flattens a record into a document keyed by field.
// Undefined fields are left out.
func RecordDoc(r Record, fields []string) map[string]any {
	doc := make(map[string]any, len(fields))
	for _, f := range fields {
		if v, ok := r.Field(f); ok {
			doc[f] = v
		}
	}
	return doc
}

// ChangedFields lists the fields that differ between two versions of a record.
func ChangedFields(o, n Record, fields []string) ([]string, error) {
	patch, err := jsondiff.Compare(RecordDoc(o, fields), RecordDoc(n, fields))
	if err != nil {
		return nil, fmt.Errorf("failed to diff %q: %w", n.ID(), err)
	}

	changed := make([]string, 0, len(patch))
	for _, op := range patch {
		f := strings.TrimPrefix(string(op.Path), "/")
		if f == "" || slices.Contains(changed, f) {
			continue
		}
		changed = append(changed, f)
	}

	return changed, nil
}

// NewDeltaRow builds the deltas of a row given its old cells and the changed fields.
func NewDeltaRow(old Row, h Header, changed []string) DeltaRow {
	deltas := make(DeltaRow, len(h))
	for _, f := range changed {
		idx, ok := h.IndexOfField(f)
		if !ok || idx >= len(old.Fields) {
			continue
		}
		v := old.Fields[idx]
		if v == "" {
			v = NAValue
		}
		deltas[idx] = v
	}
	return deltas
}

// IsBlank returns true if no cell changed.
func (d DeltaRow) IsBlank() bool {
	if len(d) == 0 {
		return true
	}
	for _, v := range d {
		if v != "" {
			return false
		}
	}
	return true
}
