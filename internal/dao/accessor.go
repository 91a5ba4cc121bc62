package dao

import (
	"fmt"
	"maps"
	"slices"
)

// AccessorFunc builds a fresh accessor.
type AccessorFunc func() Accessor

// registry maps "service/resource" to its accessor constructor. It is only
// written from package init functions.
var registry = make(map[string]AccessorFunc)

// RegisterAccessor registers the accessor constructor of a resource.
func RegisterAccessor(rid *ResourceID, fn AccessorFunc) {
	registry[rid.String()] = fn
}

// AccessorFor returns a new accessor for rid bound to f.
func AccessorFor(f Factory, rid *ResourceID) (Accessor, error) {
	fn, ok := registry[rid.String()]
	if !ok {
		return nil, fmt.Errorf("no accessor for: %s", rid)
	}
	acc := fn()
	acc.Init(f, rid)

	return acc, nil
}

// ListAccessors returns the registered resources in name order.
func ListAccessors() []*ResourceID {
	rids := make([]*ResourceID, 0, len(registry))
	for _, key := range slices.Sorted(maps.Keys(registry)) {
		var rid ResourceID
		if err := rid.Parse(key); err == nil {
			rids = append(rids, &rid)
		}
	}

	return rids
}
