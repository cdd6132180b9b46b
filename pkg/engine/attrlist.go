package engine

import (
	"fmt"

	"vosummary/pkg/schema"
)

// ExpandAttrList turns a name-keyed mapping of records into a list of
// records, each carrying its own name under nameField and its fields
// laid out exactly in the ordering sequence.
//
// A field listed in ordering but absent from a record is an error
// identifying the offending entry — catalogs are expected complete —
// unless ignoreMissing is set, in which case the field is skipped.
// Output order equals input iteration order; nothing is sorted.
func ExpandAttrList(records *schema.Mapping, nameField string, ordering []string, ignoreMissing bool) ([]any, error) {
	out := make([]any, 0, records.Len())

	for _, name := range records.Keys() {
		rec, ok := records.Value(name).(*schema.Mapping)
		if !ok {
			return nil, fmt.Errorf("entry %q: expected a mapping, got %T", name, records.Value(name))
		}

		expanded := schema.NewMapping()
		for _, field := range ordering {
			if field == nameField {
				expanded.Set(nameField, name)
				continue
			}
			value, present := rec.Get(field)
			if !present {
				if ignoreMissing {
					continue
				}
				return nil, fmt.Errorf("entry %q: missing required field %q", name, field)
			}
			expanded.Set(field, value)
		}
		out = append(out, expanded)
	}

	return out, nil
}
