package engine

import (
	"fmt"

	"vosummary/pkg/schema"
)

// ExpandReportingGroups resolves a VO's list of reporting-group names
// against the global catalog and returns {"ReportingGroup": [...]}.
//
// Only names present in the catalog are emitted; a reference to an
// unknown group is dropped silently — VOs may legitimately point at
// groups that no longer exist, and a stale reference must not break
// the feed. Output follows catalog iteration order, not the VO's
// reference order.
func ExpandReportingGroups(names []any, catalog *schema.Mapping) (*schema.Mapping, error) {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if s, ok := n.(string); ok {
			wanted[s] = true
		}
	}

	filtered := schema.NewMapping()
	for _, name := range catalog.Keys() {
		if !wanted[name] {
			continue
		}
		data, ok := catalog.Value(name).(*schema.Mapping)
		if !ok {
			return nil, fmt.Errorf("reporting group %q: expected a mapping, got %T", name, catalog.Value(name))
		}

		group := schema.NewMapping()

		if !schema.IsNull(data, "Contacts") {
			contacts := make([]any, 0)
			for _, c := range data.ChildList("Contacts") {
				contacts = append(contacts, schema.Pairs("Name", c))
			}
			group.Set("Contacts", schema.Pairs("Contact", contacts))
		} else {
			group.Set("Contacts", nil)
		}

		if !schema.IsNull(data, "FQANs") {
			fqans := make([]any, 0)
			for i, f := range data.ChildList("FQANs") {
				fqan, ok := f.(*schema.Mapping)
				if !ok {
					return nil, fmt.Errorf("reporting group %q: FQAN %d: expected a mapping, got %T", name, i, f)
				}
				ordered := schema.NewMapping()
				for _, field := range []string{"GroupName", "Role"} {
					value, present := fqan.Get(field)
					if !present {
						return nil, fmt.Errorf("reporting group %q: FQAN %d: missing %s", name, i, field)
					}
					ordered.Set(field, value)
				}
				fqans = append(fqans, ordered)
			}
			group.Set("FQANs", schema.Pairs("FQAN", fqans))
		} else {
			group.Set("FQANs", nil)
		}

		filtered.Set(name, group)
	}

	list, err := ExpandAttrList(filtered, "Name", schema.ReportingGroupFieldOrder, false)
	if err != nil {
		return nil, err
	}
	return schema.Pairs("ReportingGroup", list), nil
}
