package engine

import (
	"fmt"

	"vosummary/pkg/schema"
)

// ExpandOASISManagers reshapes a VO's OASIS manager mapping
//
//	{"a": {"DNs": [...]}}
//
// into
//
//	{"Manager": [{"ContactID": ..., "Name": "a", "DNs": {"DN": [...]}}]}
//
// Manager records are copied before reshaping; the caller's mapping is
// never touched. ContactID is optional, so missing ordering fields are
// skipped rather than failing.
func ExpandOASISManagers(managers *schema.Mapping) (*schema.Mapping, error) {
	reshaped := schema.NewMapping()
	for _, name := range managers.Keys() {
		data, ok := managers.Value(name).(*schema.Mapping)
		if !ok {
			return nil, fmt.Errorf("manager %q: expected a mapping, got %T", name, managers.Value(name))
		}
		manager := data.Copy()
		if !schema.IsNull(manager, "DNs") {
			manager.Set("DNs", schema.Pairs("DN", manager.ChildList("DNs")))
		} else {
			manager.Set("DNs", nil)
		}
		reshaped.Set(name, manager)
	}

	list, err := ExpandAttrList(reshaped, "Name", schema.ManagerFieldOrder, true)
	if err != nil {
		return nil, err
	}
	return schema.Pairs("Manager", list), nil
}
