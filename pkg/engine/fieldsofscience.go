package engine

import "vosummary/pkg/schema"

// ExpandFieldsOfScience turns
//
//	{"PrimaryFields": ["P1", ...], "SecondaryFields": ["S1", ...]}
//
// into
//
//	{"PrimaryFields": {"Field": [...]}, "SecondaryFields": {"Field": [...]}}
//
// PrimaryFields is mandatory for the block to exist at all; without it
// the result is nil. SecondaryFields is omitted entirely — not emitted
// as null — when absent, because the schema models it as an optional
// element rather than an empty one.
func ExpandFieldsOfScience(fos *schema.Mapping) *schema.Mapping {
	if schema.IsNull(fos, "PrimaryFields") {
		return nil
	}
	expanded := schema.NewMapping()
	expanded.Set("PrimaryFields", schema.Pairs("Field", fos.ChildList("PrimaryFields")))
	if !schema.IsNull(fos, "SecondaryFields") {
		expanded.Set("SecondaryFields", schema.Pairs("Field", fos.ChildList("SecondaryFields")))
	}
	return expanded
}
