package schema

// IsNull reports whether key counts as absent for schema purposes:
// missing from the mapping, or present with an empty/false-like value.
// Every expander consults this before reading an optional field.
func IsNull(m *Mapping, key string) bool {
	v, ok := m.Get(key)
	if !ok {
		return true
	}
	return IsNullValue(v)
}

// IsNullValue applies the source data's null convention to a bare
// value: nil, "", false, and empty collections are all null.
func IsNullValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case bool:
		return !t
	case []any:
		return len(t) == 0
	case *Mapping:
		return t == nil || t.Len() == 0
	}
	return false
}
