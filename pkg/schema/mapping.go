package schema

// Mapping is an insertion-ordered string-keyed mapping, the universal
// node of the summary tree. Values are nil, string, bool, int, float64,
// []any, or *Mapping.
//
// XML has no associative lookup — sibling order is element order — so
// every structure headed for the serializer must carry its key order
// explicitly. A plain Go map cannot do that.
type Mapping struct {
	keys   []string
	values map[string]any
}

// NewMapping returns an empty Mapping.
func NewMapping() *Mapping {
	return &Mapping{values: make(map[string]any)}
}

// Pairs builds a Mapping from alternating key/value arguments, in the
// order given. It panics on a non-string key; it is meant for literal
// construction in code and tests.
func Pairs(kv ...any) *Mapping {
	if len(kv)%2 != 0 {
		panic("schema.Pairs: odd number of arguments")
	}
	m := NewMapping()
	for i := 0; i < len(kv); i += 2 {
		m.Set(kv[i].(string), kv[i+1])
	}
	return m
}

// Set stores value under key. A new key is appended at the end; an
// existing key is overwritten in place, keeping its position.
func (m *Mapping) Set(key string, value any) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether the key is present.
// A key present with a nil value reports (nil, true) — presence and
// nullness are distinct states.
func (m *Mapping) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Value returns the value for key, or nil when absent.
func (m *Mapping) Value(key string) any {
	return m.values[key]
}

// Has reports whether key is present.
func (m *Mapping) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key. Removing an absent key is a no-op.
func (m *Mapping) Delete(key string) {
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the keys in insertion order. The returned slice is
// shared with the Mapping and must not be modified by the caller.
func (m *Mapping) Keys() []string {
	return m.keys
}

// Len returns the number of keys.
func (m *Mapping) Len() int {
	return len(m.keys)
}

// Copy returns a shallow copy: the key order and top-level values are
// duplicated, nested values are shared.
func (m *Mapping) Copy() *Mapping {
	out := &Mapping{
		keys:   make([]string, len(m.keys)),
		values: make(map[string]any, len(m.values)),
	}
	copy(out.keys, m.keys)
	for k, v := range m.values {
		out.values[k] = v
	}
	return out
}

// ChildMapping returns the value under key as a *Mapping, or nil when
// the key is absent or holds anything else.
func (m *Mapping) ChildMapping(key string) *Mapping {
	child, _ := m.values[key].(*Mapping)
	return child
}

// ChildList returns the value under key as a []any, or nil when the
// key is absent or holds anything else.
func (m *Mapping) ChildList(key string) []any {
	list, _ := m.values[key].([]any)
	return list
}

// String returns the value under key as a string, or "" when the key
// is absent or holds anything else.
func (m *Mapping) String(key string) string {
	s, _ := m.values[key].(string)
	return s
}
