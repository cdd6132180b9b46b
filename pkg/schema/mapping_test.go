package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMappingPreservesInsertionOrder(t *testing.T) {
	m := NewMapping()
	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)

	assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
	assert.Equal(t, 3, m.Len())
}

func TestMappingSetExistingKeyKeepsPosition(t *testing.T) {
	m := Pairs("a", 1, "b", 2, "c", 3)
	m.Set("b", 20)

	assert.Equal(t, []string{"a", "b", "c"}, m.Keys())
	assert.Equal(t, 20, m.Value("b"))
}

func TestMappingPresenceVersusNil(t *testing.T) {
	m := NewMapping()
	m.Set("present", nil)

	v, ok := m.Get("present")
	assert.True(t, ok)
	assert.Nil(t, v)

	_, ok = m.Get("absent")
	assert.False(t, ok)
	assert.True(t, m.Has("present"))
	assert.False(t, m.Has("absent"))
}

func TestMappingDelete(t *testing.T) {
	m := Pairs("a", 1, "b", 2, "c", 3)
	m.Delete("b")
	m.Delete("nope") // no-op

	assert.Equal(t, []string{"a", "c"}, m.Keys())
	assert.False(t, m.Has("b"))
}

func TestMappingCopyIsShallow(t *testing.T) {
	nested := Pairs("x", 1)
	m := Pairs("top", "v", "nested", nested)

	dup := m.Copy()
	dup.Set("top", "changed")
	dup.Set("extra", true)

	// Top level is independent.
	assert.Equal(t, "v", m.Value("top"))
	assert.False(t, m.Has("extra"))
	assert.Equal(t, []string{"top", "nested"}, m.Keys())

	// Nested values are shared.
	require.Same(t, nested, dup.Value("nested"))
}

func TestChildAccessors(t *testing.T) {
	m := Pairs(
		"list", []any{"a", "b"},
		"map", Pairs("k", "v"),
		"str", "s",
	)

	assert.Equal(t, []any{"a", "b"}, m.ChildList("list"))
	assert.Nil(t, m.ChildList("map"))
	assert.Nil(t, m.ChildList("absent"))

	require.NotNil(t, m.ChildMapping("map"))
	assert.Nil(t, m.ChildMapping("list"))

	assert.Equal(t, "s", m.String("str"))
	assert.Equal(t, "", m.String("list"))
}
