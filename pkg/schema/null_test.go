package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNullValue(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"nil", nil, true},
		{"empty string", "", true},
		{"nonempty string", "x", false},
		{"false", false, true},
		{"true", true, false},
		{"empty list", []any{}, true},
		{"nonempty list", []any{"a"}, false},
		{"empty mapping", NewMapping(), true},
		{"nonempty mapping", Pairs("k", "v"), false},
		{"zero int is a value", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNullValue(tt.value))
		})
	}
}

func TestIsNull(t *testing.T) {
	m := Pairs(
		"filled", "x",
		"nil", nil,
		"emptyList", []any{},
	)

	assert.False(t, IsNull(m, "filled"))
	assert.True(t, IsNull(m, "nil"))
	assert.True(t, IsNull(m, "emptyList"))
	assert.True(t, IsNull(m, "absent"))
}
