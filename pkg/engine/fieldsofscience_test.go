package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vosummary/pkg/schema"
)

func TestExpandFieldsOfScience(t *testing.T) {
	fos := schema.Pairs(
		"PrimaryFields", []any{"Physics", "Astrophysics"},
		"SecondaryFields", []any{"Computer Science"},
	)

	out := ExpandFieldsOfScience(fos)
	require.NotNil(t, out)
	assert.Equal(t, []string{"PrimaryFields", "SecondaryFields"}, out.Keys())
	assert.Equal(t, []any{"Physics", "Astrophysics"}, out.ChildMapping("PrimaryFields").ChildList("Field"))
	assert.Equal(t, []any{"Computer Science"}, out.ChildMapping("SecondaryFields").ChildList("Field"))
}

func TestExpandFieldsOfScienceSecondaryOmittedNotNull(t *testing.T) {
	fos := schema.Pairs("PrimaryFields", []any{"Physics"})

	out := ExpandFieldsOfScience(fos)
	require.NotNil(t, out)
	// The one place absence means omission: the key itself is gone.
	assert.False(t, out.Has("SecondaryFields"))
	assert.Equal(t, []string{"PrimaryFields"}, out.Keys())
}

func TestExpandFieldsOfScienceNoPrimary(t *testing.T) {
	assert.Nil(t, ExpandFieldsOfScience(schema.NewMapping()))
	assert.Nil(t, ExpandFieldsOfScience(schema.Pairs("SecondaryFields", []any{"CS"})))
	assert.Nil(t, ExpandFieldsOfScience(schema.Pairs("PrimaryFields", []any{})))
}
