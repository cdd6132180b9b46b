package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vosummary/pkg/schema"
)

func TestParsePreservesKeyOrder(t *testing.T) {
	m, err := Parse([]byte("Zebra: 1\nApple: 2\nMango: 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Zebra", "Apple", "Mango"}, m.Keys())
}

func TestParseScalarTypes(t *testing.T) {
	m, err := Parse([]byte(`
Name: ExampleVO
ID: 42
Active: true
Disable: false
Weight: 1.5
Nothing: null
Quoted: "17"
`))
	require.NoError(t, err)

	assert.Equal(t, "ExampleVO", m.Value("Name"))
	assert.Equal(t, 42, m.Value("ID"))
	assert.Equal(t, true, m.Value("Active"))
	assert.Equal(t, false, m.Value("Disable"))
	assert.Equal(t, 1.5, m.Value("Weight"))

	v, present := m.Get("Nothing")
	require.True(t, present)
	assert.Nil(t, v)

	// Quoting forces a string.
	assert.Equal(t, "17", m.Value("Quoted"))
}

func TestParseNestedStructures(t *testing.T) {
	m, err := Parse([]byte(`
Contacts:
  Administrative Contact:
    - Name: Alice
      ID: OSG1000001
ReportingGroups:
  - GroupA
  - GroupB
`))
	require.NoError(t, err)

	contacts := m.ChildMapping("Contacts")
	require.NotNil(t, contacts)
	admins := contacts.ChildList("Administrative Contact")
	require.Len(t, admins, 1)
	assert.Equal(t, "Alice", admins[0].(*schema.Mapping).Value("Name"))

	assert.Equal(t, []any{"GroupA", "GroupB"}, m.ChildList("ReportingGroups"))
}

func TestParseAnchorsAndAliases(t *testing.T) {
	m, err := Parse([]byte(`
Primary: &shared
  Name: Common
Secondary: *shared
`))
	require.NoError(t, err)
	assert.Equal(t, "Common", m.ChildMapping("Secondary").Value("Name"))
}

func TestParseEmptyDocument(t *testing.T) {
	m, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Equal(t, 0, m.Len())
}

func TestParseNonMappingRoot(t *testing.T) {
	_, err := Parse([]byte("- a\n- b\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mapping")
}

func TestParseUTF8BOM(t *testing.T) {
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Name: BomVO\n")...)
	m, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, "BomVO", m.Value("Name"))
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestParseFileErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- not\n- a mapping\n"), 0o644))

	_, err := ParseFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}
