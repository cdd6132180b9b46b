package parser

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"vosummary/pkg/schema"
)

// Parse decodes YAML bytes into an ordered mapping. The yaml.v3 node
// API is used instead of a plain Unmarshal because map key order in
// the source file must survive into the tree.
func Parse(data []byte) (*schema.Mapping, error) {
	decoded, _, err := DetectAndDecode(data)
	if err != nil {
		return nil, fmt.Errorf("encoding detection failed: %w", err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(decoded, &doc); err != nil {
		return nil, fmt.Errorf("yaml decode failed: %w", err)
	}

	// An empty document has no content nodes.
	if len(doc.Content) == 0 {
		return schema.NewMapping(), nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("document root is %s, expected a mapping", kindName(root.Kind))
	}
	return mappingFromNode(root)
}

// ParseFile reads and parses a single YAML file.
func ParseFile(path string) (*schema.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// mappingFromNode converts a YAML mapping node, preserving key order.
func mappingFromNode(n *yaml.Node) (*schema.Mapping, error) {
	m := schema.NewMapping()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := n.Content[i]
		var key string
		if err := keyNode.Decode(&key); err != nil {
			return nil, fmt.Errorf("line %d: mapping key: %w", keyNode.Line, err)
		}
		value, err := valueFromNode(n.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		m.Set(key, value)
	}
	return m, nil
}

// valueFromNode converts an arbitrary YAML node into a tree value.
func valueFromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return mappingFromNode(n)
	case yaml.SequenceNode:
		list := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := valueFromNode(item)
			if err != nil {
				return nil, err
			}
			list = append(list, v)
		}
		return list, nil
	case yaml.ScalarNode:
		return scalarFromNode(n)
	case yaml.AliasNode:
		return valueFromNode(n.Alias)
	}
	return nil, fmt.Errorf("line %d: unsupported node kind %s", n.Line, kindName(n.Kind))
}

// scalarFromNode resolves a scalar by its YAML tag.
func scalarFromNode(n *yaml.Node) (any, error) {
	switch n.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: bad bool %q: %w", n.Line, n.Value, err)
		}
		return b, nil
	case "!!int":
		var i int
		if err := n.Decode(&i); err != nil {
			return nil, fmt.Errorf("line %d: bad int %q: %w", n.Line, n.Value, err)
		}
		return i, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, fmt.Errorf("line %d: bad float %q: %w", n.Line, n.Value, err)
		}
		return f, nil
	}
	return n.Value, nil
}

// kindName names a yaml.Kind for error messages.
func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
