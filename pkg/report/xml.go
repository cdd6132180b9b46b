package report

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"vosummary/pkg/schema"
)

const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

// RenderXML serializes a summary tree as an XML document. The tree's
// key order becomes sibling element order, which is why the engine is
// obliged to emit schema-ordered mappings. Conventions:
//
//   - a key starting with "@" becomes an attribute on the enclosing
//     element;
//   - a "#text" key becomes the element's character data;
//   - a list value repeats the element once per item;
//   - a nil value renders as a present-but-empty element.
func RenderXML(tree *schema.Mapping) (string, error) {
	var rootName string
	for _, key := range tree.Keys() {
		if strings.HasPrefix(key, "@") {
			continue
		}
		if rootName != "" {
			return "", fmt.Errorf("document has multiple roots: %q and %q", rootName, key)
		}
		rootName = key
	}
	if rootName == "" {
		return "", fmt.Errorf("document has no root element")
	}

	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	if err := renderElement(&buf, rootName, tree.Value(rootName)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// renderElement writes one element (or, for a list value, one element
// per item) under the given name.
func renderElement(buf *bytes.Buffer, name string, value any) error {
	if list, ok := value.([]any); ok {
		for _, item := range list {
			if err := renderElement(buf, name, item); err != nil {
				return err
			}
		}
		return nil
	}

	m, ok := value.(*schema.Mapping)
	if !ok {
		buf.WriteByte('<')
		buf.WriteString(name)
		buf.WriteByte('>')
		if value != nil {
			if err := writeEscaped(buf, scalarText(value)); err != nil {
				return err
			}
		}
		buf.WriteString("</")
		buf.WriteString(name)
		buf.WriteByte('>')
		return nil
	}

	buf.WriteByte('<')
	buf.WriteString(name)
	for _, key := range m.Keys() {
		if !strings.HasPrefix(key, "@") {
			continue
		}
		buf.WriteByte(' ')
		buf.WriteString(key[1:])
		buf.WriteString(`="`)
		if err := writeEscaped(buf, scalarText(m.Value(key))); err != nil {
			return err
		}
		buf.WriteByte('"')
	}
	buf.WriteByte('>')

	for _, key := range m.Keys() {
		if strings.HasPrefix(key, "@") {
			continue
		}
		if key == "#text" {
			if err := writeEscaped(buf, scalarText(m.Value(key))); err != nil {
				return err
			}
			continue
		}
		if err := renderElement(buf, key, m.Value(key)); err != nil {
			return err
		}
	}

	buf.WriteString("</")
	buf.WriteString(name)
	buf.WriteByte('>')
	return nil
}

// scalarText renders a scalar tree value as XML character data.
// Booleans render in the xs:boolean lexical space.
func scalarText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	}
	return fmt.Sprint(v)
}

func writeEscaped(buf *bytes.Buffer, s string) error {
	return xml.EscapeText(buf, []byte(s))
}
