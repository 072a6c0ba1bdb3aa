package document

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// formatJSON pretty-prints a value as JSON with the given indent width,
// preserving object key order.
func formatJSON(v *Value, indent int) string {
	if indent <= 0 {
		indent = 2
	}
	var b strings.Builder
	writeJSON(&b, v, strings.Repeat(" ", indent), 0)
	b.WriteByte('\n')
	return b.String()
}

func writeJSON(b *strings.Builder, v *Value, indent string, depth int) {
	switch v.Kind {
	case KindObject:
		if len(v.Fields) == 0 {
			b.WriteString("{}")
			return
		}
		b.WriteString("{\n")
		for i, f := range v.Fields {
			b.WriteString(strings.Repeat(indent, depth+1))
			fmt.Fprintf(b, "%s: ", String(f.Name).ScalarText())
			writeJSON(b, f.Value, indent, depth+1)
			if i < len(v.Fields)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indent, depth))
		b.WriteByte('}')

	case KindArray:
		if len(v.Items) == 0 {
			b.WriteString("[]")
			return
		}
		b.WriteString("[\n")
		for i, item := range v.Items {
			b.WriteString(strings.Repeat(indent, depth+1))
			writeJSON(b, item, indent, depth+1)
			if i < len(v.Items)-1 {
				b.WriteByte(',')
			}
			b.WriteByte('\n')
		}
		b.WriteString(strings.Repeat(indent, depth))
		b.WriteByte(']')

	default:
		b.WriteString(v.ScalarText())
	}
}

// formatYAML pretty-prints a value as YAML, preserving object key order.
func formatYAML(v *Value, indent int) (string, error) {
	if indent <= 0 {
		indent = 2
	}
	node := toYAMLNode(v)

	var b strings.Builder
	enc := yaml.NewEncoder(&b)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return b.String(), nil
}

func toYAMLNode(v *Value) *yaml.Node {
	switch v.Kind {
	case KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.Fields {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
			n.Content = append(n.Content, key, toYAMLNode(f.Value))
		}
		return n
	case KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items {
			n.Content = append(n.Content, toYAMLNode(item))
		}
		return n
	default:
		return toYAMLScalar(v.Scalar)
	}
}

func toYAMLScalar(s Scalar) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode}
	switch s.Type {
	case ScalarNull:
		n.Tag = "!!null"
		n.Value = "null"
	case ScalarBool:
		n.Tag = "!!bool"
		if s.Bool {
			n.Value = "true"
		} else {
			n.Value = "false"
		}
	case ScalarNumber:
		n.Value = s.Number
		if strings.ContainsAny(s.Number, ".eE") {
			n.Tag = "!!float"
		} else {
			n.Tag = "!!int"
		}
	default:
		// The encoder quotes the value itself when the plain form would
		// reparse as another type.
		n.Tag = "!!str"
		n.Value = s.Str
	}
	return n
}

// FormatText re-serializes source text into canonical pretty-printed form.
// The text must parse; absent documents format to the empty string.
func FormatText(text string, format Format, indent int) (string, error) {
	res := Parse(text, format)
	if !res.Valid {
		return "", fmt.Errorf("cannot format invalid document: %s", res.Err)
	}
	if res.Doc == nil {
		return "", nil
	}
	if format == FormatYAML {
		return formatYAML(res.Doc, indent)
	}
	return formatJSON(res.Doc, indent), nil
}
