package document

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// parseYAML decodes YAML into a Value via the yaml.Node tree, which keeps
// mapping keys in source order. Returns nil for documents that contain no
// value (comments only, bare ---).
func parseYAML(text string) (*Value, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	return fromYAMLNode(doc.Content[0])
}

func fromYAMLNode(n *yaml.Node) (*Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		obj := &Value{Kind: KindObject}
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			val, err := fromYAMLNode(valNode)
			if err != nil {
				return nil, err
			}
			obj.Fields = append(obj.Fields, Field{Name: keyNode.Value, Value: val})
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := &Value{Kind: KindArray}
		for _, item := range n.Content {
			val, err := fromYAMLNode(item)
			if err != nil {
				return nil, err
			}
			arr.Items = append(arr.Items, val)
		}
		return arr, nil

	case yaml.ScalarNode:
		return fromYAMLScalar(n)

	case yaml.AliasNode:
		return fromYAMLNode(n.Alias)

	default:
		return nil, fmt.Errorf("unsupported yaml node kind %d at line %d", n.Kind, n.Line)
	}
}

func fromYAMLScalar(n *yaml.Node) (*Value, error) {
	switch n.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, err
		}
		return Bool(b), nil
	case "!!int", "!!float":
		return Number(n.Value), nil
	default:
		return String(n.Value), nil
	}
}
