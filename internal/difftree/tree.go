// Package difftree builds labeled trees from parsed documents and compares
// them into a navigable structural diff.
package difftree

import (
	"strconv"

	"github.com/sky-xo/treediff/internal/document"
)

// ValueNode is one position in a parsed document, laid out for display.
// The wrapped Value is never mutated after construction.
type ValueNode struct {
	Key      string
	Path     string
	Value    *document.Value
	Kind     document.Kind
	Depth    int
	IsLast   bool
	Children []*ValueNode
}

// RootKey labels the document root node.
const RootKey = "root"

// BuildRoot builds the display tree for a whole document. A nil value means
// the document is absent and builds no tree at all.
func BuildRoot(v *document.Value) *ValueNode {
	if v == nil {
		return nil
	}
	return Build(v, RootKey, "", 0, true)
}

// Build converts a parsed value into a ValueNode. Object children follow the
// source field order with paths of the form parent.key (bare key at the
// root); array children follow index order with paths of the form
// parent[index].
func Build(v *document.Value, key, path string, depth int, isLast bool) *ValueNode {
	n := &ValueNode{
		Key:    key,
		Path:   path,
		Value:  v,
		Kind:   v.Kind,
		Depth:  depth,
		IsLast: isLast,
	}

	switch v.Kind {
	case document.KindArray:
		for i, item := range v.Items {
			idx := strconv.Itoa(i)
			n.Children = append(n.Children,
				Build(item, idx, path+"["+idx+"]", depth+1, i == len(v.Items)-1))
		}
	case document.KindObject:
		for i, f := range v.Fields {
			n.Children = append(n.Children,
				Build(f.Value, f.Name, joinPath(path, f.Name), depth+1, i == len(v.Fields)-1))
		}
	}
	return n
}

func joinPath(parent, field string) string {
	if parent == "" {
		return field
	}
	return parent + "." + field
}
