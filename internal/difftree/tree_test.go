package difftree

import (
	"testing"

	"github.com/sky-xo/treediff/internal/document"
)

func mustParse(t *testing.T, text string) *document.Value {
	t.Helper()
	res := document.Parse(text, document.FormatJSON)
	if !res.Valid {
		t.Fatalf("parse %q: %s", text, res.Err)
	}
	return res.Doc
}

func TestBuildRoot_Nil(t *testing.T) {
	if n := BuildRoot(nil); n != nil {
		t.Fatalf("expected no tree for absent document, got %+v", n)
	}
}

func TestBuild_ObjectPaths(t *testing.T) {
	v := mustParse(t, `{"a": 1, "b": {"c": true}}`)
	root := BuildRoot(v)

	if root.Key != RootKey || root.Path != "" || root.Depth != 0 || !root.IsLast {
		t.Errorf("unexpected root: %+v", root)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}

	a := root.Children[0]
	if a.Key != "a" || a.Path != "a" || a.Depth != 1 || a.IsLast {
		t.Errorf("unexpected node for a: %+v", a)
	}
	b := root.Children[1]
	if b.Path != "b" || !b.IsLast || b.Kind != document.KindObject {
		t.Errorf("unexpected node for b: %+v", b)
	}
	if len(b.Children) != 1 || b.Children[0].Path != "b.c" {
		t.Fatalf("expected child path b.c, got %+v", b.Children)
	}
	if b.Children[0].Depth != 2 || !b.Children[0].IsLast {
		t.Errorf("unexpected node for b.c: %+v", b.Children[0])
	}
}

func TestBuild_ArrayPaths(t *testing.T) {
	v := mustParse(t, `{"xs": [10, [20]]}`)
	root := BuildRoot(v)

	xs := root.Children[0]
	if len(xs.Children) != 2 {
		t.Fatalf("expected 2 array elements, got %d", len(xs.Children))
	}
	if xs.Children[0].Path != "xs[0]" || xs.Children[0].Key != "0" {
		t.Errorf("unexpected first element: %+v", xs.Children[0])
	}
	if xs.Children[0].IsLast {
		t.Error("xs[0] should not be last")
	}
	nested := xs.Children[1]
	if nested.Path != "xs[1]" || !nested.IsLast {
		t.Errorf("unexpected second element: %+v", nested)
	}
	if len(nested.Children) != 1 || nested.Children[0].Path != "xs[1][0]" {
		t.Errorf("unexpected nested element: %+v", nested.Children)
	}
}

func TestBuild_PrimitiveHasNoChildren(t *testing.T) {
	root := BuildRoot(mustParse(t, `42`))
	if root.Kind != document.KindScalar {
		t.Fatalf("expected primitive root, got %v", root.Kind)
	}
	if len(root.Children) != 0 {
		t.Errorf("primitive must not have children, got %d", len(root.Children))
	}
}

func TestBuild_SourceFieldOrderPreserved(t *testing.T) {
	root := BuildRoot(mustParse(t, `{"z": 1, "a": 2, "m": 3}`))
	want := []string{"z", "a", "m"}
	for i, key := range want {
		if root.Children[i].Key != key {
			t.Errorf("child %d: expected key %q, got %q", i, key, root.Children[i].Key)
		}
	}
}
