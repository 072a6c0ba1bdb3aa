package difftree

import "testing"

func countNodes(n *DiffNode) (nodes, collapsible int) {
	nodes = 1
	if n.Collapsible {
		collapsible = 1
	}
	for _, c := range n.Children {
		cn, cc := countNodes(c)
		nodes += cn
		collapsible += cc
	}
	return
}

func TestFlatten_NilRoot(t *testing.T) {
	if rows := Flatten(nil, NewCollapseSet()); rows != nil {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestFlatten_FullExpansionRoundTrip(t *testing.T) {
	root := diffJSON(t, `{"a": 1, "b": {"c": [1, 2], "d": true}}`, `{"a": 2, "b": {"c": [1]}}`)
	rows := Flatten(root, NewCollapseSet())

	nodes, collapsible := countNodes(root)
	var nodeRows, closeRows int
	for _, r := range rows {
		switch r.Kind {
		case RowNode:
			nodeRows++
		case RowClose:
			closeRows++
		}
	}
	if nodeRows != nodes {
		t.Errorf("expected %d node rows, got %d", nodes, nodeRows)
	}
	if closeRows != collapsible {
		t.Errorf("expected %d close rows, got %d", collapsible, closeRows)
	}

	// Pre-order: the root row comes first and its close row last.
	if rows[0].Path != "" || rows[0].Kind != RowNode {
		t.Errorf("expected root node row first, got %+v", rows[0])
	}
	last := rows[len(rows)-1]
	if last.Path != "" || last.Kind != RowClose {
		t.Errorf("expected root close row last, got %+v", last)
	}
}

func TestFlatten_CollapsedNodeIsOneRow(t *testing.T) {
	root := diffJSON(t, `{"b": {"c": [1, 2], "d": true}}`, `{"b": {"c": [1, 2], "d": true}}`)

	expanded := Flatten(root, NewCollapseSet())

	collapsed := NewCollapseSet()
	collapsed.Toggle("b")
	rows := Flatten(root, collapsed)

	if len(rows) >= len(expanded) {
		t.Errorf("collapsing must shrink output: %d vs %d rows", len(rows), len(expanded))
	}

	// The collapsed subtree contributes exactly its own node row.
	var bRows int
	for _, r := range rows {
		if r.Path == "b" {
			bRows++
			if r.Kind != RowNode {
				t.Errorf("collapsed node emitted a %v row", r.Kind)
			}
		}
		if r.Path == "b.c" || r.Path == "b.d" {
			t.Errorf("collapsed subtree leaked row %+v", r)
		}
	}
	if bRows != 1 {
		t.Errorf("expected exactly 1 row for b, got %d", bRows)
	}
}

func TestFlatten_ToggleTwiceRestoresOutput(t *testing.T) {
	root := diffJSON(t, `{"b": {"c": 1}}`, `{"b": {"c": 2}}`)
	set := NewCollapseSet()

	before := Flatten(root, set)
	set.Toggle("b")
	set.Toggle("b")
	after := Flatten(root, set)

	if len(before) != len(after) {
		t.Fatalf("row count changed: %d vs %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("row %d changed: %+v vs %+v", i, before[i], after[i])
		}
	}
}

func TestCollapseAll_CollectsEveryCollapsiblePath(t *testing.T) {
	root := diffJSON(t, `{"b": {"c": [1, 2]}, "d": 1}`, `{"b": {"c": [1, 2]}, "d": 1}`)
	set := NewCollapseSet()
	set.Toggle("bogus")
	set.CollapseAll(root)

	for _, path := range []string{"", "b", "b.c"} {
		if !set.Has(path) {
			t.Errorf("expected %q collapsed", path)
		}
	}
	if set.Has("d") {
		t.Error("primitive d must not be collapsed")
	}
	if set.Has("bogus") {
		t.Error("CollapseAll must replace the set, not extend it")
	}

	// With the root collapsed the whole document is one row.
	if rows := Flatten(root, set); len(rows) != 1 {
		t.Errorf("expected a single row, got %d", len(rows))
	}
}

func TestExpandAll_ClearsSet(t *testing.T) {
	root := diffJSON(t, `{"b": {"c": 1}}`, `{"b": {"c": 1}}`)
	set := NewCollapseSet()
	set.CollapseAll(root)
	set.ExpandAll()

	if len(set) != 0 {
		t.Errorf("expected empty set, got %d entries", len(set))
	}
}

func TestStats_IgnoresCollapseState(t *testing.T) {
	root := diffJSON(t, `{"b": {"c": 1, "d": 2}}`, `{"b": {"c": 9}}`)
	want := Summary{Removed: 1, Changed: 1}

	if s := Stats(root); s != want {
		t.Fatalf("expected %+v, got %+v", want, s)
	}

	// Collapsing everything must not affect the counts.
	set := NewCollapseSet()
	set.CollapseAll(root)
	if s := Stats(root); s != want {
		t.Errorf("stats changed under collapse: %+v", s)
	}
}
