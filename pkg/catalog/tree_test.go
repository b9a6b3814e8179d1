package catalog

import (
	"errors"
	"testing"
)

func TestExpandLifecycle(t *testing.T) {
	tr := NewTree()
	id := CategoryNode(1)

	if got := tr.StateOf(id); got != StateCollapsed {
		t.Fatalf("fresh node state = %v, want collapsed", got)
	}

	gen, ok := tr.BeginExpand(id)
	if !ok {
		t.Fatal("BeginExpand on a collapsed node should start a fetch")
	}
	if got := tr.StateOf(id); got != StateLoading {
		t.Fatalf("state after BeginExpand = %v, want loading", got)
	}
	if got := tr.Children(id); got != nil {
		t.Errorf("first expand has no children to serve yet: %v", got)
	}

	children := []Child{
		{ID: StyleNode(1, 10), Title: "Decora"},
		{ID: StyleNode(1, 11), Title: "Toggle"},
	}
	if !tr.FinishExpand(id, gen, children, nil) {
		t.Fatal("FinishExpand with the issued generation should commit")
	}
	if got := tr.StateOf(id); got != StateExpanded {
		t.Fatalf("state after FinishExpand = %v, want expanded", got)
	}
	if got := tr.Children(id); len(got) != 2 || got[0].Title != "Decora" {
		t.Errorf("children not committed in order: %v", got)
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	tr := NewTree()
	id := CategoryNode(1)

	gen, ok := tr.BeginExpand(id)
	if !ok {
		t.Fatal("first BeginExpand should succeed")
	}

	// A second request while loading must not start a second fetch.
	if _, ok := tr.BeginExpand(id); ok {
		t.Error("BeginExpand while loading should report ok=false")
	}

	tr.FinishExpand(id, gen, []Child{{Title: "only"}}, nil)

	// Nor on an already expanded node.
	if _, ok := tr.BeginExpand(id); ok {
		t.Error("BeginExpand on an expanded node should report ok=false")
	}
	if got := tr.Children(id); len(got) != 1 {
		t.Errorf("children clobbered by redundant expand: %v", got)
	}
}

func TestExpandFailsClosed(t *testing.T) {
	tr := NewTree()
	id := StyleNode(1, 10)

	gen, _ := tr.BeginExpand(id)
	if tr.FinishExpand(id, gen, nil, errors.New("503")) {
		t.Error("a failed fetch must not commit")
	}
	if got := tr.StateOf(id); got != StateCollapsed {
		t.Fatalf("state after failed fetch = %v, want collapsed", got)
	}
	if got := tr.Children(id); got != nil {
		t.Errorf("failed fetch left children behind: %v", got)
	}

	// The user retries by expanding again; the node must accept it.
	gen, ok := tr.BeginExpand(id)
	if !ok {
		t.Fatal("retry after failure should start a new fetch")
	}
	if !tr.FinishExpand(id, gen, []Child{{Title: "retry"}}, nil) {
		t.Error("retry result should commit")
	}
}

func TestCollapseDiscardsInFlightResult(t *testing.T) {
	tr := NewTree()
	id := TypeNode(1, 10, 100)

	gen, _ := tr.BeginExpand(id)
	tr.Collapse(id)

	if tr.FinishExpand(id, gen, []Child{{Title: "stale"}}, nil) {
		t.Error("a result issued before Collapse must be discarded")
	}
	if got := tr.StateOf(id); got != StateCollapsed {
		t.Fatalf("state = %v, want collapsed", got)
	}

	// A fresh expand issues a new generation; only its result lands.
	gen2, _ := tr.BeginExpand(id)
	if gen2 == gen {
		t.Fatal("Collapse must advance the generation")
	}
	if tr.FinishExpand(id, gen, []Child{{Title: "older still"}}, nil) {
		t.Error("the old generation must stay dead after re-expand")
	}
	if !tr.FinishExpand(id, gen2, []Child{{Title: "fresh"}}, nil) {
		t.Error("the current generation should commit")
	}
	if got := tr.Children(id); len(got) != 1 || got[0].Title != "fresh" {
		t.Errorf("wrong children committed: %v", got)
	}
}

func TestBeginRefresh(t *testing.T) {
	tr := NewTree()
	id := CategoryNode(2)

	if _, ok := tr.BeginRefresh(id); ok {
		t.Error("BeginRefresh on a collapsed node should report ok=false")
	}

	gen, _ := tr.BeginExpand(id)
	tr.FinishExpand(id, gen, []Child{{Title: "old"}}, nil)

	gen2, ok := tr.BeginRefresh(id)
	if !ok {
		t.Fatal("BeginRefresh on an expanded node should start a fetch")
	}

	// The previous children stay visible while the refresh is in flight.
	if got := tr.Children(id); len(got) != 1 || got[0].Title != "old" {
		t.Errorf("refreshing node dropped its children: %v", got)
	}

	if !tr.FinishExpand(id, gen2, []Child{{Title: "new"}}, nil) {
		t.Fatal("refresh result should commit")
	}
	if got := tr.Children(id); len(got) != 1 || got[0].Title != "new" {
		t.Errorf("refresh did not replace children: %v", got)
	}
}

func TestCollapseAll(t *testing.T) {
	tr := NewTree()
	a, b := CategoryNode(1), CategoryNode(2)

	gen, _ := tr.BeginExpand(a)
	tr.FinishExpand(a, gen, []Child{{Title: "x"}}, nil)
	genB, _ := tr.BeginExpand(b)

	tr.CollapseAll()

	if tr.StateOf(a) != StateCollapsed || tr.StateOf(b) != StateCollapsed {
		t.Error("CollapseAll left a node expanded or loading")
	}
	if tr.FinishExpand(b, genB, []Child{{Title: "stale"}}, nil) {
		t.Error("CollapseAll must discard in-flight results")
	}
}

func TestSelectionIndependentOfExpansion(t *testing.T) {
	sel := NoSelection()
	if !sel.IsZero() {
		t.Fatal("NoSelection should be zero")
	}

	id := BrandNode(1, 10, 100, GeneralBrand)
	sel = Select(id)
	if sel.IsZero() {
		t.Fatal("Select produced a zero selection")
	}
	if !sel.Is(id) {
		t.Error("selection should match its own node")
	}
	if sel.Is(BrandNode(1, 10, 100, 5)) {
		t.Error("selection must not match a different brand slot")
	}

	node, ok := sel.Node()
	if !ok || node != id {
		t.Errorf("Node() = %v, %v", node, ok)
	}
}

func TestBrandPtr(t *testing.T) {
	if got := BrandPtr(GeneralBrand); got != nil {
		t.Errorf("General slot should map to nil, got %v", *got)
	}
	if got := BrandPtr(7); got == nil || *got != 7 {
		t.Errorf("real brand id should round-trip, got %v", got)
	}
}
