package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/catalog"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

func newTestModel() BrowseModel {
	store := catalog.NewStore(api.New("http://localhost:0", "test-token"), querycache.New())
	return NewBrowseModel(store)
}

func press(t *testing.T, m BrowseModel, key tea.KeyMsg) (BrowseModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(key)
	bm, ok := next.(BrowseModel)
	if !ok {
		t.Fatalf("Update returned %T, want BrowseModel", next)
	}
	return bm, cmd
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestRenameTargetFollowsSelection(t *testing.T) {
	m := newTestModel()
	id := catalog.CategoryNode(3)
	m.roots = []catalog.Child{{ID: id, Title: "Wiring Devices"}}
	m.rootsLoaded = true
	m.rebuildRows()

	m, _ = press(t, m, runeKey('e'))

	if m.mode != ModeEdit {
		t.Fatalf("mode after e = %v, want ModeEdit", m.mode)
	}
	if !m.selection.Is(id) {
		t.Error("rename did not select the row it targets")
	}
	if got := m.editInput.Value(); got != "Wiring Devices" {
		t.Errorf("edit input prefilled with %q", got)
	}
}

func TestRenameWithoutSelectionFallsBack(t *testing.T) {
	m := newTestModel()
	m.mode = ModeEdit
	m.selection = catalog.NoSelection()
	m.editInput.SetValue("anything")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.mode != ModeTree {
		t.Errorf("mode = %v, want ModeTree when nothing is selected", m.mode)
	}
	if cmd != nil {
		t.Error("no rename must be issued without a selected node")
	}
}

func TestSelectionClearedWhenNodeDisappears(t *testing.T) {
	m := newTestModel()
	kept := catalog.CategoryNode(1)
	gone := catalog.CategoryNode(2)
	m.roots = []catalog.Child{{ID: kept, Title: "Kept"}, {ID: gone, Title: "Gone"}}
	m.rootsLoaded = true
	m.selection = catalog.Select(gone)
	m.rebuildRows()

	if !m.selection.Is(gone) {
		t.Fatal("selection of a visible row must survive a rebuild")
	}

	m.roots = m.roots[:1]
	m.rebuildRows()

	if !m.selection.IsZero() {
		t.Error("selection must clear when its node leaves the visible rows")
	}
}

func TestConfirmNoReturnsToTree(t *testing.T) {
	m := newTestModel()
	brand := catalog.BrandNode(1, 10, 100, catalog.GeneralBrand)
	leaf := catalog.ColorLeaf(brand, 7, 0)
	m.roots = []catalog.Child{{ID: leaf, Title: "White", Badge: "no part"}}
	m.rootsLoaded = true
	m.rebuildRows()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != ModeConfirm {
		t.Fatalf("mode after enter on an empty leaf = %v, want ModeConfirm", m.mode)
	}
	if m.confirmation.YesSelected {
		t.Fatal("dialog must default to No")
	}

	// Enter on No produces a cancel message, not a mutation.
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("declining the dialog must still dismiss it")
	}
	msg := cmd()
	if _, ok := msg.(confirmCancelledMsg); !ok {
		t.Fatalf("declining produced %T, want confirmCancelledMsg", msg)
	}

	next, _ := m.Update(msg)
	m = next.(BrowseModel)
	if m.mode != ModeTree {
		t.Errorf("mode after declining = %v, want ModeTree", m.mode)
	}
}
