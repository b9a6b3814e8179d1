package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/catalog"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

// BrowseMode represents the current mode of the catalog browser
type BrowseMode int

const (
	ModeTree BrowseMode = iota
	ModeConfirm
	ModeEdit
	ModeDetail
)

// row is one visible line of the flattened tree
type row struct {
	id         catalog.NodeID
	depth      int
	child      catalog.Child
	expandable bool
}

// BrowseModel is the Bubbletea model for the interactive catalog browser
type BrowseModel struct {
	store *catalog.Store
	tree  *catalog.Tree

	roots       []catalog.Child
	rootsLoaded bool
	rows        []row
	cursor      int

	// selection is the shared selected-node value; the edit, detail,
	// and confirmation panes all derive their target from it.
	selection catalog.Selection

	mode         BrowseMode
	confirmation ConfirmationDialog
	editInput    textinput.Model
	detail       api.Part
	status       StatusLine
	spin         spinner.Model

	width  int
	height int
}

// NewBrowseModel creates the browser model on top of a store
func NewBrowseModel(store *catalog.Store) BrowseModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = infoStyle

	ti := textinput.New()
	ti.CharLimit = 100
	ti.Width = 40

	return BrowseModel{
		store:     store,
		tree:      catalog.NewTree(),
		mode:      ModeTree,
		spin:      sp,
		editInput: ti,
	}
}

// Init initializes the model
func (m BrowseModel) Init() tea.Cmd {
	return tea.Batch(
		m.loadRootsCmd(),
		m.spin.Tick,
		tea.EnterAltScreen,
	)
}

// Messages
type rootsLoadedMsg struct {
	children []catalog.Child
	err      error
}

type childrenLoadedMsg struct {
	id       catalog.NodeID
	gen      uint64
	children []catalog.Child
	err      error
}

type quickCreatedMsg struct {
	leaf catalog.NodeID
	part api.Part
	err  error
}

type partDeletedMsg struct {
	leaf catalog.NodeID
	err  error
}

type partDetailMsg struct {
	part api.Part
	err  error
}

type renamedMsg struct {
	id  catalog.NodeID
	err error
}

// confirmCancelledMsg leaves the confirmation dialog without acting.
// The dialog's closures hold a value copy of the model, so the mode
// change has to travel back through the update loop as a message.
type confirmCancelledMsg struct{}

func cancelConfirmCmd() tea.Cmd {
	return func() tea.Msg { return confirmCancelledMsg{} }
}

// Commands
func (m BrowseModel) loadRootsCmd() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		cats, err := store.Categories(context.Background())
		if err != nil {
			return rootsLoadedMsg{err: err}
		}
		children := make([]catalog.Child, 0, len(cats))
		for _, c := range cats {
			children = append(children, catalog.Child{
				ID:       catalog.CategoryNode(c.ID),
				Title:    c.Name,
				Badge:    fmt.Sprintf("%d styles · %d parts", c.StyleCount, c.PartCount),
				Inactive: !c.IsActive,
			})
		}
		return rootsLoadedMsg{children: children}
	}
}

func (m BrowseModel) expandCmd(id catalog.NodeID, gen uint64) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		children, err := store.ChildrenOf(context.Background(), id)
		return childrenLoadedMsg{id: id, gen: gen, children: children, err: err}
	}
}

func (m BrowseModel) quickCreateCmd(leaf catalog.NodeID) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		part, err := store.QuickCreate(context.Background(), leaf)
		return quickCreatedMsg{leaf: leaf, part: part, err: err}
	}
}

func (m BrowseModel) deletePartCmd(leaf catalog.NodeID) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		err := store.DeletePartAt(context.Background(), leaf)
		return partDeletedMsg{leaf: leaf, err: err}
	}
}

func (m BrowseModel) partDetailCmd(partID int) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		part, err := store.Part(context.Background(), partID)
		return partDetailMsg{part: part, err: err}
	}
}

func (m BrowseModel) renameCmd(id catalog.NodeID, name string) tea.Cmd {
	store := m.store
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		switch id.Level {
		case catalog.LevelCategory:
			_, err = store.SaveCategory(ctx, id.CategoryID, api.CategoryUpdate{Name: &name})
		case catalog.LevelStyle:
			_, err = store.SaveStyle(ctx, id.CategoryID, id.StyleID, api.StyleUpdate{Name: &name})
		case catalog.LevelType:
			_, err = store.SaveType(ctx, id.CategoryID, id.StyleID, id.TypeID, api.TypeUpdate{Name: &name})
		default:
			err = fmt.Errorf("%s nodes cannot be renamed here", id.Level)
		}
		return renamedMsg{id: id, err: err}
	}
}

// refreshNode restarts an expanded node's children fetch. The caches
// were already invalidated by the mutation; this pulls the fresh rows
// into the tree.
func (m *BrowseModel) refreshNode(id catalog.NodeID) tea.Cmd {
	if gen, ok := m.tree.BeginRefresh(id); ok {
		return m.expandCmd(id, gen)
	}
	return nil
}

// parentOf returns the tree parent of a node; ok is false at the root.
func parentOf(id catalog.NodeID) (catalog.NodeID, bool) {
	switch id.Level {
	case catalog.LevelStyle:
		return catalog.CategoryNode(id.CategoryID), true
	case catalog.LevelType:
		return catalog.StyleNode(id.CategoryID, id.StyleID), true
	case catalog.LevelBrand:
		return catalog.TypeNode(id.CategoryID, id.StyleID, id.TypeID), true
	case catalog.LevelColor:
		return catalog.BrandNode(id.CategoryID, id.StyleID, id.TypeID, id.BrandID), true
	}
	return catalog.NodeID{}, false
}

// rebuildRows flattens the expanded tree into visible lines
func (m *BrowseModel) rebuildRows() {
	m.rows = m.rows[:0]
	var walk func(children []catalog.Child, depth int)
	walk = func(children []catalog.Child, depth int) {
		for _, c := range children {
			expandable := c.ID.Level != catalog.LevelColor
			m.rows = append(m.rows, row{id: c.ID, depth: depth, child: c, expandable: expandable})
			// A refreshing node keeps showing its previous children;
			// Children is empty for collapsed nodes and first expands.
			if expandable && m.tree.StateOf(c.ID) != catalog.StateCollapsed {
				walk(m.tree.Children(c.ID), depth+1)
			}
		}
	}
	walk(m.roots, 0)

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	// A selected node that disappeared (deleted, or its ancestor
	// collapsed) must not keep driving the panes.
	if node, ok := m.selection.Node(); ok {
		found := false
		for _, r := range m.rows {
			if r.id == node {
				found = true
				break
			}
		}
		if !found {
			m.selection = catalog.NoSelection()
		}
	}
}

func (m *BrowseModel) selectedRow() (row, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return row{}, false
	}
	return m.rows[m.cursor], true
}

// Update handles messages
func (m BrowseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case rootsLoadedMsg:
		if msg.err != nil {
			m.status.SetError(msg.err.Error())
			return m, nil
		}
		m.roots = msg.children
		m.rootsLoaded = true
		m.rebuildRows()
		return m, nil

	case childrenLoadedMsg:
		m.tree.FinishExpand(msg.id, msg.gen, msg.children, msg.err)
		if msg.err != nil {
			m.status.SetError(msg.err.Error())
		}
		m.rebuildRows()
		return m, nil

	case quickCreatedMsg:
		m.mode = ModeTree
		if msg.err != nil {
			// Conflicts and precondition failures show inline at the
			// color tile; the tree keeps its state.
			m.status.SetError(msg.err.Error())
			return m, nil
		}
		m.status.SetInfo("Created " + msg.part.Name)
		parent, _ := parentOf(msg.leaf)
		return m, m.refreshNode(parent)

	case partDeletedMsg:
		m.mode = ModeTree
		if msg.err != nil {
			m.status.SetError(msg.err.Error())
			return m, nil
		}
		m.status.SetInfo("Part deleted")
		parent, _ := parentOf(msg.leaf)
		return m, m.refreshNode(parent)

	case partDetailMsg:
		if msg.err != nil {
			m.status.SetError(msg.err.Error())
			m.mode = ModeTree
			return m, nil
		}
		m.detail = msg.part
		m.mode = ModeDetail
		return m, nil

	case confirmCancelledMsg:
		m.mode = ModeTree
		return m, nil

	case renamedMsg:
		m.mode = ModeTree
		if msg.err != nil {
			m.status.SetError(msg.err.Error())
			return m, nil
		}
		m.status.SetInfo("Renamed")
		if parent, ok := parentOf(msg.id); ok {
			return m, m.refreshNode(parent)
		}
		return m, m.loadRootsCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m BrowseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.mode {
	case ModeConfirm:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.mode = ModeTree
			return m, nil
		default:
			return m, m.confirmation.Update(msg)
		}

	case ModeEdit:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.mode = ModeTree
			return m, nil
		case "enter":
			id, ok := m.selection.Node()
			if !ok {
				m.mode = ModeTree
				return m, nil
			}
			name := strings.TrimSpace(m.editInput.Value())
			if name == "" {
				m.status.SetError("Name cannot be empty")
				return m, nil
			}
			return m, m.renameCmd(id, name)
		default:
			var cmd tea.Cmd
			m.editInput, cmd = m.editInput.Update(msg)
			return m, cmd
		}

	case ModeDetail:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q", "esc", "enter":
			m.mode = ModeTree
			return m, nil
		}
		return m, nil
	}

	// ModeTree
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil

	case "enter", "right", "l", " ":
		return m.activateSelected()

	case "left", "h":
		if sel, ok := m.selectedRow(); ok && sel.expandable {
			m.tree.Collapse(sel.id)
			m.rebuildRows()
		}
		return m, nil

	case "e":
		if sel, ok := m.selectedRow(); ok {
			switch sel.id.Level {
			case catalog.LevelCategory, catalog.LevelStyle, catalog.LevelType:
				m.selection = catalog.Select(sel.id)
				m.editInput.SetValue(sel.child.Title)
				m.editInput.CursorEnd()
				m.editInput.Focus()
				m.mode = ModeEdit
			default:
				m.status.SetInfo("Only categories, styles, and types rename here")
			}
		}
		return m, nil

	case "d":
		sel, ok := m.selectedRow()
		if !ok || sel.id.Level != catalog.LevelColor || sel.id.PartID == 0 {
			return m, nil
		}
		leaf := sel.id
		m.selection = catalog.Select(leaf)
		m.confirmation = NewConfirmationDialog(
			"Delete Part",
			fmt.Sprintf("Delete %s?\nThe backend rejects this while stock exists.", sel.child.Badge),
		)
		m.confirmation.OnConfirm = func() tea.Cmd {
			return m.deletePartCmd(leaf)
		}
		m.confirmation.OnCancel = cancelConfirmCmd
		m.mode = ModeConfirm
		return m, nil

	case "r":
		if sel, ok := m.selectedRow(); ok && sel.expandable {
			m.invalidateChildren(sel.id)
			if cmd := m.refreshNode(sel.id); cmd != nil {
				return m, cmd
			}
		}
		return m, nil

	case "R":
		m.tree.CollapseAll()
		m.store.Cache().Clear()
		m.rootsLoaded = false
		m.rebuildRows()
		return m, m.loadRootsCmd()
	}

	return m, nil
}

// activateSelected expands, collapses, or acts on the selected row.
// Color leaves with a part open the detail pane; leaves without one
// offer quick-create.
func (m BrowseModel) activateSelected() (tea.Model, tea.Cmd) {
	sel, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	m.status.Clear()

	if sel.id.Level == catalog.LevelColor {
		m.selection = catalog.Select(sel.id)
		if sel.id.PartID != 0 {
			return m, m.partDetailCmd(sel.id.PartID)
		}
		leaf := sel.id
		m.confirmation = NewConfirmationDialog(
			"Quick-Create Part",
			fmt.Sprintf("Create a part for %s?\nName, code, and placement are derived from the coordinate.", sel.child.Title),
		)
		m.confirmation.OnConfirm = func() tea.Cmd {
			return m.quickCreateCmd(leaf)
		}
		m.confirmation.OnCancel = cancelConfirmCmd
		m.mode = ModeConfirm
		return m, nil
	}

	switch m.tree.StateOf(sel.id) {
	case catalog.StateExpanded:
		m.tree.Collapse(sel.id)
		m.rebuildRows()
		return m, nil
	case catalog.StateCollapsed:
		if gen, ok := m.tree.BeginExpand(sel.id); ok {
			m.rebuildRows()
			return m, m.expandCmd(sel.id, gen)
		}
	}
	// Loading: a fetch is already in flight, expansion is idempotent.
	return m, nil
}

// invalidateChildren drops the cache entries behind a node's child list
func (m *BrowseModel) invalidateChildren(id catalog.NodeID) {
	cache := m.store.Cache()
	switch id.Level {
	case catalog.LevelCategory:
		cache.Invalidate(querycache.StylesKey(id.CategoryID))
	case catalog.LevelStyle:
		cache.Invalidate(querycache.TypesKey(id.StyleID))
	case catalog.LevelType:
		cache.Invalidate(querycache.TypeBrandsKey(id.TypeID))
	case catalog.LevelBrand:
		cache.Invalidate(
			querycache.TypeBrandPartsKey(id.TypeID, catalog.BrandPtr(id.BrandID)),
			querycache.TypeColorsKey(id.TypeID),
		)
	}
}

// View renders the UI
func (m BrowseModel) View() string {
	switch m.mode {
	case ModeConfirm:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirmation.View())

	case ModeEdit:
		level := "node"
		if id, ok := m.selection.Node(); ok {
			level = id.Level.String()
		}
		body := titleStyle.Render("Rename "+level) + "\n\n" +
			m.editInput.View() + "\n\n" +
			helpStyle.Render(FormatKey("enter", "save")+" • "+FormatKey("esc", "cancel"))
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, boxStyle.Render(body))

	case ModeDetail:
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.detailView())
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Voltdesk Catalog"))
	b.WriteString("\n")

	if !m.rootsLoaded {
		b.WriteString(m.spin.View() + " Loading categories...\n")
	} else if len(m.rows) == 0 {
		b.WriteString(mutedStyle.Render("No categories yet") + "\n")
	} else {
		start, end := m.window()
		for i := start; i < end; i++ {
			b.WriteString(m.renderRow(i))
			b.WriteString("\n")
		}
	}

	if status := m.status.View(); status != "" {
		b.WriteString("\n")
		b.WriteString(status)
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		FormatKey("↑/↓", "move") + " • " +
			FormatKey("enter", "expand/open") + " • " +
			FormatKey("e", "rename") + " • " +
			FormatKey("d", "delete part") + " • " +
			FormatKey("r", "refresh") + " • " +
			FormatKey("q", "quit"),
	))
	return b.String()
}

// window returns the visible slice bounds around the cursor
func (m BrowseModel) window() (int, int) {
	visible := m.height - 6
	if visible < 1 {
		visible = len(m.rows)
	}
	if len(m.rows) <= visible {
		return 0, len(m.rows)
	}
	start := m.cursor - visible/2
	if start < 0 {
		start = 0
	}
	end := start + visible
	if end > len(m.rows) {
		end = len(m.rows)
		start = end - visible
	}
	return start, end
}

func (m BrowseModel) renderRow(i int) string {
	r := m.rows[i]
	indent := strings.Repeat("  ", r.depth)

	marker := " "
	if r.expandable {
		switch m.tree.StateOf(r.id) {
		case catalog.StateExpanded:
			marker = "▾"
		case catalog.StateLoading:
			marker = m.spin.View()
		default:
			marker = "▸"
		}
	} else {
		marker = Swatch(r.child.Hex)
	}

	title := r.child.Title
	style := rowStyle
	if r.child.Inactive {
		style = inactiveRowStyle
	}
	if i == m.cursor {
		style = selectedRowStyle
	}

	line := indent + marker + " " + style.Render(title)
	if r.child.Badge != "" {
		badge := badgeStyle
		if r.child.Badge == "no part" {
			badge = pendingBadgeStyle
		}
		line += "  " + badge.Render(r.child.Badge)
	}
	if r.child.Pending {
		line += "  " + warningStyle.Render("◌ MPN pending")
	}
	return line
}

func (m BrowseModel) detailView() string {
	p := m.detail
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name))
	b.WriteString("\n\n")

	field := func(label string, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}

	field("Code", deref(p.Code))
	field("Kind", p.PartType)
	field("Brand", deref(p.BrandName))
	field("Color", deref(p.ColorName))
	field("MPN", deref(p.ManufacturerPartNumber))
	field("Unit", p.UnitOfMeasure)
	field("Stock", fmt.Sprintf("%d", p.TotalStock))
	if p.CompanyCostPrice != nil {
		field("Cost", p.CompanyCostPrice.StringFixed(2))
	}
	if p.CompanyMarkupPercent != nil {
		field("Markup", p.CompanyMarkupPercent.String()+"%")
	}
	if sell, ok := catalog.SellPriceOf(p); ok {
		field("Sell", sell.StringFixed(2))
	}
	if p.IsDeprecated {
		b.WriteString("\n")
		b.WriteString(dangerStyle.Render("Deprecated: " + deref(p.DeprecationReason)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("esc", "back")))
	return boxStyle.Render(b.String())
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// RunBrowseUI starts the interactive catalog browser
func RunBrowseUI(store *catalog.Store) error {
	p := tea.NewProgram(NewBrowseModel(store))
	_, err := p.Run()
	return err
}
