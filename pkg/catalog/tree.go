package catalog

import "sync"

// State is a tree node's expansion state. The machine is
// collapsed → loading → expanded, and expanded/loading → collapsed.
type State int

const (
	StateCollapsed State = iota
	StateLoading
	StateExpanded
)

// Child is one rendered child row of an expanded node. Children keep
// the order the backend returned them in.
type Child struct {
	ID       NodeID
	Title    string
	Badge    string // count summary for the row
	Inactive bool
	Hex      string // color leaves: swatch hex code
	Pending  bool   // color leaves: branded part missing its MPN
}

type node struct {
	state    State
	gen      uint64
	children []Child
}

// Tree tracks expansion state and loaded children for every node the
// user has touched. Fetching is the caller's job: BeginExpand hands out
// a generation tag, the caller fetches the children (through the query
// cache), and FinishExpand commits the result only if the tag still
// matches — a response that arrives after the node was collapsed or
// re-expanded is discarded, never applied.
type Tree struct {
	mu    sync.Mutex
	nodes map[NodeID]*node
}

// NewTree creates an empty tree; every node starts collapsed.
func NewTree() *Tree {
	return &Tree{nodes: make(map[NodeID]*node)}
}

func (t *Tree) get(id NodeID) *node {
	n, ok := t.nodes[id]
	if !ok {
		n = &node{}
		t.nodes[id] = n
	}
	return n
}

// StateOf returns the node's current state.
func (t *Tree) StateOf(id NodeID) State {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n, ok := t.nodes[id]; ok {
		return n.state
	}
	return StateCollapsed
}

// Children returns the loaded children of a node, in backend order.
// Collapsed nodes have none, and a failed fetch never leaves partial
// children behind. A node refreshing via BeginRefresh keeps serving its
// previous children until FinishExpand replaces them; a first expand
// has none to serve while loading.
func (t *Tree) Children(id NodeID) []Child {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.nodes[id]
	if !ok || n.state == StateCollapsed {
		return nil
	}
	return n.children
}

// BeginExpand moves a collapsed node to loading and returns the
// generation tag the eventual FinishExpand must present. Expansion is
// idempotent: a node that is already loading or expanded reports
// ok=false and the caller issues no fetch.
func (t *Tree) BeginExpand(id NodeID) (gen uint64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.get(id)
	if n.state != StateCollapsed {
		return 0, false
	}
	n.state = StateLoading
	n.gen++
	return n.gen, true
}

// BeginRefresh is BeginExpand for a node that is already expanded: the
// node goes back to loading (children kept for display) and a new
// generation is issued. Used after a mutation invalidated the node's
// children list.
func (t *Tree) BeginRefresh(id NodeID) (gen uint64, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.get(id)
	if n.state != StateExpanded {
		return 0, false
	}
	n.state = StateLoading
	n.gen++
	return n.gen, true
}

// FinishExpand commits a fetch result. The result is dropped when the
// generation no longer matches (the node collapsed or restarted in the
// meantime). A fetch error returns the node to collapsed with no
// children; the user retries by expanding again.
func (t *Tree) FinishExpand(id NodeID, gen uint64, children []Child, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.nodes[id]
	if !ok || n.gen != gen || n.state != StateLoading {
		return false
	}
	if err != nil {
		n.state = StateCollapsed
		n.children = nil
		return false
	}
	n.state = StateExpanded
	n.children = children
	return true
}

// Collapse returns a node to collapsed and advances its generation so
// any in-flight fetch result for it is discarded on arrival.
func (t *Tree) Collapse(id NodeID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	n, ok := t.nodes[id]
	if !ok {
		return
	}
	n.state = StateCollapsed
	n.children = nil
	n.gen++
}

// CollapseAll resets the whole tree.
func (t *Tree) CollapseAll() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for _, n := range t.nodes {
		n.state = StateCollapsed
		n.children = nil
		n.gen++
	}
}
