// Package catalog is the client-side data model for the parts
// hierarchy: tree expansion state, the shared selection value, cached
// reads with their invalidation sets, quick-create, and the
// alternatives graph adapter. It holds no rendering concerns; the TUI
// and CLI sit on top of it.
package catalog

// Level discriminates a tree node's depth.
type Level int

const (
	LevelCategory Level = iota
	LevelStyle
	LevelType
	LevelBrand
	LevelColor // leaf: a color chip under (type, brand), maybe with a part
)

// String returns the level name.
func (l Level) String() string {
	switch l {
	case LevelCategory:
		return "category"
	case LevelStyle:
		return "style"
	case LevelType:
		return "type"
	case LevelBrand:
		return "brand"
	case LevelColor:
		return "color"
	}
	return "unknown"
}

// GeneralBrand is the in-tree id for the General (unbranded) slot. The
// API represents it as a nil brand id; inside the tree it is 0 so node
// ids stay comparable.
const GeneralBrand = 0

// NodeID addresses one tree node. It carries the full ancestor path so
// editors can always take the direct lookup path instead of re-deriving
// parents with a tree scan. Only the fields at or above the node's
// level are set.
type NodeID struct {
	Level      Level
	CategoryID int
	StyleID    int
	TypeID     int
	BrandID    int // GeneralBrand for the unbranded slot
	ColorID    int
	PartID     int // color leaves only; 0 when no part exists yet
}

// CategoryNode addresses a category row.
func CategoryNode(categoryID int) NodeID {
	return NodeID{Level: LevelCategory, CategoryID: categoryID}
}

// StyleNode addresses a style row under a category.
func StyleNode(categoryID, styleID int) NodeID {
	return NodeID{Level: LevelStyle, CategoryID: categoryID, StyleID: styleID}
}

// TypeNode addresses a type row under a style.
func TypeNode(categoryID, styleID, typeID int) NodeID {
	return NodeID{Level: LevelType, CategoryID: categoryID, StyleID: styleID, TypeID: typeID}
}

// BrandNode addresses a brand (or General) row under a type.
func BrandNode(categoryID, styleID, typeID, brandID int) NodeID {
	return NodeID{
		Level:      LevelBrand,
		CategoryID: categoryID,
		StyleID:    styleID,
		TypeID:     typeID,
		BrandID:    brandID,
	}
}

// ColorLeaf addresses a color chip under a brand node. partID is 0 when
// no part exists for the coordinate yet (a quick-create target).
func ColorLeaf(brand NodeID, colorID, partID int) NodeID {
	return NodeID{
		Level:      LevelColor,
		CategoryID: brand.CategoryID,
		StyleID:    brand.StyleID,
		TypeID:     brand.TypeID,
		BrandID:    brand.BrandID,
		ColorID:    colorID,
		PartID:     partID,
	}
}

// BrandPtr converts the in-tree brand id to the API's nil-for-General
// representation.
func BrandPtr(brandID int) *int {
	if brandID == GeneralBrand {
		return nil
	}
	return &brandID
}

// Selection is the single selected-node value shared by the whole tree.
// Selecting is independent of expansion: neither implies the other.
type Selection struct {
	valid bool
	node  NodeID
}

// Select returns a selection of the given node.
func Select(id NodeID) Selection {
	return Selection{valid: true, node: id}
}

// NoSelection is the empty selection.
func NoSelection() Selection {
	return Selection{}
}

// IsZero reports whether nothing is selected.
func (s Selection) IsZero() bool { return !s.valid }

// Node returns the selected node id; ok is false when nothing is
// selected.
func (s Selection) Node() (NodeID, bool) {
	return s.node, s.valid
}

// Is reports whether the given node is the selected one.
func (s Selection) Is(id NodeID) bool {
	return s.valid && s.node == id
}
