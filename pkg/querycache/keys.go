package querycache

import (
	"fmt"
	"strings"
)

// Key identifies one cached query result. Keys are built through the
// typed constructors below, never by hand, so prefix invalidation stays
// checkable at the call site instead of being a string-shape convention.
type Key string

// Prefix matches every key that starts with it.
type Prefix string

// Matches reports whether key falls under the prefix.
func (p Prefix) Matches(k Key) bool {
	return strings.HasPrefix(string(k), string(p))
}

// CategoriesKey caches the top-level category list.
func CategoriesKey() Key { return "categories" }

// StylesKey caches the style list of one category.
func StylesKey(categoryID int) Key {
	return Key(fmt.Sprintf("styles/%d", categoryID))
}

// StylesPrefix matches every per-category style list.
func StylesPrefix() Prefix { return "styles/" }

// TypesKey caches the type list of one style.
func TypesKey(styleID int) Key {
	return Key(fmt.Sprintf("types/%d", styleID))
}

// TypesPrefix matches every per-style type list.
func TypesPrefix() Prefix { return "types/" }

// TypeColorsKey caches the color links of one type.
func TypeColorsKey(typeID int) Key {
	return Key(fmt.Sprintf("type-colors/%d", typeID))
}

// TypeColorsPrefix matches every type's color links. Used when a global
// color changes, since its name and hex appear in every linked type.
func TypeColorsPrefix() Prefix { return "type-colors/" }

// TypeBrandsKey caches the brand links of one type.
func TypeBrandsKey(typeID int) Key {
	return Key(fmt.Sprintf("type-brands/%d", typeID))
}

// TypeBrandsPrefix matches every type's brand links.
func TypeBrandsPrefix() Prefix { return "type-brands/" }

// TypeBrandPartsKey caches the part rows of one (type, brand) combo.
// The General slot is keyed as brand 0 to keep the nil sentinel out of
// key space.
func TypeBrandPartsKey(typeID int, brandID *int) Key {
	b := 0
	if brandID != nil {
		b = *brandID
	}
	return Key(fmt.Sprintf("type-brand-parts/%d/%d", typeID, b))
}

// TypeBrandPartsPrefix matches every brand's part rows under one type.
func TypeBrandPartsPrefix(typeID int) Prefix {
	return Prefix(fmt.Sprintf("type-brand-parts/%d/", typeID))
}

// AllTypeBrandPartsPrefix matches part rows under every type.
func AllTypeBrandPartsPrefix() Prefix { return "type-brand-parts/" }

// PartKey caches one part's full detail.
func PartKey(partID int) Key {
	return Key(fmt.Sprintf("part/%d", partID))
}

// AlternativesKey caches one part's alternative links.
func AlternativesKey(partID int) Key {
	return Key(fmt.Sprintf("alternatives/%d", partID))
}

// BrandsKey caches the global brand list.
func BrandsKey() Key { return "brands" }

// ColorsKey caches the global color master list.
func ColorsKey() Key { return "colors" }

// SuppliersKey caches the supplier list.
func SuppliersKey() Key { return "suppliers" }
