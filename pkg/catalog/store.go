package catalog

import (
	"context"
	"fmt"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

// Store is the cached data access layer for the catalog tree and its
// editors. All reads go through the query cache; every mutation method
// documents the invalidation set it applies on success. Failed
// mutations invalidate nothing — the tree keeps showing what the
// backend still holds.
type Store struct {
	api   *api.Client
	cache *querycache.Cache
}

// NewStore creates a Store on top of a client and cache.
func NewStore(client *api.Client, cache *querycache.Cache) *Store {
	return &Store{api: client, cache: cache}
}

// Cache exposes the underlying cache for callers that manage their own
// keys (the TUI's refresh logic).
func (s *Store) Cache() *querycache.Cache { return s.cache }

// ── Cached reads ────────────────────────────────────────────────────

// Categories returns the category list (hierarchy staleness window).
func (s *Store) Categories(ctx context.Context) ([]api.Category, error) {
	return querycache.Get(ctx, s.cache, querycache.CategoriesKey(), querycache.HierarchyTTL,
		func(ctx context.Context) ([]api.Category, error) {
			return s.api.Categories(ctx)
		})
}

// Styles returns the styles under one category.
func (s *Store) Styles(ctx context.Context, categoryID int) ([]api.Style, error) {
	return querycache.Get(ctx, s.cache, querycache.StylesKey(categoryID), querycache.HierarchyTTL,
		func(ctx context.Context) ([]api.Style, error) {
			return s.api.CategoryStyles(ctx, categoryID)
		})
}

// Types returns the types under one style.
func (s *Store) Types(ctx context.Context, styleID int) ([]api.Type, error) {
	return querycache.Get(ctx, s.cache, querycache.TypesKey(styleID), querycache.HierarchyTTL,
		func(ctx context.Context) ([]api.Type, error) {
			return s.api.StyleTypes(ctx, styleID)
		})
}

// TypeColors returns the colors linked to one type.
func (s *Store) TypeColors(ctx context.Context, typeID int) ([]api.TypeColorLink, error) {
	return querycache.Get(ctx, s.cache, querycache.TypeColorsKey(typeID), querycache.HierarchyTTL,
		func(ctx context.Context) ([]api.TypeColorLink, error) {
			return s.api.TypeColors(ctx, typeID)
		})
}

// TypeBrands returns the brand links (including General) of one type.
func (s *Store) TypeBrands(ctx context.Context, typeID int) ([]api.TypeBrandLink, error) {
	return querycache.Get(ctx, s.cache, querycache.TypeBrandsKey(typeID), querycache.HierarchyTTL,
		func(ctx context.Context) ([]api.TypeBrandLink, error) {
			return s.api.TypeBrands(ctx, typeID)
		})
}

// TypeBrandParts returns the part rows for a (type, brand) combo.
// brandID uses the in-tree representation (GeneralBrand for unbranded).
func (s *Store) TypeBrandParts(ctx context.Context, typeID, brandID int) ([]api.TypeBrandPart, error) {
	return querycache.Get(ctx, s.cache, querycache.TypeBrandPartsKey(typeID, BrandPtr(brandID)), querycache.HierarchyTTL,
		func(ctx context.Context) ([]api.TypeBrandPart, error) {
			return s.api.TypeBrandParts(ctx, typeID, BrandPtr(brandID))
		})
}

// Part returns one part's full detail. Lookup results have no staleness
// window; they live until an invalidation.
func (s *Store) Part(ctx context.Context, partID int) (api.Part, error) {
	return querycache.Get(ctx, s.cache, querycache.PartKey(partID), querycache.SessionTTL,
		func(ctx context.Context) (api.Part, error) {
			return s.api.GetPart(ctx, partID)
		})
}

// Brands returns the global brand list (session lifetime).
func (s *Store) Brands(ctx context.Context) ([]api.Brand, error) {
	return querycache.Get(ctx, s.cache, querycache.BrandsKey(), querycache.SessionTTL,
		func(ctx context.Context) ([]api.Brand, error) {
			return s.api.Brands(ctx, "", nil)
		})
}

// Colors returns the global color master list (session lifetime).
func (s *Store) Colors(ctx context.Context) ([]api.Color, error) {
	return querycache.Get(ctx, s.cache, querycache.ColorsKey(), querycache.SessionTTL,
		func(ctx context.Context) ([]api.Color, error) {
			return s.api.Colors(ctx)
		})
}

// Suppliers returns the supplier list (session lifetime).
func (s *Store) Suppliers(ctx context.Context) ([]api.Supplier, error) {
	return querycache.Get(ctx, s.cache, querycache.SuppliersKey(), querycache.SessionTTL,
		func(ctx context.Context) ([]api.Supplier, error) {
			return s.api.Suppliers(ctx, "", nil)
		})
}

// BrandSuppliers lists the suppliers carrying one brand. Uncached; it
// backs the brand editor's supplier pane and the CLI listing.
func (s *Store) BrandSuppliers(ctx context.Context, brandID int) ([]api.BrandSupplierLink, error) {
	return s.api.BrandSuppliers(ctx, brandID)
}

// Search runs a paginated catalog search. Search results are not
// cached; every page is a fresh read.
func (s *Store) Search(ctx context.Context, params api.PartSearchParams) (api.Page[api.Part], error) {
	return s.api.SearchParts(ctx, params)
}

// PendingPartNumbers lists branded parts still missing a manufacturer
// number. Uncached; the list shrinks as numbers are filled in.
func (s *Store) PendingPartNumbers(ctx context.Context, page, pageSize int) (api.Page[api.Part], error) {
	return s.api.PendingPartNumbers(ctx, page, pageSize)
}

// ── Tree children ───────────────────────────────────────────────────

// ChildrenOf fetches the immediate children of a tree node through the
// cache and shapes them into rendered rows, preserving backend order.
// Brand nodes merge two reads: the part rows for the combo plus the
// type's linked colors, so colors that have no part yet still render as
// quick-create targets.
func (s *Store) ChildrenOf(ctx context.Context, id NodeID) ([]Child, error) {
	switch id.Level {
	case LevelCategory:
		styles, err := s.Styles(ctx, id.CategoryID)
		if err != nil {
			return nil, err
		}
		children := make([]Child, 0, len(styles))
		for _, st := range styles {
			children = append(children, Child{
				ID:       StyleNode(id.CategoryID, st.ID),
				Title:    st.Name,
				Badge:    fmt.Sprintf("%d types · %d parts", st.TypeCount, st.PartCount),
				Inactive: !st.IsActive,
			})
		}
		return children, nil

	case LevelStyle:
		types, err := s.Types(ctx, id.StyleID)
		if err != nil {
			return nil, err
		}
		children := make([]Child, 0, len(types))
		for _, ty := range types {
			children = append(children, Child{
				ID:       TypeNode(id.CategoryID, id.StyleID, ty.ID),
				Title:    ty.Name,
				Badge:    fmt.Sprintf("%d colors · %d parts", ty.ColorCount, ty.PartCount),
				Inactive: !ty.IsActive,
			})
		}
		return children, nil

	case LevelType:
		brands, err := s.TypeBrands(ctx, id.TypeID)
		if err != nil {
			return nil, err
		}
		children := make([]Child, 0, len(brands))
		for _, b := range brands {
			brandID := GeneralBrand
			if b.BrandID != nil {
				brandID = *b.BrandID
			}
			children = append(children, Child{
				ID:    BrandNode(id.CategoryID, id.StyleID, id.TypeID, brandID),
				Title: b.BrandName,
				Badge: fmt.Sprintf("%d parts", b.PartCount),
			})
		}
		return children, nil

	case LevelBrand:
		parts, err := s.TypeBrandParts(ctx, id.TypeID, id.BrandID)
		if err != nil {
			return nil, err
		}
		colors, err := s.TypeColors(ctx, id.TypeID)
		if err != nil {
			return nil, err
		}

		byColor := make(map[int]api.TypeBrandPart, len(parts))
		for _, p := range parts {
			if p.ColorID != nil {
				byColor[*p.ColorID] = p
			}
		}

		children := make([]Child, 0, len(colors))
		for _, link := range colors {
			name := fmt.Sprintf("color %d", link.ColorID)
			if link.ColorName != nil {
				name = *link.ColorName
			}
			hex := ""
			if link.HexCode != nil {
				hex = *link.HexCode
			}
			child := Child{
				ID:    ColorLeaf(id, link.ColorID, 0),
				Title: name,
				Badge: "no part",
				Hex:   hex,
			}
			if p, ok := byColor[link.ColorID]; ok {
				child.ID = ColorLeaf(id, link.ColorID, p.ID)
				child.Title = name
				child.Badge = p.Name
				child.Inactive = p.IsDeprecated
				child.Pending = p.HasPendingPartNumber
			}
			children = append(children, child)
		}
		return children, nil
	}

	return nil, fmt.Errorf("node level %s has no children", id.Level)
}

// ── Editor resolution ───────────────────────────────────────────────

// CategoryByID finds a category in the cached top-level list.
func (s *Store) CategoryByID(ctx context.Context, categoryID int) (api.Category, error) {
	cats, err := s.Categories(ctx)
	if err != nil {
		return api.Category{}, err
	}
	for _, c := range cats {
		if c.ID == categoryID {
			return c, nil
		}
	}
	return api.Category{}, api.ErrNotFound
}

// StyleByID is the direct lookup path: the caller knows the parent
// category (it reached the style by expanding it), so one scoped fetch
// suffices.
func (s *Store) StyleByID(ctx context.Context, categoryID, styleID int) (api.Style, error) {
	styles, err := s.Styles(ctx, categoryID)
	if err != nil {
		return api.Style{}, err
	}
	for _, st := range styles {
		if st.ID == styleID {
			return st, nil
		}
	}
	return api.Style{}, api.ErrNotFound
}

// TypeByID is the direct lookup path for a type whose parent style is
// known.
func (s *Store) TypeByID(ctx context.Context, styleID, typeID int) (api.Type, error) {
	types, err := s.Types(ctx, styleID)
	if err != nil {
		return api.Type{}, err
	}
	for _, ty := range types {
		if ty.ID == typeID {
			return ty, nil
		}
	}
	return api.Type{}, api.ErrNotFound
}

// ScanForStyle is the degraded lookup path for a style reached without
// its parent id (an out-of-context link). It walks every category's
// style list until it finds the id — O(hierarchy size), one fetch per
// category. Callers that know the parent use StyleByID instead.
func (s *Store) ScanForStyle(ctx context.Context, styleID int) (api.Style, error) {
	cats, err := s.Categories(ctx)
	if err != nil {
		return api.Style{}, err
	}
	for _, c := range cats {
		styles, err := s.Styles(ctx, c.ID)
		if err != nil {
			return api.Style{}, err
		}
		for _, st := range styles {
			if st.ID == styleID {
				return st, nil
			}
		}
	}
	return api.Style{}, api.ErrNotFound
}

// ScanForType is the degraded lookup path for a type reached without
// its ancestry: all categories → all styles → all types, stopping at
// the first match. O(hierarchy size); use TypeByID when the style id is
// known.
func (s *Store) ScanForType(ctx context.Context, typeID int) (api.Type, error) {
	cats, err := s.Categories(ctx)
	if err != nil {
		return api.Type{}, err
	}
	for _, c := range cats {
		styles, err := s.Styles(ctx, c.ID)
		if err != nil {
			return api.Type{}, err
		}
		for _, st := range styles {
			types, err := s.Types(ctx, st.ID)
			if err != nil {
				return api.Type{}, err
			}
			for _, ty := range types {
				if ty.ID == typeID {
					return ty, nil
				}
			}
		}
	}
	return api.Type{}, api.ErrNotFound
}
