package catalog

import (
	"context"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

// Mutations. Each method names the cache keys it invalidates on
// success. A parent list is invalidated whenever the mutation changes
// what the parent's count badges show. Nothing is invalidated on
// failure and nothing here retries — conflicts come back to the caller
// for inline display.

// AddCategory creates a category.
// Invalidates: categories.
func (s *Store) AddCategory(ctx context.Context, body api.CategoryCreate) (api.Category, error) {
	cat, err := s.api.CreateCategory(ctx, body)
	if err != nil {
		return api.Category{}, err
	}
	s.cache.Invalidate(querycache.CategoriesKey())
	return cat, nil
}

// SaveCategory updates a category's own fields.
// Invalidates: categories.
func (s *Store) SaveCategory(ctx context.Context, categoryID int, body api.CategoryUpdate) (api.Category, error) {
	cat, err := s.api.UpdateCategory(ctx, categoryID, body)
	if err != nil {
		return api.Category{}, err
	}
	s.cache.Invalidate(querycache.CategoriesKey())
	return cat, nil
}

// SetCategoryActive toggles only the active flag, independent of the
// rest of the edit form.
// Invalidates: categories.
func (s *Store) SetCategoryActive(ctx context.Context, categoryID int, active bool) (api.Category, error) {
	cat, err := s.api.SetCategoryActive(ctx, categoryID, active)
	if err != nil {
		return api.Category{}, err
	}
	s.cache.Invalidate(querycache.CategoriesKey())
	return cat, nil
}

// DeleteCategory deletes a category. The backend rejects it while
// children exist; that error is returned untouched.
// Invalidates: categories, styles/{id}.
func (s *Store) DeleteCategory(ctx context.Context, categoryID int) error {
	if err := s.api.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}
	s.cache.Invalidate(querycache.CategoriesKey(), querycache.StylesKey(categoryID))
	return nil
}

// AddStyle creates a style under a category.
// Invalidates: styles/{category}, categories (style counts).
func (s *Store) AddStyle(ctx context.Context, body api.StyleCreate) (api.Style, error) {
	st, err := s.api.CreateStyle(ctx, body)
	if err != nil {
		return api.Style{}, err
	}
	s.cache.Invalidate(querycache.StylesKey(body.CategoryID), querycache.CategoriesKey())
	return st, nil
}

// SaveStyle updates a style's own fields. The parent category list is
// also dropped so its badges re-render from fresh rows.
// Invalidates: styles/{category}, categories.
func (s *Store) SaveStyle(ctx context.Context, categoryID, styleID int, body api.StyleUpdate) (api.Style, error) {
	st, err := s.api.UpdateStyle(ctx, styleID, body)
	if err != nil {
		return api.Style{}, err
	}
	s.cache.Invalidate(querycache.StylesKey(categoryID), querycache.CategoriesKey())
	return st, nil
}

// SetStyleActive toggles only the active flag.
// Invalidates: styles/{category}.
func (s *Store) SetStyleActive(ctx context.Context, categoryID, styleID int, active bool) (api.Style, error) {
	st, err := s.api.SetStyleActive(ctx, styleID, active)
	if err != nil {
		return api.Style{}, err
	}
	s.cache.Invalidate(querycache.StylesKey(categoryID))
	return st, nil
}

// DeleteStyle deletes a style.
// Invalidates: styles/{category}, categories, types/{style}.
func (s *Store) DeleteStyle(ctx context.Context, categoryID, styleID int) error {
	if err := s.api.DeleteStyle(ctx, styleID); err != nil {
		return err
	}
	s.cache.Invalidate(
		querycache.StylesKey(categoryID),
		querycache.CategoriesKey(),
		querycache.TypesKey(styleID),
	)
	return nil
}

// AddType creates a type under a style.
// Invalidates: types/{style}, styles/{category} (type counts).
func (s *Store) AddType(ctx context.Context, categoryID int, body api.TypeCreate) (api.Type, error) {
	ty, err := s.api.CreateType(ctx, body)
	if err != nil {
		return api.Type{}, err
	}
	s.cache.Invalidate(querycache.TypesKey(body.StyleID), querycache.StylesKey(categoryID))
	return ty, nil
}

// SaveType updates a type's own fields.
// Invalidates: types/{style}, styles/{category}.
func (s *Store) SaveType(ctx context.Context, categoryID, styleID, typeID int, body api.TypeUpdate) (api.Type, error) {
	ty, err := s.api.UpdateType(ctx, typeID, body)
	if err != nil {
		return api.Type{}, err
	}
	s.cache.Invalidate(querycache.TypesKey(styleID), querycache.StylesKey(categoryID))
	return ty, nil
}

// SetTypeActive toggles only the active flag.
// Invalidates: types/{style}.
func (s *Store) SetTypeActive(ctx context.Context, styleID, typeID int, active bool) (api.Type, error) {
	ty, err := s.api.SetTypeActive(ctx, typeID, active)
	if err != nil {
		return api.Type{}, err
	}
	s.cache.Invalidate(querycache.TypesKey(styleID))
	return ty, nil
}

// DeleteType deletes a type and drops everything cached beneath it.
// Invalidates: types/{style}, styles/{category}, type-colors/{type},
// type-brands/{type}, type-brand-parts/{type}/*.
func (s *Store) DeleteType(ctx context.Context, categoryID, styleID, typeID int) error {
	if err := s.api.DeleteType(ctx, typeID); err != nil {
		return err
	}
	s.cache.Invalidate(
		querycache.TypesKey(styleID),
		querycache.StylesKey(categoryID),
		querycache.TypeColorsKey(typeID),
		querycache.TypeBrandsKey(typeID),
	)
	s.cache.InvalidatePrefix(querycache.TypeBrandPartsPrefix(typeID))
	return nil
}

// LinkColors links colors to a type (bulk). New links add quick-create
// targets under every brand of the type.
// Invalidates: type-colors/{type}, types/{style} (color counts),
// type-brand-parts/{type}/*.
func (s *Store) LinkColors(ctx context.Context, styleID, typeID int, colorIDs []int) ([]api.TypeColorLink, error) {
	links, err := s.api.LinkTypeColors(ctx, typeID, colorIDs)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(querycache.TypeColorsKey(typeID), querycache.TypesKey(styleID))
	s.cache.InvalidatePrefix(querycache.TypeBrandPartsPrefix(typeID))
	return links, nil
}

// UnlinkColor removes a type-color link. The backend rejects it while a
// part exists for the (type, color) pair; on rejection nothing is
// invalidated and both the link and the part stay visible.
// Invalidates: type-colors/{type}, types/{style},
// type-brand-parts/{type}/*.
func (s *Store) UnlinkColor(ctx context.Context, styleID, typeID, colorID int) error {
	if err := s.api.UnlinkTypeColor(ctx, typeID, colorID); err != nil {
		return err
	}
	s.cache.Invalidate(querycache.TypeColorsKey(typeID), querycache.TypesKey(styleID))
	s.cache.InvalidatePrefix(querycache.TypeBrandPartsPrefix(typeID))
	return nil
}

// LinkBrand enables a brand (GeneralBrand for the unbranded slot) on a
// type.
// Invalidates: type-brands/{type}.
func (s *Store) LinkBrand(ctx context.Context, typeID, brandID int) (api.TypeBrandLink, error) {
	link, err := s.api.LinkTypeBrand(ctx, typeID, BrandPtr(brandID))
	if err != nil {
		return api.TypeBrandLink{}, err
	}
	s.cache.Invalidate(querycache.TypeBrandsKey(typeID))
	return link, nil
}

// UnlinkBrand disables a brand for a type. Rejected by the backend
// while parts reference the pair; the conflict is surfaced, not
// retried.
// Invalidates: type-brands/{type}, type-brand-parts/{type}/{brand}.
func (s *Store) UnlinkBrand(ctx context.Context, typeID, brandID int) error {
	if err := s.api.UnlinkTypeBrand(ctx, typeID, BrandPtr(brandID)); err != nil {
		return err
	}
	s.cache.Invalidate(
		querycache.TypeBrandsKey(typeID),
		querycache.TypeBrandPartsKey(typeID, BrandPtr(brandID)),
	)
	return nil
}

// SavePartAt updates a part reached through the tree; the leaf carries
// the (type, brand) coordinate so the chip row refreshes too.
// Invalidates: part/{id}, type-brand-parts/{type}/{brand}.
func (s *Store) SavePartAt(ctx context.Context, leaf NodeID, body api.PartUpdate) (api.Part, error) {
	part, err := s.api.UpdatePart(ctx, leaf.PartID, body)
	if err != nil {
		return api.Part{}, err
	}
	s.cache.Invalidate(
		querycache.PartKey(leaf.PartID),
		querycache.TypeBrandPartsKey(leaf.TypeID, BrandPtr(leaf.BrandID)),
	)
	return part, nil
}

// SavePart updates a part without tree context (CLI path).
// Invalidates: part/{id}, type-brand-parts/*/* (coordinate unknown).
func (s *Store) SavePart(ctx context.Context, partID int, body api.PartUpdate) (api.Part, error) {
	part, err := s.api.UpdatePart(ctx, partID, body)
	if err != nil {
		return api.Part{}, err
	}
	s.cache.Invalidate(querycache.PartKey(partID))
	s.cache.InvalidatePrefix(querycache.AllTypeBrandPartsPrefix())
	return part, nil
}

// DeletePartAt deletes a part reached through the tree. Rejected by the
// backend while stock exists.
// Invalidates: part/{id}, type-brand-parts/{type}/{brand},
// type-brands/{type} (part counts), types/{style} (part counts).
func (s *Store) DeletePartAt(ctx context.Context, leaf NodeID) error {
	if err := s.api.DeletePart(ctx, leaf.PartID); err != nil {
		return err
	}
	s.cache.Invalidate(
		querycache.PartKey(leaf.PartID),
		querycache.TypeBrandPartsKey(leaf.TypeID, BrandPtr(leaf.BrandID)),
		querycache.TypeBrandsKey(leaf.TypeID),
		querycache.TypesKey(leaf.StyleID),
	)
	return nil
}

// AddBrand creates a global brand.
// Invalidates: brands.
func (s *Store) AddBrand(ctx context.Context, body api.BrandCreate) (api.Brand, error) {
	b, err := s.api.CreateBrand(ctx, body)
	if err != nil {
		return api.Brand{}, err
	}
	s.cache.Invalidate(querycache.BrandsKey())
	return b, nil
}

// SaveBrand updates a global brand. Brand names appear in every type's
// brand links, so those drop wholesale.
// Invalidates: brands, type-brands/*.
func (s *Store) SaveBrand(ctx context.Context, brandID int, body api.BrandUpdate) (api.Brand, error) {
	b, err := s.api.UpdateBrand(ctx, brandID, body)
	if err != nil {
		return api.Brand{}, err
	}
	s.cache.Invalidate(querycache.BrandsKey())
	s.cache.InvalidatePrefix(querycache.TypeBrandsPrefix())
	return b, nil
}

// DeleteBrand deletes a brand; rejected while parts reference it.
// Invalidates: brands, type-brands/*.
func (s *Store) DeleteBrand(ctx context.Context, brandID int) error {
	if err := s.api.DeleteBrand(ctx, brandID); err != nil {
		return err
	}
	s.cache.Invalidate(querycache.BrandsKey())
	s.cache.InvalidatePrefix(querycache.TypeBrandsPrefix())
	return nil
}

// AddColor creates a global color.
// Invalidates: colors.
func (s *Store) AddColor(ctx context.Context, body api.ColorCreate) (api.Color, error) {
	c, err := s.api.CreateColor(ctx, body)
	if err != nil {
		return api.Color{}, err
	}
	s.cache.Invalidate(querycache.ColorsKey())
	return c, nil
}

// SaveColor updates a global color. Color names and hex codes appear in
// every linked type's color list and chip rows.
// Invalidates: colors, type-colors/*, type-brand-parts/*.
func (s *Store) SaveColor(ctx context.Context, colorID int, body api.ColorUpdate) (api.Color, error) {
	c, err := s.api.UpdateColor(ctx, colorID, body)
	if err != nil {
		return api.Color{}, err
	}
	s.cache.Invalidate(querycache.ColorsKey())
	s.cache.InvalidatePrefix(querycache.TypeColorsPrefix(), querycache.AllTypeBrandPartsPrefix())
	return c, nil
}

// DeleteColor deletes a color; rejected while links or parts reference
// it.
// Invalidates: colors, type-colors/*.
func (s *Store) DeleteColor(ctx context.Context, colorID int) error {
	if err := s.api.DeleteColor(ctx, colorID); err != nil {
		return err
	}
	s.cache.Invalidate(querycache.ColorsKey())
	s.cache.InvalidatePrefix(querycache.TypeColorsPrefix())
	return nil
}
