package api

import (
	"context"
	"fmt"
)

// brandSegment renders a brand id for a URL path. The General
// (unbranded) slot has no id, so the backend addresses it as 0.
func brandSegment(brandID *int) string {
	if brandID == nil {
		return "0"
	}
	return fmt.Sprintf("%d", *brandID)
}

// Categories returns all top-level categories with child counts, in
// backend order.
func (c *Client) Categories(ctx context.Context) ([]Category, error) {
	return get[[]Category](ctx, c, "/parts/categories")
}

// CreateCategory creates a category.
func (c *Client) CreateCategory(ctx context.Context, body CategoryCreate) (Category, error) {
	return post[Category](ctx, c, "/parts/categories", body)
}

// UpdateCategory updates a category's own fields.
func (c *Client) UpdateCategory(ctx context.Context, id int, body CategoryUpdate) (Category, error) {
	return put[Category](ctx, c, fmt.Sprintf("/parts/categories/%d", id), body)
}

// SetCategoryActive toggles just the active flag. Kept separate from
// UpdateCategory so deactivation never depends on the rest of the form
// being valid.
func (c *Client) SetCategoryActive(ctx context.Context, id int, active bool) (Category, error) {
	return put[Category](ctx, c, fmt.Sprintf("/parts/categories/%d/active", id), activeBody{IsActive: active})
}

// DeleteCategory deletes a category. The backend rejects it with a 409
// when styles or parts still exist underneath.
func (c *Client) DeleteCategory(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/parts/categories/%d", id))
}

// CategoryStyles returns the styles under a category, in backend order.
func (c *Client) CategoryStyles(ctx context.Context, categoryID int) ([]Style, error) {
	return get[[]Style](ctx, c, fmt.Sprintf("/parts/categories/%d/styles", categoryID))
}

// CreateStyle creates a style under the category named in the body.
func (c *Client) CreateStyle(ctx context.Context, body StyleCreate) (Style, error) {
	return post[Style](ctx, c, "/parts/styles", body)
}

// UpdateStyle updates a style's own fields.
func (c *Client) UpdateStyle(ctx context.Context, id int, body StyleUpdate) (Style, error) {
	return put[Style](ctx, c, fmt.Sprintf("/parts/styles/%d", id), body)
}

// SetStyleActive toggles just the active flag.
func (c *Client) SetStyleActive(ctx context.Context, id int, active bool) (Style, error) {
	return put[Style](ctx, c, fmt.Sprintf("/parts/styles/%d/active", id), activeBody{IsActive: active})
}

// DeleteStyle deletes a style; rejected when types or parts remain.
func (c *Client) DeleteStyle(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/parts/styles/%d", id))
}

// StyleTypes returns the types under a style, in backend order.
func (c *Client) StyleTypes(ctx context.Context, styleID int) ([]Type, error) {
	return get[[]Type](ctx, c, fmt.Sprintf("/parts/styles/%d/types", styleID))
}

// CreateType creates a type under the style named in the body.
func (c *Client) CreateType(ctx context.Context, body TypeCreate) (Type, error) {
	return post[Type](ctx, c, "/parts/types", body)
}

// UpdateType updates a type's own fields.
func (c *Client) UpdateType(ctx context.Context, id int, body TypeUpdate) (Type, error) {
	return put[Type](ctx, c, fmt.Sprintf("/parts/types/%d", id), body)
}

// SetTypeActive toggles just the active flag.
func (c *Client) SetTypeActive(ctx context.Context, id int, active bool) (Type, error) {
	return put[Type](ctx, c, fmt.Sprintf("/parts/types/%d/active", id), activeBody{IsActive: active})
}

// DeleteType deletes a type; rejected when links or parts remain.
func (c *Client) DeleteType(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/parts/types/%d", id))
}

// TypeColors returns the colors linked to a type.
func (c *Client) TypeColors(ctx context.Context, typeID int) ([]TypeColorLink, error) {
	return get[[]TypeColorLink](ctx, c, fmt.Sprintf("/parts/types/%d/colors", typeID))
}

// LinkTypeColors links one or more colors to a type in a single call.
// Already-linked colors are skipped by the backend.
func (c *Client) LinkTypeColors(ctx context.Context, typeID int, colorIDs []int) ([]TypeColorLink, error) {
	body := TypeColorLinkCreate{ColorIDs: colorIDs}
	return post[[]TypeColorLink](ctx, c, fmt.Sprintf("/parts/types/%d/colors", typeID), body)
}

// UnlinkTypeColor removes a type-color link. Rejected with a 409 when a
// part still exists for that (type, color) pair.
func (c *Client) UnlinkTypeColor(ctx context.Context, typeID, colorID int) error {
	return c.del(ctx, fmt.Sprintf("/parts/types/%d/colors/%d", typeID, colorID))
}

// TypeBrands returns the brands (and the General slot) enabled for a
// type, with per-brand part counts.
func (c *Client) TypeBrands(ctx context.Context, typeID int) ([]TypeBrandLink, error) {
	return get[[]TypeBrandLink](ctx, c, fmt.Sprintf("/parts/types/%d/brands", typeID))
}

// LinkTypeBrand enables a brand (or General, when brandID is nil) for a
// type.
func (c *Client) LinkTypeBrand(ctx context.Context, typeID int, brandID *int) (TypeBrandLink, error) {
	body := TypeBrandLinkCreate{BrandID: brandID}
	return post[TypeBrandLink](ctx, c, fmt.Sprintf("/parts/types/%d/brands", typeID), body)
}

// UnlinkTypeBrand disables a brand (or General) for a type. The backend
// rejects the unlink with a 409 while parts still reference the
// (type, brand) pair; callers surface that as a recoverable error.
func (c *Client) UnlinkTypeBrand(ctx context.Context, typeID int, brandID *int) error {
	return c.del(ctx, fmt.Sprintf("/parts/types/%d/brands/%s", typeID, brandSegment(brandID)))
}

// TypeBrandParts returns the parts under a (type, brand) combo, one row
// per linked color, in backend order.
func (c *Client) TypeBrandParts(ctx context.Context, typeID int, brandID *int) ([]TypeBrandPart, error) {
	path := fmt.Sprintf("/parts/types/%d/brands/%s/parts", typeID, brandSegment(brandID))
	return get[[]TypeBrandPart](ctx, c, path)
}

// QuickCreatePart creates a part directly from a (type, brand, color)
// tree coordinate. The color must already be linked to the type; the
// backend derives the part's name and placement. A 409 means a part
// already exists for that exact coordinate.
func (c *Client) QuickCreatePart(ctx context.Context, typeID int, brandID *int, colorID int) (Part, error) {
	body := QuickCreateRequest{BrandID: brandID, ColorID: colorID}
	return post[Part](ctx, c, fmt.Sprintf("/parts/types/%d/quick-create", typeID), body)
}

// Colors returns the global color master list.
func (c *Client) Colors(ctx context.Context) ([]Color, error) {
	return get[[]Color](ctx, c, "/parts/colors")
}

// CreateColor creates a global color.
func (c *Client) CreateColor(ctx context.Context, body ColorCreate) (Color, error) {
	return post[Color](ctx, c, "/parts/colors", body)
}

// UpdateColor updates a global color.
func (c *Client) UpdateColor(ctx context.Context, id int, body ColorUpdate) (Color, error) {
	return put[Color](ctx, c, fmt.Sprintf("/parts/colors/%d", id), body)
}

// DeleteColor deletes a color; rejected while type links or parts
// reference it.
func (c *Client) DeleteColor(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/parts/colors/%d", id))
}

// activeBody is the single-field payload for the active toggles.
type activeBody struct {
	IsActive bool `json:"is_active"`
}
