package api

import (
	"context"
	"fmt"
	"strconv"
)

// Brands lists brands with part counts. Both filters are optional.
func (c *Client) Brands(ctx context.Context, search string, isActive *bool) ([]Brand, error) {
	qp := map[string]string{"search": search}
	if isActive != nil {
		qp["is_active"] = strconv.FormatBool(*isActive)
	}
	return get[[]Brand](ctx, c, "/parts/brands"+queryString(qp))
}

// GetBrand returns one brand.
func (c *Client) GetBrand(ctx context.Context, id int) (Brand, error) {
	return get[Brand](ctx, c, fmt.Sprintf("/parts/brands/%d", id))
}

// CreateBrand creates a brand. Duplicate names come back as a 409.
func (c *Client) CreateBrand(ctx context.Context, body BrandCreate) (Brand, error) {
	return post[Brand](ctx, c, "/parts/brands", body)
}

// UpdateBrand updates a brand.
func (c *Client) UpdateBrand(ctx context.Context, id int, body BrandUpdate) (Brand, error) {
	return put[Brand](ctx, c, fmt.Sprintf("/parts/brands/%d", id), body)
}

// DeleteBrand deletes a brand; rejected with a 409 while parts still
// reference it.
func (c *Client) DeleteBrand(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/parts/brands/%d", id))
}

// BrandSuppliers lists the suppliers that carry a brand.
func (c *Client) BrandSuppliers(ctx context.Context, brandID int) ([]BrandSupplierLink, error) {
	return get[[]BrandSupplierLink](ctx, c, fmt.Sprintf("/parts/brands/%d/suppliers", brandID))
}

// Suppliers lists suppliers (read-only here; supplier management lives
// in the main admin app).
func (c *Client) Suppliers(ctx context.Context, search string, isActive *bool) ([]Supplier, error) {
	qp := map[string]string{"search": search}
	if isActive != nil {
		qp["is_active"] = strconv.FormatBool(*isActive)
	}
	return get[[]Supplier](ctx, c, "/parts/suppliers"+queryString(qp))
}

// GetSupplier returns one supplier.
func (c *Client) GetSupplier(ctx context.Context, id int) (Supplier, error) {
	return get[Supplier](ctx, c, fmt.Sprintf("/parts/suppliers/%d", id))
}
