package api

import (
	"context"
	"fmt"
	"strconv"
)

// SearchParts lists catalog parts with search, filter, sort, and
// pagination. It backs the catalog CLI listing and the alternatives
// search-and-pick flow.
func (c *Client) SearchParts(ctx context.Context, params PartSearchParams) (Page[Part], error) {
	qp := map[string]string{
		"search":    params.Search,
		"part_type": params.PartType,
		"sort_by":   params.SortBy,
		"sort_dir":  params.SortDir,
	}
	if params.BrandID != nil {
		qp["brand_id"] = strconv.Itoa(*params.BrandID)
	}
	if params.IsDeprecated != nil {
		qp["is_deprecated"] = strconv.FormatBool(*params.IsDeprecated)
	}
	if params.Page > 0 {
		qp["page"] = strconv.Itoa(params.Page)
	}
	if params.PageSize > 0 {
		qp["page_size"] = strconv.Itoa(params.PageSize)
	}
	return get[Page[Part]](ctx, c, "/parts/catalog"+queryString(qp))
}

// GetPart returns full detail for one part.
func (c *Client) GetPart(ctx context.Context, id int) (Part, error) {
	return get[Part](ctx, c, fmt.Sprintf("/parts/catalog/%d", id))
}

// CreatePart creates a part through the catalog-wide form path. For
// tree-coordinate creation use QuickCreatePart.
func (c *Client) CreatePart(ctx context.Context, body PartCreate) (Part, error) {
	return post[Part](ctx, c, "/parts/catalog", body)
}

// UpdatePart updates a part's non-pricing fields.
func (c *Client) UpdatePart(ctx context.Context, id int, body PartUpdate) (Part, error) {
	return put[Part](ctx, c, fmt.Sprintf("/parts/catalog/%d", id), body)
}

// DeletePart deletes a part. The backend rejects the delete with a 409
// while stock exists; deprecation is the recommended path instead.
func (c *Client) DeletePart(ctx context.Context, id int) error {
	return c.del(ctx, fmt.Sprintf("/parts/catalog/%d", id))
}

// GetPartPricing returns just the pricing triple for a part.
func (c *Client) GetPartPricing(ctx context.Context, id int) (Part, error) {
	return get[Part](ctx, c, fmt.Sprintf("/parts/catalog/%d/pricing", id))
}

// UpdatePartPricing sets cost and markup. The sell price is derived
// server-side and comes back in the response.
func (c *Client) UpdatePartPricing(ctx context.Context, id int, body PricingUpdate) (Part, error) {
	return put[Part](ctx, c, fmt.Sprintf("/parts/catalog/%d/pricing", id), body)
}

// PendingPartNumbers lists branded parts whose manufacturer part number
// has not been filled in yet (quick-created parts start this way).
func (c *Client) PendingPartNumbers(ctx context.Context, page, pageSize int) (Page[Part], error) {
	qp := map[string]string{}
	if page > 0 {
		qp["page"] = strconv.Itoa(page)
	}
	if pageSize > 0 {
		qp["page_size"] = strconv.Itoa(pageSize)
	}
	return get[Page[Part]](ctx, c, "/parts/catalog/pending-part-numbers"+queryString(qp))
}
