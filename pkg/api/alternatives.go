package api

import (
	"context"
	"fmt"
)

// PartAlternatives returns every alternative link touching a part,
// regardless of which column the part occupies in the row. Rows come
// back in backend order; display ordering is the caller's concern.
func (c *Client) PartAlternatives(ctx context.Context, partID int) ([]PartAlternative, error) {
	return get[[]PartAlternative](ctx, c, fmt.Sprintf("/parts/catalog/%d/alternatives", partID))
}

// CreateAlternative links another part as an alternative of partID.
// The backend normalizes the pair so only one row ever exists per
// unordered pair; linking an already-linked pair is a 409.
func (c *Client) CreateAlternative(ctx context.Context, partID int, body AlternativeCreate) (PartAlternative, error) {
	return post[PartAlternative](ctx, c, fmt.Sprintf("/parts/catalog/%d/alternatives", partID), body)
}

// UpdateAlternative changes relationship, preference, or notes on an
// existing link. The two linked parts cannot be changed.
func (c *Client) UpdateAlternative(ctx context.Context, linkID int, body AlternativeUpdate) (PartAlternative, error) {
	return put[PartAlternative](ctx, c, fmt.Sprintf("/parts/alternatives/%d", linkID), body)
}

// DeleteAlternative unlinks two parts. Destructive and not undoable;
// the UI confirms before calling this.
func (c *Client) DeleteAlternative(ctx context.Context, linkID int) error {
	return c.del(ctx, fmt.Sprintf("/parts/alternatives/%d", linkID))
}
