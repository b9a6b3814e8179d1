package catalog

import (
	"context"
	"errors"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

// ErrColorNotLinked is returned when quick-create is attempted for a
// color the type does not carry. Quick-create never links the color
// implicitly; the user does that from the type editor first.
var ErrColorNotLinked = errors.New("color is not linked to this type")

// QuickCreate creates a part directly from a tree coordinate: the
// (type, brand, color) triple addressed by a color leaf with no part.
// The backend derives the part's name, code, and hierarchy placement
// from the coordinate; nothing about the part is constructed here.
//
// The color link precondition is checked against the cached link list
// so the common mistake fails fast, but the backend remains the
// authority — a 409 from it (part already exists for the coordinate)
// comes back unwrapped for inline display at the color tile.
//
// Invalidates on success: type-brand-parts/{type}/{brand},
// type-brands/{type} (part counts), types/{style} (part counts). The
// type's own detail row is not touched; its color links did not change.
func (s *Store) QuickCreate(ctx context.Context, leaf NodeID) (api.Part, error) {
	if leaf.Level != LevelColor {
		return api.Part{}, errors.New("quick-create needs a color leaf coordinate")
	}

	links, err := s.TypeColors(ctx, leaf.TypeID)
	if err != nil {
		return api.Part{}, err
	}
	linked := false
	for _, l := range links {
		if l.ColorID == leaf.ColorID {
			linked = true
			break
		}
	}
	if !linked {
		return api.Part{}, ErrColorNotLinked
	}

	part, err := s.api.QuickCreatePart(ctx, leaf.TypeID, BrandPtr(leaf.BrandID), leaf.ColorID)
	if err != nil {
		return api.Part{}, err
	}

	s.cache.Invalidate(
		querycache.TypeBrandPartsKey(leaf.TypeID, BrandPtr(leaf.BrandID)),
		querycache.TypeBrandsKey(leaf.TypeID),
		querycache.TypesKey(leaf.StyleID),
	)
	return part, nil
}
