package catalog

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

// AlternativeView is one alternative link seen from a particular part's
// side. A link row is undirected — the same row serves both parts'
// lists — so the view resolves which columns describe "the other part"
// relative to the part being viewed.
type AlternativeView struct {
	LinkID         int
	ViewingPartID  int
	OtherPartID    int
	OtherName      string
	OtherCode      string
	OtherBrandName string
	Relationship   string
	Preferred      bool
	Notes          string
}

// OtherSide resolves an undirected link row against the viewing part.
// When the viewing part sits in the part_id column, the alternative_*
// columns describe the other part; otherwise the part_* columns do.
// Reading alternative_* unconditionally shows the viewer its own part
// whenever it navigated in from the other side of the link.
func OtherSide(row api.PartAlternative, viewingPartID int) AlternativeView {
	v := AlternativeView{
		LinkID:        row.ID,
		ViewingPartID: viewingPartID,
		Relationship:  row.Relationship,
		Preferred:     row.Preference > 0,
	}
	if row.Notes != nil {
		v.Notes = *row.Notes
	}

	if row.PartID == viewingPartID {
		v.OtherPartID = row.AlternativePartID
		v.OtherName = row.AlternativeName
		if row.AlternativeCode != nil {
			v.OtherCode = *row.AlternativeCode
		}
		if row.AlternativeBrandName != nil {
			v.OtherBrandName = *row.AlternativeBrandName
		}
	} else {
		v.OtherPartID = row.PartID
		v.OtherName = row.PartName
		if row.PartCode != nil {
			v.OtherCode = *row.PartCode
		}
	}
	return v
}

var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English, collate.IgnoreCase)
)

// SortAlternatives orders views for display: preferred links first,
// then case-insensitive locale-aware compare of the other part's name,
// ties broken by link id ascending. The backend makes no ordering
// promise for this list, so the client re-sorts after every fetch.
func SortAlternatives(views []AlternativeView) {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	sort.SliceStable(views, func(i, j int) bool {
		if views[i].Preferred != views[j].Preferred {
			return views[i].Preferred
		}
		if c := collator.CompareString(views[i].OtherName, views[j].OtherName); c != 0 {
			return c < 0
		}
		return views[i].LinkID < views[j].LinkID
	})
}

// Alternatives returns a part's alternative list, resolved to the
// viewing side and sorted.
func (s *Store) Alternatives(ctx context.Context, partID int) ([]AlternativeView, error) {
	rows, err := querycache.Get(ctx, s.cache, querycache.AlternativesKey(partID), querycache.HierarchyTTL,
		func(ctx context.Context) ([]api.PartAlternative, error) {
			return s.api.PartAlternatives(ctx, partID)
		})
	if err != nil {
		return nil, err
	}

	views := make([]AlternativeView, 0, len(rows))
	for _, row := range rows {
		views = append(views, OtherSide(row, partID))
	}
	SortAlternatives(views)
	return views, nil
}

// Alternative link mutations invalidate only the acting part's list.
// The same row is visible from the other part too, but that side is not
// invalidated here: its cached list is served under HierarchyTTL, so it
// can stay stale for up to five minutes before the next open refetches
// it. Flip the trade-off by also invalidating
// AlternativesKey(view.OtherPartID) at these three sites.

// LinkAlternative creates a link from partID to another part. A 409
// means the pair is already linked (in either direction).
// Invalidates: alternatives/{part}.
func (s *Store) LinkAlternative(ctx context.Context, partID int, body api.AlternativeCreate) (api.PartAlternative, error) {
	row, err := s.api.CreateAlternative(ctx, partID, body)
	if err != nil {
		return api.PartAlternative{}, err
	}
	s.cache.Invalidate(querycache.AlternativesKey(partID))
	return row, nil
}

// SaveAlternative updates relationship, preference, or notes on a link.
// Invalidates: alternatives/{part}.
func (s *Store) SaveAlternative(ctx context.Context, partID, linkID int, body api.AlternativeUpdate) (api.PartAlternative, error) {
	row, err := s.api.UpdateAlternative(ctx, linkID, body)
	if err != nil {
		return api.PartAlternative{}, err
	}
	s.cache.Invalidate(querycache.AlternativesKey(partID))
	return row, nil
}

// UnlinkAlternative removes a link. Destructive; callers confirm first.
// Invalidates: alternatives/{part}.
func (s *Store) UnlinkAlternative(ctx context.Context, partID, linkID int) error {
	if err := s.api.DeleteAlternative(ctx, linkID); err != nil {
		return err
	}
	s.cache.Invalidate(querycache.AlternativesKey(partID))
	return nil
}

// SearchOtherParts backs the search-and-pick flow when creating a link:
// a paginated name/code search excluding the viewing part itself.
func (s *Store) SearchOtherParts(ctx context.Context, viewingPartID int, query string, page int) (api.Page[api.Part], error) {
	result, err := s.api.SearchParts(ctx, api.PartSearchParams{
		Search:   strings.TrimSpace(query),
		SortBy:   "name",
		SortDir:  "asc",
		Page:     page,
		PageSize: 20,
	})
	if err != nil {
		return api.Page[api.Part]{}, err
	}

	filtered := result.Items[:0]
	for _, p := range result.Items {
		if p.ID != viewingPartID {
			filtered = append(filtered, p)
		}
	}
	result.Items = filtered
	return result, nil
}
