package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marshallshelly/voltdesk/pkg/api"
	"github.com/marshallshelly/voltdesk/pkg/querycache"
)

// fakeBackend is an httptest server speaking the backend's response
// envelope, counting hits per method+path.
type fakeBackend struct {
	t   *testing.T
	mux *http.ServeMux
	srv *httptest.Server

	mu   sync.Mutex
	hits map[string]int
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{t: t, mux: http.NewServeMux(), hits: make(map[string]int)}
	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.hits[r.Method+" "+r.URL.Path]++
		b.mu.Unlock()
		b.mux.ServeHTTP(w, r)
	}))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *fakeBackend) hitCount(methodPath string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.hits[methodPath]
}

func (b *fakeBackend) respond(pattern string, data any) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, http.StatusOK, data)
	})
}

func (b *fakeBackend) reject(pattern string, status int, detail string) {
	b.mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
	})
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": data})
}

func newTestStore(t *testing.T, b *fakeBackend) *Store {
	client := api.New(b.srv.URL, "test-token")
	return NewStore(client, querycache.New())
}

func TestCategoriesAreCached(t *testing.T) {
	b := newFakeBackend(t)
	b.respond("GET /parts/categories", []api.Category{{ID: 1, Name: "Devices", IsActive: true}})
	s := newTestStore(t, b)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		cats, err := s.Categories(ctx)
		require.NoError(t, err)
		require.Len(t, cats, 1)
	}
	assert.Equal(t, 1, b.hitCount("GET /parts/categories"), "repeat reads must come from cache")
}

func TestSetCategoryActiveInvalidatesList(t *testing.T) {
	b := newFakeBackend(t)
	b.respond("GET /parts/categories", []api.Category{{ID: 1, Name: "Devices", IsActive: true}})

	var gotBody map[string]any
	b.mux.HandleFunc("PUT /parts/categories/1/active", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		writeEnvelope(w, http.StatusOK, api.Category{ID: 1, Name: "Devices", IsActive: false})
	})

	s := newTestStore(t, b)
	ctx := context.Background()

	_, err := s.Categories(ctx)
	require.NoError(t, err)

	cat, err := s.SetCategoryActive(ctx, 1, false)
	require.NoError(t, err)
	assert.False(t, cat.IsActive)

	// Only the flag crosses the wire; the rest of the form is not sent.
	assert.Equal(t, map[string]any{"is_active": false}, gotBody)

	_, err = s.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, b.hitCount("GET /parts/categories"), "toggle must force a refetch")
}

func TestBrandChildrenMergePartsAndColors(t *testing.T) {
	white, black := "White", "Black"
	whiteHex, blackHex := "#FFFFFF", "#000000"
	colorWhite, colorBlack := 30, 31

	b := newFakeBackend(t)
	b.respond("GET /parts/types/100/colors", []api.TypeColorLink{
		{ID: 1, TypeID: 100, ColorID: colorWhite, ColorName: &white, HexCode: &whiteHex},
		{ID: 2, TypeID: 100, ColorID: colorBlack, ColorName: &black, HexCode: &blackHex},
	})
	// Only White has a part; Black is a quick-create target.
	b.respond("GET /parts/types/100/brands/7/parts", []api.TypeBrandPart{
		{ID: 500, Name: "Switch 15A White", ColorID: &colorWhite, HasPendingPartNumber: true},
	})

	s := newTestStore(t, b)
	brand := BrandNode(1, 10, 100, 7)

	children, err := s.ChildrenOf(context.Background(), brand)
	require.NoError(t, err)
	require.Len(t, children, 2)

	withPart := children[0]
	assert.Equal(t, 500, withPart.ID.PartID)
	assert.Equal(t, "Switch 15A White", withPart.Badge)
	assert.True(t, withPart.Pending)
	assert.Equal(t, "#FFFFFF", withPart.Hex)

	empty := children[1]
	assert.Equal(t, 0, empty.ID.PartID, "unfilled color renders with no part")
	assert.Equal(t, "no part", empty.Badge)
	assert.Equal(t, LevelColor, empty.ID.Level)
	assert.Equal(t, 7, empty.ID.BrandID, "leaf keeps the full coordinate for quick-create")
}

func TestQuickCreateRequiresLinkedColor(t *testing.T) {
	white := "White"
	b := newFakeBackend(t)
	b.respond("GET /parts/types/100/colors", []api.TypeColorLink{
		{ID: 1, TypeID: 100, ColorID: 30, ColorName: &white},
	})

	s := newTestStore(t, b)
	leaf := ColorLeaf(BrandNode(1, 10, 100, GeneralBrand), 99, 0)

	_, err := s.QuickCreate(context.Background(), leaf)
	assert.ErrorIs(t, err, ErrColorNotLinked)
	assert.Equal(t, 0, b.hitCount("POST /parts/types/100/quick-create"),
		"quick-create must not reach the backend for an unlinked color")
}

func TestQuickCreateConflictPassesDetailThrough(t *testing.T) {
	white := "White"
	const detail = "Part already exists for this type, brand, and color combination"

	b := newFakeBackend(t)
	b.respond("GET /parts/types/100/colors", []api.TypeColorLink{
		{ID: 1, TypeID: 100, ColorID: 30, ColorName: &white},
	})
	b.reject("POST /parts/types/100/quick-create", http.StatusConflict, detail)

	s := newTestStore(t, b)
	leaf := ColorLeaf(BrandNode(1, 10, 100, GeneralBrand), 30, 0)

	_, err := s.QuickCreate(context.Background(), leaf)
	require.Error(t, err)

	var apiErr *api.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, detail, apiErr.Error(), "backend detail must surface verbatim")
	assert.True(t, api.IsConflict(err))
}

func TestQuickCreateInvalidatesPartRows(t *testing.T) {
	white := "White"
	b := newFakeBackend(t)
	b.respond("GET /parts/types/100/colors", []api.TypeColorLink{
		{ID: 1, TypeID: 100, ColorID: 30, ColorName: &white},
	})
	b.respond("GET /parts/types/100/brands/0/parts", []api.TypeBrandPart{})
	b.respond("POST /parts/types/100/quick-create", api.Part{ID: 900, Name: "Plate 1G White"})
	b.respond("GET /parts/types/100/brands", []api.TypeBrandLink{})
	b.respond("GET /parts/styles/10/types", []api.Type{})

	s := newTestStore(t, b)
	ctx := context.Background()

	_, err := s.TypeBrandParts(ctx, 100, GeneralBrand)
	require.NoError(t, err)
	require.Equal(t, 1, b.hitCount("GET /parts/types/100/brands/0/parts"))

	leaf := ColorLeaf(BrandNode(1, 10, 100, GeneralBrand), 30, 0)
	part, err := s.QuickCreate(ctx, leaf)
	require.NoError(t, err)
	assert.Equal(t, 900, part.ID)

	_, err = s.TypeBrandParts(ctx, 100, GeneralBrand)
	require.NoError(t, err)
	assert.Equal(t, 2, b.hitCount("GET /parts/types/100/brands/0/parts"),
		"part rows for the coordinate must refetch after quick-create")
}

func TestUnlinkColorConflictLeavesCacheIntact(t *testing.T) {
	white := "White"
	b := newFakeBackend(t)
	b.respond("GET /parts/types/100/colors", []api.TypeColorLink{
		{ID: 1, TypeID: 100, ColorID: 30, ColorName: &white},
	})
	b.reject("DELETE /parts/types/100/colors/30", http.StatusConflict,
		"Cannot remove color: a part exists for this type and color")

	s := newTestStore(t, b)
	ctx := context.Background()

	_, err := s.TypeColors(ctx, 100)
	require.NoError(t, err)

	err = s.UnlinkColor(ctx, 10, 100, 30)
	require.Error(t, err)
	assert.True(t, api.IsConflict(err))

	// The rejected unlink must not drop cached state.
	links, err := s.TypeColors(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, links, 1)
	assert.Equal(t, 1, b.hitCount("GET /parts/types/100/colors"))
}

func TestStyleLookupPaths(t *testing.T) {
	b := newFakeBackend(t)
	b.respond("GET /parts/categories", []api.Category{{ID: 1, Name: "Devices"}, {ID: 2, Name: "Wire"}})
	b.respond("GET /parts/categories/1/styles", []api.Style{{ID: 10, CategoryID: 1, Name: "Decora"}})
	b.respond("GET /parts/categories/2/styles", []api.Style{{ID: 20, CategoryID: 2, Name: "THHN"}})

	s := newTestStore(t, b)
	ctx := context.Background()

	t.Run("direct path with known parent", func(t *testing.T) {
		st, err := s.StyleByID(ctx, 1, 10)
		require.NoError(t, err)
		assert.Equal(t, "Decora", st.Name)
		assert.Equal(t, 0, b.hitCount("GET /parts/categories/2/styles"),
			"the direct path must not touch other categories")
	})

	t.Run("scan without parent walks the hierarchy", func(t *testing.T) {
		st, err := s.ScanForStyle(ctx, 20)
		require.NoError(t, err)
		assert.Equal(t, "THHN", st.Name)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := s.ScanForStyle(ctx, 999)
		assert.True(t, errors.Is(err, api.ErrNotFound))
	})
}
