package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGetCachesResult(t *testing.T) {
	c := New()
	calls := 0

	fetch := func(ctx context.Context) ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Get(context.Background(), c, StylesKey(7), HierarchyTTL, fetch)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 items, got %d", len(got))
		}
	}

	if calls != 1 {
		t.Errorf("expected 1 fetch, got %d", calls)
	}
}

func TestGetDoesNotCacheErrors(t *testing.T) {
	c := New()
	calls := 0
	boom := errors.New("backend down")

	fetch := func(ctx context.Context) (int, error) {
		calls++
		if calls == 1 {
			return 0, boom
		}
		return 42, nil
	}

	if _, err := Get(context.Background(), c, CategoriesKey(), HierarchyTTL, fetch); !errors.Is(err, boom) {
		t.Fatalf("expected fetch error, got %v", err)
	}

	got, err := Get(context.Background(), c, CategoriesKey(), HierarchyTTL, fetch)
	if err != nil {
		t.Fatalf("second Get failed: %v", err)
	}
	if got != 42 {
		t.Errorf("expected 42, got %d", got)
	}
	if calls != 2 {
		t.Errorf("expected 2 fetches, got %d", calls)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	c := New()
	calls := 0

	fetch := func(ctx context.Context) (string, error) {
		calls++
		return "v", nil
	}

	key := TypeBrandPartsKey(5, nil) // type 5, General slot

	if _, err := Get(context.Background(), c, key, HierarchyTTL, fetch); err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	c.Invalidate(key)
	if _, err := Get(context.Background(), c, key, HierarchyTTL, fetch); err != nil {
		t.Fatalf("Get after invalidate failed: %v", err)
	}

	if calls != 2 {
		t.Errorf("expected invalidated key to hit the network, got %d fetches", calls)
	}
}

func TestInvalidatePrefix(t *testing.T) {
	c := New()
	count := func(ctx context.Context) (int, error) { return 1, nil }

	keys := []Key{
		TypeBrandPartsKey(5, nil),
		TypeBrandPartsKey(5, intPtr(3)),
		TypeBrandPartsKey(6, nil),
		TypeBrandsKey(5),
	}
	for _, k := range keys {
		if _, err := Get(context.Background(), c, k, HierarchyTTL, count); err != nil {
			t.Fatalf("Get(%s) failed: %v", k, err)
		}
	}

	c.InvalidatePrefix(TypeBrandPartsPrefix(5))

	if c.Len() != 2 {
		t.Errorf("expected 2 surviving entries, got %d", c.Len())
	}
}

func TestStalenessWindow(t *testing.T) {
	now := time.Now()
	c := newWithClock(func() time.Time { return now })
	calls := 0
	fetch := func(ctx context.Context) (int, error) {
		calls++
		return calls, nil
	}

	t.Run("hierarchy entry expires", func(t *testing.T) {
		if _, err := Get(context.Background(), c, TypesKey(1), HierarchyTTL, fetch); err != nil {
			t.Fatalf("Get failed: %v", err)
		}

		now = now.Add(HierarchyTTL - time.Second)
		if _, err := Get(context.Background(), c, TypesKey(1), HierarchyTTL, fetch); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if calls != 1 {
			t.Fatalf("entry expired early: %d fetches", calls)
		}

		now = now.Add(2 * time.Second)
		if _, err := Get(context.Background(), c, TypesKey(1), HierarchyTTL, fetch); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if calls != 2 {
			t.Errorf("expected stale entry to refetch, got %d fetches", calls)
		}
	})

	t.Run("session entry never expires", func(t *testing.T) {
		start := calls
		if _, err := Get(context.Background(), c, BrandsKey(), SessionTTL, fetch); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		now = now.Add(24 * time.Hour)
		if _, err := Get(context.Background(), c, BrandsKey(), SessionTTL, fetch); err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if calls != start+1 {
			t.Errorf("session entry refetched: %d extra fetches", calls-start)
		}
	})
}

func TestConcurrentReadsShareOneFetch(t *testing.T) {
	c := New()
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "shared", nil
	}

	const readers = 8
	var wg sync.WaitGroup
	results := make([]string, readers)
	errs := make([]error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Get(context.Background(), c, AlternativesKey(9), HierarchyTTL, fetch)
		}(i)
	}

	// Give every reader time to join the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i := 0; i < readers; i++ {
		if errs[i] != nil {
			t.Fatalf("reader %d failed: %v", i, errs[i])
		}
		if results[i] != "shared" {
			t.Errorf("reader %d got %q", i, results[i])
		}
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("expected one shared fetch, got %d", got)
	}
}

func TestKeyBuilders(t *testing.T) {
	tests := []struct {
		name string
		key  Key
		want string
	}{
		{"categories", CategoriesKey(), "categories"},
		{"styles", StylesKey(3), "styles/3"},
		{"types", TypesKey(12), "types/12"},
		{"type colors", TypeColorsKey(4), "type-colors/4"},
		{"type brands", TypeBrandsKey(4), "type-brands/4"},
		{"type brand parts", TypeBrandPartsKey(5, intPtr(2)), "type-brand-parts/5/2"},
		{"general slot keyed as zero", TypeBrandPartsKey(5, nil), "type-brand-parts/5/0"},
		{"part", PartKey(88), "part/88"},
		{"alternatives", AlternativesKey(88), "alternatives/88"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if string(tt.key) != tt.want {
				t.Errorf("got %q, want %q", tt.key, tt.want)
			}
		})
	}
}

func TestPrefixMatches(t *testing.T) {
	if !TypeBrandPartsPrefix(5).Matches(TypeBrandPartsKey(5, nil)) {
		t.Error("prefix should match its own type's keys")
	}
	if TypeBrandPartsPrefix(5).Matches(TypeBrandPartsKey(55, nil)) {
		t.Error("prefix must not match a different type id")
	}
	if !StylesPrefix().Matches(StylesKey(1)) {
		t.Error("styles prefix should match style keys")
	}
}

func intPtr(v int) *int { return &v }
