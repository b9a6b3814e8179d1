package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, "test-token"), srv
}

func TestEnvelopeUnwrapping(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("Authorization = %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1,"name":"Devices","is_active":true,"style_count":3,"part_count":120}]}`))
	})
	defer srv.Close()

	cats, err := c.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(cats) != 1 || cats[0].Name != "Devices" || cats[0].PartCount != 120 {
		t.Errorf("unexpected decode: %+v", cats)
	}
}

func TestErrorDetailPassesThroughVerbatim(t *testing.T) {
	const detail = "Cannot delete category: 4 styles still reference it"

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
	})
	defer srv.Close()

	err := c.DeleteCategory(context.Background(), 1)
	if err == nil {
		t.Fatal("expected an error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type %T, want *APIError", err)
	}
	if apiErr.Status != http.StatusConflict {
		t.Errorf("status = %d", apiErr.Status)
	}
	if apiErr.Error() != detail {
		t.Errorf("message rewritten: %q", apiErr.Error())
	}
	if !IsConflict(err) {
		t.Error("409 should classify as conflict")
	}
}

func TestErrorWithoutDetailGetsGenericMessage(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream timeout"))
	})
	defer srv.Close()

	_, err := c.Categories(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error type %T", err)
	}
	if !strings.Contains(apiErr.Error(), "502") {
		t.Errorf("generic message should carry the status: %q", apiErr.Error())
	}
}

func TestMissingTokenFailsBeforeTheWire(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()

	c := New(srv.URL, "")
	_, err := c.Categories(context.Background())
	if !errors.Is(err, ErrNoToken) {
		t.Fatalf("err = %v, want ErrNoToken", err)
	}
	if hit {
		t.Error("no request should be sent without a token")
	}
}

func TestPayloadValidationRejectsBeforeTheWire(t *testing.T) {
	hit := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hit = true
	}))
	defer srv.Close()
	c := New(srv.URL, "test-token")

	tests := []struct {
		name string
		call func() error
	}{
		{"empty category name", func() error {
			_, err := c.CreateCategory(context.Background(), CategoryCreate{Name: ""})
			return err
		}},
		{"bad hex code", func() error {
			hex := "not-a-color"
			_, err := c.CreateColor(context.Background(), ColorCreate{Name: "White", HexCode: &hex})
			return err
		}},
		{"unknown relationship", func() error {
			_, err := c.CreateAlternative(context.Background(), 1, AlternativeCreate{
				AlternativePartID: 2,
				Relationship:      "sideways",
			})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
	if hit {
		t.Error("invalid payloads must never reach the backend")
	}
}

func TestBrandSegment(t *testing.T) {
	seven := 7
	if got := brandSegment(nil); got != "0" {
		t.Errorf("General slot segment = %q, want \"0\"", got)
	}
	if got := brandSegment(&seven); got != "7" {
		t.Errorf("segment = %q, want \"7\"", got)
	}
}

func TestTypeBrandPartsPathForGeneral(t *testing.T) {
	var gotPath string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	})
	defer srv.Close()

	if _, err := c.TypeBrandParts(context.Background(), 42, nil); err != nil {
		t.Fatalf("TypeBrandParts failed: %v", err)
	}
	if gotPath != "/parts/types/42/brands/0/parts" {
		t.Errorf("path = %q", gotPath)
	}
}

func TestSearchPartsQuery(t *testing.T) {
	var gotQuery map[string][]string
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"items":[],"total":0,"page":1,"page_size":20,"total_pages":0}}`))
	})
	defer srv.Close()

	_, err := c.SearchParts(context.Background(), PartSearchParams{
		Search:   "outlet",
		SortBy:   "name",
		SortDir:  "asc",
		Page:     2,
		PageSize: 20,
	})
	if err != nil {
		t.Fatalf("SearchParts failed: %v", err)
	}

	want := map[string]string{
		"search":    "outlet",
		"sort_by":   "name",
		"sort_dir":  "asc",
		"page":      "2",
		"page_size": "20",
	}
	for k, v := range want {
		if got := gotQuery[k]; len(got) != 1 || got[0] != v {
			t.Errorf("query %s = %v, want %q", k, got, v)
		}
	}
}

func TestBaseURLTrailingSlash(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "test-token")
	if _, err := c.Colors(context.Background()); err != nil {
		t.Fatalf("Colors failed: %v", err)
	}
	if gotPath != "/parts/colors" {
		t.Errorf("path = %q, double slash not trimmed", gotPath)
	}
}
