package catalog

import (
	"testing"

	"github.com/marshallshelly/voltdesk/pkg/api"
)

func strPtr(s string) *string { return &s }

func TestOtherSide(t *testing.T) {
	notes := "check amperage rating"
	row := api.PartAlternative{
		ID:                   41,
		PartID:               100,
		AlternativePartID:    200,
		Relationship:         api.RelationshipSubstitute,
		Preference:           1,
		Notes:                &notes,
		PartName:             "Outlet 15A White",
		PartCode:             strPtr("OUT-15-WH"),
		AlternativeName:      "Outlet 15A White HD",
		AlternativeCode:      strPtr("OUT-15-WH-HD"),
		AlternativeBrandName: strPtr("Leviton"),
	}

	t.Run("viewing from part_id side", func(t *testing.T) {
		v := OtherSide(row, 100)
		if v.OtherPartID != 200 {
			t.Fatalf("OtherPartID = %d, want 200", v.OtherPartID)
		}
		if v.OtherName != "Outlet 15A White HD" {
			t.Errorf("OtherName = %q", v.OtherName)
		}
		if v.OtherCode != "OUT-15-WH-HD" {
			t.Errorf("OtherCode = %q", v.OtherCode)
		}
		if v.OtherBrandName != "Leviton" {
			t.Errorf("OtherBrandName = %q", v.OtherBrandName)
		}
		if !v.Preferred {
			t.Error("preference 1 should resolve to Preferred")
		}
		if v.Notes != notes {
			t.Errorf("Notes = %q", v.Notes)
		}
	})

	t.Run("viewing from alternative_part_id side", func(t *testing.T) {
		v := OtherSide(row, 200)
		if v.OtherPartID != 100 {
			t.Fatalf("OtherPartID = %d, want 100 (the row is undirected)", v.OtherPartID)
		}
		if v.OtherName != "Outlet 15A White" {
			t.Errorf("OtherName = %q, must not show the viewer its own part", v.OtherName)
		}
		if v.OtherCode != "OUT-15-WH" {
			t.Errorf("OtherCode = %q", v.OtherCode)
		}
		if v.LinkID != 41 || v.Relationship != api.RelationshipSubstitute {
			t.Errorf("link fields not carried over: %+v", v)
		}
	})
}

func TestSortAlternatives(t *testing.T) {
	views := []AlternativeView{
		{LinkID: 1, OtherName: "Beta", Preferred: true},
		{LinkID: 2, OtherName: "Alpha", Preferred: false},
		{LinkID: 3, OtherName: "Delta", Preferred: true},
		{LinkID: 4, OtherName: "Charlie", Preferred: false},
	}

	SortAlternatives(views)

	want := []string{"Beta", "Delta", "Alpha", "Charlie"}
	for i, name := range want {
		if views[i].OtherName != name {
			t.Fatalf("position %d = %q, want %q (order: %v)", i, views[i].OtherName, name, names(views))
		}
	}
}

func TestSortAlternativesCaseInsensitive(t *testing.T) {
	views := []AlternativeView{
		{LinkID: 1, OtherName: "delta"},
		{LinkID: 2, OtherName: "Alpha"},
		{LinkID: 3, OtherName: "charlie"},
	}

	SortAlternatives(views)

	want := []string{"Alpha", "charlie", "delta"}
	for i, name := range want {
		if views[i].OtherName != name {
			t.Fatalf("position %d = %q, want %q", i, views[i].OtherName, name)
		}
	}
}

func TestSortAlternativesTieBreak(t *testing.T) {
	views := []AlternativeView{
		{LinkID: 9, OtherName: "Same"},
		{LinkID: 3, OtherName: "Same"},
		{LinkID: 6, OtherName: "Same"},
	}

	SortAlternatives(views)

	for i, want := range []int{3, 6, 9} {
		if views[i].LinkID != want {
			t.Fatalf("position %d link id = %d, want %d", i, views[i].LinkID, want)
		}
	}
}

func names(views []AlternativeView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.OtherName
	}
	return out
}
