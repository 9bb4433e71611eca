package main

import (
	"testing"

	"github.com/heladerias/audit-vision/internal/catalog"
)

func TestMatchItem(t *testing.T) {
	cases := []struct {
		filename string
		want     string
		ok       bool
	}{
		{"B4 mesas.jpg", "B.4", true},
		{"a12-stock.png", "A.12", true},
		{"E1.jpeg", "E.1", true},
		{"IMG_2041.jpg", "", false},
		{"4B.jpg", "", false},
	}
	for _, tc := range cases {
		got, ok := matchItem(tc.filename)
		if ok != tc.ok || got != tc.want {
			t.Errorf("matchItem(%q) = %q, %v; want %q, %v", tc.filename, got, ok, tc.want, tc.ok)
		}
	}
}

// The organized tree must use the same dotless item folders as the ZIP built
// by the API, so both outputs have a single layout.
func TestPlacementKeyMatchesArchiveLayout(t *testing.T) {
	criterion, ok := catalog.ByID("A.1")
	if !ok {
		t.Fatal("catalog has no A.1")
	}
	if got := placementKey(criterion, 1); got != "A_Infraestructura/A1/A1_001.jpg" {
		t.Fatalf("placementKey = %q, want A_Infraestructura/A1/A1_001.jpg", got)
	}
}
