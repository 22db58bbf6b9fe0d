package model_test

import (
	"testing"
	"time"

	"github.com/ascentware/invoicing/fixtures"
	"github.com/ascentware/invoicing/model"
)

func TestTermDays(t *testing.T) {
	tests := []struct {
		term string
		want int
	}{
		{"Net 30", 30},
		{"Net 45", 45},
		{"Net 90", 90},
		{"Net", 0},
		{"Net abc", 0},
		{"", 0},
		{"Net -5", 0},
	}
	for _, tt := range tests {
		if got := model.TermDays(tt.term); got != tt.want {
			t.Errorf("TermDays(%q) = %d, want %d", tt.term, got, tt.want)
		}
	}
}

func TestDueDate(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := model.DueDate(date, "Net 45")
	want := time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DueDate(2024-01-01, Net 45) = %s, want %s", got.Format("2006-01-02"), want.Format("2006-01-02"))
	}
}

func TestDueDateISO(t *testing.T) {
	tests := []struct {
		name string
		date string
		term string
		want string
	}{
		{"net 45 crosses month", "2024-01-01", "Net 45", "2024-02-15"},
		{"net 30", "2024-03-01", "Net 30", "2024-03-31"},
		{"unparseable term counts as zero days", "2024-01-01", "Net soon", "2024-01-01"},
		{"empty term yields empty", "2024-01-01", "", ""},
		{"empty date yields empty", "", "Net 30", ""},
		{"bad date yields empty", "01.01.2024", "Net 30", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := model.DueDateISO(tt.date, tt.term); got != tt.want {
				t.Errorf("DueDateISO(%q, %q) = %q, want %q", tt.date, tt.term, got, tt.want)
			}
		})
	}
}

func TestSeedDefaultTerms(t *testing.T) {
	store := fixtures.NewTestStore(t)
	if err := store.SeedDefaultTerms(); err != nil {
		t.Fatalf("SeedDefaultTerms failed: %v", err)
	}
	// Seeding twice must not duplicate.
	if err := store.SeedDefaultTerms(); err != nil {
		t.Fatalf("second SeedDefaultTerms failed: %v", err)
	}
	terms, err := store.ListTerms()
	if err != nil {
		t.Fatalf("ListTerms failed: %v", err)
	}
	if len(terms) != 3 {
		t.Fatalf("terms count = %d, want 3", len(terms))
	}
	if !store.IsKnownTerm("Net 45") {
		t.Error("Net 45 should be a known term")
	}
	if store.IsKnownTerm("Net 7") {
		t.Error("Net 7 should not be a known term")
	}
}
