package model_test

import (
	"testing"

	"github.com/ascentware/invoicing/model"
	"github.com/shopspring/decimal"
)

func TestLedgerAddAndTotal(t *testing.T) {
	l := model.NewLedger()

	if _, err := l.Add("Consulting", "", "2", "50.00"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if _, err := l.Add("Audit", "annual", "1", "25.50"); err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	want := decimal.RequireFromString("125.50")
	if !l.Total().Equal(want) {
		t.Errorf("Total = %s, want %s", l.Total(), want)
	}
	if got := model.FormatAmount(l.Total(), "USD"); got != "$ 125.50" {
		t.Errorf("formatted total = %q, want %q", got, "$ 125.50")
	}

	items := l.Items()
	if len(items) != 2 {
		t.Fatalf("items count = %d, want 2", len(items))
	}
	if items[0].ID == items[1].ID {
		t.Error("item ids must be distinct")
	}
	if !items[0].Amount.Equal(decimal.RequireFromString("100")) {
		t.Errorf("first amount = %s, want 100", items[0].Amount)
	}
}

func TestLedgerAddValidation(t *testing.T) {
	tests := []struct {
		name      string
		itemName  string
		qty, rate string
		wantField string
	}{
		{"blank name", "", "1", "10", "ItemName"},
		{"zero qty", "X", "0", "10", "Qty"},
		{"negative qty", "X", "-2", "10", "Qty"},
		{"non-numeric qty", "X", "two", "10", "Qty"},
		{"negative rate", "X", "1", "-10", "Rate"},
		{"non-numeric rate", "X", "1", "ten", "Rate"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := model.NewLedger()
			errs, err := l.Add(tt.itemName, "", tt.qty, tt.rate)
			if err == nil {
				t.Fatal("Add should have failed")
			}
			var msg string
			switch tt.wantField {
			case "ItemName":
				msg = errs.ItemName
			case "Qty":
				msg = errs.Qty
			case "Rate":
				msg = errs.Rate
			}
			if msg == "" {
				t.Errorf("expected field error on %s, got %+v", tt.wantField, errs)
			}
			if l.Len() != 0 {
				t.Errorf("failed Add must not append, len = %d", l.Len())
			}
		})
	}
}

func TestLedgerZeroRateIsValid(t *testing.T) {
	l := model.NewLedger()
	if _, err := l.Add("Goodwill discount", "", "1", "0"); err != nil {
		t.Fatalf("zero rate should be accepted: %v", err)
	}
	if !l.Total().IsZero() {
		t.Errorf("Total = %s, want 0", l.Total())
	}
}

func TestLedgerUpdate(t *testing.T) {
	l := model.NewLedger()
	l.Add("Consulting", "", "2", "50")
	originalID := l.Items()[0].ID

	if _, err := l.Update(0, "Consulting", "extended", "3", "60"); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	it := l.Items()[0]
	if it.ID != originalID {
		t.Errorf("Update must preserve id, got %d want %d", it.ID, originalID)
	}
	if !it.Amount.Equal(decimal.RequireFromString("180")) {
		t.Errorf("Amount after update = %s, want 180", it.Amount)
	}

	if _, err := l.Update(5, "X", "", "1", "1"); err == nil {
		t.Error("Update out of range should fail")
	}
}

func TestLedgerTwoStepRemove(t *testing.T) {
	l := model.NewLedger()
	l.Add("A", "", "1", "10")
	l.Add("B", "", "1", "20")

	if err := l.ConfirmRemove(); err == nil {
		t.Error("ConfirmRemove without a mark should fail")
	}

	if err := l.MarkRemove(0); err != nil {
		t.Fatalf("MarkRemove failed: %v", err)
	}
	l.CancelRemove()
	if l.Len() != 2 {
		t.Fatalf("cancel must keep both items, len = %d", l.Len())
	}

	l.MarkRemove(0)
	if err := l.ConfirmRemove(); err != nil {
		t.Fatalf("ConfirmRemove failed: %v", err)
	}
	if l.Len() != 1 {
		t.Fatalf("len after remove = %d, want 1", l.Len())
	}
	if l.Items()[0].ItemName != "B" {
		t.Errorf("remaining item = %q, want B", l.Items()[0].ItemName)
	}
	if l.Items()[0].Position != 1 {
		t.Errorf("positions must be renumbered, got %d", l.Items()[0].Position)
	}
	if !l.Total().Equal(decimal.RequireFromString("20")) {
		t.Errorf("Total = %s, want 20", l.Total())
	}
}

func TestLedgerRemoveOnlyItemBlocksSubmit(t *testing.T) {
	l := model.NewLedger()
	l.Add("Only", "", "1", "10")
	l.MarkRemove(0)
	if err := l.ConfirmRemove(); err != nil {
		t.Fatalf("ConfirmRemove failed: %v", err)
	}
	if l.Len() != 0 {
		t.Fatalf("ledger should be empty, len = %d", l.Len())
	}

	d := model.NewDraft(testNow())
	d.Term = "Net 30"
	d.BillTo = model.Client{CompanyName: "Globex Corporation"}
	d.Ledger = l
	errs := model.ValidateDraft(d)
	if errs.OK() {
		t.Fatal("draft with empty items must be rejected")
	}
	if errs.Items != "Add at least one item" {
		t.Errorf("Items error = %q, want %q", errs.Items, "Add at least one item")
	}
	if errs.Message != "Add at least one item" {
		t.Errorf("aggregate message = %q, want item message", errs.Message)
	}
}
