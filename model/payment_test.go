package model_test

import (
	"testing"

	"github.com/ascentware/invoicing/fixtures"
	"github.com/ascentware/invoicing/model"
	"github.com/shopspring/decimal"
)

func TestPaymentStatusFor(t *testing.T) {
	tests := []struct {
		pending string
		want    model.PaymentStatus
	}{
		{"0", model.PaymentStatusCompleted},
		{"-10.50", model.PaymentStatusCompleted},
		{"0.01", model.PaymentStatusNotCompleted},
		{"500", model.PaymentStatusNotCompleted},
	}
	for _, tt := range tests {
		pending := decimal.RequireFromString(tt.pending)
		if got := model.PaymentStatusFor(pending); got != tt.want {
			t.Errorf("PaymentStatusFor(%s) = %q, want %q", tt.pending, got, tt.want)
		}
	}
}

func TestIsValidPaymentMethod(t *testing.T) {
	for _, m := range []model.PaymentMethod{
		model.PaymentMethodCreditCard,
		model.PaymentMethodBankTransfer,
		model.PaymentMethodCash,
	} {
		if !model.IsValidPaymentMethod(m) {
			t.Errorf("%q should be valid", m)
		}
	}
	if model.IsValidPaymentMethod("CHEQUE") {
		t.Error("CHEQUE should be invalid")
	}
}

func TestSaveAndListPayments(t *testing.T) {
	store := fixtures.NewTestStore(t)

	p1 := fixtures.Payment("20240101", 100, model.PaymentMethodCash)
	p2 := fixtures.Payment("20240101", 50, model.PaymentMethodCreditCard)
	p3 := fixtures.Payment("20240199", 75, model.PaymentMethodBankTransfer)
	for _, p := range []*model.Payment{p1, p2, p3} {
		if err := store.SavePayment(p); err != nil {
			t.Fatalf("SavePayment failed: %v", err)
		}
	}

	all, err := store.ListPayments()
	if err != nil {
		t.Fatalf("ListPayments failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("payments count = %d, want 3", len(all))
	}

	forInv, err := store.PaymentsForInvoice("20240101")
	if err != nil {
		t.Fatalf("PaymentsForInvoice failed: %v", err)
	}
	if len(forInv) != 2 {
		t.Errorf("payments for invoice = %d, want 2", len(forInv))
	}

	loaded, err := store.LoadPayment(p3.ID)
	if err != nil {
		t.Fatalf("LoadPayment failed: %v", err)
	}
	if loaded.InvoiceNo != "20240199" {
		t.Errorf("InvoiceNo = %q, want 20240199", loaded.InvoiceNo)
	}
}

func TestBuildReceipt(t *testing.T) {
	p := fixtures.Payment("20240101", 150.25, model.PaymentMethodBankTransfer)
	p.ID = 42

	r := model.BuildReceipt(p, fixtures.TestIssuer)

	if r.ReceiptNo != "RCPT-000042" {
		t.Errorf("ReceiptNo = %q", r.ReceiptNo)
	}
	if r.InvoiceNo != "20240101" {
		t.Errorf("InvoiceNo = %q", r.InvoiceNo)
	}
	// The single payment amount is shown both as received and as the row
	// amount; nothing is aggregated.
	if !r.AmountReceived.Equal(p.Amount) || !r.RowAmount.Equal(p.Amount) {
		t.Errorf("amounts = %s / %s, want both %s", r.AmountReceived, r.RowAmount, p.Amount)
	}
	if r.Issuer.CompanyName != fixtures.TestIssuer.CompanyName {
		t.Error("issuer block must be copied onto the receipt")
	}
}
