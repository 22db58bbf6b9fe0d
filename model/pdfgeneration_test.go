package model_test

import (
	"bytes"
	"testing"

	"github.com/ascentware/invoicing/fixtures"
	"github.com/ascentware/invoicing/model"
	"github.com/shopspring/decimal"
)

func TestRenderInvoicePDF(t *testing.T) {
	inv := fixtures.Invoice(fixtures.WithItems(fixtures.SampleItems()...))
	amounts := model.InvoiceAmounts{
		TotalAmount:   inv.Total(),
		PaidAmount:    decimal.Zero,
		PendingAmount: inv.Total(),
	}

	blob, err := model.RenderInvoicePDF(inv, amounts)
	if err != nil {
		t.Fatalf("RenderInvoicePDF failed: %v", err)
	}
	if len(blob) == 0 {
		t.Fatal("pdf blob is empty")
	}
	if !bytes.HasPrefix(blob, []byte("%PDF")) {
		t.Errorf("blob does not start with %%PDF: %q", blob[:8])
	}
}

func TestRenderReceiptPDF(t *testing.T) {
	p := fixtures.Payment("20240101", 150.25, model.PaymentMethodCash)
	p.ID = 7
	r := model.BuildReceipt(p, fixtures.TestIssuer)

	blob, err := model.RenderReceiptPDF(r, "USD")
	if err != nil {
		t.Fatalf("RenderReceiptPDF failed: %v", err)
	}
	if !bytes.HasPrefix(blob, []byte("%PDF")) {
		t.Error("blob does not start with %PDF")
	}

	// Unknown currency still renders, just without a symbol.
	if _, err := model.RenderReceiptPDF(r, ""); err != nil {
		t.Errorf("RenderReceiptPDF with empty currency failed: %v", err)
	}
}
