package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/ascentware/invoicing/fixtures"
	"github.com/ascentware/invoicing/model"
)

func TestAPIPaymentCreate(t *testing.T) {
	e, store, _ := setupTestAPI(t)

	inv := fixtures.Invoice(fixtures.WithItems(fixtures.Item(1, "Consulting", 1, 500)))
	if err := store.SaveInvoice(inv); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}

	body := fmt.Sprintf(`{
		"invoiceNo": %q,
		"paymentAmount": "200.00",
		"paymentDate": "2024-02-01",
		"paymentMethod": "BANK_TRANSFER",
		"referenceNo": "TXN-81"
	}`, inv.Number)
	rec := doJSON(e, http.MethodPost, "/api/payment", body)
	mustStatus(t, rec, http.StatusCreated)

	var result APIPayment
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	if result.ID == 0 {
		t.Error("id should be assigned")
	}
	if result.PaymentAmount != "200" {
		t.Errorf("paymentAmount = %q, want 200", result.PaymentAmount)
	}

	payments, err := store.PaymentsForInvoice(inv.Number)
	if err != nil {
		t.Fatalf("load payments: %v", err)
	}
	if len(payments) != 1 {
		t.Errorf("payments count = %d, want 1", len(payments))
	}
}

func TestAPIPaymentCreateValidation(t *testing.T) {
	e, _, _ := setupTestAPI(t)

	body := `{"invoiceNo":"","paymentAmount":"-5","paymentDate":"soon","paymentMethod":"CHEQUE"}`
	rec := doJSON(e, http.MethodPost, "/api/payment", body)
	mustStatus(t, rec, http.StatusBadRequest)

	var result APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	for _, key := range []string{"invoiceNo", "paymentAmount", "paymentDate", "paymentMethod"} {
		if result.Fields[key] == "" {
			t.Errorf("expected a field error under %q, got %v", key, result.Fields)
		}
	}
}

func TestAPIPaymentCreateUnknownInvoice(t *testing.T) {
	e, _, _ := setupTestAPI(t)

	body := `{"invoiceNo":"20991201","paymentAmount":"10","paymentDate":"2024-02-01","paymentMethod":"CASH"}`
	rec := doJSON(e, http.MethodPost, "/api/payment", body)
	mustStatus(t, rec, http.StatusNotFound)
}

func TestAPIPaymentListByInvoice(t *testing.T) {
	e, store, _ := setupTestAPI(t)

	invA := fixtures.Invoice(fixtures.WithNumber("20240101"))
	invB := fixtures.Invoice(fixtures.WithNumber("20240102"))
	for _, inv := range []*model.Invoice{invA, invB} {
		if err := store.SaveInvoice(inv); err != nil {
			t.Fatalf("seed invoice: %v", err)
		}
	}
	for _, p := range []*model.Payment{
		fixtures.Payment("20240101", 10, model.PaymentMethodCash),
		fixtures.Payment("20240101", 20, model.PaymentMethodCash),
		fixtures.Payment("20240102", 30, model.PaymentMethodCash),
	} {
		if err := store.SavePayment(p); err != nil {
			t.Fatalf("seed payment: %v", err)
		}
	}

	rec := doJSON(e, http.MethodGet, "/api/payment?invoiceNo=20240101", "")
	mustStatus(t, rec, http.StatusOK)

	var result []APIPayment
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("payments count = %d, want 2", len(result))
	}
	for _, p := range result {
		if p.InvoiceNo != "20240101" {
			t.Errorf("payment %d belongs to %s", p.ID, p.InvoiceNo)
		}
	}

	rec = doJSON(e, http.MethodGet, "/api/payment", "")
	mustStatus(t, rec, http.StatusOK)
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	if len(result) != 3 {
		t.Errorf("payments count = %d, want 3", len(result))
	}
}

func TestAPIPaymentReceipt(t *testing.T) {
	e, store, _ := setupTestAPI(t)

	inv := fixtures.Invoice()
	if err := store.SaveInvoice(inv); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	payment := fixtures.Payment(inv.Number, 150, model.PaymentMethodCreditCard)
	if err := store.SavePayment(payment); err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	rec := doJSON(e, http.MethodGet, fmt.Sprintf("/api/payment/%d/receipt", payment.ID), "")
	mustStatus(t, rec, http.StatusOK)

	var result APIReceipt
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	if want := fmt.Sprintf("RCPT-%06d", payment.ID); result.ReceiptNo != want {
		t.Errorf("receiptNo = %q, want %q", result.ReceiptNo, want)
	}
	if result.CompanyName != fixtures.TestIssuer.CompanyName {
		t.Errorf("companyName = %q, want the issuer", result.CompanyName)
	}
	if result.AmountReceived != result.PaymentAmount {
		t.Errorf("amountReceived %q != paymentAmount %q for a single-row receipt",
			result.AmountReceived, result.PaymentAmount)
	}
}

func TestAPIPaymentReceiptPDF(t *testing.T) {
	e, store, _ := setupTestAPI(t)

	inv := fixtures.Invoice()
	if err := store.SaveInvoice(inv); err != nil {
		t.Fatalf("seed invoice: %v", err)
	}
	payment := fixtures.Payment(inv.Number, 150, model.PaymentMethodCash)
	if err := store.SavePayment(payment); err != nil {
		t.Fatalf("seed payment: %v", err)
	}

	rec := doJSON(e, http.MethodGet, fmt.Sprintf("/api/payment/%d/receipt?format=pdf", payment.ID), "")
	mustStatus(t, rec, http.StatusOK)
	if ct := rec.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Content-Type = %q, want application/pdf", ct)
	}
}
