// Package fixtures provides shared test helpers: an in-memory store,
// seed data and entity builders.
package fixtures

import (
	"testing"
	"time"

	"github.com/ascentware/invoicing/model"
	"github.com/shopspring/decimal"
)

// TestIssuer is the letterhead used in tests.
var TestIssuer = model.Issuer{
	CompanyName: "Ascentware Pvt Ltd",
	Address:     "No 184, Periyar Pathai Chennai, Tamil Nadu",
	MobileNo:    "+1234567890",
	Email:       "hr@ascentware.in",
}

// NewTestStore opens a fresh in-memory SQLite store.
func NewTestStore(t *testing.T) *model.Store {
	t.Helper()
	store, err := model.OpenMemoryStore(&model.Config{
		Mode:   "test",
		Issuer: TestIssuer,
	})
	if err != nil {
		t.Fatalf("cannot open test store: %v", err)
	}
	return store
}

// SeededData bundles the entities SeedTestData created.
type SeededData struct {
	Client  model.Client
	Catalog []model.CatalogItem
}

// SeedTestData seeds the default terms, one client and two catalog items.
func SeedTestData(t *testing.T, store *model.Store) SeededData {
	t.Helper()

	if err := store.SeedDefaultTerms(); err != nil {
		t.Fatalf("cannot seed terms: %v", err)
	}

	client := model.Client{
		CompanyName:    "Globex Corporation",
		ContactName:    "Hank Scorpio",
		Address:        "1 Volcano Lane, Cypress Creek",
		Country:        "United States",
		PinCode:        "90210",
		Email:          "billing@globex.example",
		MobileNo:       "+1 555 0100",
		ConsultantName: "M. Simpson",
	}
	if err := store.SaveClient(&client); err != nil {
		t.Fatalf("cannot seed client: %v", err)
	}

	catalog := []model.CatalogItem{
		{ItemName: "Consulting", Description: "Consulting services"},
		{ItemName: "Payroll processing", Description: "Monthly payroll run"},
	}
	for i := range catalog {
		if err := store.SaveCatalogItem(&catalog[i]); err != nil {
			t.Fatalf("cannot seed catalog item: %v", err)
		}
	}

	return SeededData{Client: client, Catalog: catalog}
}

// Item builds one invoice item with the derived amount filled in.
func Item(position int, name string, qty, rate float64) model.InvoiceItem {
	q := decimal.NewFromFloat(qty)
	r := decimal.NewFromFloat(rate)
	return model.InvoiceItem{
		Position: position,
		ItemName: name,
		Quantity: q,
		Rate:     r,
		Amount:   q.Mul(r),
	}
}

// SampleItems returns the standard three-row item set used across tests.
func SampleItems() []model.InvoiceItem {
	return []model.InvoiceItem{
		Item(1, "Consulting", 8, 120.00),
		Item(2, "Payroll processing", 2, 100.00),
		Item(3, "Audit", 1, 500.00),
	}
}

// InvoiceOption mutates an invoice under construction.
type InvoiceOption func(*model.Invoice)

// WithNumber sets the invoice number.
func WithNumber(number string) InvoiceOption {
	return func(inv *model.Invoice) { inv.Number = number }
}

// WithItems sets the invoice items.
func WithItems(items ...model.InvoiceItem) InvoiceOption {
	return func(inv *model.Invoice) { inv.Items = items }
}

// WithStatus sets the workflow status.
func WithStatus(status model.InvoiceStatus) InvoiceOption {
	return func(inv *model.Invoice) { inv.Status = status }
}

// WithDeleted sets the soft-delete flag.
func WithDeleted(deleted bool) InvoiceOption {
	return func(inv *model.Invoice) { inv.Deleted = deleted }
}

// Invoice builds a plausible invoice; options override the defaults.
func Invoice(opts ...InvoiceOption) *model.Invoice {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	inv := &model.Invoice{
		Number:   "20240101",
		Date:     date,
		Term:     "Net 30",
		DueDate:  model.DueDate(date, "Net 30"),
		Status:   model.InvoiceStatusNew,
		Currency: "USD",

		BillToCompany:  "Globex Corporation",
		BillToAddress:  "1 Volcano Lane, Cypress Creek",
		BillToCountry:  "United States",
		BillToPinCode:  "90210",
		BillToEmail:    "billing@globex.example",
		BillToMobileNo: "+1 555 0100",

		CompanyName:     TestIssuer.CompanyName,
		CompanyAddress:  TestIssuer.Address,
		CompanyMobileNo: TestIssuer.MobileNo,
		CompanyEmail:    TestIssuer.Email,

		ThanksNote: "Thank you for your business!",
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// Payment builds one payment against the given invoice number.
func Payment(invoiceNo string, amount float64, method model.PaymentMethod) *model.Payment {
	return &model.Payment{
		InvoiceNo:   invoiceNo,
		Amount:      decimal.NewFromFloat(amount),
		Date:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Method:      method,
		ReferenceNo: "REF-0001",
	}
}
