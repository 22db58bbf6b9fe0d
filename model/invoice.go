package model

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// InvoiceStatus is the user-tracked workflow state. It is independent of
// the derived payment status: an invoice the user marked "Completed" can
// still have money outstanding and vice versa.
type InvoiceStatus string

const (
	InvoiceStatusNew       InvoiceStatus = "New"
	InvoiceStatusCompleted InvoiceStatus = "Completed"
)

// PaymentStatus is derived from the pending amount, never stored.
type PaymentStatus string

const (
	PaymentStatusCompleted    PaymentStatus = "Completed"
	PaymentStatusNotCompleted PaymentStatus = "Not Completed"
)

// PaymentStatusFor derives the payment status label from the pending
// amount. Zero or overpaid counts as completed.
func PaymentStatusFor(pending decimal.Decimal) PaymentStatus {
	if pending.Sign() <= 0 {
		return PaymentStatusCompleted
	}
	return PaymentStatusNotCompleted
}

// Invoice is the persisted invoice document. The bill-to block is a copy
// of the client at submit time, the issuer block a copy of the configured
// letterhead. Deleted is a soft flag: flagged rows stay in the listing
// (dimmed in the UI) and are only excluded from the active count.
type Invoice struct {
	gorm.Model
	Number   string `gorm:"uniqueIndex"`
	Date     time.Time
	Term     string
	DueDate  time.Time
	Status   InvoiceStatus `gorm:"type:text;not null;default:New;index"`
	Currency string

	BillToCompany    string
	BillToAddress    string
	BillToCountry    string
	BillToPinCode    string
	BillToEmail      string
	BillToMobileNo   string
	BillToConsultant string

	CompanyName     string
	CompanyAddress  string
	CompanyMobileNo string
	CompanyEmail    string

	ThanksNote string
	Deleted    bool `gorm:"not null;default:false;index"`

	Items []InvoiceItem
}

// InvoiceItem is one billable row. Amount is derived (Quantity × Rate) and
// recomputed on every write, never trusted from the wire.
type InvoiceItem struct {
	ID          uint `gorm:"primarykey"`
	CreatedAt   time.Time
	InvoiceID   uint `gorm:"index"`
	Position    int
	ItemName    string
	Description string
	Quantity    decimal.Decimal `sql:"type:decimal(20,8);"`
	Rate        decimal.Decimal `sql:"type:decimal(20,8);"`
	Amount      decimal.Decimal `sql:"type:decimal(20,8);"`
}

func (InvoiceItem) TableName() string { return "invoice_items" }

// RecomputeItems renumbers positions and rederives every item amount.
func (inv *Invoice) RecomputeItems() {
	for i := range inv.Items {
		inv.Items[i].Position = i + 1
		inv.Items[i].Amount = inv.Items[i].Quantity.Mul(inv.Items[i].Rate)
	}
}

// Total is the sum of all item amounts.
func (inv *Invoice) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range inv.Items {
		total = total.Add(it.Amount)
	}
	return total
}

// InvoiceAmounts is the per-invoice money summary served by the
// with-amounts endpoint. It is always computed fresh from items and
// payments, never persisted.
type InvoiceAmounts struct {
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PendingAmount decimal.Decimal
	Payments      []Payment
}

// Status derives the payment status for this summary.
func (a InvoiceAmounts) Status() PaymentStatus {
	return PaymentStatusFor(a.PendingAmount)
}

// Editable reports whether the invoice may still be changed: the workflow
// state must not be Completed and money must still be outstanding.
func (inv *Invoice) Editable(pending decimal.Decimal) bool {
	return inv.Status != InvoiceStatusCompleted && pending.Sign() > 0
}
