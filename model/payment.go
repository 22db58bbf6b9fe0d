package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentMethod enumerates how a payment was made.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "CREDIT_CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodCash         PaymentMethod = "CASH"
)

// IsValidPaymentMethod reports whether m is one of the known methods.
func IsValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodCash:
		return true
	}
	return false
}

// Payment records money received against an invoice. InvoiceNo is a
// reference by value, not an enforced foreign key, and many payments may
// point at one invoice. Over-payment is allowed; pending amounts are
// derived at read time, never here.
type Payment struct {
	gorm.Model
	InvoiceNo   string          `gorm:"index"`
	Amount      decimal.Decimal `sql:"type:decimal(20,8);"`
	Date        time.Time
	Method      PaymentMethod `gorm:"type:text"`
	ReferenceNo string
}

// SavePayment stores a new payment.
func (s *Store) SavePayment(p *Payment) error {
	return s.db.Save(p).Error
}

// LoadPayment returns one payment by id.
func (s *Store) LoadPayment(id any) (*Payment, error) {
	var p Payment
	if err := s.db.First(&p, id).Error; err != nil {
		return nil, fmt.Errorf("load payment %v: %w", id, err)
	}
	return &p, nil
}

// ListPayments returns all payments, newest first.
func (s *Store) ListPayments() ([]Payment, error) {
	var ps []Payment
	err := s.db.Order("date desc, id desc").Find(&ps).Error
	return ps, err
}

// PaymentsForInvoice returns every payment referencing the given invoice
// number, oldest first.
func (s *Store) PaymentsForInvoice(invoiceNo string) ([]Payment, error) {
	var ps []Payment
	err := s.db.Where("invoice_no = ?", invoiceNo).Order("date asc, id asc").Find(&ps).Error
	return ps, err
}

// Receipt is the printable view of a single payment: the one payment's
// amount shows up both as the amount received and as the row amount for
// its invoice. Nothing is aggregated here.
type Receipt struct {
	ReceiptNo      string
	Issuer         Issuer
	InvoiceNo      string
	PaymentDate    time.Time
	Method         PaymentMethod
	ReferenceNo    string
	AmountReceived decimal.Decimal
	RowAmount      decimal.Decimal
}

// BuildReceipt is a pure transform of one payment plus the static issuer
// block into a receipt.
func BuildReceipt(p *Payment, issuer Issuer) Receipt {
	return Receipt{
		ReceiptNo:      fmt.Sprintf("RCPT-%06d", p.ID),
		Issuer:         issuer,
		InvoiceNo:      p.InvoiceNo,
		PaymentDate:    p.Date,
		Method:         p.Method,
		ReferenceNo:    p.ReferenceNo,
		AmountReceived: p.Amount,
		RowAmount:      p.Amount,
	}
}
