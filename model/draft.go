package model

import (
	"time"
)

// DraftState tracks one draft through its submit cycle.
type DraftState int

const (
	DraftEmpty DraftState = iota
	DraftFilling
	DraftValidated
	DraftSubmitting
	DraftSubmittedSuccess
	DraftSubmitFailed
)

// Draft is an invoice being composed or edited, before it is committed to
// the store. The due date is never taken from the caller on create: it is
// rederived from date and term on every validation pass.
type Draft struct {
	State      DraftState
	InvoiceID  uint   // zero for create, set when editing
	Number     string // server-assigned, read-only preview on create
	DateISO    string
	Term       string
	Status     InvoiceStatus
	Currency   string
	BillTo     Client // snapshot of the selected client, copied by value
	ThanksNote string
	Ledger     *Ledger
}

// NewDraft returns an empty draft with the defaults the add form starts
// with: today's date, status New and the stock thanks note.
func NewDraft(now time.Time) *Draft {
	return &Draft{
		State:      DraftEmpty,
		DateISO:    now.Format("2006-01-02"),
		Status:     InvoiceStatusNew,
		Currency:   "USD",
		ThanksNote: "Thank you for your business!",
		Ledger:     NewLedger(),
	}
}

// DraftErrors carries one optional message per form field plus the single
// aggregate message shown at the top of the form.
type DraftErrors struct {
	Date       string
	Term       string
	Status     string
	Currency   string
	Client     string
	ThanksNote string
	Items      string
	Message    string
}

// OK reports whether validation passed.
func (e DraftErrors) OK() bool { return e.Message == "" }

// ValidateDraft re-checks every required field and the item list. It is
// pure: the draft is not mutated except for its state, which moves to
// DraftValidated on success and stays in DraftFilling on failure.
func ValidateDraft(d *Draft) DraftErrors {
	var errs DraftErrors

	if d.DateISO == "" {
		errs.Date = "Invoice date is required"
	} else if _, err := time.Parse("2006-01-02", d.DateISO); err != nil {
		errs.Date = "Invoice date must be a valid date"
	}
	if d.Term == "" {
		errs.Term = "Term is required"
	}
	if d.Status != InvoiceStatusNew && d.Status != InvoiceStatusCompleted {
		errs.Status = "Status must be New or Completed"
	}
	if !IsSupportedCurrency(d.Currency) {
		errs.Currency = "Currency is not supported"
	}
	if d.BillTo.CompanyName == "" {
		errs.Client = "Client is required"
	}
	if d.ThanksNote == "" {
		errs.ThanksNote = "Thanks note is required"
	}
	if d.Ledger == nil || d.Ledger.Len() == 0 {
		errs.Items = "Add at least one item"
	}

	if errs != (DraftErrors{}) {
		errs.Message = "Please fix the highlighted fields"
		if errs.Items != "" {
			errs.Message = errs.Items
		}
		d.State = DraftFilling
		return errs
	}
	d.State = DraftValidated
	return errs
}

// ToInvoice builds the persistable invoice from a validated draft, copying
// the client contact block and the configured issuer by value. The due
// date is derived from date and term; edit flows may replace it afterwards
// with a user-set value.
func (d *Draft) ToInvoice(number string, issuer Issuer) *Invoice {
	date, _ := time.Parse("2006-01-02", d.DateISO)
	inv := &Invoice{
		Number:   number,
		Date:     date,
		Term:     d.Term,
		DueDate:  DueDate(date, d.Term),
		Status:   d.Status,
		Currency: d.Currency,

		BillToCompany:    d.BillTo.CompanyName,
		BillToAddress:    d.BillTo.Address,
		BillToCountry:    d.BillTo.Country,
		BillToPinCode:    d.BillTo.PinCode,
		BillToEmail:      d.BillTo.Email,
		BillToMobileNo:   d.BillTo.MobileNo,
		BillToConsultant: d.BillTo.ConsultantName,

		ThanksNote: d.ThanksNote,
		Items:      d.Ledger.Items(),
	}
	inv.ID = d.InvoiceID
	inv.CompanyName = issuer.CompanyName
	inv.CompanyAddress = issuer.Address
	inv.CompanyMobileNo = issuer.MobileNo
	inv.CompanyEmail = issuer.Email
	inv.RecomputeItems()
	return inv
}
