package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ItemInputErrors carries one optional message per item input field.
type ItemInputErrors struct {
	ItemName string
	Qty      string
	Rate     string
}

// OK reports whether the input passed validation.
func (e ItemInputErrors) OK() bool {
	return e.ItemName == "" && e.Qty == "" && e.Rate == ""
}

// ValidateItemInput checks the free-text item inputs and parses the numeric
// fields. Quantity must be a positive number, rate a non-negative one;
// anything else gets a field-level message instead of a silent coercion.
func ValidateItemInput(name, qty, rate string) (decimal.Decimal, decimal.Decimal, ItemInputErrors) {
	var errs ItemInputErrors

	if name == "" {
		errs.ItemName = "Item name is required"
	}
	q, err := decimal.NewFromString(qty)
	if err != nil || q.Sign() <= 0 {
		errs.Qty = "Quantity must be a positive number"
	}
	r, err := decimal.NewFromString(rate)
	if err != nil || r.Sign() < 0 {
		errs.Rate = "Rate must be a non-negative number"
	}
	return q, r, errs
}

// Ledger is the in-memory ordered item collection owned by one draft while
// it is being composed. Ids are client-generated and monotonic (max+1);
// removal is two-step so a stray click cannot drop a row.
type Ledger struct {
	items         []InvoiceItem
	pendingRemove int // index marked for removal, -1 when none
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{pendingRemove: -1}
}

// NewLedgerFromItems wraps existing items, e.g. when editing a stored
// invoice.
func NewLedgerFromItems(items []InvoiceItem) *Ledger {
	l := NewLedger()
	l.items = append(l.items, items...)
	return l
}

func (l *Ledger) nextID() uint {
	var max uint
	for _, it := range l.items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max + 1
}

// Add validates the inputs and appends a new item with Amount = qty × rate.
// On validation failure nothing is appended and the field errors are
// returned.
func (l *Ledger) Add(name, description, qty, rate string) (ItemInputErrors, error) {
	q, r, errs := ValidateItemInput(name, qty, rate)
	if !errs.OK() {
		return errs, fmt.Errorf("invalid item input")
	}
	l.items = append(l.items, InvoiceItem{
		ID:          l.nextID(),
		Position:    len(l.items) + 1,
		ItemName:    name,
		Description: description,
		Quantity:    q,
		Rate:        r,
		Amount:      q.Mul(r),
	})
	return ItemInputErrors{}, nil
}

// Update replaces the item at index, preserving its original id and
// recomputing the amount.
func (l *Ledger) Update(index int, name, description, qty, rate string) (ItemInputErrors, error) {
	if index < 0 || index >= len(l.items) {
		return ItemInputErrors{}, fmt.Errorf("item index %d out of range", index)
	}
	q, r, errs := ValidateItemInput(name, qty, rate)
	if !errs.OK() {
		return errs, fmt.Errorf("invalid item input")
	}
	it := &l.items[index]
	it.ItemName = name
	it.Description = description
	it.Quantity = q
	it.Rate = r
	it.Amount = q.Mul(r)
	return ItemInputErrors{}, nil
}

// MarkRemove flags the item at index for removal. The flag sticks until
// ConfirmRemove or CancelRemove.
func (l *Ledger) MarkRemove(index int) error {
	if index < 0 || index >= len(l.items) {
		return fmt.Errorf("item index %d out of range", index)
	}
	l.pendingRemove = index
	return nil
}

// PendingRemove returns the index marked for removal, or -1.
func (l *Ledger) PendingRemove() int { return l.pendingRemove }

// ConfirmRemove drops the marked item. There is no undo past this point.
func (l *Ledger) ConfirmRemove() error {
	if l.pendingRemove < 0 {
		return fmt.Errorf("no item marked for removal")
	}
	i := l.pendingRemove
	l.items = append(l.items[:i], l.items[i+1:]...)
	l.pendingRemove = -1
	for j := range l.items {
		l.items[j].Position = j + 1
	}
	return nil
}

// CancelRemove clears the removal mark.
func (l *Ledger) CancelRemove() { l.pendingRemove = -1 }

// Items returns the current rows in order.
func (l *Ledger) Items() []InvoiceItem { return l.items }

// Len returns the number of rows.
func (l *Ledger) Len() int { return len(l.items) }

// Total sums the amounts of all rows.
func (l *Ledger) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range l.items {
		total = total.Add(it.Amount)
	}
	return total
}
