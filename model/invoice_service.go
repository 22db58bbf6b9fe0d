package model

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ErrInvoiceLocked is returned when an invoice can no longer be edited:
// its workflow status is Completed or nothing is outstanding anymore.
var ErrInvoiceLocked = errors.New("invoice is locked for editing")

// InvoiceListQuery captures filter and paging options for listing invoices.
type InvoiceListQuery struct {
	Status         string // optional: filter by workflow status
	ExcludeDeleted bool   // drop soft-deleted rows instead of flagging them
	Limit          int    // page size (1–200); defaults to 50 when out of range
	Cursor         string // offset cursor encoded as a string: "0", "50", ...
	Sort           string // "date_desc" (default), "date_asc", "created_desc"
}

// ListInvoices returns a page of invoices along with the next cursor.
// Soft-deleted rows are included by default so the listing can render them
// dimmed; ExcludeDeleted drops them entirely.
//
// Paging model: offset cursor encoded as a string; Limit+1 rows are fetched
// to probe for a next page, then trimmed.
func (s *Store) ListInvoices(q InvoiceListQuery) (items []Invoice, nextCursor string, err error) {
	if q.Limit <= 0 || q.Limit > 200 {
		q.Limit = 50
	}

	offset := 0
	if q.Cursor != "" {
		if n, e := strconv.Atoi(q.Cursor); e == nil && n >= 0 {
			offset = n
		}
	}

	db := s.db.Model(&Invoice{})
	if q.Status != "" {
		db = db.Where("status = ?", q.Status)
	}
	if q.ExcludeDeleted {
		db = db.Where("deleted = ?", false)
	}

	switch q.Sort {
	case "date_asc":
		db = db.Order("date asc")
	case "created_desc":
		db = db.Order("created_at desc")
	default:
		db = db.Order("date desc")
	}

	var invs []Invoice
	if err = db.Preload("Items").Offset(offset).Limit(q.Limit + 1).Find(&invs).Error; err != nil {
		return nil, "", err
	}

	if len(invs) > q.Limit {
		invs = invs[:q.Limit]
		nextCursor = strconv.Itoa(offset + q.Limit)
	}
	return invs, nextCursor, nil
}

// ActiveInvoiceCount counts invoices that are not soft-deleted.
func (s *Store) ActiveInvoiceCount() (int64, error) {
	var count int64
	err := s.db.Model(&Invoice{}).Where("deleted = ?", false).Count(&count).Error
	return count, err
}

// SaveInvoice creates or updates an invoice and fully replaces its items
// (hard delete + recreate) in one transaction.
func (s *Store) SaveInvoice(inv *Invoice) error {
	inv.RecomputeItems()
	items := inv.Items
	inv.Items = nil
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(inv).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&InvoiceItem{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			for i := range items {
				items[i].ID = 0
				items[i].InvoiceID = inv.ID
			}
			if err := tx.Omit("ID").Create(&items).Error; err != nil {
				return err
			}
		}
		inv.Items = items
		return nil
	})
}

// UpdateInvoice replaces a stored invoice after checking that it is still
// editable. Returns ErrInvoiceLocked for completed or fully paid invoices.
func (s *Store) UpdateInvoice(inv *Invoice) error {
	if inv.ID == 0 {
		return fmt.Errorf("update invoice: id is zero")
	}
	current, amounts, err := s.InvoiceWithAmounts(inv.ID)
	if err != nil {
		return err
	}
	if !current.Editable(amounts.PendingAmount) {
		return ErrInvoiceLocked
	}
	return s.SaveInvoice(inv)
}

// LoadInvoice loads an invoice and its items.
func (s *Store) LoadInvoice(id any) (*Invoice, error) {
	var inv Invoice
	if err := s.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("invoice_items.position ASC")
	}).First(&inv, id).Error; err != nil {
		return nil, fmt.Errorf("load invoice %v: %w", id, err)
	}
	return &inv, nil
}

// LoadInvoiceByNumber loads an invoice by its assigned number.
func (s *Store) LoadInvoiceByNumber(number string) (*Invoice, error) {
	var inv Invoice
	if err := s.db.Preload("Items").Where("number = ?", number).First(&inv).Error; err != nil {
		return nil, fmt.Errorf("load invoice %q: %w", number, err)
	}
	return &inv, nil
}

// SetInvoiceDeleted toggles the soft-delete flag. The row stays retrievable
// and visibly marked until the listing filters it out.
func (s *Store) SetInvoiceDeleted(id uint, deleted bool) error {
	res := s.db.Model(&Invoice{}).Where("id = ?", id).Update("deleted", deleted)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// NextInvoiceNumber computes the next number for the current month:
// "yyyyMM" plus a zero-padded per-month sequence. This is a preview, not a
// reservation; the number is only fixed when the invoice is committed.
func (s *Store) NextInvoiceNumber(now time.Time) (string, error) {
	prefix := now.Format("200601")
	var count int64
	if err := s.db.Model(&Invoice{}).
		Where("number LIKE ?", prefix+"%").
		Count(&count).Error; err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%02d", prefix, count+1), nil
}

// InvoiceWithAmounts loads an invoice together with its derived money
// summary: total from items, paid from payments referencing the invoice
// number, pending as the difference.
func (s *Store) InvoiceWithAmounts(id any) (*Invoice, InvoiceAmounts, error) {
	inv, err := s.LoadInvoice(id)
	if err != nil {
		return nil, InvoiceAmounts{}, err
	}

	payments, err := s.PaymentsForInvoice(inv.Number)
	if err != nil {
		return nil, InvoiceAmounts{}, err
	}

	total := inv.Total()
	paid := decimal.Zero
	for _, p := range payments {
		paid = paid.Add(p.Amount)
	}

	return inv, InvoiceAmounts{
		TotalAmount:   total,
		PaidAmount:    paid,
		PendingAmount: total.Sub(paid),
		Payments:      payments,
	}, nil
}
