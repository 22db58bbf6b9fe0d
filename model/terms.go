package model

import (
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// Term is one payment-term master record, e.g. {"Net 30", "Payable in 30 days"}.
// The front end used to keep these in browser storage; they are a proper
// store-backed master now so every client sees the same list.
type Term struct {
	gorm.Model
	Code        string `gorm:"uniqueIndex"`
	Description string
}

// DefaultTerms seeds the term master on first start.
var DefaultTerms = []Term{
	{Code: "Net 30", Description: "Payment due within 30 days"},
	{Code: "Net 45", Description: "Payment due within 45 days"},
	{Code: "Net 90", Description: "Payment due within 90 days"},
}

// TermDays extracts N from a term of the shape "Net <N>". A missing or
// unparseable suffix counts as zero days.
func TermDays(term string) int {
	rest := strings.TrimSpace(strings.TrimPrefix(term, "Net "))
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// DueDate derives the due date from the invoice date and the term code by
// adding N calendar days.
func DueDate(invoiceDate time.Time, term string) time.Time {
	return invoiceDate.AddDate(0, 0, TermDays(term))
}

// DueDateISO is the string form used by the draft flow: ISO date in, ISO
// date out. An empty date or term yields "" (no due date, submission is
// blocked upstream).
func DueDateISO(invoiceDate, term string) string {
	if invoiceDate == "" || term == "" {
		return ""
	}
	d, err := time.Parse("2006-01-02", invoiceDate)
	if err != nil {
		return ""
	}
	return DueDate(d, term).Format("2006-01-02")
}

// IsKnownTerm reports whether code is one of the configured term codes.
func (s *Store) IsKnownTerm(code string) bool {
	var count int64
	s.db.Model(&Term{}).Where("code = ?", code).Count(&count)
	return count > 0
}

// ListTerms returns all terms ordered by code.
func (s *Store) ListTerms() ([]Term, error) {
	var terms []Term
	err := s.db.Order("code asc").Find(&terms).Error
	return terms, err
}

// LoadTerm returns one term master record by id.
func (s *Store) LoadTerm(id uint) (*Term, error) {
	var t Term
	if err := s.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

// SaveTerm creates or updates a term master record.
func (s *Store) SaveTerm(t *Term) error {
	return s.db.Save(t).Error
}

// DeleteTerm removes a term master record.
func (s *Store) DeleteTerm(id uint) error {
	return s.db.Delete(&Term{}, id).Error
}

// SeedDefaultTerms inserts the default term codes when the table is empty.
func (s *Store) SeedDefaultTerms() error {
	var count int64
	if err := s.db.Model(&Term{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	terms := make([]Term, len(DefaultTerms))
	copy(terms, DefaultTerms)
	return s.db.Create(&terms).Error
}
