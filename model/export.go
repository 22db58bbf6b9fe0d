package model

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ExportInvoicesXLSX writes the full invoice listing, enriched with the
// derived amounts, into an XLSX workbook. A failing amount lookup degrades
// that one row to zeros instead of failing the export.
func (s *Store) ExportInvoicesXLSX() ([]byte, error) {
	invs, _, err := s.ListInvoices(InvoiceListQuery{Limit: 200, Sort: "date_desc"})
	if err != nil {
		return nil, fmt.Errorf("cannot load invoices for export: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Invoice No", "Date", "Due Date", "Term", "Status", "Currency",
		"Bill To", "Total", "Paid", "Pending", "Payment Status", "Deleted",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for i := range invs {
		inv := &invs[i]

		var amounts InvoiceAmounts
		if _, a, err := s.InvoiceWithAmounts(inv.ID); err == nil {
			amounts = a
		} else {
			amounts = InvoiceAmounts{
				TotalAmount:   decimal.Zero,
				PaidAmount:    decimal.Zero,
				PendingAmount: decimal.Zero,
			}
		}

		values := []any{
			inv.Number,
			inv.Date.Format("2006-01-02"),
			inv.DueDate.Format("2006-01-02"),
			inv.Term,
			string(inv.Status),
			inv.Currency,
			inv.BillToCompany,
			amounts.TotalAmount.StringFixed(2),
			amounts.PaidAmount.StringFixed(2),
			amounts.PendingAmount.StringFixed(2),
			string(amounts.Status()),
			inv.Deleted,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("cannot write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
