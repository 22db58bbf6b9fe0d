package model

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// PDF rendering produces structured A4 documents rather than rasterized
// screen captures. The contract is the same either way: one call, one
// binary blob from a rendered document.

const (
	pdfMarginLeft = 15.0
	pdfPageWidth  = 210.0 // A4 portrait, mm
)

func newA4() (*gofpdf.Fpdf, func(string) string) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMarginLeft, 15, 15)
	pdf.AddPage()
	// Core fonts are cp1252; translate what we can, the rest degrades.
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	return pdf, tr
}

// RenderInvoicePDF renders the invoice document with its derived amounts
// and returns the file as a byte blob.
func RenderInvoicePDF(inv *Invoice, amounts InvoiceAmounts) ([]byte, error) {
	pdf, tr := newA4()
	usable := pdfPageWidth - 2*pdfMarginLeft

	// Issuer block
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(usable, 8, tr(inv.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(usable, 5, tr(inv.CompanyAddress), "", 1, "L", false, 0, "")
	pdf.CellFormat(usable, 5, tr(inv.CompanyMobileNo+"  "+inv.CompanyEmail), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Title and meta
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(usable, 8, "INVOICE", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(usable/2, 5, "Invoice No: "+inv.Number, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, 5, "Date: "+inv.Date.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(usable/2, 5, "Terms: "+inv.Term, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, 5, "Due Date: "+inv.DueDate.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(usable/2, 5, "Status: "+string(inv.Status), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Bill-to block
	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(usable, 6, "Bill To", "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(usable, 5, tr(inv.BillToCompany), "", 1, "L", false, 0, "")
	pdf.CellFormat(usable, 5, tr(inv.BillToAddress), "", 1, "L", false, 0, "")
	pdf.CellFormat(usable, 5, tr(inv.BillToCountry+"  "+inv.BillToPinCode), "", 1, "L", false, 0, "")
	pdf.CellFormat(usable, 5, tr(inv.BillToEmail+"  "+inv.BillToMobileNo), "", 1, "L", false, 0, "")
	if inv.BillToConsultant != "" {
		pdf.CellFormat(usable, 5, tr("Consultant: "+inv.BillToConsultant), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	// Item table
	colW := []float64{12, 52, 50, 18, 24, 24}
	headers := []string{"#", "Item", "Description", "Qty", "Rate", "Amount"}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range headers {
		pdf.CellFormat(colW[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	for _, it := range inv.Items {
		pdf.CellFormat(colW[0], 6, fmt.Sprintf("%d", it.Position), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 6, tr(it.ItemName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[2], 6, tr(it.Description), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 6, it.Quantity.String(), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], 6, it.Rate.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[5], 6, it.Amount.StringFixed(2), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Totals
	pdf.Ln(2)
	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(usable, 6, tr("Total: "+FormatAmount(amounts.TotalAmount, inv.Currency)), "", 1, "R", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(usable, 5, tr("Paid: "+FormatAmount(amounts.PaidAmount, inv.Currency)), "", 1, "R", false, 0, "")
	pdf.CellFormat(usable, 5, tr("Pending: "+FormatAmount(amounts.PendingAmount, inv.Currency)), "", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Arial", "I", 10)
	pdf.CellFormat(usable, 5, tr(inv.ThanksNote), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render invoice pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// RenderReceiptPDF renders the receipt for one payment. The currency code
// is taken from the invoice the payment references; pass "" when unknown
// to fall back to plain numbers.
func RenderReceiptPDF(r Receipt, currency string) ([]byte, error) {
	pdf, tr := newA4()
	usable := pdfPageWidth - 2*pdfMarginLeft

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(usable, 8, tr(r.Issuer.CompanyName), "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(usable, 5, tr(r.Issuer.Address), "", 1, "L", false, 0, "")
	pdf.CellFormat(usable, 5, tr(r.Issuer.MobileNo+"  "+r.Issuer.Email), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(usable, 8, "PAYMENT RECEIPT", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(usable/2, 5, "Receipt No: "+r.ReceiptNo, "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, 5, "Date: "+r.PaymentDate.Format("02/01/2006"), "", 1, "R", false, 0, "")
	pdf.CellFormat(usable/2, 5, "Method: "+string(r.Method), "", 0, "L", false, 0, "")
	pdf.CellFormat(usable/2, 5, "Reference: "+r.ReferenceNo, "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Arial", "B", 11)
	pdf.CellFormat(usable, 6, tr("Amount received: "+FormatAmount(r.AmountReceived, currency)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	colW := []float64{60, 60, 60}
	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(235, 235, 235)
	for i, h := range []string{"Invoice No", "Payment Date", "Payment Amount"} {
		pdf.CellFormat(colW[i], 7, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(colW[0], 6, r.InvoiceNo, "1", 0, "L", false, 0, "")
	pdf.CellFormat(colW[1], 6, r.PaymentDate.Format("02/01/2006"), "1", 0, "C", false, 0, "")
	pdf.CellFormat(colW[2], 6, tr(FormatAmount(r.RowAmount, currency)), "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render receipt pdf: %w", err)
	}
	return buf.Bytes(), nil
}
