package controller

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ascentware/invoicing/model"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// apiSendInvoiceMail mails an invoice as a PDF attachment. The form may
// carry a pre-rendered "pdf" file; without one the invoice is rendered
// here. The recipient defaults to the bill-to email copied onto the
// invoice.
func (ctrl *controller) apiSendInvoiceMail(c echo.Context) error {
	invoiceNo := c.FormValue("invoiceNo")
	if invoiceNo == "" {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields",
			map[string]string{"invoiceNo": "Invoice number is required"}))
	}

	inv, err := ctrl.model.LoadInvoiceByNumber(invoiceNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "invoice not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoice"))
	}

	to := c.FormValue("to")
	if to == "" {
		to = inv.BillToEmail
	}
	if to == "" {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields",
			map[string]string{"to": "The invoice has no email address on file"}))
	}

	var pdf []byte
	if fh, err := c.FormFile("pdf"); err == nil {
		f, err := fh.Open()
		if err != nil {
			return respond(c, http.StatusBadRequest, apiError("bad_request", "could not read attachment"))
		}
		defer f.Close()
		pdf, err = io.ReadAll(f)
		if err != nil {
			return respond(c, http.StatusBadRequest, apiError("bad_request", "could not read attachment"))
		}
	} else {
		_, amounts, err := ctrl.model.InvoiceWithAmounts(inv.ID)
		if err != nil {
			return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoice amounts"))
		}
		pdf, err = model.RenderInvoicePDF(inv, amounts)
		if err != nil {
			return respond(c, http.StatusInternalServerError, apiError("pdf_error", "could not render invoice"))
		}
	}

	subject := c.FormValue("subject")
	if subject == "" {
		subject = fmt.Sprintf("Invoice %s from %s", inv.Number, ctrl.model.Config.Issuer.CompanyName)
	}
	body := c.FormValue("body")
	if body == "" {
		body = fmt.Sprintf("Dear %s,\n\nplease find invoice %s attached.\n\n%s",
			inv.BillToCompany, inv.Number, inv.ThanksNote)
	}

	if err := ctrl.sendEmail(to, subject, body, "invoice-"+inv.Number+".pdf", pdf); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("mail_error", "could not send email"))
	}
	requestLogger(c, slog.Default()).Info("invoice mailed", "invoice_no", inv.Number, "to", to)
	return respond(c, http.StatusOK, map[string]string{"status": "sent", "to": to})
}
