package controller

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/ascentware/invoicing/model"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type paymentPayload struct {
	InvoiceNo     string `json:"invoiceNo"`
	PaymentAmount string `json:"paymentAmount"`
	PaymentDate   string `json:"paymentDate"`
	PaymentMethod string `json:"paymentMethod"`
	ReferenceNo   string `json:"referenceNo"`
}

func (ctrl *controller) apiPaymentList(c echo.Context) error {
	var (
		payments []model.Payment
		err      error
	)
	if no := c.QueryParam("invoiceNo"); no != "" {
		payments, err = ctrl.model.PaymentsForInvoice(no)
	} else {
		payments, err = ctrl.model.ListPayments()
	}
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load payments"))
	}
	out := make([]APIPayment, len(payments))
	for i := range payments {
		out[i] = toAPIPayment(&payments[i])
	}
	return respond(c, http.StatusOK, out)
}

func (ctrl *controller) apiPaymentCreate(c echo.Context) error {
	var p paymentPayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}

	fields := map[string]string{}
	if p.InvoiceNo == "" {
		fields["invoiceNo"] = "Invoice number is required"
	}
	amount, err := decimal.NewFromString(p.PaymentAmount)
	if err != nil || amount.Sign() <= 0 {
		fields["paymentAmount"] = "Amount must be a positive number"
	}
	date, err := time.Parse(isoDate, p.PaymentDate)
	if err != nil {
		fields["paymentDate"] = "Payment date must be a valid date"
	}
	if !model.IsValidPaymentMethod(model.PaymentMethod(p.PaymentMethod)) {
		fields["paymentMethod"] = "Payment method is not supported"
	}
	if len(fields) > 0 {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields", fields))
	}

	inv, err := ctrl.model.LoadInvoiceByNumber(p.InvoiceNo)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "invoice not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoice"))
	}

	payment := model.Payment{
		InvoiceNo:   inv.Number,
		Amount:      amount,
		Date:        date,
		Method:      model.PaymentMethod(p.PaymentMethod),
		ReferenceNo: p.ReferenceNo,
	}
	if err := ctrl.model.SavePayment(&payment); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not save payment"))
	}

	requestLogger(c, slog.Default()).Info("payment recorded",
		"invoice_no", inv.Number, "amount", payment.Amount.String(), "method", string(payment.Method))
	return respond(c, http.StatusCreated, toAPIPayment(&payment))
}

func (ctrl *controller) apiPaymentReceipt(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	payment, err := ctrl.model.LoadPayment(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "payment not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load payment"))
	}

	receipt := model.BuildReceipt(payment, ctrl.model.Config.Issuer)

	if c.QueryParam("format") == "pdf" {
		currency := "USD"
		if inv, err := ctrl.model.LoadInvoiceByNumber(payment.InvoiceNo); err == nil {
			currency = inv.Currency
		}
		blob, err := model.RenderReceiptPDF(receipt, currency)
		if err != nil {
			return respond(c, http.StatusInternalServerError, apiError("pdf_error", "could not render receipt"))
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+receipt.ReceiptNo+`.pdf"`)
		return c.Blob(http.StatusOK, "application/pdf", blob)
	}
	return respond(c, http.StatusOK, toAPIReceipt(receipt))
}
