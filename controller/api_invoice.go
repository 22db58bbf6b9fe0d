package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ascentware/invoicing/model"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type invoiceListQuery struct {
	Status         string `query:"status"`
	ExcludeDeleted bool   `query:"excludeDeleted"`
	Limit          int    `query:"limit"`
	Cursor         string `query:"cursor"`
	Sort           string `query:"sort"`
}

type invoiceItemPayload struct {
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Qty         string `json:"qty"`
	Rate        string `json:"rate"`
}

type invoicePayload struct {
	InvoiceNo             string               `json:"invoiceNo"`
	InvoiceDate           string               `json:"invoiceDate"`
	InvoiceTerms          string               `json:"invoiceTerms"`
	DueDate               string               `json:"dueDate"`
	InvoiceStatus         string               `json:"invoiceStatus"`
	InvoiceCurrency       string               `json:"invoiceCurrency"`
	ClientID              uint                 `json:"clientId"`
	InvoiceCompanyName    string               `json:"invoiceCompanyName"`
	InvoiceCompanyAddress string               `json:"invoiceCompanyAddress"`
	InvoiceCountry        string               `json:"invoiceCountry"`
	InvoicePinCode        string               `json:"invoicePinCode"`
	InvoiceEmail          string               `json:"invoiceEmail"`
	InvoiceMobileNo       string               `json:"invoiceMobileNo"`
	InvoiceConsultantName string               `json:"invoiceConsultantName"`
	ThanksNote            string               `json:"thanksNote"`
	Items                 []invoiceItemPayload `json:"items"`
}

// draftFromPayload builds a draft from the wire payload. The bill-to block
// is resolved from the referenced client when a clientId is sent, otherwise
// the copied fields from the payload are taken as-is. Per-item validation
// failures surface as indexed field errors; the due date is never read from
// the payload.
func (ctrl *controller) draftFromPayload(p *invoicePayload, now time.Time) (*model.Draft, map[string]string) {
	fields := map[string]string{}

	d := model.NewDraft(now)
	d.State = model.DraftFilling
	if p.InvoiceDate != "" {
		d.DateISO = p.InvoiceDate
	}
	d.Term = p.InvoiceTerms
	if p.InvoiceStatus != "" {
		d.Status = model.InvoiceStatus(p.InvoiceStatus)
	}
	if p.InvoiceCurrency != "" {
		d.Currency = p.InvoiceCurrency
	}
	if p.ThanksNote != "" {
		d.ThanksNote = p.ThanksNote
	}

	if p.ClientID != 0 {
		client, err := ctrl.model.LoadClient(p.ClientID)
		if err != nil {
			fields["clientId"] = "Client not found"
		} else {
			d.BillTo = *client
		}
	} else {
		d.BillTo = model.Client{
			CompanyName:    p.InvoiceCompanyName,
			Address:        p.InvoiceCompanyAddress,
			Country:        p.InvoiceCountry,
			PinCode:        p.InvoicePinCode,
			Email:          p.InvoiceEmail,
			MobileNo:       p.InvoiceMobileNo,
			ConsultantName: p.InvoiceConsultantName,
		}
	}

	for i, it := range p.Items {
		if errs, err := d.Ledger.Add(it.ItemName, it.Description, it.Qty, it.Rate); err != nil {
			prefix := "items[" + strconv.Itoa(i) + "]."
			if errs.ItemName != "" {
				fields[prefix+"itemName"] = errs.ItemName
			}
			if errs.Qty != "" {
				fields[prefix+"qty"] = errs.Qty
			}
			if errs.Rate != "" {
				fields[prefix+"rate"] = errs.Rate
			}
		}
	}

	if len(fields) > 0 {
		return d, fields
	}
	return d, nil
}

func draftFieldErrors(errs model.DraftErrors) map[string]string {
	fields := map[string]string{}
	set := func(k, v string) {
		if v != "" {
			fields[k] = v
		}
	}
	set("invoiceDate", errs.Date)
	set("invoiceTerms", errs.Term)
	set("invoiceStatus", errs.Status)
	set("invoiceCurrency", errs.Currency)
	set("invoiceCompanyName", errs.Client)
	set("thanksNote", errs.ThanksNote)
	set("items", errs.Items)
	return fields
}

func (ctrl *controller) apiInvoiceList(c echo.Context) error {
	var q invoiceListQuery
	if err := c.Bind(&q); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_query", "invalid query params"))
	}
	invs, next, err := ctrl.model.ListInvoices(model.InvoiceListQuery{
		Status:         q.Status,
		ExcludeDeleted: q.ExcludeDeleted,
		Limit:          q.Limit,
		Cursor:         q.Cursor,
		Sort:           q.Sort,
	})
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoices"))
	}
	active, err := ctrl.model.ActiveInvoiceCount()
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not count invoices"))
	}

	items := make([]APIInvoice, len(invs))
	for i := range invs {
		items[i] = toAPIInvoice(&invs[i])
	}
	return respond(c, http.StatusOK, APIInvoiceList{Items: items, NextCursor: next, ActiveCount: active})
}

func (ctrl *controller) apiInvoiceGet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	inv, err := ctrl.model.LoadInvoice(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "invoice not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoice"))
	}
	return respond(c, http.StatusOK, toAPIInvoice(inv))
}

func (ctrl *controller) apiInvoiceCreate(c echo.Context) error {
	var p invoicePayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}

	now := time.Now()
	d, itemFields := ctrl.draftFromPayload(&p, now)
	if itemFields != nil {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields", itemFields))
	}
	if errs := model.ValidateDraft(d); !errs.OK() {
		return respond(c, http.StatusBadRequest, validationError(errs.Message, draftFieldErrors(errs)))
	}

	number := p.InvoiceNo
	if number == "" {
		var err error
		number, err = ctrl.model.NextInvoiceNumber(now)
		if err != nil {
			return respond(c, http.StatusInternalServerError, apiError("db_error", "could not assign invoice number"))
		}
	}
	if _, err := ctrl.model.LoadInvoiceByNumber(number); err == nil {
		return respond(c, http.StatusConflict, apiError("duplicate_number", "invoice number already exists"))
	}

	d.State = model.DraftSubmitting
	inv := d.ToInvoice(number, ctrl.model.Config.Issuer)
	if err := ctrl.model.SaveInvoice(inv); err != nil {
		d.State = model.DraftSubmitFailed
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not save invoice"))
	}
	d.State = model.DraftSubmittedSuccess
	return respond(c, http.StatusCreated, toAPIInvoice(inv))
}

func (ctrl *controller) apiInvoiceUpdate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	existing, err := ctrl.model.LoadInvoice(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "invoice not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoice"))
	}

	var p invoicePayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}

	d, itemFields := ctrl.draftFromPayload(&p, time.Now())
	if itemFields != nil {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields", itemFields))
	}
	d.InvoiceID = existing.ID
	if errs := model.ValidateDraft(d); !errs.OK() {
		return respond(c, http.StatusBadRequest, validationError(errs.Message, draftFieldErrors(errs)))
	}

	// The number is server-assigned and stays fixed across edits.
	inv := d.ToInvoice(existing.Number, ctrl.model.Config.Issuer)
	inv.CreatedAt = existing.CreatedAt
	inv.Deleted = existing.Deleted

	// Unlike create, the edit form exposes the due date, so a sent value
	// wins over the date+term derivation.
	if p.DueDate != "" {
		due, err := time.Parse(isoDate, p.DueDate)
		if err != nil {
			return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields",
				map[string]string{"dueDate": "Due date must be a valid date"}))
		}
		inv.DueDate = due
	}
	if err := ctrl.model.UpdateInvoice(inv); err != nil {
		if errors.Is(err, model.ErrInvoiceLocked) {
			return respond(c, http.StatusConflict, apiError("invoice_locked", "invoice can no longer be edited"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not update invoice"))
	}
	return respond(c, http.StatusOK, toAPIInvoice(inv))
}

func (ctrl *controller) apiInvoiceSoftDelete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	flag := c.QueryParam("isDelete")
	deleted := flag == "1" || flag == "true"

	if err := ctrl.model.SetInvoiceDeleted(uint(id), deleted); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "invoice not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not update invoice"))
	}
	inv, err := ctrl.model.LoadInvoice(uint(id))
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoice"))
	}
	return respond(c, http.StatusOK, toAPIInvoice(inv))
}

func (ctrl *controller) apiInvoiceWithAmounts(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	inv, amounts, err := ctrl.model.InvoiceWithAmounts(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "invoice not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoice amounts"))
	}

	payments := make([]APIPayment, len(amounts.Payments))
	for i := range amounts.Payments {
		payments[i] = toAPIPayment(&amounts.Payments[i])
	}
	return respond(c, http.StatusOK, APIInvoiceAmounts{
		APIInvoice:    toAPIInvoice(inv),
		TotalAmount:   amounts.TotalAmount.StringFixed(2),
		PaidAmount:    amounts.PaidAmount.StringFixed(2),
		PendingAmount: amounts.PendingAmount.StringFixed(2),
		TotalDisplay:  model.FormatAmount(amounts.TotalAmount, inv.Currency),
		PaymentStatus: string(amounts.Status()),
		Payments:      payments,
	})
}

// apiInvoicePreviewNumber serves the number the next created invoice would
// get. Clients poll this while the add form is open; nothing is reserved,
// so the committed number may still differ.
func (ctrl *controller) apiInvoicePreviewNumber(c echo.Context) error {
	no, err := ctrl.model.NextInvoiceNumber(time.Now())
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not compute invoice number"))
	}
	return c.String(http.StatusOK, no)
}

func (ctrl *controller) apiInvoicePDF(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	inv, amounts, err := ctrl.model.InvoiceWithAmounts(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "invoice not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load invoice"))
	}
	blob, err := model.RenderInvoicePDF(inv, amounts)
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("pdf_error", "could not render invoice"))
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="invoice-`+inv.Number+`.pdf"`)
	return c.Blob(http.StatusOK, "application/pdf", blob)
}
