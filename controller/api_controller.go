package controller

import (
	"time"

	"github.com/ascentware/invoicing/model"
	"github.com/labstack/echo/v4"
)

// Wire field names follow the contract the existing front end already
// speaks, hence the camelCase tags.

type APIError struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func apiError(code, msg string) *APIError { return &APIError{Code: code, Message: msg} }

func validationError(msg string, fields map[string]string) *APIError {
	return &APIError{Code: "validation", Message: msg, Fields: fields}
}

func respond(c echo.Context, status int, v any) error {
	return c.JSON(status, v)
}

const isoDate = "2006-01-02"

type APIClient struct {
	ID              uint   `json:"id"`
	CompanyName     string `json:"companyName"`
	ContactName     string `json:"contactName"`
	CompanyAddress  string `json:"companyAddress"`
	CompanyCountry  string `json:"companyCountry"`
	CountryCode     string `json:"countryCode,omitempty"`
	CompanyPinCode  string `json:"companyPinCode"`
	CompanyEmail    string `json:"companyEmail"`
	CompanyMobileNo string `json:"companyMobileNo"`
	ConsultantName  string `json:"consultantName"`
}

func toAPIClient(cl *model.Client) APIClient {
	return APIClient{
		ID:              cl.ID,
		CompanyName:     cl.CompanyName,
		ContactName:     cl.ContactName,
		CompanyAddress:  cl.Address,
		CompanyCountry:  cl.Country,
		CountryCode:     cl.CountryAlpha2(),
		CompanyPinCode:  cl.PinCode,
		CompanyEmail:    cl.Email,
		CompanyMobileNo: cl.MobileNo,
		ConsultantName:  cl.ConsultantName,
	}
}

type APICatalogItem struct {
	ID          uint   `json:"id"`
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
}

type APITerm struct {
	ID          uint   `json:"id"`
	Term        string `json:"term"`
	Description string `json:"description"`
}

type APIInvoiceItem struct {
	ID          uint   `json:"id"`
	Position    int    `json:"position"`
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
	Qty         string `json:"qty"`
	Rate        string `json:"rate"`
	Amount      string `json:"amount"`
}

type APIInvoice struct {
	ID                    uint             `json:"id"`
	InvoiceNo             string           `json:"invoiceNo"`
	InvoiceDate           string           `json:"invoiceDate"`
	InvoiceTerms          string           `json:"invoiceTerms"`
	DueDate               string           `json:"dueDate"`
	InvoiceStatus         string           `json:"invoiceStatus"`
	InvoiceCurrency       string           `json:"invoiceCurrency"`
	InvoiceCompanyName    string           `json:"invoiceCompanyName"`
	InvoiceCompanyAddress string           `json:"invoiceCompanyAddress"`
	InvoiceCountry        string           `json:"invoiceCountry"`
	InvoicePinCode        string           `json:"invoicePinCode"`
	InvoiceEmail          string           `json:"invoiceEmail"`
	InvoiceMobileNo       string           `json:"invoiceMobileNo"`
	InvoiceConsultantName string           `json:"invoiceConsultantName"`
	CompanyName           string           `json:"companyName"`
	CompanyAddress        string           `json:"companyAddress"`
	CompanyMobileNo       string           `json:"companyMobileNo"`
	CompanyEmail          string           `json:"companyEmail"`
	ThanksNote            string           `json:"thanksNote"`
	IsDeleted             bool             `json:"isDeleted"`
	Items                 []APIInvoiceItem `json:"items"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

func toAPIInvoice(inv *model.Invoice) APIInvoice {
	items := make([]APIInvoiceItem, len(inv.Items))
	for i, it := range inv.Items {
		items[i] = APIInvoiceItem{
			ID:          it.ID,
			Position:    it.Position,
			ItemName:    it.ItemName,
			Description: it.Description,
			Qty:         it.Quantity.String(),
			Rate:        it.Rate.String(),
			Amount:      it.Amount.String(),
		}
	}
	return APIInvoice{
		ID:                    inv.ID,
		InvoiceNo:             inv.Number,
		InvoiceDate:           inv.Date.Format(isoDate),
		InvoiceTerms:          inv.Term,
		DueDate:               inv.DueDate.Format(isoDate),
		InvoiceStatus:         string(inv.Status),
		InvoiceCurrency:       inv.Currency,
		InvoiceCompanyName:    inv.BillToCompany,
		InvoiceCompanyAddress: inv.BillToAddress,
		InvoiceCountry:        inv.BillToCountry,
		InvoicePinCode:        inv.BillToPinCode,
		InvoiceEmail:          inv.BillToEmail,
		InvoiceMobileNo:       inv.BillToMobileNo,
		InvoiceConsultantName: inv.BillToConsultant,
		CompanyName:           inv.CompanyName,
		CompanyAddress:        inv.CompanyAddress,
		CompanyMobileNo:       inv.CompanyMobileNo,
		CompanyEmail:          inv.CompanyEmail,
		ThanksNote:            inv.ThanksNote,
		IsDeleted:             inv.Deleted,
		Items:                 items,
		CreatedAt:             inv.CreatedAt,
		UpdatedAt:             inv.UpdatedAt,
	}
}

type APIInvoiceList struct {
	Items       []APIInvoice `json:"items"`
	NextCursor  string       `json:"nextCursor,omitempty"`
	ActiveCount int64        `json:"activeCount"`
}

type APIInvoiceAmounts struct {
	APIInvoice
	TotalAmount   string       `json:"totalAmount"`
	PaidAmount    string       `json:"paidAmount"`
	PendingAmount string       `json:"pendingAmount"`
	TotalDisplay  string       `json:"totalDisplay"`
	PaymentStatus string       `json:"paymentStatus"`
	Payments      []APIPayment `json:"payments"`
}

type APIPayment struct {
	ID            uint   `json:"id"`
	InvoiceNo     string `json:"invoiceNo"`
	PaymentAmount string `json:"paymentAmount"`
	PaymentDate   string `json:"paymentDate"`
	PaymentMethod string `json:"paymentMethod"`
	ReferenceNo   string `json:"referenceNo"`
}

func toAPIPayment(p *model.Payment) APIPayment {
	return APIPayment{
		ID:            p.ID,
		InvoiceNo:     p.InvoiceNo,
		PaymentAmount: p.Amount.String(),
		PaymentDate:   p.Date.Format(isoDate),
		PaymentMethod: string(p.Method),
		ReferenceNo:   p.ReferenceNo,
	}
}

type APIReceipt struct {
	ReceiptNo       string `json:"receiptNo"`
	CompanyName     string `json:"companyName"`
	CompanyAddress  string `json:"companyAddress"`
	CompanyMobileNo string `json:"companyMobileNo"`
	CompanyEmail    string `json:"companyEmail"`
	InvoiceNo       string `json:"invoiceNo"`
	PaymentDate     string `json:"paymentDate"`
	PaymentMethod   string `json:"paymentMethod"`
	ReferenceNo     string `json:"referenceNo"`
	AmountReceived  string `json:"amountReceived"`
	PaymentAmount   string `json:"paymentAmount"`
}

func toAPIReceipt(r model.Receipt) APIReceipt {
	return APIReceipt{
		ReceiptNo:       r.ReceiptNo,
		CompanyName:     r.Issuer.CompanyName,
		CompanyAddress:  r.Issuer.Address,
		CompanyMobileNo: r.Issuer.MobileNo,
		CompanyEmail:    r.Issuer.Email,
		InvoiceNo:       r.InvoiceNo,
		PaymentDate:     r.PaymentDate.Format(isoDate),
		PaymentMethod:   string(r.Method),
		ReferenceNo:     r.ReferenceNo,
		AmountReceived:  r.AmountReceived.String(),
		PaymentAmount:   r.RowAmount.String(),
	}
}
