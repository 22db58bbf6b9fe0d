package controller

import "github.com/labstack/echo/v4"

func (ctrl *controller) apiInit(e *echo.Echo) {
	api := e.Group("/api")

	// Clients ("companies" on the wire)
	api.GET("/companies", ctrl.apiClientList)
	api.POST("/companies", ctrl.apiClientCreate)
	api.GET("/companies/:id", ctrl.apiClientGet)
	api.PUT("/companies/:id", ctrl.apiClientUpdate)
	api.DELETE("/companies/:id", ctrl.apiClientDelete)

	// Catalog item master
	api.GET("/itemMaster", ctrl.apiCatalogItemList)
	api.POST("/itemMaster", ctrl.apiCatalogItemCreate)
	api.GET("/itemMaster/:id", ctrl.apiCatalogItemGet)
	api.PUT("/itemMaster/:id", ctrl.apiCatalogItemUpdate)
	api.DELETE("/itemMaster/:id", ctrl.apiCatalogItemDelete)

	// Term master
	api.GET("/terms", ctrl.apiTermList)
	api.POST("/terms", ctrl.apiTermCreate)
	api.PUT("/terms/:id", ctrl.apiTermUpdate)
	api.DELETE("/terms/:id", ctrl.apiTermDelete)

	// Invoices
	api.GET("/invoices", ctrl.apiInvoiceList)
	api.POST("/invoices", ctrl.apiInvoiceCreate)
	api.GET("/invoices/preview-invoice-no", ctrl.apiInvoicePreviewNumber)
	api.GET("/invoices/export.xlsx", ctrl.apiInvoiceExportXLSX)
	api.GET("/invoices/:id", ctrl.apiInvoiceGet)
	api.PUT("/invoices/:id", ctrl.apiInvoiceUpdate)
	api.PATCH("/invoices/:id/is-delete", ctrl.apiInvoiceSoftDelete)
	api.GET("/invoices/:id/with-amounts", ctrl.apiInvoiceWithAmounts)
	api.GET("/invoices/:id/pdf", ctrl.apiInvoicePDF)

	// Payments
	api.GET("/payment", ctrl.apiPaymentList)
	api.POST("/payment", ctrl.apiPaymentCreate)
	api.GET("/payment/:id/receipt", ctrl.apiPaymentReceipt)

	// Mail
	api.POST("/mail/send-email", ctrl.apiSendInvoiceMail)
}
