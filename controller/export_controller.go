package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// apiInvoiceExportXLSX streams the invoice listing with its computed
// amount columns as a spreadsheet.
func (ctrl *controller) apiInvoiceExportXLSX(c echo.Context) error {
	blob, err := ctrl.model.ExportInvoicesXLSX()
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("export_error", "could not export invoices"))
	}
	filename := fmt.Sprintf("invoices-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", blob)
}
