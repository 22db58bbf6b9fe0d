package controller

import (
	"errors"
	"net/http"
	"net/mail"
	"strconv"

	"github.com/ascentware/invoicing/model"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type clientPayload struct {
	CompanyName     string `json:"companyName"`
	ContactName     string `json:"contactName"`
	CompanyAddress  string `json:"companyAddress"`
	CompanyCountry  string `json:"companyCountry"`
	CompanyPinCode  string `json:"companyPinCode"`
	CompanyEmail    string `json:"companyEmail"`
	CompanyMobileNo string `json:"companyMobileNo"`
	ConsultantName  string `json:"consultantName"`
}

func validateClientPayload(p *clientPayload) map[string]string {
	fields := map[string]string{}
	if p.CompanyName == "" {
		fields["companyName"] = "Company name is required"
	}
	if p.CompanyEmail != "" {
		if _, err := mail.ParseAddress(p.CompanyEmail); err != nil {
			fields["companyEmail"] = "Email address is not valid"
		}
	}
	if len(fields) > 0 {
		return fields
	}
	return nil
}

func (p *clientPayload) apply(cl *model.Client) {
	cl.CompanyName = p.CompanyName
	cl.ContactName = p.ContactName
	cl.Address = p.CompanyAddress
	cl.Country = p.CompanyCountry
	cl.PinCode = p.CompanyPinCode
	cl.Email = p.CompanyEmail
	cl.MobileNo = p.CompanyMobileNo
	cl.ConsultantName = p.ConsultantName
}

func (ctrl *controller) apiClientList(c echo.Context) error {
	clients, err := ctrl.model.LoadAllClients()
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load companies"))
	}
	out := make([]APIClient, len(clients))
	for i := range clients {
		out[i] = toAPIClient(&clients[i])
	}
	return respond(c, http.StatusOK, out)
}

func (ctrl *controller) apiClientGet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	cl, err := ctrl.model.LoadClient(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "company not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load company"))
	}
	return respond(c, http.StatusOK, toAPIClient(cl))
}

func (ctrl *controller) apiClientCreate(c echo.Context) error {
	var p clientPayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}
	if fields := validateClientPayload(&p); fields != nil {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields", fields))
	}
	var cl model.Client
	p.apply(&cl)
	if err := ctrl.model.SaveClient(&cl); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not save company"))
	}
	return respond(c, http.StatusCreated, toAPIClient(&cl))
}

func (ctrl *controller) apiClientUpdate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	cl, err := ctrl.model.LoadClient(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "company not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load company"))
	}
	var p clientPayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}
	if fields := validateClientPayload(&p); fields != nil {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields", fields))
	}
	p.apply(cl)
	if err := ctrl.model.SaveClient(cl); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not save company"))
	}
	return respond(c, http.StatusOK, toAPIClient(cl))
}

func (ctrl *controller) apiClientDelete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	if err := ctrl.model.DeleteClient(uint(id)); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not delete company"))
	}
	return c.NoContent(http.StatusNoContent)
}
