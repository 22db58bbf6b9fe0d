package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ascentware/invoicing/model"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type termPayload struct {
	Term        string `json:"term"`
	Description string `json:"description"`
}

// Term codes are free text. Codes that do not look like "Net <N>" are
// stored anyway and count as zero days when a due date is derived.
func validateTermPayload(p *termPayload) map[string]string {
	if p.Term == "" {
		return map[string]string{"term": "Term is required"}
	}
	return nil
}

func (ctrl *controller) apiTermList(c echo.Context) error {
	terms, err := ctrl.model.ListTerms()
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load terms"))
	}
	out := make([]APITerm, len(terms))
	for i, t := range terms {
		out[i] = APITerm{ID: t.ID, Term: t.Code, Description: t.Description}
	}
	return respond(c, http.StatusOK, out)
}

func (ctrl *controller) apiTermCreate(c echo.Context) error {
	var p termPayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}
	if fields := validateTermPayload(&p); fields != nil {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields", fields))
	}
	if ctrl.model.IsKnownTerm(p.Term) {
		return respond(c, http.StatusConflict, apiError("duplicate_term", "term already exists"))
	}
	t := model.Term{Code: p.Term, Description: p.Description}
	if err := ctrl.model.SaveTerm(&t); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not save term"))
	}
	return respond(c, http.StatusCreated, APITerm{ID: t.ID, Term: t.Code, Description: t.Description})
}

func (ctrl *controller) apiTermUpdate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	t, err := ctrl.model.LoadTerm(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "term not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load term"))
	}
	var p termPayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}
	if fields := validateTermPayload(&p); fields != nil {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields", fields))
	}
	t.Code = p.Term
	t.Description = p.Description
	if err := ctrl.model.SaveTerm(t); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not save term"))
	}
	return respond(c, http.StatusOK, APITerm{ID: t.ID, Term: t.Code, Description: t.Description})
}

func (ctrl *controller) apiTermDelete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	if err := ctrl.model.DeleteTerm(uint(id)); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not delete term"))
	}
	return c.NoContent(http.StatusNoContent)
}
