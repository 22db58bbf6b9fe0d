package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ascentware/invoicing/model"
	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type catalogItemPayload struct {
	ItemName    string `json:"itemName"`
	Description string `json:"description"`
}

func (ctrl *controller) apiCatalogItemList(c echo.Context) error {
	items, err := ctrl.model.LoadAllCatalogItems()
	if err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load item master"))
	}
	out := make([]APICatalogItem, len(items))
	for i, it := range items {
		out[i] = APICatalogItem{ID: it.ID, ItemName: it.ItemName, Description: it.Description}
	}
	return respond(c, http.StatusOK, out)
}

func (ctrl *controller) apiCatalogItemGet(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	it, err := ctrl.model.LoadCatalogItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "item not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load item"))
	}
	return respond(c, http.StatusOK, APICatalogItem{ID: it.ID, ItemName: it.ItemName, Description: it.Description})
}

func (ctrl *controller) apiCatalogItemCreate(c echo.Context) error {
	var p catalogItemPayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}
	if p.ItemName == "" {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields",
			map[string]string{"itemName": "Item name is required"}))
	}
	it := model.CatalogItem{ItemName: p.ItemName, Description: p.Description}
	if err := ctrl.model.SaveCatalogItem(&it); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not save item"))
	}
	return respond(c, http.StatusCreated, APICatalogItem{ID: it.ID, ItemName: it.ItemName, Description: it.Description})
}

func (ctrl *controller) apiCatalogItemUpdate(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	it, err := ctrl.model.LoadCatalogItem(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return respond(c, http.StatusNotFound, apiError("not_found", "item not found"))
		}
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not load item"))
	}
	var p catalogItemPayload
	if err := c.Bind(&p); err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid body"))
	}
	if p.ItemName == "" {
		return respond(c, http.StatusBadRequest, validationError("Please fix the highlighted fields",
			map[string]string{"itemName": "Item name is required"}))
	}
	it.ItemName = p.ItemName
	it.Description = p.Description
	if err := ctrl.model.SaveCatalogItem(it); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not save item"))
	}
	return respond(c, http.StatusOK, APICatalogItem{ID: it.ID, ItemName: it.ItemName, Description: it.Description})
}

func (ctrl *controller) apiCatalogItemDelete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return respond(c, http.StatusBadRequest, apiError("bad_request", "invalid id"))
	}
	if err := ctrl.model.DeleteCatalogItem(uint(id)); err != nil {
		return respond(c, http.StatusInternalServerError, apiError("db_error", "could not delete item"))
	}
	return c.NoContent(http.StatusNoContent)
}
