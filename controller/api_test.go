package controller

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ascentware/invoicing/fixtures"
	"github.com/ascentware/invoicing/model"
	"github.com/labstack/echo/v4"
)

func setupTestAPI(t *testing.T) (*echo.Echo, *model.Store, fixtures.SeededData) {
	t.Helper()
	store := fixtures.NewTestStore(t)
	seed := fixtures.SeedTestData(t, store)

	e := echo.New()
	ctrl := &controller{model: store}
	ctrl.apiInit(e)

	return e, store, seed
}

// doJSON runs one request through the full router and returns the recorder.
func doJSON(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func mustStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("Status = %d, want %d; body: %s", rec.Code, want, rec.Body.String())
	}
}
