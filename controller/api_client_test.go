package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
)

func TestAPIClientList(t *testing.T) {
	e, _, _ := setupTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/companies", "")
	mustStatus(t, rec, http.StatusOK)

	var result []APIClient
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("companies count = %d, want 1", len(result))
	}
	if result[0].CompanyName != "Globex Corporation" {
		t.Errorf("companyName = %q, want %q", result[0].CompanyName, "Globex Corporation")
	}
	if result[0].CountryCode != "US" {
		t.Errorf("countryCode = %q, want %q", result[0].CountryCode, "US")
	}
}

func TestAPIClientGet(t *testing.T) {
	e, _, seed := setupTestAPI(t)

	rec := doJSON(e, http.MethodGet, fmt.Sprintf("/api/companies/%d", seed.Client.ID), "")
	mustStatus(t, rec, http.StatusOK)

	var result APIClient
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	if result.CompanyEmail != seed.Client.Email {
		t.Errorf("companyEmail = %q, want %q", result.CompanyEmail, seed.Client.Email)
	}
}

func TestAPIClientGetNotFound(t *testing.T) {
	e, _, _ := setupTestAPI(t)

	rec := doJSON(e, http.MethodGet, "/api/companies/9999", "")
	mustStatus(t, rec, http.StatusNotFound)
}

func TestAPIClientCreate(t *testing.T) {
	e, store, _ := setupTestAPI(t)

	body := `{"companyName":"Initech","companyEmail":"ap@initech.example","companyCountry":"Germany"}`
	rec := doJSON(e, http.MethodPost, "/api/companies", body)
	mustStatus(t, rec, http.StatusCreated)

	var result APIClient
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	if result.ID == 0 {
		t.Error("id should be assigned")
	}
	if result.CountryCode != "DE" {
		t.Errorf("countryCode = %q, want %q", result.CountryCode, "DE")
	}

	if _, err := store.LoadClient(result.ID); err != nil {
		t.Errorf("created client not persisted: %v", err)
	}
}

func TestAPIClientCreateValidation(t *testing.T) {
	e, _, _ := setupTestAPI(t)

	rec := doJSON(e, http.MethodPost, "/api/companies", `{"companyEmail":"not-an-address"}`)
	mustStatus(t, rec, http.StatusBadRequest)

	var result APIError
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("JSON unmarshal error: %v", err)
	}
	if result.Fields["companyName"] == "" {
		t.Error("expected a companyName field error")
	}
	if result.Fields["companyEmail"] == "" {
		t.Error("expected a companyEmail field error")
	}
}

func TestAPIClientUpdateAndDelete(t *testing.T) {
	e, store, seed := setupTestAPI(t)

	body := `{"companyName":"Globex International","companyEmail":"billing@globex.example"}`
	rec := doJSON(e, http.MethodPut, fmt.Sprintf("/api/companies/%d", seed.Client.ID), body)
	mustStatus(t, rec, http.StatusOK)

	cl, err := store.LoadClient(seed.Client.ID)
	if err != nil {
		t.Fatalf("load after update: %v", err)
	}
	if cl.CompanyName != "Globex International" {
		t.Errorf("companyName = %q after update", cl.CompanyName)
	}

	rec = doJSON(e, http.MethodDelete, fmt.Sprintf("/api/companies/%d", seed.Client.ID), "")
	mustStatus(t, rec, http.StatusNoContent)

	if _, err := store.LoadClient(seed.Client.ID); err == nil {
		t.Error("client should be gone after delete")
	}
}
