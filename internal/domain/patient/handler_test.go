package patient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

const validBody = `{
	"name":"Jo","age":40,"gender":"M","disease":"flu","antecedent":"none",
	"diagnostic":"flu","medicaments":"none","planTraitement":"rest",
	"dateVaccination":"2023-01-01","allergies":"none","resultatsTest":"negative"
}`

func jsonRequest(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Create(t *testing.T) {
	h, e := newTestHandler()

	c, rec := jsonRequest(e, http.MethodPost, "/patients", validBody)
	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		Message string  `json:"message"`
		Patient Patient `json:"patient"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Message == "" {
		t.Error("expected message in response")
	}
	if resp.Patient.ID == uuid.Nil {
		t.Error("expected generated patient id in response")
	}
}

func TestHandler_Create_MissingFields(t *testing.T) {
	h, e := newTestHandler()

	c, _ := jsonRequest(e, http.MethodPost, "/patients", `{"name":"Jo","age":40}`)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandler_List(t *testing.T) {
	h, e := newTestHandler()

	if _, err := h.svc.Create(context.Background(), validInput()); err != nil {
		t.Fatal(err)
	}

	c, rec := jsonRequest(e, http.MethodGet, "/patients", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var patients []Patient
	if err := json.Unmarshal(rec.Body.Bytes(), &patients); err != nil {
		t.Fatalf("expected a bare JSON array: %v", err)
	}
	if len(patients) != 1 {
		t.Errorf("expected 1 patient, got %d", len(patients))
	}
}

func TestHandler_List_Empty(t *testing.T) {
	h, e := newTestHandler()

	c, rec := jsonRequest(e, http.MethodGet, "/patients", "")
	if err := h.List(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(rec.Body.String()) != "[]" {
		t.Errorf("expected empty JSON array, got %s", rec.Body.String())
	}
}

func TestHandler_Get(t *testing.T) {
	h, e := newTestHandler()

	created, err := h.svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	c, rec := jsonRequest(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	if err := h.Get(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Patient Patient `json:"patient"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Patient.ID != created.ID {
		t.Errorf("expected patient %s, got %s", created.ID, resp.Patient.ID)
	}
}

func TestHandler_Get_NotFound(t *testing.T) {
	h, e := newTestHandler()

	c, _ := jsonRequest(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}

func TestHandler_Get_MalformedID(t *testing.T) {
	h, e := newTestHandler()

	c, _ := jsonRequest(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404 for malformed id, got %d", httpErr.Code)
	}
}

func TestHandler_Update(t *testing.T) {
	h, e := newTestHandler()

	created, err := h.svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	body := strings.Replace(validBody, `"name":"Jo"`, `"name":"Jo Updated"`, 1)
	c, rec := jsonRequest(e, http.MethodPut, "/", body)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	if err := h.Update(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Message string  `json:"message"`
		Patient Patient `json:"patient"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.Patient.Name != "Jo Updated" {
		t.Errorf("expected updated name, got %s", resp.Patient.Name)
	}
}

func TestHandler_Update_MissingFields(t *testing.T) {
	h, e := newTestHandler()

	created, err := h.svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	c, _ := jsonRequest(e, http.MethodPut, "/", `{"name":"Jo"}`)
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	err = h.Update(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandler_Update_NotFound(t *testing.T) {
	h, e := newTestHandler()

	c, _ := jsonRequest(e, http.MethodPut, "/", validBody)
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.Update(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}

func TestHandler_Delete(t *testing.T) {
	h, e := newTestHandler()

	created, err := h.svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatal(err)
	}

	c, rec := jsonRequest(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	// Deleted record must no longer be retrievable.
	c, _ = jsonRequest(e, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(created.ID.String())

	err = h.Get(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", httpErr.Code)
	}
}

func TestHandler_Delete_NotFound(t *testing.T) {
	h, e := newTestHandler()

	c, _ := jsonRequest(e, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewString())

	err := h.Delete(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", httpErr.Code)
	}
}
