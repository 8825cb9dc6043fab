package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	h := NewHandler(svc)
	e := echo.New()
	return h, e
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_Register(t *testing.T) {
	h, e := newTestHandler()

	body := `{"firstName":"Ana","username":"ana1","email":"ana@x.com","password":"pw123","confirmPassword":"pw123"}`
	c, rec := postJSON(e, "/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp map[string]string
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["message"] == "" {
		t.Error("expected message in response body")
	}
}

func TestHandler_Register_MissingFields(t *testing.T) {
	h, e := newTestHandler()

	c, _ := postJSON(e, "/register", `{"firstName":"Ana"}`)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}

func TestHandler_Register_Duplicate(t *testing.T) {
	h, e := newTestHandler()

	body := `{"firstName":"Ana","username":"ana1","email":"ana@x.com","password":"pw123","confirmPassword":"pw123"}`
	c, rec := postJSON(e, "/register", body)
	if err := h.Register(c); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	// Same email, different username.
	body = `{"firstName":"Ana","username":"ana2","email":"ana@x.com","password":"pw123","confirmPassword":"pw123"}`
	c, _ = postJSON(e, "/register", body)

	err := h.Register(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for duplicate, got %d", httpErr.Code)
	}
}

func TestHandler_Login(t *testing.T) {
	h, e := newTestHandler()

	if err := h.svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	c, rec := postJSON(e, "/login", `{"email":"ana@x.com","password":"pw123"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var resp map[string]interface{}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	user, ok := resp["user"].(map[string]interface{})
	if !ok {
		t.Fatal("expected user object in response")
	}
	if user["email"] != "ana@x.com" {
		t.Errorf("unexpected email: %v", user["email"])
	}
	if _, leaked := user["password"]; leaked {
		t.Error("password hash leaked in login response")
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Error("password hash leaked in login response")
	}
}

func TestHandler_Login_UnknownEmail(t *testing.T) {
	h, e := newTestHandler()

	c, _ := postJSON(e, "/login", `{"email":"nobody@x.com","password":"pw123"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for unknown email on login, got %d", httpErr.Code)
	}
}

func TestHandler_Login_WrongPassword(t *testing.T) {
	h, e := newTestHandler()

	if err := h.svc.Register(context.Background(), validRegistration()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	c, _ := postJSON(e, "/login", `{"email":"ana@x.com","password":"bad"}`)

	err := h.Login(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("expected echo.HTTPError, got %T", err)
	}
	if httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", httpErr.Code)
	}
}
