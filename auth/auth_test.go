package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"passabola/activity"
	"passabola/middleware"
	"passabola/store"
	"passabola/userdir"
)

func newTestHandler() *Handler {
	mem := store.NewMemory()
	return NewHandler(userdir.New(mem), activity.NewLog(mem))
}

func doLogin(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Login(rec, req, nil)
	return rec
}

func TestLoginWithSeededAdmin(t *testing.T) {
	h := newTestHandler()

	rec := doLogin(t, h, `{"email":"admin@passabola.com","password":"admin123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		} `json:"user"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.User.ID != "1" || resp.User.Role != "admin" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	claims, err := middleware.ValidateJWT("Bearer " + resp.Token)
	if err != nil {
		t.Fatalf("issued token should validate: %v", err)
	}
	if claims.UserID != "1" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	h := newTestHandler()

	rec := doLogin(t, h, `{"email":"admin@passabola.com","password":"wrong"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	rec = doLogin(t, h, `{"email":"","password":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty fields, got %d", rec.Code)
	}
}

func TestLoginNeverEchoesPassword(t *testing.T) {
	h := newTestHandler()

	rec := doLogin(t, h, `{"email":"user@passabola.com","password":"user123"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "user123") || strings.Contains(rec.Body.String(), `"password"`) {
		t.Fatalf("password leaked into response: %s", rec.Body.String())
	}
}

func TestRegister(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Ana","email":"ana@x.com","password":"p1","position":"atacante"}`))
	rec := httptest.NewRecorder()
	h.Register(rec, req, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	// duplicate email, different case
	req = httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"Outra","email":"ANA@x.com","password":"p2"}`))
	rec = httptest.NewRecorder()
	h.Register(rec, req, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rec.Code)
	}
}
