package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
)

func testService(isAdmin AdminPredicate) *Service {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return &Service{logger: logger, isAdmin: isAdmin}
}

func requestWithEmail(email string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if email == "" {
		return r
	}
	return r.WithContext(context.WithValue(r.Context(), contextKeyEmail, email))
}

func TestRequireAdminAllowsConfiguredEmail(t *testing.T) {
	s := testService(func(email string) bool { return email == "admin@example.org" })

	var reached bool
	handler := s.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithEmail("admin@example.org"))

	if !reached {
		t.Error("expected admin request to reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdminRedirectsNonAdminHome(t *testing.T) {
	s := testService(func(email string) bool { return false })

	handler := s.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("non-admin request must not reach the handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithEmail("user@example.org"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("expected redirect to /, got %q", loc)
	}
}

func TestRequireAdminRedirectsMissingIdentity(t *testing.T) {
	s := testService(func(email string) bool { return true })

	handler := s.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request with no identity must not reach the handler")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, requestWithEmail(""))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestStripTrailingSlash(t *testing.T) {
	s := testService(nil)

	handler := s.StripTrailingSlash(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/donate/?notice=ok", nil))

	if rec.Code != http.StatusMovedPermanently {
		t.Fatalf("expected 301, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/donate?notice=ok" {
		t.Errorf("expected /donate?notice=ok, got %q", loc)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("root path should pass through, got %d", rec.Code)
	}
}
