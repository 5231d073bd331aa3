package httphandler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	httphandler "github.com/mutablelogic/go-openai/pkg/httphandler"
	transport "github.com/mutablelogic/go-openai/pkg/transport"
)

///////////////////////////////////////////////////////////////////////////////
// SETTINGS TESTS

func TestSettings_GetRedacted(t *testing.T) {
	_, mux := newTestMux(t, "sk-0123456789", transport.NewStub(http.StatusOK, completion("")))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/settings", nil)
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp httphandler.SettingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if !resp.Set {
		t.Fatal("expected key to be set")
	}
	if resp.APIKey != "sk-**********" {
		t.Fatalf("expected redacted key, got %q", resp.APIKey)
	}
}

func TestSettings_GetEmpty(t *testing.T) {
	_, mux := newTestMux(t, "", transport.NewStub(http.StatusOK, completion("")))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/settings", nil)
	mux.ServeHTTP(w, r)

	var resp httphandler.SettingsResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatal(err)
	}
	if resp.Set || resp.APIKey != "" {
		t.Fatalf("expected no key, got %+v", resp)
	}
}

func TestSettings_PostAndDelete(t *testing.T) {
	a, mux := newTestMux(t, "", transport.NewStub(http.StatusOK, completion("")))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(`{"api_key":"  sk-new\t"}`))
	r.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if a.APIKey() != "sk-new" {
		t.Fatalf("expected sanitized key, got %q", a.APIKey())
	}

	w = httptest.NewRecorder()
	r = httptest.NewRequest(http.MethodDelete, "/settings", nil)
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if a.APIKey() != "" {
		t.Fatalf("expected key to be removed, got %q", a.APIKey())
	}
}

func TestSettings_PostEmpty(t *testing.T) {
	a, mux := newTestMux(t, "sk-keep", transport.NewStub(http.StatusOK, completion("")))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/settings", strings.NewReader(`{"api_key":"  "}`))
	r.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	if a.APIKey() != "sk-keep" {
		t.Fatalf("expected key to be kept, got %q", a.APIKey())
	}
}

func TestSettings_MethodNotAllowed(t *testing.T) {
	_, mux := newTestMux(t, "", transport.NewStub(http.StatusOK, completion("")))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPut, "/settings", nil)
	mux.ServeHTTP(w, r)
	if w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", w.Code)
	}
}
