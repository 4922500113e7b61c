package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	gymapi "github.com/ethiofit/gym-api"
	"github.com/ethiofit/gym-api/auth"
)

func TestAuthenticate_MissingToken(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	resp := httptest.NewRecorder()

	Authenticate(newTokens(t))(next).ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
	if called {
		t.Fatalf("wrapped handler must not run without a token")
	}
}

func TestAuthenticate_InvalidAndExpiredTokens(t *testing.T) {
	tokens := newTokens(t)

	expiredMinter, err := auth.NewTokens("test-secret", -time.Minute)
	if err != nil {
		t.Fatalf("NewTokens error: %v", err)
	}
	expired, err := expiredMinter.Issue("account-1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	for name, token := range map[string]string{
		"garbage": "not-a-token",
		"expired": expired,
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
		req.Header.Set(TokenHeader, token)
		resp := httptest.NewRecorder()

		next := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
			t.Fatalf("%s: wrapped handler must not run", name)
		})
		Authenticate(tokens)(next).ServeHTTP(resp, req)

		if resp.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status 401, got %d", name, resp.Code)
		}
	}
}

func TestAuthenticate_ValidTokenAttachesAccount(t *testing.T) {
	tokens := newTokens(t)
	token, err := tokens.Issue("account-1")
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	var gotID string
	next := http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		id, ok := AccountID(r.Context())
		if !ok {
			t.Fatalf("expected account id on context")
		}
		gotID = id
	})

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set(TokenHeader, token)
	resp := httptest.NewRecorder()

	Authenticate(tokens)(next).ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if gotID != "account-1" {
		t.Fatalf("account id mismatch: got %q", gotID)
	}
}

// End-to-end over the same route shape main wires up: submit a lead, log in,
// then read the list back with the issued token.
func TestProtectedLeadFlow(t *testing.T) {
	tokens := newTokens(t)

	var stored []gymapi.Lead
	leads := &fakeLeadService{
		createFn: func(ctx context.Context, lead gymapi.Lead) error {
			stored = append(stored, lead)
			return nil
		},
		listFn: func(ctx context.Context) ([]gymapi.Lead, error) {
			return stored, nil
		},
	}

	lh := NewLeadHandler(leads, testLog())
	ah := NewAuthHandler(seededAccounts(t, "ElitePassword123"), tokens, testLog())

	r := chi.NewRouter()
	r.Post("/api/auth/login", ah.Login)
	r.Post("/api/leads", lh.Create)
	r.Group(func(r chi.Router) {
		r.Use(Authenticate(tokens))
		r.Get("/api/leads", lh.List)
	})

	// Public submission.
	body, _ := json.Marshal(map[string]string{
		"name":  "Abebe",
		"email": "a@x.com",
		"phone": "+251911111111",
	})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/leads", bytes.NewReader(body)))
	if resp.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.Code)
	}

	// Listing without a token is rejected.
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/api/leads", nil))
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated list: expected 401, got %d", resp.Code)
	}

	// Login and retry with the token.
	body, _ = json.Marshal(map[string]string{
		"email":    "admin@sweatbox.com",
		"password": "ElitePassword123",
	})
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body)))
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.Code)
	}
	var login loginResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &login); err != nil {
		t.Fatalf("decoding login response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	req.Header.Set(TokenHeader, login.Token)
	resp = httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("authenticated list: expected 200, got %d", resp.Code)
	}

	var out listLeadsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding list response: %v", err)
	}
	if out.Count != 1 {
		t.Fatalf("expected count 1, got %d", out.Count)
	}
	if out.Data[0].Program != gymapi.DefaultProgram {
		t.Fatalf("expected default program, got %q", out.Data[0].Program)
	}
}
