package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestGet_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-123" {
			t.Errorf("expected bearer token header, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	var out struct {
		ID string `json:"id"`
	}
	if apiErr := client.Get(context.Background(), "tok-123", "/order/detail", nil, &out); apiErr != nil {
		t.Fatalf("unexpected error: %v", apiErr)
	}
	if out.ID != "abc" {
		t.Errorf("expected id 'abc', got %q", out.ID)
	}
}

func TestDo_BackendErrorField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"produto sem preço definido"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	apiErr := client.PostJSON(context.Background(), "tok", "/order/add", map[string]string{}, nil)
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if apiErr.Kind != KindBackend {
		t.Errorf("expected kind backend, got %s", apiErr.Kind)
	}
	if apiErr.Message != "produto sem preço definido" {
		t.Errorf("expected specific backend message, got %q", apiErr.Message)
	}
}

func TestDo_MessageFieldFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"pedido inválido"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	apiErr := client.PostJSON(context.Background(), "tok", "/order", map[string]string{}, nil)
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if apiErr.Message != "pedido inválido" {
		t.Errorf("expected message field to win, got %q", apiErr.Message)
	}
}

func TestDo_GenericFallbackMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`boom`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	apiErr := client.Get(context.Background(), "tok", "/category", nil, nil)
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if apiErr.Message == "" {
		t.Error("expected a generic fallback message")
	}
	if apiErr.Status != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", apiErr.Status)
	}
}

func TestDo_AuthKind(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"token inválido"}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL)

	apiErr := client.Get(context.Background(), "expired", "/sizes", url.Values{}, nil)
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if apiErr.Kind != KindAuth {
		t.Errorf("expected kind auth for 401, got %s", apiErr.Kind)
	}
}

func TestDo_NetworkKind(t *testing.T) {
	client := NewClient("http://127.0.0.1:1")

	apiErr := client.Get(context.Background(), "tok", "/category", nil, nil)
	if apiErr == nil {
		t.Fatal("expected error")
	}
	if apiErr.Kind != KindNetwork {
		t.Errorf("expected kind network, got %s", apiErr.Kind)
	}
}
