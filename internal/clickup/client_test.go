package clickup

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kutbudev/clickup-bridge/internal/config"
)

func newTestClient(url string) *Client {
	return NewClient(config.ClickUpConfig{
		APIKey:  "pk_test_key",
		BaseURL: url,
	})
}

func TestClientSendsAuthHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{"spaces":[]}`))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	body, err := client.Get(context.Background(), "team/1/space")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if string(body) != `{"spaces":[]}` {
		t.Errorf("unexpected body: %s", body)
	}
	if gotAuth != "pk_test_key" {
		t.Errorf("Authorization header = %q, want %q", gotAuth, "pk_test_key")
	}
	if gotContentType != "application/json" {
		t.Errorf("Content-Type header = %q, want %q", gotContentType, "application/json")
	}
}

func TestClientNon2xxIsRemoteServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "team not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Get(context.Background(), "team/missing/space")
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var remoteErr *RemoteServiceError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("error is %T, want *RemoteServiceError", err)
	}
	if remoteErr.Endpoint != "team/missing/space" {
		t.Errorf("Endpoint = %q, want %q", remoteErr.Endpoint, "team/missing/space")
	}
}

func TestClientConnectionFailureIsRemoteServiceError(t *testing.T) {
	// Point at a server that is already closed
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	client := newTestClient(srv.URL)
	_, err := client.Get(context.Background(), "team/1/space")

	var remoteErr *RemoteServiceError
	if !errors.As(err, &remoteErr) {
		t.Fatalf("error is %T, want *RemoteServiceError", err)
	}
}
