package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kutbudev/clickup-bridge/internal/config"
)

func TestChatSendsModelAndMessages(t *testing.T) {
	var got chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/chat" {
			t.Errorf("path = %s, want /api/chat", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.Write([]byte(`{"message":{"role":"assistant","content":"hi"},"done":true}`))
	}))
	defer srv.Close()

	client := NewClient(config.OllamaConfig{Host: srv.URL, Model: "deepseek-r1:14b"})
	raw, err := client.Chat(context.Background(), []Message{
		{Role: "system", Content: "instructions"},
		{Role: "user", Content: "context"},
	})
	if err != nil {
		t.Fatalf("Chat returned error: %v", err)
	}

	if got.Model != "deepseek-r1:14b" {
		t.Errorf("model = %q", got.Model)
	}
	if got.Stream {
		t.Error("stream should be disabled")
	}
	if len(got.Messages) != 2 || got.Messages[0].Role != "system" || got.Messages[1].Role != "user" {
		t.Errorf("messages = %+v", got.Messages)
	}

	// Body must come back verbatim
	if string(raw) != `{"message":{"role":"assistant","content":"hi"},"done":true}` {
		t.Errorf("raw response modified: %s", raw)
	}
}

func TestChatNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(config.OllamaConfig{Host: srv.URL, Model: "missing"})
	if _, err := client.Chat(context.Background(), []Message{{Role: "user", Content: "x"}}); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
