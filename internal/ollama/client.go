package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/kutbudev/clickup-bridge/internal/config"
)

// Message is one turn of a chat conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client talks to a local Ollama instance over HTTP
type Client struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewClient creates an Ollama chat client from configuration
func NewClient(cfg config.OllamaConfig) *Client {
	return &Client{
		baseURL: cfg.Host,
		model:   cfg.Model,
		client: &http.Client{
			Timeout: 120 * time.Second, // generation can take a while
		},
	}
}

// chatRequest is the Ollama /api/chat request format
type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream"`
}

// Chat sends a non-streaming chat request and returns the raw response
// payload. Callers pass the body through untouched, so no fields are
// reinterpreted here.
func (c *Client) Chat(ctx context.Context, messages []Message) (json.RawMessage, error) {
	reqBody := chatRequest{
		Model:    c.model,
		Messages: messages,
		Stream:   false,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama error (status %d): %s", resp.StatusCode, string(body))
	}

	return json.RawMessage(body), nil
}
