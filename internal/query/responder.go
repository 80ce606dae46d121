package query

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kutbudev/clickup-bridge/internal/models"
	"github.com/kutbudev/clickup-bridge/internal/ollama"
)

// NoMatchResponse is returned when no stored record matches the query
const NoMatchResponse = "No matching tasks found."

const systemPrompt = "You are an AI assistant that retrieves tasks assigned to a user from ClickUp data."

// RecordSource provides the stored task records
type RecordSource interface {
	LoadAll() []models.TaskRecord
}

// ChatClient sends a chat conversation to the language model
type ChatClient interface {
	Chat(ctx context.Context, messages []ollama.Message) (json.RawMessage, error)
}

// Responder answers free-text questions about the stored task records by
// substring-matching them and handing the matches to the language model.
type Responder struct {
	source RecordSource
	llm    ChatClient
}

// NewResponder creates a responder over the given record source and model client
func NewResponder(source RecordSource, llm ChatClient) *Responder {
	return &Responder{source: source, llm: llm}
}

// Answer matches the query against every record's title and description
// (case-insensitive substring) and forwards the rendered matches to the
// model. With zero matches it returns the fixed no-match response without
// contacting the model. The model's payload is returned unmodified.
func (r *Responder) Answer(ctx context.Context, queryText string) (json.RawMessage, error) {
	needle := strings.ToLower(queryText)

	var blocks []string
	for _, task := range r.source.LoadAll() {
		if strings.Contains(strings.ToLower(task.Title), needle) ||
			strings.Contains(strings.ToLower(task.Description), needle) {
			blocks = append(blocks, renderTask(task))
		}
	}

	if len(blocks) == 0 {
		return json.Marshal(NoMatchResponse)
	}

	messages := []ollama.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: strings.Join(blocks, "\n\n")},
	}

	return r.llm.Chat(ctx, messages)
}

// renderTask formats one record as the fixed context block shown to the
// model, substituting human-readable placeholders for empty fields.
func renderTask(task models.TaskRecord) string {
	return fmt.Sprintf(
		"Title: %s\nDescription: %s\nStatus: %s\nPriority: %s\nDue Date: %s\nCreated Date: %s\nAssigned To: %s",
		orDefault(task.Title, "No title"),
		orDefault(task.Description, "No description"),
		orDefault(task.Status, "Unknown"),
		orDefault(task.Priority, "Not set"),
		orDefault(task.DueDate, "None"),
		orDefault(task.CreatedDate, "None"),
		renderAssignees(task.AssignedTo),
	)
}

func renderAssignees(assignees []map[string]interface{}) string {
	if len(assignees) == 0 {
		return "None"
	}
	data, err := json.Marshal(assignees)
	if err != nil {
		return "None"
	}
	return string(data)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
