package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

// NewQueryCommand creates the query command
func NewQueryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "query [text]",
		Short: "Ask a question about the ingested tasks",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			c, err := wire()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			raw, err := c.responder.Answer(context.Background(), strings.Join(args, " "))
			if err != nil {
				log.Fatalf("Query failed: %v", err)
			}

			// The no-match case is a bare JSON string rather than a chat payload
			var plain string
			if err := json.Unmarshal(raw, &plain); err == nil {
				fmt.Println(plain)
				return
			}

			var chat struct {
				Message struct {
					Content string `json:"content"`
				} `json:"message"`
			}
			if err := json.Unmarshal(raw, &chat); err != nil || chat.Message.Content == "" {
				// Fall back to the raw payload if the shape is unexpected
				fmt.Println(string(raw))
				return
			}

			rendered, err := glamour.Render(chat.Message.Content, "dark")
			if err != nil {
				fmt.Println(chat.Message.Content)
				return
			}
			fmt.Print(rendered)
		},
	}
}
