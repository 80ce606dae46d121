package commands

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))

// NewIngestCommand creates the ingest command
func NewIngestCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ingest",
		Short: "Pull all ClickUp tasks into the local store",
		Long:  "Walk the workspace hierarchy (spaces, folders, lists, tasks) and replace the record store with the result",
		Run: func(cmd *cobra.Command, args []string) {
			c, err := wire()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			records, err := c.walker.WalkAll(context.Background())
			if err != nil {
				log.Fatalf("Ingestion failed: %v", err)
			}

			if err := c.store.ReplaceAll(records); err != nil {
				log.Fatalf("Failed to persist records: %v", err)
			}

			fmt.Println(successStyle.Render(fmt.Sprintf("✅ Ingested %d tasks into %s", len(records), c.cfg.Store.Path)))
		},
	}
}
