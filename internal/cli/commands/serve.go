package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/kutbudev/clickup-bridge/internal/web"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  "Expose the ingest and query triggers over HTTP",
		Run: func(cmd *cobra.Command, args []string) {
			c, err := wire()
			if err != nil {
				log.Fatalf("Failed to load configuration: %v", err)
			}

			server := web.NewServer(c.walker, c.store, c.responder)
			log.Printf("Listening on %s", c.cfg.Server.Addr())
			if err := server.Run(c.cfg.Server.Addr()); err != nil {
				log.Fatalf("Server stopped: %v", err)
			}
		},
	}
}
