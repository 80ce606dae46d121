package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/kutbudev/clickup-bridge/internal/cli/commands"
)

// Version will be set during build with ldflags
var Version = "0.1.0"

func main() {
	root := &cobra.Command{
		Use:     "clickup-bridge",
		Short:   "Bridge between ClickUp tasks and a local LLM",
		Version: Version,
	}

	root.AddCommand(
		commands.NewServeCommand(),
		commands.NewIngestCommand(),
		commands.NewQueryCommand(),
	)

	if err := root.Execute(); err != nil {
		log.Fatal(err)
	}
}
