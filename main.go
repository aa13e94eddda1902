// Package main is the entry point for the typeahead command.
package main

import (
	"os"

	"github.com/billie-coop/typeahead/internal/cli"
	"github.com/billie-coop/typeahead/internal/logging"
)

func main() {
	defer func() {
		if err := logging.Close(); err != nil {
			os.Stderr.WriteString("Error closing log: " + err.Error() + "\n")
		}
	}()

	if err := cli.Execute(); err != nil {
		logging.Error("command failed", "error", err)
		logging.Close()
		os.Exit(1)
	}
}
