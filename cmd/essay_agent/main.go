// Package main provides the essay_agent CLI: the ENEM essay scoring HTTP API and
// offline analysis commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "essay_agent",
	Short: "ENEM essay scoring service",
	Long: `essay_agent scores Portuguese essays on the five ENEM competencies using a remote
grammar checker, a Portuguese tagger and a connective lexicon.

Configuration can be loaded from a JSON file using --config. Command-line flags override
config file values, which override environment variables.`,
	SilenceUsage: true,
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
