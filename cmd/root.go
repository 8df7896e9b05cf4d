// Package cmd implements the CLI commands for pastewiki using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pastewiki",
	Short: "pastewiki — convert pasted rich text into Jira wiki markup",
	Long: `pastewiki converts rich-text HTML, as copied from a word processor or a web
page, into Jira/Confluence wiki markup escaped as a single line that can be
dropped between double quotes.

Usage:
  pastewiki convert [file|url|-] [flags]`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
