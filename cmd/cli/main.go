package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/myrjola/reportdesk/cmd/cli/layout"
	"github.com/myrjola/reportdesk/cmd/cli/reportfile"
	"github.com/spf13/cobra"
)

func init() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	rootCmd.AddGroup(layout.Group)
	rootCmd.AddCommand(layout.Sections)
	rootCmd.AddGroup(reportfile.Group)
	rootCmd.AddCommand(reportfile.Validate)
	rootCmd.AddCommand(reportfile.Summary)
}

var rootCmd = &cobra.Command{
	Use:  "reportdesk-cli",
	Long: `Command line utilities for Report Desk https://github.com/myrjola/reportdesk`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
