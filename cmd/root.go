package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the canvascal application
var rootCmd = &cobra.Command{
	Use:   "canvascal",
	Short: "Bridges Canvas LMS assignments into Google Calendar",
	Long: `canvascal is an MCP (Model Context Protocol) server that exposes Canvas LMS
assignments, quizzes and discussions to AI assistants and syncs them into
Google Calendar as timed events with reminders.

All due dates are converted from Canvas UTC timestamps to US Eastern time
(America/New_York) before they are displayed or written to the calendar.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "canvascal version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateDocsCmd())
}
