// Package main implements the agenda CLI tool.
package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Agenda - a personal task list in a plain text file",
	Long: `Agenda keeps a personal task list in a plain pipe-delimited text file.

Each line of the file is one task: name|year|month|day, with an optional
hour and minute for timed tasks. Run with no arguments in a terminal to get
the interactive menu, or use the add, delete, and list commands directly.`,
	Args: cobra.NoArgs,
	RunE: runRoot,
}
