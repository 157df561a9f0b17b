// Package main implements the cl CLI tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/amonks/checklist/internal/ui"
	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		var exitErr interface{ ExitCode() int }
		if errors.As(err, &exitErr) {
			if !isSilentExit(err) {
				printError(err)
			}
			os.Exit(exitErr.ExitCode())
		}
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, ui.Error("Error: "+err.Error()))
}

var rootCmd = &cobra.Command{
	Use:           "cl",
	Short:         "Checklist - a prioritized todo list",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootConfigPath string
	rootScope      string
	rootBackend    string
	rootLogLevel   string
)

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&rootConfigPath, "config", "", "Config file to use instead of the global and project files")
	flags.StringVar(&rootScope, "scope", "", "Todo list scope (default from config, or \"default\")")
	flags.StringVar(&rootBackend, "backend", "", "Storage backend (file, sqlite, memory, none)")
	flags.StringVar(&rootLogLevel, "log-level", "", "Log level (debug, info, warn, error)")
}
