package main

import (
	"errors"
	"os"

	"github.com/amonks/checklist/internal/tui"
	"github.com/amonks/checklist/internal/ui"
	"github.com/spf13/cobra"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse and edit todos interactively",
	Args:  cobra.NoArgs,
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	if !ui.IsTerminal(os.Stdin) || !ui.IsTerminal(os.Stdout) {
		return errors.New("tui requires a terminal")
	}
	return withTodoSession(cmd, func(session *todoSession) error {
		return tui.Run(cmd.Context(), session.store)
	})
}
