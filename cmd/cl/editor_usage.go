package main

import "github.com/spf13/cobra"

// editorMode holds a command's --edit and --no-edit flags.
type editorMode struct {
	force bool
	never bool
}

func (m *editorMode) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&m.force, "edit", "e", false, "Open $EDITOR (default if interactive)")
	cmd.Flags().BoolVar(&m.never, "no-edit", false, "Do not open $EDITOR")
}

// use reports whether to open the editor. --edit always wins, --no-edit or
// any field given on the command line suppresses it, and otherwise the
// editor opens only for an interactive session.
func (m editorMode) use(hasInput, interactive bool) bool {
	switch {
	case m.force:
		return true
	case m.never, hasInput:
		return false
	default:
		return interactive
	}
}

func hasChangedFlags(cmd *cobra.Command, flags ...string) bool {
	for _, flag := range flags {
		if cmd.Flags().Changed(flag) {
			return true
		}
	}
	return false
}
