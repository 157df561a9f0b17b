package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestEditorModeUse(t *testing.T) {
	cases := []struct {
		name        string
		mode        editorMode
		hasInput    bool
		interactive bool
		want        bool
	}{
		{name: "interactive without input", interactive: true, want: true},
		{name: "piped without input", want: false},
		{name: "input given", hasInput: true, interactive: true, want: false},
		{name: "edit with input", mode: editorMode{force: true}, hasInput: true, want: true},
		{name: "no-edit interactive", mode: editorMode{never: true}, interactive: true, want: false},
		{name: "edit beats no-edit", mode: editorMode{force: true, never: true}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.mode.use(tc.hasInput, tc.interactive); got != tc.want {
				t.Fatalf("use(%v, %v) = %v, want %v", tc.hasInput, tc.interactive, got, tc.want)
			}
		})
	}
}

func TestEditorModeRegister(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}
	var mode editorMode
	mode.register(cmd)

	if err := cmd.ParseFlags([]string{"-e", "--no-edit"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if !mode.force || !mode.never {
		t.Fatalf("expected both flags set, got %+v", mode)
	}
}

func TestHasChangedFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "edit"}
	cmd.Flags().String("text", "", "")
	cmd.Flags().String("description", "", "")

	if hasChangedFlags(cmd, "text", "description") {
		t.Fatal("expected no changed flags")
	}
	if err := cmd.Flags().Set("description", "hello"); err != nil {
		t.Fatalf("set description: %v", err)
	}
	if !hasChangedFlags(cmd, "text", "description") {
		t.Fatal("expected changed flags")
	}
}
