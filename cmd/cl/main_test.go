package main

import (
	"errors"
	"strings"
	"testing"

	"github.com/amonks/checklist/todo"
)

func TestRootCommandName(t *testing.T) {
	if rootCmd.Use != "cl" {
		t.Fatalf("expected root command name cl, got %q", rootCmd.Use)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	for _, name := range []string{"add", "edit", "list", "show", "toggle", "delete", "clear-completed", "reorder", "counts", "export", "import", "purge", "config", "tui"} {
		cmd, _, err := rootCmd.Find([]string{name})
		if err != nil || cmd == rootCmd {
			t.Fatalf("expected subcommand %s, got %v", name, err)
		}
	}
}

func TestIsSilentExit(t *testing.T) {
	if !isSilentExit(exitError{code: 1}) {
		t.Fatal("expected bare exit code to be silent")
	}
	if isSilentExit(exitError{code: 2, err: errors.New("boom")}) {
		t.Fatal("expected wrapped error to be reported")
	}
	if isSilentExit(errors.New("boom")) {
		t.Fatal("expected plain error to be reported")
	}
}

func TestFormatCounts(t *testing.T) {
	got := formatCounts(todo.Counts{Active: 3, Completed: 1, Overdue: 1, HighPriority: 2, MediumPriority: 1})
	want := strings.Join([]string{
		"Active:          3",
		"Completed:       1",
		"Overdue:         1",
		"High priority:   2",
		"Medium priority: 1",
		"Low priority:    0",
	}, "\n") + "\n"
	if got != want {
		t.Fatalf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestResolveDescriptionFromStdin(t *testing.T) {
	got, err := resolveDescriptionFromStdin("-", strings.NewReader("from stdin\n\n"))
	if err != nil {
		t.Fatalf("resolve description: %v", err)
	}
	if got != "from stdin" {
		t.Fatalf("expected trimmed stdin, got %q", got)
	}

	got, err = resolveDescriptionFromStdin("literal", strings.NewReader("ignored"))
	if err != nil {
		t.Fatalf("resolve description: %v", err)
	}
	if got != "literal" {
		t.Fatalf("expected literal description, got %q", got)
	}
}
