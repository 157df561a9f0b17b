package editor

import (
	"strings"
	"testing"
)

func TestCommand(t *testing.T) {
	cases := []struct {
		name   string
		visual string
		editor string
		want   []string
	}{
		{name: "default", want: []string{DefaultEditor}},
		{name: "editor", editor: "nano", want: []string{"nano"}},
		{name: "visual wins", visual: "code --wait", editor: "nano", want: []string{"code", "--wait"}},
		{name: "blank visual ignored", visual: "   ", editor: "emacs -nw", want: []string{"emacs", "-nw"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("VISUAL", tc.visual)
			t.Setenv("EDITOR", tc.editor)

			got := Command()
			if strings.Join(got, " ") != strings.Join(tc.want, " ") {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestEditReportsExitStatus(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "false")

	err := Edit(t.TempDir() + "/todo.md")
	if err == nil || !strings.Contains(err.Error(), "exited with status 1") {
		t.Fatalf("expected exit status error, got %v", err)
	}
}
