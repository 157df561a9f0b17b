package listflags

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestAddJSONFlagBindsTarget(t *testing.T) {
	var asJSON bool
	cmd := &cobra.Command{Use: "example"}
	AddJSONFlag(cmd, &asJSON)

	if err := cmd.Flags().Set("json", "true"); err != nil {
		t.Fatalf("set json: %v", err)
	}
	if !asJSON {
		t.Fatal("expected --json to set the target")
	}
}

func TestAddJSONFlagWithoutTarget(t *testing.T) {
	cmd := &cobra.Command{Use: "example"}
	AddJSONFlag(cmd, nil)

	if cmd.Flags().Lookup("json") == nil {
		t.Fatal("expected json flag to be registered")
	}
}
