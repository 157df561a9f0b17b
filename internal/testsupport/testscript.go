package testsupport

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/amonks/checklist/todo"
	"github.com/rogpeppe/go-internal/testscript"
)

var clBinary struct {
	once sync.Once
	path string
	err  error
}

// BuildCL compiles ./cmd/cl into a temp directory on first use and returns
// the binary path. Later calls reuse the same binary.
func BuildCL(t testing.TB) string {
	t.Helper()

	clBinary.once.Do(func() {
		clBinary.path, clBinary.err = buildCL()
	})
	if clBinary.err != nil {
		t.Fatal(clBinary.err)
	}
	return clBinary.path
}

func buildCL() (string, error) {
	gomod, err := exec.Command("go", "env", "GOMOD").Output()
	if err != nil {
		return "", fmt.Errorf("locate module: %w", err)
	}
	root := filepath.Dir(strings.TrimSpace(string(gomod)))
	if root == "." || root == "" {
		return "", fmt.Errorf("locate module: not inside a Go module")
	}

	binDir, err := os.MkdirTemp("", "cl-bin-")
	if err != nil {
		return "", err
	}
	path := filepath.Join(binDir, "cl")

	build := exec.Command("go", "build", "-o", path, "./cmd/cl")
	build.Dir = root
	if output, err := build.CombinedOutput(); err != nil {
		return "", fmt.Errorf("build cl: %w: %s", err, strings.TrimSpace(string(output)))
	}
	return path, nil
}

// SetupScriptEnv gives each script the cl binary as $CL, a private HOME,
// colorless output and an editor that always fails.
func SetupScriptEnv(t testing.TB, env *testscript.Env) error {
	t.Helper()

	home := filepath.Join(env.WorkDir, "home")
	if err := EnsureHomeDirs(home); err != nil {
		return err
	}

	for key, value := range map[string]string{
		"CL":       BuildCL(t),
		"HOME":     home,
		"NO_COLOR": "1",
		"VISUAL":   "",
		"EDITOR":   "false",
	} {
		env.Setenv(key, value)
	}
	return nil
}

// ScriptCommands returns the custom commands available to cl scripts.
func ScriptCommands() map[string]func(ts *testscript.TestScript, neg bool, args []string) {
	return map[string]func(ts *testscript.TestScript, neg bool, args []string){
		"envset": CmdEnvSet,
		"todoid": CmdTodoID,
	}
}

// CmdEnvSet implements "envset VAR FILE", setting VAR to the trimmed file contents.
func CmdEnvSet(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("envset does not support negation")
	}
	if len(args) != 2 {
		ts.Fatalf("usage: envset VAR FILE")
	}
	ts.Setenv(args[0], strings.TrimSpace(ts.ReadFile(args[1])))
}

// CmdTodoID implements "todoid FILE TEXT VAR". FILE holds a JSON todo list,
// and VAR is set to the ID of the first todo whose text is TEXT.
func CmdTodoID(ts *testscript.TestScript, neg bool, args []string) {
	if neg {
		ts.Fatalf("todoid does not support negation")
	}
	if len(args) != 3 {
		ts.Fatalf("usage: todoid FILE TEXT VAR")
	}
	file, text, name := args[0], args[1], args[2]

	var items []todo.Todo
	if err := json.Unmarshal([]byte(ts.ReadFile(file)), &items); err != nil {
		ts.Fatalf("parse todo list %s: %v", file, err)
	}
	for _, item := range items {
		if item.Text == text {
			ts.Setenv(name, item.ID)
			return
		}
	}
	ts.Fatalf("no todo with text %q in %s", text, file)
}
