package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thoreinstein/checktree/internal/config"
	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/internal/paths"
)

func init() {
	color.NoColor = true
}

// resetFlags restores every flag to its default so commands can run
// repeatedly in one process.
func resetFlags() {
	reset := func(fs *pflag.FlagSet) {
		fs.VisitAll(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	reset(rootCmd.PersistentFlags())
	for _, c := range []*cobra.Command{checkCmd, treeCmd} {
		reset(c.Flags())
	}
}

// executeCommand runs the root command with args in an isolated config
// environment and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	config.Reset()
	t.Cleanup(config.Reset)
	t.Setenv(paths.ConfigDirEnv, t.TempDir())
	t.Chdir(t.TempDir())
	resetFlags()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRoot_Help(t *testing.T) {
	out, _, err := executeCommand(t)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out, "checktree evaluates values") {
		t.Errorf("help output missing long description: %q", out)
	}
}

func TestRoot_QuietAndVerbose(t *testing.T) {
	_, _, err := executeCommand(t, "-q", "-v", "tree")
	if errors.ExitCode(err) != errors.ExitUser {
		t.Errorf("exit code = %d, want %d (err=%v)", errors.ExitCode(err), errors.ExitUser, err)
	}
}

func TestRoot_InvalidLogFormat(t *testing.T) {
	_, _, err := executeCommand(t, "--log-format", "xml", "tree")
	if errors.ExitCode(err) != errors.ExitUser {
		t.Errorf("exit code = %d, want %d (err=%v)", errors.ExitCode(err), errors.ExitUser, err)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(p, []byte("tree: missing\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := executeCommand(t, "--config", p, "tree")
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Fatalf("error = %v, want ErrInvalidConfig", err)
	}
	if !strings.Contains(err.Error(), "TREE_KNOWN") {
		t.Errorf("error should name the failing check: %v", err)
	}
}

func TestRoot_ConfigFlagDoesNotLeak(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(p, []byte("tree: digits\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	out, _, err := executeCommand(t, "--config", p, "check", "24")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "✓ digit checks passed\n" {
		t.Errorf("with --config: output = %q", out)
	}

	out, _, err = executeCommand(t, "check", "24")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if out != "✓ root passed\n" {
		t.Errorf("without --config: output = %q, want the default tree", out)
	}
}

func TestRoot_ConfigHelpNamesDefaultFile(t *testing.T) {
	f := rootCmd.PersistentFlags().Lookup("config")
	if f == nil {
		t.Fatal("--config flag should be defined")
	}
	if !strings.Contains(f.Usage, paths.ConfigFileName) {
		t.Errorf("--config usage should name %s: %q", paths.ConfigFileName, f.Usage)
	}
}

func TestRoot_LogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "checktree.log")

	_, _, err := executeCommand(t, "-vv", "--log-file", logPath, "check", "24")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"check passed"`) {
		t.Errorf("log file missing check record: %s", data)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	for _, want := range []string{"checktree version", "commit:", "built:"} {
		if !strings.Contains(out, want) {
			t.Errorf("version output missing %q: %q", want, out)
		}
	}
}
