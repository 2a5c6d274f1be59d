package commands

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/pkg/checktree"
)

func TestCheckCommand_Metadata(t *testing.T) {
	if checkCmd.Use != "check [VALUE...]" {
		t.Errorf("Use = %q", checkCmd.Use)
	}
	for _, name := range []string{"null", "tree", "format", "detail", "pick"} {
		if checkCmd.Flags().Lookup(name) == nil {
			t.Errorf("--%s flag should be defined", name)
		}
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantOut  string
		wantCode int
	}{
		{
			name:     "passing value",
			args:     []string{"check", "24"},
			wantOut:  "✓ root passed\n",
			wantCode: errors.ExitSuccess,
		},
		{
			name:     "null value",
			args:     []string{"check", "--null"},
			wantOut:  "✗ root failed\nNOT_NULL:\n  argument is null\n",
			wantCode: errors.ExitCheckFailed,
		},
		{
			name: "two failures",
			args: []string{"check", "A3"},
			wantOut: "✗ root failed\n" +
				"non-null checks:\n" +
				"  digit checks:\n" +
				"    STRING_IF_DIGIT_THEN_EVEN:\n" +
				"      A3 contains non-even digits\n" +
				"    STRING_CONTAINS_ONLY_DIGITS:\n" +
				"      A3 is not digit-only\n",
			wantCode: errors.ExitCheckFailed,
		},
		{
			name:     "null value on digits tree",
			args:     []string{"check", "--null", "--tree", "digits"},
			wantOut:  "✓ digit checks passed\n",
			wantCode: errors.ExitSuccess,
		},
		{
			name:     "null value on non-null tree",
			args:     []string{"check", "--null", "--tree", "non-null"},
			wantOut:  "✓ non-null checks passed\n",
			wantCode: errors.ExitSuccess,
		},
		{
			name: "several values",
			args: []string{"check", "--null", "24"},
			wantOut: "value null:\n" +
				"✗ root failed\nNOT_NULL:\n  argument is null\n" +
				"\n" +
				"value \"24\":\n" +
				"✓ root passed\n",
			wantCode: errors.ExitCheckFailed,
		},
		{
			name: "shared subtree twice",
			args: []string{"check", "--tree", "digits-twice", "A3"},
			wantOut: "✗ root failed\n" +
				"digit checks:\n" +
				"  STRING_IF_DIGIT_THEN_EVEN:\n" +
				"    A3 contains non-even digits\n" +
				"  STRING_CONTAINS_ONLY_DIGITS:\n" +
				"    A3 is not digit-only\n" +
				"digit checks:\n" +
				"  STRING_IF_DIGIT_THEN_EVEN:\n" +
				"    A3 contains non-even digits\n" +
				"  STRING_CONTAINS_ONLY_DIGITS:\n" +
				"    A3 is not digit-only\n",
			wantCode: errors.ExitCheckFailed,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCommand(t, tt.args...)
			assert.Equal(t, tt.wantCode, errors.ExitCode(err), "err=%v", err)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}

func TestCheckCommand_UserErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no values", []string{"check"}},
		{"unknown tree", []string{"check", "--tree", "nope", "1"}},
		{"unknown format", []string{"check", "--format", "xml", "1"}},
		{"structured format with several values", []string{"check", "--format", "json", "1", "2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := executeCommand(t, tt.args...)
			if got := errors.ExitCode(err); got != errors.ExitUser {
				t.Errorf("exit code = %d, want %d (err=%v)", got, errors.ExitUser, err)
			}
		})
	}
}

func TestCheckCommand_JSON(t *testing.T) {
	out, _, err := executeCommand(t, "check", "--format", "json", "A3")
	require.True(t, errors.Is(err, errors.ErrCheckFailed))

	var o checktree.Outcome
	require.NoError(t, json.Unmarshal([]byte(out), &o))
	assert.Equal(t, "root", o.Name)
	assert.Equal(t, "fail-fast", o.Strategy)
	require.Len(t, o.Children, 2)
	assert.Equal(t, "non-null checks", o.Children[1].Name)
	assert.True(t, o.Children[1].Reported)
}

func TestCheckCommand_ConfigDefaults(t *testing.T) {
	t.Setenv("CHECKTREE_TREE", "digits")
	t.Setenv("CHECKTREE_DETAIL", "true")

	out, _, err := executeCommand(t, "check", "7")
	assert.Equal(t, errors.ExitCheckFailed, errors.ExitCode(err))
	assert.True(t, strings.HasPrefix(out, "✗ digit checks failed\n"), out)
	assert.Contains(t, out, "Detail:\n")
	assert.Contains(t, out, "✓ STRING_CONTAINS_ONLY_DIGITS")
}

func TestCheckCommand_FlagOverridesConfig(t *testing.T) {
	t.Setenv("CHECKTREE_TREE", "digits")

	out, _, err := executeCommand(t, "check", "--tree", "root", "24")
	require.NoError(t, err)
	assert.Equal(t, "✓ root passed\n", out)
}

func TestCheckCommand_Pick(t *testing.T) {
	orig := findNode
	t.Cleanup(func() { findNode = orig })

	var labels []string
	findNode = func(nodes []treeNode) (int, error) {
		for i, n := range nodes {
			labels = append(labels, n.label())
			if n.check.Name() == "digit checks" {
				return i, nil
			}
		}
		return -1, fuzzyfinder.ErrAbort
	}

	out, _, err := executeCommand(t, "check", "--pick", "4x")
	assert.Equal(t, errors.ExitCheckFailed, errors.ExitCode(err))
	assert.Equal(t, "✗ digit checks failed\nSTRING_CONTAINS_ONLY_DIGITS:\n  4x is not digit-only\n", out)
	assert.Contains(t, labels, "root › non-null checks › digit checks")
}

func TestCheckCommand_PickAborted(t *testing.T) {
	orig := findNode
	t.Cleanup(func() { findNode = orig })
	findNode = func([]treeNode) (int, error) { return 0, fuzzyfinder.ErrAbort }

	out, _, err := executeCommand(t, "check", "--pick", "A3")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDisplay(t *testing.T) {
	s := "A3"
	if got := display(&s); got != `"A3"` {
		t.Errorf("display(A3) = %s", got)
	}
	if got := display(nil); got != "null" {
		t.Errorf("display(nil) = %s", got)
	}
}
