package commands

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/internal/logging"
	"github.com/thoreinstein/checktree/internal/report"
	"github.com/thoreinstein/checktree/internal/stringrules"
	"github.com/thoreinstein/checktree/pkg/checktree"
)

var (
	checkNull   bool
	checkTree   string
	checkFormat string
	checkDetail bool
	checkPick   bool
)

func init() {
	checkCmd.Flags().BoolVar(&checkNull, "null", false, "also evaluate a null value")
	checkCmd.Flags().StringVarP(&checkTree, "tree", "t", stringrules.DefaultTree,
		"check tree to evaluate ("+strings.Join(stringrules.Names(), ", ")+")")
	checkCmd.Flags().StringVarP(&checkFormat, "format", "f", string(report.FormatText),
		"output format: "+strings.Join(report.Formats(), ", "))
	checkCmd.Flags().BoolVar(&checkDetail, "detail", false, "add a per-node listing to text output")
	checkCmd.Flags().BoolVar(&checkPick, "pick", false, "interactively pick a sub-tree to evaluate")

	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check [VALUE...]",
	Short: "Evaluate values against a check tree",
	Long: `Evaluate each VALUE against a check tree and print a report.

The text report shows the root's failure message exactly as the tree renders
it: each failing check's name followed by its message, indented two spaces
per level. Structured formats (json, yaml, toml) include every node, its
strategy, and whether its failure was reported or filtered out.

The command exits with status 3 when any value fails.`,
	Example: `  checktree check 24 A3
  checktree check --null --tree digits
  checktree check --tree digits-twice A3
  checktree check --format yaml --pick 13`,
	Args: func(_ *cobra.Command, args []string) error {
		if len(args) == 0 && !checkNull {
			return errors.NewUserError(errors.New("no values given"), "Pass at least one VALUE or --null")
		}
		return nil
	},
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	treeName := cfg.Tree
	if cmd.Flags().Changed("tree") {
		treeName = checkTree
	}
	formatName := cfg.Format
	if cmd.Flags().Changed("format") {
		formatName = checkFormat
	}
	detail := cfg.Detail
	if cmd.Flags().Changed("detail") {
		detail = checkDetail
	}

	tree, err := stringrules.Lookup(treeName)
	if err != nil {
		return errors.NewUserError(err, "Run 'checktree tree --list' to see available trees")
	}
	format, err := report.ParseFormat(formatName)
	if err != nil {
		return errors.NewUserError(err, "Use --format with one of: "+strings.Join(report.Formats(), ", "))
	}

	values := make([]*string, 0, len(args)+1)
	if checkNull {
		values = append(values, nil)
	}
	for _, a := range args {
		values = append(values, &a)
	}

	if format != report.FormatText && len(values) > 1 {
		err := errors.Newf("format %s takes a single value, got %d", format, len(values))
		return errors.NewUserError(err, "Evaluate one value per invocation or use --format text")
	}

	if checkPick {
		picked, err := pickSubtree(tree)
		if err != nil {
			return err
		}
		if picked == nil {
			return nil
		}
		tree = picked
	}

	r := report.NewReporter(cmd.OutOrStdout(), format, report.WithDetail(detail))
	failed := 0
	for i, v := range values {
		if format == report.FormatText && len(values) > 1 {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			fmt.Fprintf(cmd.OutOrStdout(), "value %s:\n", display(v))
		}

		outcome := checktree.Explain(tree, v)
		traceOutcome(cmd, logger, outcome, nil)
		if !outcome.Passed {
			failed++
			logger.Info("check failed", "tree", tree.Name(), "value", display(v), "failure", outcome.Info())
		} else {
			logger.Debug("check passed", "tree", tree.Name(), "value", display(v))
		}

		if err := r.Report(outcome); err != nil {
			return errors.NewSystemError(err, "")
		}
	}

	if failed > 0 {
		return errors.NewCheckFailedError(failed)
	}
	return nil
}

// traceOutcome logs every evaluated node at trace level.
func traceOutcome(cmd *cobra.Command, logger *slog.Logger, o checktree.Outcome, parent []string) {
	if !logger.Enabled(cmd.Context(), logging.LevelTrace) {
		return
	}
	path := append(append([]string(nil), parent...), o.Name)
	logger.Log(cmd.Context(), logging.LevelTrace, "node evaluated",
		"path", strings.Join(path, "/"),
		"kind", string(o.Kind),
		"passed", o.Passed,
		"reported", o.Reported,
	)
	for _, c := range o.Children {
		traceOutcome(cmd, logger, c, path)
	}
}

// display quotes a value for logs and headings; nil prints as null.
func display(v *string) string {
	if v == nil {
		return "null"
	}
	return strconv.Quote(*v)
}

// writeTree prints one line per node with compound strategies in brackets.
func writeTree(w io.Writer, root checktree.Check[*string]) {
	checktree.Walk(root, func(path []string, c checktree.Check[*string]) bool {
		pad := strings.Repeat("  ", len(path)-1)
		switch n := c.(type) {
		case *checktree.Compound[*string]:
			fmt.Fprintf(w, "%s%s [%s]\n", pad, n.Name(), n.Strategy())
		case *checktree.Leaf[*string]:
			fmt.Fprintf(w, "%s%s\n", pad, n.Name())
		}
		return true
	})
}
