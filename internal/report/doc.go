// Package report renders checktree evaluations for people and machines.
//
// Text output prints a pass/fail line followed by the exact indented
// failure message of the root, and optionally a per-node listing. JSON,
// YAML and TOML output encode the full [checktree.Outcome] tree.
//
// # Basic Usage
//
//	r := report.NewReporter(os.Stdout, report.FormatText)
//	if err := r.Report(checktree.Explain(tree, value)); err != nil {
//		return err
//	}
package report
