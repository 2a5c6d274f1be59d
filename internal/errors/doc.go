// Package errors provides error handling conventions for the checktree CLI.
//
// It re-exports the wrapping helpers of github.com/cockroachdb/errors,
// defines sentinel errors for common failure conditions, and an ExitError
// type that carries a process exit code.
//
// A failing check is not an error inside the evaluator; only the CLI turns
// a failed evaluation into [ErrCheckFailed] so it can exit with
// [ExitCheckFailed].
//
// # Sentinel Errors
//
//	if errors.Is(err, cterrors.ErrUnknownTree) {
//	    // list the registered trees
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): every value passed
//   - ExitUser (1): invalid input or configuration
//   - ExitSystem (2): I/O or terminal failure
//   - ExitCheckFailed (3): at least one value failed
//
// # ExitError
//
//	err := cterrors.NewUserError(cterrors.ErrInvalidFormat, "Use text, json, yaml or toml")
//	os.Exit(cterrors.ExitCode(err))
package errors
