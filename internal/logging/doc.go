// Package logging provides structured logging for the checktree CLI using slog.
//
// Text output goes through [Handler], which colors levels and keys on a
// terminal and prints multi-line values (such as rendered check reports)
// on their own indented lines. JSON output uses the standard slog handler.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Debug("evaluated", "value", v, "failure", info)
package logging
