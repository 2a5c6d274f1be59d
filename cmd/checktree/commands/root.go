// Package commands implements the CLI commands for checktree.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/checktree/cmd"
	"github.com/thoreinstein/checktree/internal/config"
	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/internal/logging"
	"github.com/thoreinstein/checktree/internal/paths"
)

var (
	// verbosity holds the count of -v flags.
	verbosity int

	// quiet holds the value of the -q/--quiet flag.
	quiet bool

	// logFormat holds the value of the --log-format flag.
	logFormat string

	// logFile holds the path to the JSON log file.
	logFile string

	// configFile holds the value of the --config flag.
	configFile string

	// cfg is the loaded configuration, set in PersistentPreRunE.
	cfg *config.Config
)

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error log output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./"+paths.ConfigFileName+" or "+paths.ConfigFile()+")")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("checktree version {{.Version}}\n")

	// Errors are printed by main so exit codes stay under our control.
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "checktree",
	Short: "Evaluate values against composable check trees",
	Long: `checktree evaluates values against trees of named checks and prints an
indented report of every failure.

Leaves are single predicates. Compounds combine children with a strategy:
fail-fast reports only the first failing child, accumulate reports all of
them. Every child is evaluated either way.`,
	Example: `  # Evaluate a value against the default tree
  checktree check A3

  # Evaluate a null value
  checktree check --null

  # Show the per-node breakdown as JSON
  checktree check --format json A3

  # Print the structure of a tree
  checktree tree --tree digits`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return loadConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity
		if v == 0 {
			if val, ok := os.LookupEnv("CHECKTREE_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format := logging.Format(logFormat)
	if format != logging.FormatText && format != logging.FormatJSON {
		err := errors.Newf("invalid log format %q", logFormat)
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	logger := logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	})

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewSystemError(errors.Wrap(err, "opening log file"), "Check that the log file directory exists")
		}
		cobra.OnFinalize(func() { _ = f.Close() })
		fileLogger := logging.New(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		})
		logger = slog.New(logging.NewMultiHandler(logger.Handler(), fileLogger.Handler()))
	}

	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// loadConfig reads the config file and environment into cfg.
func loadConfig(cmd *cobra.Command) error {
	config.Init()
	loaded, err := config.Load(configFile)
	if err != nil {
		return errors.NewConfigError(err)
	}
	cfg = loaded

	logging.FromContext(cmd.Context()).Debug("configuration loaded",
		"format", cfg.Format, "tree", cfg.Tree, "detail", cfg.Detail)
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
