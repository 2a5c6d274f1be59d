package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thoreinstein/checktree/internal/report"
	"github.com/thoreinstein/checktree/internal/stringrules"
	"github.com/thoreinstein/checktree/pkg/checktree"
)

// Field checks pass on a nil config: compounds evaluate every child, so
// they run even after CONFIG_PRESENT has failed.
var (
	configPresent = checktree.MustLeaf("CONFIG_PRESENT",
		func(c *Config) bool { return c != nil },
		func(*Config) string { return "config is nil" })

	versionSupported = checktree.MustLeaf("VERSION_SUPPORTED",
		func(c *Config) bool { return c == nil || c.Version >= 1 },
		func(c *Config) string { return fmt.Sprintf("version must be >= 1, got %d", c.Version) })

	formatKnown = checktree.MustLeaf("FORMAT_KNOWN",
		func(c *Config) bool { return c == nil || slices.Contains(report.Formats(), c.Format) },
		func(c *Config) string {
			return fmt.Sprintf("unknown format %q\nvalid: %s", c.Format, strings.Join(report.Formats(), ", "))
		})

	treeKnown = checktree.MustLeaf("TREE_KNOWN",
		func(c *Config) bool { return c == nil || slices.Contains(stringrules.Names(), c.Tree) },
		func(c *Config) string {
			return fmt.Sprintf("unknown tree %q\nvalid: %s", c.Tree, strings.Join(stringrules.Names(), ", "))
		})

	configChecks = checktree.MustCompound[*Config]("config", checktree.FailFast,
		configPresent,
		checktree.MustCompound[*Config]("fields", checktree.Accumulate,
			versionSupported,
			formatKnown,
			treeKnown,
		),
	)
)

// Validate checks cfg and returns every problem as one failure report, or
// nil when cfg is valid.
func Validate(cfg *Config) *checktree.CheckInfo {
	return configChecks.Apply(cfg)
}
