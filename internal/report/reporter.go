package report

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/pkg/checktree"
)

// Format specifies the output format for reports.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
	// FormatYAML produces YAML output.
	FormatYAML Format = "yaml"
	// FormatTOML produces TOML output.
	FormatTOML Format = "toml"
)

// Formats returns the supported format names.
func Formats() []string {
	return []string{string(FormatText), string(FormatJSON), string(FormatYAML), string(FormatTOML)}
}

// ParseFormat validates s as a report format.
func ParseFormat(s string) (Format, error) {
	if !slices.Contains(Formats(), s) {
		return "", errors.Wrapf(errors.ErrInvalidFormat, "%q (valid: %s)", s, strings.Join(Formats(), ", "))
	}
	return Format(s), nil
}

// Reporter formats and writes evaluation outcomes.
type Reporter struct {
	out    io.Writer
	format Format
	detail bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithDetail adds a per-node listing to text output.
func WithDetail(detail bool) Option {
	return func(r *Reporter) { r.detail = detail }
}

// NewReporter creates a new Reporter.
func NewReporter(out io.Writer, format Format, opts ...Option) *Reporter {
	r := &Reporter{
		out:    out,
		format: format,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Report writes one outcome to the output.
func (r *Reporter) Report(o checktree.Outcome) error {
	switch r.format {
	case FormatText, "":
		return r.reportText(o)
	case FormatJSON:
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(o), "encoding JSON report")
	case FormatYAML:
		enc := yaml.NewEncoder(r.out)
		enc.SetIndent(2)
		if err := enc.Encode(o); err != nil {
			return errors.Wrap(err, "encoding YAML report")
		}
		return errors.Wrap(enc.Close(), "flushing YAML report")
	case FormatTOML:
		return errors.Wrap(toml.NewEncoder(r.out).Encode(o), "encoding TOML report")
	default:
		return errors.Wrapf(errors.ErrInvalidFormat, "%q", r.format)
	}
}

func (r *Reporter) reportText(o checktree.Outcome) error {
	var sb strings.Builder

	if o.Passed {
		fmt.Fprintf(&sb, "%s %s passed\n", color.GreenString("✓"), o.Name)
	} else {
		fmt.Fprintf(&sb, "%s %s failed\n", color.RedString("✗"), o.Name)
		sb.WriteString(o.Message)
		sb.WriteByte('\n')
	}

	if r.detail {
		sb.WriteString("\nDetail:\n")
		writeNode(&sb, o, 1)
	}

	_, err := io.WriteString(r.out, sb.String())
	return errors.Wrap(err, "writing text report")
}

// writeNode prints one line per node, indented by depth.
func writeNode(sb *strings.Builder, o checktree.Outcome, depth int) {
	pad := strings.Repeat("  ", depth)

	mark := color.GreenString("✓")
	if !o.Passed {
		mark = color.RedString("✗")
	}
	sb.WriteString(pad)
	sb.WriteString(mark)
	sb.WriteByte(' ')
	sb.WriteString(o.Name)
	if o.Strategy != "" {
		sb.WriteString(color.New(color.FgHiBlack).Sprintf(" [%s]", o.Strategy))
	}
	if !o.Passed && !o.Reported {
		sb.WriteString(color.YellowString(" (not reported)"))
	}
	sb.WriteByte('\n')

	if o.Kind == checktree.KindLeaf && !o.Passed {
		for line := range strings.Lines(checktree.Indent(o.Message)) {
			sb.WriteString(pad)
			sb.WriteString("  ")
			sb.WriteString(strings.TrimRight(line, "\n"))
			sb.WriteByte('\n')
		}
	}

	for _, c := range o.Children {
		writeNode(sb, c, depth+1)
	}
}
