package checktree

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrInvalidCheck is returned when a check is constructed with missing or
// malformed arguments.
var ErrInvalidCheck = errors.New("invalid check")

// CheckInfo describes one reported failure. Message may span several lines
// and is already formatted.
type CheckInfo struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Message string `json:"message" yaml:"message" toml:"message"`
}

// LogValue implements slog.LogValuer.
func (c CheckInfo) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", c.Name),
		slog.String("message", c.Message),
	)
}

// Check evaluates a value of type T. Apply returns nil when the value passes
// and a single CheckInfo when it fails.
//
// The set of implementations is closed: only [*Leaf] and [*Compound]
// satisfy Check.
type Check[T any] interface {
	Name() string
	Apply(value T) *CheckInfo

	sealed()
}

// Leaf is a check backed directly by a predicate.
type Leaf[T any] struct {
	name      string
	predicate func(T) bool
	message   func(T) string
}

// NewLeaf creates a leaf check. The message producer is only called when the
// predicate returns false.
func NewLeaf[T any](name string, predicate func(T) bool, message func(T) string) (*Leaf[T], error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidCheck, "leaf name is empty")
	}
	if predicate == nil {
		return nil, errors.Wrapf(ErrInvalidCheck, "leaf %q: predicate is nil", name)
	}
	if message == nil {
		return nil, errors.Wrapf(ErrInvalidCheck, "leaf %q: message producer is nil", name)
	}
	return &Leaf[T]{name: name, predicate: predicate, message: message}, nil
}

// MustLeaf is like NewLeaf but panics on invalid arguments. It is intended
// for trees declared as package variables.
func MustLeaf[T any](name string, predicate func(T) bool, message func(T) string) *Leaf[T] {
	l, err := NewLeaf(name, predicate, message)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the leaf's name.
func (l *Leaf[T]) Name() string { return l.name }

// Apply runs the predicate. The returned message is exactly the producer's
// output; indentation is added by enclosing compounds.
func (l *Leaf[T]) Apply(value T) *CheckInfo {
	if l.predicate(value) {
		return nil
	}
	return &CheckInfo{Name: l.name, Message: l.message(value)}
}

func (*Leaf[T]) sealed() {}

// Compound combines child checks under a Strategy. Children are referenced,
// not copied, so the same node may appear in several trees or several times
// in one tree.
type Compound[T any] struct {
	name     string
	strategy Strategy
	children []Check[T]
}

// NewCompound creates a compound check. Children are evaluated in the given
// order. A compound without children always passes.
func NewCompound[T any](name string, strategy Strategy, children ...Check[T]) (*Compound[T], error) {
	if name == "" {
		return nil, errors.Wrap(ErrInvalidCheck, "compound name is empty")
	}
	if strategy.IsZero() {
		return nil, errors.Wrapf(ErrInvalidCheck, "compound %q: strategy is not set", name)
	}
	for i, child := range children {
		if isNil(child) {
			return nil, errors.Wrapf(ErrInvalidCheck, "compound %q: child %d is nil", name, i)
		}
	}
	return &Compound[T]{
		name:     name,
		strategy: strategy,
		children: append([]Check[T](nil), children...),
	}, nil
}

// MustCompound is like NewCompound but panics on invalid arguments.
func MustCompound[T any](name string, strategy Strategy, children ...Check[T]) *Compound[T] {
	c, err := NewCompound(name, strategy, children...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the compound's name.
func (c *Compound[T]) Name() string { return c.name }

// Strategy returns the strategy that selects reported failures.
func (c *Compound[T]) Strategy() Strategy { return c.strategy }

// Children returns a copy of the child list.
func (c *Compound[T]) Children() []Check[T] {
	return append([]Check[T](nil), c.children...)
}

// Apply evaluates every child, lets the strategy select the failures to
// report and folds them into one CheckInfo named after the compound.
func (c *Compound[T]) Apply(value T) *CheckInfo {
	var failures []CheckInfo
	for _, child := range c.children {
		if info := child.Apply(value); info != nil {
			failures = append(failures, *info)
		}
	}
	selected := c.strategy.Select(failures)
	if len(selected) == 0 {
		return nil
	}
	return &CheckInfo{Name: c.name, Message: aggregate(selected)}
}

func (*Compound[T]) sealed() {}

// aggregate renders each failure as "name:" followed by its indented
// message and joins the blocks with a single newline.
func aggregate(failures []CheckInfo) string {
	var sb strings.Builder
	for i, f := range failures {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(f.Name)
		sb.WriteString(":\n")
		sb.WriteString(Indent(f.Message))
	}
	return sb.String()
}

func isNil[T any](c Check[T]) bool {
	switch n := c.(type) {
	case nil:
		return true
	case *Leaf[T]:
		return n == nil
	case *Compound[T]:
		return n == nil
	}
	return false
}
