package stringrules

import (
	"slices"
	"strings"

	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/pkg/checktree"
)

// DefaultTree is the tree used when none is named.
const DefaultTree = "root"

var trees = map[string]checktree.Check[*string]{
	"root":         Root,
	"non-null":     NonNullChecks,
	"digits":       DigitChecks,
	"digits-twice": DigitChecksTwice,
}

// Lookup returns the tree registered under name.
func Lookup(name string) (checktree.Check[*string], error) {
	t, ok := trees[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrUnknownTree, "%q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns the registered tree names in sorted order.
func Names() []string {
	names := make([]string, 0, len(trees))
	for n := range trees {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}
