package commands

import (
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/checktree/internal/errors"
	"github.com/thoreinstein/checktree/pkg/checktree"
)

// treeNode is one selectable node of a tree.
type treeNode struct {
	path  []string
	check checktree.Check[*string]
}

func (n treeNode) label() string {
	return strings.Join(n.path, " › ")
}

// collectNodes lists every node of root in pre-order.
func collectNodes(root checktree.Check[*string]) []treeNode {
	var nodes []treeNode
	checktree.Walk(root, func(path []string, c checktree.Check[*string]) bool {
		nodes = append(nodes, treeNode{path: path, check: c})
		return true
	})
	return nodes
}

// findNode selects a node index; replaced in tests.
var findNode = func(nodes []treeNode) (int, error) {
	return fuzzyfinder.Find(
		nodes,
		func(i int) string { return nodes[i].label() },
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			var sb strings.Builder
			writeTree(&sb, nodes[i].check)
			return sb.String()
		}),
	)
}

// pickSubtree lets the user choose a node of root to evaluate. It returns
// nil without error when the selection is aborted.
func pickSubtree(root checktree.Check[*string]) (checktree.Check[*string], error) {
	nodes := collectNodes(root)
	idx, err := findNode(nodes)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, nil
		}
		return nil, errors.NewSystemError(errors.Wrap(err, "interactive selection failed"), "Run without --pick")
	}
	return nodes[idx].check, nil
}
