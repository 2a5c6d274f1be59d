package checktree

// WalkFunc is called for every node visited by Walk. path holds the names
// from the root down to and including the node. Returning false skips the
// node's children.
type WalkFunc[T any] func(path []string, check Check[T]) bool

// Walk traverses the tree rooted at root depth-first in pre-order. Nodes
// shared between parents are visited once per occurrence.
func Walk[T any](root Check[T], fn WalkFunc[T]) {
	walk(root, nil, fn)
}

func walk[T any](node Check[T], parent []string, fn WalkFunc[T]) {
	path := append(append(make([]string, 0, len(parent)+1), parent...), node.Name())
	if !fn(path, node) {
		return
	}
	switch n := node.(type) {
	case *Leaf[T]:
	case *Compound[T]:
		for _, child := range n.children {
			walk(child, path, fn)
		}
	}
}
