// Package checktree provides a composable validation engine that evaluates a
// value against a tree of named checks and renders failures as an indented,
// human-readable report.
//
// A tree is built from two kinds of nodes:
//
//   - [Leaf]: a name, a predicate and a message producer.
//   - [Compound]: a name, a [Strategy] and an ordered list of child checks.
//
// Evaluation flows top-down and failure messages flow bottom-up. Each
// Compound evaluates every child in order, lets its Strategy choose which
// failures to report, and folds them into a single [CheckInfo] whose message
// nests each child block two spaces deeper than its parent.
//
// # Basic Usage
//
//	notEmpty := checktree.MustLeaf("NOT_EMPTY",
//		func(s string) bool { return s != "" },
//		func(string) string { return "argument is empty" })
//
//	root := checktree.MustCompound("root", checktree.Accumulate, notEmpty)
//
//	if info := root.Apply(""); info != nil {
//		fmt.Println(info.Message)
//		// NOT_EMPTY:
//		//   argument is empty
//	}
//
// # Strategies
//
// [FailFast] reports only the first failing child and [Accumulate] reports
// all of them. Both still evaluate every child; the strategy selects what to
// report, it does not short-circuit evaluation. Custom strategies are built
// with [NewStrategy] and must be order-preserving filters.
//
// # Purity
//
// Predicates and message producers are expected to be pure and total for the
// inputs they are given. The type system does not enforce this. A tree that
// respects the contract is immutable after construction and safe for
// concurrent use without locking. A panicking message producer is not
// recovered; the panic reaches the caller of Apply.
//
// # Structured Results
//
// [Check.Apply] collapses a whole tree into one message. Use [Explain] for a
// per-node [Outcome] tree, or [Walk] to reach sub-trees and evaluate them
// directly.
package checktree
