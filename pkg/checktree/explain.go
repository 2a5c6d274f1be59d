package checktree

// Kind identifies the variant of a node in an Outcome.
type Kind string

const (
	KindLeaf     Kind = "leaf"
	KindCompound Kind = "compound"
)

// Outcome is the structured result of evaluating one node. For a failing
// node Message equals the message Apply would report for it.
type Outcome struct {
	Name     string `json:"name" yaml:"name" toml:"name"`
	Kind     Kind   `json:"kind" yaml:"kind" toml:"kind"`
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty" toml:"strategy,omitempty"`
	Passed   bool   `json:"passed" yaml:"passed" toml:"passed"`
	// Reported is true when the parent's strategy selected this failure.
	// The root's failure is always reported. Failures a strategy returns as
	// elements of its input slice are attributed by position. A strategy
	// that returns copies is matched by value against the failing children
	// in order, so among identical sibling failures the earliest is marked.
	Reported bool      `json:"reported" yaml:"reported" toml:"reported"`
	Message  string    `json:"message,omitempty" yaml:"message,omitempty" toml:"message,omitempty"`
	Children []Outcome `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Info returns the CheckInfo Apply reports for this node, or nil when it
// passed.
func (o Outcome) Info() *CheckInfo {
	if o.Passed {
		return nil
	}
	return &CheckInfo{Name: o.Name, Message: o.Message}
}

// Explain evaluates root against value and returns the per-node outcome
// tree. Every node is evaluated exactly as Apply would evaluate it, so
// Explain(root, v).Info() and root.Apply(v) are equal.
func Explain[T any](root Check[T], value T) Outcome {
	out := explain(root, value)
	out.Reported = !out.Passed
	return out
}

func explain[T any](node Check[T], value T) Outcome {
	switch n := node.(type) {
	case *Leaf[T]:
		out := Outcome{Name: n.name, Kind: KindLeaf, Passed: true}
		if info := n.Apply(value); info != nil {
			out.Passed = false
			out.Message = info.Message
		}
		return out
	case *Compound[T]:
		return explainCompound(n, value)
	}
	panic("checktree: unknown check implementation")
}

func explainCompound[T any](c *Compound[T], value T) Outcome {
	out := Outcome{
		Name:     c.name,
		Kind:     KindCompound,
		Strategy: c.strategy.Name(),
		Passed:   true,
		Children: make([]Outcome, 0, len(c.children)),
	}

	var (
		failures []CheckInfo
		failed   []int
	)
	for _, child := range c.children {
		co := explain(child, value)
		if !co.Passed {
			failures = append(failures, *co.Info())
			failed = append(failed, len(out.Children))
		}
		out.Children = append(out.Children, co)
	}

	selected := c.strategy.Select(failures)
	if len(selected) == 0 {
		return out
	}

	for _, i := range selectedIndices(failures, selected) {
		out.Children[failed[i]].Reported = true
	}

	out.Passed = false
	out.Message = aggregate(selected)
	return out
}

// selectedIndices maps each selected failure to its index in failures.
// Elements that alias failures are matched by address, others by value
// against the next unmatched failure. Strategies preserve order, so the
// search only moves forward.
func selectedIndices(failures, selected []CheckInfo) []int {
	indices := make([]int, 0, len(selected))
	next := 0
	for k := range selected {
		i := aliasIndex(failures, &selected[k])
		if i < next {
			i = -1
			for j := next; j < len(failures); j++ {
				if failures[j] == selected[k] {
					i = j
					break
				}
			}
			if i < 0 {
				continue
			}
		}
		indices = append(indices, i)
		next = i + 1
	}
	return indices
}

func aliasIndex(failures []CheckInfo, p *CheckInfo) int {
	for i := range failures {
		if &failures[i] == p {
			return i
		}
	}
	return -1
}
