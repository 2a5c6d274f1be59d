package checktree

// SelectFunc chooses which child failures a compound reports. It must keep
// the relative order of the failures it returns.
type SelectFunc func(failures []CheckInfo) []CheckInfo

// Strategy is the policy a Compound uses to select reported failures. The
// zero value is not usable.
type Strategy struct {
	name     string
	selectFn SelectFunc
}

var (
	// FailFast reports only the first failure in evaluation order.
	FailFast = NewStrategy("fail-fast", func(failures []CheckInfo) []CheckInfo {
		if len(failures) == 0 {
			return nil
		}
		return failures[:1:1]
	})

	// Accumulate reports every failure in evaluation order.
	Accumulate = NewStrategy("accumulate", func(failures []CheckInfo) []CheckInfo {
		return failures
	})
)

// NewStrategy creates a named strategy. A nil fn yields a zero Strategy,
// which NewCompound rejects.
func NewStrategy(name string, fn SelectFunc) Strategy {
	if fn == nil {
		return Strategy{}
	}
	return Strategy{name: name, selectFn: fn}
}

// Name returns the strategy's name.
func (s Strategy) Name() string { return s.name }

// IsZero reports whether the strategy has no selection function.
func (s Strategy) IsZero() bool { return s.selectFn == nil }

// Select applies the strategy to the failures of one evaluation.
func (s Strategy) Select(failures []CheckInfo) []CheckInfo {
	return s.selectFn(failures)
}

// String implements fmt.Stringer.
func (s Strategy) String() string { return s.name }
