package stringrules

import (
	"strings"
	"unicode"

	"github.com/thoreinstein/checktree/pkg/checktree"
)

// Leaf checks. Only NotNull fails on nil; the others pass on nil so that
// they leave absent values to NotNull, since a compound evaluates every
// child whatever its strategy.
var (
	NotNull = checktree.MustLeaf("NOT_NULL",
		func(s *string) bool { return s != nil },
		func(*string) string { return "argument is null" })

	NotEmpty = checktree.MustLeaf("STRING_NOT_EMPTY",
		func(s *string) bool { return s == nil || *s != "" },
		func(*string) string { return "argument is empty" })

	IfDigitThenEven = checktree.MustLeaf("STRING_IF_DIGIT_THEN_EVEN",
		func(s *string) bool { return s == nil || digitsEven(*s) },
		func(s *string) string { return *s + " contains non-even digits" })

	OnlyDigits = checktree.MustLeaf("STRING_CONTAINS_ONLY_DIGITS",
		func(s *string) bool { return s == nil || onlyDigits(*s) },
		func(s *string) string { return *s + " is not digit-only" })
)

// Compound checks.
var (
	DigitChecks = checktree.MustCompound[*string]("digit checks", checktree.Accumulate,
		IfDigitThenEven,
		OnlyDigits,
	)

	NonNullChecks = checktree.MustCompound[*string]("non-null checks", checktree.Accumulate,
		NotEmpty,
		DigitChecks,
	)

	Root = checktree.MustCompound[*string]("root", checktree.FailFast,
		NotNull,
		NonNullChecks,
	)

	// DigitChecksTwice reuses the same DigitChecks instance twice.
	DigitChecksTwice = checktree.MustCompound[*string]("root", checktree.Accumulate,
		DigitChecks,
		DigitChecks,
	)
)

// digitsEven reports whether every decimal digit in s is even. Parity is
// the rune's offset from '0'.
func digitsEven(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) && (r-'0')%2 != 0 {
			return false
		}
	}
	return true
}

func onlyDigits(s string) bool {
	return strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}
