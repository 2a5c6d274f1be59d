// Package stringrules is a small rule set over nullable strings built with
// checktree. A nil *string stands for an absent value.
//
// The trees registered here are what the checktree CLI evaluates:
//
//	root               fail-fast  [NOT_NULL, non-null checks]
//	non-null checks    accumulate [STRING_NOT_EMPTY, digit checks]
//	digit checks       accumulate [STRING_IF_DIGIT_THEN_EVEN, STRING_CONTAINS_ONLY_DIGITS]
//	digit checks twice accumulate [digit checks, digit checks]
//
// Every tree accepts nil. Only NOT_NULL fails on it; the other leaves pass
// on nil, so a nil value through any tree other than root passes.
package stringrules
