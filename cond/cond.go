// Package cond provides predicates for the conditional combinators and Retain
// of package fluentstring.
//
// Predicates without parameters are generic functions that can be passed
// directly, the type argument being inferred from the combinator:
//
//	s = s.PushIf(',', cond.NotEmpty)
//
// Predicate constructors need the buffer type spelled out:
//
//	s = s.TruncateIf(cond.CutSuffix[fluentstring.String](", "))
//
// Every length a truncation predicate returns is a rune boundary of the
// buffer's content.
package cond

import (
	"strings"

	"github.com/iw2rmb/fluentstring"
)

// NotEmpty reports whether s has content. Use with PushIf to place a
// separator only between items.
func NotEmpty[S fluentstring.Text](s S, _ rune) bool {
	return !s.IsEmpty()
}

// NeitherEmpty reports whether both s and str have content.
func NeitherEmpty[S fluentstring.Text](s S, str string) bool {
	return !s.IsEmpty() && str != ""
}

// NotTrailing reports whether s does not already end with ch.
func NotTrailing[S fluentstring.Text](s S, ch rune) bool {
	return !strings.HasSuffix(s.String(), string(ch))
}

// NotEndingWith reports whether s does not already end with str.
func NotEndingWith[S fluentstring.Text](s S, str string) bool {
	return !strings.HasSuffix(s.String(), str)
}

// Not negates a Retain predicate.
func Not(f func(rune) bool) func(rune) bool {
	return func(r rune) bool { return !f(r) }
}

// Every returns a stateful Retain predicate that keeps the first rune and
// then every n-th rune after it. It panics if n < 1.
func Every(n int) func(rune) bool {
	if n < 1 {
		panic("cond: Every requires n >= 1")
	}
	i := 0
	return func(rune) bool {
		keep := i%n == 0
		i++
		return keep
	}
}
