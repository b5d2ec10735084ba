package cond

import (
	"github.com/iw2rmb/fluentstring"
	"github.com/iw2rmb/fluentstring/internal/grapheme"
)

// FitsWidth returns a PushStrIf predicate that holds while the content would
// stay within cols terminal cells after the push.
func FitsWidth[S fluentstring.Text](cols int) func(S, string) bool {
	return func(s S, str string) bool {
		return grapheme.StringWidth(s.String()+str) <= cols
	}
}

// RuneFitsWidth is FitsWidth for PushIf.
func RuneFitsWidth[S fluentstring.Text](cols int) func(S, rune) bool {
	return func(s S, ch rune) bool {
		return grapheme.StringWidth(s.String()+string(ch)) <= cols
	}
}

// KeepWidth returns a TruncateIf predicate that cuts the content after the
// last whole grapheme cluster fitting in cols terminal cells.
func KeepWidth[S fluentstring.Text](cols int) func(S) (int, bool) {
	return func(s S) (int, bool) {
		off, used := 0, 0
		for _, c := range grapheme.Split(s.String()) {
			used += grapheme.Width(c)
			if used > cols {
				return off, true
			}
			off += len(c)
		}
		return 0, false
	}
}
