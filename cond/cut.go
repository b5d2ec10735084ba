package cond

import (
	"strings"

	"github.com/iw2rmb/fluentstring"
	"github.com/iw2rmb/fluentstring/internal/grapheme"
)

// CutSuffix returns a TruncateIf predicate that removes suffix when the
// content ends with it.
func CutSuffix[S fluentstring.Text](suffix string) func(S) (int, bool) {
	return func(s S) (int, bool) {
		text := s.String()
		if suffix == "" || !strings.HasSuffix(text, suffix) {
			return 0, false
		}
		return len(text) - len(suffix), true
	}
}

// CutAfterLast returns a TruncateIf predicate that removes the last
// occurrence of sep and everything after it. Content without sep is cleared,
// so repeated application drops one sep-joined item at a time.
func CutAfterLast[S fluentstring.Text](sep string) func(S) (int, bool) {
	return func(s S) (int, bool) {
		if s.IsEmpty() {
			return 0, false
		}
		i := strings.LastIndex(s.String(), sep)
		if sep == "" || i < 0 {
			return 0, true
		}
		return i, true
	}
}

// CutLastGrapheme removes the final grapheme cluster, the way backspace does
// in a terminal.
func CutLastGrapheme[S fluentstring.Text](s S) (int, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return grapheme.LastStart(s.String()), true
}

// KeepGraphemes returns a TruncateIf predicate that keeps the first n grapheme
// clusters.
func KeepGraphemes[S fluentstring.Text](n int) func(S) (int, bool) {
	return func(s S) (int, bool) {
		off := grapheme.Offset(s.String(), n)
		if off >= s.Len() {
			return 0, false
		}
		return off, true
	}
}

// FitsGraphemes returns a PushStrIf predicate that holds while the content
// would have at most n grapheme clusters after the push.
func FitsGraphemes[S fluentstring.Text](n int) func(S, string) bool {
	return func(s S, str string) bool {
		return grapheme.Count(s.String()+str) <= n
	}
}

// TrimTrailingSpace removes trailing whitespace clusters.
func TrimTrailingSpace[S fluentstring.Text](s S) (int, bool) {
	text := s.String()
	bounds := grapheme.Boundaries(text)
	end := len(text)
	for i := len(bounds) - 1; i >= 0; i-- {
		if !grapheme.IsSpace(text[bounds[i]:end]) {
			break
		}
		end = bounds[i]
	}
	if end == len(text) {
		return 0, false
	}
	return end, true
}
