package grapheme

import (
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, utf8.RuneCountInString(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// Boundaries returns the byte offset at which each cluster of text starts.
func Boundaries(text string) []int {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]int, 0, utf8.RuneCountInString(text))
	for g.Next() {
		start, _ := g.Positions()
		out = append(out, start)
	}
	return out
}

// LastStart returns the byte offset of the last cluster in text, or 0 when
// text is empty.
func LastStart(text string) int {
	b := Boundaries(text)
	if len(b) == 0 {
		return 0
	}
	return b[len(b)-1]
}

// Offset returns the byte offset just past the first n clusters of text,
// or len(text) when text has fewer than n clusters.
func Offset(text string, n int) int {
	if n <= 0 {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	i := 0
	for g.Next() {
		i++
		if i == n {
			_, end := g.Positions()
			return end
		}
	}
	return len(text)
}

// Width returns the terminal cell width of a single cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		if fallback := uniseg.StringWidth(cluster); fallback > w {
			w = fallback
		}
	}
	return w
}

// StringWidth returns the terminal cell width of text, cluster by cluster.
func StringWidth(text string) int {
	total := 0
	for _, c := range Split(text) {
		total += Width(c)
	}
	return total
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
