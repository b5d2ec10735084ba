package cond

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iw2rmb/fluentstring"
)

type fs = fluentstring.String

func from(text string) fs { return fluentstring.New(text, fluentstring.Options{}) }

func TestNotEmpty(t *testing.T) {
	assert.Equal(t, "", from("").PushIf(',', NotEmpty).String())
	assert.Equal(t, "hey,", from("hey").PushIf(',', NotEmpty).String())
}

func TestNeitherEmpty(t *testing.T) {
	assert.Equal(t, "", from("").PushStrIf(",more", NeitherEmpty).String())
	assert.Equal(t, "hey", from("hey").PushStrIf("", NeitherEmpty).String())
	assert.Equal(t, "hey,more", from("hey").PushStrIf(",more", NeitherEmpty).String())
}

func TestNotTrailing(t *testing.T) {
	assert.Equal(t, "a/", from("a").PushIf('/', NotTrailing).PushIf('/', NotTrailing).String())
	assert.Equal(t, "a, ", from("a").PushStrIf(", ", NotEndingWith).PushStrIf(", ", NotEndingWith).String())
}

func TestJoinTokens(t *testing.T) {
	s := from("")
	for _, tok := range []string{"alpha", "beta", "gamma"} {
		s = s.PushStrIf(", ", func(s fs, _ string) bool { return NotEmpty(s, ',') }).PushStr(tok)
	}
	require.Equal(t, "alpha, beta, gamma", s.String())

	s = s.TruncateIf(CutAfterLast[fs](", "))
	require.Equal(t, "alpha, beta", s.String())
	s = s.TruncateIf(CutAfterLast[fs](", ")).TruncateIf(CutAfterLast[fs](", "))
	require.Equal(t, "", s.String())
	s = s.TruncateIf(CutAfterLast[fs](", "))
	require.Equal(t, "", s.String())
}

func TestMutHandle(t *testing.T) {
	s := from("hey")
	_ = s.Mut().PushIf(',', NotEmpty).PushStrIf(" you", NeitherEmpty).TruncateIf(CutSuffix[fluentstring.Mut](" you"))
	require.Equal(t, "hey,", s.String())
}

func TestCutSuffix(t *testing.T) {
	assert.Equal(t, "hey", from("hey you").TruncateIf(CutSuffix[fs](" you")).String())
	assert.Equal(t, "hey you", from("hey you").TruncateIf(CutSuffix[fs](" ble")).String())
	assert.Equal(t, "hey you", from("hey you").TruncateIf(CutSuffix[fs]("")).String())
}

func TestCutLastGrapheme(t *testing.T) {
	family := "\U0001F468\u200d\U0001F469\u200d\U0001F467"
	s := from("aé" + family)

	s = s.TruncateIf(CutLastGrapheme)
	require.Equal(t, "aé", s.String())
	s = s.TruncateIf(CutLastGrapheme)
	require.Equal(t, "a", s.String())
	s = s.TruncateIf(CutLastGrapheme).TruncateIf(CutLastGrapheme)
	require.Equal(t, "", s.String())
}

func TestKeepGraphemes(t *testing.T) {
	s := from("ééé")
	require.Equal(t, "éé", s.TruncateIf(KeepGraphemes[fs](2)).String())

	s = from("ab")
	require.Equal(t, "ab", s.TruncateIf(KeepGraphemes[fs](5)).String())
}

func TestFitsGraphemes(t *testing.T) {
	s := from("e\u0301")
	s = s.PushStrIf("a\u0301", FitsGraphemes[fs](2))
	require.Equal(t, "e\u0301a\u0301", s.String())
	s = s.PushStrIf("b", FitsGraphemes[fs](2))
	require.Equal(t, "e\u0301a\u0301", s.String())
	s = s.PushStrIf("\u0301", FitsGraphemes[fs](2))
	require.Equal(t, "e\u0301a\u0301\u0301", s.String())
}

func TestTrimTrailingSpace(t *testing.T) {
	assert.Equal(t, "a b", from("a b \t\n ").TruncateIf(TrimTrailingSpace).String())
	assert.Equal(t, "a b", from("a b").TruncateIf(TrimTrailingSpace).String())
	assert.Equal(t, "", from("   ").TruncateIf(TrimTrailingSpace).String())
}

func TestWidthPredicates(t *testing.T) {
	s := from("世界")
	s = s.PushStrIf("!", FitsWidth[fs](4))
	require.Equal(t, "世界", s.String())
	s = s.PushStrIf("!", FitsWidth[fs](5))
	require.Equal(t, "世界!", s.String())

	s = from("ab").PushIf('世', RuneFitsWidth[fs](3))
	require.Equal(t, "ab", s.String())
	s = s.PushIf('c', RuneFitsWidth[fs](3))
	require.Equal(t, "abc", s.String())

	s = from("a世b").TruncateIf(KeepWidth[fs](2))
	require.Equal(t, "a", s.String())
	s = from("a世b").TruncateIf(KeepWidth[fs](10))
	require.Equal(t, "a世b", s.String())
}

func TestRetainPredicates(t *testing.T) {
	assert.Equal(t, "abc", from("a1b2c3").Retain(Not(unicode.IsDigit)).String())
	assert.Equal(t, "ace", from("abcdef").Retain(Every(2)).String())
	assert.Panics(t, func() { Every(0) })
}
