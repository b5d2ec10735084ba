package fluentstring

import (
	"testing"
	"unicode/utf8"

	"github.com/jmgilman/go/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMut_Mutations(t *testing.T) {
	cases := []struct {
		name string
		fn   func(Mut) Mut
		want string
	}{
		{name: "clear", fn: func(m Mut) Mut { return m.Clear() }, want: ""},
		{name: "insert", fn: func(m Mut) Mut { return m.Insert(5, 'b') }, want: "this bis a string"},
		{name: "insert_str", fn: func(m Mut) Mut { return m.InsertStr(8, "not ") }, want: "this is not a string"},
		{name: "push", fn: func(m Mut) Mut { return m.Push('P') }, want: "this is a stringP"},
		{name: "push_str", fn: func(m Mut) Mut { return m.PushStr("PUP") }, want: "this is a stringPUP"},
		{name: "replace_range", fn: func(m Mut) Mut { return m.ReplaceRange(Span(7, 9), " not your") }, want: "this is not your string"},
		{name: "retain", fn: func(m Mut) Mut { return m.Retain(func(r rune) bool { return r != 't' }) }, want: "his is a sring"},
		{name: "truncate", fn: func(m Mut) Mut { return m.Truncate(4) }, want: "this"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := from(sample)
			got := tc.fn(s.Mut())
			assert.Equal(t, tc.want, got.String())
			assert.Equal(t, tc.want, s.String(), "original variable must observe the mutation")
		})
	}
}

func TestMut_ChainObservedByOriginal(t *testing.T) {
	s := from("my string")
	m := s.Mut().
		PushStr(" is a bit longer now").
		InsertStr(12, ", maybe,").
		Truncate(33)

	require.Equal(t, "my string is, maybe, a bit longer", s.String())
	require.Same(t, &s, m.Target())
	require.Equal(t, s.Len(), m.Len())
}

func TestMut_PushPushObserved(t *testing.T) {
	s := from("x")
	_ = s.Mut().Push('a').Push('b')
	require.Equal(t, "xab", s.String())
}

func TestMut_Capacity(t *testing.T) {
	t.Run("reserve", func(t *testing.T) {
		s := WithCapacity(10, Options{})
		require.Equal(t, 20, s.Mut().Reserve(20).Cap())
		require.Equal(t, 20, s.Cap())
	})
	t.Run("reserve_exact", func(t *testing.T) {
		s := WithCapacity(10, Options{})
		require.Equal(t, 20, s.Mut().ReserveExact(20).Cap())
	})
	t.Run("shrink_to", func(t *testing.T) {
		s := WithCapacity(30, Options{})
		require.Equal(t, 20, s.Mut().PushStr(sample).ShrinkTo(20).Cap())
	})
	t.Run("shrink_to_fit", func(t *testing.T) {
		s := WithCapacity(30, Options{})
		require.Equal(t, 16, s.Mut().PushStr(sample).ShrinkToFit().Cap())
		require.Equal(t, 16, s.Cap())
	})
	t.Run("try_reserve", func(t *testing.T) {
		s := WithCapacity(10, Options{})
		m, err := s.Mut().TryReserve(20)
		require.NoError(t, err)
		require.Equal(t, 20, m.Cap())
	})
	t.Run("try_reserve_exact", func(t *testing.T) {
		s := WithCapacity(10, Options{})
		m, err := s.Mut().TryReserveExact(20)
		require.NoError(t, err)
		require.Equal(t, 20, m.Cap())
	})
}

func TestMut_TryReserveFailureLeavesBuffer(t *testing.T) {
	s := New("abc", Options{MaxCapacity: 8})
	capBefore := s.Cap()

	m, err := s.Mut().TryReserve(100)
	require.Error(t, err)
	require.Equal(t, CodeCapacityOverflow, errors.GetCode(err))
	require.Equal(t, "abc", m.String())
	require.Equal(t, capBefore, s.Cap())

	m, err = s.Mut().TryReserveExact(100)
	require.Error(t, err)
	require.Equal(t, CodeCapacityOverflow, errors.GetCode(err))
	require.Equal(t, "abc", m.String())
	require.Equal(t, capBefore, s.Cap())
}

func TestMut_RetainPanicKeepsValidText(t *testing.T) {
	s := from("a世b")
	func() {
		defer func() { require.NotNil(t, recover()) }()
		_ = s.Mut().Retain(func(r rune) bool {
			if r == 'b' {
				panic("predicate failed")
			}
			return r != 'a'
		})
	}()
	require.True(t, utf8.ValidString(s.String()), "content %q", s.String())
	require.Equal(t, "世b", s.String())

	_ = s.Mut().Push('!')
	require.Equal(t, "世b!", s.String())
}

func TestMut_ZeroValue(t *testing.T) {
	var m Mut
	require.Nil(t, m.Target())
	requireMisuse(t, func() { _ = m.Len() })
	requireMisuse(t, func() { _ = m.PushStr("x") })
	requireMisuse(t, func() { _ = m.Retain(func(rune) bool { return true }) })
	requireMisuse(t, func() { _, _ = m.TryReserve(1) })

	var p *String
	requireMisuse(t, func() { _ = p.Mut() })
}

func TestMut_Misuse(t *testing.T) {
	s := from("aé")
	requireMisuse(t, func() { _ = s.Mut().Truncate(2) })
	requireMisuse(t, func() { _ = s.Mut().Insert(5, 'x') })
	requireMisuse(t, func() { _ = s.Mut().ReplaceRange(Span(0, 2), "b") })
	requireMisuse(t, func() { _ = s.Mut().ReplaceRange(Span(2, 1), "b") })
	require.Equal(t, "aé", s.String())
}
