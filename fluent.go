package fluentstring

// Text is the read-only view every FluentString offers to predicates.
type Text interface {
	Len() int
	Cap() int
	IsEmpty() bool
	String() string
	IsCharBoundary(idx int) bool
}

// FluentString is the chainable mutation surface of a text buffer. S is the
// implementing type, returned by every mutation so calls can be chained.
type FluentString[S any] interface {
	Text

	Clear() S
	Insert(idx int, ch rune) S
	InsertStr(idx int, str string) S
	Push(ch rune) S
	PushStr(str string) S
	ReplaceRange(r Range, replaceWith string) S
	Reserve(additional int) S
	ReserveExact(additional int) S
	Retain(f func(rune) bool) S
	ShrinkTo(minCapacity int) S
	ShrinkToFit() S
	Truncate(newLen int) S
	TryReserve(additional int) (S, error)
	TryReserveExact(additional int) (S, error)

	PushIf(ch rune, f func(S, rune) bool) S
	PushStrIf(str string, f func(S, string) bool) S
	TruncateIf(f func(S) (int, bool)) S
}

var (
	_ FluentString[String] = String{}
	_ FluentString[Mut]    = Mut{}
)

// PushIf pushes ch when f, given the buffer before the push, returns true.
func PushIf[S FluentString[S]](s S, ch rune, f func(S, rune) bool) S {
	if f(s, ch) {
		return s.Push(ch)
	}
	return s
}

// PushStrIf pushes str when f, given the buffer before the push, returns true.
func PushStrIf[S FluentString[S]](s S, str string, f func(S, string) bool) S {
	if f(s, str) {
		return s.PushStr(str)
	}
	return s
}

// TruncateIf truncates to the length f returns when f reports ok.
func TruncateIf[S FluentString[S]](s S, f func(S) (int, bool)) S {
	if n, ok := f(s); ok {
		return s.Truncate(n)
	}
	return s
}
