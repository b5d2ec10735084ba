package fluentstring

// Mut is a mutable handle to a String. Each method mutates the referenced
// buffer in place and returns the same handle.
//
// A Mut does not own its buffer. The caller must keep any other code from
// touching the buffer while a chain runs through the handle. Obtain one with
// (*String).Mut; methods on the zero Mut panic with an INVALID_INPUT error.
type Mut struct {
	s *String
}

// Mut returns a handle that mutates s in place. s must not be nil.
func (s *String) Mut() Mut {
	if s == nil {
		misuse("Mut of nil *String")
	}
	return Mut{s: s}
}

// Target returns the buffer m mutates, or nil for the zero Mut.
func (m Mut) Target() *String { return m.s }

func (m Mut) target() *String {
	if m.s == nil {
		misuse("Mut has no target buffer")
	}
	return m.s
}

func (m Mut) Len() int { return m.target().Len() }

func (m Mut) Cap() int { return m.target().Cap() }

func (m Mut) IsEmpty() bool { return m.target().IsEmpty() }

func (m Mut) String() string { return m.target().String() }

func (m Mut) IsCharBoundary(idx int) bool { return m.target().IsCharBoundary(idx) }

func (m Mut) Clear() Mut {
	*m.s = m.target().Clear()
	return m
}

func (m Mut) Insert(idx int, ch rune) Mut {
	*m.s = m.target().Insert(idx, ch)
	return m
}

func (m Mut) InsertStr(idx int, str string) Mut {
	*m.s = m.target().InsertStr(idx, str)
	return m
}

func (m Mut) Push(ch rune) Mut {
	*m.s = m.target().Push(ch)
	return m
}

func (m Mut) PushStr(str string) Mut {
	*m.s = m.target().PushStr(str)
	return m
}

func (m Mut) ReplaceRange(r Range, replaceWith string) Mut {
	*m.s = m.target().ReplaceRange(r, replaceWith)
	return m
}

func (m Mut) Reserve(additional int) Mut {
	*m.s = m.target().Reserve(additional)
	return m
}

func (m Mut) ReserveExact(additional int) Mut {
	*m.s = m.target().ReserveExact(additional)
	return m
}

// Retain keeps only the runes for which f returns true. If f panics, the
// target still holds valid text: the runes kept so far followed by the ones f
// has not seen.
func (m Mut) Retain(f func(rune) bool) Mut {
	m.target().retain(f)
	return m
}

func (m Mut) ShrinkTo(minCapacity int) Mut {
	*m.s = m.target().ShrinkTo(minCapacity)
	return m
}

func (m Mut) ShrinkToFit() Mut {
	*m.s = m.target().ShrinkToFit()
	return m
}

func (m Mut) Truncate(newLen int) Mut {
	*m.s = m.target().Truncate(newLen)
	return m
}

func (m Mut) TryReserve(additional int) (Mut, error) {
	next, err := m.target().TryReserve(additional)
	*m.s = next
	return m, err
}

func (m Mut) TryReserveExact(additional int) (Mut, error) {
	next, err := m.target().TryReserveExact(additional)
	*m.s = next
	return m, err
}

func (m Mut) PushIf(ch rune, f func(Mut, rune) bool) Mut {
	return PushIf(m, ch, f)
}

func (m Mut) PushStrIf(str string, f func(Mut, string) bool) Mut {
	return PushStrIf(m, str, f)
}

func (m Mut) TruncateIf(f func(Mut) (int, bool)) Mut {
	return TruncateIf(m, f)
}
