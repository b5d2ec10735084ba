package fluentstring

import (
	"runtime"
	"unicode/utf8"

	"github.com/jmgilman/go/errors"
)

// minNonZeroCap is the smallest capacity an amortized reservation grows to.
const minNonZeroCap = 8

// String is an owned, growable UTF-8 text buffer.
//
// The zero value is an empty buffer with default Options. Mutations take the
// receiver by value and return the updated buffer; the receiver is consumed
// and only the returned value may be used afterwards.
type String struct {
	buf []byte
	opt Options
}

// New returns a buffer holding text. It panics if text is not valid UTF-8.
func New(text string, opt Options) String {
	s := String{opt: opt.withDefaults()}
	if text == "" {
		return s
	}
	return s.PushStr(text)
}

// WithCapacity returns an empty buffer with exactly capacity bytes reserved.
func WithCapacity(capacity int, opt Options) String {
	return String{opt: opt.withDefaults()}.ReserveExact(capacity)
}

// FromBytes copies b into a new buffer, failing if b is not valid UTF-8.
func FromBytes(b []byte, opt Options) (String, error) {
	if !utf8.Valid(b) {
		return String{}, errors.New(errors.CodeInvalidInput, "invalid UTF-8 sequence")
	}
	s, err := String{opt: opt.withDefaults()}.TryReserveExact(len(b))
	if err != nil {
		return String{}, err
	}
	s.buf = append(s.buf, b...)
	return s, nil
}

func (s String) Len() int { return len(s.buf) }

func (s String) Cap() int { return cap(s.buf) }

func (s String) IsEmpty() bool { return len(s.buf) == 0 }

func (s String) String() string { return string(s.buf) }

// IsCharBoundary reports whether idx is the start of a rune or the end of
// the content.
func (s String) IsCharBoundary(idx int) bool {
	if idx == 0 || idx == len(s.buf) {
		return true
	}
	if idx < 0 || idx > len(s.buf) {
		return false
	}
	return utf8.RuneStart(s.buf[idx])
}

func (s String) Clear() String {
	s.buf = s.buf[:0]
	return s
}

func (s String) Insert(idx int, ch rune) String {
	mustValidRune(ch)
	var enc [utf8.UTFMax]byte
	n := utf8.EncodeRune(enc[:], ch)
	s.mustBoundary("insertion index", idx)
	return s.splice(idx, idx, string(enc[:n]))
}

func (s String) InsertStr(idx int, str string) String {
	mustValid(str)
	s.mustBoundary("insertion index", idx)
	return s.splice(idx, idx, str)
}

func (s String) Push(ch rune) String {
	mustValidRune(ch)
	s = s.Reserve(utf8.RuneLen(ch))
	s.buf = utf8.AppendRune(s.buf, ch)
	return s
}

func (s String) PushStr(str string) String {
	mustValid(str)
	s = s.Reserve(len(str))
	s.buf = append(s.buf, str...)
	return s
}

// ReplaceRange replaces the bytes in r with replaceWith. Both ends of r must
// be rune boundaries within the content.
func (s String) ReplaceRange(r Range, replaceWith string) String {
	start, end := r.resolve(len(s.buf))
	s.mustBoundary("range start", start)
	s.mustBoundary("range end", end)
	mustValid(replaceWith)
	return s.splice(start, end, replaceWith)
}

// Reserve ensures room for at least additional more bytes. It may reserve
// more to amortize future growth.
func (s String) Reserve(additional int) String {
	s, err := s.grow(additional, false)
	if err != nil {
		panic(err)
	}
	return s
}

// ReserveExact ensures room for exactly additional more bytes without
// deliberate over-allocation.
func (s String) ReserveExact(additional int) String {
	s, err := s.grow(additional, true)
	if err != nil {
		panic(err)
	}
	return s
}

// Retain keeps only the runes for which f returns true. f is called exactly
// once per rune, in order.
//
// If f panics, the backing array shared with the receiver holds the retained
// runes followed by the unvisited rest, but the receiver's length is stale.
// Use Mut.Retain when a panicking f may be recovered.
func (s String) Retain(f func(rune) bool) String {
	s.retain(f)
	return s
}

// retain compacts s.buf in place. A panic in f still leaves s.buf as valid
// text: the runes kept so far followed by the unread tail.
func (s *String) retain(f func(rune) bool) {
	buf := s.buf
	w, r := 0, 0
	defer func() {
		if r < len(buf) {
			n := copy(buf[w:], buf[r:])
			s.buf = buf[:w+n]
		}
	}()
	for r < len(buf) {
		ch, size := utf8.DecodeRune(buf[r:])
		if f(ch) {
			copy(buf[w:], buf[r:r+size])
			w += size
		}
		r += size
	}
	s.buf = buf[:w]
}

// ShrinkTo lowers the capacity to max(Len, minCapacity) if it is larger.
func (s String) ShrinkTo(minCapacity int) String {
	if minCapacity < 0 {
		misuse("negative minimum capacity %d", minCapacity)
	}
	target := max(len(s.buf), minCapacity)
	if cap(s.buf) <= target {
		return s
	}
	buf := make([]byte, len(s.buf), target)
	copy(buf, s.buf)
	s.buf = buf
	return s
}

func (s String) ShrinkToFit() String {
	return s.ShrinkTo(0)
}

// Truncate shortens the content to newLen bytes. It does nothing when newLen
// is not less than Len; otherwise newLen must be a rune boundary.
func (s String) Truncate(newLen int) String {
	if newLen < 0 {
		misuse("negative truncation length %d", newLen)
	}
	if newLen >= len(s.buf) {
		return s
	}
	s.mustBoundary("truncation length", newLen)
	s.buf = s.buf[:newLen]
	return s
}

// TryReserve is Reserve reporting failure as an error. On failure the
// returned buffer is the unchanged receiver.
func (s String) TryReserve(additional int) (String, error) {
	return s.grow(additional, false)
}

// TryReserveExact is ReserveExact reporting failure as an error. On failure
// the returned buffer is the unchanged receiver.
func (s String) TryReserveExact(additional int) (String, error) {
	return s.grow(additional, true)
}

func (s String) PushIf(ch rune, f func(String, rune) bool) String {
	return PushIf(s, ch, f)
}

func (s String) PushStrIf(str string, f func(String, string) bool) String {
	return PushStrIf(s, str, f)
}

func (s String) TruncateIf(f func(String) (int, bool)) String {
	return TruncateIf(s, f)
}

func (s String) maxCap() int {
	return s.opt.withDefaults().MaxCapacity
}

func (s String) mustBoundary(what string, idx int) {
	if idx < 0 || idx > len(s.buf) {
		misuse("%s %d out of range for string of length %d", what, idx, len(s.buf))
	}
	if !s.IsCharBoundary(idx) {
		misuse("%s %d is not a char boundary", what, idx)
	}
}

// grow makes room for additional bytes past Len. Amortized growth doubles the
// capacity; exact growth reserves Len+additional.
func (s String) grow(additional int, exact bool) (String, error) {
	if additional < 0 {
		misuse("negative reservation %d", additional)
	}
	n, c := len(s.buf), cap(s.buf)
	if c-n >= additional {
		return s, nil
	}

	limit := s.maxCap()
	if additional > limit-n {
		return s, s.reserveError(CapacityOverflow, additional)
	}
	need := n + additional

	newCap := need
	if !exact {
		doubled := limit
		if c <= limit/2 {
			doubled = 2 * c
		}
		newCap = max(need, doubled, minNonZeroCap)
		newCap = min(newCap, limit)
	}

	buf, ok := allocate(n, newCap)
	if !ok {
		return s, s.reserveError(AllocFailed, additional)
	}
	copy(buf, s.buf)
	s.buf = buf
	return s, nil
}

func (s String) reserveError(kind ReserveErrorKind, additional int) error {
	e := &ReserveError{
		Kind:        kind,
		Additional:  additional,
		Len:         len(s.buf),
		Cap:         cap(s.buf),
		MaxCapacity: s.maxCap(),
	}
	return e.platform()
}

// allocate reports false when the runtime rejects the size with a
// recoverable runtime error. Exhausting memory outright is still fatal.
func allocate(n, c int) (buf []byte, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			if _, isRuntime := r.(runtime.Error); !isRuntime {
				panic(r)
			}
			buf, ok = nil, false
		}
	}()
	return make([]byte, n, c), true
}

// splice replaces s.buf[start:end] with with, growing through Reserve.
func (s String) splice(start, end int, with string) String {
	oldLen := len(s.buf)
	tail := oldLen - end
	newLen := start + len(with) + tail
	if newLen > oldLen {
		s = s.Reserve(newLen - oldLen)
		s.buf = s.buf[:newLen]
	}
	copy(s.buf[start+len(with):], s.buf[end:end+tail])
	copy(s.buf[start:], with)
	s.buf = s.buf[:newLen]
	return s
}

func mustValid(str string) {
	if !utf8.ValidString(str) {
		misuse("invalid UTF-8 in %q", str)
	}
}

func mustValidRune(ch rune) {
	if !utf8.ValidRune(ch) {
		misuse("invalid rune %U", ch)
	}
}
