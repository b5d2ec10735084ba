package fluentstring

// Range is a half-open byte span [Start, End) of a buffer.
// When ToEnd is set, End is ignored and the span runs through the buffer's
// current length.
type Range struct {
	Start int
	End   int
	ToEnd bool
}

// Span returns [start, end).
func Span(start, end int) Range { return Range{Start: start, End: end} }

// SpanFrom returns [start, len).
func SpanFrom(start int) Range { return Range{Start: start, ToEnd: true} }

// SpanTo returns [0, end).
func SpanTo(end int) Range { return Range{End: end} }

// SpanAll covers the whole buffer.
func SpanAll() Range { return Range{ToEnd: true} }

// resolve returns the concrete bounds of r against n bytes of content,
// panicking when r does not describe a span of it.
func (r Range) resolve(n int) (int, int) {
	end := r.End
	if r.ToEnd {
		end = n
	}
	if r.Start < 0 {
		misuse("range start index %d is negative", r.Start)
	}
	if r.Start > end {
		misuse("range starts at %d but ends at %d", r.Start, end)
	}
	if end > n {
		misuse("range end index %d out of range for string of length %d", end, n)
	}
	return r.Start, end
}
