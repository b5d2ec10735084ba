package fluentstring

import (
	"fmt"

	"github.com/jmgilman/go/errors"
)

const (
	// CodeCapacityOverflow reports a reservation past Options.MaxCapacity
	// or past the largest representable length.
	CodeCapacityOverflow errors.ErrorCode = "CAPACITY_OVERFLOW"

	// CodeAllocFailed reports a reservation the runtime refused to allocate.
	CodeAllocFailed errors.ErrorCode = "ALLOC_FAILED"
)

type ReserveErrorKind uint8

const (
	CapacityOverflow ReserveErrorKind = iota
	AllocFailed
)

func (k ReserveErrorKind) String() string {
	switch k {
	case CapacityOverflow:
		return "capacity overflow"
	case AllocFailed:
		return "memory allocation failed"
	default:
		return fmt.Sprintf("ReserveErrorKind(%d)", uint8(k))
	}
}

// ReserveError describes a reservation that could not be satisfied.
// Len and Cap are the buffer's state when the request was made.
type ReserveError struct {
	Kind        ReserveErrorKind
	Additional  int
	Len         int
	Cap         int
	MaxCapacity int
}

func (e *ReserveError) Error() string {
	return fmt.Sprintf("cannot grow by %d bytes: %s", e.Additional, e.Kind)
}

func (e *ReserveError) code() errors.ErrorCode {
	if e.Kind == AllocFailed {
		return CodeAllocFailed
	}
	return CodeCapacityOverflow
}

func (e *ReserveError) platform() errors.PlatformError {
	return errors.WrapWithContext(e, e.code(), "reservation failed", map[string]interface{}{
		"len":          e.Len,
		"cap":          e.Cap,
		"additional":   e.Additional,
		"max_capacity": e.MaxCapacity,
	})
}

// misuse panics with an INVALID_INPUT platform error. Out-of-range and
// non-boundary positions are programmer errors and are never clamped.
func misuse(format string, args ...interface{}) {
	panic(errors.Newf(errors.CodeInvalidInput, format, args...))
}
