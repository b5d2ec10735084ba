// Package fluentstring provides chainable versions of the mutation
// operations of a growable UTF-8 text buffer.
//
// Every mutation returns the buffer, so a string can be built in one
// expression:
//
//	s := fluentstring.New("my string", fluentstring.Options{}).
//		PushStr(" is a bit longer now").
//		InsertStr(12, ", maybe,").
//		Truncate(33)
//	// s.String() == "my string is, maybe, a bit longer"
//
// Two variants implement the same FluentString capability:
//
//   - String is an owned buffer. Methods consume the receiver and return the
//     updated value; continue with the result, as with append.
//   - Mut is a handle to a *String. Methods mutate the referenced buffer and
//     return the same handle, so the original variable sees the whole chain.
//
// Lengths, capacities and positions are in bytes. Positions must fall on a
// rune boundary; passing any other position panics.
//
// PushIf, PushStrIf and TruncateIf apply a mutation only when a predicate
// over the current content agrees. Package cond has common predicates.
package fluentstring
