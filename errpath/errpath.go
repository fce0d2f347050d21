// Package errpath implements the structural error value shared by every NBT
// encoding: a reason paired with the root-to-leaf trail of fields and
// elements that led to it.
package errpath

import (
	"fmt"
	"strings"
)

// PathPart is one step in the trail from a document's root to the byte that
// failed to decode or encode. It is either a Field (a named compound entry)
// or an Element (the nth item of a list or array).
type PathPart interface {
	String() string
}

// Field names a compound tag's entry.
type Field string

func (f Field) String() string { return fmt.Sprintf(".%s", string(f)) }

// Element indexes a list or array entry, 0-based.
type Element int

func (e Element) String() string { return fmt.Sprintf("[%d]", int(e)) }

// Path is an ordered, root-to-leaf sequence of PathParts.
type Path []PathPart

func (p Path) String() string {
	var sb strings.Builder
	for _, part := range p {
		sb.WriteString(part.String())
	}
	return sb.String()
}

// Error pairs a reason with the Path that was being traversed when the
// reason occurred. It is the single error type every primitive read or
// write operation returns.
//
// Error paths grow from the leaf outward: New starts with an empty path at
// the point of failure, and each enclosing frame calls Prepend as it
// unwinds, so the final path reads root-to-leaf. Each Prepend copies the
// existing path into a new slice behind the added part.
type Error struct {
	Reason error
	Path   Path
}

// New wraps reason in an Error with an empty path.
func New(reason error) *Error {
	return &Error{Reason: reason}
}

// Prepend inserts part at the root end of the path and returns the same
// Error, so callers can chain it directly into a return statement:
//
//	return err.Prepend(errpath.Element(i))
func (e *Error) Prepend(part PathPart) *Error {
	e.Path = append(Path{part}, e.Path...)
	return e
}

func (e *Error) Error() string {
	if len(e.Path) == 0 {
		return e.Reason.Error()
	}
	return fmt.Sprintf("at %s: %s", e.Path, e.Reason)
}

// Unwrap exposes the underlying reason to errors.Is / errors.As.
func (e *Error) Unwrap() error { return e.Reason }
