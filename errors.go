package bitfield

import "fmt"

// ArgumentError reports a caller mistake: an out-of-range index, a
// malformed range, or a non-positive minimum length. It is raised by
// panic before any mutation, so the field is unchanged when it fires.
type ArgumentError struct {
	Op     string
	Detail string
}

func (e *ArgumentError) Error() string {
	return "bitfield: " + e.Op + ": " + e.Detail
}

// FatalError reports an unrecoverable condition: a requested capacity
// beyond 31 bits or serialized input that is not a number. These
// indicate programmer error or corrupted data, not something to retry.
type FatalError struct {
	Op     string
	Detail string
}

func (e *FatalError) Error() string {
	return "bitfield: " + e.Op + ": " + e.Detail
}

func invalidArgf(op, format string, args ...any) {
	panic(&ArgumentError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
