// Package bitfield implements a fixed-capacity container for up to 31
// boolean flags packed into a single integer, for compact flag sets
// such as permissions, feature toggles, or protocol headers. The top
// bit of the 32-bit word is never used, so values stay non-negative.
//
// All mutators return the receiver, so operations chain:
//
//	perms := bitfield.New(8).On(0b101).FlipAt(3)
//
// A BitField is a plain mutable value with no internal locking;
// concurrent mutation of one instance is the caller's problem.
package bitfield

// DefaultMinLength is the presentation width used by NewDefault.
const DefaultMinLength = 1

// BitField is a bit vector of capacity 31 with a fixed minimum
// presentation width. The width only grows the serialized forms; it
// never limits which bits may be set.
type BitField struct {
	value     int32
	minLength int
}

// New returns an empty BitField with the given minimum presentation
// width. A non-positive width is an argument error; a width beyond 31
// bits cannot be represented and is fatal.
func New(minLength int) *BitField {
	if minLength <= 0 {
		invalidArgf("New", "minimum length must be positive, got %d", minLength)
	}
	if minLength > maxBits {
		fatalf("New", "minimum length %d exceeds the %d bit capacity", minLength, maxBits)
	}
	return &BitField{minLength: minLength}
}

// NewDefault is New(DefaultMinLength).
func NewDefault() *BitField {
	return New(DefaultMinLength)
}

// FromArray builds a BitField from flags in MSB-first order: the first
// element becomes the most significant bit. The minimum width is the
// slice length, so an empty slice is an argument error and more than
// 31 elements is fatal.
func FromArray(flags []bool) *BitField {
	b := New(len(flags))
	var value int32
	for _, flag := range flags {
		value <<= 1
		if flag {
			value |= 1
		}
	}
	return b.On(value)
}

// Is reports whether v is a *BitField. Static typing covers most
// callers; this remains for heterogeneous collections of any.
func Is(v any) bool {
	_, ok := v.(*BitField)
	return ok
}

// Value returns the packed bit vector.
func (b *BitField) Value() int32 {
	return b.value
}

// MinLength returns the minimum presentation width fixed at
// construction.
func (b *BitField) MinLength() int {
	return b.minLength
}

// Copy adopts other's value. The receiver keeps its own minimum
// width, which is immutable after construction.
func (b *BitField) Copy(other *BitField) *BitField {
	b.value = other.value
	return b
}

// Clone returns an independent BitField with the same value and
// minimum width.
func (b *BitField) Clone() *BitField {
	return New(b.minLength).Copy(b)
}

// Equal compares values only; minimum widths may differ. A nil
// operand is an argument error.
func (b *BitField) Equal(other *BitField) bool {
	if other == nil {
		invalidArgf("Equal", "operand is not a BitField")
	}
	return b.value == other.value
}
