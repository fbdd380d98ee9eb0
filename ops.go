package bitfield

import "math/bits"

func checkIndex(op string, index int) {
	if index < 0 || index >= maxBits {
		invalidArgf(op, "index %d out of range [0, %d)", index, maxBits)
	}
}

func checkRange(op string, from, to int) {
	if from < 0 || to > maxBits || to <= from {
		invalidArgf(op, "range [%d, %d) must satisfy 0 <= from < to <= %d", from, to, maxBits)
	}
}

// Get reports whether the bit at index is set.
func (b *BitField) Get(index int) bool {
	checkIndex("Get", index)
	return (b.value>>index)&1 == 1
}

// GetRange extracts the bits of the half-open range [from, to) into a
// new BitField of width to-from, with the bit at from landing at
// index 0.
func (b *BitField) GetRange(from, to int) *BitField {
	checkRange("GetRange", from, to)
	return New(to - from).On((b.value & maskRange(from, to)) >> from)
}

// SetAt sets (value non-zero) or clears (value 0) the bit at index.
func (b *BitField) SetAt(value, index int) *BitField {
	checkIndex("SetAt", index)
	return b.Set(value, maskAt(index))
}

// SetRange sets or clears every bit in [from, to).
func (b *BitField) SetRange(value, from, to int) *BitField {
	checkRange("SetRange", from, to)
	return b.Set(value, maskRange(from, to))
}

// FlipAt toggles the bit at index.
func (b *BitField) FlipAt(index int) *BitField {
	checkIndex("FlipAt", index)
	return b.Flip(maskAt(index))
}

// FlipRange toggles every bit in [from, to).
func (b *BitField) FlipRange(from, to int) *BitField {
	checkRange("FlipRange", from, to)
	return b.Flip(maskRange(from, to))
}

// SetAll sets or clears every bit within the current presentation
// width.
func (b *BitField) SetAll(value int) *BitField {
	return b.Set(value, b.fullMask())
}

// FlipAll toggles every bit within the current presentation width.
// Note that it mutates the receiver, like every other mutator.
func (b *BitField) FlipAll() *BitField {
	return b.Flip(b.fullMask())
}

func (b *BitField) fullMask() int32 {
	return int32(1<<b.Len() - 1)
}

// Test reports whether all masked bits are on.
func (b *BitField) Test(masks ...int32) bool {
	mask := CombineMasks(masks...)
	return b.value&mask == mask
}

// TestAny reports whether at least one masked bit is on.
func (b *BitField) TestAny(masks ...int32) bool {
	return b.value&CombineMasks(masks...) != 0
}

// Intersects is TestAny under another name, kept for API symmetry
// with Intersect.
func (b *BitField) Intersects(masks ...int32) bool {
	return b.TestAny(masks...)
}

// TestAt reports whether the bit at index matches value (1 for set,
// anything else for clear).
func (b *BitField) TestAt(value, index int) bool {
	checkIndex("TestAt", index)
	return b.Get(index) == (value == 1)
}

// TestAll reports whether every bit within the presentation width
// matches value: all on for a positive value, all off otherwise.
func (b *BitField) TestAll(value int) bool {
	if value <= 0 {
		return b.value == 0
	}
	return b.value == b.fullMask()
}

// Count returns the number of set bits.
func (b *BitField) Count() int {
	return bits.OnesCount32(uint32(b.value))
}

// Len returns the presentation width: the minimum width or the
// position of the highest set bit plus one, whichever is greater.
func (b *BitField) Len() int {
	return max(b.minLength, bits.Len32(uint32(b.value)))
}
