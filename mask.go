package bitfield

const maxBits = 31

// CombineMasks reduces any number of masks into one by bitwise OR.
// With no arguments the result is 0. Every multi-mask operation in
// the package funnels through here.
func CombineMasks(masks ...int32) int32 {
	var combined int32
	for _, mask := range masks {
		combined |= mask
	}
	return combined
}

func maskAt(index int) int32 {
	return 1 << index
}

// maskRange covers the half-open range [from, to).
func maskRange(from, to int) int32 {
	return int32(1<<(to-from)-1) << from
}

// checkMask rejects masks touching bit 31, the sign bit. A negative
// mask would push the value itself negative and break serialization.
func checkMask(op string, mask int32) {
	if mask < 0 {
		invalidArgf(op, "mask %#x uses bit 31, only bits 0..%d exist", uint32(mask), maxBits-1)
	}
}

// Set turns the masked bits on when value is non-zero and off when it
// is 0, and returns the receiver for chaining.
func (b *BitField) Set(value int, masks ...int32) *BitField {
	mask := CombineMasks(masks...)
	checkMask("Set", mask)
	if value == 0 {
		b.value &^= mask
	} else {
		b.value |= mask
	}
	return b
}

// On is Set(1, masks...).
func (b *BitField) On(masks ...int32) *BitField {
	return b.Set(1, masks...)
}

// Off is Set(0, masks...).
func (b *BitField) Off(masks ...int32) *BitField {
	return b.Set(0, masks...)
}

// Flip toggles the masked bits.
func (b *BitField) Flip(masks ...int32) *BitField {
	mask := CombineMasks(masks...)
	checkMask("Flip", mask)
	b.value ^= mask
	return b
}

// Intersect keeps only the masked bits.
func (b *BitField) Intersect(masks ...int32) *BitField {
	mask := CombineMasks(masks...)
	checkMask("Intersect", mask)
	b.value &= mask
	return b
}
