package bitfield

import (
	"math"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestCombineMasks(t *testing.T) {
	tests := []struct {
		name     string
		masks    []int32
		expected int32
	}{
		{"No masks", nil, 0},
		{"Single mask", []int32{0b1010}, 0b1010},
		{"Disjoint masks", []int32{0b0001, 0b0100}, 0b0101},
		{"Overlapping masks", []int32{0b0110, 0b0011, 0b1000}, 0b1111},
		{"Zero is neutral", []int32{0, 0b10, 0}, 0b10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CombineMasks(tt.masks...), "CombineMasks() result mismatch")
		})
	}
}

func TestSet(t *testing.T) {
	tests := []struct {
		name     string
		initial  int32
		value    int
		masks    []int32
		expected int32
	}{
		{"Set bits to 1", 0, 1, []int32{0b1000}, 0b1000},
		{"Set bits to 0", 0b1111, 0, []int32{0b0100}, 0b1011},
		{"Multiple masks combined", 0, 1, []int32{0b0001, 0b1000}, 0b1001},
		{"Non-zero value is truthy", 0, 7, []int32{0b10}, 0b10},
		{"No masks is a no-op", 0b101, 1, nil, 0b101},
		{"Clear with overlapping masks", 0b1111, 0, []int32{0b0110, 0b0011}, 0b1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(8).On(tt.initial)
			assert.Same(t, b, b.Set(tt.value, tt.masks...))
			assert.Equal(t, tt.expected, b.Value(), "Set() result mismatch")
		})
	}
}

func TestOnOff(t *testing.T) {
	b := New(8)

	b.On(0b0101)
	assert.Equal(t, int32(0b0101), b.Value())

	b.On(0b0011)
	assert.Equal(t, int32(0b0111), b.Value())

	b.Off(0b0101)
	assert.Equal(t, int32(0b0010), b.Value())

	b.Off(0b1000)
	assert.Equal(t, int32(0b0010), b.Value(), "Off() on a clear bit changes nothing")
}

func TestFlip(t *testing.T) {
	tests := []struct {
		name     string
		initial  int32
		masks    []int32
		expected int32
	}{
		{"Flip clear bits on", 0, []int32{0b1010}, 0b1010},
		{"Flip set bits off", 0b1111, []int32{0b0101}, 0b1010},
		{"Mixed flip", 0b1100, []int32{0b0110}, 0b1010},
		{"No masks is a no-op", 0b1100, nil, 0b1100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(8).On(tt.initial)
			assert.Equal(t, tt.expected, b.Flip(tt.masks...).Value(), "Flip() result mismatch")
		})
	}
}

func TestMutatorsRejectSignBit(t *testing.T) {
	mutators := map[string]func(b *BitField, mask int32){
		"Set":       func(b *BitField, mask int32) { b.Set(1, mask) },
		"On":        func(b *BitField, mask int32) { b.On(mask) },
		"Off":       func(b *BitField, mask int32) { b.Off(mask) },
		"Flip":      func(b *BitField, mask int32) { b.Flip(mask) },
		"Intersect": func(b *BitField, mask int32) { b.Intersect(mask) },
	}

	for name, mutate := range mutators {
		for _, mask := range []int32{-1, math.MinInt32, math.MinInt32 | 0b1010} {
			b := New(4).On(0b0101)

			var argErr *ArgumentError
			require.ErrorAs(t, catchPanic(func() { mutate(b, mask) }), &argErr,
				"%s(%#x) must reject a mask using bit 31", name, uint32(mask))
			assert.Equal(t, int32(0b0101), b.Value(), "the value must be untouched after a rejected mask")
			assert.Equal(t, "0101", b.Serialize())
		}
	}

	// The widest legal mask still passes.
	assert.Equal(t, int32(math.MaxInt32), New(4).On(math.MaxInt32).Value())
}

func TestFlipSelfInverse(t *testing.T) {
	for _, mask := range []int32{0, 1, 0b1010, 0x7FFFFFFF, 1 << 30} {
		b := New(8).On(0b0110_1001)
		original := b.Value()
		assert.Equal(t, original, b.Flip(mask).Flip(mask).Value(), "flipping a mask twice must restore the value")
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name     string
		initial  int32
		masks    []int32
		expected int32
	}{
		{"Keep overlap", 0b1100, []int32{0b0110}, 0b0100},
		{"Disjoint clears all", 0b1100, []int32{0b0011}, 0},
		{"Multiple masks union first", 0b1111, []int32{0b0001, 0b1000}, 0b1001},
		{"No masks clears all", 0b1111, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(8).On(tt.initial)
			assert.Equal(t, tt.expected, b.Intersect(tt.masks...).Value(), "Intersect() result mismatch")
		})
	}
}
