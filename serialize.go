/*
 * Serialization of a BitField takes two forms that round-trip exactly:
 *
 * - Serialize/Deserialize: a string of binary digits, MSB-first,
 *   left-padded with '0' to the minimum presentation width.
 *   "00000101" is a width-8 field with bits 0 and 2 set.
 *
 * - ToArray/FromArray: the same vector as a []bool, MSB-first, with
 *   length equal to the presentation width.
 *
 * Deserialize is deliberately permissive: the input must parse as a
 * number, but any non-zero decimal digit counts as a set bit, so
 * "1021" decodes the same as "1011".
 */
package bitfield

import (
	"math"
	"strconv"
	"strings"
)

// Serialize returns the binary digit string of the value, MSB-first,
// left-padded with '0' to at least MinLength characters.
func (b *BitField) Serialize() string {
	s := strconv.FormatInt(int64(b.value), 2)
	if pad := b.minLength - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}

// Deserialize parses a digit string produced by Serialize. Input that
// does not parse as a finite number is fatal; otherwise every
// character maps to one flag, non-zero digits counting as set, and
// the result has minimum width len(input).
func Deserialize(input string) *BitField {
	n, err := strconv.ParseFloat(input, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		fatalf("Deserialize", "input %q does not parse as a finite number", input)
	}
	flags := make([]bool, 0, len(input))
	for _, c := range input {
		flags = append(flags, c >= '1' && c <= '9')
	}
	return FromArray(flags)
}

// ToArray returns the flags MSB-first with length Len(). Bits are
// collected LSB-first by shift-and-test, then reversed into
// presentation order.
func (b *BitField) ToArray() []bool {
	n := b.Len()
	flags := make([]bool, 0, n)
	for i := 0; i < n; i++ {
		flags = append(flags, (b.value>>i)&1 == 1)
	}
	return Reverse(flags)
}

// String implements fmt.Stringer for debugging output.
func (b *BitField) String() string {
	return "BitField(" + b.Serialize() + ")"
}
