package bitfield

import (
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Layout maps flag names to bit positions, so hosts can address a
// BitField by name instead of raw masks. A layout is immutable once
// parsed.
type Layout struct {
	names     map[string]int
	minLength int
}

type layoutDoc struct {
	Flags     map[string]int `yaml:"flags"`
	MinLength int            `yaml:"min_length"`
}

// ParseLayout reads a YAML document of the form
//
//	flags:
//	  read: 0
//	  write: 1
//	min_length: 8
//
// min_length is optional and defaults to the highest index plus one.
// Every index must be unique and in [0, 31).
func ParseLayout(data []byte) (*Layout, error) {
	var doc layoutDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	if len(doc.Flags) == 0 {
		return nil, errors.New("layout: no flags defined")
	}

	byIndex := make(map[int]string, len(doc.Flags))
	highest := 0
	for name, index := range doc.Flags {
		if index < 0 || index >= maxBits {
			return nil, fmt.Errorf("layout: flag %q index %d out of range [0, %d)", name, index, maxBits)
		}
		if prev, taken := byIndex[index]; taken {
			return nil, fmt.Errorf("layout: flags %q and %q share index %d", prev, name, index)
		}
		byIndex[index] = name
		if index > highest {
			highest = index
		}
	}

	minLength := doc.MinLength
	if minLength == 0 {
		minLength = highest + 1
	}
	if minLength < highest+1 || minLength > maxBits {
		return nil, fmt.Errorf("layout: min_length %d must be in [%d, %d]", minLength, highest+1, maxBits)
	}

	names := make(map[string]int, len(doc.Flags))
	for name, index := range doc.Flags {
		names[name] = index
	}
	return &Layout{names: names, minLength: minLength}, nil
}

// MustParseLayout is ParseLayout for compiled-in documents; a bad
// document is fatal.
func MustParseLayout(data []byte) *Layout {
	l, err := ParseLayout(data)
	if err != nil {
		fatalf("MustParseLayout", "%v", err)
	}
	return l
}

// MinLength returns the presentation width of fields created by New.
func (l *Layout) MinLength() int {
	return l.minLength
}

// Index returns the bit position of a flag name.
func (l *Layout) Index(name string) (int, bool) {
	index, ok := l.names[name]
	return index, ok
}

// Mask returns the combined mask of the named flags. An unknown name
// is an error.
func (l *Layout) Mask(names ...string) (int32, error) {
	masks := make([]int32, 0, len(names))
	for _, name := range names {
		index, ok := l.names[name]
		if !ok {
			return 0, fmt.Errorf("layout: unknown flag %q", name)
		}
		masks = append(masks, maskAt(index))
	}
	return CombineMasks(masks...), nil
}

// New returns an empty BitField sized to the layout.
func (l *Layout) New() *BitField {
	return New(l.minLength)
}

// Names returns the names of the flags set in b, in ascending index
// order.
func (l *Layout) Names(b *BitField) []string {
	var names []string
	for name, index := range l.names {
		if b.Get(index) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return l.names[names[i]] < l.names[names[j]]
	})
	return names
}
