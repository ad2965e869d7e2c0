package label

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for label parsing.
var (
	// ErrUnknownLabel indicates a relation name outside the alphabet.
	ErrUnknownLabel = errors.New("label: unknown relation label")

	// ErrBadPair indicates a malformed "first/second" pair text.
	ErrBadPair = errors.New("label: malformed label pair")
)

// Label is one spatial relation. The zero value is invalid.
type Label uint8

// The relation alphabet. Declaration order is the canonical sort order.
const (
	invalid Label = iota
	Left
	Right
	Front
	Behind
	Nearest
	Farthest
	sentinel // one past the last valid label
)

var names = [...]string{
	invalid:  "invalid",
	Left:     "left",
	Right:    "right",
	Front:    "front",
	Behind:   "behind",
	Nearest:  "nearest",
	Farthest: "farthest",
}

var inverses = [...]Label{
	invalid:  invalid,
	Left:     Right,
	Right:    Left,
	Front:    Behind,
	Behind:   Front,
	Nearest:  Nearest,
	Farthest: Farthest,
}

// All returns every valid label in canonical order.
func All() []Label {
	out := make([]Label, 0, int(sentinel)-1)
	for l := Left; l < sentinel; l++ {
		out = append(out, l)
	}

	return out
}

// Valid reports whether l belongs to the alphabet.
func (l Label) Valid() bool {
	return l > invalid && l < sentinel
}

// String returns the lower-case relation name.
func (l Label) String() string {
	if !l.Valid() {
		return fmt.Sprintf("label(%d)", uint8(l))
	}

	return names[l]
}

// Inverse returns the relation seen from the other endpoint.
// Invalid labels map to themselves.
func (l Label) Inverse() Label {
	if !l.Valid() {
		return l
	}

	return inverses[l]
}

// Parse maps a relation name (case-insensitive, surrounding spaces ignored)
// to its Label.
func Parse(s string) (Label, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for l := Left; l < sentinel; l++ {
		if names[l] == key {
			return l, nil
		}
	}

	return invalid, fmt.Errorf("%w: %q", ErrUnknownLabel, s)
}

// MarshalText encodes the label by name.
func (l Label) MarshalText() ([]byte, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: code %d", ErrUnknownLabel, uint8(l))
	}

	return []byte(names[l]), nil
}

// UnmarshalText decodes a label name.
func (l *Label) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*l = parsed

	return nil
}
