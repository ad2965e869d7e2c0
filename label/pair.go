package label

import (
	"fmt"
	"strings"
)

// pairSep joins the two halves of a Pair in its text form.
const pairSep = "/"

// Pair is the ordered label combination of a two-hop path a→b→c:
// First labels a→b, Second labels b→c.
type Pair struct {
	First  Label
	Second Label
}

// Valid reports whether both halves are valid labels.
func (p Pair) Valid() bool { return p.First.Valid() && p.Second.Valid() }

// Inverse inverts both halves, keeping their order.
func (p Pair) Inverse() Pair {
	return Pair{First: p.First.Inverse(), Second: p.Second.Inverse()}
}

// Less orders pairs by First, then Second.
func (p Pair) Less(o Pair) bool {
	if p.First != o.First {
		return p.First < o.First
	}

	return p.Second < o.Second
}

// Compare returns -1, 0 or +1; usable with slices.SortFunc.
func (p Pair) Compare(o Pair) int {
	switch {
	case p.Less(o):
		return -1
	case o.Less(p):
		return 1
	default:
		return 0
	}
}

// String renders "first/second".
func (p Pair) String() string {
	return p.First.String() + pairSep + p.Second.String()
}

// MarshalText encodes the pair as "first/second".
func (p Pair) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrBadPair, p)
	}

	return []byte(p.String()), nil
}

// UnmarshalText decodes "first/second".
func (p *Pair) UnmarshalText(text []byte) error {
	first, second, ok := strings.Cut(string(text), pairSep)
	if !ok {
		return fmt.Errorf("%w: %q", ErrBadPair, text)
	}
	a, err := Parse(first)
	if err != nil {
		return err
	}
	b, err := Parse(second)
	if err != nil {
		return err
	}
	*p = Pair{First: a, Second: b}

	return nil
}
