package classify

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for classification.
var (
	// ErrNilResult is returned when either analyzer result is nil.
	ErrNilResult = errors.New("classify: analyzer result is nil")

	// ErrObjectMismatch is returned when the two results cover different objects.
	ErrObjectMismatch = errors.New("classify: analyzer results cover different objects")

	// ErrUnknownClass is returned when decoding an unknown class name.
	ErrUnknownClass = errors.New("classify: unknown class")
)

// Class is the uniqueness category of one object.
type Class int

// Classes in report order.
const (
	Both Class = iota
	Only1Hop
	Only2Hop
	Neither
)

var classNames = [...]string{
	Both:     "both",
	Only1Hop: "only_1hop",
	Only2Hop: "only_2hop",
	Neither:  "neither",
}

// Classes returns every class in report order.
func Classes() []Class { return []Class{Both, Only1Hop, Only2Hop, Neither} }

// String returns the snake_case class name.
func (c Class) String() string {
	if c < Both || c > Neither {
		return fmt.Sprintf("class(%d)", int(c))
	}

	return classNames[c]
}

// MarshalText encodes the class by name.
func (c Class) MarshalText() ([]byte, error) {
	if c < Both || c > Neither {
		return nil, fmt.Errorf("%w: %d", ErrUnknownClass, int(c))
	}

	return []byte(classNames[c]), nil
}

// UnmarshalText decodes a class name.
func (c *Class) UnmarshalText(text []byte) error {
	key := strings.ToLower(string(text))
	for i, name := range classNames {
		if name == key {
			*c = Class(i)
			return nil
		}
	}

	return fmt.Errorf("%w: %q", ErrUnknownClass, text)
}

// Of maps the two flags to a Class.
func Of(has1, has2 bool) Class {
	switch {
	case has1 && has2:
		return Both
	case has1:
		return Only1Hop
	case has2:
		return Only2Hop
	default:
		return Neither
	}
}

// Classification is the per-object and aggregate outcome.
type Classification struct {
	Classes  map[int]Class `json:"classes"`
	Counts   map[Class]int `json:"counts"`
	Total    int           `json:"total"`
	Coverage float64       `json:"coverage"`
}

// Members returns the objects of class c, ascending.
func (r *Classification) Members(c Class) []int {
	var out []int
	for id, got := range r.Classes {
		if got == c {
			out = append(out, id)
		}
	}
	slices.Sort(out)

	return out
}

// Covered returns the number of objects with any form of uniqueness.
func (r *Classification) Covered() int {
	return r.Total - r.Counts[Neither]
}
