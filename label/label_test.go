package label_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph/label"
)

// TestParse covers names, case folding and unknown input.
func TestParse(t *testing.T) {
	cases := map[string]label.Label{
		"left":     label.Left,
		"RIGHT":    label.Right,
		" front ":  label.Front,
		"behind":   label.Behind,
		"Nearest":  label.Nearest,
		"farthest": label.Farthest,
	}
	for in, want := range cases {
		got, err := label.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := label.Parse("above")
	require.True(t, errors.Is(err, label.ErrUnknownLabel))
}

// TestInverse checks the involution on the whole alphabet.
func TestInverse(t *testing.T) {
	assert.Equal(t, label.Right, label.Left.Inverse())
	assert.Equal(t, label.Front, label.Behind.Inverse())
	assert.Equal(t, label.Nearest, label.Nearest.Inverse())
	for _, l := range label.All() {
		assert.Equal(t, l, l.Inverse().Inverse(), l.String())
	}
	assert.False(t, label.Label(0).Inverse().Valid())
}

// TestAll verifies alphabet order and validity.
func TestAll(t *testing.T) {
	all := label.All()
	require.Len(t, all, 6)
	assert.Equal(t, label.Left, all[0])
	assert.Equal(t, label.Farthest, all[5])
	for _, l := range all {
		assert.True(t, l.Valid())
	}
	assert.False(t, label.Label(0).Valid())
	assert.False(t, label.Label(200).Valid())
	assert.Equal(t, "label(200)", label.Label(200).String())
}

// TestSet ensures de-duplication, ordering and union.
func TestSet(t *testing.T) {
	s := label.NewSet(label.Front, label.Left, label.Front, label.Left)
	assert.Equal(t, label.Set{label.Left, label.Front}, s)
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains(label.Front))
	assert.False(t, s.Contains(label.Behind))
	assert.Equal(t, "{left, front}", s.String())

	u := s.Union(label.NewSet(label.Behind, label.Left))
	assert.Equal(t, label.Set{label.Left, label.Front, label.Behind}, u)

	assert.Nil(t, label.NewSet())
	assert.False(t, label.NewSet(label.Label(0)).Valid())
}

// TestPairText round-trips a pair through JSON, including map keys.
func TestPairText(t *testing.T) {
	p := label.Pair{First: label.Left, Second: label.Front}
	assert.Equal(t, "left/front", p.String())
	assert.Equal(t, label.Pair{First: label.Right, Second: label.Behind}, p.Inverse())

	raw, err := json.Marshal(map[label.Pair]int{p: 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"left/front":1}`, string(raw))

	var back map[label.Pair]int
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, 1, back[p])

	var bad label.Pair
	require.ErrorIs(t, bad.UnmarshalText([]byte("left")), label.ErrBadPair)
	require.ErrorIs(t, bad.UnmarshalText([]byte("left/up")), label.ErrUnknownLabel)
}

// TestPairOrder checks Less/Compare consistency.
func TestPairOrder(t *testing.T) {
	a := label.Pair{First: label.Left, Second: label.Behind}
	b := label.Pair{First: label.Right, Second: label.Left}
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
}
