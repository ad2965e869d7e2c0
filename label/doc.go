// Package label defines the closed alphabet of spatial relation labels
// carried by relation-graph edges, together with the small set and pair
// types the analyzers count over.
//
// What:
//
//   - Label: enumerated relation (Left, Right, Front, Behind, Nearest, Farthest).
//   - Set:   sorted, duplicate-free collection of labels attached to one edge.
//   - Pair:  ordered (first, second) label combination of a two-hop path.
//
// Why:
//
//   - A closed enumeration makes multiplicity counting exact: two labels are
//     equal iff their codes are equal, no string normalisation involved.
//   - Text marshalling keeps JSON/YAML reports human readable ("left", "left/front").
//
// Inverse:
//
//	Left ↔ Right, Front ↔ Behind, Nearest and Farthest are self-inverse.
//	Inverse is used to phrase a two-hop combination from the terminus'
//	point of view ("the object right of the thing behind X").
//
// Errors:
//
//	ErrUnknownLabel – Parse/UnmarshalText received a name outside the alphabet.
//	ErrBadPair      – Pair text is not of the form "first/second".
package label
