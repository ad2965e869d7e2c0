// Package classify merges one-hop and two-hop uniqueness into a four-way
// classification per object and scene-level coverage.
//
//	has1 = unique incoming ∪ unique outgoing ≠ ∅
//	has2 = locally unique two-hop pairs at the object ≠ ∅
//
//	Both      has1 ∧ has2
//	Only1Hop  has1 ∧ ¬has2
//	Only2Hop  ¬has1 ∧ has2
//	Neither   otherwise
//
// Coverage = (|V| − |Neither|) / |V|, and 0 for an empty graph.
//
// Classify is a pure function of its two inputs.
package classify
