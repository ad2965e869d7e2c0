// Package onehop computes single-relation uniqueness on a core.Graph.
//
// What:
//
//	For every object v, the incoming multiset is the concatenation of
//	Labels(u, v) over u ∈ Predecessors(v); the outgoing multiset is the
//	concatenation of Labels(v, w) over w ∈ Successors(v). A label whose count
//	in a multiset is exactly 1 is locally unique for that direction: "the
//	object that something is left of" names v on its own.
//
// Counting rule:
//
//	The count==1 rule is applied uniformly. Objects with in- or out-degree 1
//	are not special-cased, so a lone incoming label is unique.
//
// Complexity:
//
//	Time O(V + Σ|labels(e)|), Memory O(V·|L|).
//
// Errors:
//
//	ErrGraphNil – nil graph.
package onehop
