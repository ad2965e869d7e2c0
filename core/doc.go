// Package core provides the immutable RelationGraph: a directed multigraph
// over scene objects in which every ordered pair (u, v), u ≠ v, optionally
// carries a non-empty set of spatial relation labels.
//
// The Graph G = (V, E) is built once from the relation data produced by a
// geometry stage and is read-only afterwards:
//
//   - Objects carry an integer Index plus display attributes
//     (Color, Shape, Material, Size) that never influence analysis.
//   - Edges map (from, to) → label.Set; an absent entry means "no relation".
//   - Predecessor and successor lists are pre-computed and sorted at
//     construction time, so every query is deterministic and lock-free.
//
// Input policy (applied by New):
//
//	– Empty label set            → no edge (never an error).
//	– Duplicate labels in a set  → de-duplicated.
//	– Two entries for one pair   → merged (set union).
//	– Self-loop (from == to)     → ErrLoopNotAllowed.
//	– Unknown endpoint           → ErrObjectNotFound.
//	– Label outside the alphabet → ErrInvalidLabel.
//
// With WithDropInvalid() the last three cases are dropped instead, each
// logged as a warning through the configured *slog.Logger and counted in
// Graph.Dropped(). The default policy rejects.
//
// Core Methods:
//
//	New(objects, relations, opts...) (*Graph, error)        // O(V + E·L log L)
//	NewFromMap(objects, map[[2]int][]label.Label, opts...) // same, map input
//	Objects() []Object                                     // O(V), sorted by Index
//	ObjectIDs() []int                                      // O(V)
//	Object(id) (Object, bool), HasObject(id) bool          // O(1)
//	Predecessors(v) []int, Successors(u) []int             // O(d)
//	Labels(u, v) label.Set, HasEdge(u, v) bool             // O(1)
//	ObjectCount(), EdgeCount(), LabelCount(), Dropped()    // O(1)
//
// Concurrency:
//
//	A *Graph is never mutated after New returns; any number of goroutines
//	may query it concurrently.
package core
