// Package twohop finds label combinations of two-edge paths that pick out
// the object the path ends at.
//
// What:
//
//	A two-hop path is a triple (a, b, c) of distinct objects with edges a→b
//	and b→c. Every (l_ab, l_bc) ∈ Labels(a,b) × Labels(b,c) is one labelled
//	path instance keyed by label.Pair{First: l_ab, Second: l_bc}. For each
//	terminus c:
//
//	  – local uniqueness:  the pair occurs on exactly one instance ending at c;
//	  – global uniqueness: the pair occurs on exactly one instance in the whole
//	    graph (and therefore, at its terminus, is also locally unique).
//
// How:
//
//	Termini are scanned independently by a bounded pool of workers
//	(golang.org/x/sync/errgroup). Each worker groups one terminus at a time
//	into a Pair → {count, witness} table, so memory follows the per-terminus
//	path count rather than the global one. The per-terminus count tables
//	(at most |L|² entries each) are then summed into the global frequency
//	table and the global flags are derived without re-enumerating paths.
//
// Options:
//
//	WithContext(ctx)       cancellation between termini.
//	WithWorkers(n)         n>0 workers, 0 = GOMAXPROCS, n<0 → ErrOptionViolation.
//	WithInvertedLabels()   phrase pairs from the terminus' side (Label.Inverse
//	                       on both halves); uniqueness is unchanged.
//
// Complexity:
//
//	Time O(Σ_c Σ_{b∈pred(c)} |pred(b)|·|L(b,c)|·|L(a,b)|) = O(V³·|L|²) worst case,
//	Memory O(V·|L|²) for the merged tables.
//
// Errors:
//
//	ErrGraphNil        – nil graph.
//	ErrOptionViolation – invalid option value.
//	ctx.Err()          – cancelled context.
package twohop
