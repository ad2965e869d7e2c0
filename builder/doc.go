// Package builder assembles deterministic relation-graph fixtures: canonical
// scene topologies used by tests, benchmarks, examples and the CLI's
// synthetic mode.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): single orchestrator. Runs the
//     constructors against a Draft (objects + relations) in order, then
//     hands the draft to core.New.
//   - Constructors:
//     – Triangle():         three objects, the reference scene with known answers.
//     – Line(n):            n objects ordered left to right; i→j carries
//     "left" for i<j and "right" for i>j.
//     – Grid(rows, cols):   objects on a grid; column order yields left/right,
//     row order yields front/behind.
//     – RandomScene(n, p):  each unordered pair related with probability p
//     by a random label, the reverse edge carrying its inverse.
//   - Options:
//     – WithSeed / WithRand: RNG for RandomScene (required when p>0).
//     – WithAttributes:      display attributes per object index.
//
// Errors:
//
//	ErrTooFewObjects       – size parameter below the constructor minimum.
//	ErrInvalidProbability  – p outside [0,1].
//	ErrNeedRandSource      – stochastic constructor without an RNG.
//	ErrConstructFailed     – nil constructor or core.New rejection.
//
// Determinism: same constructors, options and seed ⇒ identical graphs.
package builder
