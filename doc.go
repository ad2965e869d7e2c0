// Package relgraph finds the relation patterns that single out one object
// in a scene.
//
// 🚀 What is relgraph?
//
//	A scene is a set of objects joined by spatial relations (left, right,
//	front, behind, nearest, farthest). relgraph builds an immutable labelled
//	multigraph from it and reports, per object:
//		• one-hop uniqueness: an incoming or outgoing label no other edge of
//		  that object carries
//		• two-hop uniqueness: a label pair (a→b, b→c) occurring exactly once
//		  among paths ending at the object, and whether it is also unique
//		  across the whole scene
//		• a four-way class: both, only_1hop, only_2hop, neither
//
// ✨ Why?
//
//   - Referring-expression generators need relations that identify exactly
//     one object; a unique pattern is a ready-made unambiguous description.
//   - Deterministic: every output is sorted, reruns are identical.
//   - Parallel: two-hop termini are scanned concurrently with bounded workers.
//
// Packages:
//
//	label/      - closed relation alphabet, label sets, ordered pairs
//	core/       - immutable relation graph
//	builder/    - deterministic and random scene constructors
//	onehop/     - one-hop analyzer
//	twohop/     - two-hop analyzer (local + global)
//	classify/   - four-way classification and coverage
//	uniqueness/ - full pipeline and serialisable Report
//	stats/      - multi-scene aggregation
//	scene/      - CLEVR scene adapter
//	config/     - YAML configuration
//	server/     - HTTP API and Prometheus metrics
//	cmd/relgraph - command-line entry point
//
// Quick start:
//
//	g, _ := builder.BuildGraph(nil, nil, builder.Triangle())
//	rep, _ := uniqueness.Analyze(ctx, g)
//	fmt.Println(rep.Summary.Coverage)
package relgraph
