// Package uniqueness runs the full relation-graph uniqueness pipeline and
// assembles the serialisable per-scene Report.
//
// Pipeline:
//
//	core.Graph ──┬── onehop.Analyze ──┐
//	             └── twohop.Analyze ──┴── classify.Classify ── Report
//
// The two analyzers only read the immutable graph and run concurrently
// under an errgroup; classification waits for both.
//
// A Report is a plain record (JSON tags, label names as strings) so that
// template generators and statistics printers never touch core.Graph.
// Its Summary mirrors the per-scene statistics the dataset tooling prints:
// objects with unique incoming / outgoing labels, locally and globally
// unique two-hop combinations, and the four class counts.
//
// Re-running Analyze on the same graph yields identical reports except for
// the random Report.ID.
package uniqueness
