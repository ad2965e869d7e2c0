// Package scene adapts CLEVR-style scene JSON into a core.Graph.
//
// A scene carries pre-computed relationship lists keyed by label:
//
//	"relationships": {"left": [[1, 2], [2], []], "front": [...], ...}
//
// Entry relationships[label][i] lists the objects j for which the edge
// i → j carries label. Self references (j == i) are skipped. Only the
// relationship lists are consumed; 3D coordinates and camera data are
// ignored.
//
// Errors:
//
//   - ErrUnknownRelation for a label key outside the alphabet (unless
//     WithIgnoreUnknownLabels).
//   - ErrRelationShape when a relationship table does not have one row
//     per object.
//   - core errors (e.g. core.ErrObjectNotFound) for indices out of range.
package scene
