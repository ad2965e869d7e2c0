// SPDX-License-Identifier: MIT
// Package: relgraph/builder
//
// impl_random.go - RandomScene(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewObjects); p ∈ [0,1] (else ErrInvalidProbability).
//   • RNG required when p>0 (else ErrNeedRandSource).
//   • Pairs {i,j}, i<j, visited in lexicographic order; with probability p a
//     directional label (left/right/front/behind) is drawn and, with
//     probability ½, a second one from the other axis. i→j carries the draw,
//     j→i its inverse.
//
// Determinism: fixed seed ⇒ identical draws.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relgraph/label"
)

const (
	methodRandomScene = "RandomScene"
	minRandomNodes    = 1
	probMin           = 0.0
	probMax           = 1.0
)

var (
	horizontal = [2]label.Label{label.Left, label.Right}
	depth      = [2]label.Label{label.Front, label.Behind}
)

// RandomScene returns a Constructor sampling a consistent random relation graph.
func RandomScene(n int, p float64) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minRandomNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomScene, n, minRandomNodes, ErrTooFewObjects)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w", methodRandomScene, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin {
			return fmt.Errorf("%s: %w", methodRandomScene, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			d.AddObject(cfg.attrFn(i))
		}
		if p == probMin {
			return nil
		}

		rng := cfg.rng
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if rng.Float64() >= p {
					continue
				}
				axes := [2][2]label.Label{horizontal, depth}
				first := rng.Intn(2)
				fwd := []label.Label{axes[first][rng.Intn(2)]}
				if rng.Intn(2) == 1 {
					fwd = append(fwd, axes[1-first][rng.Intn(2)])
				}
				rev := make([]label.Label, len(fwd))
				for k, l := range fwd {
					rev[k] = l.Inverse()
				}
				d.Relate(i, j, fwd...)
				d.Relate(j, i, rev...)
			}
		}

		return nil
	}
}
