// SPDX-License-Identifier: MIT
// Package: relgraph/builder
//
// impl_grid.go - objects placed on a rows×cols grid.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1 (else ErrTooFewObjects).
//   • Object index = r*cols + c.
//   • i→j gets {left} if col(i)<col(j), {right} if col(i)>col(j),
//     {front} if row(i)<row(j), {behind} if row(i)>row(j).
//     Same-row, same-column pairs carry one label; others carry two.
//
// Complexity: O((rows·cols)²) relations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relgraph/label"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor for a rows×cols arrangement.
func Grid(rows, cols int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewObjects)
		}
		n := rows * cols
		for i := 0; i < n; i++ {
			d.AddObject(cfg.attrFn(i))
		}
		for i := 0; i < n; i++ {
			ri, ci := i/cols, i%cols
			for j := 0; j < n; j++ {
				if i == j {
					continue
				}
				rj, cj := j/cols, j%cols
				var labels []label.Label
				switch {
				case ci < cj:
					labels = append(labels, label.Left)
				case ci > cj:
					labels = append(labels, label.Right)
				}
				switch {
				case ri < rj:
					labels = append(labels, label.Front)
				case ri > rj:
					labels = append(labels, label.Behind)
				}
				d.Relate(i, j, labels...)
			}
		}

		return nil
	}
}
