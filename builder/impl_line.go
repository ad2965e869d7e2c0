// SPDX-License-Identifier: MIT
// Package: relgraph/builder
//
// impl_line.go - n objects ordered left to right.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewObjects).
//   • For every ordered pair i≠j: i→j {left} if i<j, {right} otherwise.
//
// Complexity: O(n²) relations.

package builder

import (
	"fmt"

	"github.com/katalvlaran/relgraph/label"
)

const (
	methodLine   = "Line"
	minLineNodes = 1
)

// Line returns a Constructor for n objects on a left-to-right line.
func Line(n int) Constructor {
	return func(d *Draft, cfg builderConfig) error {
		if n < minLineNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodLine, n, minLineNodes, ErrTooFewObjects)
		}
		for i := 0; i < n; i++ {
			d.AddObject(cfg.attrFn(i))
		}
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				switch {
				case i < j:
					d.Relate(i, j, label.Left)
				case i > j:
					d.Relate(i, j, label.Right)
				}
			}
		}

		return nil
	}
}
