// SPDX-License-Identifier: MIT
// Package: relgraph/builder
//
// impl_triangle.go - the three-object reference scene.
//
//	0→1 {left}         1→0 {right}
//	1→2 {front}        2→1 {behind}
//	0→2 {left, front}  2→0 {right, behind}

package builder

import "github.com/katalvlaran/relgraph/label"

// Triangle returns a Constructor for the three-object reference scene.
func Triangle() Constructor {
	return func(d *Draft, cfg builderConfig) error {
		for i := 0; i < 3; i++ {
			d.AddObject(cfg.attrFn(i))
		}
		d.Relate(0, 1, label.Left)
		d.Relate(1, 0, label.Right)
		d.Relate(1, 2, label.Front)
		d.Relate(2, 1, label.Behind)
		d.Relate(0, 2, label.Left, label.Front)
		d.Relate(2, 0, label.Right, label.Behind)

		return nil
	}
}
