// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"testing"

	"github.com/ctessum/geom"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		poly geom.Polygon
		ok   bool
	}{
		{"square", rect(0, 0, 1, 1), true},
		{"closed square", geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}, {X: 0, Y: 0}}}, true},
		{"triangle", geom.Polygon{{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 1, Y: 2}}}, true},
		{"bowtie", geom.Polygon{{{X: 0, Y: 0}, {X: 2, Y: 2}, {X: 2, Y: 0}, {X: 0, Y: 2}}}, false},
		{"degenerate", geom.Polygon{{{X: 0, Y: 0}, {X: 1, Y: 1}}}, false},
		{"empty ring", geom.Polygon{{}}, true},
	}
	for _, test := range tests {
		err := validate(&Zone{Polygonal: test.poly, ID: test.name})
		if test.ok && err != nil {
			t.Errorf("%s: unexpected error %v", test.name, err)
		}
		if !test.ok && err == nil {
			t.Errorf("%s: want GeometryError, have nil", test.name)
		}
	}
}

func TestSegmentsCross(t *testing.T) {
	a1, a2 := geom.Point{X: 0, Y: 0}, geom.Point{X: 2, Y: 2}
	b1, b2 := geom.Point{X: 0, Y: 2}, geom.Point{X: 2, Y: 0}
	if !segmentsCross(a1, a2, b1, b2) {
		t.Error("crossing segments not detected")
	}
	// Sharing an endpoint is not a proper crossing.
	if segmentsCross(a1, a2, a2, geom.Point{X: 3, Y: 0}) {
		t.Error("shared endpoint counted as crossing")
	}
	// Parallel segments cannot cross.
	if segmentsCross(a1, a2, geom.Point{X: 1, Y: 0}, geom.Point{X: 3, Y: 2}) {
		t.Error("parallel segments counted as crossing")
	}
}
