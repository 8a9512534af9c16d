// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"github.com/ctessum/geom"
)

// validate checks that each ring of each polygon in z is free of
// self-intersections.
func validate(z *Zone) error {
	for _, poly := range z.Polygons() {
		for _, r := range poly {
			if err := validateRing(z.ID, r); err != nil {
				return err
			}
		}
	}
	return nil
}

func validateRing(id string, r []geom.Point) error {
	n := len(r)
	if n == 0 {
		return nil
	}
	// Drop an explicit closing point so all rings are treated uniformly.
	if n > 1 && r[0] == r[n-1] {
		r = r[:n-1]
		n--
	}
	if n < 3 {
		return &GeometryError{ZoneID: id, Reason: "ring has fewer than 3 distinct points"}
	}
	for i := 0; i < n; i++ {
		a1, a2 := r[i], r[(i+1)%n]
		for j := i + 1; j < n; j++ {
			// Adjacent segments share an endpoint and cannot properly cross.
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b1, b2 := r[j], r[(j+1)%n]
			if segmentsCross(a1, a2, b1, b2) {
				return &GeometryError{ZoneID: id, Reason: "ring intersects itself"}
			}
		}
	}
	return nil
}

// segmentsCross reports whether segments a1a2 and b1b2 properly cross.
// Shared endpoints and collinear touches do not count as crossings.
func segmentsCross(a1, a2, b1, b2 geom.Point) bool {
	d1 := cross(b1, b2, a1)
	d2 := cross(b1, b2, a2)
	d3 := cross(a1, a2, b1)
	d4 := cross(a1, a2, b2)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

// cross returns the z-component of (a-o) × (b-o).
func cross(o, a, b geom.Point) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
