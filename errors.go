// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import "fmt"

// GeometryError indicates that a zone's polygon is unusable for
// overlay, for example because one of its rings intersects itself.
// Overlay on such a ring can silently yield a zero-area intersection,
// so invalid geometry fails instead.
type GeometryError struct {
	ZoneID string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("areal: invalid geometry in zone %q: %s", e.ZoneID, e.Reason)
}

// ProjectionMismatchError indicates that two zone sets do not share a
// coordinate reference system. The library never reprojects
// implicitly; reproject explicitly, for example with ReadZones, before
// interpolating.
type ProjectionMismatchError struct {
	Origin, Target string

	// Role identifies which zone set disagrees with the origin set:
	// "target" or "weights".
	Role string
}

func (e *ProjectionMismatchError) Error() string {
	return fmt.Sprintf("areal: projection mismatch: origin %q, %s %q", e.Origin, e.Role, e.Target)
}

// MissingEstimateError indicates that a zone required an interpolated
// estimate but the interpolation result contains none for its id.
type MissingEstimateError struct {
	ZoneID string
}

func (e *MissingEstimateError) Error() string {
	return fmt.Sprintf("areal: no estimate for zone %q", e.ZoneID)
}
