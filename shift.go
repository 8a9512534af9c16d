// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import "errors"

// Shift computes, for each zone in actual, the difference between the
// zone's measured value and its interpolated estimate: the change in
// the attribute between the two survey releases, measured on actual's
// boundaries.
//
// Every zone of actual must have an estimate. Zones without one are
// reported together as MissingEstimateError values joined into the
// returned error, and the returned map carries no entry for them; a
// redrawn boundary shows up as a missing id, never as a silent zero
// shift.
func Shift(estimated Result, actual *ZoneSet) (map[string]float64, error) {
	shifts := make(map[string]float64, actual.Len())
	var errs []error
	for _, z := range actual.Zones() {
		est, ok := estimated.Estimate(z.ID)
		if !ok {
			errs = append(errs, &MissingEstimateError{ZoneID: z.ID})
			continue
		}
		shifts[z.ID] = z.Value - est
	}
	if len(errs) > 0 {
		return shifts, errors.Join(errs...)
	}
	return shifts, nil
}
