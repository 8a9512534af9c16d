// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package areal contains functions for areal interpolation of census
// survey data: estimating an extensive attribute, such as a population
// count, measured on one set of zone boundaries onto a different,
// overlapping set of boundaries, and differencing two survey releases
// measured on incompatible boundaries to produce a per-zone shift.
package areal
