// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"errors"
	"fmt"

	"github.com/ctessum/geom"
)

// FallbackPolicy selects the behavior of PopulationWeighted for an
// origin zone that contains no weight, such as a tract whose census
// blocks all report zero population.
type FallbackPolicy int

const (
	// FallbackZero distributes nothing from a zero-weight origin
	// zone. The zone's value is dropped from the estimates, so
	// conservation does not hold for such zones.
	FallbackZero FallbackPolicy = iota

	// FallbackArea redistributes a zero-weight origin zone's value in
	// proportion to intersected area, as AreaWeighted would.
	FallbackArea
)

// PopulationWeighted interpolates like AreaWeighted but redistributes
// each origin zone's value in proportion to a finer-grained weight
// variable rather than raw area. Weight sub-units, typically census
// blocks carrying a known population, are assigned to zones by
// centroid containment; each sub-unit counts toward exactly one
// origin zone and at most one target zone, so a centroid lying
// exactly on a shared boundary is never counted twice. The method is
// more accurate than area weighting whenever the weight variable
// correlates with the true distribution of the attribute inside
// origin zones.
type PopulationWeighted struct {
	// Weights is the finer-grained zone set whose Value column holds
	// the weights. Weights must be non-negative.
	Weights *ZoneSet

	// Fallback selects what happens for origin zones containing no
	// weight. The default is FallbackZero.
	Fallback FallbackPolicy

	// Epsilon is the smallest intersection area treated as nonzero.
	// If zero, DefaultEpsilon is used.
	Epsilon float64
}

var _ Interpolator = PopulationWeighted{}

// Interpolate estimates origin's values on target's boundaries,
// redistributing by weight. Origin, target, and the weight set must
// all share a coordinate reference system.
func (pw PopulationWeighted) Interpolate(origin, target *ZoneSet) (Result, error) {
	if pw.Weights == nil {
		return Result{}, errors.New("areal: PopulationWeighted requires a weight zone set")
	}
	if err := checkSets(origin, target, pw.Weights); err != nil {
		return Result{}, err
	}
	for _, w := range pw.Weights.Zones() {
		if w.Value < 0 {
			return Result{}, fmt.Errorf("areal: negative weight %g in zone %q", w.Value, w.ID)
		}
	}
	eps := pw.Epsilon
	if eps == 0 {
		eps = DefaultEpsilon
	}

	// Assign each weight sub-unit to exactly one origin zone, the
	// first containing its centroid in insertion order. A centroid on
	// the boundary shared by two origin zones would otherwise inflate
	// both denominators.
	units := make(map[string][]*Zone, origin.Len())
	for _, w := range pw.Weights.Zones() {
		c := w.Centroid()
		for _, o := range origin.Zones() {
			if !o.Bounds().Overlaps(c.Bounds()) {
				continue
			}
			if c.Within(o.Polygonal) == geom.Outside {
				continue
			}
			units[o.ID] = append(units[o.ID], w)
			break
		}
	}

	result := newResult(target)
	for _, o := range origin.Zones() {
		ounits := units[o.ID]
		var denom float64
		for _, w := range ounits {
			denom += w.Value
		}
		if denom == 0 {
			if pw.Fallback == FallbackArea {
				pw.fallbackArea(result, o, target, eps)
			}
			continue
		}
		// Each sub-unit counts toward the first target intersection
		// containing its centroid, so boundary centroids never land
		// in two numerators.
		assigned := make(map[*Zone]bool, len(ounits))
		for _, t := range target.Zones() {
			if !o.Bounds().Overlaps(t.Bounds()) {
				continue
			}
			isect := o.Intersection(t.Polygonal)
			if isect == nil || isect.Area() <= eps {
				continue
			}
			var num float64
			for _, w := range ounits {
				if assigned[w] {
					continue
				}
				if w.Centroid().Within(isect) == geom.Outside {
					continue
				}
				assigned[w] = true
				num += w.Value
			}
			if num == 0 {
				continue
			}
			result.estimates[t.ID] += o.Value * num / denom
			result.weightTotals[t.ID] += num
		}
	}
	return result, nil
}

// fallbackArea redistributes o's value by intersected area.
func (pw PopulationWeighted) fallbackArea(result Result, o *Zone, target *ZoneSet, eps float64) {
	oArea := o.Area()
	if oArea == 0 {
		return
	}
	for _, t := range target.searchIntersect(o.Bounds()) {
		frac := areaFraction(o, t, oArea, eps)
		if frac == 0 {
			continue
		}
		result.estimates[t.ID] += frac * o.Value
	}
}
