// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"runtime"
	"sync"

	"gonum.org/v1/gonum/floats"
)

// DefaultEpsilon is the smallest intersection area treated as nonzero
// when no epsilon is configured. Intersections at or below it are
// discarded as boundary-snapping artifacts.
const DefaultEpsilon = 1e-9

// Result holds interpolated estimates indexed by target-zone id.
// Every target zone of the interpolation has an entry; targets
// disjoint from all origin zones carry zero.
type Result struct {
	estimates    map[string]float64
	weightTotals map[string]float64
}

func newResult(target *ZoneSet) Result {
	r := Result{
		estimates:    make(map[string]float64, target.Len()),
		weightTotals: make(map[string]float64, target.Len()),
	}
	for _, z := range target.Zones() {
		r.estimates[z.ID] = 0
	}
	return r
}

// Estimate returns the estimated value for the given target-zone id
// and whether the id was a target of the interpolation.
func (r Result) Estimate(id string) (float64, bool) {
	v, ok := r.estimates[id]
	return v, ok
}

// Estimates returns a copy of the id to estimate mapping.
func (r Result) Estimates() map[string]float64 {
	o := make(map[string]float64, len(r.estimates))
	for id, v := range r.estimates {
		o[id] = v
	}
	return o
}

// WeightTotal returns the total weight redistributed into the given
// target zone by PopulationWeighted. It is zero for results produced
// by AreaWeighted.
func (r Result) WeightTotal(id string) float64 { return r.weightTotals[id] }

// Total returns the sum of the estimates.
func (r Result) Total() float64 {
	vals := make([]float64, 0, len(r.estimates))
	for _, v := range r.estimates {
		vals = append(vals, v)
	}
	return floats.Sum(vals)
}

// An Interpolator estimates, for each zone of a target ZoneSet, the
// value an extensive attribute measured on an origin ZoneSet would
// have had if it had been measured on the target zone's boundaries.
type Interpolator interface {
	Interpolate(origin, target *ZoneSet) (Result, error)
}

// AreaWeighted interpolates by intersecting each origin zone with
// each target zone and redistributing the origin value in proportion
// to intersected area. It assumes the attribute is uniformly
// distributed within each origin zone; that assumption is the
// method's source of estimation error.
type AreaWeighted struct {
	// Epsilon is the smallest intersection area treated as nonzero.
	// If zero, DefaultEpsilon is used.
	Epsilon float64
}

var _ Interpolator = AreaWeighted{}

// Interpolate estimates origin's values on target's boundaries. The
// two zone sets must share a coordinate reference system and contain
// only valid polygons.
func (aw AreaWeighted) Interpolate(origin, target *ZoneSet) (Result, error) {
	if err := checkSets(origin, target, nil); err != nil {
		return Result{}, err
	}
	eps := aw.epsilon()
	result := newResult(target)
	for _, o := range origin.Zones() {
		oArea := o.Area()
		if oArea == 0 {
			continue
		}
		for _, t := range target.searchIntersect(o.Bounds()) {
			frac := areaFraction(o, t, oArea, eps)
			if frac == 0 {
				continue
			}
			result.estimates[t.ID] += frac * o.Value
		}
	}
	return result, nil
}

// InterpolateParallel is equivalent to Interpolate but divides the
// target zones among GOMAXPROCS goroutines. Each target zone's
// estimate is independent of every other's, so the work fans out with
// no shared state and the per-target estimates fan back in unchanged.
func (aw AreaWeighted) InterpolateParallel(origin, target *ZoneSet) (Result, error) {
	if err := checkSets(origin, target, nil); err != nil {
		return Result{}, err
	}
	eps := aw.epsilon()
	result := newResult(target)

	type estimate struct {
		id string
		v  float64
	}
	nprocs := runtime.GOMAXPROCS(-1)
	targetChan := make(chan *Zone)
	estChan := make(chan estimate, nprocs)
	var wg sync.WaitGroup
	for p := 0; p < nprocs; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range targetChan {
				var sum float64
				for _, o := range origin.searchIntersect(t.Bounds()) {
					oArea := o.Area()
					if oArea == 0 {
						continue
					}
					sum += areaFraction(o, t, oArea, eps) * o.Value
				}
				estChan <- estimate{id: t.ID, v: sum}
			}
		}()
	}
	go func() {
		for _, t := range target.Zones() {
			targetChan <- t
		}
		close(targetChan)
		wg.Wait()
		close(estChan)
	}()
	for e := range estChan {
		result.estimates[e.id] = e.v
	}
	return result, nil
}

func (aw AreaWeighted) epsilon() float64 {
	if aw.Epsilon == 0 {
		return DefaultEpsilon
	}
	return aw.Epsilon
}

// areaFraction returns the fraction of o's area lying within t, or
// zero if the zones are disjoint or their intersection is no larger
// than eps.
func areaFraction(o, t *Zone, oArea, eps float64) float64 {
	isect := o.Intersection(t.Polygonal)
	if isect == nil {
		return 0
	}
	a := isect.Area()
	if a <= eps {
		return 0
	}
	return a / oArea
}

// checkSets verifies that target, and the weight set if there is one,
// share origin's coordinate reference system and that all three
// contain only valid polygons.
func checkSets(origin, target, weights *ZoneSet) error {
	if target.srs != origin.srs {
		return &ProjectionMismatchError{Origin: origin.srs, Target: target.srs, Role: "target"}
	}
	if weights != nil && weights.srs != origin.srs {
		return &ProjectionMismatchError{Origin: origin.srs, Target: weights.srs, Role: "weights"}
	}
	for _, s := range []*ZoneSet{origin, target, weights} {
		if s == nil {
			continue
		}
		for _, z := range s.Zones() {
			if err := validate(z); err != nil {
				return err
			}
		}
	}
	return nil
}
