// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"fmt"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
	"github.com/ctessum/geom/proj"
	"gonum.org/v1/gonum/floats"
)

// Zone is an individual geographic unit carrying an extensive
// attribute, such as the population count of a census tract.
type Zone struct {
	geom.Polygonal

	// ID identifies the zone within its ZoneSet. Typical values are
	// census GEOIDs.
	ID string

	// Value is the extensive attribute of the zone. Extensive means
	// the attribute's total is meaningful when summed across
	// sub-areas; population count is a typical value. Rates and
	// densities must be averaged rather than summed and do not belong
	// here.
	Value float64
}

// ZoneSet is an ordered collection of zones sharing one coordinate
// reference system. Zones are indexed by id, so joins between zone
// sets never depend on insertion order.
type ZoneSet struct {
	zones []*Zone
	byID  map[string]*Zone
	index *rtree.Rtree
	srs   string
	sr    *proj.SR
}

// NewZoneSet creates an empty ZoneSet whose zones are in the
// coordinate reference system described by the Proj4 definition srs.
// The definition should describe a planar, approximately equal-area
// projection; area weighting on spherical coordinates is numerically
// meaningless.
func NewZoneSet(srs string) (*ZoneSet, error) {
	sr, err := proj.Parse(srs)
	if err != nil {
		return nil, fmt.Errorf("areal: parsing zone set projection: %w", err)
	}
	// Parse defers resolving the projection name; building a transform
	// forces resolution so an unknown projection fails here rather
	// than on the first geometry transform.
	ll, err := proj.Parse("+proj=longlat")
	if err != nil {
		return nil, fmt.Errorf("areal: parsing zone set projection: %w", err)
	}
	if _, err := sr.NewTransform(ll); err != nil {
		return nil, fmt.Errorf("areal: resolving zone set projection: %w", err)
	}
	return &ZoneSet{
		byID:  make(map[string]*Zone),
		index: rtree.NewTree(25, 50),
		srs:   srs,
		sr:    sr,
	}, nil
}

// Add adds z to the receiver. Zone ids must be unique within a
// ZoneSet.
func (s *ZoneSet) Add(z *Zone) error {
	if _, ok := s.byID[z.ID]; ok {
		return fmt.Errorf("areal: duplicate zone id %q", z.ID)
	}
	s.zones = append(s.zones, z)
	s.byID[z.ID] = z
	s.index.Insert(z)
	return nil
}

// Len returns the number of zones in the receiver.
func (s *ZoneSet) Len() int { return len(s.zones) }

// Zones returns the zones in the receiver in insertion order.
func (s *ZoneSet) Zones() []*Zone { return s.zones }

// Zone returns the zone with the given id, or nil if there is none.
func (s *ZoneSet) Zone(id string) *Zone { return s.byID[id] }

// SRS returns the Proj4 definition of the receiver's coordinate
// reference system.
func (s *ZoneSet) SRS() string { return s.srs }

// Total returns the sum of the zone values in the receiver.
func (s *ZoneSet) Total() float64 {
	vals := make([]float64, len(s.zones))
	for i, z := range s.zones {
		vals[i] = z.Value
	}
	return floats.Sum(vals)
}

// Bounds returns the bounding box of the receiver's zones.
func (s *ZoneSet) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, z := range s.zones {
		b.Extend(z.Bounds())
	}
	return b
}

// SetValues assigns survey estimates to the receiver's zones by id
// and returns the number of zones that received a value. Records
// without a matching zone are ignored; a survey release usually
// covers more geography than one analysis needs.
func (s *ZoneSet) SetValues(records []SurveyRecord) int {
	var n int
	for _, rec := range records {
		if z, ok := s.byID[rec.ID]; ok {
			z.Value = rec.Estimate
			n++
		}
	}
	return n
}

// searchIntersect returns the zones whose bounding boxes overlap b.
func (s *ZoneSet) searchIntersect(b *geom.Bounds) []*Zone {
	hits := s.index.SearchIntersect(b)
	o := make([]*Zone, len(hits))
	for i, h := range hits {
		o[i] = h.(*Zone)
	}
	return o
}
