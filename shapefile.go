// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"
)

// ReadZones reads a ZoneSet from the shapefile at path, taking each
// feature's id from idField and its value from valueField, and
// reprojecting the geometry from the shapefile's declared spatial
// reference to the projection described by srs. This is the only
// place the library reprojects; interpolation requires its inputs to
// already share a projection.
//
// If valueField is empty the zones are read with zero values, which
// is the usual case for a target boundary file whose values come from
// a survey release via SetValues.
func ReadZones(path, idField, valueField, srs string) (*ZoneSet, error) {
	zones, err := NewZoneSet(srs)
	if err != nil {
		return nil, err
	}
	d, err := shp.NewDecoder(path)
	if err != nil {
		return nil, err
	}
	defer d.Close()
	shpSR, err := d.SR()
	if err != nil {
		return nil, fmt.Errorf("areal: reading spatial reference of %s: %w", path, err)
	}
	trans, err := shpSR.NewTransform(zones.sr)
	if err != nil {
		return nil, fmt.Errorf("areal: creating transform for %s: %w", path, err)
	}

	fields := []string{idField}
	if valueField != "" {
		fields = append(fields, valueField)
	}
	for {
		g, attrs, more := d.DecodeRowFields(fields...)
		if !more {
			break
		}
		var v float64
		if valueField != "" {
			v, err = fieldValue(attrs, valueField)
			if err != nil {
				return nil, err
			}
		}
		gg, err := g.Transform(trans)
		if err != nil {
			return nil, err
		}
		p, ok := gg.(geom.Polygonal)
		if !ok {
			return nil, fmt.Errorf("areal: %s: zone geometries must be polygonal, got %T", path, gg)
		}
		z := &Zone{
			Polygonal: p,
			ID:        strings.Trim(attrs[idField], "\x00* "),
			Value:     v,
		}
		if err := zones.Add(z); err != nil {
			return nil, err
		}
	}
	if err := d.Error(); err != nil {
		return nil, err
	}
	return zones, nil
}

// fieldValue parses a numeric shapefile attribute, treating the
// null-padded strings shapefiles use for missing values as zero.
func fieldValue(attrs map[string]string, name string) (float64, error) {
	s, ok := attrs[name]
	if !ok {
		return 0, fmt.Errorf("areal: missing attribute column %s", name)
	}
	s = strings.Trim(s, "\x00* ")
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("areal: parsing attribute %s: %w", name, err)
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("areal: NaN value in attribute %s", name)
	}
	return v, nil
}
