// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"sort"
	"strconv"

	"github.com/ctessum/geom"
)

// WriteCSV writes the id to value mapping to w as CSV with the given
// column headers, one row per id in lexical order.
func WriteCSV(w io.Writer, idHeader, valueHeader string, values map[string]float64) error {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{idHeader, valueHeader}); err != nil {
		return err
	}
	for _, id := range ids {
		if err := cw.Write([]string{id, strconv.FormatFloat(values[id], 'g', -1, 64)}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type featureCollection struct {
	Type     string     `json:"type"`
	Features []*feature `json:"features"`
}

type feature struct {
	Type       string             `json:"type"`
	Properties map[string]float64 `json:"properties"`
	ID         string             `json:"id"`
	Geometry   *multiPolygon      `json:"geometry"`
}

type multiPolygon struct {
	Type        string          `json:"type"`
	Coordinates [][][][]float64 `json:"coordinates"`
}

// WriteGeoJSON writes the zones of s to w as a GeoJSON
// FeatureCollection. Each feature's id is the zone id and its
// properties hold the zone value plus one property per entry of extra
// that contains the zone's id, e.g. a "shift" mapping.
func WriteGeoJSON(w io.Writer, s *ZoneSet, extra map[string]map[string]float64) error {
	fc := featureCollection{Type: "FeatureCollection"}
	for _, z := range s.Zones() {
		props := map[string]float64{"value": z.Value}
		for name, vals := range extra {
			if v, ok := vals[z.ID]; ok {
				props[name] = v
			}
		}
		fc.Features = append(fc.Features, &feature{
			Type:       "Feature",
			ID:         z.ID,
			Properties: props,
			Geometry:   encodeMultiPolygon(z.Polygonal),
		})
	}
	return json.NewEncoder(w).Encode(&fc)
}

func encodeMultiPolygon(p geom.Polygonal) *multiPolygon {
	mp := &multiPolygon{Type: "MultiPolygon"}
	for _, poly := range p.Polygons() {
		rings := make([][][]float64, len(poly))
		for i, r := range poly {
			ring := make([][]float64, 0, len(r)+1)
			for _, pt := range r {
				ring = append(ring, []float64{pt.X, pt.Y})
			}
			// GeoJSON rings are explicitly closed.
			if len(r) > 0 && r[0] != r[len(r)-1] {
				ring = append(ring, []float64{r[0].X, r[0].Y})
			}
			rings[i] = ring
		}
		mp.Coordinates = append(mp.Coordinates, rings)
	}
	return mp
}
