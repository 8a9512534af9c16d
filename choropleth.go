// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"image/color"

	"github.com/ctessum/geom/carto"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Choropleth draws the zones of s onto dc, colored by values, and
// draws a color legend labeled label onto lc. Zones whose ids are
// missing from values are drawn as outlines only, so an incomplete
// join is visible on the map rather than colored as zero.
func Choropleth(dc, lc draw.Canvas, s *ZoneSet, values map[string]float64, label string) {
	vals := make([]float64, 0, s.Len())
	for _, z := range s.Zones() {
		if v, ok := values[z.ID]; ok {
			vals = append(vals, v)
		}
	}
	cmap := carto.NewColorMap(carto.Linear)
	cmap.AddArray(vals)
	cmap.Set()
	cmap.Legend(&lc, label)

	b := s.Bounds()
	m := carto.NewCanvas(b.Max.Y, b.Min.Y, b.Max.X, b.Min.X, dc)
	lineStyle := draw.LineStyle{Width: 0.1 * vg.Millimeter, Color: color.Black}
	for _, z := range s.Zones() {
		v, ok := values[z.ID]
		if !ok {
			m.DrawVector(z.Polygonal, color.NRGBA{}, lineStyle, draw.GlyphStyle{})
			continue
		}
		c := cmap.GetColor(v)
		ls := lineStyle
		ls.Color = c
		m.DrawVector(z.Polygonal, c, ls, draw.GlyphStyle{})
	}
}
