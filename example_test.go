// Copyright ©2026 The areal Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package areal

import (
	"fmt"
	"log"
	"sort"

	"github.com/ctessum/geom"
)

// This example estimates a 2020 population count on redrawn 2023 zone
// boundaries and computes the population shift for each 2023 zone.
func Example() {
	const srs = "+proj=merc +a=6378137 +b=6378137 +lat_ts=0.0 +lon_0=0.0 +x_0=0.0 +y_0=0 +k=1.0 +units=m +nadgrids=@null +no_defs"

	square := func(x, y, w, h float64) geom.Polygon {
		return geom.Polygon{{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}}}
	}

	// The 2020 release measured the population on east/west zones.
	origin, err := NewZoneSet(srs)
	if err != nil {
		log.Panic(err)
	}
	origin.Add(&Zone{Polygonal: square(0, 0, 4, 4), ID: "west-2020", Value: 100})
	origin.Add(&Zone{Polygonal: square(4, 0, 4, 4), ID: "east-2020", Value: 60})

	// The 2023 release redrew the same extent into north/south zones
	// and measured the population again.
	actual, err := NewZoneSet(srs)
	if err != nil {
		log.Panic(err)
	}
	actual.Add(&Zone{Polygonal: square(0, 0, 8, 2), ID: "south", Value: 90})
	actual.Add(&Zone{Polygonal: square(0, 2, 8, 2), ID: "north", Value: 110})

	// Estimate what the 2020 counts would have been on the 2023
	// boundaries, then difference the two releases per zone.
	est, err := AreaWeighted{}.Interpolate(origin, actual)
	if err != nil {
		log.Panic(err)
	}
	shift, err := Shift(est, actual)
	if err != nil {
		log.Panic(err)
	}

	ids := make([]string, 0, len(shift))
	for id := range shift {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		e, _ := est.Estimate(id)
		fmt.Printf("%s: estimated %.0f, measured %.0f, shift %+.0f\n",
			id, e, actual.Zone(id).Value, shift[id])
	}
	// Output:
	// north: estimated 80, measured 110, shift +30
	// south: estimated 80, measured 90, shift +10
}
