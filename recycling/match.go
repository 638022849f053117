// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package recycling

import (
	"math"
	"slices"

	"github.com/jcodagnone/recicla/spatial"
)

// MatchedPoint is a RecyclingPoint accepting the requested material. The
// embedded point is a shallow copy; DistanceKm is set only when an origin was
// given and the point has coordinates.
type MatchedPoint struct {
	RecyclingPoint
	DistanceKm *float64 `json:"distancia_km,omitempty"`
}

// FindMatches returns the points having an accepted material whose normalized
// form equals the normalized material. Containment is not enough: "plástico
// duro" does not match "plástico".
//
// When origin is not nil, matches are sorted by ascending distance; points
// without coordinates are kept and sorted last. Ties keep input order.
func FindMatches(material string, points []RecyclingPoint, origin *spatial.Point) []MatchedPoint {
	key := NormalizeMaterial(material)
	if key == "" {
		return []MatchedPoint{}
	}

	type candidate struct {
		point    MatchedPoint
		distance float64
	}

	candidates := make([]candidate, 0)

	for _, p := range points {
		if !accepts(p, key) {
			continue
		}

		c := candidate{point: MatchedPoint{RecyclingPoint: p}, distance: math.Inf(1)}

		if origin != nil {
			if loc, ok := p.Location(); ok {
				c.distance = spatial.DistanceKm(origin.Lat, origin.Lng, loc.Lat, loc.Lng)
				rounded := math.Round(c.distance*100) / 100
				c.point.DistanceKm = &rounded
			}
		}

		candidates = append(candidates, c)
	}

	if origin != nil {
		slices.SortStableFunc(candidates, func(a, b candidate) int {
			switch {
			case a.distance < b.distance:
				return -1
			case a.distance > b.distance:
				return 1
			default:
				return 0
			}
		})
	}

	matches := make([]MatchedPoint, len(candidates))
	for i, c := range candidates {
		matches[i] = c.point
	}

	return matches
}

func accepts(p RecyclingPoint, key string) bool {
	for _, m := range p.AcceptedMaterials {
		if NormalizeMaterial(m) == key {
			return true
		}
	}

	return false
}
