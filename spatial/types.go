// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// Point represents a geographical point with latitude and longitude in WGS84 degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("POINT(%f %f)", p.Lng, p.Lat)
}

// HaversineDistance calculates the great-circle distance between two points in kilometers.
func (p *Point) HaversineDistance(other *Point) float64 {
	return DistanceKm(p.Lat, p.Lng, other.Lat, other.Lng)
}

// DistanceKm calculates the haversine distance between two coordinate pairs given in degrees.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)

	// rounding can push a slightly outside [0,1] near antipodes
	a = math.Max(0, math.Min(1, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
