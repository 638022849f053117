// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package recycling

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/jcodagnone/recicla/spatial"
)

// RecyclingPoint is a drop-off location from the static dataset.
type RecyclingPoint struct {
	Name              string   `json:"nome"`
	Address           string   `json:"endereco,omitempty"`
	Latitude          *float64 `json:"latitude"`
	Longitude         *float64 `json:"longitude"`
	AcceptedMaterials []string `json:"materiais_aceitos"`
}

// Location returns the point coordinates, if both are present.
func (p *RecyclingPoint) Location() (spatial.Point, bool) {
	if p.Latitude == nil || p.Longitude == nil {
		return spatial.Point{}, false
	}

	return spatial.Point{Lat: *p.Latitude, Lng: *p.Longitude}, true
}

// Dataset is the read-only set of recycling points shared by all requests.
// It is never mutated after construction.
type Dataset struct {
	points []RecyclingPoint
}

// NewDataset builds a Dataset holding its own copy of points.
func NewDataset(points []RecyclingPoint) *Dataset {
	owned := make([]RecyclingPoint, len(points))
	for i, p := range points {
		p.AcceptedMaterials = slices.Clone(p.AcceptedMaterials)
		if p.Latitude != nil {
			lat := *p.Latitude
			p.Latitude = &lat
		}

		if p.Longitude != nil {
			lng := *p.Longitude
			p.Longitude = &lng
		}

		owned[i] = p
	}

	return &Dataset{points: owned}
}

// LoadPoints loads the recycling points JSON file.
func LoadPoints(filepath string) (*Dataset, error) {
	data, err := os.ReadFile(filepath) // #nosec G304 - filepath is provided by admin
	if err != nil {
		return nil, fmt.Errorf("reading points file: %w", err)
	}

	var points []RecyclingPoint
	if err := json.Unmarshal(data, &points); err != nil {
		return nil, fmt.Errorf("parsing points JSON: %w", err)
	}

	return &Dataset{points: points}, nil
}

// Len returns the number of points.
func (d *Dataset) Len() int {
	return len(d.points)
}

// Match runs FindMatches against the dataset.
func (d *Dataset) Match(material string, origin *spatial.Point) []MatchedPoint {
	return FindMatches(material, d.points, origin)
}

// Materials returns the distinct normalized materials accepted by any point, sorted.
func (d *Dataset) Materials() []string {
	seen := make(map[string]struct{})

	for _, p := range d.points {
		for _, m := range p.AcceptedMaterials {
			if key := NormalizeMaterial(m); key != "" {
				seen[key] = struct{}{}
			}
		}
	}

	materials := make([]string, 0, len(seen))
	for key := range seen {
		materials = append(materials, key)
	}

	slices.Sort(materials)

	return materials
}
