// Copyright 2025 The Recicla Authors
// SPDX-License-Identifier: Apache-2.0

package recycling

import (
	"testing"

	"github.com/jcodagnone/recicla/spatial"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func coord(v float64) *float64 {
	return &v
}

func names(matches []MatchedPoint) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Name
	}

	return out
}

func TestFindMatchesExactKey(t *testing.T) {
	points := []RecyclingPoint{
		{Name: "Duro", AcceptedMaterials: []string{"plástico duro"}},
		{Name: "Plastico", AcceptedMaterials: []string{"Papel", "Plástico"}},
		{Name: "Vidro", AcceptedMaterials: []string{"vidro"}},
	}

	matches := FindMatches("plastico", points, nil)
	assert.Equal(t, []string{"Plastico"}, names(matches))
	assert.Nil(t, matches[0].DistanceKm)
}

func TestFindMatchesEmptyKey(t *testing.T) {
	points := []RecyclingPoint{
		{Name: "Any", AcceptedMaterials: []string{""}},
		{Name: "Punct", AcceptedMaterials: []string{"!!"}},
	}

	assert.Empty(t, FindMatches("", points, nil))
	assert.Empty(t, FindMatches("?!", points, nil))
	assert.NotNil(t, FindMatches("", points, nil))
}

func TestFindMatchesNoPoints(t *testing.T) {
	assert.Empty(t, FindMatches("papel", nil, &spatial.Point{}))
}

func TestFindMatchesSortsByDistance(t *testing.T) {
	// One degree of latitude is ~111.19 km.
	km := func(d float64) *float64 { return coord(d / 111.19) }

	points := []RecyclingPoint{
		{Name: "5km", Latitude: km(5), Longitude: coord(0), AcceptedMaterials: []string{"metal"}},
		{Name: "no coords", AcceptedMaterials: []string{"Metal"}},
		{Name: "1km", Latitude: km(1), Longitude: coord(0), AcceptedMaterials: []string{"metal"}},
		{Name: "3km", Latitude: km(3), Longitude: coord(0), AcceptedMaterials: []string{"METAL!"}},
		{Name: "lat only", Latitude: km(2), AcceptedMaterials: []string{"metal"}},
	}

	matches := FindMatches("Metal", points, &spatial.Point{Lat: 0, Lng: 0})
	require.Len(t, matches, 5)
	assert.Equal(t, []string{"1km", "3km", "5km", "no coords", "lat only"}, names(matches))

	require.NotNil(t, matches[0].DistanceKm)
	assert.InDelta(t, 1.0, *matches[0].DistanceKm, 0.01)
	assert.InDelta(t, 3.0, *matches[1].DistanceKm, 0.01)
	assert.InDelta(t, 5.0, *matches[2].DistanceKm, 0.01)
	assert.Nil(t, matches[3].DistanceKm)
	assert.Nil(t, matches[4].DistanceKm)
}

func TestFindMatchesStableTies(t *testing.T) {
	points := []RecyclingPoint{
		{Name: "a", Latitude: coord(1), Longitude: coord(1), AcceptedMaterials: []string{"vidro"}},
		{Name: "b", Latitude: coord(1), Longitude: coord(1), AcceptedMaterials: []string{"vidro"}},
		{Name: "c", Latitude: coord(1), Longitude: coord(1), AcceptedMaterials: []string{"vidro"}},
	}

	assert.Equal(t, []string{"a", "b", "c"}, names(FindMatches("vidro", points, &spatial.Point{})))
}

func TestFindMatchesRoundsDistance(t *testing.T) {
	points := []RecyclingPoint{
		{Name: "RJ", Latitude: coord(-22.9068), Longitude: coord(-43.1729), AcceptedMaterials: []string{"óleo"}},
	}

	matches := FindMatches("oleo", points, &spatial.Point{Lat: -23.5505, Lng: -46.6333})
	require.Len(t, matches, 1)
	require.NotNil(t, matches[0].DistanceKm)

	d := *matches[0].DistanceKm
	assert.InDelta(t, d, float64(int(d*100+0.5))/100, 1e-9)
	assert.GreaterOrEqual(t, d, 357.0)
	assert.LessOrEqual(t, d, 361.0)
}

func TestFindMatchesDoesNotMutateInput(t *testing.T) {
	points := []RecyclingPoint{
		{Name: "p", Latitude: coord(1), Longitude: coord(1), AcceptedMaterials: []string{"Papel"}},
	}

	matches := FindMatches("papel", points, &spatial.Point{})
	require.Len(t, matches, 1)

	matches[0].Name = "changed"
	assert.Equal(t, "p", points[0].Name)
	assert.Equal(t, []string{"Papel"}, points[0].AcceptedMaterials)
}
