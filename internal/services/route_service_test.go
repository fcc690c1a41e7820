package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yatra/internal/models/response_models"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	route := NewRouteService()
	p := response_models.Point{Name: "Taj Mahal", Latitude: 27.1751, Longitude: 78.0421}

	assert.Equal(t, 0.0, route.DistanceKm(p, p))
}

func TestDistanceKm_Symmetric(t *testing.T) {
	route := NewRouteService()
	a := response_models.Point{Latitude: 27.1751, Longitude: 78.0421}
	b := response_models.Point{Latitude: 28.6139, Longitude: 77.2090}

	assert.InDelta(t, route.DistanceKm(a, b), route.DistanceKm(b, a), 1e-9)
}

func TestDistanceKm_OneDegreeAtEquator(t *testing.T) {
	route := NewRouteService()
	a := response_models.Point{Latitude: 0, Longitude: 0}
	b := response_models.Point{Latitude: 0, Longitude: 1}

	// One degree of longitude at the equator is about 111.19 km.
	assert.InDelta(t, 111.19, route.DistanceKm(a, b), 0.01)
}

func TestOptimizeRoute_ShortInputsUnchanged(t *testing.T) {
	route := NewRouteService()

	a := response_models.Point{Name: "A", Latitude: 1, Longitude: 1}
	b := response_models.Point{Name: "B", Latitude: 2, Longitude: 2}

	assert.Empty(t, route.OptimizeRoute(nil))
	assert.Equal(t, []response_models.Point{a}, route.OptimizeRoute([]response_models.Point{a}))
	assert.Equal(t, []response_models.Point{a, b}, route.OptimizeRoute([]response_models.Point{a, b}))
}

func TestOptimizeRoute_PreservesPointSet(t *testing.T) {
	route := NewRouteService()

	points := []response_models.Point{
		{Name: "A", Latitude: 27.17, Longitude: 78.04},
		{Name: "B", Latitude: 27.18, Longitude: 78.02},
		{Name: "C", Latitude: 27.16, Longitude: 78.01},
		{Name: "D", Latitude: 27.19, Longitude: 78.05},
	}

	optimized := route.OptimizeRoute(points)

	require.Len(t, optimized, len(points))
	assert.ElementsMatch(t, points, optimized)
	assert.Equal(t, points[0], optimized[0], "route must start at the first user point")
}

func TestOptimizeRoute_NearestNeighborOrder(t *testing.T) {
	route := NewRouteService()

	// Collinear points along a meridian; greedy nearest-neighbor from the
	// start must visit them in distance order.
	points := []response_models.Point{
		{Name: "start", Latitude: 0, Longitude: 0},
		{Name: "far", Latitude: 5, Longitude: 0},
		{Name: "near", Latitude: 1, Longitude: 0},
		{Name: "mid", Latitude: 3, Longitude: 0},
	}

	optimized := route.OptimizeRoute(points)

	names := make([]string, 0, len(optimized))
	for _, p := range optimized {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"start", "near", "mid", "far"}, names)
}
