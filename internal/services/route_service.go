package services

import (
	"math"

	"yatra/internal/models/response_models"
)

type RouteServiceInterface interface {
	DistanceKm(a, b response_models.Point) float64
	OptimizeRoute(points []response_models.Point) []response_models.Point
}

type RouteService struct{}

func NewRouteService() RouteServiceInterface {
	return &RouteService{}
}

// DistanceKm returns the great-circle distance between two points using the
// haversine formula. Coordinates are decimal degrees; the caller is
// responsible for filtering out points without coordinates.
func (r *RouteService) DistanceKm(a, b response_models.Point) float64 {
	const earthRadiusKm = 6371

	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)
	lat1 := a.Latitude * (math.Pi / 180.0)
	lat2 := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1)*math.Cos(lat2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// OptimizeRoute orders points with a nearest-neighbor pass starting from
// points[0]. Per-trip point counts are small, so the O(n²) scan is fine.
// Ties go to the earliest remaining point.
func (r *RouteService) OptimizeRoute(points []response_models.Point) []response_models.Point {
	if len(points) <= 2 {
		return points
	}

	optimized := make([]response_models.Point, 0, len(points))
	optimized = append(optimized, points[0])

	remaining := make([]response_models.Point, len(points)-1)
	copy(remaining, points[1:])

	for len(remaining) > 0 {
		current := optimized[len(optimized)-1]

		nearestIdx := 0
		nearestDist := math.MaxFloat64
		for i, p := range remaining {
			if d := r.DistanceKm(current, p); d < nearestDist {
				nearestDist = d
				nearestIdx = i
			}
		}

		optimized = append(optimized, remaining[nearestIdx])
		remaining = append(remaining[:nearestIdx], remaining[nearestIdx+1:]...)
	}

	return optimized
}
