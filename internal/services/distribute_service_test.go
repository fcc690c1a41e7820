package services

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"yatra/internal/models/response_models"
)

// testConfig returns the default policy constants without consulting the
// environment, so tests stay deterministic.
func testConfig() PlannerConfig {
	return PlannerConfig{
		PointsPerDay:   3,
		MinPerDayFloor: 2,
		MaxPerDayCeil:  4,

		TravelSpeedKmh: 25,
		DwellMinutes:   120,

		DefaultRadiusMeters: 20000,
		CityRadiusOverrides: map[string]int{
			"agra":     10000,
			"varanasi": 8000,
			"amritsar": 8000,
		},
		NearbyLimit: 50,
		NearbyKinds: "interesting_places,museums,monuments,architecture,historic",

		TransportCostCeiling: 500,
		TransportCostClamp:   300,
		EntryCostCeiling:     1000,
		EntryCostClamp:       500,

		FallbackEntryCost:     150,
		FallbackTransportCost: 80,

		GeocodeTimeout:  10 * time.Second,
		SearchTimeout:   15 * time.Second,
		GenerateTimeout: 30 * time.Second,
	}
}

func gridPoints(n int) []response_models.Point {
	points := make([]response_models.Point, n)
	for i := range points {
		points[i] = response_models.Point{
			Name:      string(rune('A' + i)),
			Latitude:  27.0 + float64(i)*0.01,
			Longitude: 78.0,
		}
	}
	return points
}

func TestDistribute_EmptyInputs(t *testing.T) {
	d := NewDistributorService(NewRouteService(), testConfig())

	assert.Nil(t, d.Distribute(nil, 2, 0))
	assert.Nil(t, d.Distribute(gridPoints(3), 0, 3))
	assert.Nil(t, d.Distribute(gridPoints(3), -1, 3))
}

func TestDistribute_CoversAllPointsExactlyOnce(t *testing.T) {
	points := gridPoints(6)
	days := NewDistributorService(NewRouteService(), testConfig()).Distribute(points, 2, 6)

	require.Len(t, days, 2)

	var all []response_models.Point
	for _, day := range days {
		all = append(all, day.Points...)
	}
	assert.ElementsMatch(t, points, all)
}

func TestDistribute_RespectsPerDayBounds(t *testing.T) {
	points := gridPoints(7)
	days := NewDistributorService(NewRouteService(), testConfig()).Distribute(points, 2, 7)

	require.Len(t, days, 2)
	for _, day := range days {
		assert.GreaterOrEqual(t, len(day.Points), 2)
		assert.LessOrEqual(t, len(day.Points), 4)
	}
}

func TestDistribute_DayNumbersAreSequential(t *testing.T) {
	days := NewDistributorService(NewRouteService(), testConfig()).Distribute(gridPoints(6), 3, 6)

	require.NotEmpty(t, days)
	for i, day := range days {
		assert.Equal(t, i+1, day.DayNumber)
	}
}

func TestDistribute_DropsEmptyTrailingDays(t *testing.T) {
	days := NewDistributorService(NewRouteService(), testConfig()).Distribute(gridPoints(1), 3, 1)

	require.Len(t, days, 1)
	assert.Len(t, days[0].Points, 1)
}

func TestDistribute_OverflowLandsOnLastDay(t *testing.T) {
	cfg := testConfig()
	points := gridPoints(9)
	days := NewDistributorService(NewRouteService(), cfg).Distribute(points, 2, 9)

	require.Len(t, days, 2)

	var all []response_models.Point
	for _, day := range days {
		all = append(all, day.Points...)
	}
	assert.ElementsMatch(t, points, all, "every point must land in exactly one day")

	assert.Len(t, days[0].Points, 4)
	assert.Len(t, days[1].Points, 5)
	assert.Equal(t, 2, days[1].DayNumber)

	// Stats cover the absorbed points too.
	assert.GreaterOrEqual(t, days[1].EstimatedMinutes, 5*cfg.DwellMinutes)
}

func TestDistribute_EstimatedMinutes(t *testing.T) {
	route := NewRouteService()
	cfg := testConfig()

	points := []response_models.Point{
		{Name: "A", Latitude: 0, Longitude: 0},
		{Name: "B", Latitude: 0, Longitude: 1},
	}
	days := NewDistributorService(route, cfg).Distribute(points, 1, 2)

	require.Len(t, days, 1)

	distance := route.DistanceKm(points[0], points[1])
	wantMinutes := int(math.Ceil(distance/cfg.TravelSpeedKmh*60)) + 2*cfg.DwellMinutes

	assert.InDelta(t, distance, days[0].TotalDistanceKm, 1e-9)
	assert.Equal(t, wantMinutes, days[0].EstimatedMinutes)
}
