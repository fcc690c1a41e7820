package services

import (
	"os"
	"strconv"
	"time"
)

// PlannerConfig carries the itinerary policy constants. The defaults mirror
// the product behavior; changing any of them changes observable plans, so
// they are provided through fx instead of being hard-coded at call sites.
type PlannerConfig struct {
	// Target point density for augmentation.
	PointsPerDay int

	// Per-day bucket bounds for the day distributor.
	MinPerDayFloor int
	MaxPerDayCeil  int

	// Travel-time estimation.
	TravelSpeedKmh float64
	DwellMinutes   int

	// Nearby-search radius, with a substring-matched override for compact
	// cities where the default pulls in points too far out.
	DefaultRadiusMeters int
	CityRadiusOverrides map[string]int
	NearbyLimit         int
	NearbyKinds         string

	// Sanity ceilings for AI-reported costs, and the values they clamp to.
	TransportCostCeiling float64
	TransportCostClamp   float64
	EntryCostCeiling     float64
	EntryCostClamp       float64

	// Fixed costs used by the deterministic fallback schedule.
	FallbackEntryCost     float64
	FallbackTransportCost float64

	// External call budgets: one attempt per call, no retries.
	GeocodeTimeout  time.Duration
	SearchTimeout   time.Duration
	GenerateTimeout time.Duration
}

func DefaultPlannerConfig() PlannerConfig {
	cfg := PlannerConfig{
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

	if v, err := strconv.Atoi(os.Getenv("PLANNER_POINTS_PER_DAY")); err == nil && v > 0 {
		cfg.PointsPerDay = v
	}
	if v, err := strconv.Atoi(os.Getenv("PLANNER_RADIUS_METERS")); err == nil && v > 0 {
		cfg.DefaultRadiusMeters = v
	}

	return cfg
}
