package services

import (
	"math"

	"yatra/internal/models/response_models"
)

type DistributorServiceInterface interface {
	Distribute(points []response_models.Point, numberOfDays int, userSelectedCount int) []response_models.Day
}

type DistributorService struct {
	route RouteServiceInterface
	cfg   PlannerConfig
}

func NewDistributorService(route RouteServiceInterface, cfg PlannerConfig) DistributorServiceInterface {
	return &DistributorService{
		route: route,
		cfg:   cfg,
	}
}

// Distribute orders the full point set and slices it into consecutive
// per-day chunks. Bucket sizes stay within [minPerDay, maxPerDay] so each
// day remains walkable; when the sequence runs out early the trailing days
// are dropped rather than emitted empty. When the point count exceeds the
// trip's total capacity the last day absorbs the overflow, since every
// point must land in exactly one day.
func (d *DistributorService) Distribute(points []response_models.Point, numberOfDays int, userSelectedCount int) []response_models.Day {
	if len(points) == 0 || numberOfDays <= 0 {
		return nil
	}

	ordered := d.route.OptimizeRoute(points)

	minPerDay := userSelectedCount / numberOfDays
	if minPerDay < d.cfg.MinPerDayFloor {
		minPerDay = d.cfg.MinPerDayFloor
	}
	maxPerDay := minPerDay + 2
	if maxPerDay > d.cfg.MaxPerDayCeil {
		maxPerDay = d.cfg.MaxPerDayCeil
	}

	days := make([]response_models.Day, 0, numberOfDays)
	consumed := 0

	for i := 0; i < numberOfDays; i++ {
		remainingPoints := len(ordered) - consumed
		if remainingPoints <= 0 {
			break
		}
		remainingDays := numberOfDays - i

		size := (remainingPoints + remainingDays - 1) / remainingDays
		if size < minPerDay {
			size = minPerDay
		}
		if size > maxPerDay {
			size = maxPerDay
		}
		if size > remainingPoints {
			size = remainingPoints
		}

		chunk := ordered[consumed : consumed+size]
		consumed += size

		days = append(days, d.buildDay(len(days)+1, chunk))
	}

	if consumed < len(ordered) && len(days) > 0 {
		last := len(days) - 1
		start := consumed - len(days[last].Points)
		days[last] = d.buildDay(days[last].DayNumber, ordered[start:])
	}

	return days
}

func (d *DistributorService) buildDay(dayNumber int, points []response_models.Point) response_models.Day {
	var totalKm float64
	for i := 1; i < len(points); i++ {
		totalKm += d.route.DistanceKm(points[i-1], points[i])
	}

	travelMinutes := int(math.Ceil(totalKm / d.cfg.TravelSpeedKmh * 60))

	return response_models.Day{
		DayNumber:        dayNumber,
		Points:           points,
		TotalDistanceKm:  totalKm,
		EstimatedMinutes: travelMinutes + len(points)*d.cfg.DwellMinutes,
	}
}
