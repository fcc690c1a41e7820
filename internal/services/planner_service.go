package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/pkg/utils"
)

type PlannerServiceInterface interface {
	PlanTrip(ctx context.Context, req request_models.PlanItineraryRequest) (*response_models.PlanItineraryResponse, error)
}

type PlannerService struct {
	route       RouteServiceInterface
	augment     AugmentServiceInterface
	distributor DistributorServiceInterface
	itinerary   ItineraryServiceInterface
}

func NewPlannerService(
	route RouteServiceInterface,
	augment AugmentServiceInterface,
	distributor DistributorServiceInterface,
	itinerary ItineraryServiceInterface,
) PlannerServiceInterface {
	return &PlannerService{
		route:       route,
		augment:     augment,
		distributor: distributor,
		itinerary:   itinerary,
	}
}

// PlanTrip sequences augmentation, route optimization, day distribution and
// itinerary generation, then assembles the response envelope. The only
// errors it returns are input validation failures; upstream degradation is
// absorbed by the individual stages.
func (p *PlannerService) PlanTrip(ctx context.Context, req request_models.PlanItineraryRequest) (*response_models.PlanItineraryResponse, error) {
	trip := req.TripDetails
	if trip.Location == "" || trip.NumberOfDays <= 0 || trip.Budget <= 0 {
		return nil, utils.ErrMissingTripDetails
	}
	if len(req.Points) == 0 {
		return nil, utils.ErrEmptyPoints
	}

	// Points lacking a name or coordinates are dropped; the rest proceed.
	valid := make([]response_models.Point, 0, len(req.Points))
	for _, in := range req.Points {
		if in.Name == "" || in.Latitude == nil || in.Longitude == nil {
			continue
		}
		valid = append(valid, response_models.Point{
			Name:         in.Name,
			Latitude:     *in.Latitude,
			Longitude:    *in.Longitude,
			Description:  in.Description,
			Category:     in.Category,
			IsAdditional: false,
			Popularity:   in.Popularity,
			Rating:       in.Rating,
		})
	}
	if len(valid) == 0 {
		return nil, utils.ErrNoValidPoints
	}

	log.Printf("Planning itinerary: %d points, %d days, budget ₹%.0f",
		len(valid), trip.NumberOfDays, trip.Budget)

	allPoints := p.augment.Augment(ctx, trip.Location, valid, trip.NumberOfDays)

	optimized := p.route.OptimizeRoute(allPoints)
	days := p.distributor.Distribute(allPoints, trip.NumberOfDays, len(valid))

	plan := p.itinerary.Generate(ctx, allPoints, days, trip)

	var totalDistance float64
	var totalMinutes int
	for _, d := range days {
		totalDistance += d.TotalDistanceKm
		totalMinutes += d.EstimatedMinutes
	}

	return &response_models.PlanItineraryResponse{
		Itinerary:       plan.Itinerary,
		BudgetBreakdown: plan.BudgetBreakdown,
		Tips:            plan.Tips,
		RouteOptimization: response_models.RouteOptimization{
			OptimizedPoints:       optimized,
			DayWiseDistribution:   days,
			TotalDistance:         round2(totalDistance),
			TotalEstimatedTime:    totalMinutes,
			AverageDistancePerDay: round2(totalDistance / float64(trip.NumberOfDays)),
		},
		TripSummary: response_models.TripSummary{
			Location:          trip.Location,
			NumberOfDays:      trip.NumberOfDays,
			Budget:            fmt.Sprintf("₹%.0f", trip.Budget),
			TotalPoints:       len(allPoints),
			UserSelectedCount: len(valid),
			AdditionalCount:   len(allPoints) - len(valid),
			GeneratedAt:       utils.FormatRFC3339IST(time.Now()),
		},
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
