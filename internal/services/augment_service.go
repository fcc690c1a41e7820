package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"yatra/internal/models/response_models"
)

type AugmentServiceInterface interface {
	Augment(ctx context.Context, location string, points []response_models.Point, numberOfDays int) []response_models.Point
}

type AugmentService struct {
	provider GeoProviderInterface
	cfg      PlannerConfig
}

func NewAugmentService(provider GeoProviderInterface, cfg PlannerConfig) AugmentServiceInterface {
	return &AugmentService{
		provider: provider,
		cfg:      cfg,
	}
}

// Augment tops the user selection up to numberOfDays*PointsPerDay points
// with nearby attractions from the geographic provider. It is best-effort:
// any provider failure returns the user points unchanged. User points always
// come first, in their original relative order.
func (a *AugmentService) Augment(ctx context.Context, location string, points []response_models.Point, numberOfDays int) []response_models.Point {
	needed := numberOfDays*a.cfg.PointsPerDay - len(points)
	if needed <= 0 || a.provider == nil {
		return points
	}

	lat, lon, err := a.provider.Geocode(ctx, location)
	if err != nil {
		log.Printf("Augmentation skipped, geocode failed for %q: %v", location, err)
		return points
	}

	radius := a.radiusFor(location)
	candidates, err := a.provider.NearbySearch(ctx, lat, lon, radius, a.cfg.NearbyKinds, a.cfg.NearbyLimit)
	if err != nil {
		log.Printf("Augmentation skipped, nearby search failed for %q: %v", location, err)
		return points
	}

	existing := make(map[string]bool, len(points))
	for _, p := range points {
		existing[strings.ToLower(p.Name)] = true
	}

	additional := make([]response_models.Point, 0, needed)
	for _, c := range candidates {
		if len(additional) >= needed {
			break
		}
		if c.Name == "" || len(c.Name) <= 2 || c.Name == "Unknown Name" {
			continue
		}
		if existing[strings.ToLower(c.Name)] {
			continue
		}

		category := firstKind(c.Kinds)
		additional = append(additional, response_models.Point{
			Name:         c.Name,
			Latitude:     c.Lat,
			Longitude:    c.Lon,
			Description:  fmt.Sprintf("%s in %s", category, location),
			Category:     category,
			IsAdditional: true,
		})
		existing[strings.ToLower(c.Name)] = true
	}

	log.Printf("Added %d additional points for %q", len(additional), location)
	return append(points, additional...)
}

// radiusFor picks the search radius: the default, or a smaller override for
// compact cities matched by substring on the trip location.
func (a *AugmentService) radiusFor(location string) int {
	lower := strings.ToLower(location)
	for city, radius := range a.cfg.CityRadiusOverrides {
		if strings.Contains(lower, city) {
			return radius
		}
	}
	return a.cfg.DefaultRadiusMeters
}

func firstKind(kinds string) string {
	first := kinds
	if i := strings.Index(kinds, ","); i >= 0 {
		first = kinds[:i]
	}
	first = strings.ReplaceAll(strings.TrimSpace(first), "_", " ")
	if first == "" {
		return "attraction"
	}
	return first
}
