package services

import (
	"context"
	"sort"

	"yatra/internal/models/db_models"
	"yatra/internal/models/request_models"
	"yatra/internal/models/response_models"
	"yatra/internal/repositories"
	"yatra/pkg/utils"
)

type LandmarkServiceInterface interface {
	ListLandmarks(ctx context.Context, city string, page, pageSize int) ([]response_models.LandmarkResponse, error)
	GetLandmarkById(ctx context.Context, id string) (*response_models.LandmarkResponse, error)
	NearbyLandmarks(ctx context.Context, city string, lat, lon, radiusKm float64, limit int) ([]response_models.LandmarkResponse, error)
	CreateLandmark(ctx context.Context, request request_models.CreateLandmarkRequest) error
}

type LandmarkService struct {
	landmarkRepo repositories.LandmarkRepository
	route        RouteServiceInterface
}

func NewLandmarkService(landmarkRepo repositories.LandmarkRepository, route RouteServiceInterface) LandmarkServiceInterface {
	return &LandmarkService{
		landmarkRepo: landmarkRepo,
		route:        route,
	}
}

func (l *LandmarkService) ListLandmarks(ctx context.Context, city string, page, pageSize int) ([]response_models.LandmarkResponse, error) {
	var (
		landmarks []*db_models.Landmark
		err       error
	)
	if city != "" {
		landmarks, err = l.landmarkRepo.ListByCity(ctx, city, page, pageSize)
	} else {
		landmarks, err = l.landmarkRepo.ListAll(ctx, page, pageSize)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.LandmarkResponse, 0, len(landmarks))
	for _, lm := range landmarks {
		out = append(out, buildLandmarkResponse(lm, 0))
	}
	return out, nil
}

func (l *LandmarkService) GetLandmarkById(ctx context.Context, id string) (*response_models.LandmarkResponse, error) {
	landmark, err := l.landmarkRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if landmark == nil {
		return nil, utils.ErrLandmarkNotFound
	}

	out := buildLandmarkResponse(landmark, 0)
	return &out, nil
}

// NearbyLandmarks filters the city's catalog by great-circle distance from
// the given coordinate and returns the closest matches first.
func (l *LandmarkService) NearbyLandmarks(ctx context.Context, city string, lat, lon, radiusKm float64, limit int) ([]response_models.LandmarkResponse, error) {
	landmarks, err := l.landmarkRepo.ListByCity(ctx, city, 1, 200)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	origin := response_models.Point{Latitude: lat, Longitude: lon}

	out := make([]response_models.LandmarkResponse, 0, len(landmarks))
	for _, lm := range landmarks {
		d := l.route.DistanceKm(origin, response_models.Point{Latitude: lm.Latitude, Longitude: lm.Longitude})
		if d > radiusKm {
			continue
		}
		out = append(out, buildLandmarkResponse(lm, d))
	}

	sort.Slice(out, func(i, j int) bool { return out[i].DistanceKm < out[j].DistanceKm })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (l *LandmarkService) CreateLandmark(ctx context.Context, request request_models.CreateLandmarkRequest) error {
	if request.Name == "" || request.Latitude == nil || request.Longitude == nil {
		return utils.ErrInvalidInput
	}

	landmark := &db_models.Landmark{
		Name:        request.Name,
		Latitude:    *request.Latitude,
		Longitude:   *request.Longitude,
		Description: request.Description,
		Category:    request.Category,
		City:        request.City,
	}

	if err := l.landmarkRepo.Insert(ctx, landmark); err != nil {
		return utils.ErrDatabaseError
	}

	return nil
}

func buildLandmarkResponse(lm *db_models.Landmark, distanceKm float64) response_models.LandmarkResponse {
	return response_models.LandmarkResponse{
		ID:          lm.ID.String(),
		Name:        lm.Name,
		Latitude:    lm.Latitude,
		Longitude:   lm.Longitude,
		Description: lm.Description,
		Category:    lm.Category,
		City:        lm.City,
		Popularity:  lm.Popularity,
		Rating:      lm.Rating,
		DistanceKm:  distanceKm,
	}
}
