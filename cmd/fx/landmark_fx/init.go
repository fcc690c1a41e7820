package landmark_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yatra/internal/repositories"
	"yatra/internal/services"
)

var Module = fx.Provide(
	provideLandmarkService, provideLandmarkRepo)

func provideLandmarkRepo(db *gorm.DB) repositories.LandmarkRepository {
	return repositories.NewLandmarkRepository(db)
}

func provideLandmarkService(landmarkRepo repositories.LandmarkRepository, route services.RouteServiceInterface) services.LandmarkServiceInterface {
	return services.NewLandmarkService(landmarkRepo, route)
}
