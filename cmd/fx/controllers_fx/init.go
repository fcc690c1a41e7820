package controllers_fx

import (
	"go.uber.org/fx"
	"yatra/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewLandmarkController))
