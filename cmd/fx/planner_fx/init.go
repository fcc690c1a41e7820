package planner_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"yatra/internal/services"
	"yatra/pkg/utils"
)

var Module = fx.Provide(
	provideConfig,
	provideRouteService,
	provideGeoProvider,
	provideAugmentService,
	provideDistributorService,
	provideTextGenClient,
	provideItineraryService,
	providePlannerService,
)

func provideConfig() services.PlannerConfig {
	return services.DefaultPlannerConfig()
}

func provideRouteService() services.RouteServiceInterface {
	return services.NewRouteService()
}

func provideGeoProvider(cfg services.PlannerConfig) services.GeoProviderInterface {
	return services.NewOpenTripMapClient(cfg)
}

func provideAugmentService(provider services.GeoProviderInterface, cfg services.PlannerConfig) services.AugmentServiceInterface {
	return services.NewAugmentService(provider, cfg)
}

func provideDistributorService(route services.RouteServiceInterface, cfg services.PlannerConfig) services.DistributorServiceInterface {
	return services.NewDistributorService(route, cfg)
}

// provideTextGenClient wires the configured AI provider. A nil client is a
// valid result here, the itinerary service falls back to its deterministic
// schedule when no provider is configured.
func provideTextGenClient() utils.TextGenClientInterface {
	apiKey := os.Getenv("AI_API_KEY")
	if apiKey == "" {
		log.Println("AI_API_KEY not set, itinerary generation will use the fallback planner")
		return nil
	}

	client, err := utils.NewTextGenClient(os.Getenv("AI_PROVIDER"), apiKey, os.Getenv("AI_MODEL"))
	if err != nil {
		log.Printf("failed to initialize AI client: %v, falling back to deterministic planner", err)
		return nil
	}
	return client
}

func provideItineraryService(ai utils.TextGenClientInterface, cfg services.PlannerConfig) services.ItineraryServiceInterface {
	return services.NewItineraryService(ai, cfg)
}

func providePlannerService(
	route services.RouteServiceInterface,
	augment services.AugmentServiceInterface,
	distributor services.DistributorServiceInterface,
	itinerary services.ItineraryServiceInterface,
) services.PlannerServiceInterface {
	return services.NewPlannerService(route, augment, distributor, itinerary)
}
