package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"gorm.io/gorm"
	"yatra/cmd/fx/account_fx"
	"yatra/cmd/fx/controllers_fx"
	"yatra/cmd/fx/db_fx"
	"yatra/cmd/fx/landmark_fx"
	"yatra/cmd/fx/planner_fx"
	"yatra/internal/api/controllers"
	"yatra/internal/infra"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		db_fx.Module,
		planner_fx.Module,
		account_fx.Module,
		landmark_fx.Module,
		controllers_fx.Module,

		fx.Invoke(runMigrations),
		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func runMigrations(db *gorm.DB) {
	infra.Migrate(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController,
	landmarkController *controllers.LandmarkController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, accountController, landmarkController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController,
	landmarkController *controllers.LandmarkController) {

	accountGroup := r.Group("/accounts")
	accountGroup.POST("/register", accountController.Register)
	accountGroup.POST("/login", accountController.Login)

	landmarkGroup := r.Group("/landmarks")
	landmarkGroup.GET("", landmarkController.ListLandmarks)
	landmarkGroup.GET("/nearby", landmarkController.NearbyLandmarks)
	landmarkGroup.GET("/:id", landmarkController.GetLandmarkById)
	landmarkGroup.POST("", middleware.JWTAuthMiddleware(), landmarkController.CreateLandmark)

	itineraryGroup := r.Group("/itinerary")
	itineraryGroup.POST("/plan", middleware.JWTAuthMiddleware(), itineraryController.PlanItinerary)
}
