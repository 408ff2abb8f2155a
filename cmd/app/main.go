package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"roamio/cmd/fx/account_fx"
	"roamio/cmd/fx/cache_fx"
	"roamio/cmd/fx/controllers_fx"
	"roamio/cmd/fx/db_fx"
	"roamio/cmd/fx/discovery_fx"
	"roamio/cmd/fx/itinerary_fx"
	"roamio/cmd/fx/places_fx"
	"roamio/cmd/fx/search_fx"
	"roamio/cmd/fx/summary_fx"
	"roamio/cmd/fx/trips_fx"
	"roamio/internal/api/controllers"
	"roamio/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		search_fx.Module,
		discovery_fx.Module,
		itinerary_fx.Module,
		summary_fx.Module,
		trips_fx.Module,
		places_fx.Module,
		account_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
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
	discoveryController *controllers.DiscoveryController,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	placeController *controllers.PlaceController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, discoveryController, itineraryController, tripController, placeController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	discoveryController *controllers.DiscoveryController,
	itineraryController *controllers.ItineraryController,
	tripController *controllers.TripController,
	placeController *controllers.PlaceController,
	accountController *controllers.AccountController) {

	r.GET("/discover", discoveryController.Discover)
	r.GET("/destinations/summary", discoveryController.DestinationSummary)
	r.POST("/itinerary", itineraryController.Generate)

	auth := r.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.POST("/refresh", accountController.Refresh)
	auth.POST("/logout", accountController.Logout)
	auth.GET("/me", middleware.JWTAuthMiddleware(), accountController.Me)

	trips := r.Group("/trips")
	trips.Use(middleware.JWTAuthMiddleware())
	trips.POST("", tripController.CreateTrip)
	trips.GET("", tripController.ListTrips)
	trips.GET("/:id", tripController.GetTrip)
	trips.DELETE("/:id", tripController.DeleteTrip)
	trips.POST("/:id/itinerary", tripController.SaveItinerary)
	trips.PATCH("/:id/activities/:activityId", tripController.UpdateActivity)

	places := r.Group("/places")
	places.Use(middleware.JWTAuthMiddleware())
	places.POST("", placeController.SavePlace)
	places.GET("", placeController.ListPlaces)
	places.PATCH("/:id", placeController.UpdatePlace)
	places.DELETE("/:id", placeController.DeletePlace)
}
