package itinerary_fx

import (
	"go.uber.org/fx"
	"roamio/internal/services"
)

var Module = fx.Provide(provideItineraryService)

func provideItineraryService() services.ItineraryServiceInterface {
	return services.NewItineraryService()
}
