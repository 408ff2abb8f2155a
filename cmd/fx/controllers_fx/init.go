package controllers_fx

import (
	"go.uber.org/fx"
	"roamio/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewDiscoveryController),
	fx.Provide(controllers.NewItineraryController),
	fx.Provide(controllers.NewTripController),
	fx.Provide(controllers.NewPlaceController),
	fx.Provide(controllers.NewAccountController))
