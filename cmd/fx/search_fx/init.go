package search_fx

import (
	"go.uber.org/fx"
	"roamio/internal/services"
)

var Module = fx.Provide(provideSearchClient)

func provideSearchClient() services.BusinessSearchClient {
	return services.NewYelpClient()
}
