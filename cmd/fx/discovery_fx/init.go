package discovery_fx

import (
	"go.uber.org/fx"
	"roamio/internal/services"
	"roamio/pkg/cache"
)

var Module = fx.Provide(provideDiscoveryService)

func provideDiscoveryService(search services.BusinessSearchClient, store cache.Store) services.DiscoveryServiceInterface {
	return services.NewDiscoveryService(search, store)
}
