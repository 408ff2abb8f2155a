package cache_fx

import (
	"log"

	"go.uber.org/fx"
	"roamio/internal/infra"
	"roamio/pkg/cache"
)

var Module = fx.Provide(provideCacheStore)

func provideCacheStore() cache.Store {
	if client := infra.InitRedis(); client != nil {
		return cache.NewRedisStore(client)
	}
	log.Println("REDIS_URL not set, using in-memory cache")
	return cache.NewMemoryStore()
}
