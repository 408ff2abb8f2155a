package infra

import (
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// InitRedis returns a client for REDIS_URL, or nil when unset so the caller
// can fall back to the in-memory cache.
func InitRedis() *redis.Client {
	rawURL := os.Getenv("REDIS_URL")
	if rawURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		log.Printf("Error parsing REDIS_URL: %v", err)
		log.Fatal("Error parsing REDIS_URL")
	}

	return redis.NewClient(opts)
}
