// Package database wires the storage backend at process start: the Redis
// store when REDIS_URL is configured and reachable, otherwise the in-process
// fallback for local development.
package database

import (
	"context"
	"log"
	"time"

	config "github.com/vibequiz/backend/configs"
	"github.com/vibequiz/backend/storage"
)

// Connect selects and constructs the storage backend. A configured but
// unreachable Redis degrades to the in-process fallback rather than failing
// startup; mid-operation errors after that surface per request.
func Connect() storage.Store {
	redisURL := config.Config("REDIS_URL")
	if redisURL == "" {
		log.Println("🔧 Database Mode: LOCAL FALLBACK")
		return storage.NewMemoryStore()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := storage.NewRedisStore(ctx, redisURL)
	if err != nil {
		log.Printf("❌ Failed to connect to Redis: %v", err)
		log.Println("🔧 Database Mode: LOCAL FALLBACK")
		return storage.NewMemoryStore()
	}

	log.Println("✅ Connected to Redis")
	log.Println("🔧 Database Mode: REDIS CLOUD")
	return store
}
