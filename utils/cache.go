// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"bookie/config"
)

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching.
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := AuthCacheClient.Ping(ctx).Result(); err != nil {
		// The cache is an optimisation: auth falls back to the database
		// when it is unreachable.
		log.Printf("WARNING: failed to connect to Redis (Auth Cache): %v", err)
		AuthCacheClient = nil
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
// May be nil when the cache is unavailable.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// CloseAuthCache tears down the auth cache connection.
func CloseAuthCache() {
	if AuthCacheClient != nil {
		_ = AuthCacheClient.Close()
	}
}
