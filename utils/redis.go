package utils

import (
	"context"
	"log"
	"time"

	"clinicbook/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix namespaces verified-token hashes in the auth cache.
const AuthCachePrefix = "auth:token:"

// DashCachePrefix namespaces dashboard snapshots in the general cache.
const DashCachePrefix = "dash:"

var (
	authCacheClient *redis.Client
	cacheClient     *redis.Client
)

// InitRedis connects the auth and general cache clients. A failed ping is
// logged but not fatal: callers fall back to direct verification/queries
// when a client is unavailable.
func InitRedis() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	authCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	cacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})

	if err := authCacheClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: auth cache unavailable: %v", err)
	}
	if err := cacheClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARNING: general cache unavailable: %v", err)
	}
}

// GetAuthCacheClient returns the dedicated auth cache client, or nil when
// Redis was never initialized.
func GetAuthCacheClient() *redis.Client {
	return authCacheClient
}

// GetCacheClient returns the general-purpose cache client.
func GetCacheClient() *redis.Client {
	return cacheClient
}
