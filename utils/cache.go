// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"slotify/config"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CacheClient is the generic cache client, shared by the schedule cache
// and the advisory locks.
var CacheClient *redis.Client

// InitCache initializes the generic Redis cache client (using DB from AppConfig for general caching).
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the generic cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}

// ScheduleCacheKey is the cache key for a service's resolved segments on one date.
func ScheduleCacheKey(serviceID, date string) string {
	return ScheduleCachePrefix + serviceID + ":" + date
}

// InvalidateScheduleCache drops every cached resolved schedule of a service.
// Weekly-hours changes touch an unknown set of dates, so the whole prefix
// goes. Cache trouble is logged and ignored; entries expire on TTL anyway.
func InvalidateScheduleCache(ctx context.Context, client *redis.Client, serviceID string) {
	if client == nil {
		return
	}

	pattern := ScheduleCachePrefix + serviceID + ":*"
	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		GetLogger().Warn("Schedule cache scan failed", zap.String("pattern", pattern), zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := client.Del(ctx, keys...).Err(); err != nil {
		GetLogger().Warn("Schedule cache invalidation failed", zap.String("serviceId", serviceID), zap.Error(err))
	}
}
