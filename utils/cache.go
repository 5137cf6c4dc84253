package utils

import (
	"context"
	"log"
	"time"

	"remindly/config"

	"github.com/go-redis/redis/v8"
)

// StoreClient is the Redis client backing the persisted collections.
var StoreClient *redis.Client

// InitStore initializes the Redis client for the reminder/note store.
func InitStore() {
	StoreClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisStoreDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := StoreClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Store): %v", err)
	}
}

// GetStoreClient returns the Redis client for the store.
func GetStoreClient() *redis.Client {
	if StoreClient == nil {
		InitStore()
	}
	return StoreClient
}
