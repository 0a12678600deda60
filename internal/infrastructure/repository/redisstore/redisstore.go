// Package redisstore implements the record stores on top of Redis.
// Every record is a JSON document under a typed key, with sorted sets
// as ordering indexes.
package redisstore

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/config"
)

const (
	companyKeyPrefix      = "portal:company:"
	subscriptionKeyPrefix = "portal:subscription:"
	subscriptionIndexKey  = "portal:subscriptions:by_updated"
	actionKeyPrefix       = "portal:action:"
	actionIndexKey        = "portal:actions:by_requested"
	termsKeyPrefix        = "portal:terms:"
	termsSubIndexPrefix   = "portal:terms:by_subscription:"
)

// NewClient connects to Redis and verifies the connection.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return client, nil
}

func companyKey(sid string) string      { return companyKeyPrefix + sid }
func subscriptionKey(sid string) string { return subscriptionKeyPrefix + sid }
func actionKey(sid string) string       { return actionKeyPrefix + sid }
func termsKey(sid string) string        { return termsKeyPrefix + sid }
func termsSubIndexKey(subscriptionSID string) string {
	return termsSubIndexPrefix + subscriptionSID
}
