package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RevocationList remembers logged-out token ids until they expire.
type RevocationList interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

type noRevocations struct{}

func (noRevocations) Revoke(context.Context, string, time.Duration) error { return nil }

func (noRevocations) IsRevoked(context.Context, string) (bool, error) { return false, nil }

type RedisRevocations struct {
	client *redis.Client
}

// NewRedisRevocations falls back to a list that never revokes when client is nil.
func NewRedisRevocations(client *redis.Client) RevocationList {
	if client == nil {
		return noRevocations{}
	}
	return &RedisRevocations{client: client}
}

func (r *RedisRevocations) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, revokedTokenKey(tokenID), "1", ttl).Err()
}

func (r *RedisRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	count, err := r.client.Exists(ctx, revokedTokenKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func revokedTokenKey(tokenID string) string {
	return fmt.Sprintf("revoked_token:%s", tokenID)
}
