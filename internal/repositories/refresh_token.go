package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/samber/oops"

	"github.com/sbilibin2017/gw-game-roster/internal/logger"
)

// RefreshTokenRepository records issued refresh tokens in Redis so they can be
// rotated and revoked. A token is valid only while its id is present.
type RefreshTokenRepository struct {
	client *redis.Client
}

// NewRefreshTokenRepository creates a new repository instance
func NewRefreshTokenRepository(client *redis.Client) *RefreshTokenRepository {
	return &RefreshTokenRepository{client: client}
}

func refreshTokenKey(tokenID string) string {
	return fmt.Sprintf("refresh_token:%s", tokenID)
}

// Save records the token id for the player until ttl elapses.
func (r *RefreshTokenRepository) Save(ctx context.Context, tokenID string, playerID uuid.UUID, ttl time.Duration) error {
	key := refreshTokenKey(tokenID)
	err := r.client.Set(ctx, key, playerID.String(), ttl).Err()

	logger.FromContext(ctx).Debugw("redis set", "key", key, "ttl", ttl, "error", err)

	if err != nil {
		return oops.In("repository").With("key", key).Wrap(err)
	}
	return nil
}

// Get returns the player the token id was issued to. The boolean is false when
// the token id is unknown, expired or revoked.
func (r *RefreshTokenRepository) Get(ctx context.Context, tokenID string) (uuid.UUID, bool, error) {
	key := refreshTokenKey(tokenID)
	val, err := r.client.Get(ctx, key).Result()

	logger.FromContext(ctx).Debugw("redis get", "key", key, "result", val, "error", err)

	if errors.Is(err, redis.Nil) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, oops.In("repository").With("key", key).Wrap(err)
	}

	playerID, err := uuid.Parse(val)
	if err != nil {
		return uuid.Nil, false, oops.In("repository").With("key", key).Wrapf(err, "corrupt refresh token record")
	}
	return playerID, true, nil
}

// Delete revokes the token id. Returns false when it was not present.
func (r *RefreshTokenRepository) Delete(ctx context.Context, tokenID string) (bool, error) {
	key := refreshTokenKey(tokenID)
	n, err := r.client.Del(ctx, key).Result()

	logger.FromContext(ctx).Debugw("redis del", "key", key, "result", n, "error", err)

	if err != nil {
		return false, oops.In("repository").With("key", key).Wrap(err)
	}
	return n > 0, nil
}
