package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"time"

	"github.com/redis/go-redis/v9"
	nuts "github.com/vaudience/go-nuts"
)

const tokenCachePrefix = "telemetry:token:"

// CachedValidator remembers accepted tokens in redis. Rejections are never cached
// and redis failures fall through to the wrapped validator.
type CachedValidator struct {
	next   TokenValidator
	client *redis.Client
	ttl    time.Duration
}

func NewCachedValidator(next TokenValidator, client *redis.Client, ttl time.Duration) *CachedValidator {
	return &CachedValidator{next: next, client: client, ttl: ttl}
}

func (c *CachedValidator) Validate(ctx context.Context, token string) (string, error) {
	key := cacheKey(token)

	userID, err := c.client.Get(ctx, key).Result()
	switch {
	case err == nil && userID != "":
		return userID, nil
	case err != nil && !stderrors.Is(err, redis.Nil):
		nuts.L.Warnf("[Auth] Token cache read failed: %v", err)
	}

	userID, err = c.next.Validate(ctx, token)
	if err != nil {
		return "", err
	}

	if err := c.client.Set(ctx, key, userID, c.ttl).Err(); err != nil {
		nuts.L.Warnf("[Auth] Token cache write failed: %v", err)
	}
	return userID, nil
}

// tokens are only stored hashed
func cacheKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return tokenCachePrefix + hex.EncodeToString(sum[:])
}
