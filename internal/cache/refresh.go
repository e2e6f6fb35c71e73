package cache

import (
	"context"
	"fmt"
	"time"
)

// refreshUsedPrefix is the Redis key prefix for consumed refresh tokens.
const refreshUsedPrefix = "auth:refresh:used:"

// MarkRefreshTokenUsed records a refresh token jti as consumed.
// Returns true when this call was the first use. The key expires with
// the token itself, so the set never grows past the live token window.
func (c *Cache) MarkRefreshTokenUsed(ctx context.Context, jti string, ttl time.Duration) (bool, error) {
	if ttl <= 0 {
		// Token already expired; treat as replayed.
		return false, nil
	}

	first, err := c.client.SetNX(ctx, refreshUsedPrefix+jti, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("mark refresh token used: %w", err)
	}

	return first, nil
}
