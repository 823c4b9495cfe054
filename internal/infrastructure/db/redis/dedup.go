package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const overdueTTL = 24 * time.Hour

// OverdueDedup suppresses repeat overdue notifications for the same request.
// Key format: overdue:<request_id>
type OverdueDedup struct {
	client *redis.Client
}

// NewOverdueDedup creates an OverdueDedup wrapping the given Redis client.
func NewOverdueDedup(client *redis.Client) *OverdueDedup {
	return &OverdueDedup{client: client}
}

// AlreadyNotified reports whether an overdue notification for this request
// was sent within the TTL window.
func (d *OverdueDedup) AlreadyNotified(ctx context.Context, requestID string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(requestID)).Result()
	if err != nil {
		return false, fmt.Errorf("overdue dedup check: %w", err)
	}
	return n > 0, nil
}

// MarkNotified records that an overdue notification was sent (expires after
// the TTL so technicians are reminded again the next day).
func (d *OverdueDedup) MarkNotified(ctx context.Context, requestID string) error {
	return d.client.Set(ctx, d.key(requestID), "1", overdueTTL).Err()
}

func (d *OverdueDedup) key(requestID string) string {
	return "overdue:" + requestID
}
