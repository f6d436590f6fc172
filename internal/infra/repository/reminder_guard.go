package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/zvitapp/zvit-status-engine/internal/domain"
)

const (
	dispatchKeyPrefix = "reminder:sent:"

	// Long enough to survive driver restarts within the minute, short
	// enough that keys never pile up.
	dispatchTTL = 2 * time.Hour
)

type reminderGuard struct {
	client *redis.Client
}

func NewReminderGuard(client *redis.Client) domain.DispatchGuard {
	return &reminderGuard{client: client}
}

// TryMarkDispatched claims the group+minute slot with SET NX. The first
// replica to claim it sends the reminder; everyone else backs off.
func (g *reminderGuard) TryMarkDispatched(ctx context.Context, groupID string, minute time.Time) (bool, error) {
	key := dispatchKeyPrefix + groupID + ":" + domain.MinuteKey(minute)

	claimed, err := g.client.SetNX(ctx, key, 1, dispatchTTL).Result()
	if err != nil {
		return false, fmt.Errorf("mark dispatched: %w", err)
	}
	return claimed, nil
}
