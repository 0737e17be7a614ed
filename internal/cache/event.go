package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iamshakil01/clubsphere-servers/internal/domain"
	"github.com/iamshakil01/clubsphere-servers/internal/service/ports"
	"github.com/redis/go-redis/v9"
	"github.com/wb-go/wbf/logger"
)

const DefaultEventTTL = 5 * time.Minute

func eventKey(id string) string {
	return fmt.Sprintf("event:%s", id)
}

// EventCache is a read-through cache for single events in front of an
// EventRepo. With a nil client every call goes straight to the repo.
type EventCache struct {
	ports.EventRepo
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewEventCache(repo ports.EventRepo, client *redis.Client, ttl time.Duration, logger logger.Logger) *EventCache {
	if ttl <= 0 {
		ttl = DefaultEventTTL
	}
	return &EventCache{EventRepo: repo, client: client, ttl: ttl, logger: logger}
}

func (c *EventCache) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if c.client == nil {
		return c.EventRepo.GetByID(ctx, id)
	}

	raw, err := c.client.Get(ctx, eventKey(id)).Bytes()
	switch {
	case err == nil:
		var e domain.Event
		if err = json.Unmarshal(raw, &e); err == nil {
			return &e, nil
		}
		c.logger.Warn("corrupt cached event", logger.String("event_id", id))
	case !errors.Is(err, redis.Nil):
		c.logger.Warn("event cache read failed",
			logger.String("event_id", id),
			logger.String("error", err.Error()),
		)
	}

	e, err := c.EventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	payload, err := json.Marshal(e)
	if err != nil {
		return e, nil
	}
	if err = c.client.Set(ctx, eventKey(id), payload, c.ttl).Err(); err != nil {
		c.logger.Warn("event cache write failed",
			logger.String("event_id", id),
			logger.String("error", err.Error()),
		)
	}

	return e, nil
}

func (c *EventCache) Invalidate(ctx context.Context, ids ...string) error {
	if c.client == nil || len(ids) == 0 {
		return nil
	}

	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, eventKey(id))
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("invalidate events: %w", err)
	}
	return nil
}
