package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
)

const rosterTTL = 5 * time.Minute

const (
	keyTechnicians = "roster:nailtechs"
	keyServices    = "roster:services"
)

// RosterCache stores the technician roster and price list in Redis with a
// short TTL. The lists are read-mostly reference data owned by the remote
// API; the TTL bounds staleness and Invalidate forces a refetch after
// management changes.
type RosterCache struct {
	client *redis.Client
}

// NewRosterCache creates a RosterCache wrapping the given Redis client.
func NewRosterCache(client *redis.Client) *RosterCache {
	return &RosterCache{client: client}
}

func (c *RosterCache) GetTechnicians(ctx context.Context) ([]domain.Technician, bool, error) {
	var techs []domain.Technician
	ok, err := c.get(ctx, keyTechnicians, &techs)
	return techs, ok, err
}

func (c *RosterCache) SetTechnicians(ctx context.Context, techs []domain.Technician) error {
	return c.set(ctx, keyTechnicians, techs)
}

func (c *RosterCache) GetServices(ctx context.Context) ([]domain.Service, bool, error) {
	var services []domain.Service
	ok, err := c.get(ctx, keyServices, &services)
	return services, ok, err
}

func (c *RosterCache) SetServices(ctx context.Context, services []domain.Service) error {
	return c.set(ctx, keyServices, services)
}

// Invalidate drops both lists so the next read refetches from the remote.
func (c *RosterCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, keyTechnicians, keyServices).Err(); err != nil {
		return fmt.Errorf("roster cache invalidate: %w", err)
	}
	return nil
}

func (c *RosterCache) get(ctx context.Context, key string, out any) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("roster cache get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, fmt.Errorf("roster cache decode %s: %w", key, err)
	}
	return true, nil
}

func (c *RosterCache) set(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("roster cache encode %s: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, rosterTTL).Err(); err != nil {
		return fmt.Errorf("roster cache set %s: %w", key, err)
	}
	return nil
}
