package redis

import (
	"context"
	"errors"
	"time"

	"shop-backend/domain/dto"
	"shop-backend/pkg/logger"
)

const navTreeKey = "nav:tree:public"

// NavCache is the best-effort storefront navigation cache. It is never
// authoritative: every hit could be served from the database instead, the TTL
// bounds staleness, and every tree mutation calls Invalidate. A nil NavCache
// is a valid no-op cache so the service layer need not branch on wiring.
type NavCache struct {
	client *Client
	ttl    time.Duration
}

func NewNavCache(client *Client, ttl time.Duration) *NavCache {
	return &NavCache{client: client, ttl: ttl}
}

// Get returns (nil, false) on miss or any cache failure.
func (c *NavCache) Get(ctx context.Context) ([]*dto.NavigationItemResponse, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	var tree []*dto.NavigationItemResponse
	err := c.client.GetJSON(ctx, navTreeKey, &tree)
	if err != nil {
		if !errors.Is(err, Nil) {
			logger.WarnContext(ctx, "Navigation cache read failed", "error", err)
		}
		return nil, false
	}
	return tree, true
}

func (c *NavCache) Set(ctx context.Context, tree []*dto.NavigationItemResponse) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.SetJSON(ctx, navTreeKey, tree, c.ttl); err != nil {
		logger.WarnContext(ctx, "Navigation cache write failed", "error", err)
	}
}

func (c *NavCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, navTreeKey); err != nil {
		logger.WarnContext(ctx, "Navigation cache invalidation failed", "error", err)
	}
}
