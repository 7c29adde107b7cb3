package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Shankz20191/qkart-backend/models"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when the product is not cached.
var ErrCacheMiss = errors.New("product not in cache")

// ProductCache keeps catalog snapshots in Redis so the hot add-to-cart path
// avoids a Mongo round trip. Entries expire after the configured TTL; a
// stale-but-unexpired snapshot is acceptable because cart lines embed the
// snapshot anyway.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	return &ProductCache{
		client: client,
		ttl:    ttl,
	}
}

func (c *ProductCache) key(id string) string {
	return fmt.Sprintf("product:%s", id)
}

func (c *ProductCache) Get(ctx context.Context, id string) (*models.Product, error) {
	data, err := c.client.Get(ctx, c.key(id)).Result()
	if err == redis.Nil {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal([]byte(data), &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *ProductCache) Set(ctx context.Context, product *models.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(product.ID.Hex()), data, c.ttl).Err()
}
