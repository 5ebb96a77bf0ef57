// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"shopp_backend/internal/feature/catalog/domain/entity"
	"shopp_backend/internal/feature/catalog/usecase"
)

// CachingProductRepository decorates a ProductRepository with Redis caching
// of the catalog list reads. It implements the decorator pattern,
// transparently adding caching without modifying the underlying repository.
type CachingProductRepository struct {
	inner     usecase.ProductRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// CachingProductRepositoryがProductRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ProductRepository = (*CachingProductRepository)(nil)

// NewCachingProductRepository decorates a ProductRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "products".
func NewCachingProductRepository(rdb *redis.Client, ttl time.Duration, inner usecase.ProductRepository, namespace string) *CachingProductRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "products"
	}
	return &CachingProductRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Create inserts a product and invalidates the cached catalog lists.
func (c *CachingProductRepository) Create(ctx context.Context, p *entity.Product) error {
	if err := c.inner.Create(ctx, p); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// Delete removes a product and invalidates the cached catalog lists.
func (c *CachingProductRepository) Delete(ctx context.Context, id uint) error {
	if err := c.inner.Delete(ctx, id); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

// ListAll retrieves the full catalog, cache first.
func (c *CachingProductRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	return c.cachedList(ctx, c.key("all"), func() ([]entity.Product, error) {
		return c.inner.ListAll(ctx)
	})
}

// ListNewest retrieves the last n products, cache first.
func (c *CachingProductRepository) ListNewest(ctx context.Context, n int) ([]entity.Product, error) {
	return c.cachedList(ctx, c.key(fmt.Sprintf("newest:%d", n)), func() ([]entity.Product, error) {
		return c.inner.ListNewest(ctx, n)
	})
}

// ListByCategory retrieves the first n products of a category, cache first.
func (c *CachingProductRepository) ListByCategory(ctx context.Context, category string, n int) ([]entity.Product, error) {
	return c.cachedList(ctx, c.key(fmt.Sprintf("category:%s:%d", safe(category), n)), func() ([]entity.Product, error) {
		return c.inner.ListByCategory(ctx, category, n)
	})
}

// cachedList implements the read-through path shared by the list queries.
func (c *CachingProductRepository) cachedList(ctx context.Context, key string, load func() ([]entity.Product, error)) ([]entity.Product, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return load()
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Product
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := load()
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// invalidate deletes every cached list in this namespace, best effort.
func (c *CachingProductRepository) invalidate(ctx context.Context) {
	if c.rdb == nil {
		return
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*")
}

// key generates a cache key within the repository namespace.
func (c *CachingProductRepository) key(suffix string) string {
	return fmt.Sprintf("%s:%s", c.namespace, suffix)
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingProductRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
