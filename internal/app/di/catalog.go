package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	catalogadapters "shopp_backend/internal/feature/catalog/adapters"
	"shopp_backend/internal/feature/catalog/usecase"
	"shopp_backend/internal/platform/cache"
)

// catalogCacheTTL bounds how stale the storefront lists may get.
const catalogCacheTTL = 5 * time.Minute

// NewProductRepository creates a ProductRepository implementation.
// If Redis is available, the GORM repository is wrapped with a
// read-through cache for the catalog list queries.
func NewProductRepository(rdb *redis.Client, db *gorm.DB) usecase.ProductRepository {
	repo := catalogadapters.NewProductGorm(db)
	if rdb == nil {
		return repo
	}
	return cache.NewCachingProductRepository(rdb, catalogCacheTTL, repo, "products")
}
