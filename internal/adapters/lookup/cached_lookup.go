package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/comitanigiacomo/fitjournal-engine/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

const DefaultProductTTL = 30 * 24 * time.Hour

var _ domain.ProductLookup = (*CachedProductLookup)(nil)

// CachedProductLookup is a read-through Redis cache in front of a product provider.
// Only found products are cached. Redis failures degrade to the provider.
type CachedProductLookup struct {
	next  domain.ProductLookup
	cache redis.Cmdable
	ttl   time.Duration
}

func NewCachedProductLookup(next domain.ProductLookup, cache redis.Cmdable, ttl time.Duration) *CachedProductLookup {
	if ttl <= 0 {
		ttl = DefaultProductTTL
	}
	return &CachedProductLookup{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

func (c *CachedProductLookup) cacheKey(barcode string) string {
	return fmt.Sprintf("product:%s", barcode)
}

func (c *CachedProductLookup) LookupBarcode(ctx context.Context, barcode string) (domain.FoodPrefill, bool, error) {
	key := c.cacheKey(barcode)

	val, err := c.cache.Get(ctx, key).Result()
	if err == nil {
		var prefill domain.FoodPrefill
		if err := json.Unmarshal([]byte(val), &prefill); err == nil {
			return prefill, true, nil
		}

		log.Printf("[CACHE] Corrupted product for barcode %s, cleaning up key", barcode)
		c.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	prefill, found, err := c.next.LookupBarcode(ctx, barcode)
	if err != nil || !found {
		return prefill, found, err
	}

	if data, err := json.Marshal(prefill); err == nil {
		if setErr := c.cache.Set(ctx, key, data, c.ttl).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return prefill, true, nil
}
