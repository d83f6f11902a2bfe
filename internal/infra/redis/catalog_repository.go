package redis

import (
	"context"
	"encoding/json"
	"math/rand"
	"time"

	"trivia-night/internal/domain"
	"trivia-night/internal/infra/memory"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"
)

// CatalogRepository caches the catalog in Redis and falls back to a loader on a
// cache miss. Layout:
//
//	SET trivia:catalog:packs {json array of packs}
//	SET trivia:catalog:bots  {json array of bot seeds}
type CatalogRepository struct {
	client *redis.Client
	loader memory.CatalogLoader
	ttl    time.Duration
	sf     singleflight.Group
	rnd    *rand.Rand
}

const (
	packsKey = "trivia:catalog:packs"
	botsKey  = "trivia:catalog:bots"
)

func NewCatalogRepository(client *redis.Client, loader memory.CatalogLoader, ttl time.Duration) *CatalogRepository {
	return &CatalogRepository{
		client: client,
		loader: loader,
		ttl:    ttl,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (r *CatalogRepository) GetCatalog(ctx context.Context) (domain.Catalog, error) {
	if catalog, ok := r.cached(ctx); ok {
		return catalog, nil
	}

	result, err, _ := r.sf.Do(packsKey, func() (interface{}, error) {
		// Re-check cache in case another goroutine filled it.
		if catalog, ok := r.cached(ctx); ok {
			return catalog, nil
		}

		catalog, err := r.loader.LoadCatalog(ctx)
		if err != nil {
			return domain.Catalog{}, err
		}

		packs, err := json.Marshal(catalog.Packs)
		if err != nil {
			return domain.Catalog{}, err
		}
		bots, err := json.Marshal(catalog.Bots)
		if err != nil {
			return domain.Catalog{}, err
		}

		ttl := r.ttlWithJitter()
		pipe := r.client.TxPipeline()
		pipe.Set(ctx, packsKey, packs, ttl)
		pipe.Set(ctx, botsKey, bots, ttl)
		// best effort: a cold cache only costs another load
		_, _ = pipe.Exec(ctx)

		return catalog, nil
	})
	if err != nil {
		return domain.Catalog{}, err
	}
	return result.(domain.Catalog), nil
}

func (r *CatalogRepository) cached(ctx context.Context) (domain.Catalog, bool) {
	values, err := r.client.MGet(ctx, packsKey, botsKey).Result()
	if err != nil || len(values) != 2 {
		return domain.Catalog{}, false
	}
	rawPacks, ok := values[0].(string)
	if !ok {
		return domain.Catalog{}, false
	}
	rawBots, ok := values[1].(string)
	if !ok {
		return domain.Catalog{}, false
	}

	var catalog domain.Catalog
	if err := json.Unmarshal([]byte(rawPacks), &catalog.Packs); err != nil {
		return domain.Catalog{}, false
	}
	if err := json.Unmarshal([]byte(rawBots), &catalog.Bots); err != nil {
		return domain.Catalog{}, false
	}
	return catalog, true
}

func (r *CatalogRepository) ttlWithJitter() time.Duration {
	if r.ttl <= 0 {
		return 0
	}
	jitterMax := int64(r.ttl) / 10
	return r.ttl + time.Duration(r.rnd.Int63n(jitterMax+1))
}
