package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
	"github.com/shopsmart/storefront-backend/internal/cfg"
	"github.com/shopsmart/storefront-backend/internal/repository/redis/converter"
	"github.com/shopsmart/storefront-backend/internal/usecase"
	"github.com/shopsmart/storefront-backend/pkg/clients"
	"github.com/shopsmart/storefront-backend/pkg/e"
	"github.com/shopsmart/storefront-backend/pkg/logger"
)

// CacheRepo кэширует собранную витрину магазина по slug.
// Кэш вспомогательный: любой сбой Redis логируется и превращается
// в промах, чтение уходит в PostgreSQL.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.StorefrontConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.StorefrontConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetStorefront возвращает витрину из кэша или (nil, nil) при промахе.
// Битая запись удаляется и считается промахом.
func (r *CacheRepo) GetStorefront(ctx context.Context, slug string) (*usecase.CachedStorefront, error) {
	key := r.storefrontKey(slug)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if err != nil {
		if isCacheMiss(err) {
			return nil, nil
		}

		r.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.StorefrontRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		r.dropKey(ctx, key)
		return nil, nil
	}

	sf, err := r.conv.ToUseCase(&model)
	if err != nil {
		r.logger.Warnf("Corrupted storefront cache entry: %v", e.Wrap(whereami.WhereAmI(), err))
		r.dropKey(ctx, key)
		return nil, nil
	}

	if sf.Store.Slug != slug {
		r.logger.Warnf("Cache slug mismatch: key_slug: %s, model_slug: %s", slug, sf.Store.Slug)
		r.dropKey(ctx, key)
		return nil, nil
	}

	return sf, nil
}

// SetStorefront кэширует витрину с настроенным TTL.
func (r *CacheRepo) SetStorefront(ctx context.Context, slug string, sf *usecase.CachedStorefront) error {
	data, err := json.Marshal(r.conv.ToRedisModel(sf))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, r.storefrontKey(slug), data, r.cfg.StorefrontTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteStorefront инвалидирует кэш витрины после мутации магазина или товаров.
func (r *CacheRepo) DeleteStorefront(ctx context.Context, slug string) error {
	if err := r.client.Client.Del(ctx, r.storefrontKey(slug)).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *CacheRepo) dropKey(ctx context.Context, key string) {
	if err := r.client.Client.Del(ctx, key).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}
}

func (r *CacheRepo) storefrontKey(slug string) string {
	return fmt.Sprintf("storefront:%s", slug)
}

func isCacheMiss(err error) bool {
	return errors.Is(err, goredis.Nil)
}
