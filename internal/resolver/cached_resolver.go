package resolver

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/avc-dev/redirector/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Cache — минимальный контракт кэша; *redis.Client ему удовлетворяет
type Cache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// CachedResolver — cache-aside декоратор над другим Resolver.
// Любая ошибка кэша деградирует до прямого резолвинга и никогда
// не видна вызывающему. NotFound не кэшируется: несуществующие коды
// дешевы для реестра и бесконечны по кардинальности.
type CachedResolver struct {
	next   Resolver
	cache  Cache
	ttl    time.Duration
	logger *zap.Logger
}

func NewCachedResolver(next Resolver, cache Cache, ttl time.Duration, logger *zap.Logger) *CachedResolver {
	return &CachedResolver{
		next:   next,
		cache:  cache,
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(code model.Code) string {
	return "resolve:" + string(code)
}

func (r *CachedResolver) Resolve(ctx context.Context, code model.Code) (model.Link, error) {
	if cached, err := r.cache.Get(ctx, cacheKey(code)).Result(); err == nil {
		var link model.Link
		if err := json.Unmarshal([]byte(cached), &link); err == nil {
			return link, nil
		}
		r.logger.Debug("dropping malformed cache entry", zap.String("code", string(code)))
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Debug("resolver cache read failed", zap.Error(err))
	}

	link, err := r.next.Resolve(ctx, code)
	if err != nil {
		return model.Link{}, err
	}

	if data, err := json.Marshal(link); err == nil {
		if err := r.cache.Set(ctx, cacheKey(code), data, r.ttl).Err(); err != nil {
			r.logger.Debug("resolver cache write failed", zap.Error(err))
		}
	}

	return link, nil
}
