// cache — опциональный Redis-кэш записей refresh-токенов.
// Кэш снимает чтение из Mongo на горячем пути refresh; источником истины
// остаётся хранилище. Отзыв токена обязан сначала удалить ключ из кэша,
// затем запись из хранилища — тогда удалённый токен не провалидируется
// по устаревшему ключу.
package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/migge/supershopcart/internal/models"
)

// RefreshCache — минимальный контракт кэша refresh-токенов.
type RefreshCache interface {
	// Get возвращает запись и признак её наличия в кэше.
	Get(ctx context.Context, hash string) (*models.RefreshToken, bool, error)
	// Set сохраняет запись с TTL (обычно ExpiresAt-now).
	Set(ctx context.Context, token *models.RefreshToken, ttl time.Duration) error
	// Delete убирает ключ из кэша; отсутствие ключа — не ошибка.
	Delete(ctx context.Context, hash string) error
	// Close закрывает клиент Redis.
	Close() error
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "ssc:rt:".
func NewRedisCache(redisURL, prefix string) (RefreshCache, error) {
	if prefix == "" {
		prefix = "ssc:rt:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &redisCache{rdb: rdb, prefix: prefix}, nil
}

func (c *redisCache) key(hash string) string { return c.prefix + hash }

// Храним как Redis Hash с полями: sid, did, exp (unix), iat (unix).
func (c *redisCache) Get(ctx context.Context, hash string) (*models.RefreshToken, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(hash)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	expUnix, err := strconv.ParseInt(m["exp"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	iatUnix, err := strconv.ParseInt(m["iat"], 10, 64)
	if err != nil {
		return nil, false, err
	}

	return &models.RefreshToken{
		TokenHash: hash,
		ShopperID: m["sid"],
		DeviceID:  m["did"],
		CreatedAt: time.Unix(iatUnix, 0).UTC(),
		ExpiresAt: time.Unix(expUnix, 0).UTC(),
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, token *models.RefreshToken, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	kv := map[string]string{
		"sid": token.ShopperID,
		"did": token.DeviceID,
		"exp": strconv.FormatInt(token.ExpiresAt.Unix(), 10),
		"iat": strconv.FormatInt(token.CreatedAt.Unix(), 10),
	}

	pipe := c.rdb.TxPipeline()
	pipe.HSet(ctx, c.key(token.TokenHash), kv)
	pipe.Expire(ctx, c.key(token.TokenHash), ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Delete(ctx context.Context, hash string) error {
	return c.rdb.Del(ctx, c.key(hash)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }
