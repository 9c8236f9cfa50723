package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"keyword-planner/internal/core/domain"
	"keyword-planner/internal/core/port"
)

const keyPrefix = "keyword-planner:"

// KeywordCache wraps the keyword sources with a read-through Redis cache.
// Only successful fetches are cached. Redis errors are logged and the
// upstream source is used as if the cache were empty.
type KeywordCache struct {
	seeds  port.SeedKeywordSource
	sites  port.SiteKeywordSource
	store  store
	ttl    time.Duration
	logger *slog.Logger
}

func NewKeywordCache(seeds port.SeedKeywordSource, sites port.SiteKeywordSource, rdb *goredis.Client, ttl time.Duration, logger *slog.Logger) *KeywordCache {
	return newKeywordCache(seeds, sites, redisStore{rdb: rdb}, ttl, logger)
}

func newKeywordCache(seeds port.SeedKeywordSource, sites port.SiteKeywordSource, s store, ttl time.Duration, logger *slog.Logger) *KeywordCache {
	return &KeywordCache{seeds: seeds, sites: sites, store: s, ttl: ttl, logger: logger}
}

func (c *KeywordCache) KeywordsForKeywords(ctx context.Context, seeds []string, location string, minVolume int) ([]domain.Keyword, error) {
	key := cacheKey("seed", location, minVolume, seeds...)
	return c.readThrough(ctx, key, func(ctx context.Context) ([]domain.Keyword, error) {
		return c.seeds.KeywordsForKeywords(ctx, seeds, location, minVolume)
	})
}

func (c *KeywordCache) KeywordsForSite(ctx context.Context, site string, location string, minVolume int) ([]domain.Keyword, error) {
	key := cacheKey("site", location, minVolume, site)
	return c.readThrough(ctx, key, func(ctx context.Context) ([]domain.Keyword, error) {
		return c.sites.KeywordsForSite(ctx, site, location, minVolume)
	})
}

func (c *KeywordCache) readThrough(ctx context.Context, key string, fetch func(context.Context) ([]domain.Keyword, error)) ([]domain.Keyword, error) {
	raw, err := c.store.Get(ctx, key)
	switch {
	case err == nil:
		var keywords []domain.Keyword
		if err = json.Unmarshal(raw, &keywords); err == nil {
			c.logger.Debug("keyword cache hit", slog.String("key", key), slog.Int("keywords", len(keywords)))
			return keywords, nil
		}
		c.logger.Warn("discarding corrupt cache entry", slog.String("key", key), slog.Any("error", err))
	case errors.Is(err, errCacheMiss):
	default:
		c.logger.Warn("keyword cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	keywords, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(keywords)
	if err != nil {
		c.logger.Warn("keyword cache encode failed", slog.Any("error", err))
		return keywords, nil
	}
	if err = c.store.Set(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("keyword cache write failed", slog.String("key", key), slog.Any("error", err))
	}
	return keywords, nil
}

// cacheKey derives a stable key from the fetch arguments. Seed text is
// case-folded because sources treat it case-insensitively.
func cacheKey(kind, location string, minVolume int, inputs ...string) string {
	h := sha256.New()
	h.Write([]byte(strings.ToLower(strings.TrimSpace(location))))
	h.Write([]byte{0})
	h.Write([]byte(strconv.Itoa(minVolume)))
	for _, in := range inputs {
		h.Write([]byte{0})
		h.Write([]byte(strings.ToLower(strings.TrimSpace(in))))
	}
	return keyPrefix + kind + ":" + hex.EncodeToString(h.Sum(nil))
}
