package redis

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"keyword-planner/internal/config/configs"
	"keyword-planner/internal/core/domain"
	"keyword-planner/internal/core/port/mocks"
)

type memoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
	ttls map[string]time.Duration
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string][]byte{}, ttls: map[string]time.Duration{}}
}

func (m *memoryStore) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, errCacheMiss
	}
	return v, nil
}

func (m *memoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	m.ttls[key] = ttl
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var cachedKeywords = []domain.Keyword{{
	Keyword:       "trail shoes",
	SearchVolume:  1000,
	Competition:   domain.CompetitionLow,
	BidLow:        0.4,
	BidHigh:       1.2,
	CPC:           0.9,
	ConceptGroups: []string{"Product"},
}}

func TestSiteFetchIsCached(t *testing.T) {
	sites := mocks.NewMockSiteKeywordSource(t)
	sites.EXPECT().
		KeywordsForSite(mock.Anything, "https://brand.example", "United States", 10).
		Return(cachedKeywords, nil).
		Once()

	store := newMemoryStore()
	cache := newKeywordCache(nil, sites, store, time.Hour, discardLogger())

	first, err := cache.KeywordsForSite(context.Background(), "https://brand.example", "United States", 10)
	require.NoError(t, err)
	second, err := cache.KeywordsForSite(context.Background(), "https://brand.example", "United States", 10)
	require.NoError(t, err)

	assert.Equal(t, cachedKeywords, first)
	assert.Equal(t, cachedKeywords, second)
	require.Len(t, store.ttls, 1)
	for _, ttl := range store.ttls {
		assert.Equal(t, time.Hour, ttl)
	}
}

func TestFailuresAreNotCached(t *testing.T) {
	seeds := mocks.NewMockSeedKeywordSource(t)
	seeds.EXPECT().
		KeywordsForKeywords(mock.Anything, []string{"shoes"}, "Germany", 0).
		Return(nil, errors.New("timeout")).
		Once()
	seeds.EXPECT().
		KeywordsForKeywords(mock.Anything, []string{"shoes"}, "Germany", 0).
		Return(cachedKeywords, nil).
		Once()

	store := newMemoryStore()
	cache := newKeywordCache(seeds, nil, store, time.Minute, discardLogger())

	_, err := cache.KeywordsForKeywords(context.Background(), []string{"shoes"}, "Germany", 0)
	require.Error(t, err)
	assert.Empty(t, store.data)

	got, err := cache.KeywordsForKeywords(context.Background(), []string{"shoes"}, "Germany", 0)
	require.NoError(t, err)
	assert.Equal(t, cachedKeywords, got)
	assert.Len(t, store.data, 1)
}

func TestCorruptEntryFallsThrough(t *testing.T) {
	sites := mocks.NewMockSiteKeywordSource(t)
	sites.EXPECT().
		KeywordsForSite(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(cachedKeywords, nil)

	store := newMemoryStore()
	key := cacheKey("site", "France", 5, "https://rival.example")
	store.data[key] = []byte("not json")
	cache := newKeywordCache(nil, sites, store, time.Minute, discardLogger())

	got, err := cache.KeywordsForSite(context.Background(), "https://rival.example", "France", 5)

	require.NoError(t, err)
	assert.Equal(t, cachedKeywords, got)
	assert.NotEqual(t, "not json", string(store.data[key]))
}

// TestUnreachableRedisFallsThrough points a real client at a closed port.
func TestUnreachableRedisFallsThrough(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	sites := mocks.NewMockSiteKeywordSource(t)
	sites.EXPECT().
		KeywordsForSite(mock.Anything, "https://brand.example", "United States", 0).
		Return(cachedKeywords, nil)

	cache := NewKeywordCache(nil, sites, rdb, time.Minute, discardLogger())
	got, err := cache.KeywordsForSite(context.Background(), "https://brand.example", "United States", 0)

	require.NoError(t, err)
	assert.Equal(t, cachedKeywords, got)
}

func TestNewClientPingFailure(t *testing.T) {
	_, err := NewClient(context.Background(), configs.Redis{Addr: "127.0.0.1:1"})

	assert.ErrorContains(t, err, "redis ping")
}

func TestCacheKey(t *testing.T) {
	base := cacheKey("seed", "United States", 10, "shoes", "boots")

	assert.True(t, strings.HasPrefix(base, "keyword-planner:seed:"))
	assert.Equal(t, base, cacheKey("seed", " united states ", 10, "SHOES", "Boots"))
	assert.NotEqual(t, base, cacheKey("seed", "United States", 11, "shoes", "boots"))
	assert.NotEqual(t, base, cacheKey("seed", "United States", 10, "boots", "shoes"))
	assert.NotEqual(t, base, cacheKey("site", "United States", 10, "shoes", "boots"))
	assert.NotEqual(t, cacheKey("seed", "x", 1, "ab"), cacheKey("seed", "x", 1, "a", "b"))
}
