package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Cache TTLs. The report list is hot and vote-churned, so it gets a short
// TTL; individual reports are invalidated explicitly on every write.
const (
	ReportListCacheTTL = time.Minute
	ReportCacheTTL     = 5 * time.Minute
)

const reportListKey = "reports:all"

// CacheService provides a Redis cache-aside layer for report lookups.
type CacheService struct {
	rdb    *redis.Client
	logger zerolog.Logger
}

// NewCacheService creates a new CacheService. If redisURL is empty or the
// connection fails, it returns a CacheService with a nil client (cache
// operations become no-ops).
func NewCacheService(redisURL string, logger zerolog.Logger) *CacheService {
	if redisURL == "" {
		logger.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{logger: logger}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		logger.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{logger: logger}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{logger: logger}
	}

	logger.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb, logger: logger}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetReportList retrieves the cached report list. Returns nil if not cached
// or cache is disabled.
func (c *CacheService) GetReportList(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, reportListKey).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetReportList stores the report list in cache.
func (c *CacheService) SetReportList(ctx context.Context, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, reportListKey, b, ReportListCacheTTL).Err()
}

// GetReport retrieves a cached report response. Returns nil if not cached.
func (c *CacheService) GetReport(ctx context.Context, reportID string) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, reportKey(reportID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	return data, err
}

// SetReport stores a report response in cache.
func (c *CacheService) SetReport(ctx context.Context, reportID string, data interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, reportKey(reportID), b, ReportCacheTTL).Err()
}

// InvalidateReport removes a report and the report list from cache (called
// after votes, status changes and new reports).
func (c *CacheService) InvalidateReport(ctx context.Context, reportID string) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, reportKey(reportID), reportListKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

func reportKey(reportID string) string {
	return fmt.Sprintf("report:%s", reportID)
}
