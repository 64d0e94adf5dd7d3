package services

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"masterpos_server/structs"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/redis/go-redis/v9"
)

var redisCtx = context.Background()

// ErrCacheDisabled is returned by every operation when no redis address
// is configured. Callers treat it like a miss.
var ErrCacheDisabled = errors.New("cache is disabled")

const productPayloadKey = "catalog:payload"

// CacheService provides Redis caching for the upstream product payload
// and backs the rate limiter. Every caller is expected to fail open:
// the service degrades to direct upstream fetches when redis is down.
type CacheService struct {
	logger *gecho.Logger
	config *structs.Config
	client *redis.Client
}

func NewCacheService(logger *gecho.Logger, cfg *structs.Config) *CacheService {
	cs := &CacheService{
		logger: logger,
		config: cfg,
	}
	if cfg.Cache.Address == "" {
		logger.Warn("No redis address configured, running without cache")
		return cs
	}

	cs.client = redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Address,
		Username: cfg.Cache.Username,
		Password: cfg.Cache.Password,
		DB:       cfg.Cache.DB,

		// Connection pool settings
		PoolSize:     cfg.Cache.PoolSize,
		MinIdleConns: cfg.Cache.MinIdleConns,

		// Timeouts
		DialTimeout:  cfg.Cache.DialTimeout,
		ReadTimeout:  cfg.Cache.ReadTimeout,
		WriteTimeout: cfg.Cache.WriteTimeout,

		// Retry settings
		MaxRetries:      cfg.Cache.MaxRetries,
		MinRetryBackoff: cfg.Cache.MinRetryBackoff,
		MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
	})
	return cs
}

// Enabled reports whether a redis client is configured.
func (cs *CacheService) Enabled() bool {
	return cs.client != nil
}

func (cs *CacheService) Close() error {
	if cs.client != nil {
		return cs.client.Close()
	}
	return nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (cs *CacheService) withRetry(operation func() error, maxRetries int) error {
	if !cs.Enabled() {
		return ErrCacheDisabled
	}

	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		// Don't retry on the last attempt
		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors like key not found
		if !isRetryableError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		_, err = rand.Read(jitterBytes)
		if err != nil {
			// fallback to no jitter if random fails
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))

		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableError determines if an error is worth retrying
func isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	// Don't retry on nil results (key not found)
	if err == redis.Nil {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}

// Set sets a key with TTL and automatic retry logic
func (cs *CacheService) Set(key string, value any, ttl time.Duration) error {
	return cs.withRetry(func() error {
		return cs.client.Set(redisCtx, key, value, ttl).Err()
	}, cs.config.Cache.MaxRetries)
}

// Get retrieves a key with automatic retry logic. A missing key returns
// an empty string and no error.
func (cs *CacheService) Get(key string) (string, error) {
	var result string

	err := cs.withRetry(func() error {
		val, err := cs.client.Get(redisCtx, key).Result()
		if err == redis.Nil {
			result = ""
			return nil // Don't retry on key not found
		}
		if err != nil {
			return err
		}
		result = val
		return nil
	}, cs.config.Cache.MaxRetries)

	if err != nil {
		return "", err
	}
	return result, nil
}

// Delete removes a key with automatic retry logic
func (cs *CacheService) Delete(key string) error {
	return cs.withRetry(func() error {
		return cs.client.Del(redisCtx, key).Err()
	}, cs.config.Cache.MaxRetries)
}

// GetProductPayload returns the cached upstream record set, or nil on a
// miss.
func (cs *CacheService) GetProductPayload() ([]structs.Product, error) {
	val, err := cs.Get(productPayloadKey)
	if err != nil {
		return nil, err
	}
	if val == "" {
		return nil, nil // not found in cache
	}

	var products []structs.Product
	if err := json.Unmarshal([]byte(val), &products); err != nil {
		return nil, fmt.Errorf("failed to decode cached payload: %w", err)
	}
	return products, nil
}

// SetProductPayload caches the upstream record set for the configured TTL.
func (cs *CacheService) SetProductPayload(products []structs.Product) error {
	data, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("failed to encode payload for cache: %w", err)
	}
	return cs.Set(productPayloadKey, data, cs.config.Upstream.CacheTTL)
}

// InvalidateProductPayload drops the cached record set; every mutation
// calls this before the refetch.
func (cs *CacheService) InvalidateProductPayload() error {
	return cs.Delete(productPayloadKey)
}

// IncrementRateLimit bumps the sliding-window counter for ip+endpoint
// and returns the new count. The key expires after the window.
func (cs *CacheService) IncrementRateLimit(ip, endpoint string, window time.Duration) (int, error) {
	if !cs.Enabled() {
		return 0, ErrCacheDisabled
	}

	key := fmt.Sprintf("ratelimit:%s:%s", ip, endpoint)

	pipe := cs.client.TxPipeline()
	incr := pipe.Incr(redisCtx, key)
	pipe.Expire(redisCtx, key, window)
	if _, err := pipe.Exec(redisCtx); err != nil {
		return 0, err
	}

	return int(incr.Val()), nil
}

// Ping checks the redis connection.
func (cs *CacheService) Ping() error {
	if !cs.Enabled() {
		return ErrCacheDisabled
	}
	ctx, cancel := context.WithTimeout(redisCtx, 2*time.Second)
	defer cancel()
	return cs.client.Ping(ctx).Err()
}
