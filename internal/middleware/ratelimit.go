package middleware

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	redispkg "github.com/mx-space/portfolio/internal/pkg/redis"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// CounterStore counts hits per key inside a fixed window.
type CounterStore interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, error)
}

// RedisCounter counts in Redis so limits hold across instances.
type RedisCounter struct {
	client *redispkg.Client
}

func NewRedisCounter(client *redispkg.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (r *RedisCounter) Incr(ctx context.Context, key string, window time.Duration) (int64, error) {
	return r.client.Incr(ctx, key, window)
}

// MemoryCounter counts in process memory when Redis is not configured.
type MemoryCounter struct {
	mu    sync.Mutex
	store *cache.Cache
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{store: cache.New(10*time.Minute, 10*time.Minute)}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, window time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Add(key, int64(1), window); err == nil {
		return 1, nil
	}
	return m.store.IncrementInt64(key, 1)
}

// RateLimitConfig limits one client IP to Limit requests per Window.
type RateLimitConfig struct {
	Name   string
	Limit  int
	Window time.Duration
}

// RateLimit rejects anonymous clients that exceed cfg.Limit within the
// current window. Store errors let the request through.
func RateLimit(store CounterStore, cfg RateLimitConfig, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		if cfg.Limit <= 0 || cfg.Window <= 0 || IsAuthenticated(c) {
			c.Next()
			return
		}

		ip := c.ClientIP()
		if ip == "" {
			c.Next()
			return
		}

		bucket := time.Now().UnixNano() / int64(cfg.Window)
		key := fmt.Sprintf("portfolio:rate_limit:%s:%s:%d", cfg.Name, ip, bucket)

		count, err := store.Incr(c.Request.Context(), key, cfg.Window+time.Second)
		if err != nil {
			log.Warn("rate limit store unavailable", zap.Error(err))
			c.Next()
			return
		}

		if count > int64(cfg.Limit) {
			retry := int(math.Ceil(cfg.Window.Seconds()))
			c.Header("Retry-After", strconv.Itoa(retry))
			response.TooManyRequests(c, "too many requests, please try again later")
			return
		}

		c.Next()
	}
}
