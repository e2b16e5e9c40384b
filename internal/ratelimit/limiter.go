package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limiter решает, пропустить ли очередной запрос по ключу
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisLimiter считает запросы в Redis в фиксированном окне
type RedisLimiter struct {
	rdb    *redis.Client
	times  int
	window time.Duration
}

func NewRedisLimiter(rdb *redis.Client, times int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{rdb: rdb, times: times, window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.rdb.Incr(ctx, "limiter:"+key).Result()
	if err != nil {
		return false, err
	}
	// TTL выставляется только на первом запросе окна
	if count == 1 {
		if err := l.rdb.Expire(ctx, "limiter:"+key, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.times), nil
}

// MemoryLimiter хранит счётчики в памяти процесса
type MemoryLimiter struct {
	mu       sync.Mutex
	attempts map[string]int
	windowAt map[string]time.Time
	times    int
	window   time.Duration
}

func NewMemoryLimiter(times int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		attempts: make(map[string]int),
		windowAt: make(map[string]time.Time),
		times:    times,
		window:   window,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	start, exists := l.windowAt[key]
	if !exists || now.Sub(start) > l.window {
		l.attempts[key] = 1
		l.windowAt[key] = now
		return true, nil
	}

	l.attempts[key]++
	return l.attempts[key] <= l.times, nil
}
