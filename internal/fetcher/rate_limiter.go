package fetcher

import (
	"context"
	"sync"
	"time"
)

// RateLimiter выдерживает паузу между запросами к одному хосту.
// rpm <= 0 отключает ограничение.
type RateLimiter struct {
	interval time.Duration
	lastTime map[string]time.Time
	mu       sync.Mutex
}

func NewRateLimiter(rpm int) *RateLimiter {
	rl := &RateLimiter{lastTime: make(map[string]time.Time)}
	if rpm > 0 {
		rl.interval = time.Minute / time.Duration(rpm)
	}
	return rl
}

func (rl *RateLimiter) Wait(ctx context.Context, host string) error {
	if rl == nil || rl.interval == 0 {
		return ctx.Err()
	}

	rl.mu.Lock()
	now := time.Now()
	next := rl.lastTime[host].Add(rl.interval)
	if next.Before(now) {
		next = now
	}
	rl.lastTime[host] = next
	rl.mu.Unlock()

	waitTime := time.Until(next)
	if waitTime <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(waitTime)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
