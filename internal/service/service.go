package service

import (
	"context"
	"time"
)

// DefaultTimeout bounds every store and gateway call made by the core
// services when no explicit timeout is configured.
const DefaultTimeout = 10 * time.Second

func timeoutOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultTimeout
	}
	return d
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeoutOrDefault(d))
}
