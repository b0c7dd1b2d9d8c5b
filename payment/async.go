package payment

import (
	"context"
	"fmt"
	"time"

	"encore.dev/rlog"
)

const asyncTimeout = 5 * time.Second

// runAsync is swapped by tests to run operations synchronously.
var runAsync = safeAsync

// safeAsync runs fn in its own goroutine, detached from the request that
// triggered it. Errors and panics are logged, never returned.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), asyncTimeout)
		defer cancel()

		start := time.Now()
		err := runRecovered(ctx, fn)
		if err != nil {
			rlog.Error("async operation failed", "op", op, "error", err, "elapsed", time.Since(start))
			return
		}
		rlog.Debug("async operation succeeded", "op", op, "elapsed", time.Since(start))
	}()
}

func runRecovered(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: %v", r)
		}
	}()
	return fn(ctx)
}
