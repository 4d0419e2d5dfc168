package app

import (
	"context"
	"log"
	"time"

	"github.com/five82/hansard/internal/parliament"
	"github.com/five82/hansard/internal/state"
)

const (
	defaultStatsInterval = 60 * time.Second
	maxBackoff           = 10 * time.Minute
)

// StatsFetcher is the loader call the poller needs.
type StatsFetcher interface {
	FetchStats(ctx context.Context) (parliament.Stats, error)
}

// StartPoller launches a background goroutine that refreshes the store,
// backing off while the API keeps failing. The returned channel is closed
// once the goroutine exits after ctx is cancelled.
func StartPoller(ctx context.Context, store *state.Store, fetcher StatsFetcher, interval time.Duration) <-chan struct{} {
	if interval <= 0 {
		interval = defaultStatsInterval
	}
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			refresh(ctx, store, fetcher)

			wait := calculateBackoff(store.Snapshot().ConsecutiveFailures, interval)
			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
	return done
}

// calculateBackoff doubles the interval for each consecutive failure, capped
// at maxBackoff.
func calculateBackoff(failures int, interval time.Duration) time.Duration {
	if failures <= 0 {
		return interval
	}
	wait := interval
	for i := 0; i < failures; i++ {
		wait *= 2
		if wait >= maxBackoff {
			return maxBackoff
		}
	}
	return wait
}

func refresh(ctx context.Context, store *state.Store, fetcher StatsFetcher) {
	if ctx.Err() != nil {
		return
	}
	stats, err := fetcher.FetchStats(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		store.Update(nil, err)
		log.Printf("stats poll failed: %v", err)
		return
	}
	store.Update(&stats, nil)
}
