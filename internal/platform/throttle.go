package platform

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// DefaultMaxParallelDownloads bounds concurrent image downloads
const DefaultMaxParallelDownloads = 4

// ImageSource returns image bytes for a URL
type ImageSource interface {
	Load(ctx context.Context, imageURL string) ([]byte, error)
}

// ImageSourceFunc adapts a function to ImageSource
type ImageSourceFunc func(ctx context.Context, imageURL string) ([]byte, error)

// Load calls f
func (f ImageSourceFunc) Load(ctx context.Context, imageURL string) ([]byte, error) {
	return f(ctx, imageURL)
}

// Throttle limits how many loads of the wrapped source run at once. Callers
// over the limit wait for a slot or for their context to end.
type Throttle struct {
	src         ImageSource
	sem         *semaphore.Weighted
	maxParallel int
	active      atomic.Int32
}

// NewThrottle wraps src with at most maxParallel concurrent loads
func NewThrottle(src ImageSource, maxParallel int) *Throttle {
	if maxParallel <= 0 {
		maxParallel = DefaultMaxParallelDownloads
	}
	return &Throttle{
		src:         src,
		sem:         semaphore.NewWeighted(int64(maxParallel)),
		maxParallel: maxParallel,
	}
}

// Load waits for a free slot and loads imageURL
func (t *Throttle) Load(ctx context.Context, imageURL string) ([]byte, error) {
	if err := t.sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	t.active.Add(1)
	defer func() {
		t.active.Add(-1)
		t.sem.Release(1)
	}()
	return t.src.Load(ctx, imageURL)
}

// Active returns the number of loads in progress
func (t *Throttle) Active() int {
	return int(t.active.Load())
}

// MaxParallel returns the configured limit
func (t *Throttle) MaxParallel() int {
	return t.maxParallel
}
