package spotify

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc/pool"
)

// DefaultLoadTimeout is used when Load is called with a zero timeout.
const DefaultLoadTimeout = 10 * time.Second

const defaultPollInterval = 10 * time.Millisecond

// maxConcurrentLoads bounds the goroutines LoadAll starts.
const maxConcurrentLoads = 8

var (
	pollInterval atomic.Int64
	loadTimeout  atomic.Int64
)

func init() {
	pollInterval.Store(int64(defaultPollInterval))
	loadTimeout.Store(int64(DefaultLoadTimeout))
}

// SetPollInterval changes how often Load checks the loaded state.
func SetPollInterval(d time.Duration) {
	if d <= 0 {
		d = defaultPollInterval
	}
	pollInterval.Store(int64(d))
}

// SetDefaultLoadTimeout changes the timeout Load uses when given zero.
func SetDefaultLoadTimeout(d time.Duration) {
	if d <= 0 {
		d = DefaultLoadTimeout
	}
	loadTimeout.Store(int64(d))
}

// Loadable is anything whose data the native library fills in
// asynchronously.
type Loadable interface {
	IsLoaded() bool
}

type releasable interface {
	isReleased() bool
}

// Load blocks until l is loaded or timeout elapses. A zero timeout means the
// default load timeout. Past the deadline it returns a *TimeoutError.
func Load(l Loadable, timeout time.Duration) error {
	if timeout <= 0 {
		timeout = time.Duration(loadTimeout.Load())
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := LoadContext(ctx, l)
	if errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{Timeout: timeout}
	}
	return err
}

// LoadContext blocks until l is loaded or ctx is done. When no event loop is
// running on the active session, it pumps native events itself.
func LoadContext(ctx context.Context, l Loadable) error {
	interval := time.Duration(pollInterval.Load())
	for {
		if r, ok := l.(releasable); ok && r.isReleased() {
			return ErrReleased
		}
		if l.IsLoaded() {
			return nil
		}
		if s := CurrentSession(); s != nil && !s.EventLoopRunning() {
			s.ProcessEvents()
			if l.IsLoaded() {
				return nil
			}
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("spotify: load: %w", ctx.Err())
		case <-time.After(interval):
		}
	}
}

// LoadAll loads every item concurrently, each bounded by timeout, and
// returns the combined error of those that failed.
func LoadAll(ctx context.Context, timeout time.Duration, items ...Loadable) error {
	if timeout <= 0 {
		timeout = time.Duration(loadTimeout.Load())
	}
	p := pool.New().WithMaxGoroutines(maxConcurrentLoads).WithContext(ctx)
	for _, item := range items {
		p.Go(func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()
			err := LoadContext(ctx, item)
			if errors.Is(err, context.DeadlineExceeded) {
				return &TimeoutError{Timeout: timeout}
			}
			return err
		})
	}
	return p.Wait()
}
