package spotify

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/yhkl-dev/gospotify/native"
)

// ref owns exactly one native reference. The reference is given back once,
// either by an explicit Release on the wrapper or by the GC cleanup when the
// wrapper becomes unreachable.
type ref struct {
	once     sync.Once
	released atomic.Bool
	release  func() native.ErrorType
	what     string
	cleanup  runtime.Cleanup
}

// adopt ties an already-owned native reference to owner. release must not
// reference owner, or owner never becomes unreachable.
func adopt[T any](owner *T, what string, release func() native.ErrorType) *ref {
	r := &ref{release: release, what: what}
	r.cleanup = runtime.AddCleanup(owner, (*ref).drop, r)
	return r
}

func (r *ref) drop() {
	r.once.Do(func() {
		r.released.Store(true)
		if code := r.release(); code != native.ErrorOK {
			slog.Warn("native release failed", "object", r.what, "code", code.String())
		}
	})
}

// close releases explicitly and cancels the pending GC cleanup.
func (r *ref) close() {
	r.cleanup.Stop()
	r.drop()
}

func (r *ref) live() bool {
	return !r.released.Load()
}
