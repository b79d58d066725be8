package spotify

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/yhkl-dev/gospotify/native"
)

// SessionConfig contains the settings passed to the native session.
type SessionConfig struct {
	CacheLocation    string
	SettingsLocation string
	UserAgent        string
}

// Session owns the native session handle and drives the native event pump.
type Session struct {
	lib native.Library
	h   native.SessionHandle

	// processMu serializes SessionProcessEvents; the native library requires
	// a single event thread at a time. It is held while completion callbacks
	// run, so a pump attempted from inside one is skipped instead of waiting.
	processMu sync.Mutex

	notify      chan struct{}
	loopMu      sync.Mutex
	loopCancel  context.CancelFunc
	loopRunning atomic.Bool
	loop        conc.WaitGroup

	closeOnce sync.Once
}

var current atomic.Pointer[Session]

// SetSession makes s the process-wide active session. Passing nil clears it.
func SetSession(s *Session) {
	current.Store(s)
}

// CurrentSession returns the active session, or nil.
func CurrentSession() *Session {
	return current.Load()
}

// NewSession creates a native session. It does not become the active session
// until SetSession is called.
func NewSession(lib native.Library, cfg SessionConfig) (*Session, error) {
	h, code := lib.SessionCreate(native.SessionConfig{
		CacheLocation:    cfg.CacheLocation,
		SettingsLocation: cfg.SettingsLocation,
		UserAgent:        cfg.UserAgent,
	})
	if err := checkError("create session", code); err != nil {
		return nil, err
	}
	s := &Session{
		lib:    lib,
		h:      h,
		notify: make(chan struct{}, 1),
	}
	lib.SetNotifyFunc(h, s.wake)
	return s, nil
}

// Library returns the native library the session was created on.
func (s *Session) Library() native.Library {
	return s.lib
}

func (s *Session) Handle() native.SessionHandle {
	return s.h
}

// wake is called by the native library from any thread.
func (s *Session) wake() {
	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// ProcessEvents runs one round of native event processing and returns how
// long the library wants to be left alone. When another call is already
// pumping, including one further up the stack, it returns at once.
func (s *Session) ProcessEvents() time.Duration {
	if !s.processMu.TryLock() {
		slog.Debug("event pump busy, skipping")
		return time.Duration(pollInterval.Load())
	}
	defer s.processMu.Unlock()

	next, code := s.lib.SessionProcessEvents(s.h)
	if code != ErrorOK {
		slog.Warn("process events failed", "code", code.String())
		return time.Second
	}
	return time.Duration(next) * time.Millisecond
}

// EventLoopRunning reports whether a background event loop owns the event
// pump.
func (s *Session) EventLoopRunning() bool {
	return s.loopRunning.Load()
}

// StartEventLoop pumps native events on a background goroutine until ctx is
// done or Close is called. Calling it on a running loop is a no-op.
func (s *Session) StartEventLoop(ctx context.Context) {
	s.loopMu.Lock()
	defer s.loopMu.Unlock()
	if s.loopRunning.Load() {
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	s.loopCancel = cancel
	s.loopRunning.Store(true)

	s.loop.Go(func() {
		defer s.loopRunning.Store(false)
		slog.Debug("event loop started")
		for {
			timer := time.NewTimer(s.ProcessEvents())
			select {
			case <-ctx.Done():
				timer.Stop()
				slog.Debug("event loop stopped")
				return
			case <-s.notify:
				timer.Stop()
			case <-timer.C:
			}
		}
	})
}

// StopEventLoop stops the background loop and waits for it to exit.
func (s *Session) StopEventLoop() {
	s.loopMu.Lock()
	cancel := s.loopCancel
	s.loopCancel = nil
	s.loopMu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	s.loop.Wait()
}

// Close stops the event loop, clears the active session if it is s, and
// releases the native session. Searches still pending on s are released
// without running their callbacks.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.StopEventLoop()
		current.CompareAndSwap(s, nil)
		if pending := pendingSearches.drain(s); len(pending) > 0 {
			slog.Debug("releasing pending searches", "count", len(pending))
			for _, r := range pending {
				r.abandon()
			}
		}
		err = checkError("release session", s.lib.SessionRelease(s.h))
	})
	return err
}
