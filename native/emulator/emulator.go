// Package emulator implements native.Library in memory. It keeps a small
// catalog, tracks reference counts per handle, and completes searches from
// SessionProcessEvents the way the real library completes them from its event
// thread.
package emulator

import (
	"fmt"
	"sync"

	"github.com/yhkl-dev/gospotify/native"
)

type kind int

const (
	kindSession kind = iota + 1
	kindArtist
	kindAlbum
	kindTrack
	kindSearch
	kindImage
	kindLink
)

func (k kind) String() string {
	switch k {
	case kindSession:
		return "session"
	case kindArtist:
		return "artist"
	case kindAlbum:
		return "album"
	case kindTrack:
		return "track"
	case kindSearch:
		return "search"
	case kindImage:
		return "image"
	case kindLink:
		return "link"
	}
	return "unknown"
}

// entry is the bookkeeping shared by every handle.
type entry struct {
	kind kind
	refs int
	// owned entries are freed when refs drops to zero; catalog entries live
	// for the lifetime of the emulator.
	owned bool
	// pending counts the event pumps left before the entity reports loaded.
	pending int
	forced  *bool
}

func (en *entry) loaded() bool {
	if en.forced != nil {
		return *en.forced
	}
	return en.pending <= 0
}

// Option configures an Emulator.
type Option func(*Emulator)

// WithLoadDelay makes entities and searches report loaded only after n calls
// to SessionProcessEvents.
func WithLoadDelay(n int) Option {
	return func(e *Emulator) {
		e.loadDelay = n
	}
}

// WithDemoCatalog seeds the demo catalog at construction.
func WithDemoCatalog() Option {
	return func(e *Emulator) {
		e.seedDemo = true
	}
}

// Emulator is an in-memory native.Library. The zero value is not usable; use
// New.
type Emulator struct {
	mu         sync.Mutex
	nextHandle uintptr
	entries    map[uintptr]*entry
	loadDelay  int
	seedDemo   bool
	ticks      int
	faults     []string

	artists   map[native.ArtistHandle]*artist
	albums    map[native.AlbumHandle]*album
	tracks    map[native.TrackHandle]*track
	playlists []playlist

	searches    map[native.SearchHandle]*search
	pending     []native.SearchHandle
	lastRequest *recordedRequest
	failNext    native.ErrorType

	images   map[native.ImageHandle]*imageEntry
	imageIDs map[string]imageSource
	links    map[native.LinkHandle]*link

	notify native.NotifyFunc
}

var _ native.Library = (*Emulator)(nil)

// New creates an empty emulator.
func New(opts ...Option) *Emulator {
	e := &Emulator{
		nextHandle: 0x1000,
		entries:    make(map[uintptr]*entry),
		artists:    make(map[native.ArtistHandle]*artist),
		albums:     make(map[native.AlbumHandle]*album),
		tracks:     make(map[native.TrackHandle]*track),
		searches:   make(map[native.SearchHandle]*search),
		images:     make(map[native.ImageHandle]*imageEntry),
		imageIDs:   make(map[string]imageSource),
		links:      make(map[native.LinkHandle]*link),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.seedDemo {
		e.SeedDemo()
	}
	return e
}

// newEntry allocates a handle. Callers hold e.mu.
func (e *Emulator) newEntry(k kind, owned bool) uintptr {
	e.nextHandle += 0x10
	refs := 0
	if owned {
		refs = 1
	}
	e.entries[e.nextHandle] = &entry{kind: k, refs: refs, owned: owned, pending: e.loadDelay}
	return e.nextHandle
}

// lookup returns the entry for h if it exists with kind k. Callers hold e.mu.
func (e *Emulator) lookup(h uintptr, k kind) (*entry, bool) {
	en, ok := e.entries[h]
	if !ok || en.kind != k {
		e.faultf("%s handle %#x is not live", k, h)
		return nil, false
	}
	return en, true
}

func (e *Emulator) faultf(format string, args ...any) {
	e.faults = append(e.faults, fmt.Sprintf(format, args...))
}

func (e *Emulator) addRef(h uintptr, k kind) native.ErrorType {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.lookup(h, k)
	if !ok {
		return native.ErrorInvalidArgument
	}
	en.refs++
	return native.ErrorOK
}

func (e *Emulator) release(h uintptr, k kind) native.ErrorType {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.lookup(h, k)
	if !ok {
		return native.ErrorInvalidArgument
	}
	if en.refs == 0 {
		e.faultf("%s handle %#x released more times than referenced", k, h)
		return native.ErrorInvalidArgument
	}
	en.refs--
	if en.refs == 0 && en.owned {
		e.free(h, k)
	}
	return native.ErrorOK
}

// free drops an owned handle. Callers hold e.mu.
func (e *Emulator) free(h uintptr, k kind) {
	delete(e.entries, h)
	switch k {
	case kindSearch:
		delete(e.searches, native.SearchHandle(h))
	case kindImage:
		delete(e.images, native.ImageHandle(h))
	case kindLink:
		delete(e.links, native.LinkHandle(h))
	}
}

func (e *Emulator) isLoaded(h uintptr, k kind) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.lookup(h, k)
	return ok && en.loaded()
}

// RefCount reports the current reference count of any handle, or -1 when the
// handle is not live.
func (e *Emulator) RefCount(h uintptr) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.entries[h]
	if !ok {
		return -1
	}
	return en.refs
}

// IsLive reports whether h still refers to an allocated handle.
func (e *Emulator) IsLive(h uintptr) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.entries[h]
	return ok
}

// SetLoaded pins the loaded state of a handle, overriding the load delay.
func (e *Emulator) SetLoaded(h uintptr, loaded bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if en, ok := e.entries[h]; ok {
		en.forced = &loaded
	}
}

// Faults returns every misuse the emulator observed, such as releasing a
// handle more often than it was referenced.
func (e *Emulator) Faults() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.faults...)
}

// Ticks returns how many times SessionProcessEvents has run.
func (e *Emulator) Ticks() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ticks
}

func (e *Emulator) SessionCreate(cfg native.SessionConfig) (native.SessionHandle, native.ErrorType) {
	if len(cfg.UserAgent) > 255 {
		return 0, native.ErrorBadUserAgent
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	h := e.newEntry(kindSession, true)
	e.entries[h].pending = 0
	return native.SessionHandle(h), native.ErrorOK
}

func (e *Emulator) SessionRelease(session native.SessionHandle) native.ErrorType {
	return e.release(uintptr(session), kindSession)
}

func (e *Emulator) SetNotifyFunc(session native.SessionHandle, fn native.NotifyFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.notify = fn
}

// SessionProcessEvents advances every pending load by one step and fires the
// completion callbacks of searches that finished. Callbacks run on the
// calling goroutine without the emulator lock held.
func (e *Emulator) SessionProcessEvents(session native.SessionHandle) (int, native.ErrorType) {
	e.mu.Lock()
	if _, ok := e.lookup(uintptr(session), kindSession); !ok {
		e.mu.Unlock()
		return 0, native.ErrorInvalidArgument
	}
	e.ticks++
	for _, en := range e.entries {
		if en.pending > 0 {
			en.pending--
		}
	}
	var ready []completion
	remaining := e.pending[:0]
	for _, h := range e.pending {
		s, ok := e.searches[h]
		if !ok {
			continue
		}
		if e.entries[uintptr(h)].pending > 0 {
			remaining = append(remaining, h)
			continue
		}
		ready = append(ready, e.finish(h, s))
	}
	e.pending = remaining
	next := 1000
	if len(e.pending) > 0 {
		next = 10
	}
	e.mu.Unlock()

	for _, c := range ready {
		c.fire()
	}
	return next, native.ErrorOK
}

func (e *Emulator) wake() {
	e.mu.Lock()
	fn := e.notify
	e.mu.Unlock()
	if fn != nil {
		fn()
	}
}
