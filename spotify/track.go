package spotify

import (
	"time"

	"github.com/samber/lo"
	"github.com/yhkl-dev/gospotify/native"
)

// Track is a single playable track.
type Track struct {
	lib native.Library
	h   native.TrackHandle
	ref *ref
}

// NewTrack wraps h and takes a native reference to it. A null handle yields
// nil.
func NewTrack(lib native.Library, h native.TrackHandle) *Track {
	if h == 0 {
		return nil
	}
	lib.TrackAddRef(h)
	t := &Track{lib: lib, h: h}
	t.ref = adopt(t, "track", func() native.ErrorType { return lib.TrackRelease(h) })
	return t
}

func (t *Track) Handle() native.TrackHandle {
	return t.h
}

func (t *Track) Release() {
	t.ref.close()
}

func (t *Track) isReleased() bool {
	return !t.ref.live()
}

func (t *Track) IsLoaded() bool {
	return t.ref.live() && t.lib.TrackIsLoaded(t.h)
}

func (t *Track) Load(timeout time.Duration) (*Track, error) {
	if err := Load(t, timeout); err != nil {
		return nil, err
	}
	return t, nil
}

// Error returns the track's native status, ErrorIsLoading until loaded.
func (t *Track) Error() ErrorType {
	if !t.ref.live() {
		return ErrorInvalidArgument
	}
	return t.lib.TrackError(t.h)
}

func (t *Track) Name() string {
	if !t.ref.live() {
		return ""
	}
	return t.lib.TrackName(t.h)
}

func (t *Track) Duration() time.Duration {
	if !t.ref.live() {
		return 0
	}
	return time.Duration(t.lib.TrackDuration(t.h)) * time.Millisecond
}

// Popularity is in the range 0-100.
func (t *Track) Popularity() int {
	if !t.ref.live() {
		return 0
	}
	return t.lib.TrackPopularity(t.h)
}

// Album returns the album the track is on, or nil if not loaded.
func (t *Track) Album() *Album {
	if !t.ref.live() {
		return nil
	}
	return NewAlbum(t.lib, t.lib.TrackAlbum(t.h))
}

// Artists returns the track's artists in native order, skipping null
// handles. The slice is empty if the track isn't loaded.
func (t *Track) Artists() []*Artist {
	if !t.ref.live() {
		return []*Artist{}
	}
	return lo.Compact(lo.Times(t.lib.TrackNumArtists(t.h), func(i int) *Artist {
		return NewArtist(t.lib, t.lib.TrackArtist(t.h, i))
	}))
}

func (t *Track) Link() (*Link, error) {
	return t.LinkAt(0)
}

// LinkAt returns a link that starts playback offset into the track.
func (t *Track) LinkAt(offset time.Duration) (*Link, error) {
	if !t.ref.live() {
		return nil, ErrReleased
	}
	return adoptLink(t.lib, t.lib.LinkCreateFromTrack(t.h, int(offset/time.Millisecond)))
}
