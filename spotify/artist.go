package spotify

import (
	"time"

	"github.com/yhkl-dev/gospotify/native"
)

// Artist is a music artist.
type Artist struct {
	lib native.Library
	h   native.ArtistHandle
	ref *ref
}

// NewArtist wraps h and takes a native reference to it. A null handle yields
// nil.
func NewArtist(lib native.Library, h native.ArtistHandle) *Artist {
	if h == 0 {
		return nil
	}
	lib.ArtistAddRef(h)
	a := &Artist{lib: lib, h: h}
	a.ref = adopt(a, "artist", func() native.ErrorType { return lib.ArtistRelease(h) })
	return a
}

// Handle returns the wrapped native handle.
func (a *Artist) Handle() native.ArtistHandle {
	return a.h
}

// Release gives back the native reference. Further reads return absent
// values. Calling it more than once is harmless.
func (a *Artist) Release() {
	a.ref.close()
}

func (a *Artist) isReleased() bool {
	return !a.ref.live()
}

// IsLoaded reports whether the artist's data is loaded.
func (a *Artist) IsLoaded() bool {
	return a.ref.live() && a.lib.ArtistIsLoaded(a.h)
}

// Load blocks until the artist's data is loaded.
func (a *Artist) Load(timeout time.Duration) (*Artist, error) {
	if err := Load(a, timeout); err != nil {
		return nil, err
	}
	return a, nil
}

// Name returns the artist's name, or "" if the artist isn't loaded.
func (a *Artist) Name() string {
	if !a.ref.live() {
		return ""
	}
	return a.lib.ArtistName(a.h)
}

// PortraitID returns the image id of the artist's portrait in the given size,
// or nil if the artist isn't loaded or has no portrait.
func (a *Artist) PortraitID(size ImageSize) []byte {
	if !a.ref.live() {
		return nil
	}
	return copyID(a.lib.ArtistPortrait(a.h, size))
}

// Link returns a link to the artist.
func (a *Artist) Link() (*Link, error) {
	if !a.ref.live() {
		return nil, ErrReleased
	}
	return adoptLink(a.lib, a.lib.LinkCreateFromArtist(a.h))
}

// copyID detaches an id from memory owned by the native library.
func copyID(id []byte) []byte {
	if id == nil {
		return nil
	}
	return append([]byte(nil), id...)
}
