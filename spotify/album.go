package spotify

import (
	"time"

	"github.com/yhkl-dev/gospotify/native"
)

// Album is a music album.
type Album struct {
	lib native.Library
	h   native.AlbumHandle
	ref *ref
}

// NewAlbum wraps h and takes a native reference to it. A null handle yields
// nil.
func NewAlbum(lib native.Library, h native.AlbumHandle) *Album {
	if h == 0 {
		return nil
	}
	lib.AlbumAddRef(h)
	a := &Album{lib: lib, h: h}
	a.ref = adopt(a, "album", func() native.ErrorType { return lib.AlbumRelease(h) })
	return a
}

func (a *Album) Handle() native.AlbumHandle {
	return a.h
}

// Release gives back the native reference.
func (a *Album) Release() {
	a.ref.close()
}

func (a *Album) isReleased() bool {
	return !a.ref.live()
}

// IsLoaded reports whether the album's data is loaded.
func (a *Album) IsLoaded() bool {
	return a.ref.live() && a.lib.AlbumIsLoaded(a.h)
}

// Load blocks until the album's data is loaded.
func (a *Album) Load(timeout time.Duration) (*Album, error) {
	if err := Load(a, timeout); err != nil {
		return nil, err
	}
	return a, nil
}

// IsAvailable reports whether the album is available in the current region.
// It is false while the album isn't loaded.
func (a *Album) IsAvailable() bool {
	if !a.IsLoaded() {
		return false
	}
	return a.lib.AlbumIsAvailable(a.h)
}

// Artist returns the album's artist, or nil if the album isn't loaded or has
// no artist. The caller owns the returned wrapper.
func (a *Album) Artist() *Artist {
	if !a.ref.live() {
		return nil
	}
	return NewArtist(a.lib, a.lib.AlbumArtist(a.h))
}

// CoverID returns the image id of the album cover in the given size, or nil
// if the album isn't loaded or has no cover.
func (a *Album) CoverID(size ImageSize) []byte {
	if !a.ref.live() {
		return nil
	}
	return copyID(a.lib.AlbumCover(a.h, size))
}

// Cover creates an image for the album cover on the active session. It
// returns nil and no error when the album has no cover.
func (a *Album) Cover(size ImageSize) (*Image, error) {
	id := a.CoverID(size)
	if id == nil {
		return nil, nil
	}
	s := CurrentSession()
	if s == nil {
		return nil, ErrNoSession
	}
	return s.CreateImage(id)
}

// Name returns the album's name, or "" if the album isn't loaded.
func (a *Album) Name() string {
	if !a.ref.live() {
		return ""
	}
	return a.lib.AlbumName(a.h)
}

// Year returns the release year, or 0 if the album isn't loaded.
func (a *Album) Year() int {
	if !a.ref.live() {
		return 0
	}
	return a.lib.AlbumYear(a.h)
}

func (a *Album) Type() AlbumType {
	if !a.ref.live() {
		return AlbumTypeUnknown
	}
	return a.lib.AlbumType(a.h)
}

// Link returns a link to the album.
func (a *Album) Link() (*Link, error) {
	if !a.ref.live() {
		return nil, ErrReleased
	}
	return adoptLink(a.lib, a.lib.LinkCreateFromAlbum(a.h))
}
