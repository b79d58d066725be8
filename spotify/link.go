package spotify

import (
	"github.com/yhkl-dev/gospotify/native"
)

// Link is a serializable reference to an artist, album, track or search.
type Link struct {
	lib native.Library
	h   native.LinkHandle
	ref *ref
}

// NewLink wraps h and takes a native reference to it. A null handle yields
// nil.
func NewLink(lib native.Library, h native.LinkHandle) *Link {
	if h == 0 {
		return nil
	}
	lib.LinkAddRef(h)
	return newLink(lib, h)
}

// adoptLink wraps a link the native library just created for us.
func adoptLink(lib native.Library, h native.LinkHandle) (*Link, error) {
	if h == 0 {
		return nil, &Error{Op: "create link", Code: ErrorInvalidArgument}
	}
	return newLink(lib, h), nil
}

func newLink(lib native.Library, h native.LinkHandle) *Link {
	l := &Link{lib: lib, h: h}
	l.ref = adopt(l, "link", func() native.ErrorType { return lib.LinkRelease(h) })
	return l
}

func (l *Link) Handle() native.LinkHandle {
	return l.h
}

func (l *Link) Release() {
	l.ref.close()
}

// String returns the link's URI.
func (l *Link) String() string {
	if !l.ref.live() {
		return ""
	}
	return l.lib.LinkAsString(l.h)
}

func (l *Link) Type() LinkType {
	if !l.ref.live() {
		return LinkTypeInvalid
	}
	return l.lib.LinkType(l.h)
}
