package spotify

import (
	"time"

	"github.com/yhkl-dev/gospotify/native"
)

// Image is a cover or portrait image fetched by id.
type Image struct {
	lib native.Library
	h   native.ImageHandle
	ref *ref
}

// CreateImage asks the native library for the image with the given id.
func (s *Session) CreateImage(id []byte) (*Image, error) {
	h := s.lib.ImageCreate(s.h, id)
	if h == 0 {
		return nil, &Error{Op: "create image", Code: ErrorInvalidIndata}
	}
	return adoptImage(s.lib, h), nil
}

// NewImage wraps h and takes a native reference to it. A null handle yields
// nil.
func NewImage(lib native.Library, h native.ImageHandle) *Image {
	if h == 0 {
		return nil
	}
	lib.ImageAddRef(h)
	return adoptImage(lib, h)
}

func adoptImage(lib native.Library, h native.ImageHandle) *Image {
	img := &Image{lib: lib, h: h}
	img.ref = adopt(img, "image", func() native.ErrorType { return lib.ImageRelease(h) })
	return img
}

func (i *Image) Handle() native.ImageHandle {
	return i.h
}

func (i *Image) Release() {
	i.ref.close()
}

func (i *Image) isReleased() bool {
	return !i.ref.live()
}

func (i *Image) IsLoaded() bool {
	return i.ref.live() && i.lib.ImageIsLoaded(i.h)
}

func (i *Image) Load(timeout time.Duration) (*Image, error) {
	if err := Load(i, timeout); err != nil {
		return nil, err
	}
	return i, nil
}

func (i *Image) Error() ErrorType {
	if !i.ref.live() {
		return ErrorInvalidArgument
	}
	return i.lib.ImageError(i.h)
}

func (i *Image) Format() ImageFormat {
	if !i.ref.live() {
		return ImageFormatUnknown
	}
	return i.lib.ImageFormat(i.h)
}

// Data returns the encoded image bytes, or nil if the image isn't loaded.
func (i *Image) Data() []byte {
	if !i.ref.live() {
		return nil
	}
	return copyID(i.lib.ImageData(i.h))
}

func (i *Image) ID() []byte {
	if !i.ref.live() {
		return nil
	}
	return copyID(i.lib.ImageID(i.h))
}
