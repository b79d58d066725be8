package emulator

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"net/url"

	"github.com/yhkl-dev/gospotify/native"
)

// imageIDLength is the size of every native image id.
const imageIDLength = 20

type imageSource struct {
	uri  string
	size native.ImageSize
}

type imageEntry struct {
	id   []byte
	src  imageSource
	err  native.ErrorType
	data []byte
}

type link struct {
	uri      string
	linkType native.LinkType
}

// registerImages makes the ids of every size variant of uri resolvable.
// Callers hold e.mu.
func (e *Emulator) registerImages(uri string) {
	for _, size := range []native.ImageSize{native.ImageSizeNormal, native.ImageSizeSmall, native.ImageSizeLarge} {
		e.imageIDs[string(imageID(uri, size))] = imageSource{uri: uri, size: size}
	}
}

func (e *Emulator) ImageCreate(session native.SessionHandle, id []byte) native.ImageHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(session), kindSession); !ok {
		return 0
	}
	h := native.ImageHandle(e.newEntry(kindImage, true))
	img := &imageEntry{id: append([]byte(nil), id...)}
	src, known := e.imageIDs[string(id)]
	switch {
	case len(id) != imageIDLength:
		img.err = native.ErrorInvalidIndata
	case !known:
		img.err = native.ErrorOtherPermanent
	default:
		img.src = src
	}
	e.images[h] = img
	return h
}

func (e *Emulator) ImageAddRef(h native.ImageHandle) native.ErrorType {
	return e.addRef(uintptr(h), kindImage)
}

func (e *Emulator) ImageRelease(h native.ImageHandle) native.ErrorType {
	return e.release(uintptr(h), kindImage)
}

func (e *Emulator) ImageIsLoaded(h native.ImageHandle) bool {
	return e.isLoaded(uintptr(h), kindImage)
}

func (e *Emulator) withImage(h native.ImageHandle, fn func(img *imageEntry)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if en, ok := e.lookup(uintptr(h), kindImage); ok && en.loaded() {
		fn(e.images[h])
	}
}

func (e *Emulator) ImageError(h native.ImageHandle) native.ErrorType {
	code := native.ErrorIsLoading
	e.withImage(h, func(img *imageEntry) { code = img.err })
	return code
}

func (e *Emulator) ImageFormat(h native.ImageHandle) native.ImageFormat {
	format := native.ImageFormatUnknown
	e.withImage(h, func(img *imageEntry) {
		if img.err == native.ErrorOK {
			format = native.ImageFormatPNG
		}
	})
	return format
}

func (e *Emulator) ImageData(h native.ImageHandle) (data []byte) {
	e.withImage(h, func(img *imageEntry) {
		if img.err != native.ErrorOK {
			return
		}
		if img.data == nil {
			img.data = renderImage(img.id, img.src.size)
		}
		data = img.data
	})
	return data
}

func (e *Emulator) ImageID(h native.ImageHandle) (id []byte) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(h), kindImage); ok {
		id = e.images[h].id
	}
	return id
}

// renderImage draws a square gradient whose colors derive from the id.
func renderImage(id []byte, size native.ImageSize) []byte {
	side := 64
	switch size {
	case native.ImageSizeSmall:
		side = 32
	case native.ImageSizeLarge:
		side = 128
	}
	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.Set(x, y, color.RGBA{
				R: id[0] ^ uint8(x*255/side),
				G: id[1] ^ uint8(y*255/side),
				B: id[2],
				A: 0xff,
			})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil
	}
	return buf.Bytes()
}

func (e *Emulator) newLink(uri string, t native.LinkType) native.LinkHandle {
	h := native.LinkHandle(e.newEntry(kindLink, true))
	e.links[h] = &link{uri: uri, linkType: t}
	return h
}

func (e *Emulator) LinkCreateFromArtist(h native.ArtistHandle) native.LinkHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(h), kindArtist); !ok {
		return 0
	}
	return e.newLink(e.artists[h].uri, native.LinkTypeArtist)
}

func (e *Emulator) LinkCreateFromAlbum(h native.AlbumHandle) native.LinkHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(h), kindAlbum); !ok {
		return 0
	}
	return e.newLink(e.albums[h].uri, native.LinkTypeAlbum)
}

func (e *Emulator) LinkCreateFromTrack(h native.TrackHandle, offsetMs int) native.LinkHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(h), kindTrack); !ok {
		return 0
	}
	uri := e.tracks[h].uri
	if offsetMs > 0 {
		secs := offsetMs / 1000
		uri += fmt.Sprintf("#%02d:%02d", secs/60, secs%60)
	}
	return e.newLink(uri, native.LinkTypeTrack)
}

func (e *Emulator) LinkCreateFromSearch(h native.SearchHandle) native.LinkHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(h), kindSearch); !ok {
		return 0
	}
	return e.newLink("spotify:search:"+url.QueryEscape(e.searches[h].query), native.LinkTypeSearch)
}

func (e *Emulator) LinkAddRef(h native.LinkHandle) native.ErrorType {
	return e.addRef(uintptr(h), kindLink)
}

func (e *Emulator) LinkRelease(h native.LinkHandle) native.ErrorType {
	return e.release(uintptr(h), kindLink)
}

func (e *Emulator) LinkAsString(h native.LinkHandle) (uri string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(h), kindLink); ok {
		uri = e.links[h].uri
	}
	return uri
}

func (e *Emulator) LinkType(h native.LinkHandle) native.LinkType {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.lookup(uintptr(h), kindLink); ok {
		return e.links[h].linkType
	}
	return native.LinkTypeInvalid
}
