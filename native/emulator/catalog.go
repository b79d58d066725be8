package emulator

import (
	"crypto/sha1"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yhkl-dev/gospotify/native"
)

type artist struct {
	name     string
	uri      string
	portrait bool
}

type album struct {
	name      string
	uri       string
	artist    native.ArtistHandle
	year      int
	albumType native.AlbumType
	cover     bool
	available bool
}

type track struct {
	name       string
	uri        string
	album      native.AlbumHandle
	artists    []native.ArtistHandle
	durationMs int
	popularity int
	err        native.ErrorType
}

type playlist struct {
	name     string
	uri      string
	imageURI string
}

// catalogID derives a stable 32 character id from a kind and a name.
func catalogID(kind, name string) string {
	u := uuid.NewSHA1(uuid.NameSpaceURL, []byte("gospotify:"+kind+":"+name))
	return strings.ReplaceAll(u.String(), "-", "")
}

// imageID derives the 20 byte image id for one size variant of an entity.
func imageID(uri string, size native.ImageSize) []byte {
	sum := sha1.Sum([]byte(uri + "#" + size.String()))
	return sum[:]
}

// AddArtist adds an artist to the catalog.
func (e *Emulator) AddArtist(name string, withPortrait bool) native.ArtistHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	h := native.ArtistHandle(e.newEntry(kindArtist, false))
	a := &artist{name: name, uri: "spotify:artist:" + catalogID("artist", name), portrait: withPortrait}
	e.artists[h] = a
	if withPortrait {
		e.registerImages(a.uri)
	}
	return h
}

// AddAlbum adds an album by artist to the catalog. A zero artist handle is
// allowed and yields an album without artist.
func (e *Emulator) AddAlbum(name string, by native.ArtistHandle, year int, albumType native.AlbumType, withCover bool) native.AlbumHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	h := native.AlbumHandle(e.newEntry(kindAlbum, false))
	a := &album{
		name:      name,
		uri:       "spotify:album:" + catalogID("album", name),
		artist:    by,
		year:      year,
		albumType: albumType,
		cover:     withCover,
		available: true,
	}
	e.albums[h] = a
	if withCover {
		e.registerImages(a.uri)
	}
	return h
}

// AddTrack adds a track on album performed by artists.
func (e *Emulator) AddTrack(name string, on native.AlbumHandle, duration time.Duration, popularity int, by ...native.ArtistHandle) native.TrackHandle {
	e.mu.Lock()
	defer e.mu.Unlock()
	h := native.TrackHandle(e.newEntry(kindTrack, false))
	e.tracks[h] = &track{
		name:       name,
		uri:        "spotify:track:" + catalogID("track", name),
		album:      on,
		artists:    append([]native.ArtistHandle(nil), by...),
		durationMs: int(duration / time.Millisecond),
		popularity: popularity,
	}
	return h
}

// AddPlaylist adds a playlist record. Playlists only surface through search
// results and have no handle.
func (e *Emulator) AddPlaylist(name, uri, imageURI string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.playlists = append(e.playlists, playlist{name: name, uri: uri, imageURI: imageURI})
}

// SetAlbumAvailable marks an album as unavailable in the current region.
func (e *Emulator) SetAlbumAvailable(h native.AlbumHandle, available bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if a, ok := e.albums[h]; ok {
		a.available = available
	}
}

// SetTrackError sets the error a track reports once loaded.
func (e *Emulator) SetTrackError(h native.TrackHandle, code native.ErrorType) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if t, ok := e.tracks[h]; ok {
		t.err = code
	}
}

// SeedDemo fills the catalog with a handful of artists, albums, tracks and
// playlists.
func (e *Emulator) SeedDemo() {
	alice := e.AddArtist("Alice in Chains", true)
	cooper := e.AddArtist("Alice Cooper", false)
	coltrane := e.AddArtist("Alice Coltrane", true)
	bowie := e.AddArtist("David Bowie", true)

	dirt := e.AddAlbum("Dirt", alice, 1992, native.AlbumTypeAlbum, true)
	jar := e.AddAlbum("Jar of Flies", alice, 1994, native.AlbumTypeSingle, true)
	school := e.AddAlbum("School's Out", cooper, 1972, native.AlbumTypeAlbum, false)
	journey := e.AddAlbum("Journey in Satchidananda", coltrane, 1971, native.AlbumTypeAlbum, true)
	hunky := e.AddAlbum("Hunky Dory", bowie, 1971, native.AlbumTypeAlbum, true)
	hits := e.AddAlbum("Shock Rock Hits", 0, 2001, native.AlbumTypeCompilation, false)

	e.AddTrack("Rooster", dirt, 6*time.Minute+15*time.Second, 71, alice)
	e.AddTrack("Would?", dirt, 3*time.Minute+28*time.Second, 78, alice)
	e.AddTrack("Them Bones", dirt, 2*time.Minute+30*time.Second, 69, alice)
	e.AddTrack("Nutshell", jar, 4*time.Minute+19*time.Second, 75, alice)
	e.AddTrack("No Excuses", jar, 4*time.Minute+15*time.Second, 66, alice)
	e.AddTrack("School's Out", school, 3*time.Minute+30*time.Second, 72, cooper)
	e.AddTrack("Journey in Satchidananda", journey, 6*time.Minute+38*time.Second, 48, coltrane)
	e.AddTrack("Life on Mars?", hunky, 3*time.Minute+48*time.Second, 80, bowie)
	e.AddTrack("Changes", hunky, 3*time.Minute+37*time.Second, 79, bowie)
	e.AddTrack("Poison", hits, 4*time.Minute+30*time.Second, 60, cooper)

	e.AddPlaylist("Alice Radio", "spotify:user:demo:playlist:"+catalogID("playlist", "Alice Radio"), "spotify:image:"+catalogID("image", "Alice Radio"))
	e.AddPlaylist("Seventies Glam", "spotify:user:demo:playlist:"+catalogID("playlist", "Seventies Glam"), "spotify:image:"+catalogID("image", "Seventies Glam"))
	e.AddPlaylist("Grunge Essentials", "spotify:user:demo:playlist:"+catalogID("playlist", "Grunge Essentials"), "")
}

func (e *Emulator) ArtistAddRef(h native.ArtistHandle) native.ErrorType {
	return e.addRef(uintptr(h), kindArtist)
}

func (e *Emulator) ArtistRelease(h native.ArtistHandle) native.ErrorType {
	return e.release(uintptr(h), kindArtist)
}

func (e *Emulator) ArtistIsLoaded(h native.ArtistHandle) bool {
	return e.isLoaded(uintptr(h), kindArtist)
}

// withArtist runs fn under the lock when h is a loaded artist.
func (e *Emulator) withArtist(h native.ArtistHandle, fn func(a *artist)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if en, ok := e.lookup(uintptr(h), kindArtist); ok && en.loaded() {
		fn(e.artists[h])
	}
}

func (e *Emulator) ArtistName(h native.ArtistHandle) (name string) {
	e.withArtist(h, func(a *artist) { name = a.name })
	return name
}

func (e *Emulator) ArtistPortrait(h native.ArtistHandle, size native.ImageSize) (id []byte) {
	e.withArtist(h, func(a *artist) {
		if a.portrait {
			id = imageID(a.uri, size)
		}
	})
	return id
}

func (e *Emulator) AlbumAddRef(h native.AlbumHandle) native.ErrorType {
	return e.addRef(uintptr(h), kindAlbum)
}

func (e *Emulator) AlbumRelease(h native.AlbumHandle) native.ErrorType {
	return e.release(uintptr(h), kindAlbum)
}

func (e *Emulator) AlbumIsLoaded(h native.AlbumHandle) bool {
	return e.isLoaded(uintptr(h), kindAlbum)
}

func (e *Emulator) withAlbum(h native.AlbumHandle, fn func(a *album)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if en, ok := e.lookup(uintptr(h), kindAlbum); ok && en.loaded() {
		fn(e.albums[h])
	}
}

func (e *Emulator) AlbumIsAvailable(h native.AlbumHandle) (available bool) {
	e.withAlbum(h, func(a *album) { available = a.available })
	return available
}

func (e *Emulator) AlbumArtist(h native.AlbumHandle) (artist native.ArtistHandle) {
	e.withAlbum(h, func(a *album) { artist = a.artist })
	return artist
}

func (e *Emulator) AlbumCover(h native.AlbumHandle, size native.ImageSize) (id []byte) {
	e.withAlbum(h, func(a *album) {
		if a.cover {
			id = imageID(a.uri, size)
		}
	})
	return id
}

func (e *Emulator) AlbumName(h native.AlbumHandle) (name string) {
	e.withAlbum(h, func(a *album) { name = a.name })
	return name
}

func (e *Emulator) AlbumYear(h native.AlbumHandle) (year int) {
	e.withAlbum(h, func(a *album) { year = a.year })
	return year
}

func (e *Emulator) AlbumType(h native.AlbumHandle) native.AlbumType {
	t := native.AlbumTypeUnknown
	e.withAlbum(h, func(a *album) { t = a.albumType })
	return t
}

func (e *Emulator) TrackAddRef(h native.TrackHandle) native.ErrorType {
	return e.addRef(uintptr(h), kindTrack)
}

func (e *Emulator) TrackRelease(h native.TrackHandle) native.ErrorType {
	return e.release(uintptr(h), kindTrack)
}

func (e *Emulator) TrackIsLoaded(h native.TrackHandle) bool {
	return e.isLoaded(uintptr(h), kindTrack)
}

func (e *Emulator) withTrack(h native.TrackHandle, fn func(t *track)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if en, ok := e.lookup(uintptr(h), kindTrack); ok && en.loaded() {
		fn(e.tracks[h])
	}
}

func (e *Emulator) TrackError(h native.TrackHandle) native.ErrorType {
	e.mu.Lock()
	defer e.mu.Unlock()
	en, ok := e.lookup(uintptr(h), kindTrack)
	if !ok {
		return native.ErrorInvalidArgument
	}
	if !en.loaded() {
		return native.ErrorIsLoading
	}
	return e.tracks[h].err
}

func (e *Emulator) TrackName(h native.TrackHandle) (name string) {
	e.withTrack(h, func(t *track) { name = t.name })
	return name
}

func (e *Emulator) TrackDuration(h native.TrackHandle) (ms int) {
	e.withTrack(h, func(t *track) { ms = t.durationMs })
	return ms
}

func (e *Emulator) TrackPopularity(h native.TrackHandle) (popularity int) {
	e.withTrack(h, func(t *track) { popularity = t.popularity })
	return popularity
}

func (e *Emulator) TrackAlbum(h native.TrackHandle) (album native.AlbumHandle) {
	e.withTrack(h, func(t *track) { album = t.album })
	return album
}

func (e *Emulator) TrackNumArtists(h native.TrackHandle) (n int) {
	e.withTrack(h, func(t *track) { n = len(t.artists) })
	return n
}

func (e *Emulator) TrackArtist(h native.TrackHandle, index int) (artist native.ArtistHandle) {
	e.withTrack(h, func(t *track) {
		if index >= 0 && index < len(t.artists) {
			artist = t.artists[index]
		}
	})
	return artist
}
