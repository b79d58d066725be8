package spotify

import (
	"bytes"
	"testing"
	"time"

	"github.com/yhkl-dev/gospotify/native"
	"github.com/yhkl-dev/gospotify/native/emulator"
)

func TestAlbumAccessors(t *testing.T) {
	emu, _ := newTestSession(t)
	artist := emu.AddArtist("Alice in Chains", true)
	h := emu.AddAlbum("Dirt", artist, 1992, AlbumTypeAlbum, true)

	a := NewAlbum(emu, h)
	defer a.Release()

	if got := emu.RefCount(uintptr(h)); got != 1 {
		t.Errorf("refcount = %d, want 1", got)
	}
	if !a.IsLoaded() {
		t.Fatal("album not loaded")
	}
	if a.Name() != "Dirt" {
		t.Errorf("Name() = %q, want %q", a.Name(), "Dirt")
	}
	if a.Year() != 1992 {
		t.Errorf("Year() = %d, want 1992", a.Year())
	}
	if a.Type() != AlbumTypeAlbum {
		t.Errorf("Type() = %v, want %v", a.Type(), AlbumTypeAlbum)
	}
	if !a.IsAvailable() {
		t.Error("IsAvailable() = false, want true")
	}
	if id := a.CoverID(ImageSizeSmall); len(id) != 20 {
		t.Errorf("CoverID() length = %d, want 20", len(id))
	}

	by := a.Artist()
	if by == nil {
		t.Fatal("Artist() = nil")
	}
	defer by.Release()
	if by.Handle() != artist {
		t.Errorf("Artist().Handle() = %#x, want %#x", by.Handle(), artist)
	}
	if got := emu.RefCount(uintptr(artist)); got != 1 {
		t.Errorf("artist refcount = %d, want 1", got)
	}
}

func TestAlbumUnloaded(t *testing.T) {
	emu, _ := newTestSession(t)
	h := emu.AddAlbum("Dirt", emu.AddArtist("Alice in Chains", false), 1992, AlbumTypeAlbum, true)
	emu.SetLoaded(uintptr(h), false)

	a := NewAlbum(emu, h)
	defer a.Release()

	if a.Name() != "" {
		t.Errorf("Name() = %q, want empty", a.Name())
	}
	if a.IsAvailable() {
		t.Error("IsAvailable() = true for unloaded album")
	}
	if by := a.Artist(); by != nil {
		t.Errorf("Artist() = %v, want nil", by)
	}
	if id := a.CoverID(ImageSizeNormal); id != nil {
		t.Errorf("CoverID() = %x, want nil", id)
	}
	if a.Type() != AlbumTypeUnknown {
		t.Errorf("Type() = %v, want %v", a.Type(), AlbumTypeUnknown)
	}
}

func TestAlbumWithoutArtistOrCover(t *testing.T) {
	emu, _ := newTestSession(t)
	a := NewAlbum(emu, emu.AddAlbum("Shock Rock Hits", 0, 2001, AlbumTypeCompilation, false))
	defer a.Release()

	if by := a.Artist(); by != nil {
		t.Errorf("Artist() = %v, want nil", by)
	}
	if id := a.CoverID(ImageSizeLarge); id != nil {
		t.Errorf("CoverID() = %x, want nil", id)
	}
	img, err := a.Cover(ImageSizeLarge)
	if err != nil || img != nil {
		t.Errorf("Cover() = %v, %v; want nil, nil", img, err)
	}
}

func TestAlbumUnavailable(t *testing.T) {
	emu, _ := newTestSession(t)
	h := emu.AddAlbum("Dirt", 0, 1992, AlbumTypeAlbum, false)
	emu.SetAlbumAvailable(h, false)

	a := NewAlbum(emu, h)
	defer a.Release()
	if a.IsAvailable() {
		t.Error("IsAvailable() = true, want false")
	}
}

func TestAlbumCover(t *testing.T) {
	emu, _ := newTestSession(t, emulator.WithLoadDelay(1))
	h := emu.AddAlbum("Hunky Dory", 0, 1971, AlbumTypeAlbum, true)
	emu.SetLoaded(uintptr(h), true)

	a := NewAlbum(emu, h)
	defer a.Release()

	img, err := a.Cover(ImageSizeNormal)
	if err != nil {
		t.Fatalf("Cover: %v", err)
	}
	defer img.Release()

	if img.IsLoaded() {
		t.Fatal("image loaded before events were processed")
	}
	if _, err := img.Load(time.Second); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if img.Error() != ErrorOK {
		t.Errorf("Error() = %v, want OK", img.Error())
	}
	if img.Format() != ImageFormatPNG {
		t.Errorf("Format() = %v, want PNG", img.Format())
	}
	if !bytes.HasPrefix(img.Data(), []byte("\x89PNG")) {
		t.Errorf("Data() does not start with the PNG signature")
	}
	if !bytes.Equal(img.ID(), a.CoverID(ImageSizeNormal)) {
		t.Errorf("ID() = %x, want %x", img.ID(), a.CoverID(ImageSizeNormal))
	}
	if got := emu.RefCount(uintptr(img.Handle())); got != 1 {
		t.Errorf("image refcount = %d, want 1", got)
	}
}

func TestCreateImageUnknownID(t *testing.T) {
	emu, s := newTestSession(t)

	tests := []struct {
		name string
		id   []byte
		want ErrorType
	}{
		{"short id", []byte{1, 2, 3}, ErrorInvalidIndata},
		{"unknown id", bytes.Repeat([]byte{0xab}, 20), ErrorOtherPermanent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := s.CreateImage(tt.id)
			if err != nil {
				t.Fatalf("CreateImage: %v", err)
			}
			defer img.Release()
			if _, err := img.Load(time.Second); err != nil {
				t.Fatalf("Load: %v", err)
			}
			if img.Error() != tt.want {
				t.Errorf("Error() = %v, want %v", img.Error(), tt.want)
			}
			if img.Data() != nil {
				t.Error("Data() should be nil for a failed image")
			}
			if img.Format() != ImageFormatUnknown {
				t.Errorf("Format() = %v, want unknown", img.Format())
			}
		})
	}

	h := native.ImageHandle(0)
	if NewImage(emu, h) != nil {
		t.Error("NewImage(0) should be nil")
	}
}

func TestAlbumLink(t *testing.T) {
	emu, _ := newTestSession(t)
	a := NewAlbum(emu, emu.AddAlbum("Dirt", 0, 1992, AlbumTypeAlbum, false))
	defer a.Release()

	l, err := a.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	defer l.Release()
	if l.Type() != LinkTypeAlbum {
		t.Errorf("Type() = %v, want %v", l.Type(), LinkTypeAlbum)
	}
}
