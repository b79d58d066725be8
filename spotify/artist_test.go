package spotify

import (
	"strings"
	"testing"
	"time"

	"github.com/yhkl-dev/gospotify/native"
	"github.com/yhkl-dev/gospotify/native/emulator"
)

func TestNewArtistReferenceSymmetry(t *testing.T) {
	emu, _ := newTestSession(t)
	h := emu.AddArtist("Alice Cooper", false)

	a := NewArtist(emu, h)
	if got := emu.RefCount(uintptr(h)); got != 1 {
		t.Fatalf("refcount after wrap = %d, want 1", got)
	}

	alias := NewArtist(emu, h)
	if got := emu.RefCount(uintptr(h)); got != 2 {
		t.Fatalf("refcount with alias = %d, want 2", got)
	}

	a.Release()
	a.Release()
	if got := emu.RefCount(uintptr(h)); got != 1 {
		t.Errorf("refcount after double release = %d, want 1", got)
	}
	alias.Release()
	if got := emu.RefCount(uintptr(h)); got != 0 {
		t.Errorf("refcount after releasing both = %d, want 0", got)
	}
}

func TestNewArtistNullHandle(t *testing.T) {
	emu, _ := newTestSession(t)
	if a := NewArtist(emu, 0); a != nil {
		t.Errorf("NewArtist(0) = %v, want nil", a)
	}
}

func TestArtistReleasedByGC(t *testing.T) {
	emu, _ := newTestSession(t)
	h := emu.AddArtist("Alice Coltrane", true)

	func() {
		a := NewArtist(emu, h)
		if a.Name() != "Alice Coltrane" {
			t.Errorf("Name() = %q", a.Name())
		}
	}()

	if !eventually(t, func() bool { return emu.RefCount(uintptr(h)) == 0 }) {
		t.Errorf("refcount = %d after GC, want 0", emu.RefCount(uintptr(h)))
	}
}

func TestArtistAccessors(t *testing.T) {
	emu, _ := newTestSession(t)
	withPortrait := emu.AddArtist("Alice in Chains", true)
	without := emu.AddArtist("Alice Cooper", false)

	tests := []struct {
		name         string
		loaded       bool
		h            uintptr
		wantName     string
		wantPortrait bool
	}{
		{"loaded with portrait", true, uintptr(withPortrait), "Alice in Chains", true},
		{"loaded without portrait", true, uintptr(without), "Alice Cooper", false},
		{"unloaded", false, uintptr(withPortrait), "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			emu.SetLoaded(tt.h, tt.loaded)
			a := NewArtist(emu, native.ArtistHandle(tt.h))
			defer a.Release()

			if a.IsLoaded() != tt.loaded {
				t.Errorf("IsLoaded() = %v, want %v", a.IsLoaded(), tt.loaded)
			}
			if got := a.Name(); got != tt.wantName {
				t.Errorf("Name() = %q, want %q", got, tt.wantName)
			}
			id := a.PortraitID(ImageSizeNormal)
			if tt.wantPortrait && len(id) != 20 {
				t.Errorf("PortraitID() length = %d, want 20", len(id))
			}
			if !tt.wantPortrait && id != nil {
				t.Errorf("PortraitID() = %x, want nil", id)
			}
		})
	}
}

func TestArtistPortraitSizesDiffer(t *testing.T) {
	emu, _ := newTestSession(t)
	a := NewArtist(emu, emu.AddArtist("David Bowie", true))
	defer a.Release()

	normal := a.PortraitID(ImageSizeNormal)
	large := a.PortraitID(ImageSizeLarge)
	if string(normal) == string(large) {
		t.Errorf("normal and large portrait ids are equal: %x", normal)
	}
}

func TestArtistAfterRelease(t *testing.T) {
	emu, _ := newTestSession(t)
	a := NewArtist(emu, emu.AddArtist("David Bowie", true))
	a.Release()

	if a.IsLoaded() {
		t.Error("released artist reports loaded")
	}
	if a.Name() != "" {
		t.Errorf("Name() = %q after release", a.Name())
	}
	if _, err := a.Link(); err != ErrReleased {
		t.Errorf("Link() error = %v, want ErrReleased", err)
	}
}

func TestArtistLoad(t *testing.T) {
	emu, _ := newTestSession(t, emulator.WithLoadDelay(2))
	a := NewArtist(emu, emu.AddArtist("Alice Cooper", false))
	defer a.Release()

	if a.IsLoaded() {
		t.Fatal("artist loaded before any events were processed")
	}
	got, err := a.Load(time.Second)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != a {
		t.Error("Load returned a different artist")
	}
	if got.Name() != "Alice Cooper" {
		t.Errorf("Name() = %q", got.Name())
	}
}

func TestArtistLink(t *testing.T) {
	emu, _ := newTestSession(t)
	a := NewArtist(emu, emu.AddArtist("Alice Cooper", false))
	defer a.Release()

	l, err := a.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	defer l.Release()

	if !strings.HasPrefix(l.String(), "spotify:artist:") {
		t.Errorf("String() = %q", l.String())
	}
	if l.Type() != LinkTypeArtist {
		t.Errorf("Type() = %v, want %v", l.Type(), LinkTypeArtist)
	}
	if got := emu.RefCount(uintptr(l.Handle())); got != 1 {
		t.Errorf("link refcount = %d, want 1", got)
	}
}
