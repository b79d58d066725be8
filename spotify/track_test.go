package spotify

import (
	"strings"
	"testing"
	"time"

	"github.com/yhkl-dev/gospotify/native/emulator"
)

func TestTrackAccessors(t *testing.T) {
	emu, _ := newTestSession(t)
	bowie := emu.AddArtist("David Bowie", true)
	guest := emu.AddArtist("Mick Ronson", false)
	album := emu.AddAlbum("Hunky Dory", bowie, 1971, AlbumTypeAlbum, true)
	h := emu.AddTrack("Life on Mars?", album, 3*time.Minute+48*time.Second, 80, bowie, guest)

	tr := NewTrack(emu, h)
	defer tr.Release()

	if tr.Error() != ErrorOK {
		t.Errorf("Error() = %v, want OK", tr.Error())
	}
	if tr.Name() != "Life on Mars?" {
		t.Errorf("Name() = %q", tr.Name())
	}
	if tr.Duration() != 228*time.Second {
		t.Errorf("Duration() = %v, want 3m48s", tr.Duration())
	}
	if tr.Popularity() != 80 {
		t.Errorf("Popularity() = %d, want 80", tr.Popularity())
	}

	al := tr.Album()
	if al == nil || al.Handle() != album {
		t.Fatalf("Album() = %v, want handle %#x", al, album)
	}
	al.Release()

	artists := tr.Artists()
	if len(artists) != 2 {
		t.Fatalf("len(Artists()) = %d, want 2", len(artists))
	}
	if artists[0].Name() != "David Bowie" || artists[1].Name() != "Mick Ronson" {
		t.Errorf("Artists() = [%q %q]", artists[0].Name(), artists[1].Name())
	}
	for _, a := range artists {
		a.Release()
	}
	if got := emu.RefCount(uintptr(bowie)); got != 0 {
		t.Errorf("artist refcount after release = %d, want 0", got)
	}
}

func TestTrackUnloaded(t *testing.T) {
	emu, _ := newTestSession(t)
	h := emu.AddTrack("Changes", 0, time.Minute, 10)
	emu.SetLoaded(uintptr(h), false)

	tr := NewTrack(emu, h)
	defer tr.Release()

	if tr.Error() != ErrorIsLoading {
		t.Errorf("Error() = %v, want %v", tr.Error(), ErrorIsLoading)
	}
	if tr.Name() != "" || tr.Duration() != 0 || tr.Album() != nil {
		t.Error("unloaded track returned data")
	}
	if got := tr.Artists(); got == nil || len(got) != 0 {
		t.Errorf("Artists() = %v, want empty", got)
	}
}

func TestTrackError(t *testing.T) {
	emu, _ := newTestSession(t)
	h := emu.AddTrack("Poison", 0, time.Minute, 10)
	emu.SetTrackError(h, ErrorTrackNotPlayable)

	tr := NewTrack(emu, h)
	defer tr.Release()
	if tr.Error() != ErrorTrackNotPlayable {
		t.Errorf("Error() = %v, want %v", tr.Error(), ErrorTrackNotPlayable)
	}
}

func TestTrackLinkAt(t *testing.T) {
	emu, _ := newTestSession(t)
	tr := NewTrack(emu, emu.AddTrack("Rooster", 0, 6*time.Minute, 71))
	defer tr.Release()

	plain, err := tr.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	defer plain.Release()

	at, err := tr.LinkAt(90 * time.Second)
	if err != nil {
		t.Fatalf("LinkAt: %v", err)
	}
	defer at.Release()

	if !strings.HasPrefix(plain.String(), "spotify:track:") || strings.Contains(plain.String(), "#") {
		t.Errorf("Link() = %q", plain.String())
	}
	if at.String() != plain.String()+"#01:30" {
		t.Errorf("LinkAt(90s) = %q, want %q", at.String(), plain.String()+"#01:30")
	}
	if at.Type() != LinkTypeTrack {
		t.Errorf("Type() = %v, want %v", at.Type(), LinkTypeTrack)
	}
}

func TestNewLinkTakesReference(t *testing.T) {
	emu, _ := newTestSession(t)
	tr := NewTrack(emu, emu.AddTrack("Nutshell", 0, 4*time.Minute, 75))
	defer tr.Release()

	owned, err := tr.Link()
	if err != nil {
		t.Fatalf("Link: %v", err)
	}
	h := owned.Handle()

	alias := NewLink(emu, h)
	if got := emu.RefCount(uintptr(h)); got != 2 {
		t.Errorf("refcount with alias = %d, want 2", got)
	}
	owned.Release()
	if alias.String() == "" {
		t.Error("alias lost its link after the owner released")
	}
	alias.Release()
	if emu.IsLive(uintptr(h)) {
		t.Error("link still live after every reference was released")
	}
	if alias.String() != "" {
		t.Errorf("String() after release = %q", alias.String())
	}
}

func TestTrackArtistsSkipsNullHandles(t *testing.T) {
	emu := emulator.New()
	newSessionOn(t, emu, gappyLib{emu})
	bowie := emu.AddArtist("David Bowie", true)
	guest := emu.AddArtist("Mick Ronson", false)
	h := emu.AddTrack("Moonage Daydream", 0, 4*time.Minute+40*time.Second, 70, bowie, guest)

	tr := NewTrack(gappyLib{emu}, h)
	defer tr.Release()

	artists := tr.Artists()
	if len(artists) != 1 || artists[0] == nil {
		t.Fatalf("Artists() = %v, want one artist", artists)
	}
	if artists[0].Name() != "Mick Ronson" {
		t.Errorf("Artists()[0] = %q, want Mick Ronson", artists[0].Name())
	}
	artists[0].Release()
}
