package spotify

import (
	"runtime"
	"testing"
	"time"

	"github.com/yhkl-dev/gospotify/native"
	"github.com/yhkl-dev/gospotify/native/emulator"
)

// newTestSession makes a session on a fresh emulator the active one.
func newTestSession(t *testing.T, opts ...emulator.Option) (*emulator.Emulator, *Session) {
	t.Helper()
	emu := emulator.New(opts...)
	return emu, newSessionOn(t, emu, emu)
}

// newSessionOn makes a session on lib the active one. lib is emu itself or a
// wrapper around it; emu is checked for faults when the test ends.
func newSessionOn(t *testing.T, emu *emulator.Emulator, lib native.Library) *Session {
	t.Helper()
	s, err := NewSession(lib, SessionConfig{UserAgent: "gospotify-test"})
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	SetSession(s)
	SetPollInterval(time.Millisecond)
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
		SetPollInterval(0)
		if faults := emu.Faults(); len(faults) > 0 {
			t.Errorf("emulator faults: %v", faults)
		}
	})
	return s
}

// instantLib completes every search before SearchCreate returns, the way a
// native library answering from its cache may.
type instantLib struct {
	*emulator.Emulator
}

func (l instantLib) SearchCreate(session native.SessionHandle, req native.SearchRequest, cb native.SearchCompleteFunc, userdata uintptr) native.SearchHandle {
	h := l.Emulator.SearchCreate(session, req, cb, userdata)
	if h != 0 {
		l.CompleteSearch(h)
	}
	return h
}

// gappyLib reports a null handle for the first item of every search list
// and the first artist of every track.
type gappyLib struct {
	*emulator.Emulator
}

func (l gappyLib) SearchTrack(h native.SearchHandle, index int) native.TrackHandle {
	if index == 0 {
		return 0
	}
	return l.Emulator.SearchTrack(h, index)
}

func (l gappyLib) SearchAlbum(h native.SearchHandle, index int) native.AlbumHandle {
	if index == 0 {
		return 0
	}
	return l.Emulator.SearchAlbum(h, index)
}

func (l gappyLib) SearchArtist(h native.SearchHandle, index int) native.ArtistHandle {
	if index == 0 {
		return 0
	}
	return l.Emulator.SearchArtist(h, index)
}

func (l gappyLib) TrackArtist(h native.TrackHandle, index int) native.ArtistHandle {
	if index == 0 {
		return 0
	}
	return l.Emulator.TrackArtist(h, index)
}

// eventually runs the GC until cond holds or two seconds pass.
func eventually(t *testing.T, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		runtime.GC()
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return false
}
