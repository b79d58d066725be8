package spotify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yhkl-dev/gospotify/native/emulator"
)

type fakeLoadable struct {
	loaded bool
}

func (f *fakeLoadable) IsLoaded() bool { return f.loaded }

func TestLoadReturnsImmediatelyWhenLoaded(t *testing.T) {
	SetSession(nil)
	if err := Load(&fakeLoadable{loaded: true}, time.Millisecond); err != nil {
		t.Errorf("Load: %v", err)
	}
}

func TestLoadTimeout(t *testing.T) {
	emu, _ := newTestSession(t, emulator.WithLoadDelay(1_000_000))
	a := NewArtist(emu, emu.AddArtist("Alice Cooper", false))
	defer a.Release()

	start := time.Now()
	_, err := a.Load(30 * time.Millisecond)
	if err == nil {
		t.Fatal("Load succeeded for an artist that never loads")
	}
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("error = %v, want ErrTimeout", err)
	}
	var terr *TimeoutError
	if !errors.As(err, &terr) || terr.Timeout != 30*time.Millisecond {
		t.Errorf("error = %#v, want *TimeoutError{30ms}", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Errorf("Load gave up after %v", elapsed)
	}
}

func TestLoadZeroTimeoutUsesDefault(t *testing.T) {
	emu, _ := newTestSession(t, emulator.WithLoadDelay(1_000_000))
	SetDefaultLoadTimeout(20 * time.Millisecond)
	defer SetDefaultLoadTimeout(0)

	a := NewArtist(emu, emu.AddArtist("Alice Cooper", false))
	defer a.Release()

	_, err := a.Load(0)
	var terr *TimeoutError
	if !errors.As(err, &terr) || terr.Timeout != 20*time.Millisecond {
		t.Errorf("error = %v, want timeout after 20ms", err)
	}
}

func TestLoadContextCanceled(t *testing.T) {
	SetSession(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := LoadContext(ctx, &fakeLoadable{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestLoadAll(t *testing.T) {
	emu, _ := newTestSession(t, emulator.WithLoadDelay(2))
	names := []string{"Alice in Chains", "Alice Cooper", "Alice Coltrane", "David Bowie"}
	items := make([]Loadable, 0, len(names))
	for _, name := range names {
		a := NewArtist(emu, emu.AddArtist(name, false))
		defer a.Release()
		items = append(items, a)
	}

	if err := LoadAll(context.Background(), time.Second, items...); err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	for i, item := range items {
		if !item.IsLoaded() {
			t.Errorf("item %d not loaded", i)
		}
	}
}

func TestLoadAllReportsTimeouts(t *testing.T) {
	SetSession(nil)
	err := LoadAll(context.Background(), 10*time.Millisecond, &fakeLoadable{loaded: true}, &fakeLoadable{})
	if !errors.Is(err, ErrTimeout) {
		t.Errorf("error = %v, want ErrTimeout", err)
	}
}
