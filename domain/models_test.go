package domain

import "testing"

func TestBrowserState(t *testing.T) {
	s := NewBrowserState()
	if _, ok := s.SelectedTrack(); ok {
		t.Fatal("fresh state has a selected track")
	}

	page := &SearchPage{Tracks: []Track{{Name: "Rooster"}, {Name: "Would?"}}}
	s.SetSearching(true)
	s.SetPage(page)

	got, index, searching := s.GetState()
	if got != page || index != 0 || !searching {
		t.Errorf("GetState() = %p, %d, %v", got, index, searching)
	}

	s.Select(1)
	if tr, ok := s.SelectedTrack(); !ok || tr.Name != "Would?" {
		t.Errorf("SelectedTrack() = %+v, %v", tr, ok)
	}
	s.Select(5)
	if tr, _ := s.SelectedTrack(); tr.Name != "Would?" {
		t.Error("out of range Select changed the selection")
	}

	s.SetPage(&SearchPage{})
	if _, index, _ := s.GetState(); index != -1 {
		t.Errorf("index on empty page = %d, want -1", index)
	}
}

func TestSearchPageSummary(t *testing.T) {
	p := &SearchPage{
		Tracks:      []Track{{}, {}},
		TotalTracks: 8,
		Albums:      []Album{{}},
		TotalAlbums: 4,
	}
	want := "2 of 8 tracks, 1 of 4 albums, 0 of 0 artists, 0 of 0 playlists"
	if got := p.Summary(); got != want {
		t.Errorf("Summary() = %q, want %q", got, want)
	}
	if p.Empty() {
		t.Error("Empty() = true")
	}
	if !(&SearchPage{}).Empty() {
		t.Error("Empty() = false for an empty page")
	}
}
