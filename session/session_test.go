package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yml")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Errorf("Load(missing) mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.yml")

	s := Session{
		ActiveTab: TabWatch,
		LastInput: "addon.db.profile",
		Watch: []WatchItem{
			{Name: "addon.db", Collapsed: false},
			{Name: "addon.frames", Collapsed: true},
		},
		Window:         Window{X: 10, Y: 20, Width: 120, Height: 40},
		AutoRefresh:    true,
		RefreshSeconds: 0.5,
	}

	if err := s.Save(path); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if diff := cmp.Diff(s, got); diff != "" {
		t.Errorf("round trip mismatch (-saved +loaded):\n%s", diff)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yml")

	if err := os.WriteFile(path, []byte("{not yaml::"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load(malformed) returned no error")
	}
}

func TestInterval(t *testing.T) {
	s := Session{RefreshSeconds: 0.25}
	if got := s.Interval(); got != 250*time.Millisecond {
		t.Errorf("Interval() = %v, want 250ms", got)
	}

	s.RefreshSeconds = 0
	if got := s.Interval(); got != 2*time.Second {
		t.Errorf("Interval() zero fallback = %v, want 2s", got)
	}
}

func TestWatchListRoundTrip(t *testing.T) {
	s := Session{Watch: []WatchItem{
		{Name: "a"},
		{Name: "b", Collapsed: true},
		{Name: "a"}, // duplicate: dropped on reconstruction
	}}

	l := s.WatchList()
	if l.Len() != 2 {
		t.Fatalf("WatchList().Len() = %d, want 2", l.Len())
	}

	var out Session

	out.SetWatchList(l)

	want := []WatchItem{{Name: "a"}, {Name: "b", Collapsed: true}}
	if diff := cmp.Diff(want, out.Watch); diff != "" {
		t.Errorf("SetWatchList mismatch (-want +got):\n%s", diff)
	}
}
