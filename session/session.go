// Package session persists the inspector's state between runs: active
// tab, last input, the ordered watch list, window geometry, and the
// auto-refresh settings. The core engine neither reads nor writes this
// format; the CLI reconstructs a watch list from it at startup and
// stores one back on exit.
package session

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"

	"github.com/FrancisEgan/turtledebug/pkg"
	"github.com/FrancisEgan/turtledebug/watch"
)

// Tab identifiers persisted in ActiveTab.
const (
	TabInspect = "inspect"
	TabWatch   = "watch"
)

// WatchItem is one persisted watch entry.
type WatchItem struct {
	Name      string `yaml:"name"`
	Collapsed bool   `yaml:"collapsed"`
}

// Window is the persisted window geometry.
type Window struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Session is the flat persisted record.
type Session struct {
	ActiveTab      string      `yaml:"active_tab"`
	LastInput      string      `yaml:"last_input"`
	Watch          []WatchItem `yaml:"watch"`
	Window         Window      `yaml:"window"`
	AutoRefresh    bool        `yaml:"auto_refresh"`
	RefreshSeconds float64     `yaml:"refresh_seconds"`
}

// Default returns the session used when no file exists yet.
func Default() Session {
	return Session{
		ActiveTab:      TabInspect,
		Window:         Window{Width: 100, Height: 30},
		AutoRefresh:    true,
		RefreshSeconds: 2,
	}
}

// Interval returns the refresh interval, falling back to the default
// when the persisted value is zero or negative.
func (s Session) Interval() time.Duration {
	if s.RefreshSeconds <= 0 {
		return time.Duration(Default().RefreshSeconds * float64(time.Second))
	}

	return time.Duration(s.RefreshSeconds * float64(time.Second))
}

// WatchList reconstructs the ordered watch list from the record.
func (s Session) WatchList() *watch.List {
	entries := make([]watch.Entry, 0, len(s.Watch))
	for _, item := range s.Watch {
		entries = append(entries, watch.Entry{
			Name:      item.Name,
			Collapsed: item.Collapsed,
		})
	}

	return watch.NewList(entries...)
}

// SetWatchList stores the list back into the record.
func (s *Session) SetWatchList(l *watch.List) {
	items := make([]WatchItem, 0, l.Len())
	for _, e := range l.Entries() {
		items = append(items, WatchItem{
			Name:      e.Name,
			Collapsed: e.Collapsed,
		})
	}

	s.Watch = items
}

// Load reads the session file at path. A missing file is not an error:
// it yields [Default].
func Load(path string) (Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}

		return Default(), pkg.ErrReadSession.Wrap(err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), pkg.ErrReadSession.Wrap(err)
	}

	return s, nil
}

// Save writes the record to path atomically (temp file plus rename),
// creating parent directories as needed.
func (s Session) Save(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return pkg.ErrWriteSession.Wrap(err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return pkg.ErrWriteSession.Wrap(err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return pkg.ErrWriteSession.Wrap(err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return pkg.ErrWriteSession.Wrap(err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return pkg.ErrWriteSession.Wrap(err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())

		return pkg.ErrWriteSession.Wrap(err)
	}

	return nil
}
