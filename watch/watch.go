// Package watch maintains the ordered watch list and drives its refresh
// cycle. The list owns no timer: refresh is invoked externally, on an
// interval or on explicit request.
package watch

import "github.com/FrancisEgan/turtledebug/inspect"

// NotFound is the body line shown for an entry whose path failed to
// resolve. Resolution failures are never fatal and never retried early;
// the next refresh simply tries again.
const NotFound = "nil (not found)"

// Entry is one watched path expression.
type Entry struct {
	Name      string
	Collapsed bool
}

// List is an ordered watch list. Insertion order is display order, and
// names are unique within the list.
type List struct {
	entries []Entry
}

// NewList creates a list from existing entries, dropping duplicates by
// name (first occurrence wins).
func NewList(entries ...Entry) *List {
	l := &List{}

	for _, e := range entries {
		if l.indexOf(e.Name) < 0 {
			l.entries = append(l.entries, e)
		}
	}

	return l
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// At returns the entry at position i.
func (l *List) At(i int) Entry { return l.entries[i] }

// Entries returns a copy of the entries in display order.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)

	return out
}

// Add appends a new entry. Adding a name already present is a no-op;
// the return value reports whether the list changed.
func (l *List) Add(name string) bool {
	if l.indexOf(name) >= 0 {
		return false
	}

	l.entries = append(l.entries, Entry{Name: name})

	return true
}

// RemoveAt deletes the entry at position i, shifting later entries down
// by one. Out-of-range positions are ignored.
func (l *List) RemoveAt(i int) bool {
	if i < 0 || i >= len(l.entries) {
		return false
	}

	l.entries = append(l.entries[:i], l.entries[i+1:]...)

	return true
}

// ToggleAt flips the collapsed state of the entry at position i.
func (l *List) ToggleAt(i int) bool {
	if i < 0 || i >= len(l.entries) {
		return false
	}

	l.entries[i].Collapsed = !l.entries[i].Collapsed

	return true
}

func (l *List) indexOf(name string) int {
	for i, e := range l.entries {
		if e.Name == name {
			return i
		}
	}

	return -1
}

// Result is the refreshed rendering of one entry. Collapsed entries
// carry no body; the display layer still shows their header.
type Result struct {
	Name      string
	Found     bool
	Collapsed bool
	Decorated []string
	Plain     []string
}

// Refresh resolves and renders every entry in list order. Each entry is
// resolved fresh (no caching across refreshes) and rendered in both
// variants at a starting depth of 1. A failed resolution yields the
// [NotFound] body and the loop continues with the remaining entries.
// Collapsed entries skip resolution entirely.
func (l *List) Refresh(env inspect.Env, pol inspect.Policy) []Result {
	results := make([]Result, 0, len(l.entries))

	for _, e := range l.entries {
		r := Result{Name: e.Name, Collapsed: e.Collapsed}

		if e.Collapsed {
			results = append(results, r)

			continue
		}

		v, found := inspect.Resolve(env, e.Name)

		r.Found = found
		if !found {
			r.Decorated = []string{NotFound}
			r.Plain = []string{NotFound}
		} else {
			r.Decorated = pol.Decorated(v, 1)
			r.Plain = pol.Plain(v, 1)
		}

		results = append(results, r)
	}

	return results
}
