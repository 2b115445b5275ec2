package state

import (
	"slices"
	"strings"
	"sync"
)

// Unavailable is the sentinel for string fields the producer has not learned yet.
const Unavailable = "unavailable"

// ZeroLoc is the location reported before the first /loc.
var ZeroLoc = [3]string{"0.00", "0.00", "0.00"}

// Snapshot is the application state the display reads.
type Snapshot struct {
	Char      string    `toml:"char"`
	Chars     []string  `toml:"chars"`
	Server    string    `toml:"server"`
	Guild     string    `toml:"guild"`
	Class     string    `toml:"class"`
	Level     string    `toml:"level"`
	Zone      string    `toml:"zone"`
	Direction string    `toml:"direction"`
	Loc       [3]string `toml:"loc"`
	Leader    string    `toml:"leader"`

	Group      bool `toml:"group"`
	Raid       bool `toml:"raid"`
	AFK        bool `toml:"afk"`
	Debug      bool `toml:"debug"`
	Mute       bool `toml:"mute"`
	Bind       bool `toml:"bind"`
	Encumbered bool `toml:"encumbered"`

	Version string `toml:"-"`
}

// Default returns the state shown before the producer reports anything.
func Default() Snapshot {
	return Snapshot{
		Char:      Unavailable,
		Server:    Unavailable,
		Guild:     Unavailable,
		Class:     Unavailable,
		Level:     Unavailable,
		Zone:      Unavailable,
		Direction: Unavailable,
		Loc:       ZeroLoc,
		Leader:    Unavailable,
	}
}

// Available reports whether v carries a real value.
func Available(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != Unavailable
}

// HasLoc reports whether the location differs from the zero triple.
func (s Snapshot) HasLoc() bool {
	return s.Loc != ZeroLoc && s.Loc != [3]string{}
}

// Context returns the play context label. AFK wins over raid, raid over group.
func (s Snapshot) Context() string {
	switch {
	case s.AFK:
		return "AFK"
	case s.Raid:
		return "Raid"
	case s.Group:
		return "Group"
	default:
		return "Solo"
	}
}

// Store coordinates concurrent access to the snapshot. The producer writes
// through Update; the display reads copies through Snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
	init     bool
}

// NewStore returns a store seeded with Default and the given version.
func NewStore(version string) *Store {
	s := &Store{}
	snap := Default()
	snap.Version = version
	s.snapshot = snap
	s.init = true
	return s
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.init {
		return Default()
	}
	snap := s.snapshot
	snap.Chars = slices.Clone(s.snapshot.Chars)
	return snap
}

// Update applies fn to the stored state under the write lock. The version
// is owned by the store and survives fn.
func (s *Store) Update(fn func(*Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.init {
		s.snapshot = Default()
		s.init = true
	}
	version := s.snapshot.Version
	fn(&s.snapshot)
	s.snapshot.Chars = slices.Clone(s.snapshot.Chars)
	s.snapshot.Version = version
}

// Replace swaps in a freshly loaded state, keeping the version.
func (s *Store) Replace(next Snapshot) {
	s.Update(func(cur *Snapshot) { *cur = next })
}

// SetCharacter makes name the active character.
func (s *Store) SetCharacter(name string) {
	s.Update(func(cur *Snapshot) { cur.Char = name })
}

// SelectCharacter makes the roster entry at index the active character and
// returns the index actually used. The index is clamped to the roster; with
// an empty roster nothing changes and 0 is returned.
func (s *Store) SelectCharacter(index int) int {
	var used int
	s.Update(func(cur *Snapshot) {
		if len(cur.Chars) == 0 {
			used = 0
			return
		}
		used = ClampIndex(index, len(cur.Chars))
		cur.Char = cur.Chars[used]
	})
	return used
}

// ClampIndex pins index into [0, n). It returns 0 when n is zero.
func ClampIndex(index, n int) int {
	if n <= 0 || index < 0 {
		return 0
	}
	if index >= n {
		return n - 1
	}
	return index
}
