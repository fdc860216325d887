// Package player implements the agents: physiology, kit, combat
// behavior, the utility-based strategy selector, and the group
// coordination layer. One concrete Player type composes the physiology
// and inventory blocks; behavior methods operate over both.
package player

import (
	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/entropy"
	"github.com/talgya/arena-sim/internal/narrate"
)

// Phase is the current slice of the day. The bloodbath is the opening
// phase confined to the cornucopia.
type Phase int

const (
	Bloodbath Phase = iota
	Day
	Night
)

func (p Phase) String() string {
	switch p {
	case Bloodbath:
		return "bloodbath"
	case Night:
		return "night"
	default:
		return "day"
	}
}

// World is the shared context threaded through every agent operation:
// the map, the narration sink, the random source, the phase, and the
// death callback. It replaces process-wide singletons with one explicit
// reference.
type World struct {
	Map   *arena.Map
	Log   *narrate.Narrator
	Rand  *entropy.Source
	Phase Phase

	// Forbidden lists areas struck by an active hazard; nobody may
	// flee into them until the phase ends.
	Forbidden []*arena.Area

	// OnDeath removes the fallen player from turn processing. Set by
	// the game loop before the first turn.
	OnDeath func(*Player)

	// AlivePlayers lists everyone still competing. Set by the game loop.
	AlivePlayers func() []*Player
}

// PlayerCount returns how many competitors are still in the arena.
func (w *World) PlayerCount() int {
	if w.AlivePlayers == nil {
		return w.Map.PlayerCount()
	}
	return len(w.AlivePlayers())
}

// AccessibleAreas returns every area not closed off by a hazard.
func (w *World) AccessibleAreas() []*arena.Area {
	out := make([]*arena.Area, 0, len(w.Map.Areas))
	for _, a := range w.Map.Areas {
		if !w.isForbidden(a) {
			out = append(out, a)
		}
	}
	return out
}

func (w *World) isForbidden(a *arena.Area) bool {
	for _, f := range w.Forbidden {
		if f == a {
			return true
		}
	}
	return false
}
