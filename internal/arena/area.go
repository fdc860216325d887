// Package arena holds the world state the agents compete over: a flat
// set of areas (agents move between any two at a fixed cost), each with
// its occupant roster, loot, traps and ambush markers. The package is
// agent-agnostic: occupants live behind the Occupant interface so the
// map never depends on agent internals.
package arena

import (
	"fmt"

	"github.com/talgya/arena-sim/internal/gear"
)

// Occupant is anyone the map can place in an area.
type Occupant interface {
	Name() string
	CurrentArea() *Area
	SetCurrentArea(*Area)
	Destination() *Area
}

// Trap is an armed device waiting in an area. The concrete behavior
// lives with the agents; the arena only stores and removes them.
type Trap interface {
	LongName() string
	OwnerName() string
}

// StartAreaName is the designated start area, the cornucopia.
const StartAreaName = "the cornucopia"

// Area is one named region of the arena.
type Area struct {
	Terrain string // "forest", "river", ... ("cornucopia" for the start)
	ID      int    // disambiguates duplicate terrain, 1-based

	Foods           []string // what foraging can turn up here
	ForagePotential float64  // 0 when the area grows nothing
	Water           bool

	Players   []Occupant
	Loot      []gear.Item
	Traps     []Trap
	Ambushers []Occupant
}

// Name returns the prose name, e.g. "the forest".
func (a *Area) Name() string {
	if a.Terrain == "cornucopia" {
		return StartAreaName
	}
	if a.ID > 1 {
		return fmt.Sprintf("the %s %d", a.Terrain, a.ID)
	}
	return "the " + a.Terrain
}

// At returns the locative fragment used in narration.
func (a *Area) At() string { return "at " + a.Name() }

// To returns the directional fragment used in narration.
func (a *Area) To() string { return "to " + a.Name() }

// HasWater reports whether agents can drink and fill bottles here.
func (a *Area) HasWater() bool { return a.Water }

// IsStart reports whether this is the cornucopia.
func (a *Area) IsStart() bool { return a.Terrain == "cornucopia" }

func (a *Area) String() string { return a.Name() }

// RemovePlayer drops an occupant from the roster. Returns false when
// the occupant is not present.
func (a *Area) RemovePlayer(o Occupant) bool {
	for i, p := range a.Players {
		if p == o {
			a.Players = append(a.Players[:i], a.Players[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveLoot takes an item out of the area's loot. Returns false when
// the item is already gone — callers treat that as "someone was faster".
func (a *Area) RemoveLoot(item gear.Item) bool {
	for i, it := range a.Loot {
		if it == item {
			a.Loot = append(a.Loot[:i], a.Loot[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTrap unarms a trap after it triggered.
func (a *Area) RemoveTrap(t Trap) bool {
	for i, tr := range a.Traps {
		if tr == t {
			a.Traps = append(a.Traps[:i], a.Traps[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveAmbusher clears an ambush marker.
func (a *Area) RemoveAmbusher(o Occupant) {
	for i, p := range a.Ambushers {
		if p == o {
			a.Ambushers = append(a.Ambushers[:i], a.Ambushers[i+1:]...)
			return
		}
	}
}
