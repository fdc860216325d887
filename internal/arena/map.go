package arena

import (
	"fmt"

	"github.com/talgya/arena-sim/internal/entropy"
	"github.com/talgya/arena-sim/internal/gear"
)

// Map owns the arena's areas and answers every world-state query the
// agents make. All mutation is direct, single-threaded, in place.
type Map struct {
	Areas []*Area
	start *Area
}

// Start returns the cornucopia.
func (m *Map) Start() *Area { return m.start }

// GetArea finds an area by prose name; nil when unknown.
func (m *Map) GetArea(name string) *Area {
	for _, a := range m.Areas {
		if a.Name() == name {
			return a
		}
	}
	return nil
}

// AddPlayer places an occupant at the cornucopia.
func (m *Map) AddPlayer(o Occupant) {
	m.start.Players = append(m.start.Players, o)
	o.SetCurrentArea(m.start)
}

// RemovePlayer drops an occupant from the world (death). The occupant
// must be present in its recorded area; anything else is a corrupted
// roster and the run must halt.
func (m *Map) RemovePlayer(o Occupant) error {
	area := o.CurrentArea()
	if area == nil {
		return fmt.Errorf("remove player %s: no recorded area", o.Name())
	}
	if !area.RemovePlayer(o) {
		return fmt.Errorf("remove player %s: not present %s", o.Name(), area.At())
	}
	return nil
}

// MovePlayer relocates an occupant and returns the destination.
func (m *Map) MovePlayer(o Occupant, dest *Area) *Area {
	if cur := o.CurrentArea(); cur != nil {
		cur.RemovePlayer(o)
	}
	dest.Players = append(dest.Players, o)
	o.SetCurrentArea(dest)
	return dest
}

// Players returns the occupants of an area.
func (m *Map) Players(a *Area) []Occupant { return a.Players }

// PotentialPlayers returns the occupants of an area plus everyone
// already headed there this phase.
func (m *Map) PotentialPlayers(a *Area) []Occupant {
	out := append([]Occupant(nil), a.Players...)
	for _, other := range m.Areas {
		if other == a {
			continue
		}
		for _, p := range other.Players {
			if p.Destination() == a {
				out = append(out, p)
			}
		}
	}
	return out
}

// PlayerCount counts every occupant still on the map.
func (m *Map) PlayerCount() int {
	n := 0
	for _, a := range m.Areas {
		n += len(a.Players)
	}
	return n
}

// Loot returns an area's loot list.
func (m *Map) Loot(a *Area) []gear.Item { return a.Loot }

// AddLoot drops an item into an area.
func (m *Map) AddLoot(item gear.Item, a *Area) {
	a.Loot = append(a.Loot, item)
}

// RemoveLoot takes an item from an area; false when already gone.
func (m *Map) RemoveLoot(item gear.Item, a *Area) bool {
	return a.RemoveLoot(item)
}

// Weapons lists the weapons lying in an area.
func (m *Map) Weapons(a *Area) []*gear.Weapon {
	var out []*gear.Weapon
	for _, it := range a.Loot {
		if w, ok := it.(*gear.Weapon); ok {
			out = append(out, w)
		}
	}
	return out
}

// Bags lists the bags lying in an area.
func (m *Map) Bags(a *Area) []*gear.Bag {
	var out []*gear.Bag
	for _, it := range a.Loot {
		if b, ok := it.(*gear.Bag); ok {
			out = append(out, b)
		}
	}
	return out
}

// HasBags reports whether any bag lies in an area.
func (m *Map) HasBags(a *Area) bool { return len(m.Bags(a)) > 0 }

// PickWeapon removes and returns a random weapon from an area's loot;
// nil when none lies there.
func (m *Map) PickWeapon(rng *entropy.Source, a *Area) *gear.Weapon {
	weapons := m.Weapons(a)
	if len(weapons) == 0 {
		return nil
	}
	w := weapons[rng.Intn(len(weapons))]
	a.RemoveLoot(w)
	return w
}

// PickBag removes and returns a random bag; nil when none lies there.
func (m *Map) PickBag(rng *entropy.Source, a *Area) *gear.Bag {
	bags := m.Bags(a)
	if len(bags) == 0 {
		return nil
	}
	b := bags[rng.Intn(len(bags))]
	a.RemoveLoot(b)
	return b
}

// PickItem removes and returns a random loot item; nil on empty loot.
func (m *Map) PickItem(rng *entropy.Source, a *Area) gear.Item {
	if len(a.Loot) == 0 {
		return nil
	}
	it := a.Loot[rng.Intn(len(a.Loot))]
	a.RemoveLoot(it)
	return it
}

// PickBestItem removes and returns the loot item the estimator values
// most; nil on empty loot.
func (m *Map) PickBestItem(a *Area, estimate func(gear.Item) float64) gear.Item {
	var best gear.Item
	bestValue := 0.0
	for _, it := range a.Loot {
		if v := estimate(it); best == nil || v > bestValue {
			best, bestValue = it, v
		}
	}
	if best != nil {
		a.RemoveLoot(best)
	}
	return best
}

// HasWater reports whether an occupant's area has drinkable water.
func (m *Map) HasWater(o Occupant) bool { return o.CurrentArea().HasWater() }

// ForagePotential returns how much food an occupant's area can yield.
func (m *Map) ForagePotential(o Occupant) float64 {
	return o.CurrentArea().ForagePotential
}

// GetForage rolls for edible food in an occupant's area; nil when the
// land yields nothing this time.
func (m *Map) GetForage(rng *entropy.Source, o Occupant) *gear.Food {
	a := o.CurrentArea()
	if len(a.Foods) == 0 || !rng.Chance(a.ForagePotential) {
		return nil
	}
	name := a.Foods[rng.Intn(len(a.Foods))]
	food := gear.NewFood(name, rng.Float()*a.ForagePotential)
	// Wild picks are sometimes poisonous.
	if (name == "berries" || name == "fruits" || name == "mushrooms") && rng.Chance(0.2) {
		food.Poison = gear.NewPoison(name+" poison", 3+rng.Intn(7), rng.Float()/10+0.05)
	}
	return food
}

// Traps returns an area's armed traps.
func (m *Map) Traps(a *Area) []Trap { return a.Traps }

// AddTrap arms a trap in an area.
func (m *Map) AddTrap(t Trap, a *Area) { a.Traps = append(a.Traps, t) }

// RemoveTrap unarms a trap; false when already gone.
func (m *Map) RemoveTrap(t Trap, a *Area) bool { return a.RemoveTrap(t) }

// Ambushers returns the occupants lying in wait in an area.
func (m *Map) Ambushers(a *Area) []Occupant { return a.Ambushers }

// AddAmbusher marks an occupant as lying in wait in its area.
func (m *Map) AddAmbusher(o Occupant) {
	a := o.CurrentArea()
	for _, p := range a.Ambushers {
		if p == o {
			return
		}
	}
	a.Ambushers = append(a.Ambushers, o)
}

// RemoveAmbusher clears an occupant's ambush marker.
func (m *Map) RemoveAmbusher(o Occupant) {
	o.CurrentArea().RemoveAmbusher(o)
}
