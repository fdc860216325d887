// Package events implements the arena hazards: area-wide damage events
// that flush or kill the occupants of the most crowded areas, and the
// sponsor drops that restock the cornucopia.
package events

import (
	"sort"

	"github.com/dustin/go-humanize/english"

	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/gear"
	"github.com/talgya/arena-sim/internal/player"
)

// Event is anything the game loop can unleash on the arena.
type Event interface {
	Name() string
	Trigger(w *player.World)
}

// DamageEvent is a hazard striking one or more areas. Perceptive agents
// are warned and run early; the rest scramble or burn.
type DamageEvent struct {
	name       string
	verb       string // what the hazard does to a caught victim
	weapon     string // wound table to roll on
	stealth    float64
	minDamage  float64
	maxDamage  float64
	wantsWater bool
	deadly     bool // trapped victims die outright
	removeLoot bool

	areas []*arena.Area
}

// NewWildFire burns the driest crowded areas and their loot.
func NewWildFire() *DamageEvent {
	return &DamageEvent{
		name: "wildfire", verb: "burns to death", weapon: gear.FireWeapon,
		stealth: 0.5, minDamage: 0.2, maxDamage: 0.5, removeLoot: true,
	}
}

// NewFlood drowns the water areas.
func NewFlood() *DamageEvent {
	return &DamageEvent{
		name: "flood", verb: "drowns", weapon: gear.DefaultWeapon,
		stealth: 0.6, minDamage: 0.3, maxDamage: 0.6,
		wantsWater: true, deadly: true, removeLoot: true,
	}
}

// NewAcidGas chokes low ground; there is no riding it out.
func NewAcidGas() *DamageEvent {
	return &DamageEvent{
		name: "acid cloud", verb: "chokes to death", weapon: gear.DefaultWeapon,
		stealth: 0.7, minDamage: 0.3, maxDamage: 0.6, deadly: true,
	}
}

// NewWasps send a swarm through the trees.
func NewWasps() *DamageEvent {
	return &DamageEvent{
		name: "wasp swarm", verb: "is stung to death", weapon: gear.DefaultWeapon,
		stealth: 0.4, minDamage: 0.1, maxDamage: 0.4,
	}
}

// NewBeasts release the mutts.
func NewBeasts() *DamageEvent {
	return &DamageEvent{
		name: "pack of beasts", verb: "is torn apart", weapon: gear.DefaultWeapon,
		stealth: 0.3, minDamage: 0.2, maxDamage: 0.5,
	}
}

// Name identifies the hazard in narration and logs.
func (e *DamageEvent) Name() string { return e.name }

// Areas exposes the chosen target areas after Trigger.
func (e *DamageEvent) Areas() []*arena.Area { return e.areas }

// pickAreas targets the most crowded areas matching the hazard's water
// affinity, at most playerCount/4 of them and always at least one.
func (e *DamageEvent) pickAreas(w *player.World) []*arena.Area {
	var candidates []*arena.Area
	for _, a := range w.Map.Areas {
		if a.HasWater() == e.wantsWater {
			candidates = append(candidates, a)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return len(candidates[i].Players) > len(candidates[j].Players)
	})
	limit := w.PlayerCount() / 4
	if limit < 1 {
		limit = 1
	}
	if len(candidates) > limit {
		candidates = candidates[:limit]
	}
	return candidates
}

// Trigger unleashes the hazard: warn the perceptive, chase out the
// lucky, hurt or kill the rest, and close the areas for the phase.
func (e *DamageEvent) Trigger(w *player.World) {
	e.areas = e.pickAreas(w)
	for _, a := range e.areas {
		w.Forbidden = append(w.Forbidden, a)
	}
	for _, a := range e.areas {
		w.Log.New([]string{"a", e.name, "sweeps through", a.Name() + "!"})
		w.Log.Cut()
		for _, p := range append([]*player.Player{}, player.PlayersIn(a)...) {
			e.strike(w, p)
			w.Log.Cut()
		}
		if e.removeLoot {
			a.Loot = nil
		}
	}
	w.Log.Tell()
}

func (e *DamageEvent) strike(w *player.World, p *player.Player) {
	p.WakeUp()
	p.Reveal()
	if w.Rand.Float()*p.Wisdom > e.stealth {
		w.Log.Add([]string{p.Name(), "sees the", e.name, "coming and runs"})
		p.Flee(w, false)
		return
	}
	damage := e.minDamage + w.Rand.Float()*(e.maxDamage-e.minDamage)
	if p.CanFlee(w) {
		if w.Rand.Chance(0.5) {
			w.Log.Add([]string{p.Name(), "barely escapes the", e.name})
		} else {
			w.Log.Add([]string{p.Name(), "is caught by the", e.name})
			if p.BeDamaged(w, damage, e.weapon, e.verb) {
				return
			}
		}
		p.Flee(w, true)
		return
	}
	if e.deadly {
		p.DramaticDeath(w, e.verb)
		return
	}
	p.AddStatus(player.StatusTrapped)
	w.Log.Add([]string{p.Name(), "is cornered by the", e.name})
	p.BeDamaged(w, damage, e.weapon, e.verb)
}

// DropEvent parachutes sponsor bags onto the cornucopia.
type DropEvent struct{}

// NewDropEvent creates a sponsor drop.
func NewDropEvent() *DropEvent { return &DropEvent{} }

// Name identifies the event.
func (e *DropEvent) Name() string { return "sponsor drop" }

// Trigger adds between one and four bags to the start area, fewer than
// the alive player count, and reports the count in a single line.
func (e *DropEvent) Trigger(w *player.World) {
	count := 1 + w.Rand.Intn(4)
	if limit := w.PlayerCount() - 1; count > limit {
		count = limit
	}
	if count < 1 {
		count = 1
	}
	start := w.Map.Start()
	for i := 0; i < count; i++ {
		content := []gear.Item{
			gear.NewFood("rations", w.Rand.Float()/2+0.5),
			gear.NewBottle(1),
		}
		if w.Rand.Chance(0.4) {
			content = append(content, gear.NewObject("bandages"))
		}
		if w.Rand.Chance(0.3) {
			content = append(content, gear.NewObject("antidote"))
		}
		w.Map.AddLoot(gear.NewBag(content), start)
	}
	w.Log.New([]string{
		english.Plural(count, "sponsor bag", ""),
		"drop down on", arena.StartAreaName,
	})
	w.Log.Tell()
}
