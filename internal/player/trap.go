package player

import (
	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/gear"
)

// TrapKind distinguishes the buildable traps.
type TrapKind int

const (
	// StakeTrap is a staked pit: needs rope, a cutting tool and woods
	// to build in. Wounds like a trident and holds the survivor.
	StakeTrap TrapKind = iota
	// ExplosiveTrap is a tripwired charge: needs an explosive. Burns
	// hard but does not hold.
	ExplosiveTrap
)

// Trap is a placed snare waiting for an unwary visitor. It stays armed
// until it fires once; agents who spot it remember it.
type Trap struct {
	Kind    TrapKind
	Owner   *Player
	Stealth float64

	area    *arena.Area
	knownTo map[*Player]bool
}

// LongName names the trap for narration.
func (t *Trap) LongName() string {
	if t.Kind == ExplosiveTrap {
		return "an explosive trap"
	}
	return "a stake pit"
}

// OwnerName identifies the builder.
func (t *Trap) OwnerName() string { return t.Owner.Name() }

func woodedArea(a *arena.Area) bool {
	return a.Terrain == "forest" || a.Terrain == "jungle"
}

// CanBuildStakeTrap reports whether a stake pit can be dug here: rope,
// a cutting tool, and tree cover for the stakes.
func (p *Player) CanBuildStakeTrap() bool {
	return p.HasItem("rope") && p.HasCraftingTool() && woodedArea(p.area)
}

// CanBuildExplosiveTrap reports whether a charge can be rigged.
func (p *Player) CanBuildExplosiveTrap() bool {
	return p.HasItem("explosive")
}

// CanBuildTrap reports whether any trap is buildable right now.
func (p *Player) CanBuildTrap() bool {
	return p.CanBuildStakeTrap() || p.CanBuildExplosiveTrap()
}

// BuildAnyTrap builds the nastiest trap the kit allows and arms it in
// the current area. Ingredients are spent.
func (p *Player) BuildAnyTrap(w *World) {
	var trap *Trap
	switch {
	case p.CanBuildStakeTrap():
		p.consumeObject("rope")
		trap = &Trap{Kind: StakeTrap, Owner: p}
	case p.CanBuildExplosiveTrap():
		p.consumeObject("explosive")
		trap = &Trap{Kind: ExplosiveTrap, Owner: p}
	default:
		w.Log.Add([]string{p.name, "looks for trap materials", p.area.At()})
		return
	}
	trap.Stealth = w.Rand.Float()/2 + 0.3
	trap.area = p.area
	trap.knownTo = map[*Player]bool{p: true}
	w.Map.AddTrap(trap, p.area)
	w.Log.Add([]string{p.name, "builds", trap.LongName(), p.area.At()})
}

// Check rolls whether an arriving player springs the trap. A perceptive
// visitor spots it instead and remembers it from then on.
func (t *Trap) Check(w *World, victim *Player) bool {
	if t.knownTo[victim] {
		return false
	}
	if w.Rand.Float()*victim.Wisdom > t.Stealth {
		if t.knownTo == nil {
			t.knownTo = map[*Player]bool{}
		}
		t.knownTo[victim] = true
		w.Log.Add([]string{victim.Name(), "spots", t.LongName(), t.area.At()})
		return false
	}
	return true
}

// Apply fires the trap on its victim. The trap is spent either way; a
// stake pit holds whoever survives it.
func (t *Trap) Apply(w *World, victim *Player) {
	w.Map.RemoveTrap(t, t.area)
	base := 0.1 + w.Rand.Float()*0.15
	if t.Kind == ExplosiveTrap {
		w.Log.New([]string{victim.Name(), "sets off", t.LongName(), t.area.At()})
		victim.BeDamaged(w, base*5, gear.FireWeapon, "is blown apart")
		return
	}
	w.Log.New([]string{victim.Name(), "falls into", t.LongName(), t.area.At()})
	if victim.BeDamaged(w, base*2, gear.Trident, "is impaled on the stakes") {
		return
	}
	victim.AddStatus(StatusTrapped)
	victim.Reveal()
}
