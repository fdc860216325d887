package player

import (
	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/gear"
)

// Courage measures the appetite for a fight: resources plus rage, or
// the pull of valuable loot on the ground, whichever is higher.
func (p *Player) Courage(w *World) float64 {
	courage := p.Health()*p.Energy() + p.Body.rage
	if loot := p.EstimateAll(w.Map.Loot(p.area)); loot > courage {
		courage = loot
	}
	return courage
}

// BaseDamage is the damage scale before the per-hit roll.
func (p *Player) BaseDamage() float64 {
	mods := 1.0
	if p.Has(StatusArmWound) {
		mods -= 0.2
	}
	if p.Has(StatusTrapped) {
		mods *= 0.5
	}
	return mods * p.Kit.weapon.DamageMult / 2
}

// DamageRoll is one swing's damage.
func (p *Player) DamageRoll(w *World) float64 {
	return p.BaseDamage() * w.Rand.Float()
}

// Dangerosity is how threatening the player looks from outside.
// Sleepers barely register.
func (p *Player) Dangerosity(w *World) float64 {
	d := p.Health() * p.BaseDamage()
	if p.Has(StatusSleeping) {
		d *= 0.1
	}
	return d
}

// CanSee rolls perception against the other's stealth; spotting into a
// neighboring area is harder.
func (p *Player) CanSee(w *World, other *Player) bool {
	stealth := other.Stealth
	if other.area != p.area {
		stealth *= 1.5
	}
	return (w.Rand.Float()*0.5+0.5)*p.Wisdom > stealth
}

// EstimateOfDanger sums the dangerosity of everyone the player can
// actually spot in an area.
func (p *Player) EstimateOfDanger(w *World, a *arena.Area) float64 {
	sum := 0.0
	for _, q := range PlayersIn(a) {
		if q == p {
			continue
		}
		if p.CanSee(w, q) {
			sum += q.Dangerosity(w)
		}
	}
	return sum
}

// Flee runs for the least crowded open area. Among equally empty
// candidates a thirsty agent prefers water, then richer loot. Panic may
// also cost the weapon.
func (p *Player) Flee(w *World, panic bool) {
	if panic && w.Rand.Float() > p.Courage(w)+0.5 {
		p.DropWeapon(w)
	}

	var best *arena.Area
	bestCrowd := 0
	bestLoot := 0.0
	bestWater := false
	for _, a := range w.AccessibleAreas() {
		if a == p.area || a.IsStart() {
			continue
		}
		crowd := len(w.Map.PotentialPlayers(a))
		water := p.Has(StatusThirsty) && a.HasWater()
		loot := p.EstimateAll(a.Loot)
		better := best == nil || crowd < bestCrowd
		if !better && crowd == bestCrowd {
			better = (water && !bestWater) || (water == bestWater && loot > bestLoot)
		}
		if better {
			best, bestCrowd, bestWater, bestLoot = a, crowd, water, loot
		}
	}
	if best == nil {
		p.Hide(w)
		return
	}
	p.FleeTo(w, best)
}

// FleeTo runs to a specific area.
func (p *Player) FleeTo(w *World, a *arena.Area) {
	p.AddStatus(StatusFleeing)
	if p.GoTo(w, a) {
		w.Log.Add([]string{p.name, "flees", a.To()})
	}
}

// Pursue chases the action: the most crowded open area that is not here.
func (p *Player) Pursue(w *World) {
	var best *arena.Area
	bestCrowd := -1
	for _, a := range w.AccessibleAreas() {
		if a == p.area {
			continue
		}
		crowd := len(w.Map.PotentialPlayers(a))
		if crowd > bestCrowd {
			best, bestCrowd = a, crowd
		}
	}
	if best == nil {
		p.Hide(w)
		return
	}
	if p.GoTo(w, best) {
		w.Log.Add([]string{p.name, "goes hunting", best.To()})
	}
}

// GoTo moves to an area, paying the move cost. Without the energy for
// it the agent hides instead. Reports whether the move happened.
func (p *Player) GoTo(w *World, a *arena.Area) bool {
	if a == p.area {
		return false
	}
	if p.Energy() < p.MoveCost() {
		p.Hide(w)
		return false
	}
	p.Reveal()
	p.AddEnergy(w, -p.MoveCost())
	p.Busy = true
	p.dest = a
	w.Map.MovePlayer(p, a)
	p.dest = nil
	return true
}

// SetUpAmbush lies in wait at the current area. After two fruitless
// phases the agent gives up and hunts instead.
func (p *Player) SetUpAmbush(w *World) {
	p.Stealth += (w.Rand.Float()/2 + 0.5) * (1 - p.Stealth)
	if !p.Has(StatusAmbush) {
		p.AddStatus(StatusAmbush)
		p.waiting = 0
		w.Map.AddAmbusher(p)
		w.Log.Add([]string{p.name, "sets up an ambush", p.area.At()})
		return
	}
	p.waiting++
	if p.waiting < 2 {
		w.Log.Add([]string{p.name, "keeps waiting in ambush", p.area.At()})
		return
	}
	w.Log.Add([]string{p.name, "gives up on", p.Pronouns.His, "ambush", p.area.At()})
	p.EndAmbush()
	p.Pursue(w)
}

// TriggerAmbush springs on a newcomer walking into the area.
func (p *Player) TriggerAmbush(w *World, prey *Player) {
	p.EndAmbush()
	w.Log.New([]string{p.name, "ambushes", prey.name, p.area.At()})
	DoFight(w, []*Player{p}, []*Player{prey})
}

// Pillage picks through a beaten opponent's drops. Skipped when others
// are still around to contest it, or when the game just ended.
func (p *Player) Pillage(w *World, stuff []gear.Item) {
	if w.PlayerCount() == 1 {
		return
	}
	if len(p.Enemies(p.area)) > 0 {
		return
	}
	var looted []gear.Item
	for _, item := range stuff {
		if weapon, ok := item.(*gear.Weapon); ok && weapon.DamageMult <= p.Kit.weapon.DamageMult {
			continue
		}
		if !w.Map.RemoveLoot(item, p.area) {
			continue
		}
		looted = append(looted, item)
		if weapon, ok := item.(*gear.Weapon); ok {
			p.GetWeapon(w, weapon)
		} else {
			p.GetItem(item)
		}
	}
	if len(looted) > 0 {
		w.Log.New([]string{p.name, "loots", looted[0].LongName()})
		for _, item := range looted[1:] {
			w.Log.Add([]string{"and", item.LongName()})
		}
	}
}

// PoisonWeapon coats a bladed weapon from a carried vial.
func (p *Player) PoisonWeapon(w *World) {
	if p.Kit.weapon.Poison != nil || !gear.CanCarryPoison(p.Kit.weapon.Name()) {
		return
	}
	for _, item := range p.Equipment() {
		vial, ok := item.(*gear.PoisonVial)
		if !ok {
			continue
		}
		_ = p.RemoveItem(vial)
		p.Kit.weapon.Poison = vial.Poison
		w.Log.Add([]string{p.name, "coats", p.Pronouns.His, p.Kit.weapon.Name(), "with", vial.Poison.LongName})
		return
	}
}

// AttackAtRandom jumps the weakest visible target, or goes hunting when
// nobody can be spotted.
func (p *Player) AttackAtRandom(w *World) {
	var prey *Player
	preyScore := 0.0
	for _, q := range p.Enemies(p.area) {
		if !p.CanSee(w, q) {
			continue
		}
		score := q.Health() * q.BaseDamage()
		if prey == nil || score < preyScore {
			prey, preyScore = q, score
		}
	}
	if prey == nil {
		p.Pursue(w)
		return
	}
	DoFight(w, []*Player{p}, []*Player{prey})
}

// Hit lands (or misses) one swing on the target; reports whether the
// target died. mult scales both the chance to land and the damage.
func (p *Player) Hit(w *World, target *Player, mult float64, verb string) bool {
	if p.Energy() < 0.1 {
		mult /= 2
		p.Body.rage = -1
	} else {
		p.AddEnergy(w, -0.1)
	}

	hitChance := mult
	if mult <= 1 {
		hitChance = 0.6 * mult
	}
	if p.Has(StatusArmWound) {
		hitChance -= 0.2
	}
	if target.Has(StatusTrapped) {
		hitChance += 0.3
	}
	if w.Rand.Float() >= hitChance {
		p.Body.rage -= 0.1
		w.Log.Stock([]string{p.name, "misses", target.name})
		return false
	}

	p.Body.rage += 0.1
	target.WakeUp()
	if poison := p.Kit.weapon.Poison; poison != nil {
		if w.Rand.Chance(0.7) && !target.hasPoison(poison.Name) {
			target.AddPoison(w, poison.Clone())
		}
		poison.Amount--
		if poison.Amount <= 0 {
			p.Kit.weapon.Poison = nil
		}
	}
	w.Log.Stock([]string{p.name, verb, target.name, "with", p.Kit.weapon.LongName()})
	if target.BeDamaged(w, p.DamageRoll(w)*mult, p.Kit.weapon.Name(), "") {
		w.Log.ApplyStock()
		w.Log.New([]string{p.name, "kills", target.name, "with", p.Kit.weapon.LongName()})
		return true
	}
	return false
}

func (p *Player) hasPoison(name string) bool {
	for _, poison := range p.Body.poisons {
		if poison.Name == name {
			return true
		}
	}
	return false
}

// CheckForAmbushAndTraps fires whatever is waiting for the player in
// the area entered; reports whether the player got caught up in it.
func (p *Player) CheckForAmbushAndTraps(w *World) bool {
	for _, t := range w.Map.Traps(p.area) {
		trap, ok := t.(*Trap)
		if !ok || trap.Owner == p {
			continue
		}
		if trap.Check(w, p) {
			trap.Apply(w, p)
			return true
		}
	}
	for _, o := range w.Map.Ambushers(p.area) {
		ambusher, ok := o.(*Player)
		if !ok || ambusher == p || !ambusher.IsAlive() {
			continue
		}
		if ambusher.Relation(p).Allied() {
			continue
		}
		if ambusher.CanSee(w, p) {
			ambusher.TriggerAmbush(w, p)
			return true
		}
	}
	return false
}
