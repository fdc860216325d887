package player

import (
	"sort"
	"strings"

	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/gear"
)

// Health returns current health clamped at zero.
func (p *Player) Health() float64 {
	if p.Body.health < 0 {
		return 0
	}
	return p.Body.health
}

// MaxHealth returns the healing ceiling. A belly wound stops healing
// entirely, so the ceiling collapses to current health.
func (p *Player) MaxHealth() float64 {
	if p.Has(StatusBellyWound) {
		return p.Health()
	}
	return p.Body.maxHealth
}

// Energy returns current energy clamped at zero.
func (p *Player) Energy() float64 {
	if p.Body.energy < 0 {
		return 0
	}
	return p.Body.energy
}

// Sleepiness returns how much sleep is missing, in [0, 1].
func (p *Player) Sleepiness() float64 { return clamp(1-p.Body.sleep, 0, 1) }

// Hunger returns how much stomach is missing, in [0, 1].
func (p *Player) Hunger() float64 { return clamp(1-p.Body.stomach, 0, 1) }

// Thirst returns how far water dipped below one; the reserve starts at
// two so a fresh agent has a day of slack.
func (p *Player) Thirst() float64 {
	if p.Body.water >= 1 {
		return 0
	}
	return 1 - p.Body.water
}

// IsPoisoned reports whether any poison dose is still active.
func (p *Player) IsPoisoned() bool { return len(p.Body.poisons) > 0 }

// Statuses lists the active status tags, sorted for stable display.
func (p *Player) Statuses() []string {
	var out []string
	for tag := range p.status {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

// Wounds lists the active wound tags, sorted for stable narration.
func (p *Player) Wounds() []string {
	var out []string
	for tag := range p.status {
		if strings.HasSuffix(tag, " wound") {
			out = append(out, tag)
		}
	}
	sort.Strings(out)
	return out
}

// IsWounded reports whether any wound tag is active.
func (p *Player) IsWounded() bool { return len(p.Wounds()) > 0 }

// AddHealth shifts health, capped at MaxHealth. Crossing zero kills.
func (p *Player) AddHealth(w *World, v float64, causeOfDeath string) {
	wasAlive := p.Body.health > 0
	p.Body.health += v
	if p.Body.health > p.MaxHealth() {
		p.Body.health = p.MaxHealth()
	}
	if wasAlive && p.Body.health <= 0 {
		if causeOfDeath != "" {
			w.Log.New([]string{p.name, causeOfDeath, p.area.At()})
		}
		p.Die(w)
	}
}

// AddEnergy shifts energy. A head wound caps the ceiling at 0.6. A
// deficit first eats into the stomach, then drains health.
func (p *Player) AddEnergy(w *World, v float64) {
	p.Body.energy += v
	ceiling := 1.0
	if p.Has(StatusHeadWound) {
		ceiling = 0.6
	}
	if p.Body.energy > ceiling {
		p.Body.energy = ceiling
	}
	if p.Body.energy < 0 {
		deficit := -p.Body.energy
		if p.Body.stomach > 0 {
			fromStomach := minf(deficit, p.Body.stomach)
			p.Body.stomach -= fromStomach
			p.Body.energy += fromStomach
			deficit -= fromStomach
		}
		if deficit > 0 {
			p.Body.energy = 0
			p.AddStatus(StatusExhausted)
			p.AddHealth(w, -deficit, "dies of hunger and exhaustion")
		}
	} else {
		p.RemoveStatus(StatusExhausted)
	}
}

// AddSleep shifts the sleep reserve; a deficit drains energy instead.
func (p *Player) AddSleep(w *World, v float64) {
	p.Body.sleep += v
	if p.Body.sleep > 1 {
		p.Body.sleep = 1
	}
	if p.Body.sleep < 0 {
		p.AddStatus(StatusSleepy)
		p.AddEnergy(w, p.Body.sleep)
		p.Body.sleep = 0
	} else if p.Body.sleep > 0.2 {
		p.RemoveStatus(StatusSleepy)
	}
}

// ConsumeNutriments shifts the stomach; a deficit drains energy.
func (p *Player) ConsumeNutriments(w *World, v float64) {
	p.Body.stomach += v
	if p.Body.stomach > 1 {
		p.Body.stomach = 1
	}
	if p.Body.stomach < 0 {
		p.AddStatus(StatusHungry)
		p.AddEnergy(w, p.Body.stomach)
		p.Body.stomach = 0
	} else if p.Body.stomach > 0.2 {
		p.RemoveStatus(StatusHungry)
	}
}

// MoveCost is the energy price of changing areas.
func (p *Player) MoveCost() float64 {
	cost := 0.3
	if p.Has(StatusLegWound) {
		cost += 0.2
	}
	return cost
}

// CanFlee reports whether fleeing is even an option: an open area to
// run to, no trap, and either the reserves to move or the pressure of
// standing at the cornucopia.
func (p *Player) CanFlee(w *World) bool {
	if p.Has(StatusTrapped) {
		return false
	}
	open := false
	for _, a := range w.AccessibleAreas() {
		if a != p.area {
			open = true
			break
		}
	}
	if !open {
		return false
	}
	return p.Energy()+p.Health() > p.MoveCost() || !p.area.IsStart()
}

// Rest recovers a little of everything without the commitment of sleep.
func (p *Player) Rest(w *World) {
	if !p.area.IsStart() {
		p.Hide(w)
	} else {
		w.Log.Add([]string{p.name, "rests", p.area.At()})
	}
	p.TakeABreak(w)
	p.AddHealth(w, maxf(p.Energy(), p.Body.sleep)/10, "")
	p.AddEnergy(w, maxf(0.05, p.Body.sleep/10))
	p.AddSleep(w, 0.1)
}

// Hide drops out of sight, raising stealth for the phase.
func (p *Player) Hide(w *World) {
	p.Stealth += w.Rand.Float() * (1 - p.Stealth)
	w.Log.Add([]string{p.name, "hides", p.area.At()})
}

// GoToSleep knocks the agent out for the phase. An involuntary
// collapse narrates differently.
func (p *Player) GoToSleep(w *World, chosen bool) {
	if chosen {
		w.Log.Add([]string{p.name, "goes to sleep", p.area.At()})
	} else {
		w.Log.New([]string{p.name, "collapses exhausted", p.area.At()})
	}
	p.AddStatus(StatusSleeping)
	p.AddHealth(w, p.Energy()/5, "")
	p.AddEnergy(w, p.Body.sleep/2)
	p.AddSleep(w, 1)
	p.Busy = true
}

// WakeUp clears sleep at the start of the agent's next turn.
func (p *Player) WakeUp() { p.RemoveStatus(StatusSleeping) }

// StopRunning clears the fleeing flag.
func (p *Player) StopRunning() { p.RemoveStatus(StatusFleeing) }

// FreeFromTrap cuts the agent loose.
func (p *Player) FreeFromTrap() { p.RemoveStatus(StatusTrapped) }

// Reveal cancels any stealth built up by hiding or ambushing.
func (p *Player) Reveal() {
	p.Stealth = 0
	p.EndAmbush()
}

// EndAmbush abandons an ambush position.
func (p *Player) EndAmbush() {
	if p.Has(StatusAmbush) {
		p.RemoveStatus(StatusAmbush)
		p.waiting = 0
		p.area.RemoveAmbusher(p)
	}
}

// Upkeep applies the per-phase metabolic drain: thirst, energy, sleep
// and food upkeep, bleeding, poison ticks, and rage decay. Sleeping
// agents pay no sleep or energy upkeep and half the food upkeep.
func (p *Player) Upkeep(w *World) {
	if !p.IsAlive() {
		return
	}

	dehydration := 0.3
	if p.Has(StatusBurnWound) {
		dehydration = 0.5
	}
	p.Body.water -= dehydration
	p.WaterUpkeep(w)
	if p.Thirst() > 0 {
		p.AddStatus(StatusThirsty)
	} else {
		p.RemoveStatus(StatusThirsty)
	}

	energyUpkeep := w.Rand.Float() * 0.1
	sleepUpkeep := maxf(w.Rand.Float(), w.Rand.Float()) * 0.1
	foodUpkeep := maxf(w.Rand.Float(), w.Rand.Float()) * 0.2
	if p.Has(StatusThirsty) {
		energyUpkeep *= 1 + p.Thirst()
	}
	if p.Has(StatusSleeping) {
		sleepUpkeep = 0
		energyUpkeep = 0
		foodUpkeep /= 2
	}
	p.AddSleep(w, -sleepUpkeep)
	p.AddEnergy(w, -energyUpkeep)
	p.ConsumeNutriments(w, -foodUpkeep)

	if p.Has(StatusBleeding) {
		p.AddHealth(w, -maxf(0.05, p.Health()/5), "bleeds out")
		if !p.IsAlive() {
			return
		}
	}

	var remaining []*gear.Poison
	for _, poison := range p.Body.poisons {
		p.AddHealth(w, -poison.Damage, "succumbs to "+poison.LongName)
		if !p.IsAlive() {
			return
		}
		poison.Amount--
		if poison.Amount > 0 {
			remaining = append(remaining, poison)
		} else {
			w.Log.New([]string{p.name, "recovers from", poison.LongName})
		}
	}
	p.Body.poisons = remaining

	p.Body.rage = 0

	if p.Has(StatusTrapped) && !p.Kit.weapon.IsHands() && gear.CanCarryPoison(p.Kit.weapon.Name()) {
		w.Log.New([]string{p.name, "cuts", p.Pronouns.Self(), "loose with", p.Pronouns.His, p.Kit.weapon.Name()})
		p.FreeFromTrap()
	}
}

// AddPoison ingests a dose.
func (p *Player) AddPoison(w *World, poison *gear.Poison) {
	p.Body.poisons = append(p.Body.poisons, poison)
	w.Log.New([]string{p.name, "is poisoned by", poison.LongName})
}

// BeDamaged applies incoming damage, rolls for wounds on heavy hits,
// and reports whether the blow killed. The attacker's narration for the
// killing blow is stocked before calling this.
func (p *Player) BeDamaged(w *World, damage float64, weaponName string, causeOfDeath string) bool {
	p.Body.rage += w.Rand.Float()/4 - damage
	if damage > 0.3 && weaponName != "" {
		if element := gear.WeaponWound(w.Rand, weaponName); element != "" {
			tag := element + " wound"
			if !p.Has(tag) {
				p.AddStatus(tag)
				p.Body.maxHealth *= 0.9
				article := "a "
				if strings.ContainsRune("aeiou", rune(element[0])) {
					article = "an "
				}
				w.Log.Stock([]string{p.name, "suffers", article + tag})
			}
		}
		if gear.WeaponBleeds(w.Rand, weaponName) && !p.Has(StatusBleeding) {
			p.AddStatus(StatusBleeding)
			w.Log.Stock([]string{p.name, "starts bleeding"})
		}
	}
	p.AddHealth(w, -damage, causeOfDeath)
	return !p.IsAlive()
}

// Die removes the player from the arena: everything carried lands in
// the area loot, then the game loop is notified.
func (p *Player) Die(w *World) {
	for _, item := range p.Drops() {
		w.Map.AddLoot(item, p.area)
	}
	p.Kit.equipment = nil
	p.Kit.weapon = gear.BareHands()
	p.EndAmbush()
	if w.OnDeath != nil {
		w.OnDeath(p)
	}
}

// DramaticDeath narrates and kills outright, used by arena hazards.
func (p *Player) DramaticDeath(w *World, causeOfDeath string) {
	w.Log.New([]string{p.name, causeOfDeath, p.area.At()})
	p.Body.health = 0
	p.Die(w)
}

var _ arena.Occupant = (*Player)(nil)

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
