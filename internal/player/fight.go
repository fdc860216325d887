package player

import (
	"github.com/talgya/arena-sim/internal/gear"
)

// bloodbathRoundCap time-boxes opening-phase fights.
const bloodbathRoundCap = 4

// DoFight resolves a multi-round battle between two parties. Each round
// every standing member of one side swings at a random member of the
// other, then the sides swap. A beaten side's drops pool up and the
// winners pillage them.
func DoFight(w *World, team1, team2 []*Player) {
	if len(team1) == 0 || len(team2) == 0 {
		return
	}

	initiative := map[*Player]float64{}
	seen := false
	for _, att := range team1 {
		for _, def := range team2 {
			if def.CanSee(w, att) {
				seen = true
			}
		}
	}
	for _, att := range team1 {
		if seen {
			initiative[att] = w.Rand.Float()
		} else {
			initiative[att] = 1 + w.Rand.Float()
		}
	}
	for _, def := range team2 {
		if def.Has(StatusSleeping) {
			initiative[def] = 0
		} else {
			initiative[def] = w.Rand.Float()
		}
	}

	for _, p := range append(append([]*Player{}, team1...), team2...) {
		p.Busy = true
	}

	var pool []gear.Item
	alive1 := append([]*Player{}, team1...)
	alive2 := append([]*Player{}, team2...)

	round := 0
	for len(alive1) > 0 && len(alive2) > 0 {
		round++
		if w.Phase == Bloodbath && round > bloodbathRoundCap {
			break
		}
		firstRound := round == 1
		alive2 = attackPass(w, alive1, alive2, initiative, firstRound, true, &pool)
		if len(alive2) == 0 {
			break
		}
		alive1 = attackPass(w, alive2, alive1, initiative, firstRound, false, &pool)
	}
	w.Log.ApplyStock()
	w.Log.Cut()

	winners := alive1
	if len(alive1) == 0 {
		winners = alive2
	}
	for _, p := range winners {
		if p.IsAlive() {
			p.Reveal()
			p.Pillage(w, pool)
		}
	}
}

// attackPass runs one side's swings; returns the defenders still in the
// fight (alive and not fled).
func attackPass(w *World, attackers, defenders []*Player, initiative map[*Player]float64, firstRound, opening bool, pool *[]gear.Item) []*Player {
	for _, att := range attackers {
		if !att.IsAlive() || len(defenders) == 0 {
			continue
		}
		def := defenders[w.Rand.Intn(len(defenders))]

		mult := 1.0
		verb := "attacks"
		if firstRound {
			switch {
			case def.Has(StatusSleeping):
				mult = 2
				verb = "attacks"
				if opening {
					verb = "catches and attacks"
				}
			case def.Has(StatusTrapped):
				mult = 2
			case initiative[att] > initiative[def] &&
				w.Rand.Float()+att.Stealth > def.Wisdom:
				mult = 1.5
				if opening {
					verb = "finds and attacks"
				}
			}
		}

		potential := def.Drops()
		if att.Hit(w, def, mult, verb) {
			*pool = append(*pool, potential...)
			defenders = remove(defenders, def)
			continue
		}

		if w.Rand.Float() > def.Courage(w) && def.CanFlee(w) {
			hadWeapon := def.Kit.weapon
			def.Flee(w, true)
			if def.Kit.weapon != hadWeapon && !hadWeapon.IsHands() {
				*pool = append(*pool, hadWeapon)
			}
			defenders = remove(defenders, def)
		}
	}
	return defenders
}

func remove(ps []*Player, p *Player) []*Player {
	for i, q := range ps {
		if q == p {
			return append(ps[:i], ps[i+1:]...)
		}
	}
	return ps
}
