package player

import (
	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/gear"
)

// Strategy is one scored candidate action. Candidates are value records
// rebuilt every turn from the current world state; per-area and
// per-target variants carry their parameter explicitly.
type Strategy struct {
	Name   string
	Area   *arena.Area
	Target *Player

	// Pref scores the candidate for an agent. Score noise is added by
	// the selector, not here.
	Pref func(w *World, p *Player) float64

	// Act executes the candidate for a single agent.
	Act func(w *World, p *Player)

	// GroupAct executes the candidate for a whole group, with shared
	// narration. Nil for candidates that never act jointly.
	GroupAct func(w *World, g *Group)
}

// CatalogFor builds the phase-appropriate candidate set for one agent.
func CatalogFor(w *World, p *Player) []*Strategy {
	var out []*Strategy
	switch w.Phase {
	case Bloodbath:
		out = append(out, fleeStrategies(w, p)...)
		out = append(out, fightStrategy(), lootStartStrategy())
		out = append(out, allianceStrategies(w, p)...)
	case Day:
		out = append(out, hideStrategy())
		out = append(out, fleeStrategies(w, p)...)
		out = append(out,
			attackStrategy(), lootStrategy(), craftStrategy(false),
			forageStrategy(), dineStrategy(), lootBagStrategy(),
			huntStrategy(), ambushStrategy())
		out = append(out, goGetDropStrategies(w, p)...)
		out = append(out, buildTrapStrategy(), freeFromTrapStrategy(), duelStrategy())
		out = append(out, allianceStrategies(w, p)...)
	case Night:
		out = append(out, hideStrategy())
		out = append(out, fleeStrategies(w, p)...)
		out = append(out,
			lootStrategy(), craftStrategy(true),
			forageStrategy(), dineStrategy(), lootBagStrategy(),
			huntStrategy(), ambushStrategy())
		out = append(out, goGetDropStrategies(w, p)...)
		out = append(out, buildTrapStrategy(), freeFromTrapStrategy())
		out = append(out, allianceStrategies(w, p)...)
	}
	return out
}

func ind(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func hideStrategy() *Strategy {
	return &Strategy{
		Name: "hide",
		Pref: func(w *World, p *Player) float64 {
			thirst := 0.0
			if p.area.HasWater() {
				thirst = p.Thirst()
			}
			need := maxf(float64(len(p.Wounds()))*3,
				maxf(p.MaxHealth()-p.Health(),
					maxf(1-p.Energy(),
						maxf(1-p.Body.sleep, thirst))))
			gate := ind(!p.area.IsStart() || p.Health() > p.MaxHealth()/2)
			score := need * gate * (p.MaxHealth() - p.Health()/2) / float64(len(p.area.Players))
			return maxf(score, 0.1)
		},
		Act:      func(w *World, p *Player) { p.Rest(w) },
		GroupAct: func(w *World, g *Group) { g.Hide(w) },
	}
}

func fleeStrategies(w *World, p *Player) []*Strategy {
	var out []*Strategy
	for _, area := range w.AccessibleAreas() {
		if area == p.area {
			continue
		}
		a := area
		out = append(out, &Strategy{
			Name: "flee",
			Area: a,
			Pref: func(w *World, p *Player) float64 {
				if !p.CanFlee(w) {
					return -100
				}
				value := -10*float64(len(p.Enemies(a))) + float64(len(a.Loot)) + 1
				if a.HasWater() {
					value += p.Thirst()
				}
				if a != p.area {
					allies := 0
					for _, q := range PlayersIn(a) {
						if q != p && p.Relation(q).Allied() {
							allies++
						}
					}
					value += 30 * float64(allies)
				}
				return value / 30
			},
			Act:      func(w *World, p *Player) { p.FleeTo(w, a) },
			GroupAct: func(w *World, g *Group) { g.FleeTo(w, a) },
		})
	}
	return out
}

func fightStrategy() *Strategy {
	return &Strategy{
		Name: "fight",
		Pref: func(w *World, p *Player) float64 {
			threats := 0
			for _, q := range PlayersIn(p.area) {
				if q != p && q.Dangerosity(w) > 1.2*p.Dangerosity(w) {
					threats++
				}
			}
			return p.Health() * float64(threats)
		},
		Act:      func(w *World, p *Player) { p.AttackAtRandom(w) },
		GroupAct: func(w *World, g *Group) { g.AttackAtRandom(w) },
	}
}

func duelStrategy() *Strategy {
	base := fightStrategy()
	return &Strategy{
		Name: "duel",
		Pref: func(w *World, p *Player) float64 {
			if w.PlayerCount() != 2 {
				return -100
			}
			return base.Pref(w, p)
		},
		Act: base.Act,
	}
}

func attackStrategy() *Strategy {
	return &Strategy{
		Name: "attack",
		Pref: func(w *World, p *Player) float64 {
			return p.Health() *
				minf(p.Energy(), minf(p.Body.stomach, p.Body.sleep)) *
				p.Kit.weapon.DamageMult / float64(w.PlayerCount())
		},
		Act:      func(w *World, p *Player) { p.AttackAtRandom(w) },
		GroupAct: func(w *World, g *Group) { g.AttackAtRandom(w) },
	}
}

func ambushStrategy() *Strategy {
	return &Strategy{
		Name: "ambush",
		Pref: func(w *World, p *Player) float64 {
			return p.Health() *
				minf(p.Energy(), minf(p.Body.stomach, p.Body.sleep)) *
				p.Kit.weapon.DamageMult *
				ind(len(p.Enemies(p.area)) == 0)
		},
		Act: func(w *World, p *Player) { p.SetUpAmbush(w) },
	}
}

func huntStrategy() *Strategy {
	return &Strategy{
		Name: "hunt",
		Pref: func(w *World, p *Player) float64 {
			if w.PlayerCount() >= 4 {
				return -100
			}
			return p.Health() * p.Kit.weapon.DamageMult
		},
		Act: func(w *World, p *Player) { p.AttackAtRandom(w) },
	}
}

func lootStrategy() *Strategy {
	return &Strategy{
		Name: "loot",
		Pref: func(w *World, p *Player) float64 {
			unarmed := 0.2
			if p.Kit.weapon.IsHands() {
				unarmed = 2
			}
			return (p.Energy() - p.MoveCost()) * unarmed * p.EstimateAll(p.area.Loot)
		},
		Act:      func(w *World, p *Player) { p.Loot(w) },
		GroupAct: func(w *World, g *Group) { g.Loot(w) },
	}
}

func lootBagStrategy() *Strategy {
	return &Strategy{
		Name: "loot bag",
		Pref: func(w *World, p *Player) float64 {
			return p.Kit.weapon.DamageMult *
				ind(w.Map.HasBags(p.area)) *
				ind(p.Bag() == nil)
		},
		Act:      func(w *World, p *Player) { p.LootBag(w) },
		GroupAct: func(w *World, g *Group) { g.LootBag(w) },
	}
}

func lootStartStrategy() *Strategy {
	return &Strategy{
		Name: "loot the cornucopia",
		Pref: func(w *World, p *Player) float64 {
			var weapons []gear.Item
			for _, weapon := range w.Map.Weapons(p.area) {
				weapons = append(weapons, weapon)
			}
			bagPull := p.Kit.weapon.DamageMult *
				ind(w.Map.HasBags(p.area)) * ind(p.Bag() == nil)
			return maxf(p.EstimateAll(weapons), bagPull)
		},
		Act: func(w *World, p *Player) {
			if p.Bag() == nil && w.Map.HasBags(p.area) {
				p.LootBag(w)
			} else {
				p.LootWeapon(w)
			}
		},
		GroupAct: func(w *World, g *Group) { g.Loot(w) },
	}
}

func forageStrategy() *Strategy {
	return &Strategy{
		Name: "forage",
		Pref: func(w *World, p *Player) float64 {
			return p.Hunger() * p.area.ForagePotential * ind(len(p.Enemies(p.area)) == 0)
		},
		Act: func(w *World, p *Player) { p.Forage(w) },
	}
}

func dineStrategy() *Strategy {
	return &Strategy{
		Name: "dine",
		Pref: func(w *World, p *Player) float64 {
			return p.Hunger() * ind(p.HasFood()) * ind(len(p.Enemies(p.area)) == 0)
		},
		Act: func(w *World, p *Player) { p.Dine(w) },
	}
}

// craftStrategy scores carving a better weapon. At night an energy gate
// keeps tired agents from whittling in the dark.
func craftStrategy(night bool) *Strategy {
	return &Strategy{
		Name: "craft",
		Pref: func(w *World, p *Player) float64 {
			quiet := ind(len(p.Enemies(p.area)) == 0)
			if night {
				return (p.Energy() - 0.2) *
					ind(p.Kit.weapon.DamageMult < 2) *
					(2 - p.Kit.weapon.DamageMult) * quiet
			}
			return (2 - p.Kit.weapon.DamageMult) * quiet
		},
		Act:      func(w *World, p *Player) { p.Craft(w) },
		GroupAct: func(w *World, g *Group) { g.Craft(w) },
	}
}

func buildTrapStrategy() *Strategy {
	return &Strategy{
		Name: "build a trap",
		Pref: func(w *World, p *Player) float64 {
			return (p.Energy() - 0.2) *
				ind(len(p.Enemies(p.area)) == 0) *
				ind(p.CanBuildTrap())
		},
		Act: func(w *World, p *Player) { p.BuildAnyTrap(w) },
	}
}

func freeFromTrapStrategy() *Strategy {
	return &Strategy{
		Name: "free from trap",
		Pref: func(w *World, p *Player) float64 {
			if p.Has(StatusTrapped) {
				return 1000
			}
			return -100
		},
		Act: func(w *World, p *Player) {
			w.Log.Add([]string{p.name, "struggles free", p.area.At()})
			p.FreeFromTrap()
			p.AddEnergy(w, -0.2)
			p.Busy = true
		},
	}
}

func goGetDropStrategies(w *World, p *Player) []*Strategy {
	var out []*Strategy
	for _, area := range w.AccessibleAreas() {
		if area == p.area || len(area.Loot) == 0 {
			continue
		}
		a := area
		out = append(out, &Strategy{
			Name: "go get the drop",
			Area: a,
			Pref: func(w *World, p *Player) float64 {
				return (p.Dangerosity(w) + p.EstimateAll(a.Loot) - p.EstimateOfDanger(w, a)) *
					minf(w.Rand.Float(), 3/float64(w.PlayerCount()))
			},
			Act: func(w *World, p *Player) {
				if p.GoTo(w, a) {
					w.Log.Add([]string{p.name, "goes for the drop", a.To()})
				}
				p.Loot(w)
			},
			GroupAct: func(w *World, g *Group) { g.GoGetDrop(w, a) },
		})
	}
	return out
}

func allianceStrategies(w *World, p *Player) []*Strategy {
	var out []*Strategy
	for _, target := range w.AlivePlayers() {
		if target == p {
			continue
		}
		t := target
		out = append(out, &Strategy{
			Name:   "propose an alliance",
			Target: t,
			Pref: func(w *World, p *Player) float64 {
				if t.area != p.area || p.Relation(t).Allied() {
					return -100
				}
				return p.WantToAlly(t)
			},
			Act: func(w *World, p *Player) { p.AskToAlly(w, t) },
		})
	}
	return out
}
