package player

import (
	"log/slog"

	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/gear"
)

// Status tags. Wound tags are "<element> wound" so Wounds can collect
// them by suffix.
const (
	StatusArmWound   = "arm wound"
	StatusLegWound   = "leg wound"
	StatusBellyWound = "belly wound"
	StatusHeadWound  = "head wound"
	StatusBurnWound  = "burn wound"
	StatusBleeding   = "bleeding"
	StatusSleeping   = "sleeping"
	StatusThirsty    = "thirsty"
	StatusHungry     = "hungry"
	StatusSleepy     = "sleepy"
	StatusExhausted  = "exhausted"
	StatusTrapped    = "trapped"
	StatusFleeing    = "fleeing"
	StatusAmbush     = "ambushing"
	StatusUnchecked  = "unchecked bag"
)

// Physiology is the per-agent resource block. Raw fields may dip below
// zero transiently; the accessors clamp and the mutators cascade
// deficits (hunger drains energy, exhaustion drains health).
type Physiology struct {
	health    float64
	maxHealth float64
	energy    float64
	sleep     float64
	stomach   float64
	water     float64
	rage      float64
	poisons   []*gear.Poison
}

// Kit is the per-agent inventory block: the wielded weapon plus loose
// equipment (a carried bag flattens into the equipment view).
type Kit struct {
	equipment []gear.Item
	weapon    *gear.Weapon
}

// Player is one competitor. Identity, physiology, kit and social state
// compose into the single concrete agent type.
type Player struct {
	name     string
	Pronouns Pronouns
	District int

	Body Physiology
	Kit  Kit

	Wisdom  float64
	Stealth float64
	Busy    bool
	Acted   bool

	status    map[string]bool
	area      *arena.Area
	dest      *arena.Area
	waiting   int
	strategy  *Strategy
	relations map[*Player]*Relation
}

// New creates a fresh competitor with full resources and bare hands.
func New(name string, district int, pronoun string) *Player {
	return &Player{
		name:     name,
		Pronouns: PronounsFor(pronoun),
		District: district,
		Body: Physiology{
			health:    1,
			maxHealth: 1,
			energy:    1,
			sleep:     1,
			stomach:   1,
			water:     2,
		},
		Kit:       Kit{weapon: gear.BareHands()},
		Wisdom:    0.9,
		status:    map[string]bool{},
		relations: map[*Player]*Relation{},
	}
}

// Name returns the player's name.
func (p *Player) Name() string { return p.name }

func (p *Player) String() string { return p.name }

// CurrentArea returns where the player stands.
func (p *Player) CurrentArea() *arena.Area { return p.area }

// SetCurrentArea relocates the player (map bookkeeping only).
func (p *Player) SetCurrentArea(a *arena.Area) { p.area = a }

// Destination returns where the player committed to move this phase.
func (p *Player) Destination() *arena.Area { return p.dest }

// Has reports whether a status tag is active.
func (p *Player) Has(tag string) bool { return p.status[tag] }

// AddStatus activates a status tag.
func (p *Player) AddStatus(tag string) { p.status[tag] = true }

// RemoveStatus clears a status tag.
func (p *Player) RemoveStatus(tag string) { delete(p.status, tag) }

// Strategy returns the strategy committed for this turn, nil outside
// the think/act window.
func (p *Player) Strategy() *Strategy { return p.strategy }

// Relation returns the ledger entry toward another player, creating a
// neutral one on first access.
func (p *Player) Relation(other *Player) *Relation {
	r, ok := p.relations[other]
	if !ok {
		r = &Relation{}
		p.relations[other] = r
	}
	return r
}

// Allies lists the still-alive players this one is allied with.
func (p *Player) Allies(w *World) []*Player {
	var out []*Player
	for _, q := range w.AlivePlayers() {
		if q != p && p.Relation(q).Allied() {
			out = append(out, q)
		}
	}
	return out
}

// Enemies lists co-located players who are neither self nor allies.
func (p *Player) Enemies(a *arena.Area) []*Player {
	var out []*Player
	for _, o := range a.Players {
		q, ok := o.(*Player)
		if !ok || q == p {
			continue
		}
		if !p.Relation(q).Allied() {
			out = append(out, q)
		}
	}
	return out
}

// PlayersIn converts an area roster back to players.
func PlayersIn(a *arena.Area) []*Player {
	out := make([]*Player, 0, len(a.Players))
	for _, o := range a.Players {
		if q, ok := o.(*Player); ok {
			out = append(out, q)
		}
	}
	return out
}

// Think evaluates the phase catalog and commits to the best-scoring
// candidate: score = pref + U(0,1)·(1−wisdom), first maximum wins.
func (p *Player) Think(w *World) {
	p.ConsiderBetrayal(w)
	if !p.IsAlive() {
		return
	}
	catalog := CatalogFor(w, p)
	var best *Strategy
	bestScore := 0.0
	for _, s := range catalog {
		score := s.Pref(w, p) + w.Rand.Float()*(1-p.Wisdom)
		if best == nil || score > bestScore {
			best, bestScore = s, score
		}
	}
	p.strategy = best
	if best != nil {
		slog.Debug("strategy committed", "player", p.name, "strategy", best.Name, "score", bestScore)
	}
}

// Act executes the committed strategy, subject to the two overrides:
// exhausted agents collapse, and an agent alone at the cornucopia
// during the bloodbath loots it instead.
func (p *Player) Act(w *World) {
	defer func() {
		p.strategy = nil
		p.Acted = true
	}()
	p.StopRunning()
	w.Log.Cut()
	if p.Busy || !p.IsAlive() {
		return
	}
	switch {
	case p.Body.energy < 0:
		p.GoToSleep(w, false)
	case w.Phase == Bloodbath && p.area.IsStart() && len(p.Enemies(p.area)) == 0:
		p.victoryLoot(w)
	case p.strategy != nil:
		if p.strategy.GroupAct != nil {
			if g := FormGroup(w, p); len(g.Members) > 1 {
				p.strategy.GroupAct(w, g)
				break
			}
		}
		p.strategy.Act(w, p)
	}
	w.Log.Cut()
}

// victoryLoot is the uncontested-bloodbath redirect: grab what matters
// and settle down, in catalog order.
func (p *Player) victoryLoot(w *World) {
	for _, s := range []*Strategy{lootBagStrategy(), lootStartStrategy(), hideStrategy()} {
		if s.Pref(w, p) > 0 {
			s.Act(w, p)
		}
	}
}

// ResetTurn clears the per-turn flags once a phase ends.
func (p *Player) ResetTurn() {
	p.strategy = nil
	p.Acted = false
	p.Busy = false
}

// IsAlive reports whether the player is still competing.
func (p *Player) IsAlive() bool { return p.Health() > 0 }

// WantToAlly scores how much p wants other as an ally, in [0, 1].
func (p *Player) WantToAlly(other *Player) float64 {
	r := p.Relation(other)
	want := 0.1 + 0.4*r.Friendship() + 0.3*r.Trust()
	if p.District == other.District {
		want += 0.3
	}
	return clamp(want, 0, 1)
}

// AskToAlly proposes an alliance; the target accepts with probability
// equal to its own willingness. Acceptance merges both alliance graphs.
func (p *Player) AskToAlly(w *World, other *Player) {
	if w.Rand.Chance(other.WantToAlly(p)) {
		w.Log.New([]string{p.name, "proposes", "an alliance to", other.name, "and", other.Pronouns.He, "accepts!"})
		p.NewAlly(w, other)
	} else {
		w.Log.New([]string{p.name, "proposes", "an alliance to", other.name, "but", other.Pronouns.He, "refuses"})
		p.Relation(other).AddFriendship(-0.5)
	}
}

// NewAlly allies p and other and merges their existing alliances into
// one clique.
func (p *Player) NewAlly(w *World, other *Player) {
	members := clique(w, p, other)
	for _, a := range members {
		for _, b := range members {
			if a != b {
				a.Relation(b).SetAllied(true)
				a.Relation(b).AddTrust(0.1)
			}
		}
	}
}

// clique collects p, other and both their ally sets, deduplicated, in a
// stable order.
func clique(w *World, p, other *Player) []*Player {
	members := []*Player{p, other}
	seen := map[*Player]bool{p: true, other: true}
	for _, q := range append(p.Allies(w), other.Allies(w)...) {
		if !seen[q] {
			seen[q] = true
			members = append(members, q)
		}
	}
	return members
}

// ConsiderBetrayal checks the two betrayal triggers: no outside enemies
// left, or an ally whose combined value went negative.
func (p *Player) ConsiderBetrayal(w *World) {
	if !p.IsAlive() {
		return
	}
	allies := p.Allies(w)
	if len(allies) == 0 {
		return
	}

	// Endgame: everyone left is an ally, so someone has to go. Take
	// out the most dangerous one.
	if len(allies) == len(w.AlivePlayers())-1 {
		target := allies[0]
		for _, q := range allies[1:] {
			if q.Dangerosity(w) > target.Dangerosity(w) {
				target = q
			}
		}
		p.Betray(w, target)
		return
	}

	// Dead weight: drop the least valuable ally when its combined
	// score turns negative.
	var worst *Player
	worstScore := 0.0
	for _, q := range allies {
		r := p.Relation(q)
		score := q.Dangerosity(w) + r.Trust() + r.Friendship()
		if score < 0 && (worst == nil || score < worstScore) {
			worst, worstScore = q, score
		}
	}
	if worst != nil {
		p.Betray(w, worst)
	}
}

// Betray dissolves the alliance and turns on the target: the old group
// splits into sides and the betrayer attacks immediately.
func (p *Player) Betray(w *World, target *Player) {
	w.Log.New([]string{p.name, "betrays", target.name})
	side1, side2 := p.BreakAlliance(w, target)
	if p.area == target.area {
		DoFight(w, side1, side2)
	}
}

// BreakAlliance clears every alliance bit inside the old clique and
// lets the remaining members pick a side. Returns the two sides.
func (p *Player) BreakAlliance(w *World, target *Player) (side1, side2 []*Player) {
	members := clique(w, p, target)
	for _, a := range members {
		for _, b := range members {
			if a != b {
				a.Relation(b).SetAllied(false)
				a.Relation(b).AddTrust(-0.3)
			}
		}
	}

	side1 = []*Player{p}
	side2 = []*Player{target}
	for _, q := range members {
		if q == p || q == target {
			continue
		}
		switch q.ChooseBetween(w, p, target) {
		case p:
			q.Relation(p).SetAllied(true)
			p.Relation(q).SetAllied(true)
			side1 = append(side1, q)
		case target:
			q.Relation(target).SetAllied(true)
			target.Relation(q).SetAllied(true)
			side2 = append(side2, q)
		default:
			if q.CanFlee(w) {
				q.Flee(w, true)
			}
		}
	}
	return side1, side2
}

// ChooseBetween picks which side of a broken alliance to join; nil
// means going solo.
func (p *Player) ChooseBetween(w *World, a, b *Player) *Player {
	potA := p.allyPotential(w, a)
	potB := p.allyPotential(w, b)
	if potA <= 0 && potB <= 0 {
		return nil
	}
	if potA >= potB {
		return a
	}
	return b
}

func (p *Player) allyPotential(w *World, other *Player) float64 {
	r := p.Relation(other)
	return other.Dangerosity(w) * maxf(r.Friendship(), r.Trust())
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
