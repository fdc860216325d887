package player

import (
	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/gear"
	"github.com/talgya/arena-sim/internal/narrate"
)

// Group is a turn-scoped aggregation of allied co-located agents acting
// in lockstep. It is rebuilt every turn; nothing persists on it.
type Group struct {
	Members []*Player
}

// FormGroup gathers the leader plus every present, free ally whose own
// committed strategy matches the leader's. Allies with other plans act
// solo on their own turn.
func FormGroup(w *World, leader *Player) *Group {
	g := &Group{Members: []*Player{leader}}
	if leader.strategy == nil {
		return g
	}
	for _, q := range leader.Allies(w) {
		if q.area != leader.area || q.Busy || q.Acted || !q.IsAlive() {
			continue
		}
		if q.strategy != nil && q.strategy.Name == leader.strategy.Name {
			g.Members = append(g.Members, q)
		}
	}
	return g
}

// Names renders the member list for narration.
func (g *Group) Names() string {
	names := make([]string, len(g.Members))
	for i, p := range g.Members {
		names[i] = p.Name()
	}
	return narrate.FormatList(names)
}

// Courage is the boldest member's courage.
func (g *Group) Courage(w *World) float64 {
	best := 0.0
	for i, p := range g.Members {
		if c := p.Courage(w); i == 0 || c > best {
			best = c
		}
	}
	return best
}

// Dangerosity is the combined threat of the group.
func (g *Group) Dangerosity(w *World) float64 {
	sum := 0.0
	for _, p := range g.Members {
		sum += p.Dangerosity(w)
	}
	return sum
}

// RelationWith aggregates the party's pairwise relations toward an
// outsider, so the group judges it as one entity.
func (g *Group) RelationWith(other *Player) *GroupRelation {
	subs := make([]*Relation, 0, len(g.Members))
	for _, p := range g.Members {
		subs = append(subs, p.Relation(other))
	}
	return NewGroupRelation(subs)
}

// Enemies lists co-located players the party as a whole is not allied
// with. One member's private truce does not shield anyone.
func (g *Group) Enemies() []*Player {
	var out []*Player
	for _, o := range g.area().Players {
		q, ok := o.(*Player)
		if !ok || g.contains(q) {
			continue
		}
		if !g.RelationWith(q).Allied() {
			out = append(out, q)
		}
	}
	return out
}

func (g *Group) contains(q *Player) bool {
	for _, p := range g.Members {
		if p == q {
			return true
		}
	}
	return false
}

func (g *Group) area() *arena.Area { return g.Members[0].area }

func (g *Group) markActed() {
	for _, p := range g.Members {
		p.Acted = true
		p.Busy = true
	}
}

// Loot has every member grab from the pool, with one collective line
// for the finds and one for whoever came up empty.
func (g *Group) Loot(w *World) {
	g.markActed()
	var served, unserved []string
	for _, p := range g.Members {
		item := w.Map.PickItem(w.Rand, g.area())
		if item == nil {
			unserved = append(unserved, p.Name())
			continue
		}
		served = append(served, p.Name())
		w.Log.New([]string{p.Name(), "picks up", item.LongName(), g.area().At()})
		if weapon, ok := item.(*gear.Weapon); ok {
			p.GetWeapon(w, weapon)
		} else {
			p.GetItem(item)
		}
	}
	if len(unserved) > 0 {
		w.Log.New([]string{narrate.FormatList(unserved), "can't find anything useful", g.area().At()})
	}
}

// LootBag hands out one bag per member while they last.
func (g *Group) LootBag(w *World) {
	g.markActed()
	var unserved []string
	for _, p := range g.Members {
		bag := w.Map.PickBag(w.Rand, g.area())
		if bag == nil {
			unserved = append(unserved, p.Name())
			continue
		}
		w.Log.New([]string{p.Name(), "grabs", bag.LongName(), g.area().At()})
		p.GetItem(bag)
	}
	if len(unserved) > 0 {
		w.Log.New([]string{narrate.FormatList(unserved), "can't find anything useful", g.area().At()})
	}
}

// Craft has every member carve in parallel.
func (g *Group) Craft(w *World) {
	g.markActed()
	for _, p := range g.Members {
		p.Craft(w)
	}
}

// Hide settles the whole group down together.
func (g *Group) Hide(w *World) {
	g.markActed()
	w.Log.New([]string{g.Names(), "hide", g.area().At()})
	for _, p := range g.Members {
		p.Stealth += w.Rand.Float() * (1 - p.Stealth)
		p.TakeABreak(w)
		p.AddHealth(w, maxf(p.Energy(), p.Body.sleep)/10, "")
		p.AddEnergy(w, maxf(0.05, p.Body.sleep/10))
		p.AddSleep(w, 0.1)
	}
}

// FleeTo runs the group to an area together; members too drained to
// move fall behind and hide.
func (g *Group) FleeTo(w *World, a *arena.Area) {
	g.markActed()
	var moved []string
	for _, p := range g.Members {
		p.AddStatus(StatusFleeing)
		if p.GoTo(w, a) {
			moved = append(moved, p.Name())
		}
	}
	if len(moved) > 0 {
		w.Log.New([]string{narrate.FormatList(moved), "flee", a.To()})
	}
}

// GoGetDrop races the group to a loot drop and splits it.
func (g *Group) GoGetDrop(w *World, a *arena.Area) {
	g.markActed()
	var moved []string
	for _, p := range g.Members {
		if p.GoTo(w, a) {
			moved = append(moved, p.Name())
		}
	}
	if len(moved) > 0 {
		w.Log.New([]string{narrate.FormatList(moved), "go for the drop", a.To()})
	}
	g.Loot(w)
}

// AttackAtRandom jumps the weakest target any member can spot, as one
// side of the fight.
func (g *Group) AttackAtRandom(w *World) {
	g.markActed()
	var prey *Player
	preyScore := 0.0
	for _, q := range g.Enemies() {
		visible := false
		for _, p := range g.Members {
			if p.CanSee(w, q) {
				visible = true
				break
			}
		}
		if !visible {
			continue
		}
		score := q.Health() * q.BaseDamage()
		if prey == nil || score < preyScore {
			prey, preyScore = q, score
		}
	}
	if prey == nil {
		var moved []string
		var best *arena.Area
		bestCrowd := -1
		for _, a := range w.AccessibleAreas() {
			if a == g.area() {
				continue
			}
			if crowd := len(w.Map.PotentialPlayers(a)); crowd > bestCrowd {
				best, bestCrowd = a, crowd
			}
		}
		if best == nil {
			g.Hide(w)
			return
		}
		for _, p := range g.Members {
			if p.GoTo(w, best) {
				moved = append(moved, p.Name())
			}
		}
		if len(moved) > 0 {
			w.Log.New([]string{narrate.FormatList(moved), "go hunting", best.To()})
		}
		return
	}
	DoFight(w, g.Members, []*Player{prey})
}
