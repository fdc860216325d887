// Package game runs the competition: roster setup, the phase loop with
// its staggered think/act pipeline, upkeep, hazards and the win
// condition.
package game

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/entropy"
	"github.com/talgya/arena-sim/internal/events"
	"github.com/talgya/arena-sim/internal/narrate"
	"github.com/talgya/arena-sim/internal/player"
)

// eventChance is the per-phase probability of a hazard from day 2 on.
const eventChance = 0.25

// Game is one full run of the competition.
type Game struct {
	ID      string
	cfg     Config
	world   *player.World
	players []*player.Player
	alive   []*player.Player
	day     int
	out     io.Writer
}

// New builds a game from a configuration: the arena, the stocked
// cornucopia, the roster at the start area, and district alliances.
func New(cfg Config, out io.Writer) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}

	rng := entropy.NewSource(cfg.Seed)
	m := arena.Generate(arena.GenConfig{Seed: cfg.Seed, Size: cfg.ArenaSize})
	m.StockCornucopia(rng, len(cfg.Players))

	g := &Game{
		ID:  uuid.NewString(),
		cfg: cfg,
		out: out,
		world: &player.World{
			Map:  m,
			Log:  narrate.NewNarrator(rng, out),
			Rand: rng,
		},
	}

	for _, pc := range cfg.Players {
		p := player.New(pc.Name, pc.District, pc.Pronoun)
		g.players = append(g.players, p)
		g.alive = append(g.alive, p)
		m.AddPlayer(p)
	}

	// Same-district tributes start as friends.
	for _, p := range g.players {
		for _, q := range g.players {
			if p != q && p.District == q.District {
				p.Relation(q).AddFriendship(0.5)
			}
		}
	}

	g.world.AlivePlayers = func() []*player.Player { return g.alive }
	g.world.OnDeath = func(p *player.Player) {
		for i, q := range g.alive {
			if q == p {
				g.alive = append(g.alive[:i], g.alive[i+1:]...)
				break
			}
		}
		if err := m.RemovePlayer(p); err != nil {
			panic(fmt.Sprintf("death bookkeeping: %v", err))
		}
		slog.Info("tribute down", "game", g.ID, "name", p.Name(), "day", g.day, "remaining", len(g.alive))
	}

	return g, nil
}

// Run plays the game to completion and returns the winner, nil when
// nobody survives or the day cap expires with several still standing.
func (g *Game) Run() *player.Player {
	slog.Info("game starting", "game", g.ID, "players", len(g.players), "arena", len(g.world.Map.Areas), "seed", g.cfg.Seed)

	for g.day = 1; g.day <= g.cfg.Days && len(g.alive) > 1; g.day++ {
		fmt.Fprintf(g.out, "\n=== %s day ===\n", humanize.Ordinal(g.day))

		phases := []phaseSlot{
			{player.Day, "morning"},
			{player.Day, "afternoon"},
			{player.Night, "night"},
		}
		if g.day == 1 {
			// The bloodbath replaces the first morning.
			phases[0] = phaseSlot{player.Bloodbath, "bloodbath"}
		}
		for _, ph := range phases {
			if len(g.alive) <= 1 {
				break
			}
			g.playPhase(ph.phase, ph.label)
		}

		fmt.Fprintln(g.out)
		fmt.Fprintln(g.out, g.statusTable())
		slog.Info("day complete", "game", g.ID, "day", g.day, "alive", len(g.alive))
	}

	return g.finish()
}

// phaseSlot pairs a phase with its banner label; morning and afternoon
// share the day catalog.
type phaseSlot struct {
	phase player.Phase
	label string
}

func (g *Game) playPhase(ph player.Phase, label string) {
	w := g.world
	w.Phase = ph
	w.Forbidden = nil
	fmt.Fprintf(g.out, "\n-- %s --\n", label)

	if ph != player.Bloodbath {
		for _, p := range append([]*player.Player{}, g.alive...) {
			p.Upkeep(w)
		}
		w.Log.Cut()
		w.Log.Tell()
	}

	if g.day >= 2 && ph != player.Bloodbath && w.Rand.Chance(eventChance) {
		g.unleashEvent()
	}

	order := append([]*player.Player{}, g.alive...)
	w.Rand.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	// Staggered pipeline: think(i) then act(i-2), so early actors move
	// before late thinkers commit, approximating simultaneity.
	for i := range order {
		order[i].Think(w)
		if i >= 2 {
			g.act(order[i-2])
		}
	}
	for i := len(order) - 2; i < len(order); i++ {
		if i >= 0 {
			g.act(order[i])
		}
	}

	for _, p := range g.alive {
		p.ResetTurn()
	}
	w.Log.Cut()
	w.Log.Tell()
}

func (g *Game) act(p *player.Player) {
	if !p.IsAlive() {
		return
	}
	p.WakeUp()
	before := p.CurrentArea()
	p.Act(g.world)
	if p.IsAlive() && p.CurrentArea() != before {
		p.CheckForAmbushAndTraps(g.world)
	}
}

// unleashEvent rolls one hazard for the phase. A dry cornucopia gets
// the sponsors' attention regardless of the roll.
func (g *Game) unleashEvent() {
	w := g.world
	var ev events.Event
	if len(w.Map.Loot(w.Map.Start())) == 0 {
		ev = events.NewDropEvent()
	} else {
		catalog := []events.Event{
			events.NewWildFire(),
			events.NewFlood(),
			events.NewAcidGas(),
			events.NewWasps(),
			events.NewBeasts(),
			events.NewDropEvent(),
		}
		ev = catalog[w.Rand.Intn(len(catalog))]
	}
	slog.Info("event triggered", "game", g.ID, "day", g.day, "phase", w.Phase.String(), "event", ev.Name())
	ev.Trigger(w)
}

func (g *Game) finish() *player.Player {
	fmt.Fprintln(g.out, strings.Repeat("=", 40))
	switch len(g.alive) {
	case 0:
		fmt.Fprintln(g.out, "Nobody survived the arena.")
		slog.Info("game over", "game", g.ID, "winner", "none")
		return nil
	case 1:
		winner := g.alive[0]
		fmt.Fprintf(g.out, "%s from district %d wins the game!\n", winner.Name(), winner.District)
		slog.Info("game over", "game", g.ID, "winner", winner.Name(), "district", winner.District, "days", g.day-1)
		return winner
	default:
		fmt.Fprintf(g.out, "The day cap passed with %d tributes still standing. No winner.\n", len(g.alive))
		slog.Info("game over", "game", g.ID, "winner", "none", "standing", len(g.alive))
		return nil
	}
}

// Day returns the current day number, for reports.
func (g *Game) Day() int { return g.day }

// Alive returns the remaining competitors.
func (g *Game) Alive() []*player.Player { return g.alive }

// World exposes the shared context, for tests and drivers.
func (g *Game) World() *player.World { return g.world }
