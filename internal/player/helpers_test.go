package player

import (
	"bytes"

	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/entropy"
	"github.com/talgya/arena-sim/internal/narrate"
)

// testWorld builds a small seeded arena with the given players placed
// at the start area. Narration goes to the returned buffer.
func testWorld(seed int64, players ...*Player) (*World, *bytes.Buffer) {
	out := &bytes.Buffer{}
	rng := entropy.NewSource(seed)
	m := arena.Generate(arena.GenConfig{Seed: seed, Size: 4})

	alive := append([]*Player{}, players...)
	w := &World{
		Map:   m,
		Log:   narrate.NewNarrator(rng, out),
		Rand:  rng,
		Phase: Day,
	}
	w.AlivePlayers = func() []*Player { return alive }
	w.OnDeath = func(p *Player) {
		for i, q := range alive {
			if q == p {
				alive = append(alive[:i], alive[i+1:]...)
				break
			}
		}
		_ = m.RemovePlayer(p)
	}
	for _, p := range players {
		m.AddPlayer(p)
	}
	return w, out
}
