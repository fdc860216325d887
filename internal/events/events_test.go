package events

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/arena-sim/internal/arena"
	"github.com/talgya/arena-sim/internal/entropy"
	"github.com/talgya/arena-sim/internal/gear"
	"github.com/talgya/arena-sim/internal/narrate"
	"github.com/talgya/arena-sim/internal/player"
)

func testWorld(seed int64, players ...*player.Player) (*player.World, *bytes.Buffer) {
	out := &bytes.Buffer{}
	rng := entropy.NewSource(seed)
	m := arena.Generate(arena.GenConfig{Seed: seed, Size: 4})

	alive := append([]*player.Player{}, players...)
	w := &player.World{
		Map:   m,
		Log:   narrate.NewNarrator(rng, out),
		Rand:  rng,
		Phase: player.Day,
	}
	w.AlivePlayers = func() []*player.Player { return alive }
	w.OnDeath = func(p *player.Player) {
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

func TestDropEventSeedsTheCornucopia(t *testing.T) {
	roster := []*player.Player{
		player.New("Marvel", 1, "he"), player.New("Glimmer", 1, "she"),
		player.New("Cato", 2, "he"), player.New("Clove", 2, "she"),
		player.New("Rue", 11, "she"),
	}
	w, out := testWorld(71, roster...)
	start := w.Map.Start()
	start.Loot = nil

	NewDropEvent().Trigger(w)

	bags := 0
	for _, item := range start.Loot {
		if _, ok := item.(*gear.Bag); ok {
			bags++
		}
	}
	assert.GreaterOrEqual(t, bags, 1)
	assert.LessOrEqual(t, bags, 4)
	assert.Len(t, start.Loot, bags, "a drop contains only bags")

	lines := strings.Count(strings.TrimRight(out.String(), "\n"), "\n") + 1
	assert.Equal(t, 1, lines, "a drop is reported in exactly one line")
}

func TestDamageEventClosesItsAreas(t *testing.T) {
	roster := []*player.Player{
		player.New("Thresh", 11, "he"), player.New("Katniss", 12, "she"),
		player.New("Peeta", 12, "he"), player.New("Finn", 4, "he"),
	}
	w, _ := testWorld(73, roster...)

	ev := NewWildFire()
	ev.Trigger(w)
	require.NotEmpty(t, ev.Areas())
	for _, a := range ev.Areas() {
		assert.False(t, a.HasWater(), "wildfire never strikes water")
		for _, open := range w.AccessibleAreas() {
			assert.NotEqual(t, a, open, "struck areas are closed for the phase")
		}
	}
}

func TestFloodOnlyStrikesWater(t *testing.T) {
	w, _ := testWorld(79, player.New("Mags", 4, "she"))

	hasWater := false
	for _, a := range w.Map.Areas {
		if a.HasWater() {
			hasWater = true
		}
	}
	ev := NewFlood()
	ev.Trigger(w)
	if !hasWater {
		assert.Empty(t, ev.Areas())
		return
	}
	for _, a := range ev.Areas() {
		assert.True(t, a.HasWater())
	}
}

func TestWildFireClearsLoot(t *testing.T) {
	p := player.New("Woof", 8, "he")
	w, _ := testWorld(83, p)

	for _, a := range w.Map.Areas {
		if !a.HasWater() {
			w.Map.AddLoot(gear.NewObject("rope"), a)
		}
	}
	ev := NewWildFire()
	ev.Trigger(w)
	for _, a := range ev.Areas() {
		assert.Empty(t, a.Loot)
	}
}
