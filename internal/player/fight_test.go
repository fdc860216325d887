package player

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/talgya/arena-sim/internal/gear"
)

func TestFreshAgentsFightResolvesQuickly(t *testing.T) {
	a := New("Peeta", 12, "he")
	b := New("Marvel", 1, "he")
	w, _ := testWorld(11, a, b)

	DoFight(w, []*Player{a}, []*Player{b})

	damaged := a.Health() < 1 || b.Health() < 1
	separated := a.CurrentArea() != b.CurrentArea()
	dead := !a.IsAlive() || !b.IsAlive()
	assert.True(t, damaged || separated || dead,
		"a fight must hurt someone, kill someone, or scatter the parties")

	// Bare-handed opponents drop nothing worth taking.
	assert.True(t, a.Weapon().IsHands())
	assert.True(t, b.Weapon().IsHands())
	assert.Empty(t, a.Equipment())
	assert.Empty(t, b.Equipment())
}

func TestBloodbathRoundCap(t *testing.T) {
	a := New("Brutus", 2, "he")
	b := New("Chaff", 11, "he")
	w, _ := testWorld(13, a, b)
	w.Phase = Bloodbath

	// Unbounded courage and no damage: neither side can win or flee, so
	// only the cap can end the fight.
	a.Body.rage = 1000
	b.Body.rage = 1000
	a.Kit.weapon.DamageMult = 0
	b.Kit.weapon.DamageMult = 0

	// Without the round cap this call would never return.
	DoFight(w, []*Player{a}, []*Player{b})

	assert.True(t, a.IsAlive())
	assert.True(t, b.IsAlive())
}

func TestWinnerPillagesDrops(t *testing.T) {
	a := New("Cato", 2, "he")
	b := New("Blight", 7, "he")
	c := New("Mags", 4, "she")
	w, _ := testWorld(2, a, b, c)
	w.Map.MovePlayer(c, w.Map.Areas[1])

	a.GetWeapon(w, gear.NewWeapon(gear.Sword, 3))
	b.GetWeapon(w, gear.NewWeapon(gear.Machete, 5))
	b.Body.health = 0.05
	b.Body.maxHealth = 0.05
	b.AddStatus(StatusTrapped) // cannot flee, must go down

	for i := 0; i < 50 && b.IsAlive() && a.IsAlive(); i++ {
		DoFight(w, []*Player{a}, []*Player{b})
	}
	if !b.IsAlive() && a.IsAlive() {
		assert.Equal(t, gear.Machete, a.Weapon().Name(),
			"the strictly better machete should be pillaged")
	}
}

func TestSleepingDefenderHasNoInitiative(t *testing.T) {
	a := New("Glimmer", 1, "she")
	b := New("Woof", 8, "he")
	w, _ := testWorld(17, a, b)
	b.AddStatus(StatusSleeping)

	DoFight(w, []*Player{a}, []*Player{b})
	assert.False(t, b.Has(StatusSleeping) && b.IsAlive() && b.Health() == 1,
		"an attacked sleeper wakes or takes damage")
}
