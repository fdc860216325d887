package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/arena-sim/internal/gear"
)

func TestTrapNeedsIngredients(t *testing.T) {
	p := New("Silas", 6, "he")
	w, _ := testWorld(41, p)

	assert.False(t, p.CanBuildTrap())
	p.BuildAnyTrap(w)
	assert.Empty(t, w.Map.Traps(p.CurrentArea()))

	p.GetItem(gear.NewObject("explosive"))
	assert.True(t, p.CanBuildTrap())
	p.BuildAnyTrap(w)
	require.Len(t, w.Map.Traps(p.CurrentArea()), 1)
	trap := w.Map.Traps(p.CurrentArea())[0].(*Trap)
	assert.Equal(t, ExplosiveTrap, trap.Kind)
	assert.False(t, p.HasItem("explosive"), "the charge is spent on the build")
}

func TestStakeTrapNeedsBladeAndTreeCover(t *testing.T) {
	p := New("Cecelia", 8, "she")
	w, _ := testWorld(43, p)

	p.GetItem(gear.NewObject("rope"))
	p.GetItem(gear.NewWeapon(gear.Knife, 1.2))
	assert.False(t, p.CanBuildStakeTrap(), "nothing to cut stakes from at the cornucopia")

	woods := w.Map.Areas[1]
	woods.Terrain = "forest"
	w.Map.MovePlayer(p, woods)
	assert.True(t, p.CanBuildStakeTrap())

	p.BuildAnyTrap(w)
	require.Len(t, w.Map.Traps(woods), 1)
	trap := w.Map.Traps(woods)[0].(*Trap)
	assert.Equal(t, StakeTrap, trap.Kind)
	assert.False(t, p.HasItem("rope"), "the rope is consumed")
	assert.True(t, p.HasItem(gear.Knife), "the blade is a tool, not an ingredient")
}

func TestTrapIsSpentOnTrigger(t *testing.T) {
	owner := New("Woof", 8, "he")
	victim := New("Blight", 7, "he")
	w, _ := testWorld(45, owner, victim)

	trap := &Trap{Kind: StakeTrap, Owner: owner, Stealth: 0.5, area: victim.CurrentArea()}
	w.Map.AddTrap(trap, victim.CurrentArea())

	trap.Apply(w, victim)
	assert.Empty(t, w.Map.Traps(victim.CurrentArea()))
	assert.True(t, victim.IsAlive(), "stakes wound a healthy tribute, they do not kill")
	assert.True(t, victim.Has(StatusTrapped), "the pit holds the survivor")
}

func TestSpottedTrapIsRemembered(t *testing.T) {
	owner := New("Gloss", 1, "he")
	visitor := New("Cashmere", 1, "she")
	w, _ := testWorld(47, owner, visitor)

	trap := &Trap{Kind: ExplosiveTrap, Owner: owner, Stealth: 0, area: visitor.CurrentArea()}
	w.Map.AddTrap(trap, visitor.CurrentArea())

	assert.False(t, trap.Check(w, visitor), "a wireless tripline fools nobody")
	// Once spotted, no roll can spring it on the same visitor.
	trap.Stealth = 1
	assert.False(t, trap.Check(w, visitor))
}
