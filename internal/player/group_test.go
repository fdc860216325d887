package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/arena-sim/internal/gear"
)

func TestFormGroupGathersMatchingAllies(t *testing.T) {
	a := New("Cato", 2, "he")
	b := New("Clove", 2, "she")
	c := New("Marvel", 1, "he")
	w, _ := testWorld(91, a, b, c)
	a.NewAlly(w, b)

	loot := lootStrategy()
	a.strategy = loot
	b.strategy = lootStrategy()
	c.strategy = lootStrategy() // not allied, never joins

	g := FormGroup(w, a)
	require.Len(t, g.Members, 2)
	assert.Contains(t, g.Members, a)
	assert.Contains(t, g.Members, b)
}

func TestFormGroupSkipsDissenters(t *testing.T) {
	a := New("Glimmer", 1, "she")
	b := New("Marvel", 1, "he")
	w, _ := testWorld(93, a, b)
	a.NewAlly(w, b)

	a.strategy = lootStrategy()
	b.strategy = hideStrategy()
	g := FormGroup(w, a)
	assert.Len(t, g.Members, 1)
}

func TestGroupCourageAndDangerosity(t *testing.T) {
	a := New("Brutus", 2, "he")
	b := New("Enobaria", 2, "she")
	w, _ := testWorld(95, a, b)
	a.GetWeapon(w, gear.NewWeapon(gear.Sword, 2))

	g := &Group{Members: []*Player{a, b}}
	assert.InDelta(t, a.Dangerosity(w)+b.Dangerosity(w), g.Dangerosity(w), 1e-9)
	assert.InDelta(t, maxf(a.Courage(w), b.Courage(w)), g.Courage(w), 1e-9)
}

func TestGroupJudgesOutsidersAsOne(t *testing.T) {
	a := New("Cashmere", 1, "she")
	b := New("Gloss", 1, "he")
	outsider := New("Beetee", 3, "he")
	w, _ := testWorld(99, a, b, outsider)
	_ = w

	g := &Group{Members: []*Player{a, b}}
	a.Relation(outsider).SetAllied(true)
	outsider.Relation(a).SetAllied(true)

	// One member's private truce does not bind the party.
	assert.False(t, g.RelationWith(outsider).Allied())
	require.Len(t, g.Enemies(), 1)
	assert.Equal(t, outsider, g.Enemies()[0])

	b.Relation(outsider).SetAllied(true)
	assert.True(t, g.RelationWith(outsider).Allied())
	assert.Empty(t, g.Enemies())

	// Friendship toward the party is the mean over the pairs.
	a.Relation(outsider).AddFriendship(0.8)
	assert.InDelta(t, 0.4, g.RelationWith(outsider).Friendship(), 1e-9)
}

func TestGroupLootNarratesTheUnserved(t *testing.T) {
	a := New("Chaff", 11, "he")
	b := New("Seeder", 11, "she")
	w, out := testWorld(97, a, b)
	a.NewAlly(w, b)

	// One item for two looters: somebody comes up empty.
	w.Map.AddLoot(gear.NewObject("rope"), a.CurrentArea())

	g := &Group{Members: []*Player{a, b}}
	g.Loot(w)
	w.Log.Tell()

	text := out.String()
	assert.Contains(t, text, "picks up")
	assert.Contains(t, text, "can't find anything useful")
	assert.True(t, a.HasItem("rope") || b.HasItem("rope"))
}
