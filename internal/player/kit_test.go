package player

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/arena-sim/internal/gear"
)

// countItems totals every item in the world: area loot (bag contents
// included) plus each player's kit.
func countItems(w *World, players ...*Player) int {
	n := 0
	var tally func(items []gear.Item)
	tally = func(items []gear.Item) {
		for _, item := range items {
			n++
			if bag, ok := item.(*gear.Bag); ok {
				tally(bag.Content)
			}
		}
	}
	for _, a := range w.Map.Areas {
		tally(a.Loot)
	}
	for _, p := range players {
		tally(p.Kit.equipment)
		if !p.Kit.weapon.IsHands() {
			n++
		}
	}
	return n
}

func TestItemConservationAcrossLootAndDrop(t *testing.T) {
	p := New("Lila", 4, "she")
	w, _ := testWorld(51, p)
	area := p.CurrentArea()

	w.Map.AddLoot(gear.NewWeapon(gear.Trident, 2.5), area)
	w.Map.AddLoot(gear.NewFood("rations", 0.5), area)
	total := countItems(w, p)

	p.Loot(w)
	assert.Equal(t, total, countItems(w, p))
	p.Loot(w)
	assert.Equal(t, total, countItems(w, p))
	p.DropWeapon(w)
	assert.Equal(t, total, countItems(w, p))
}

func TestItemConservationOnDeath(t *testing.T) {
	p := New("Vera", 3, "she")
	w, _ := testWorld(53, p)

	p.GetWeapon(w, gear.NewWeapon(gear.Mace, 2))
	p.GetItem(gear.NewBag([]gear.Item{gear.NewFood("rations", 0.6)}))
	total := countItems(w, p)

	p.AddHealth(w, -2, "falls")
	assert.Equal(t, total, countItems(w, p))
}

func TestGetWeaponKeepsTheBetterOne(t *testing.T) {
	p := New("Ajax", 3, "he")
	w, _ := testWorld(55, p)

	sword := gear.NewWeapon(gear.Sword, 2)
	p.GetWeapon(w, sword)
	assert.Equal(t, sword, p.Weapon())

	worse := gear.NewWeapon(gear.Club, 1.2)
	p.GetWeapon(w, worse)
	assert.Equal(t, sword, p.Weapon(), "a weaker weapon never replaces the wield")
	assert.True(t, p.HasItem(gear.Club), "but it is kept as cargo")

	knife := gear.NewWeapon(gear.Knife, 1.1)
	p.Kit.weapon = gear.BareHands()
	p.GetWeapon(w, knife)
	assert.Equal(t, knife, p.Weapon())
}

func TestCheckBagAdoptsBetterWeapon(t *testing.T) {
	p := New("Glimmer", 1, "she")
	w, _ := testWorld(57, p)

	hatchet := gear.NewWeapon(gear.Hatchet, 1.8)
	p.GetItem(gear.NewBag([]gear.Item{hatchet, gear.NewObject("rope")}))
	require.True(t, p.Has(StatusUnchecked))

	p.CheckBag(w)
	assert.False(t, p.Has(StatusUnchecked))
	assert.Equal(t, hatchet, p.Weapon())
	assert.True(t, p.HasItem("rope"))
}

func TestEstimateRanksByNeed(t *testing.T) {
	p := New("Finn", 4, "he")
	w, _ := testWorld(59, p)
	_ = w

	// Well-fed and healthy: food and medicine are near worthless.
	assert.InDelta(t, 0.0, p.Estimate(gear.NewFood("rations", 0.8)), 1e-9)
	assert.InDelta(t, 0.1, p.Estimate(gear.NewObject("bandages")), 1e-9)

	p.Body.stomach = 0.2
	assert.InDelta(t, 0.8, p.Estimate(gear.NewFood("rations", 0.8)), 1e-9)

	p.AddStatus(StatusArmWound)
	assert.InDelta(t, 1.0, p.Estimate(gear.NewObject("bandages")), 1e-9)

	// A weapon is worth its improvement over the wield.
	assert.InDelta(t, 1.5, p.Estimate(gear.NewWeapon(gear.Axe, 2.5)), 1e-9)

	// Bags are all about the contents.
	assert.InDelta(t, 0.0, p.Estimate(gear.NewBag(nil)), 1e-9)
	assert.InDelta(t, 1.0, p.Estimate(gear.NewBag([]gear.Item{gear.NewBottle(1)})), 1e-9)
}

func TestDineStopsOnPoison(t *testing.T) {
	p := New("Mags", 4, "she")
	w, _ := testWorld(61, p)
	p.Body.stomach = 0

	bad := gear.NewFood("berries", 0.1)
	bad.Poison = gear.NewPoison("berries poison", 3, 0.05)
	p.GetItem(bad)
	p.GetItem(gear.NewFood("roots", 0.1))

	p.Dine(w)
	assert.True(t, p.IsPoisoned())
}
