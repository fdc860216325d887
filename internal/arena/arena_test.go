package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/arena-sim/internal/entropy"
	"github.com/talgya/arena-sim/internal/gear"
)

type fakeOccupant struct {
	name string
	area *Area
	dest *Area
}

func (f *fakeOccupant) Name() string          { return f.name }
func (f *fakeOccupant) CurrentArea() *Area    { return f.area }
func (f *fakeOccupant) SetCurrentArea(a *Area) { f.area = a }
func (f *fakeOccupant) Destination() *Area    { return f.dest }

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(GenConfig{Seed: 7, Size: 6})
	b := Generate(GenConfig{Seed: 7, Size: 6})
	require.Len(t, a.Areas, 6)
	for i := range a.Areas {
		assert.Equal(t, a.Areas[i].Name(), b.Areas[i].Name())
		assert.Equal(t, a.Areas[i].ForagePotential, b.Areas[i].ForagePotential)
	}
	assert.True(t, a.Start().IsStart())
	assert.Equal(t, StartAreaName, a.Start().Name())
}

func TestDuplicateTerrainGetsNumberedNames(t *testing.T) {
	m := Generate(GenConfig{Seed: 3, Size: 12})
	seen := map[string]bool{}
	for _, a := range m.Areas {
		assert.False(t, seen[a.Name()], "area names must be unique: %s", a.Name())
		seen[a.Name()] = true
	}
}

func TestMovePlayerUpdatesRosters(t *testing.T) {
	m := Generate(GenConfig{Seed: 5, Size: 4})
	o := &fakeOccupant{name: "x"}
	m.AddPlayer(o)
	assert.Equal(t, m.Start(), o.CurrentArea())

	dest := m.Areas[1]
	m.MovePlayer(o, dest)
	assert.Equal(t, dest, o.CurrentArea())
	assert.Empty(t, m.Start().Players)
	assert.Len(t, dest.Players, 1)
}

func TestRemoveAbsentPlayerFails(t *testing.T) {
	m := Generate(GenConfig{Seed: 5, Size: 4})
	o := &fakeOccupant{name: "ghost", area: m.Areas[1]}
	assert.Error(t, m.RemovePlayer(o))
}

func TestPickBestItemUsesEstimate(t *testing.T) {
	m := Generate(GenConfig{Seed: 5, Size: 4})
	cheap := gear.NewObject("rope")
	dear := gear.NewWeapon(gear.Axe, 3)
	m.AddLoot(cheap, m.Start())
	m.AddLoot(dear, m.Start())

	got := m.PickBestItem(m.Start(), func(item gear.Item) float64 {
		if item == dear {
			return 2
		}
		return 0.1
	})
	assert.Equal(t, dear, got)
}

func TestStockCornucopiaScalesWithRoster(t *testing.T) {
	m := Generate(GenConfig{Seed: 9, Size: 4})
	m.StockCornucopia(entropy.NewSource(9), 24)
	assert.NotEmpty(t, m.Weapons(m.Start()))
	assert.NotEmpty(t, m.Bags(m.Start()))
	assert.Greater(t, len(m.Start().Loot), 20)
}

func TestForageRespectsPotential(t *testing.T) {
	m := Generate(GenConfig{Seed: 11, Size: 8})
	rng := entropy.NewSource(11)

	var barren *Area
	for _, a := range m.Areas {
		if a.ForagePotential == 0 {
			barren = a
			break
		}
	}
	require.NotNil(t, barren, "the cornucopia at least never yields forage")
	o := &fakeOccupant{name: "x", area: barren}
	for i := 0; i < 20; i++ {
		assert.Nil(t, m.GetForage(rng, o))
	}
}
