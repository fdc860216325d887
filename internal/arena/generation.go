package arena

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/arena-sim/internal/entropy"
	"github.com/talgya/arena-sim/internal/gear"
)

// GenConfig controls arena generation.
type GenConfig struct {
	Seed int64
	Size int // total area count, cornucopia included
}

// DefaultGenConfig returns the standard five-area arena.
func DefaultGenConfig() GenConfig {
	return GenConfig{Seed: 1, Size: 5}
}

type terrainKind struct {
	name  string
	foods []string
	water bool
}

var terrains = []terrainKind{
	{name: "ruins", foods: []string{"roots"}},
	{name: "forest", foods: []string{"roots", "fruits", "mushrooms", "berries"}},
	{name: "plain", foods: []string{"roots", "berries"}},
	{name: "rocks"},
	{name: "jungle", foods: []string{"roots", "fruits"}},
	{name: "river", foods: []string{"roots", "algae"}, water: true},
	{name: "hill", foods: []string{"roots"}},
}

// Generate builds the arena: the cornucopia plus Size-1 wild areas.
// Terrain selection and forage richness are driven by simplex noise so
// a seed fully determines the map. Duplicate terrain gets an id suffix.
func Generate(cfg GenConfig) *Map {
	terrainNoise := opensimplex.NewNormalized(cfg.Seed)
	forageNoise := opensimplex.NewNormalized(cfg.Seed + 1)

	start := &Area{Terrain: "cornucopia", ID: 1}
	m := &Map{start: start}
	m.Areas = append(m.Areas, start)

	counts := map[string]int{}
	for i := 0; i < cfg.Size-1; i++ {
		x := float64(i) * 0.731
		idx := int(terrainNoise.Eval2(x, 0.5) * float64(len(terrains)))
		if idx >= len(terrains) {
			idx = len(terrains) - 1
		}
		kind := terrains[idx]
		counts[kind.name]++

		area := &Area{
			Terrain: kind.name,
			ID:      counts[kind.name],
			Foods:   kind.foods,
			Water:   kind.water,
		}
		if len(kind.foods) > 0 {
			area.ForagePotential = 0.3 + 0.6*octaveNoise(forageNoise, x, 1.3, 3, 1.0, 0.5)
		}
		m.Areas = append(m.Areas, area)
	}
	return m
}

// octaveNoise layers noise octaves, the usual fractal sum.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total, amplitude, maxValue := 0.0, 1.0, 0.0
	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxValue += amplitude
		amplitude *= persistence
		frequency *= 2
	}
	return total / maxValue
}

// StockCornucopia seeds the start area with the opening loot pool:
// weapons, bags, bottles, rations and crafting supplies scaled to the
// roster size.
func (m *Map) StockCornucopia(rng *entropy.Source, playerCount int) {
	weaponNames := []string{
		gear.Axe, gear.Sword, gear.Machete, gear.Knife, gear.Hatchet,
		gear.Trident, gear.Spear, gear.Club, gear.Mace,
	}
	for i := 0; i < playerCount/2+2; i++ {
		name := weaponNames[rng.Intn(len(weaponNames))]
		m.AddLoot(gear.NewWeapon(name, 1+rng.Float()*2), m.start)
	}
	for i := 0; i < playerCount/3+1; i++ {
		content := []gear.Item{
			gear.NewFood("rations", rng.Float()/2+0.5),
			gear.NewBottle(rng.Float()),
		}
		if rng.Chance(0.5) {
			content = append(content, gear.NewObject("bandages"))
		}
		if rng.Chance(0.3) {
			content = append(content, gear.NewObject("rope"))
		}
		if rng.Chance(0.2) {
			content = append(content, gear.NewPoisonVial(
				gear.NewPoison("nightlock paste", 3+rng.Intn(5), rng.Float()/10+0.05)))
		}
		m.AddLoot(gear.NewBag(content), m.start)
	}
	for i := 0; i < playerCount/2; i++ {
		m.AddLoot(gear.NewFood("rations", rng.Float()/2+0.5), m.start)
	}
	extras := []string{"bandages", "antiseptic", "antidote", "rope", "explosive"}
	for i := 0; i < playerCount/2+1; i++ {
		m.AddLoot(gear.NewObject(extras[rng.Intn(len(extras))]), m.start)
	}
}
