package gear

import "github.com/talgya/arena-sim/internal/entropy"

// Weapon name constants. "fire" and "default" index the wound tables
// for hazards and unlisted weapons.
const (
	Axe       = "axe"
	Sword     = "sword"
	Machete   = "machete"
	Knife     = "knife"
	Hatchet   = "hatchet"
	Trident   = "trident"
	Spear     = "spear"
	Club      = "club"
	Mace      = "mace"
	HandsName = "bare hands"

	FireWeapon    = "fire"
	DefaultWeapon = "default"
)

type woundChance struct {
	element string
	proba   float64
}

var weaponWoundProba = map[string][]woundChance{
	Axe:           {{"arm", 0.4}, {"leg", 0.1}},
	Sword:         {{"arm", 0.3}, {"leg", 0.2}, {"belly", 0.2}},
	Machete:       {{"arm", 0.25}, {"leg", 0.1}, {"belly", 0.15}},
	Knife:         {{"arm", 0.2}, {"leg", 0.05}, {"belly", 0.3}},
	Hatchet:       {{"arm", 0.2}, {"leg", 0.05}, {"belly", 0.3}},
	Trident:       {{"arm", 0.4}, {"leg", 0.2}, {"belly", 0.2}},
	Spear:         {{"arm", 0.3}, {"leg", 0.15}, {"belly", 0.15}},
	HandsName:     {{"arm", 0.2}, {"leg", 0.2}},
	Club:          {{"head", 0.4}, {"arm", 0.1}, {"leg", 0.05}},
	Mace:          {{"head", 0.5}, {"arm", 0.2}, {"leg", 0.05}},
	FireWeapon:    {{"burn", 0.9}},
	DefaultWeapon: {{"arm", 0.2}, {"leg", 0.2}},
}

var weaponBleedProba = map[string]float64{
	Axe:       0.5,
	Sword:     0.5,
	Machete:   0.4,
	Knife:     0.3,
	Hatchet:   0.3,
	Trident:   0.4,
	Spear:     0.4,
	HandsName: 0,
	Club:      0,
	Mace:      0,
}

// WeaponWound rolls the body element wounded by a weapon; empty means
// no localized wound.
func WeaponWound(rng *entropy.Source, weaponName string) string {
	table, ok := weaponWoundProba[weaponName]
	if !ok {
		table = weaponWoundProba[DefaultWeapon]
	}
	r := rng.Float()
	for _, wc := range table {
		if r < wc.proba {
			return wc.element
		}
		r -= wc.proba
	}
	return ""
}

// WeaponBleeds rolls whether a hit from the weapon opens a bleeding wound.
func WeaponBleeds(rng *entropy.Source, weaponName string) bool {
	return rng.Float() < weaponBleedProba[weaponName]
}

// CanCarryPoison reports whether a blade can hold a coat of poison.
func CanCarryPoison(weaponName string) bool {
	return weaponBleedProba[weaponName] > 0
}
