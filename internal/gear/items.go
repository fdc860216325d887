// Package gear holds the item value objects: weapons, food, bags,
// bottles, poisons and plain objects. An item belongs to exactly one
// container at a time (area loot, an agent's kit, or the weapon slot);
// moving it is always a remove-then-add pair on the owners.
package gear

import "strings"

// Item is anything that can be looted, carried or dropped.
type Item interface {
	Name() string
	LongName() string
	SetLongName(string)
}

type base struct {
	name     string
	longName string
}

func newBase(name string) base {
	long := "a " + name
	if strings.ContainsRune("aeiou", rune(name[0])) {
		long = "an " + name
	}
	if strings.HasSuffix(name, "s") {
		long = name
	}
	return base{name: name, longName: long}
}

func (b *base) Name() string         { return b.name }
func (b *base) LongName() string     { return b.longName }
func (b *base) SetLongName(s string) { b.longName = s }

// Weapon multiplies its holder's damage. Small weapons fit in a bag.
type Weapon struct {
	base
	DamageMult float64
	Small      bool
	Poison     *Poison
}

// NewWeapon creates a weapon; smallness derives from its name.
func NewWeapon(name string, damageMult float64) *Weapon {
	return &Weapon{
		base:       newBase(name),
		DamageMult: damageMult,
		Small:      name == Knife || name == Hatchet,
	}
}

// BareHands is the weapon every agent falls back to. Each agent owns
// its own instance so long names and poison never leak across holders.
func BareHands() *Weapon {
	w := NewWeapon(HandsName, 1)
	w.longName = "bare hands"
	return w
}

// IsHands reports whether the weapon is the bare-hands fallback.
func (w *Weapon) IsHands() bool { return w.name == HandsName }

// Food restores stomach by Value when eaten; may carry a poison.
type Food struct {
	base
	Value  float64
	Poison *Poison
}

// NewFood creates a food item.
func NewFood(name string, value float64) *Food {
	return &Food{base: newBase(name), Value: value}
}

// IsPoisonous reports whether eating the food ingests a poison.
func (f *Food) IsPoisonous() bool { return f.Poison != nil }

// Bag carries other items. An agent keeps at most one working bag and
// merges extras into it.
type Bag struct {
	base
	Content []Item
}

// NewBag creates a bag with the given content.
func NewBag(content []Item) *Bag {
	return &Bag{base: newBase("bag"), Content: content}
}

// Remove takes an item out of the bag. Returns false when absent.
func (b *Bag) Remove(item Item) bool {
	for i, it := range b.Content {
		if it == item {
			b.Content = append(b.Content[:i], b.Content[i+1:]...)
			return true
		}
	}
	return false
}

// Bottle holds water; Fill is the filled fraction in [0,1].
type Bottle struct {
	base
	Fill float64
}

// NewBottle creates a bottle with the given fill fraction.
func NewBottle(fill float64) *Bottle {
	return &Bottle{base: newBase("bottle"), Fill: fill}
}

// PoisonVial applies its poison to a bladed weapon.
type PoisonVial struct {
	base
	Poison *Poison
}

// NewPoisonVial wraps a poison into a carryable vial.
func NewPoisonVial(p *Poison) *PoisonVial {
	return &PoisonVial{base: newBase(p.Name + " vial"), Poison: p}
}

// Object is a plain item with no behavior of its own: rope, explosive,
// bandages, antiseptic, antidote...
type Object struct {
	base
}

// NewObject creates a plain item.
func NewObject(name string) *Object {
	return &Object{base: newBase(name)}
}

// Poison ticks damage on its victim each upkeep until the dose runs out.
type Poison struct {
	Name     string
	LongName string
	Amount   int
	Damage   float64
}

// NewPoison creates a poison with a remaining dose and per-tick damage.
func NewPoison(name string, amount int, damage float64) *Poison {
	return &Poison{Name: name, LongName: "the " + name, Amount: amount, Damage: damage}
}

// Clone copies the poison so a transferred dose decays independently.
func (p *Poison) Clone() *Poison {
	c := *p
	return &c
}
