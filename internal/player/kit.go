package player

import (
	"fmt"

	"github.com/talgya/arena-sim/internal/gear"
)

// Equipment flattens the kit: loose items plus the content of the
// carried bag. The weapon slot is separate.
func (p *Player) Equipment() []gear.Item {
	var out []gear.Item
	for _, item := range p.Kit.equipment {
		out = append(out, item)
		if bag, ok := item.(*gear.Bag); ok {
			out = append(out, bag.Content...)
		}
	}
	return out
}

// Bag returns the carried bag, nil when none.
func (p *Player) Bag() *gear.Bag {
	for _, item := range p.Kit.equipment {
		if bag, ok := item.(*gear.Bag); ok {
			return bag
		}
	}
	return nil
}

// Bottles lists every carried bottle.
func (p *Player) Bottles() []*gear.Bottle {
	var out []*gear.Bottle
	for _, item := range p.Equipment() {
		if b, ok := item.(*gear.Bottle); ok {
			out = append(out, b)
		}
	}
	return out
}

// HasItem reports whether the kit holds an item of the given name; the
// weapon slot counts.
func (p *Player) HasItem(name string) bool {
	if p.Kit.weapon.Name() == name {
		return true
	}
	for _, item := range p.Equipment() {
		if item.Name() == name {
			return true
		}
	}
	return false
}

// HasCraftingTool reports whether a blade suited to carving is at hand.
func (p *Player) HasCraftingTool() bool {
	return p.HasItem(gear.Knife) || p.HasItem(gear.Hatchet)
}

// HasFood reports whether any food is carried.
func (p *Player) HasFood() bool {
	for _, item := range p.Equipment() {
		if _, ok := item.(*gear.Food); ok {
			return true
		}
	}
	return false
}

// Weapon returns the wielded weapon, bare hands at worst.
func (p *Player) Weapon() *gear.Weapon { return p.Kit.weapon }

// Drops lists everything the player would leave behind when killed:
// equipment plus the wielded weapon, bare hands excluded.
func (p *Player) Drops() []gear.Item {
	var out []gear.Item
	out = append(out, p.Kit.equipment...)
	if !p.Kit.weapon.IsHands() {
		out = append(out, p.Kit.weapon)
	}
	return out
}

// GetItem adds an item to the kit, folding it into the carried bag when
// it fits (small weapons and anything that is not itself a bag).
func (p *Player) GetItem(item gear.Item) {
	if bag, ok := item.(*gear.Bag); ok {
		if own := p.Bag(); own != nil {
			own.Content = append(own.Content, bag.Content...)
			return
		}
		p.Kit.equipment = append(p.Kit.equipment, bag)
		p.AddStatus(StatusUnchecked)
		return
	}
	if own := p.Bag(); own != nil {
		own.Content = append(own.Content, item)
		return
	}
	p.Kit.equipment = append(p.Kit.equipment, item)
}

// RemoveItem takes an item out of the kit wherever it sits. Returns an
// error when the item is not carried, which indicates a bookkeeping bug.
func (p *Player) RemoveItem(item gear.Item) error {
	for i, it := range p.Kit.equipment {
		if it == item {
			p.Kit.equipment = append(p.Kit.equipment[:i], p.Kit.equipment[i+1:]...)
			return nil
		}
	}
	if bag := p.Bag(); bag != nil && bag.Remove(item) {
		return nil
	}
	return fmt.Errorf("%s does not carry %s", p.name, item.Name())
}

// GetWeapon wields a weapon if it beats the current one; the old weapon
// is stowed when small, dropped otherwise.
func (p *Player) GetWeapon(w *World, weapon *gear.Weapon) {
	if weapon.DamageMult <= p.Kit.weapon.DamageMult {
		p.GetItem(weapon)
		return
	}
	old := p.Kit.weapon
	p.Kit.weapon = weapon
	weapon.SetLongName(p.Pronouns.His + " " + weapon.Name())
	if old.IsHands() {
		return
	}
	if old.Small {
		p.GetItem(old)
	} else {
		w.Map.AddLoot(old, p.area)
	}
}

// DropWeapon abandons the wielded weapon on the spot.
func (p *Player) DropWeapon(w *World) {
	if p.Kit.weapon.IsHands() {
		return
	}
	w.Log.Add([]string{p.name, "drops", p.Pronouns.His, p.Kit.weapon.Name(), p.area.At()})
	w.Map.AddLoot(p.Kit.weapon, p.area)
	p.Kit.weapon = gear.BareHands()
}

// Estimate values an item for the looting decisions. Weapons score
// their improvement over the wielded one; consumables score by need.
func (p *Player) Estimate(item gear.Item) float64 {
	switch it := item.(type) {
	case *gear.Weapon:
		return it.DamageMult - p.Kit.weapon.DamageMult
	case *gear.Bag:
		if len(it.Content) > 0 {
			return 1
		}
		return 0
	case *gear.Food:
		return p.Hunger()
	case *gear.Bottle:
		return p.Thirst() * it.Fill
	case *gear.PoisonVial:
		return 0.2
	case *gear.Object:
		switch it.Name() {
		case "bandages", "antiseptic":
			if p.IsWounded() {
				return 1
			}
			return 0.1
		case "antidote":
			if p.IsPoisoned() {
				return 1
			}
			return 0.1
		}
		return 0.2
	}
	return 0.2
}

// EstimateAll returns the best estimate over a loot list, zero when empty.
func (p *Player) EstimateAll(items []gear.Item) float64 {
	best := 0.0
	for _, item := range items {
		if v := p.Estimate(item); v > best {
			best = v
		}
	}
	return best
}

/// Loot grabs from the area pool: the best item when alone, a random one
// in company. A weapon only replaces a strictly better wield.
func (p *Player) Loot(w *World) {
	var item gear.Item
	if len(p.area.Players) == 1 {
		item = w.Map.PickBestItem(p.area, p.Estimate)
	} else {
		item = w.Map.PickItem(w.Rand, p.area)
	}
	if item == nil {
		w.Log.Add([]string{p.name, "can't find anything useful", p.area.At()})
		return
	}
	if weapon, ok := item.(*gear.Weapon); ok && weapon.DamageMult > p.Kit.weapon.DamageMult {
		w.Log.Add([]string{p.name, "picks up", weapon.LongName(), p.area.At()})
		p.GetWeapon(w, weapon)
		return
	}
	w.Log.Add([]string{p.name, "picks up", item.LongName(), p.area.At()})
	p.GetItem(item)
}

// LootWeapon grabs a weapon from the pool, stowing it when it does not
// beat the current wield.
func (p *Player) LootWeapon(w *World) {
	weapon := w.Map.PickWeapon(w.Rand, p.area)
	if weapon == nil {
		w.Log.Add([]string{p.name, "can't find anything useful", p.area.At()})
		return
	}
	w.Log.Add([]string{p.name, "picks up", weapon.LongName(), p.area.At()})
	p.GetWeapon(w, weapon)
}

// LootBag grabs a bag from the pool, falling back to a generic loot.
func (p *Player) LootBag(w *World) {
	bag := w.Map.PickBag(w.Rand, p.area)
	if bag == nil {
		p.Loot(w)
		return
	}
	w.Log.Add([]string{p.name, "grabs", bag.LongName(), p.area.At()})
	p.GetItem(bag)
}

// CheckBag rummages through a freshly looted bag: merge extras into the
// working bag and adopt any weapon inside that beats the wield.
func (p *Player) CheckBag(w *World) {
	if !p.Has(StatusUnchecked) {
		return
	}
	p.RemoveStatus(StatusUnchecked)
	bag := p.Bag()
	if bag == nil {
		return
	}
	var rest []gear.Item
	for _, item := range bag.Content {
		if weapon, ok := item.(*gear.Weapon); ok && weapon.DamageMult > p.Kit.weapon.DamageMult {
			w.Log.New([]string{p.name, "finds", weapon.LongName(), "in", p.Pronouns.His, "bag"})
			p.GetWeapon(w, weapon)
			continue
		}
		rest = append(rest, item)
	}
	bag.Content = rest
}

// Patch treats wounds during a break. Antiseptic cures cleanly, water
// washes, bandages dress; dirty patching costs a slice of max health.
func (p *Player) Patch(w *World, wound string) {
	verb := "patches"
	tool := ""
	switch {
	case p.HasItem("antiseptic"):
		tool = "with antiseptic"
		p.consumeObject("antiseptic")
		p.Body.maxHealth *= 0.99
	case p.area.HasWater():
		tool = "with water"
		p.Body.maxHealth *= 0.99
	case p.useBottleWater(0.2):
		tool = "with water"
		p.Body.maxHealth *= 0.99
	default:
		p.Body.maxHealth *= 0.95
	}
	if p.HasItem("bandages") {
		verb = "dresses"
		p.consumeObject("bandages")
	} else if tool == "" {
		tool = "with moss and cloth"
	}
	line := []string{p.name, verb, p.Pronouns.His, wound}
	if tool != "" {
		line = append(line, tool)
	}
	w.Log.Add(line)
	p.RemoveStatus(wound)
}

func (p *Player) consumeObject(name string) {
	for _, item := range p.Equipment() {
		if item.Name() == name {
			_ = p.RemoveItem(item)
			return
		}
	}
}

// TakeABreak is the housekeeping bundle run whenever the agent has a
// quiet moment: check the bag, take an antidote, patch the worst wound,
// refill bottles, coat the blade.
func (p *Player) TakeABreak(w *World) {
	p.CheckBag(w)
	if p.IsPoisoned() && p.HasItem("antidote") {
		p.ConsumeAntidote(w)
	}
	if p.Has(StatusBleeding) {
		p.Patch(w, StatusBleeding)
	} else if wounds := p.Wounds(); len(wounds) > 0 && (p.HasItem("bandages") || p.HasItem("antiseptic")) {
		p.Patch(w, wounds[0])
	}
	p.FillBottles(w)
	p.PoisonWeapon(w)
}

// ConsumeAntidote cures the worst active poison, measured by the damage
// still to come.
func (p *Player) ConsumeAntidote(w *World) {
	if len(p.Body.poisons) == 0 {
		return
	}
	worst := 0
	for i, poison := range p.Body.poisons {
		if poison.Damage*float64(poison.Amount) > p.Body.poisons[worst].Damage*float64(p.Body.poisons[worst].Amount) {
			worst = i
		}
	}
	cured := p.Body.poisons[worst]
	p.Body.poisons = append(p.Body.poisons[:worst], p.Body.poisons[worst+1:]...)
	p.consumeObject("antidote")
	w.Log.New([]string{p.name, "takes an antidote against", cured.LongName})
}

// FillBottles tops up every carried bottle when standing at water.
func (p *Player) FillBottles(w *World) {
	if !p.area.HasWater() {
		return
	}
	filled := false
	for _, b := range p.Bottles() {
		if b.Fill < 1 {
			b.Fill = 1
			filled = true
		}
	}
	if filled {
		w.Log.Add([]string{p.name, "fills", p.Pronouns.His, "bottles", p.area.At()})
	}
}

// WaterUpkeep covers the phase's drink: free at a water area, otherwise
// from carried bottles.
func (p *Player) WaterUpkeep(w *World) {
	if p.Body.water >= 1 {
		return
	}
	if p.area != nil && p.area.HasWater() {
		p.Body.water = 2
		return
	}
	need := 1 - p.Body.water
	if p.useBottleWater(need) {
		p.Body.water = 1
	}
}

// useBottleWater drains up to amount from carried bottles; reports
// whether the full amount was available. A bottle unit is half a day of
// water, so the draw is doubled against the fill fraction.
func (p *Player) useBottleWater(amount float64) bool {
	need := amount
	for _, b := range p.Bottles() {
		draw := minf(need, b.Fill/2)
		b.Fill -= draw * 2
		need -= draw
		if need <= 0 {
			return true
		}
	}
	return need <= 0
}

// Craft carves a weapon from local wood: a spear with a proper tool, a
// club without. The result only replaces a weaker wield.
func (p *Player) Craft(w *World) {
	name := gear.Club
	mult := 1 + w.Rand.Float()
	if p.HasCraftingTool() {
		name = gear.Spear
		mult += w.Rand.Float()
	}
	weapon := gear.NewWeapon(name, mult)
	if weapon.DamageMult <= p.Kit.weapon.DamageMult {
		w.Log.Add([]string{p.name, "tries to craft a better weapon", p.area.At()})
		return
	}
	w.Log.Add([]string{p.name, "crafts", weapon.LongName(), p.area.At()})
	p.GetWeapon(w, weapon)
}

// Forage gathers whatever the area offers and eats or stores it.
func (p *Player) Forage(w *World) {
	food := w.Map.GetForage(w.Rand, p)
	if food == nil {
		w.Log.Add([]string{p.name, "finds nothing to eat", p.area.At()})
		return
	}
	w.Log.Add([]string{p.name, "finds", food.LongName(), p.area.At()})
	if p.Hunger() > 0 {
		p.Eat(w, food)
	} else {
		p.GetItem(food)
	}
}

// Dine eats carried food best-first until the stomach is full or a
// poisoned bite interrupts the meal.
func (p *Player) Dine(w *World) {
	p.TakeABreak(w)
	var foods []*gear.Food
	for _, item := range p.Equipment() {
		if f, ok := item.(*gear.Food); ok {
			foods = append(foods, f)
		}
	}
	if len(foods) == 0 {
		w.Log.Add([]string{p.name, "has nothing to eat"})
		return
	}
	for i := 0; i < len(foods)-1; i++ {
		for j := i + 1; j < len(foods); j++ {
			if foods[j].Value > foods[i].Value {
				foods[i], foods[j] = foods[j], foods[i]
			}
		}
	}
	w.Log.Add([]string{p.name, "eats", p.Pronouns.His, "supplies", p.area.At()})
	for _, f := range foods {
		if p.Hunger() <= 0 {
			break
		}
		poisoned := p.Eat(w, f)
		if poisoned {
			break
		}
	}
}

// Eat consumes one food item; reports whether it was poisoned.
func (p *Player) Eat(w *World, food *gear.Food) bool {
	_ = p.RemoveItem(food) // may not be carried when eaten fresh
	p.ConsumeNutriments(w, food.Value)
	if food.IsPoisonous() {
		p.AddPoison(w, food.Poison.Clone())
		return true
	}
	return false
}
