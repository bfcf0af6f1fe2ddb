package component

import "github.com/zyedidia/generic/mapset"

// Inventory tracks owned equipment, stacked consumables and the equipped slots
type Inventory struct {
	Owned      mapset.Set[string]
	Quantities map[string]int

	Weapon string
	Armor  string

	ProjectileDamage int
	ProjectileSpeed  float64
	Defense          float64
}

// NewInventory creates an empty inventory
func NewInventory() *Inventory {
	return &Inventory{
		Owned:      mapset.New[string](),
		Quantities: make(map[string]int),
	}
}

// Owns reports whether id is owned equipment
func (inv *Inventory) Owns(id string) bool {
	return inv.Owned.Has(id)
}

// Quantity returns the stack size of a consumable
func (inv *Inventory) Quantity(id string) int {
	return inv.Quantities[id]
}
