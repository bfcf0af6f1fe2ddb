package system

import (
	"errors"
	"fmt"

	"github.com/mittubose/Grabby-Hand-rat-killer/catalog"
	"github.com/mittubose/Grabby-Hand-rat-killer/component"
	"github.com/mittubose/Grabby-Hand-rat-killer/event"
	"github.com/mittubose/Grabby-Hand-rat-killer/parameter"
)

// Store errors; every failure leaves coins and inventory untouched
var (
	ErrUnknownItem       = errors.New("unknown item")
	ErrInsufficientCoins = errors.New("insufficient coins")
	ErrLevelTooLow       = errors.New("level too low")
	ErrAlreadyOwned      = errors.New("already owned")
	ErrNotOwned          = errors.New("not owned")
	ErrOutOfStock        = errors.New("out of stock")
	ErrNotEquippable     = errors.New("item cannot be equipped")
	ErrNotUsable         = errors.New("item cannot be used")
)

// Store sells catalog items against the player's coins and applies equipment
type Store struct {
	env  Env
	cat  *catalog.Catalog
	prog *component.Progression
	inv  *component.Inventory
	body *component.Body
}

// NewStore creates a store and equips the catalog's starter items
func NewStore(env Env, cat *catalog.Catalog, prog *component.Progression, inv *component.Inventory, body *component.Body) *Store {
	s := &Store{env: env, cat: cat, prog: prog, inv: inv, body: body}
	s.Init()
	return s
}

// Init restores the starting inventory
func (s *Store) Init() {
	*s.inv = *component.NewInventory()
	s.inv.ProjectileDamage = parameter.DefaultProjectileDamage
	s.inv.ProjectileSpeed = parameter.DefaultProjectileSpeed
	for _, k := range []catalog.Kind{catalog.KindWeapon, catalog.KindArmor} {
		if it, ok := s.cat.Starter(k); ok {
			s.inv.Owned.Put(it.ID)
			s.apply(it)
		}
	}
}

// Catalog returns the items on sale
func (s *Store) Catalog() *catalog.Catalog {
	return s.cat
}

// Purchase pays for id; equipment becomes owned, consumables stack
// The level gate is checked before coins
func (s *Store) Purchase(id string) error {
	it, ok := s.cat.Lookup(id)
	if !ok {
		return fmt.Errorf("purchase %q: %w", id, ErrUnknownItem)
	}
	if it.Kind.Equippable() && s.inv.Owns(id) {
		return fmt.Errorf("purchase %s: %w", id, ErrAlreadyOwned)
	}
	if s.prog.Level < it.UnlockLevel {
		return fmt.Errorf("purchase %s: %w (need level %d)", id, ErrLevelTooLow, it.UnlockLevel)
	}
	if s.prog.Coins < it.Cost {
		return fmt.Errorf("purchase %s: %w (need %d)", id, ErrInsufficientCoins, it.Cost)
	}
	s.prog.Coins -= it.Cost
	if it.Kind.Equippable() {
		s.inv.Owned.Put(id)
	} else {
		s.inv.Quantities[id]++
	}
	s.env.Queue.Emit(event.EventItemPurchased, &event.ItemPayload{ItemID: id, Kind: it.Kind.String()})
	return nil
}

// Equip puts an owned weapon or armor into its slot and applies its stats
func (s *Store) Equip(id string) error {
	it, ok := s.cat.Lookup(id)
	if !ok {
		return fmt.Errorf("equip %q: %w", id, ErrUnknownItem)
	}
	if !it.Kind.Equippable() {
		return fmt.Errorf("equip %s: %w", id, ErrNotEquippable)
	}
	if !s.inv.Owns(id) {
		return fmt.Errorf("equip %s: %w", id, ErrNotOwned)
	}
	s.apply(it)
	s.env.Queue.Emit(event.EventItemEquipped, &event.ItemPayload{ItemID: id, Kind: it.Kind.String()})
	return nil
}

// Buy purchases id and equips it when it is equipment
func (s *Store) Buy(id string) error {
	if err := s.Purchase(id); err != nil {
		return err
	}
	it, _ := s.cat.Lookup(id)
	if it.Kind.Equippable() {
		return s.Equip(id)
	}
	return nil
}

// Use consumes one health item and returns the health restored
func (s *Store) Use(id string) (float64, error) {
	it, ok := s.cat.Lookup(id)
	if !ok {
		return 0, fmt.Errorf("use %q: %w", id, ErrUnknownItem)
	}
	if it.Kind != catalog.KindHealth {
		return 0, fmt.Errorf("use %s: %w", id, ErrNotUsable)
	}
	if s.inv.Quantities[id] <= 0 {
		return 0, fmt.Errorf("use %s: %w", id, ErrOutOfStock)
	}
	s.inv.Quantities[id]--
	healed := s.body.Heal(it.Health.Heal)
	s.env.Queue.Emit(event.EventItemUsed, &event.ItemPayload{ItemID: id, Kind: it.Kind.String()})
	return healed, nil
}

func (s *Store) apply(it catalog.Item) {
	switch it.Kind {
	case catalog.KindWeapon:
		s.inv.Weapon = it.ID
		s.inv.ProjectileDamage = it.Weapon.Damage
		s.inv.ProjectileSpeed = it.Weapon.Speed
	case catalog.KindArmor:
		s.inv.Armor = it.ID
		s.inv.Defense = it.Armor.Defense
	}
}
