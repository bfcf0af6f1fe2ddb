// Package catalog holds the shop item definitions
package catalog

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Kind tags which stat block an Item carries
type Kind int

const (
	KindWeapon Kind = iota
	KindArmor
	KindHealth
)

var kindNames = map[Kind]string{
	KindWeapon: "weapon",
	KindArmor:  "armor",
	KindHealth: "health",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return "unknown"
}

// ParseKind resolves a kind name
func ParseKind(s string) (Kind, error) {
	for k, n := range kindNames {
		if n == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown item kind %q", s)
}

// UnmarshalYAML decodes a kind from its name
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseKind(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*k = parsed
	return nil
}

// MarshalYAML encodes a kind as its name
func (k Kind) MarshalYAML() (any, error) {
	return k.String(), nil
}

// Equippable reports whether items of this kind occupy an equipment slot
func (k Kind) Equippable() bool {
	return k == KindWeapon || k == KindArmor
}

// WeaponStats applies to the projectile on equip
type WeaponStats struct {
	Damage int     `yaml:"damage"`
	Speed  float64 `yaml:"speed"`
}

// ArmorStats applies to incoming damage on equip
type ArmorStats struct {
	Defense float64 `yaml:"defense"`
}

// HealthStats applies on use
type HealthStats struct {
	Heal float64 `yaml:"heal"`
}

// Item is a shop entry; exactly one stat block matching Kind is set
type Item struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Kind        Kind   `yaml:"kind"`
	Cost        int    `yaml:"cost"`
	UnlockLevel int    `yaml:"unlock_level"`
	Rarity      string `yaml:"rarity"`
	Starter     bool   `yaml:"starter"` // Owned and equipped at session start

	Weapon *WeaponStats `yaml:"weapon,omitempty"`
	Armor  *ArmorStats  `yaml:"armor,omitempty"`
	Health *HealthStats `yaml:"health,omitempty"`
}

var errStatMismatch = errors.New("stat block does not match kind")

// Validate checks the variant invariant
func (it Item) Validate() error {
	if it.ID == "" {
		return errors.New("item without id")
	}
	if it.Cost < 0 || it.UnlockLevel < 0 {
		return fmt.Errorf("%s: negative cost or unlock level", it.ID)
	}
	set := 0
	for _, p := range []bool{it.Weapon != nil, it.Armor != nil, it.Health != nil} {
		if p {
			set++
		}
	}
	ok := set == 1 &&
		(it.Kind != KindWeapon || it.Weapon != nil) &&
		(it.Kind != KindArmor || it.Armor != nil) &&
		(it.Kind != KindHealth || it.Health != nil)
	if !ok {
		return fmt.Errorf("%s (%s): %w", it.ID, it.Kind, errStatMismatch)
	}
	if it.Starter && !it.Kind.Equippable() {
		return fmt.Errorf("%s: starter items must be equippable", it.ID)
	}
	return nil
}
