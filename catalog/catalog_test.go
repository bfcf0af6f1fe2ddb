package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestItemValidate(t *testing.T) {
	tests := []struct {
		name    string
		item    Item
		wantErr bool
	}{
		{"weapon", Item{ID: "w", Kind: KindWeapon, Weapon: &WeaponStats{Damage: 2, Speed: 35}}, false},
		{"armor", Item{ID: "a", Kind: KindArmor, Armor: &ArmorStats{Defense: 10}}, false},
		{"health", Item{ID: "h", Kind: KindHealth, Health: &HealthStats{Heal: 20}}, false},
		{"missing id", Item{Kind: KindHealth, Health: &HealthStats{}}, true},
		{"wrong block", Item{ID: "x", Kind: KindWeapon, Armor: &ArmorStats{}}, true},
		{"two blocks", Item{ID: "x", Kind: KindWeapon, Weapon: &WeaponStats{}, Armor: &ArmorStats{}}, true},
		{"no block", Item{ID: "x", Kind: KindArmor}, true},
		{"starter consumable", Item{ID: "x", Kind: KindHealth, Starter: true, Health: &HealthStats{}}, true},
		{"negative cost", Item{ID: "x", Kind: KindHealth, Cost: -1, Health: &HealthStats{}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogRejectsDuplicates(t *testing.T) {
	h := Item{ID: "p", Kind: KindHealth, Health: &HealthStats{Heal: 1}}
	_, err := New([]Item{h, h})
	assert.Error(t, err)

	w1 := Item{ID: "a", Kind: KindWeapon, Starter: true, Weapon: &WeaponStats{}}
	w2 := Item{ID: "b", Kind: KindWeapon, Starter: true, Weapon: &WeaponStats{}}
	_, err = New([]Item{w1, w2})
	assert.Error(t, err)
}

func TestCatalogLookup(t *testing.T) {
	c, err := New([]Item{
		{ID: "basic", Kind: KindWeapon, Starter: true, Weapon: &WeaponStats{Damage: 1, Speed: 30}},
		{ID: "plasma", Kind: KindWeapon, Cost: 200, UnlockLevel: 2, Weapon: &WeaponStats{Damage: 2, Speed: 35}},
		{ID: "small", Kind: KindHealth, Cost: 50, Health: &HealthStats{Heal: 20}},
	})
	require.NoError(t, err)

	it, ok := c.Lookup("plasma")
	require.True(t, ok)
	assert.Equal(t, 200, it.Cost)

	_, ok = c.Lookup("nope")
	assert.False(t, ok)

	assert.Len(t, c.ByKind(KindWeapon), 2)
	starter, ok := c.Starter(KindWeapon)
	require.True(t, ok)
	assert.Equal(t, "basic", starter.ID)
	_, ok = c.Starter(KindArmor)
	assert.False(t, ok)
}

func TestKindYAML(t *testing.T) {
	var it Item
	err := yaml.Unmarshal([]byte("id: x\nkind: armor\narmor: {defense: 5}\n"), &it)
	require.NoError(t, err)
	assert.Equal(t, KindArmor, it.Kind)
	assert.Equal(t, 5.0, it.Armor.Defense)

	err = yaml.Unmarshal([]byte("id: x\nkind: shield\n"), &it)
	assert.Error(t, err)

	out, err := yaml.Marshal(struct {
		K Kind `yaml:"k"`
	}{KindHealth})
	require.NoError(t, err)
	assert.Equal(t, "k: health\n", string(out))
}
