package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mittubose/Grabby-Hand-rat-killer/event"
)

func TestStoreStartsWithStarters(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, "basic", f.inv.Weapon)
	assert.Equal(t, "none", f.inv.Armor)
	assert.Equal(t, 1, f.inv.ProjectileDamage)
	assert.Equal(t, 30.0, f.inv.ProjectileSpeed)
	assert.Zero(t, f.inv.Defense)
	assert.True(t, f.inv.Owns("basic"))
}

func TestPurchaseFailures(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		level int
		coins int
		want  error
	}{
		{"unknown", "rocket", 10, 10000, ErrUnknownItem},
		{"level gate with coins", "plasma", 1, 10000, ErrLevelTooLow},
		{"coins", "plasma", 2, 199, ErrInsufficientCoins},
		{"starter owned", "basic", 1, 10000, ErrAlreadyOwned},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.prog.Level = tt.level
			f.prog.Coins = tt.coins
			err := f.store.Purchase(tt.id)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, tt.coins, f.prog.Coins, "coins untouched")
			assert.Equal(t, "basic", f.inv.Weapon)
			assert.Zero(t, countEvents(f.events(), event.EventItemPurchased))
		})
	}
}

func TestBuyEquipsOnce(t *testing.T) {
	f := newFixture(t)
	f.prog.Level = 2
	f.prog.Coins = 500

	require.NoError(t, f.store.Buy("plasma"))
	assert.Equal(t, 300, f.prog.Coins)
	assert.Equal(t, "plasma", f.inv.Weapon)
	assert.Equal(t, 2, f.inv.ProjectileDamage)
	assert.Equal(t, 35.0, f.inv.ProjectileSpeed)

	require.ErrorIs(t, f.store.Buy("plasma"), ErrAlreadyOwned)
	assert.Equal(t, 300, f.prog.Coins)

	evs := f.events()
	assert.Equal(t, 1, countEvents(evs, event.EventItemPurchased))
	assert.Equal(t, 1, countEvents(evs, event.EventItemEquipped))
}

func TestEquip(t *testing.T) {
	f := newFixture(t)
	require.ErrorIs(t, f.store.Equip("light"), ErrNotOwned)
	require.ErrorIs(t, f.store.Equip("small_potion"), ErrNotEquippable)
	require.ErrorIs(t, f.store.Equip("nope"), ErrUnknownItem)

	f.prog.Level = 2
	f.prog.Coins = 150
	require.NoError(t, f.store.Purchase("light"))
	assert.Equal(t, "none", f.inv.Armor, "purchase alone does not equip")
	require.NoError(t, f.store.Equip("light"))
	assert.Equal(t, 10.0, f.inv.Defense)

	require.NoError(t, f.store.Equip("none"))
	assert.Zero(t, f.inv.Defense)
}

func TestHealthItems(t *testing.T) {
	f := newFixture(t)
	f.prog.Coins = 400

	require.NoError(t, f.store.Buy("small_potion"))
	require.NoError(t, f.store.Buy("small_potion"))
	require.NoError(t, f.store.Purchase("full_potion"))
	assert.Equal(t, 2, f.inv.Quantity("small_potion"))
	assert.Equal(t, 50, f.prog.Coins)

	f.body.Health = 50
	healed, err := f.store.Use("small_potion")
	require.NoError(t, err)
	assert.Equal(t, 20.0, healed)
	assert.Equal(t, 70.0, f.body.Health)
	assert.Equal(t, 1, f.inv.Quantity("small_potion"))

	healed, err = f.store.Use("full_potion")
	require.NoError(t, err)
	assert.Equal(t, 30.0, healed, "capped at max health")
	assert.Equal(t, 100.0, f.body.Health)

	_, err = f.store.Use("full_potion")
	require.ErrorIs(t, err, ErrOutOfStock)
	_, err = f.store.Use("basic")
	require.ErrorIs(t, err, ErrNotUsable)
	_, err = f.store.Use("elixir")
	require.ErrorIs(t, err, ErrUnknownItem)
}

func TestStoreInitRestoresStarters(t *testing.T) {
	f := newFixture(t)
	f.prog.Level = 2
	f.prog.Coins = 500
	require.NoError(t, f.store.Buy("plasma"))

	f.store.Init()
	assert.Equal(t, "basic", f.inv.Weapon)
	assert.False(t, f.inv.Owns("plasma"))
}
