package inventory_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/summoners/internal/game/character"
	"github.com/cory-johannsen/summoners/internal/game/inventory"
	"github.com/cory-johannsen/summoners/internal/game/summon"
)

func TestDefaultRegistry_MatchesCatalog(t *testing.T) {
	r := inventory.DefaultRegistry()
	assert.Equal(t, []string{"axe", "helmet", "magical_axe", "magical_shield", "magical_sword", "shield", "sword"}, r.IDs())

	cases := map[string]*inventory.Gear{
		"sword":          inventory.Sword(),
		"axe":            inventory.Axe(),
		"shield":         inventory.Shield(),
		"helmet":         inventory.Helmet(),
		"magical_sword":  inventory.MagicalSword(nil),
		"magical_axe":    inventory.MagicalAxe(nil),
		"magical_shield": inventory.MagicalShield(nil),
	}
	for id, want := range cases {
		got, err := r.New(id, nil)
		require.NoError(t, err, id)
		assert.Equal(t, want.String(), got.String(), id)
		assert.Equal(t, want.Name(), got.Name(), id)
		assert.Equal(t, want.Kind(), got.Kind(), id)
		assert.Equal(t, want.Magnitude(), got.Magnitude(), id)

		def, ok := r.Def(id)
		require.True(t, ok, id)
		assert.Equal(t, def.Kind, got.Kind(), id)
		assert.Equal(t, def.Magnitude, got.Magnitude(), id)
	}

	_, ok := r.Def("dagger")
	assert.False(t, ok)
}

func TestRegistry_RegisterRejectsDuplicateAndInvalid(t *testing.T) {
	r := inventory.DefaultRegistry()
	err := r.Register(&inventory.Def{ID: "sword", Name: "Sword", Kind: inventory.KindWeapon, Magnitude: 10})
	assert.ErrorContains(t, err, "already registered")

	err = r.Register(&inventory.Def{ID: "x", Name: "X", Kind: "ring"})
	assert.ErrorContains(t, err, "Kind must be one of")
}

func TestRegistry_NewResolvesSummonEffect(t *testing.T) {
	r := inventory.NewRegistry()
	require.NoError(t, r.Register(&inventory.Def{
		ID: "frost_brand", Name: "Frost Brand", Kind: inventory.KindWeapon,
		Magnitude: 12, Magical: true, Summon: summon.IceElementalID,
	}))
	f := summon.NewFactory(nil, nil)

	item, err := r.New("frost_brand", f.Effects())
	require.NoError(t, err)
	assert.True(t, item.HasSummon())
	assert.Equal(t, "Magical Weapon: Frost Brand (Damage: 12)", item.String())

	p := character.NewPartyMember("Hero", 100, 20, 5)
	p.AddItem(item)
	p.ApplyItems()
	assert.Equal(t, 32, p.Attack())
	require.Len(t, p.Minions(), 1)
	assert.Equal(t, "Ice Elemental", p.Minions()[0].Name)
}

func TestRegistry_NewErrors(t *testing.T) {
	r := inventory.NewRegistry()
	_, err := r.New("missing", nil)
	assert.Error(t, err)

	require.NoError(t, r.Register(&inventory.Def{
		ID: "odd_shield", Name: "Odd Shield", Kind: inventory.KindProtection,
		Magnitude: 1, Magical: true, Summon: "nobody",
	}))
	_, err = r.New("odd_shield", map[string]summon.Effect{})
	assert.ErrorContains(t, err, "unknown summon effect")
}

func TestDef_ValidateCollectsErrors(t *testing.T) {
	err := (&inventory.Def{Kind: "ring", Magnitude: -1, Summon: "fire_elemental"}).Validate()
	require.Error(t, err)
	for _, want := range []string{"ID must not be empty", "Name must not be empty", "Kind must be one of", "Magnitude must be >= 0", "Summon requires Magical"} {
		assert.Contains(t, err.Error(), want)
	}
}

func TestLoadDefs_ReadsYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ember_shield.yaml"), []byte(`
id: ember_shield
name: Ember Shield
kind: protection
magnitude: 7
magical: true
summon: fire_elemental
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("ignored"), 0644))

	defs, err := inventory.LoadDefs(dir)
	require.NoError(t, err)
	require.Len(t, defs, 1)
	assert.Equal(t, &inventory.Def{
		ID: "ember_shield", Name: "Ember Shield", Kind: inventory.KindProtection,
		Magnitude: 7, Magical: true, Summon: "fire_elemental",
	}, defs[0])
}

func TestLoadDefs_RejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("id: bad\nname: Bad\nkind: weapon\nmagnitude: -3\n"), 0644))
	_, err := inventory.LoadDefs(dir)
	assert.ErrorContains(t, err, "invalid item")
}
