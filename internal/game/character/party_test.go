package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/summoners/internal/game/character"
)

// boost is a minimal damage item used to exercise PartyMember bookkeeping.
type boost struct {
	name   string
	amount int
	calls  []string
}

func (b *boost) Apply(c character.Character) {
	c.Sheet().Damage += b.amount
	b.calls = append(b.calls, "apply")
}

func (b *boost) Remove(c character.Character) bool {
	if c.Sheet().Damage < b.amount {
		return false
	}
	c.Sheet().Damage -= b.amount
	b.calls = append(b.calls, "remove")
	return true
}

func (b *boost) String() string { return b.name }

func TestPartyMember_ApplyItemsInOrder(t *testing.T) {
	p := character.NewPartyMember("Hero", 100, 20, 5)
	var order []string
	first := &orderedItem{name: "first", log: &order}
	second := &orderedItem{name: "second", log: &order}
	p.AddItem(first)
	p.AddItem(second)

	p.ApplyItems()

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestPartyMember_DuplicateItemTrackedIndependently(t *testing.T) {
	p := character.NewPartyMember("Hero", 100, 20, 5)
	b := &boost{name: "Ring", amount: 3}
	p.AddItem(b)
	p.AddItem(b)
	p.ApplyItems()
	assert.Equal(t, 26, p.Attack())

	require.True(t, p.RemoveItem(b))
	assert.Len(t, p.Inventory(), 1)
	assert.Equal(t, 23, p.Attack())

	require.True(t, p.RemoveItem(b))
	assert.Empty(t, p.Inventory())
	assert.Equal(t, 20, p.Attack())

	assert.False(t, p.RemoveItem(b))
}

func TestPartyMember_RemoveUnknownItemIsNoOp(t *testing.T) {
	p := character.NewPartyMember("Hero", 100, 20, 5)
	held := &boost{name: "Held", amount: 2}
	stranger := &boost{name: "Stranger", amount: 2}
	p.AddItem(held)
	p.ApplyItems()

	assert.False(t, p.RemoveItem(stranger))
	assert.Equal(t, 22, p.Attack())
	assert.Len(t, p.Inventory(), 1)
	assert.Empty(t, stranger.calls)
}

func TestPartyMember_RemoveGuardFailureKeepsItem(t *testing.T) {
	p := character.NewPartyMember("Hero", 100, 0, 5)
	big := &boost{name: "Big", amount: 50}
	p.AddItem(big)

	// Never applied, so the guard sees Damage 0 < 50.
	assert.False(t, p.RemoveItem(big))
	assert.Len(t, p.Inventory(), 1)
	assert.Equal(t, 0, p.Attack())
}

func TestPartyMember_StringWithoutMinions(t *testing.T) {
	p := character.NewPartyMember("Hero", 100, 20, 5)
	assert.Equal(t,
		"Hero (HP: 100/100, Damage: 20, Armor: 5)\nInventory: (empty)\nNo active minions.",
		p.String())
}

func TestPartyMember_StringEnumeratesInventoryAndMinions(t *testing.T) {
	p := character.NewPartyMember("Hero", 100, 20, 5)
	p.AddItem(&boost{name: "Ring", amount: 1})
	p.AddMinion(character.NewMinion("m1", "imp", "Imp", 10, 2, 1))

	out := p.String()
	assert.Contains(t, out, "Inventory:\n  - Ring")
	assert.Contains(t, out, "Active minions:\n  - Minion: Imp (HP: 10/10, Damage: 2, Armor: 1)")
	assert.NotContains(t, out, "No active minions.")
}

func TestPartyMember_CollectionsAreCopies(t *testing.T) {
	p := character.NewPartyMember("Hero", 100, 20, 5)
	p.AddMinion(character.NewMinion("m1", "imp", "Imp", 10, 2, 1))
	ms := p.Minions()
	ms[0] = nil
	assert.NotNil(t, p.Minions()[0])
}

func TestPartyMember_IsMinionRegistrar(t *testing.T) {
	var c character.Character = character.NewPartyMember("Hero", 100, 20, 5)
	_, ok := c.(character.MinionRegistrar)
	assert.True(t, ok)

	var m character.Character = character.NewMinion("m1", "imp", "Imp", 10, 2, 1)
	_, ok = m.(character.MinionRegistrar)
	assert.False(t, ok)
}

type orderedItem struct {
	name string
	log  *[]string
}

func (o *orderedItem) Apply(character.Character) { *o.log = append(*o.log, o.name) }

func (o *orderedItem) Remove(character.Character) bool { return true }

func (o *orderedItem) String() string { return o.name }

// charm is a value item whose slice field makes it non-comparable.
type charm struct {
	name  string
	tags  []string
	armor int
}

func (c charm) Apply(t character.Character) { t.Sheet().Armor += c.armor }

func (c charm) Remove(t character.Character) bool {
	if t.Sheet().Armor < c.armor {
		return false
	}
	t.Sheet().Armor -= c.armor
	return true
}

func (c charm) String() string { return c.name }

func TestPartyMember_RemoveNonComparableValueItem(t *testing.T) {
	p := character.NewPartyMember("Hero", 100, 20, 5)
	ward := charm{name: "Ward", tags: []string{"holy"}, armor: 2}
	p.AddItem(&boost{name: "Ring", amount: 1})
	p.AddItem(ward)
	p.ApplyItems()
	require.Equal(t, 7, p.Defense())

	assert.NotPanics(t, func() {
		assert.False(t, p.RemoveItem(charm{name: "Ward", tags: []string{"cursed"}, armor: 2}))
	})
	assert.Len(t, p.Inventory(), 2)
	assert.Equal(t, 7, p.Defense())

	assert.NotPanics(t, func() {
		assert.True(t, p.RemoveItem(charm{name: "Ward", tags: []string{"holy"}, armor: 2}))
	})
	assert.Equal(t, 5, p.Defense())
	require.Len(t, p.Inventory(), 1)
	assert.Equal(t, "Ring", p.Inventory()[0].String())
}
