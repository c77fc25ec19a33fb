package character_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/summoners/internal/game/character"
)

func TestBuild_Valid(t *testing.T) {
	p, err := character.Build("Hero", 100, 20, 5)
	require.NoError(t, err)
	assert.Equal(t, "Hero", p.Name)
	assert.Equal(t, 100, p.CurrentHP)
	assert.Empty(t, p.Inventory())
	assert.Empty(t, p.Minions())
}

func TestBuild_ReportsEveryViolation(t *testing.T) {
	_, err := character.Build("", 0, -1, -2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name must not be empty")
	assert.Contains(t, err.Error(), "max hp must be >= 1")
	assert.Contains(t, err.Error(), "damage must be >= 0")
	assert.Contains(t, err.Error(), "armor must be >= 0")
}

// Property: a successfully built party member starts at full health.
func TestBuild_StartsAtFullHealth(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		maxHP := rapid.IntRange(1, 1000).Draw(rt, "maxHP")
		p, err := character.Build("Hero", maxHP, 0, 0)
		if err != nil {
			rt.Fatal(err)
		}
		if p.CurrentHP != p.MaxHP {
			rt.Fatalf("CurrentHP %d != MaxHP %d", p.CurrentHP, p.MaxHP)
		}
	})
}
