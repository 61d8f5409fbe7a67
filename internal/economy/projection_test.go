package economy

import (
	"testing"

	"github.com/pushp314/stenpan-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestXPRequiredForNextLevel(t *testing.T) {
	assert.Equal(t, 100, XPRequiredForNextLevel(1))
	assert.Equal(t, 250, XPRequiredForNextLevel(2))
	assert.Equal(t, 400, XPRequiredForNextLevel(3))
	assert.Equal(t, 2850, XPRequiredForNextLevel(19))
}

func TestProject(t *testing.T) {
	p := models.NewProfile("test")
	p.Level = 2
	p.XP = 125
	p.TotalXP = 225

	proj := Project(p)
	assert.Equal(t, 250, proj.XPToNextLevel)
	assert.InDelta(t, 50.0, proj.XPProgressPercent, 0.001)
	assert.False(t, proj.MaxLevel)
}

func TestProject_MaxLevel(t *testing.T) {
	p := models.NewProfile("test")
	p.Level = models.MaxLevel

	proj := Project(p)
	assert.True(t, proj.MaxLevel)
	assert.Equal(t, 0, proj.XPToNextLevel)
	assert.Equal(t, 100.0, proj.XPProgressPercent)
}

func TestCanAfford(t *testing.T) {
	p := models.NewProfile("test")
	p.Gems = 100
	p.Diamonds = 5

	assert.True(t, CanAfford(p, 100, models.CurrencyGems))
	assert.False(t, CanAfford(p, 101, models.CurrencyGems))
	assert.True(t, CanAfford(p, 5, models.CurrencyDiamonds))
	assert.False(t, CanAfford(p, 6, models.CurrencyDiamonds))
}

func TestSupportLevelFromClicks(t *testing.T) {
	assert.Equal(t, 1, SupportLevelFromClicks(0))
	assert.Equal(t, 1, SupportLevelFromClicks(9))
	assert.Equal(t, 2, SupportLevelFromClicks(10))
	assert.Equal(t, 2, SupportLevelFromClicks(29))
	assert.Equal(t, 3, SupportLevelFromClicks(30))

	// Monotonic in clicks
	last := 0
	for clicks := 0; clicks <= 1000; clicks += 7 {
		level := SupportLevelFromClicks(clicks)
		assert.GreaterOrEqual(t, level, last)
		last = level
	}
}
