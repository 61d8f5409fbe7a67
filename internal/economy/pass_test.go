package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierUnlocked(t *testing.T) {
	l, p := testLedger()

	assert.False(t, l.TierUnlocked(0))

	p.TotalXP = 100
	assert.True(t, l.TierUnlocked(0))
	assert.False(t, l.TierUnlocked(1)) // needs 250

	p.TotalXP = 5000
	for i := 0; i < 10; i++ {
		assert.True(t, l.TierUnlocked(i))
	}

	assert.False(t, l.TierUnlocked(-1))
	assert.False(t, l.TierUnlocked(10))
}

func TestPassViews(t *testing.T) {
	l, p := testLedger()
	p.TotalXP = 600

	assert.NoError(t, l.ClaimPassReward(0))

	views := l.PassViews()
	assert.Len(t, views, 10)

	assert.True(t, views[0].Unlocked)
	assert.True(t, views[0].Claimed)
	assert.True(t, views[1].Unlocked) // 250
	assert.False(t, views[1].Claimed)
	assert.True(t, views[2].Unlocked)  // 500
	assert.False(t, views[3].Unlocked) // 750
}

func TestPassChampionBundle(t *testing.T) {
	l, p := testLedger()
	p.TotalXP = 5000

	assert.NoError(t, l.ClaimPassReward(9))
	assert.Equal(t, 25, p.Diamonds)
	assert.True(t, p.Owns("accessory-earmuffs"))
}
