package catalog

import (
	"testing"

	"github.com/pushp314/stenpan-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestLookups(t *testing.T) {
	cat := Default()

	color, err := cat.Color("color-gold")
	assert.NoError(t, err)
	assert.Equal(t, 500, color.Price)
	assert.Equal(t, models.CurrencyGems, color.Currency)

	acc, err := cat.Accessory("accessory-crown")
	assert.NoError(t, err)
	assert.Equal(t, models.CurrencyDiamonds, acc.Currency)

	kind, price, currency, err := cat.Item("color-holographic")
	assert.NoError(t, err)
	assert.Equal(t, ItemColor, kind)
	assert.Equal(t, 20, price)
	assert.Equal(t, models.CurrencyDiamonds, currency)

	kind, _, _, err = cat.Item("accessory-scarf")
	assert.NoError(t, err)
	assert.Equal(t, ItemAccessory, kind)

	_, _, _, err = cat.Item("hat-of-wonders")
	var refErr *UnknownReferenceError
	assert.ErrorAs(t, err, &refErr)
	assert.Equal(t, "item", refErr.Kind)
}

func TestLevelRewardTable(t *testing.T) {
	cat := Default()

	_, ok := cat.LevelReward(1)
	assert.False(t, ok)

	reward, ok := cat.LevelReward(15)
	assert.True(t, ok)
	assert.Equal(t, RewardBundle, reward.Type)
	assert.Equal(t, "grand-prize", reward.ItemID)
}

func TestValidate_RejectsUnknownBundleItem(t *testing.T) {
	cat := Default()
	cat.Bundles["broken"] = Bundle{ID: "broken", Items: []string{"color-unreal"}}

	assert.Error(t, cat.Validate())
}

func TestValidate_RejectsNestedBundle(t *testing.T) {
	cat := Default()
	// A bundle id in an items list would be a nested bundle.
	cat.Bundles["nested"] = Bundle{ID: "nested", Items: []string{"grand-prize"}}

	assert.Error(t, cat.Validate())
}

func TestValidate_RejectsUnknownRewardReference(t *testing.T) {
	cat := Default()
	cat.LevelRewards[26] = Reward{Type: RewardColor, ItemID: "color-vaporware"}

	assert.Error(t, cat.Validate())
}

func TestValidate_RejectsXPRewardOutsideQuests(t *testing.T) {
	cat := Default()
	cat.LevelRewards[26] = Reward{Type: RewardXP, Amount: 100}

	assert.Error(t, cat.Validate())
}

func TestValidate_RejectsUnsortedPassTiers(t *testing.T) {
	cat := Default()
	cat.PassTiers[0], cat.PassTiers[1] = cat.PassTiers[1], cat.PassTiers[0]

	assert.Error(t, cat.Validate())
}

func TestActionXPTable(t *testing.T) {
	cat := Default()

	assert.Equal(t, 15, cat.ActionXP[ActionSendMessage])
	assert.Equal(t, 25, cat.ActionXP[ActionGenerateImage])
	assert.Equal(t, 30, cat.ActionXP[ActionEditImage])
	assert.Equal(t, 5, cat.ActionXP[ActionUseVoice])
}
