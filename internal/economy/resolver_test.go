package economy

import (
	"testing"

	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestResolve_SimpleRewards(t *testing.T) {
	cat := catalog.Default()

	muts, err := Resolve(cat, catalog.Reward{Type: catalog.RewardGems, Amount: 250})
	assert.NoError(t, err)
	assert.Equal(t, []Mutation{{Kind: MutationCredit, Currency: models.CurrencyGems, Amount: 250}}, muts)

	muts, err = Resolve(cat, catalog.Reward{Type: catalog.RewardDiamonds, Amount: 10})
	assert.NoError(t, err)
	assert.Equal(t, []Mutation{{Kind: MutationCredit, Currency: models.CurrencyDiamonds, Amount: 10}}, muts)

	muts, err = Resolve(cat, catalog.Reward{Type: catalog.RewardColor, ItemID: "color-rose"})
	assert.NoError(t, err)
	assert.Equal(t, []Mutation{{Kind: MutationGrantItem, ItemID: "color-rose"}}, muts)

	muts, err = Resolve(cat, catalog.Reward{Type: catalog.RewardXP, Amount: 25})
	assert.NoError(t, err)
	assert.Equal(t, []Mutation{{Kind: MutationGrantXP, Amount: 25}}, muts)
}

func TestResolve_GrandPrizeBundle(t *testing.T) {
	cat := catalog.Default()

	muts, err := Resolve(cat, catalog.Reward{Type: catalog.RewardBundle, ItemID: "grand-prize"})
	assert.NoError(t, err)
	assert.Equal(t, []Mutation{
		{Kind: MutationCredit, Currency: models.CurrencyGems, Amount: 1000},
		{Kind: MutationGrantItem, ItemID: "color-cosmic"},
	}, muts)
}

func TestResolve_UnknownReferencesAreErrors(t *testing.T) {
	cat := catalog.Default()
	var refErr *catalog.UnknownReferenceError

	_, err := Resolve(cat, catalog.Reward{Type: catalog.RewardBundle, ItemID: "no-such-bundle"})
	assert.ErrorAs(t, err, &refErr)

	_, err = Resolve(cat, catalog.Reward{Type: catalog.RewardColor, ItemID: "color-imaginary"})
	assert.ErrorAs(t, err, &refErr)

	_, err = Resolve(cat, catalog.Reward{Type: "mystery", Amount: 1})
	assert.ErrorAs(t, err, &refErr)
}

func TestResolve_DoesNotMutate(t *testing.T) {
	cat := catalog.Default()
	l, p := testLedger()
	before := *p

	_, err := Resolve(cat, catalog.Reward{Type: catalog.RewardBundle, ItemID: "pass-champion"})
	assert.NoError(t, err)
	assert.Equal(t, before.Gems, l.Profile().Gems)
	assert.Equal(t, before.Diamonds, l.Profile().Diamonds)
	assert.Len(t, l.Profile().OwnedItems, len(before.OwnedItems))
}
