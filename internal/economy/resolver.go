package economy

import (
	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/models"
)

// MutationKind tags the concrete ledger mutations a reward resolves to.
type MutationKind string

const (
	MutationCredit    MutationKind = "credit"
	MutationGrantItem MutationKind = "grantItem"
	MutationGrantXP   MutationKind = "grantXp"
)

type Mutation struct {
	Kind     MutationKind
	Currency models.Currency // credit only
	Amount   int             // credit and grantXp
	ItemID   string          // grantItem only
}

// Resolve expands a reward descriptor into the flat list of mutations it
// implies. Bundles expand to their currency and item grants; they never
// contain other bundles. Resolve is pure: it reads only the catalog and
// reports unknown references as errors rather than skipping them.
func Resolve(cat *catalog.Catalog, r catalog.Reward) ([]Mutation, error) {
	switch r.Type {
	case catalog.RewardGems:
		return []Mutation{{Kind: MutationCredit, Currency: models.CurrencyGems, Amount: r.Amount}}, nil
	case catalog.RewardDiamonds:
		return []Mutation{{Kind: MutationCredit, Currency: models.CurrencyDiamonds, Amount: r.Amount}}, nil
	case catalog.RewardXP:
		return []Mutation{{Kind: MutationGrantXP, Amount: r.Amount}}, nil
	case catalog.RewardColor:
		if _, err := cat.Color(r.ItemID); err != nil {
			return nil, err
		}
		return []Mutation{{Kind: MutationGrantItem, ItemID: r.ItemID}}, nil
	case catalog.RewardAccessory:
		if _, err := cat.Accessory(r.ItemID); err != nil {
			return nil, err
		}
		return []Mutation{{Kind: MutationGrantItem, ItemID: r.ItemID}}, nil
	case catalog.RewardBundle:
		bundle, err := cat.Bundle(r.ItemID)
		if err != nil {
			return nil, err
		}
		var muts []Mutation
		if bundle.Gems > 0 {
			muts = append(muts, Mutation{Kind: MutationCredit, Currency: models.CurrencyGems, Amount: bundle.Gems})
		}
		if bundle.Diamonds > 0 {
			muts = append(muts, Mutation{Kind: MutationCredit, Currency: models.CurrencyDiamonds, Amount: bundle.Diamonds})
		}
		for _, itemID := range bundle.Items {
			if _, _, _, err := cat.Item(itemID); err != nil {
				return nil, err
			}
			muts = append(muts, Mutation{Kind: MutationGrantItem, ItemID: itemID})
		}
		return muts, nil
	default:
		return nil, &catalog.UnknownReferenceError{Kind: "reward type", ID: string(r.Type)}
	}
}
