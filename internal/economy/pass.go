package economy

import "github.com/pushp314/stenpan-backend/internal/catalog"

// TierUnlocked reports whether lifetime XP has reached the tier threshold.
// Out-of-range indices are simply locked.
func (l *Ledger) TierUnlocked(tierIndex int) bool {
	if tierIndex < 0 || tierIndex >= len(l.cat.PassTiers) {
		return false
	}
	return l.profile.TotalXP >= l.cat.PassTiers[tierIndex].RequiredXP
}

// PassTierView is the per-tier read model for the level-pass screen.
type PassTierView struct {
	Index      int            `json:"index"`
	RequiredXP int            `json:"requiredXp"`
	Reward     catalog.Reward `json:"reward"`
	Unlocked   bool           `json:"unlocked"`
	Claimed    bool           `json:"claimed"`
}

// PassViews renders every tier against the profile's totalXp and claims.
// The pass track has no state of its own beyond what the profile stores.
func (l *Ledger) PassViews() []PassTierView {
	views := make([]PassTierView, 0, len(l.cat.PassTiers))
	for i, tier := range l.cat.PassTiers {
		views = append(views, PassTierView{
			Index:      i,
			RequiredXP: tier.RequiredXP,
			Reward:     tier.Reward,
			Unlocked:   l.TierUnlocked(i),
			Claimed:    l.profile.HasClaimedTier(i),
		})
	}
	return views
}
