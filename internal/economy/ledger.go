// Package economy implements the progression state machine: XP and levels,
// currency balances, cosmetic ownership, reward claiming, daily quests and
// the level pass. All profile mutations funnel through the Ledger; nothing
// here touches persistence or HTTP.
package economy

import (
	"math"
	"strconv"
	"time"

	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/models"
)

const (
	dailyGemAmount   = 100
	dailyGemCooldown = 24 * time.Hour
)

// LevelUp is emitted by GrantXP for each level crossed. Reward is non-nil
// when the new level has an unclaimed reward defined; the grant itself never
// auto-claims it.
type LevelUp struct {
	Level  int             `json:"level"`
	Reward *catalog.Reward `json:"reward,omitempty"`
}

// Ledger owns a profile and its customization for the duration of an
// operation. It is not safe for concurrent use; callers serialize access
// per profile.
type Ledger struct {
	profile *models.Profile
	custom  *models.Customization
	cat     *catalog.Catalog
	now     func() time.Time
}

func NewLedger(p *models.Profile, custom *models.Customization, cat *catalog.Catalog) *Ledger {
	return &Ledger{profile: p, custom: custom, cat: cat, now: time.Now}
}

// WithClock overrides the ledger clock. Tests use this to pin time.
func (l *Ledger) WithClock(now func() time.Time) *Ledger {
	l.now = now
	return l
}

func (l *Ledger) Profile() *models.Profile            { return l.profile }
func (l *Ledger) Customization() *models.Customization { return l.custom }

// XPRequiredForNextLevel is the XP threshold to leave the given level.
func XPRequiredForNextLevel(level int) int {
	return level*100 + (level-1)*50
}

// GrantXP adds XP to the profile, carrying overflow across as many level-ups
// as the amount covers. TotalXP always accumulates, including at max level,
// where xp and level themselves are frozen.
func (l *Ledger) GrantXP(amount int) []LevelUp {
	if amount <= 0 {
		return nil
	}
	p := l.profile
	p.TotalXP += amount

	if p.Level >= models.MaxLevel {
		return nil
	}

	p.XP += amount
	var ups []LevelUp
	for p.Level < models.MaxLevel && p.XP >= XPRequiredForNextLevel(p.Level) {
		p.XP -= XPRequiredForNextLevel(p.Level)
		p.Level++

		up := LevelUp{Level: p.Level}
		if reward, ok := l.cat.LevelReward(p.Level); ok && !p.HasClaimedLevel(p.Level) {
			r := reward
			up.Reward = &r
		}
		ups = append(ups, up)
	}
	if p.Level >= models.MaxLevel {
		p.XP = 0
	}
	return ups
}

// apply executes resolved reward mutations. XP grants may cascade into
// further level-ups, which are returned.
func (l *Ledger) apply(muts []Mutation) []LevelUp {
	var ups []LevelUp
	for _, m := range muts {
		switch m.Kind {
		case MutationCredit:
			l.profile.Credit(m.Currency, m.Amount)
		case MutationGrantItem:
			l.profile.AddItem(m.ItemID)
		case MutationGrantXP:
			ups = append(ups, l.GrantXP(m.Amount)...)
		}
	}
	return ups
}

// ClaimLevelReward pays out the reward for a reached level, exactly once.
// Rewards only unlock through the level-up event, so a level the profile has
// not reached is not claimable no matter what the raw request asks for.
func (l *Ledger) ClaimLevelReward(level int) error {
	if level > l.profile.Level {
		return ErrLevelNotReached
	}
	if l.profile.HasClaimedLevel(level) {
		return ErrAlreadyClaimed
	}
	reward, ok := l.cat.LevelReward(level)
	if !ok {
		return ErrNoReward
	}
	muts, err := Resolve(l.cat, reward)
	if err != nil {
		return err
	}
	l.apply(muts)
	l.profile.ClaimedLevelRewards = append(l.profile.ClaimedLevelRewards, level)
	return nil
}

// ClaimPassReward pays out a level-pass tier, gated on lifetime XP rather
// than character level. Same idempotency contract as level rewards.
func (l *Ledger) ClaimPassReward(tierIndex int) error {
	if tierIndex < 0 || tierIndex >= len(l.cat.PassTiers) {
		return &catalog.UnknownReferenceError{Kind: "pass tier", ID: strconv.Itoa(tierIndex)}
	}
	if l.profile.HasClaimedTier(tierIndex) {
		return ErrAlreadyClaimed
	}
	tier := l.cat.PassTiers[tierIndex]
	if l.profile.TotalXP < tier.RequiredXP {
		return ErrTierLocked
	}
	muts, err := Resolve(l.cat, tier.Reward)
	if err != nil {
		return err
	}
	l.apply(muts)
	l.profile.ClaimedPassRewards = append(l.profile.ClaimedPassRewards, tierIndex)
	return nil
}

// PurchaseItem debits the item's price and adds it to the owned set. The
// balance check runs before any mutation; balances never go negative.
func (l *Ledger) PurchaseItem(itemID string) error {
	_, price, currency, err := l.cat.Item(itemID)
	if err != nil {
		return err
	}
	if l.profile.Owns(itemID) {
		return ErrAlreadyOwned
	}
	if l.profile.Balance(currency) < price {
		return ErrInsufficientFunds
	}
	l.profile.Debit(currency, price)
	l.profile.AddItem(itemID)
	return nil
}

// EquipItem equips an owned cosmetic. Equipping an unowned item fails with
// ErrInvalidEquip; equipping the default accessory clears the slot.
func (l *Ledger) EquipItem(itemID string) error {
	kind, _, _, err := l.cat.Item(itemID)
	if err != nil {
		return err
	}
	if !l.profile.Owns(itemID) {
		return ErrInvalidEquip
	}
	switch kind {
	case catalog.ItemColor:
		l.custom.EquippedColor = itemID
	case catalog.ItemAccessory:
		if itemID == models.DefaultAccessoryID {
			l.custom.EquippedAccessory = ""
		} else {
			l.custom.EquippedAccessory = itemID
		}
	}
	return nil
}

// PurchaseXPBoost buys a one-time XP boost: debit, record the claim, then
// grant the XP. Returns any level-ups the grant produced.
func (l *Ledger) PurchaseXPBoost(boostID string) ([]LevelUp, error) {
	boost, err := l.cat.Boost(boostID)
	if err != nil {
		return nil, err
	}
	if _, claimed := l.profile.ClaimedXPBoosts[boostID]; claimed {
		return nil, ErrAlreadyClaimed
	}
	if l.profile.Balance(boost.Currency) < boost.Cost {
		return nil, ErrInsufficientFunds
	}
	l.profile.Debit(boost.Currency, boost.Cost)
	l.profile.ClaimedXPBoosts[boostID] = l.now().UnixMilli()
	return l.GrantXP(boost.XP), nil
}

// ClaimDailyGems credits the daily gem stipend once per 24 hours.
func (l *Ledger) ClaimDailyGems() error {
	now := l.now()
	if l.profile.LastGemClaim != 0 {
		last := time.UnixMilli(l.profile.LastGemClaim)
		if now.Sub(last) < dailyGemCooldown {
			return ErrOnCooldown
		}
	}
	l.profile.Gems += dailyGemAmount
	l.profile.LastGemClaim = now.UnixMilli()
	return nil
}

// RecordSupportClick registers one support-heart click: the click counter and
// the derived support level advance, one XP is granted, and quest progress is
// recorded by the caller via RecordAction.
func (l *Ledger) RecordSupportClick() []LevelUp {
	p := l.profile
	p.SupportClicks++
	p.SupportLevel = SupportLevelFromClicks(p.SupportClicks)
	return l.GrantXP(l.cat.ActionXP[catalog.ActionSupportClick])
}

// SupportLevelFromClicks derives the support level from the lifetime click
// count. Monotonic non-decreasing in clicks.
func SupportLevelFromClicks(clicks int) int {
	return int(math.Floor(math.Log2(float64(clicks)/10+1))) + 1
}

// RedeemCode applies a promotional code's grant. Codes are repeatable,
// matching the client behavior.
func (l *Ledger) RedeemCode(code string) (catalog.RedeemCode, error) {
	rc, ok := l.cat.Code(code)
	if !ok {
		return catalog.RedeemCode{}, ErrUnknownCode
	}
	if rc.Gems > 0 {
		l.profile.Gems += rc.Gems
	}
	if rc.Diamonds > 0 {
		l.profile.Diamonds += rc.Diamonds
	}
	return rc, nil
}

// Rollover performs the once-per-day bookkeeping on login: quest state from a
// prior day is cleared and the daily streak advances (consecutive day) or
// resets. Returns true if anything changed.
func (l *Ledger) Rollover() bool {
	now := l.now()
	today := now.Format("2006-01-02")
	p := l.profile
	changed := false

	if p.LastQuestReset != today {
		p.Quests = map[string]*models.QuestState{}
		p.LastQuestReset = today
		changed = true
	}

	if p.LastLoginDate != today {
		yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
		if p.LastLoginDate == yesterday {
			p.DailyStreak++
		} else {
			p.DailyStreak = 1
		}
		p.LastLoginDate = today
		changed = true
	}
	return changed
}
