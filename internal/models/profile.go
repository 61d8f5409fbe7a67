package models

// SchemaVersion is written into every persisted profile snapshot. Bump it
// whenever the serialized shape changes so loaders can migrate old snapshots.
const SchemaVersion = 1

const (
	MaxLevel = 20

	DefaultColorID     = "color-default"
	DefaultAccessoryID = "accessory-none"
)

type Currency string

const (
	CurrencyGems     Currency = "gems"
	CurrencyDiamonds Currency = "diamonds"
)

// QuestState is the per-quest, per-day progress record. Progress is clamped
// to the quest goal and frozen once CompletedAt is set.
type QuestState struct {
	Progress    int    `json:"progress"`
	CompletedAt *int64 `json:"completedAt,omitempty"` // unix millis
}

// Profile is the root economy entity: one per user, whole-object serialized
// to the snapshot store, mutated only through the economy Ledger.
type Profile struct {
	ID            string `json:"id"`
	SchemaVersion int    `json:"schemaVersion"`

	Gems     int `json:"gems"`
	Diamonds int `json:"diamonds"`

	// OwnedItems always contains the default color and accessory and only
	// ever grows; items are never removed.
	OwnedItems []string `json:"ownedItems"`

	Level   int `json:"level"`
	XP      int `json:"xp"`
	TotalXP int `json:"totalXp"`

	ClaimedLevelRewards []int            `json:"claimedLevelRewards"`
	ClaimedPassRewards  []int            `json:"claimedPassRewards"`
	ClaimedXPBoosts     map[string]int64 `json:"claimedXpBoosts"` // boost id -> unix millis

	Quests map[string]*QuestState `json:"quests"`

	SupportClicks int `json:"supportClicks"`
	SupportLevel  int `json:"supportLevel"`

	DailyStreak    int    `json:"dailyStreak"`
	LastLoginDate  string `json:"lastLoginDate"` // YYYY-MM-DD
	LastGemClaim   int64  `json:"lastGemClaim"`  // unix millis, 0 = never
	LastQuestReset string `json:"lastQuestReset"`
}

// NewProfile returns a fresh profile with the first-run defaults.
func NewProfile(id string) *Profile {
	return &Profile{
		ID:                  id,
		SchemaVersion:       SchemaVersion,
		Gems:                100,
		Diamonds:            0,
		OwnedItems:          []string{DefaultColorID, DefaultAccessoryID},
		Level:               1,
		XP:                  0,
		TotalXP:             0,
		ClaimedLevelRewards: []int{},
		ClaimedPassRewards:  []int{},
		ClaimedXPBoosts:     map[string]int64{},
		Quests:              map[string]*QuestState{},
		SupportClicks:       0,
		SupportLevel:        1,
	}
}

// Normalize repairs a profile loaded from an older or partial snapshot so the
// invariants hold before any operation runs.
func (p *Profile) Normalize() {
	if p.SchemaVersion == 0 {
		p.SchemaVersion = SchemaVersion
	}
	if p.Level < 1 {
		p.Level = 1
	}
	if p.SupportLevel < 1 {
		p.SupportLevel = 1
	}
	if p.ClaimedLevelRewards == nil {
		p.ClaimedLevelRewards = []int{}
	}
	if p.ClaimedPassRewards == nil {
		p.ClaimedPassRewards = []int{}
	}
	if p.ClaimedXPBoosts == nil {
		p.ClaimedXPBoosts = map[string]int64{}
	}
	if p.Quests == nil {
		p.Quests = map[string]*QuestState{}
	}
	if !p.Owns(DefaultColorID) {
		p.OwnedItems = append(p.OwnedItems, DefaultColorID)
	}
	if !p.Owns(DefaultAccessoryID) {
		p.OwnedItems = append(p.OwnedItems, DefaultAccessoryID)
	}
}

// Clone returns a detached deep copy. Responses are serialized outside the
// session lock, so anything handed out must not alias live session state.
func (p *Profile) Clone() Profile {
	out := *p
	out.OwnedItems = append([]string(nil), p.OwnedItems...)
	out.ClaimedLevelRewards = append([]int(nil), p.ClaimedLevelRewards...)
	out.ClaimedPassRewards = append([]int(nil), p.ClaimedPassRewards...)
	out.ClaimedXPBoosts = make(map[string]int64, len(p.ClaimedXPBoosts))
	for id, at := range p.ClaimedXPBoosts {
		out.ClaimedXPBoosts[id] = at
	}
	out.Quests = make(map[string]*QuestState, len(p.Quests))
	for id, q := range p.Quests {
		qc := *q
		if q.CompletedAt != nil {
			at := *q.CompletedAt
			qc.CompletedAt = &at
		}
		out.Quests[id] = &qc
	}
	return out
}

func (p *Profile) Owns(itemID string) bool {
	for _, id := range p.OwnedItems {
		if id == itemID {
			return true
		}
	}
	return false
}

// AddItem grants an item idempotently. Returns false if it was already owned.
func (p *Profile) AddItem(itemID string) bool {
	if p.Owns(itemID) {
		return false
	}
	p.OwnedItems = append(p.OwnedItems, itemID)
	return true
}

func (p *Profile) Balance(c Currency) int {
	if c == CurrencyDiamonds {
		return p.Diamonds
	}
	return p.Gems
}

func (p *Profile) Credit(c Currency, amount int) {
	if c == CurrencyDiamonds {
		p.Diamonds += amount
	} else {
		p.Gems += amount
	}
}

// Debit subtracts amount from the balance. Callers must have checked the
// balance first; Debit panics rather than let a balance go negative.
func (p *Profile) Debit(c Currency, amount int) {
	if p.Balance(c) < amount {
		panic("models: debit below zero")
	}
	if c == CurrencyDiamonds {
		p.Diamonds -= amount
	} else {
		p.Gems -= amount
	}
}

func (p *Profile) HasClaimedLevel(level int) bool {
	for _, l := range p.ClaimedLevelRewards {
		if l == level {
			return true
		}
	}
	return false
}

func (p *Profile) HasClaimedTier(index int) bool {
	for _, i := range p.ClaimedPassRewards {
		if i == index {
			return true
		}
	}
	return false
}
