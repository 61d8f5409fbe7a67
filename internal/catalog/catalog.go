// Package catalog holds the static, immutable economy configuration:
// purchasable cosmetics, level rewards, reward bundles, daily quest
// templates, level-pass tiers, XP boosts and redeem codes. The catalog is
// built once at startup, validated, and treated as read-only afterwards.
package catalog

import (
	"fmt"
	"sort"

	"github.com/pushp314/stenpan-backend/internal/models"
)

// RewardType is the closed set of reward variants.
type RewardType string

const (
	RewardGems      RewardType = "gems"
	RewardDiamonds  RewardType = "diamonds"
	RewardColor     RewardType = "color"
	RewardAccessory RewardType = "accessory"
	RewardBundle    RewardType = "bundle"
	RewardXP        RewardType = "xp" // quest rewards only
)

// Reward is a tagged reward descriptor. Amount is set for gems/diamonds/xp,
// ItemID for color/accessory/bundle.
type Reward struct {
	Type   RewardType `json:"type"`
	Name   string     `json:"name"`
	Amount int        `json:"amount,omitempty"`
	ItemID string     `json:"itemId,omitempty"`
}

type ColorItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       int             `json:"price"`
	Currency    models.Currency `json:"currency"`
	Value       string          `json:"value"` // CSS color or gradient
	Description string          `json:"description"`
}

type AccessoryItem struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       int             `json:"price"`
	Currency    models.Currency `json:"currency"`
	Description string          `json:"description"`
}

// Bundle expands to flat currency and item grants. Bundles never reference
// other bundles.
type Bundle struct {
	ID       string   `json:"id"`
	Gems     int      `json:"gems,omitempty"`
	Diamonds int      `json:"diamonds,omitempty"`
	Items    []string `json:"items,omitempty"`
}

// ActionKind is a gameplay action reported by the client.
type ActionKind string

const (
	ActionSendMessage   ActionKind = "sendMessage"
	ActionGenerateImage ActionKind = "generateImage"
	ActionEditImage     ActionKind = "editImage"
	ActionUseVoice      ActionKind = "useVoice"
	ActionSupportClick  ActionKind = "supportClick"
)

type QuestTemplate struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Goal        int        `json:"goal"`
	Action      ActionKind `json:"action"`
	Reward      Reward     `json:"reward"` // gems or xp only
}

type PassTier struct {
	RequiredXP int    `json:"requiredXp"`
	Reward     Reward `json:"reward"`
}

type XPBoost struct {
	ID       string          `json:"id"`
	Title    string          `json:"title"`
	XP       int             `json:"xp"`
	Cost     int             `json:"cost"`
	Currency models.Currency `json:"currency"`
}

type RedeemCode struct {
	Code     string `json:"code"`
	Gems     int    `json:"gems,omitempty"`
	Diamonds int    `json:"diamonds,omitempty"`
}

// UnknownReferenceError marks a lookup of an id absent from the catalog.
// This is a configuration fault, not a user error.
type UnknownReferenceError struct {
	Kind string
	ID   string
}

func (e *UnknownReferenceError) Error() string {
	return fmt.Sprintf("catalog: unknown %s reference %q", e.Kind, e.ID)
}

// Catalog is the validated, read-only economy configuration.
type Catalog struct {
	Colors       []ColorItem
	Accessories  []AccessoryItem
	LevelRewards map[int]Reward
	Bundles      map[string]Bundle
	Quests       []QuestTemplate
	PassTiers    []PassTier
	Boosts       []XPBoost
	Codes        map[string]RedeemCode
	ActionXP     map[ActionKind]int

	colorsByID      map[string]ColorItem
	accessoriesByID map[string]AccessoryItem
	questsByID      map[string]QuestTemplate
	boostsByID      map[string]XPBoost
}

func (c *Catalog) index() {
	c.colorsByID = make(map[string]ColorItem, len(c.Colors))
	for _, it := range c.Colors {
		c.colorsByID[it.ID] = it
	}
	c.accessoriesByID = make(map[string]AccessoryItem, len(c.Accessories))
	for _, it := range c.Accessories {
		c.accessoriesByID[it.ID] = it
	}
	c.questsByID = make(map[string]QuestTemplate, len(c.Quests))
	for _, q := range c.Quests {
		c.questsByID[q.ID] = q
	}
	c.boostsByID = make(map[string]XPBoost, len(c.Boosts))
	for _, b := range c.Boosts {
		c.boostsByID[b.ID] = b
	}
}

func (c *Catalog) Color(id string) (ColorItem, error) {
	it, ok := c.colorsByID[id]
	if !ok {
		return ColorItem{}, &UnknownReferenceError{Kind: "color", ID: id}
	}
	return it, nil
}

func (c *Catalog) Accessory(id string) (AccessoryItem, error) {
	it, ok := c.accessoriesByID[id]
	if !ok {
		return AccessoryItem{}, &UnknownReferenceError{Kind: "accessory", ID: id}
	}
	return it, nil
}

// ItemKind reports whether an id names a color or an accessory.
type ItemKind string

const (
	ItemColor     ItemKind = "color"
	ItemAccessory ItemKind = "accessory"
)

// Item resolves an id of either kind, returning its price, currency and kind.
func (c *Catalog) Item(id string) (kind ItemKind, price int, currency models.Currency, err error) {
	if it, ok := c.colorsByID[id]; ok {
		return ItemColor, it.Price, it.Currency, nil
	}
	if it, ok := c.accessoriesByID[id]; ok {
		return ItemAccessory, it.Price, it.Currency, nil
	}
	return "", 0, "", &UnknownReferenceError{Kind: "item", ID: id}
}

func (c *Catalog) LevelReward(level int) (Reward, bool) {
	r, ok := c.LevelRewards[level]
	return r, ok
}

func (c *Catalog) Bundle(id string) (Bundle, error) {
	b, ok := c.Bundles[id]
	if !ok {
		return Bundle{}, &UnknownReferenceError{Kind: "bundle", ID: id}
	}
	return b, nil
}

func (c *Catalog) Quest(id string) (QuestTemplate, error) {
	q, ok := c.questsByID[id]
	if !ok {
		return QuestTemplate{}, &UnknownReferenceError{Kind: "quest", ID: id}
	}
	return q, nil
}

func (c *Catalog) Boost(id string) (XPBoost, error) {
	b, ok := c.boostsByID[id]
	if !ok {
		return XPBoost{}, &UnknownReferenceError{Kind: "boost", ID: id}
	}
	return b, nil
}

func (c *Catalog) Code(code string) (RedeemCode, bool) {
	rc, ok := c.Codes[code]
	return rc, ok
}

// Validate checks internal consistency: every reward, bundle, quest and tier
// must reference existing ids, bundles must not nest, and pass tiers must be
// sorted ascending. Called once at startup; any error is fatal.
func (c *Catalog) Validate() error {
	checkReward := func(where string, r Reward, allowXP bool) error {
		switch r.Type {
		case RewardGems, RewardDiamonds:
			if r.Amount <= 0 {
				return fmt.Errorf("catalog: %s: %s reward with non-positive amount", where, r.Type)
			}
		case RewardXP:
			if !allowXP {
				return fmt.Errorf("catalog: %s: xp rewards are only valid on quests", where)
			}
			if r.Amount <= 0 {
				return fmt.Errorf("catalog: %s: xp reward with non-positive amount", where)
			}
		case RewardColor:
			if _, err := c.Color(r.ItemID); err != nil {
				return fmt.Errorf("catalog: %s: %w", where, err)
			}
		case RewardAccessory:
			if _, err := c.Accessory(r.ItemID); err != nil {
				return fmt.Errorf("catalog: %s: %w", where, err)
			}
		case RewardBundle:
			if _, err := c.Bundle(r.ItemID); err != nil {
				return fmt.Errorf("catalog: %s: %w", where, err)
			}
		default:
			return fmt.Errorf("catalog: %s: unknown reward type %q", where, r.Type)
		}
		return nil
	}

	for level, r := range c.LevelRewards {
		if err := checkReward(fmt.Sprintf("level %d reward", level), r, false); err != nil {
			return err
		}
	}
	for id, b := range c.Bundles {
		for _, itemID := range b.Items {
			// Bundle items must be concrete cosmetics; a bundle id here
			// would be a nested bundle, which is a configuration error.
			if _, _, _, err := c.Item(itemID); err != nil {
				return fmt.Errorf("catalog: bundle %q: %w", id, err)
			}
		}
		if b.Gems < 0 || b.Diamonds < 0 {
			return fmt.Errorf("catalog: bundle %q has negative currency", id)
		}
	}
	for _, q := range c.Quests {
		if q.Goal <= 0 {
			return fmt.Errorf("catalog: quest %q has non-positive goal", q.ID)
		}
		if q.Reward.Type != RewardGems && q.Reward.Type != RewardXP {
			return fmt.Errorf("catalog: quest %q reward must be gems or xp, got %q", q.ID, q.Reward.Type)
		}
		if err := checkReward(fmt.Sprintf("quest %q reward", q.ID), q.Reward, true); err != nil {
			return err
		}
	}
	if !sort.SliceIsSorted(c.PassTiers, func(i, j int) bool {
		return c.PassTiers[i].RequiredXP < c.PassTiers[j].RequiredXP
	}) {
		return fmt.Errorf("catalog: pass tiers are not sorted by required xp")
	}
	for i, tier := range c.PassTiers {
		if err := checkReward(fmt.Sprintf("pass tier %d reward", i), tier.Reward, false); err != nil {
			return err
		}
	}
	for _, b := range c.Boosts {
		if b.XP <= 0 || b.Cost <= 0 {
			return fmt.Errorf("catalog: boost %q has non-positive xp or cost", b.ID)
		}
	}
	return nil
}
