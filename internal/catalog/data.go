package catalog

import "github.com/pushp314/stenpan-backend/internal/models"

// Default builds the shipped catalog. Prices and reward tables mirror the
// Stenpan client's store data. Levels above models.MaxLevel are retained as
// data but unreachable on the level track.
func Default() *Catalog {
	c := &Catalog{
		Colors: []ColorItem{
			{ID: "color-default", Name: "Default", Price: 0, Currency: models.CurrencyGems, Value: "#f3f4f6", Description: "Classic and clean."},
			{ID: "color-ice", Name: "Ice", Price: 10, Currency: models.CurrencyGems, Value: "linear-gradient(135deg, #e0f2fe, #a5f3fc)", Description: "A cool, frosty look."},
			{ID: "color-graphite", Name: "Graphite", Price: 100, Currency: models.CurrencyGems, Value: "#374151", Description: "Sleek and professional."},
			{ID: "color-gold", Name: "Gold", Price: 500, Currency: models.CurrencyGems, Value: "#fBBF24", Description: "Luxurious and bold."},
			{ID: "color-indigo", Name: "Indigo", Price: 250, Currency: models.CurrencyGems, Value: "#6366f1", Description: "Vibrant and creative."},
			{ID: "color-rose", Name: "Rose", Price: 250, Currency: models.CurrencyGems, Value: "#f43f5e", Description: "Playful and energetic."},
			{ID: "color-ocean", Name: "Ocean", Price: 350, Currency: models.CurrencyGems, Value: "#14b8a6", Description: "Calm and refreshing."},
			{ID: "color-cosmic", Name: "Cosmic", Price: 1000, Currency: models.CurrencyGems, Value: "linear-gradient(135deg, #4f46e5, #c026d3)", Description: "A glimpse into the void."},
			{ID: "color-deep-purple", Name: "Deep Purple", Price: 750, Currency: models.CurrencyGems, Value: "#581c87", Description: "From Abdelhak's Collection."},
			{ID: "color-cyber-green", Name: "Cyber Green", Price: 750, Currency: models.CurrencyGems, Value: "#65a30d", Description: "From Abdeljabbar's Collection."},
			{ID: "color-holographic", Name: "Holographic Blue", Price: 20, Currency: models.CurrencyDiamonds, Value: "linear-gradient(135deg, #0ea5e9, #6366f1)", Description: "A futuristic sheen."},
			{ID: "color-moderator-red", Name: "Moderator Red", Price: 600, Currency: models.CurrencyGems, Value: "#ef4444", Description: "Enforce the rules in style."},
			{ID: "color-stealth-black", Name: "Stealth Black", Price: 600, Currency: models.CurrencyGems, Value: "#111827", Description: "For covert operations."},
		},
		Accessories: []AccessoryItem{
			{ID: "accessory-none", Name: "None", Price: 0, Currency: models.CurrencyGems, Description: "Au naturel."},
			{ID: "accessory-top-hat", Name: "Top Hat", Price: 300, Currency: models.CurrencyGems, Description: "For a distinguished bot."},
			{ID: "accessory-sunglasses", Name: "Sunglasses", Price: 200, Currency: models.CurrencyGems, Description: "Stay cool under pressure."},
			{ID: "accessory-bow-tie", Name: "Bow Tie", Price: 150, Currency: models.CurrencyGems, Description: "Bow ties are cool."},
			{ID: "accessory-propeller-hat", Name: "Propeller Hat", Price: 400, Currency: models.CurrencyGems, Description: "Ready for takeoff!"},
			{ID: "accessory-crown", Name: "Crown", Price: 50, Currency: models.CurrencyDiamonds, Description: "For the true AI royalty."},
			{ID: "accessory-monocle", Name: "Golden Monocle", Price: 600, Currency: models.CurrencyGems, Description: "See the world wisely."},
			{ID: "accessory-visor", Name: "Holographic Visor", Price: 600, Currency: models.CurrencyGems, Description: "Future-proof your vision."},
			{ID: "accessory-earmuffs", Name: "Ear Muffs", Price: 250, Currency: models.CurrencyGems, Description: "Block out the noise."},
			{ID: "accessory-goggles", Name: "Goggles", Price: 350, Currency: models.CurrencyGems, Description: "For hazardous chats."},
			{ID: "accessory-scarf", Name: "Scarf", Price: 150, Currency: models.CurrencyGems, Description: "Cozy and stylish."},
			{ID: "accessory-antennae", Name: "Antennae", Price: 400, Currency: models.CurrencyGems, Description: "Enhanced signal reception."},
			{ID: "accessory-security-visor", Name: "Security Visor", Price: 500, Currency: models.CurrencyGems, Description: "Identify rule-breakers."},
			{ID: "accessory-shoulder-beacon", Name: "Shoulder Beacon", Price: 500, Currency: models.CurrencyGems, Description: "A warning light."},
			{ID: "accessory-moderator-badge", Name: "Moderator Badge", Price: 500, Currency: models.CurrencyGems, Description: "Official business."},
		},
		LevelRewards: map[int]Reward{
			2:  {Type: RewardGems, Name: "Bonus Gems", Amount: 100},
			3:  {Type: RewardColor, Name: "Graphite Color", ItemID: "color-graphite"},
			4:  {Type: RewardGems, Name: "Bonus Gems", Amount: 200},
			5:  {Type: RewardAccessory, Name: "Bow Tie", ItemID: "accessory-bow-tie"},
			6:  {Type: RewardGems, Name: "Bonus Gems", Amount: 300},
			7:  {Type: RewardColor, Name: "Indigo Color", ItemID: "color-indigo"},
			8:  {Type: RewardGems, Name: "Bonus Gems", Amount: 400},
			9:  {Type: RewardAccessory, Name: "Sunglasses", ItemID: "accessory-sunglasses"},
			10: {Type: RewardBundle, Name: "Decade Prize!", ItemID: "decade-prize"},
			11: {Type: RewardGems, Name: "Bonus Gems", Amount: 600},
			12: {Type: RewardAccessory, Name: "Top Hat", ItemID: "accessory-top-hat"},
			13: {Type: RewardGems, Name: "Bonus Gems", Amount: 750},
			14: {Type: RewardAccessory, Name: "Propeller Hat", ItemID: "accessory-propeller-hat"},
			15: {Type: RewardBundle, Name: "Grand Prize!", ItemID: "grand-prize"},
			16: {Type: RewardGems, Name: "Bonus Gems", Amount: 1200},
			17: {Type: RewardColor, Name: "Rose Color", ItemID: "color-rose"},
			18: {Type: RewardGems, Name: "Bonus Gems", Amount: 1500},
			19: {Type: RewardDiamonds, Name: "Premium Diamonds", Amount: 10},
			20: {Type: RewardBundle, Name: "Ultimate Reward", ItemID: "ultimate-reward"},
			21: {Type: RewardDiamonds, Name: "Premium Diamonds", Amount: 20},
			22: {Type: RewardGems, Name: "Bonus Gems", Amount: 2000},
			23: {Type: RewardBundle, Name: "Abdelhak's Pick", ItemID: "abdelhak-pick"},
			24: {Type: RewardGems, Name: "Bonus Gems", Amount: 2500},
			25: {Type: RewardBundle, Name: "Abdeljabbar's Pick", ItemID: "abdeljabbar-pick"},
		},
		Bundles: map[string]Bundle{
			"decade-prize":     {ID: "decade-prize", Gems: 500, Items: []string{"color-ocean"}},
			"grand-prize":      {ID: "grand-prize", Gems: 1000, Items: []string{"color-cosmic"}},
			"ultimate-reward":  {ID: "ultimate-reward", Gems: 2000, Items: []string{"accessory-crown"}},
			"abdelhak-pick":    {ID: "abdelhak-pick", Gems: 500, Items: []string{"color-deep-purple", "accessory-monocle"}},
			"abdeljabbar-pick": {ID: "abdeljabbar-pick", Gems: 500, Items: []string{"color-cyber-green", "accessory-visor"}},
			"pass-champion":    {ID: "pass-champion", Diamonds: 25, Items: []string{"accessory-earmuffs"}},
		},
		Quests: []QuestTemplate{
			{
				ID:          "SEND_5_MESSAGES",
				Title:       "Chatterbox",
				Description: "Send 5 messages to the AI.",
				Goal:        5,
				Action:      ActionSendMessage,
				Reward:      Reward{Type: RewardXP, Amount: 25},
			},
			{
				ID:          "GENERATE_1_IMAGE",
				Title:       "Budding Artist",
				Description: "Generate 1 image using the AI.",
				Goal:        1,
				Action:      ActionGenerateImage,
				Reward:      Reward{Type: RewardXP, Amount: 20},
			},
			{
				ID:          "SUPPORT_10_CLICKS",
				Title:       "Show Some Love",
				Description: "Use the Support Heart 10 times.",
				Goal:        10,
				Action:      ActionSupportClick,
				Reward:      Reward{Type: RewardGems, Amount: 50},
			},
			{
				ID:          "SEND_20_MESSAGES",
				Title:       "Conversationalist",
				Description: "Send 20 messages to the AI.",
				Goal:        20,
				Action:      ActionSendMessage,
				Reward:      Reward{Type: RewardGems, Amount: 100},
			},
		},
		PassTiers: []PassTier{
			{RequiredXP: 100, Reward: Reward{Type: RewardGems, Name: "Small Gem Pouch", Amount: 50}},
			{RequiredXP: 250, Reward: Reward{Type: RewardColor, Name: "Ice Color", ItemID: "color-ice"}},
			{RequiredXP: 500, Reward: Reward{Type: RewardGems, Name: "Gem Stash", Amount: 150}},
			{RequiredXP: 750, Reward: Reward{Type: RewardAccessory, Name: "Scarf", ItemID: "accessory-scarf"}},
			{RequiredXP: 1000, Reward: Reward{Type: RewardDiamonds, Name: "Shiny Diamond", Amount: 5}},
			{RequiredXP: 1500, Reward: Reward{Type: RewardGems, Name: "Large Gem Pouch", Amount: 300}},
			{RequiredXP: 2000, Reward: Reward{Type: RewardColor, Name: "Rose Color", ItemID: "color-rose"}},
			{RequiredXP: 2500, Reward: Reward{Type: RewardAccessory, Name: "Goggles", ItemID: "accessory-goggles"}},
			{RequiredXP: 3500, Reward: Reward{Type: RewardGems, Name: "Gem Hoard", Amount: 500}},
			{RequiredXP: 5000, Reward: Reward{Type: RewardBundle, Name: "Pass Champion", ItemID: "pass-champion"}},
		},
		Boosts: []XPBoost{
			{ID: "XP50_BOOST", Title: "XP50", XP: 50, Cost: 500, Currency: models.CurrencyGems},
			{ID: "XP100_BOOST", Title: "XP100", XP: 100, Cost: 900, Currency: models.CurrencyGems},
			{ID: "XP500_BOOST", Title: "XP500", XP: 500, Cost: 20, Currency: models.CurrencyDiamonds},
			{ID: "XP1000_BOOST", Title: "XP1000", XP: 1000, Cost: 35, Currency: models.CurrencyDiamonds},
		},
		Codes: map[string]RedeemCode{
			"DIAMONDCASINO": {Code: "DIAMONDCASINO", Gems: 500},
			"TYOP700":       {Code: "TYOP700", Diamonds: 50},
		},
		ActionXP: map[ActionKind]int{
			ActionSendMessage:   15,
			ActionGenerateImage: 25,
			ActionEditImage:     30,
			ActionUseVoice:      5, // per transcript entry
			ActionSupportClick:  1,
		},
	}
	c.index()
	return c
}
