package economy

import "github.com/pushp314/stenpan-backend/internal/models"

// Projection is the read-only derived view of a profile's progression state,
// recomputed on demand and never cached.
type Projection struct {
	Level             int     `json:"level"`
	XP                int     `json:"xp"`
	XPToNextLevel     int     `json:"xpToNextLevel"` // 0 means maxed
	XPProgressPercent float64 `json:"xpProgressPercent"`
	TotalXP           int     `json:"totalXp"`
	MaxLevel          bool    `json:"maxLevel"`
	SupportLevel      int     `json:"supportLevel"`
	DailyStreak       int     `json:"dailyStreak"`
}

// Project computes the derived progression values for a profile.
func Project(p *models.Profile) Projection {
	proj := Projection{
		Level:        p.Level,
		XP:           p.XP,
		TotalXP:      p.TotalXP,
		SupportLevel: p.SupportLevel,
		DailyStreak:  p.DailyStreak,
	}
	if p.Level >= models.MaxLevel {
		proj.MaxLevel = true
		proj.XPProgressPercent = 100
		return proj
	}
	proj.XPToNextLevel = XPRequiredForNextLevel(p.Level)
	proj.XPProgressPercent = float64(p.XP) / float64(proj.XPToNextLevel) * 100
	return proj
}

// CanAfford reports whether the balance of the given currency covers cost.
func CanAfford(p *models.Profile, cost int, currency models.Currency) bool {
	return p.Balance(currency) >= cost
}
