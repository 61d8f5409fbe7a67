package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/services"
)

// GetPass returns every level-pass tier against the profile's lifetime XP.
func GetPass(c *gin.Context) {
	var views []economy.PassTierView
	res, err := services.View(profileID(c), func(l *economy.Ledger) {
		views = l.PassViews()
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	payload := statePayload(res, nil)
	payload["tiers"] = views
	c.JSON(http.StatusOK, payload)
}

// ClaimPassTier pays out an unlocked level-pass tier exactly once.
func ClaimPassTier(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tier index"})
		return
	}

	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		return l.ClaimPassReward(index)
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, nil)
}
