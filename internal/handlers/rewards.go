package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/services"
)

// ClaimLevelReward pays out the reward for a reached level. Claiming twice
// is rejected and never double-pays.
func ClaimLevelReward(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil || level < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid level"})
		return
	}

	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		return l.ClaimLevelReward(level)
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, nil)
}

// ClaimDailyGems credits the 24-hour gem stipend.
func ClaimDailyGems(c *gin.Context) {
	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		return l.ClaimDailyGems()
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, nil)
}

type redeemRequest struct {
	Code string `json:"code" binding:"required"`
}

// Redeem applies a promotional code.
func Redeem(c *gin.Context) {
	var req redeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code is required"})
		return
	}

	var granted gin.H
	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		rc, err := l.RedeemCode(normalizeCode(req.Code))
		if err != nil {
			return err
		}
		granted = gin.H{"gems": rc.Gems, "diamonds": rc.Diamonds}
		return nil
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	payload := statePayload(res, nil)
	payload["granted"] = granted
	c.JSON(http.StatusOK, payload)
}
