package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/services"
)

// GetProfile returns the full profile state with derived projection values.
func GetProfile(c *gin.Context) {
	res, err := services.View(profileID(c), func(l *economy.Ledger) {})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, nil)
}

// ResetProfile discards all progression and returns the first-run defaults.
// Explicit, destructive, client-initiated.
func ResetProfile(c *gin.Context) {
	res, err := services.Reset(profileID(c))
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, nil)
}

// Login performs the once-per-day rollover: stale quest state is cleared and
// the daily streak advances or resets.
func Login(c *gin.Context) {
	var rolled bool
	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		rolled = l.Rollover()
		return nil
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	payload := statePayload(res, nil)
	payload["rolledOver"] = rolled
	c.JSON(http.StatusOK, payload)
}
