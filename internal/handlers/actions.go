package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/services"
)

type actionRequest struct {
	Action catalog.ActionKind `json:"action" binding:"required"`
	Amount int                `json:"amount"`
}

// RecordAction ingests a gameplay action from the client: quest progress for
// matching daily quests plus the per-action XP grant. XP for a sent message
// is granted before the AI response resolves; a failed generation does not
// claw it back.
func RecordAction(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action is required"})
		return
	}
	if req.Amount <= 0 {
		req.Amount = 1
	}

	xpPerUnit, known := services.Catalog.ActionXP[req.Action]
	if !known {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown action kind"})
		return
	}

	var ups []economy.LevelUp
	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		if req.Action == catalog.ActionSupportClick {
			// The support heart has its own flow: click counter, derived
			// support level, 1 XP per click.
			for i := 0; i < req.Amount; i++ {
				ups = append(ups, l.RecordSupportClick()...)
			}
		} else {
			ups = l.GrantXP(xpPerUnit * req.Amount)
		}
		l.RecordAction(req.Action, req.Amount)
		return nil
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, ups)
}
