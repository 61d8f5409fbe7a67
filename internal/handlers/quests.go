package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/services"
)

// GetQuests returns the daily quest templates joined with today's progress.
func GetQuests(c *gin.Context) {
	var views []economy.QuestView
	res, err := services.View(profileID(c), func(l *economy.Ledger) {
		views = l.QuestViews()
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	payload := statePayload(res, nil)
	payload["quests"] = views
	c.JSON(http.StatusOK, payload)
}

// ClaimQuest pays out a completed daily quest exactly once.
func ClaimQuest(c *gin.Context) {
	questID := c.Param("id")

	var ups []economy.LevelUp
	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		var err error
		ups, err = l.ClaimQuest(questID)
		return err
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, ups)
}
