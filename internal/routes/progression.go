package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/handlers"
)

func RegisterProgressionRoutes(r gin.IRouter) {
	rewards := r.Group("/rewards")
	{
		rewards.POST("/levels/:level/claim", handlers.ClaimLevelReward)
	}

	pass := r.Group("/pass")
	{
		pass.GET("", handlers.GetPass)
		pass.POST("/tiers/:index/claim", handlers.ClaimPassTier)
	}

	quests := r.Group("/quests")
	{
		quests.GET("", handlers.GetQuests)
		quests.POST("/:id/claim", handlers.ClaimQuest)
	}
}
