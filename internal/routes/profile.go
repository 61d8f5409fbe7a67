package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/handlers"
	"github.com/pushp314/stenpan-backend/internal/middleware"
)

func RegisterProfileRoutes(r gin.IRouter) {
	profile := r.Group("/profile")
	{
		profile.GET("", handlers.GetProfile)
		profile.POST("/reset", handlers.ResetProfile)
	}

	daily := r.Group("/daily")
	{
		daily.POST("/login", handlers.Login)
		daily.POST("/claim-gems", handlers.ClaimDailyGems)
	}

	r.POST("/redeem", handlers.Redeem)
	r.POST("/actions", middleware.ActionRateLimit(), handlers.RecordAction)
}
