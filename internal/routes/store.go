package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/handlers"
)

func RegisterStoreRoutes(r gin.IRouter) {
	store := r.Group("/store")
	{
		store.GET("/catalog", handlers.GetCatalog)
		store.POST("/purchase", handlers.PurchaseItem)
		store.POST("/equip", handlers.EquipItem)
		store.POST("/boosts/:id/purchase", handlers.PurchaseBoost)
	}
}
