package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/database"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/services"
)

const catalogCacheKey = "catalog:v1"

type catalogResponse struct {
	Colors      interface{} `json:"colors"`
	Accessories interface{} `json:"accessories"`
	Quests      interface{} `json:"quests"`
	PassTiers   interface{} `json:"passTiers"`
	Boosts      interface{} `json:"boosts"`
}

// GetCatalog serves the static store catalog. The payload never changes
// within a deploy, so it is cached in Redis when available.
func GetCatalog(c *gin.Context) {
	if database.Redis != nil {
		var cached catalogResponse
		if err := database.CacheGet(catalogCacheKey, &cached); err == nil {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	cat := services.Catalog
	resp := catalogResponse{
		Colors:      cat.Colors,
		Accessories: cat.Accessories,
		Quests:      cat.Quests,
		PassTiers:   cat.PassTiers,
		Boosts:      cat.Boosts,
	}

	if database.Redis != nil {
		_ = database.CacheSet(catalogCacheKey, resp, time.Hour)
	}

	c.JSON(http.StatusOK, resp)
}

type purchaseRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// PurchaseItem buys a cosmetic. The balance check runs before any mutation,
// so a failed purchase leaves the profile untouched.
func PurchaseItem(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
		return
	}

	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		return l.PurchaseItem(req.ItemID)
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, nil)
}

type equipRequest struct {
	ItemID string `json:"itemId" binding:"required"`
}

// EquipItem equips an owned cosmetic.
func EquipItem(c *gin.Context) {
	var req equipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemId is required"})
		return
	}

	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		return l.EquipItem(req.ItemID)
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, nil)
}

// PurchaseBoost buys a one-time XP boost and applies its XP immediately.
func PurchaseBoost(c *gin.Context) {
	boostID := c.Param("id")

	var ups []economy.LevelUp
	res, err := services.WithLedger(profileID(c), func(l *economy.Ledger) error {
		var err error
		ups, err = l.PurchaseXPBoost(boostID)
		return err
	})
	if err != nil {
		respondEconomyError(c, err)
		return
	}
	respondState(c, res, ups)
}
