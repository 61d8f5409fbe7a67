package handlers

import (
	stderrors "errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/internal/catalog"
	"github.com/pushp314/stenpan-backend/internal/economy"
	"github.com/pushp314/stenpan-backend/internal/services"
	"github.com/pushp314/stenpan-backend/pkg/errors"
	"github.com/pushp314/stenpan-backend/pkg/logger"
)

func profileID(c *gin.Context) string {
	id := c.GetString("profileId")
	if id == "" {
		// ProfileMiddleware always sets this on API routes; the fallback
		// exists for handlers invoked directly in tests.
		return "local"
	}
	return id
}

// statePayload is the common response body: full profile state plus the
// derived projection. levelUps is included when an operation crossed levels.
func statePayload(res services.Result, ups []economy.LevelUp) gin.H {
	payload := gin.H{
		"profile":       res.Profile,
		"customization": res.Customization,
		"projection":    economy.Project(&res.Profile),
	}
	if len(ups) > 0 {
		payload["levelUps"] = ups
	}
	if res.PersistWarning {
		payload["persistWarning"] = "Recent progress could not be saved and may not survive a restart"
	}
	return payload
}

// respondEconomyError maps domain failures to HTTP responses. Expected
// failures (funds, claims, cooldowns) are client errors; unknown catalog
// references are configuration faults and surface as 500s.
func respondEconomyError(c *gin.Context, err error) {
	var appErr *errors.AppError
	var refErr *catalog.UnknownReferenceError

	switch {
	case stderrors.Is(err, economy.ErrInsufficientFunds):
		appErr = errors.BadRequest("insufficient_funds", "Not enough currency for this purchase")
	case stderrors.Is(err, economy.ErrAlreadyOwned):
		appErr = errors.Conflict("already_owned", "Item is already owned")
	case stderrors.Is(err, economy.ErrAlreadyClaimed):
		appErr = errors.Conflict("already_claimed", "Reward has already been claimed")
	case stderrors.Is(err, economy.ErrNoReward):
		appErr = errors.NotFound("no_reward", "No reward is defined for this level")
	case stderrors.Is(err, economy.ErrLevelNotReached):
		appErr = errors.BadRequest("level_not_reached", "Level has not been reached yet")
	case stderrors.Is(err, economy.ErrTierLocked):
		appErr = errors.BadRequest("tier_locked", "Not enough total XP to unlock this tier")
	case stderrors.Is(err, economy.ErrQuestIncomplete):
		appErr = errors.BadRequest("quest_incomplete", "Quest goal has not been reached")
	case stderrors.Is(err, economy.ErrInvalidEquip):
		appErr = errors.BadRequest("invalid_equip", "Cannot equip an item you do not own")
	case stderrors.Is(err, economy.ErrOnCooldown):
		appErr = errors.Conflict("cooldown_active", "Daily reward is still on cooldown")
	case stderrors.Is(err, economy.ErrUnknownCode):
		appErr = errors.NotFound("unknown_code", "Unknown redeem code")
	case stderrors.As(err, &refErr):
		logger.Error().Err(err).Msg("Catalog reference error")
		appErr = errors.Internal("catalog_error", "Catalog configuration error")
	default:
		logger.Error().Err(err).Msg("Economy operation failed")
		appErr = errors.ErrInternalServer
	}

	c.JSON(appErr.Status, gin.H{"error": appErr.Message, "code": appErr.Code})
}

func respondState(c *gin.Context, res services.Result, ups []economy.LevelUp) {
	c.JSON(http.StatusOK, statePayload(res, ups))
}

// normalizeCode matches the client behavior: codes are case-insensitive and
// whitespace-tolerant.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
