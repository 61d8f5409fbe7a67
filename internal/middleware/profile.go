package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pushp314/stenpan-backend/pkg/utils"
)

// DefaultProfileID is used when the client sends no X-Profile-ID header.
// The browser app is single-user; multi-profile clients generate a UUID on
// first run and send it with every request.
const DefaultProfileID = "local"

// ProfileMiddleware resolves the profile the request operates on and sets
// "profileId" in the context for handlers and logging.
func ProfileMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Profile-ID")
		if id == "" {
			id = DefaultProfileID
		}
		if id != DefaultProfileID && !utils.IsUUID(id) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "X-Profile-ID must be a UUID"})
			c.Abort()
			return
		}
		c.Set("profileId", id)
		c.Next()
	}
}
