package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"wanderworld/pkg/utils"
)

const (
	VisitorCookie = "ww_visitor"
	visitorIDKey  = "visitor_id"
)

// VisitorMiddleware resolves the visitor id from the signed visitor cookie.
// A missing or invalid cookie starts a new visitor.
func VisitorMiddleware(tokens *utils.VisitorTokens, secure bool, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw, err := c.Cookie(VisitorCookie); err == nil && raw != "" {
			if visitorID, err := tokens.ValidateToken(raw); err == nil {
				c.Set(visitorIDKey, visitorID)
				c.Next()
				return
			}
		}

		visitorID := uuid.New()
		token, err := tokens.CreateToken(visitorID)
		if err != nil {
			logger.Error("Failed to sign visitor token",
				zap.String("trace_id", c.GetString("trace_id")),
				zap.Error(err))
			utils.RespondError(c, http.StatusInternalServerError, "Internal server error")
			c.Abort()
			return
		}

		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(VisitorCookie, token, int(tokens.TTL().Seconds()), "/", "", secure, true)
		c.Set(visitorIDKey, visitorID)
		c.Next()
	}
}

// VisitorID returns the id set by VisitorMiddleware.
func VisitorID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(visitorIDKey)
	if !ok {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
