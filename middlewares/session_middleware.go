package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"fidexia/backend/logger"
	"fidexia/backend/session"
	"fidexia/backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	SessionKey   = "session"
	SessionIDKey = "session_id"
)

// Session resolves the bearer token to a stored session and puts it in the context.
func Session(secret string, store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}
		t := strings.TrimPrefix(h, "Bearer ")
		claims, err := utils.ParseJWT(secret, t)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()
		s, err := store.Get(ctx, claims.SessionID)
		if errors.Is(err, session.ErrSessionNotFound) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		if err != nil {
			logger.FromGin(c).Error("load session", zap.String("session_id", claims.SessionID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "session store error"})
			return
		}
		c.Set(SessionKey, s)
		c.Set(SessionIDKey, s.ID)
		c.Next()
	}
}

// CurrentSession returns the session loaded by Session, or nil outside it.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(SessionKey)
	if !ok {
		return nil
	}
	s, _ := v.(*session.Session)
	return s
}
