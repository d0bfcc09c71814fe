package controllers

import (
	"context"
	"net/http"

	"fidexia/backend/logger"
	"fidexia/backend/middlewares"
	"fidexia/backend/models"
	"fidexia/backend/session"
	"fidexia/backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateSession opens a fresh session on landing and hands back its token.
func CreateSession(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := session.New(uuid.NewString())

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		if err := d.Store.Save(ctx, s); err != nil {
			logger.FromGin(c).Error("save session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session store error"})
			return
		}
		token, err := utils.GenerateJWT(d.Cfg.JWTSecret, s.ID, d.Cfg.SessionTTL)
		if err != nil {
			logger.FromGin(c).Error("sign token", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		scr, ok := resolve(c, d, s)
		if !ok {
			return
		}
		d.Metrics.SessionCreated()
		logger.FromGin(c).Info("session created", zap.String("session_id", s.ID))
		c.JSON(http.StatusCreated, models.SessionResponse{Token: token, Screen: scr})
	}
}

// GetScreen renders the current view without touching state.
func GetScreen(d *Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := middlewares.CurrentSession(c)
		if s == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		respondScreen(c, d, s, http.StatusOK)
	}
}

func Navigate(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.NavigateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		s.NavigateString(req.View)
		return true
	})
}

func Logout(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		s.Logout()
		return true
	})
}

func ToggleOverlay(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		switch c.Param("name") {
		case "menu":
			s.ToggleMenu()
		case "notifications":
			s.ToggleNotifications()
		case "profile":
			s.ToggleProfileMenu()
		default:
			return fail(c, http.StatusNotFound, "unknown overlay")
		}
		return true
	})
}

func CloseOverlays(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		s.CloseOverlays()
		return true
	})
}
