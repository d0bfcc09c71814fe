package controllers

import (
	"context"
	"net/http"
	"time"

	"fidexia/backend/config"
	"fidexia/backend/fixtures"
	"fidexia/backend/logger"
	"fidexia/backend/metrics"
	"fidexia/backend/middlewares"
	"fidexia/backend/screens"
	"fidexia/backend/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const storeTimeout = 5 * time.Second

// Deps is what every handler factory closes over.
type Deps struct {
	Cfg     config.Config
	Store   session.Store
	Screens *screens.Registry
	Data    fixtures.Provider
	Gateway Gateway
	Metrics *metrics.Metrics
}

// action mutates the caller's session. Returning false means it already wrote an error response.
type action func(c *gin.Context, s *session.Session) bool

// sessionAction runs fn, saves the session and answers with the resolved screen.
func sessionAction(d *Deps, fn action) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := middlewares.CurrentSession(c)
		if s == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "no session"})
			return
		}
		before := s.CurrentView
		if !fn(c, s) {
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		if err := d.Store.Save(ctx, s); err != nil {
			logger.FromGin(c).Error("save session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "session store error"})
			return
		}
		if s.CurrentView != before {
			d.Metrics.Navigated(s.CurrentView.String())
			logger.FromGin(c).Debug("navigated",
				zap.String("from", before.String()),
				zap.String("to", s.CurrentView.String()),
			)
		}
		respondScreen(c, d, s, http.StatusOK)
	}
}

func respondScreen(c *gin.Context, d *Deps, s *session.Session, status int) {
	scr, ok := resolve(c, d, s)
	if !ok {
		return
	}
	c.JSON(status, scr)
}

func resolve(c *gin.Context, d *Deps, s *session.Session) (screens.Screen, bool) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
	defer cancel()
	scr, err := d.Screens.Resolve(ctx, s)
	if err != nil {
		logger.FromGin(c).Error("resolve screen", zap.String("view", s.CurrentView.String()), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not build screen"})
		return screens.Screen{}, false
	}
	return scr, true
}

func badRequest(c *gin.Context, msg string) bool {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
	return false
}

func fail(c *gin.Context, status int, msg string) bool {
	c.JSON(status, gin.H{"error": msg})
	return false
}

// internal logs err against the request and answers 500.
func internal(c *gin.Context, what string, err error) bool {
	logger.FromGin(c).Error(what, zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": what + " failed"})
	return false
}

// onView rejects intents that only make sense on one screen.
func onView(c *gin.Context, s *session.Session, v session.ViewID) bool {
	if s.CurrentView != v {
		return fail(c, http.StatusConflict, v.String()+" is not open")
	}
	return true
}

// noop answers with the screen unchanged; used for intents that persist nothing.
func noop(_ *gin.Context, _ *session.Session) bool { return true }
