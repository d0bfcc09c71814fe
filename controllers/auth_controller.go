package controllers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"fidexia/backend/models"
	"fidexia/backend/session"

	"github.com/gin-gonic/gin"
)

// SetRoleTab picks the investor/entrepreneur tab on login and register.
func SetRoleTab(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.RoleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		r, ok := session.ParseRole(req.Role)
		if !ok {
			return badRequest(c, "unknown role")
		}
		s.SetPendingRole(r)
		return true
	})
}

// Login sets the role and lands on its dashboard. An empty body uses the selected tab.
func Login(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			return badRequest(c, "invalid body")
		}
		r := s.PendingRole
		if strings.TrimSpace(req.Role) != "" {
			parsed, ok := session.ParseRole(req.Role)
			if !ok {
				return badRequest(c, "unknown role")
			}
			r = parsed
		}
		if !r.Valid() {
			r = session.RoleInvestor
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		if err := d.Gateway.Authenticate(ctx, s.ID, r); err != nil {
			return internal(c, "login", err)
		}
		s.Login(r)
		d.Metrics.LoggedIn(r.String())
		return true
	})
}

func RegisterNext(d *Deps) gin.HandlerFunc {
	return flowStep(d, session.FlowRegistration, (*session.Session).FormNext)
}

func RegisterPrevious(d *Deps) gin.HandlerFunc {
	return flowStep(d, session.FlowRegistration, (*session.Session).FormPrevious)
}

// VerifyEmail is the registration flow's final step: it logs in with the selected tab.
func VerifyEmail(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.VerifyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "verification code must be 6 digits")
		}
		if !ensureFlow(c, s, session.FlowRegistration) {
			return false
		}
		if !s.Form.IsLast() {
			return fail(c, http.StatusConflict, session.ErrFlowNotComplete.Error())
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		if err := d.Gateway.VerifyEmail(ctx, s.ID, req.Code); err != nil {
			return internal(c, "email verification", err)
		}
		return completeFlow(c, d, s)
	})
}

// flowStep moves the active flow one step if it is the expected one.
func flowStep(d *Deps, fl session.Flow, step func(*session.Session) error) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		if !ensureFlow(c, s, fl) {
			return false
		}
		if err := step(s); err != nil {
			return fail(c, http.StatusConflict, err.Error())
		}
		return true
	})
}

func ensureFlow(c *gin.Context, s *session.Session, fl session.Flow) bool {
	if s.Form == nil || s.FormFlow != fl {
		return fail(c, http.StatusConflict, session.ErrNoActiveFlow.Error())
	}
	return true
}

func completeFlow(c *gin.Context, d *Deps, s *session.Session) bool {
	fl, err := s.CompleteFlow()
	if err != nil {
		return fail(c, http.StatusConflict, err.Error())
	}
	d.Metrics.FlowCompleted(string(fl))
	if fl == session.FlowRegistration {
		d.Metrics.LoggedIn(s.UserType.String())
	}
	return true
}
