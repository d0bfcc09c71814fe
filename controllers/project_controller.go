package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"fidexia/backend/fixtures"
	"fidexia/backend/models"
	"fidexia/backend/screens"
	"fidexia/backend/session"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func ProjectNext(d *Deps) gin.HandlerFunc {
	return flowStep(d, session.FlowProjectSubmission, (*session.Session).FormNext)
}

func ProjectPrevious(d *Deps) gin.HandlerFunc {
	return flowStep(d, session.FlowProjectSubmission, (*session.Session).FormPrevious)
}

// SubmitProject finishes the submission flow and returns to the entrepreneur dashboard.
func SubmitProject(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		if !ensureFlow(c, s, session.FlowProjectSubmission) {
			return false
		}
		if !s.Form.IsLast() {
			return fail(c, http.StatusConflict, session.ErrFlowNotComplete.Error())
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		if err := d.Gateway.SubmitProject(ctx, s.ID); err != nil {
			return internal(c, "project submission", err)
		}
		return completeFlow(c, d, s)
	})
}

// SelectOpportunity opens project-detail for a card on the investor dashboard.
// The index is the card's position in the unfiltered list.
func SelectOpportunity(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		idx, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			return badRequest(c, "invalid index")
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		ops, err := d.Data.Opportunities(ctx)
		if err != nil {
			return internal(c, "load opportunities", err)
		}
		if idx < 0 || idx >= len(ops) {
			return fail(c, http.StatusNotFound, "opportunity not found")
		}
		s.SelectProject(screens.SummaryOf(ops[idx]))
		return true
	})
}

// ConfirmInvestment accepts an amount at or above the project's minimum.
// Nothing is persisted; the session stays on project-detail with the modal closed.
func ConfirmInvestment(d *Deps) gin.HandlerFunc {
	return sessionAction(d, func(c *gin.Context, s *session.Session) bool {
		var req models.InvestRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			return badRequest(c, "invalid body")
		}
		amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
		if err != nil || !amount.IsPositive() {
			return badRequest(c, "amount must be a positive number")
		}
		if s.UserType != session.RoleInvestor {
			return fail(c, http.StatusForbidden, "only investors can invest")
		}
		if !onView(c, s, session.ViewProjectDetail) {
			return false
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), storeTimeout)
		defer cancel()
		p, err := d.Data.FeaturedProject(ctx)
		if err != nil {
			return internal(c, "load project", err)
		}
		if sel := s.SelectedProject; sel != nil {
			p = screens.MergeSummary(p, *sel)
		}
		if !fixtures.MeetsMinimum(p, amount) {
			return badRequest(c, "amount is below the minimum investment of "+p.MinInvestment.StringFixed(0))
		}
		if err := d.Gateway.ConfirmInvestment(ctx, s.ID, p.Title, amount); err != nil {
			return internal(c, "investment", err)
		}
		s.CloseOverlays()
		return true
	})
}
