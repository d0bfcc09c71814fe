package fixtures

import (
	"strings"

	"fidexia/backend/utils"

	"github.com/shopspring/decimal"
)

const all = "all"

var hundred = decimal.NewFromInt(100)

// FilterPosts keeps posts of one category; "all" keeps everything.
func FilterPosts(posts []ForumPost, category string) []ForumPost {
	if category == "" || category == all {
		return posts
	}
	out := []ForumPost{}
	for _, p := range posts {
		if utils.FoldEqual(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// MatchOpportunity matches the search text against title and sector and the
// sector option against the sector, ignoring case and accents.
func MatchOpportunity(op Opportunity, query, sector string) bool {
	if q := utils.Fold(query); q != "" {
		if !strings.Contains(utils.Fold(op.Title), q) && !strings.Contains(utils.Fold(op.Sector), q) {
			return false
		}
	}
	if sec := utils.Fold(sector); sec != "" && sec != all {
		return utils.FoldEqual(op.Sector, sec)
	}
	return true
}

// FundingPercent is raised/goal as a whole percentage, rounded half up.
func FundingPercent(raised, goal decimal.Decimal) int {
	if !goal.IsPositive() {
		return 0
	}
	return int(raised.Mul(hundred).Div(goal).Round(0).IntPart())
}

type PortfolioTotals struct {
	Invested  decimal.Decimal `json:"invested"`
	Active    int             `json:"active"`
	Completed int             `json:"completed"`
	AvgROI    decimal.Decimal `json:"avg_roi"`
}

// Totals sums a portfolio. AvgROI is weighted by amount.
func Totals(invs []Investment) PortfolioTotals {
	t := PortfolioTotals{Invested: decimal.Zero, AvgROI: decimal.Zero}
	weighted := decimal.Zero
	for _, inv := range invs {
		t.Invested = t.Invested.Add(inv.Amount)
		weighted = weighted.Add(inv.Amount.Mul(decimal.NewFromInt(int64(inv.ROI))))
		switch inv.Status {
		case InvestmentActive:
			t.Active++
		case InvestmentCompleted:
			t.Completed++
		}
	}
	if t.Invested.IsPositive() {
		t.AvgROI = weighted.Div(t.Invested).Round(1)
	}
	return t
}

type Projection struct {
	Amount decimal.Decimal `json:"amount"`
	Gain   decimal.Decimal `json:"gain"`
	Total  decimal.Decimal `json:"total"`
	Months int             `json:"months"`
}

// Project computes the return shown next to the investment amount.
func Project(p ProjectDetail, amount decimal.Decimal) Projection {
	gain := amount.Mul(decimal.NewFromInt(int64(p.ROI))).Div(hundred)
	return Projection{Amount: amount, Gain: gain, Total: amount.Add(gain), Months: p.TimelineMonth}
}

// MeetsMinimum reports whether an amount clears the project's minimum ticket.
func MeetsMinimum(p ProjectDetail, amount decimal.Decimal) bool {
	return amount.IsPositive() && amount.GreaterThanOrEqual(p.MinInvestment)
}
