package screens

import (
	"context"
	"strconv"
	"strings"

	"fidexia/backend/fixtures"
	"fidexia/backend/session"

	"github.com/shopspring/decimal"
)

type OpportunityCard struct {
	Index int `json:"index"`
	fixtures.Opportunity
	FundedPercent int `json:"funded_percent"`
}

type InvestorDashboardData struct {
	Stats         fixtures.InvestorStats `json:"stats"`
	SearchQuery   string                 `json:"search_query"`
	FilterSector  string                 `json:"filter_sector"`
	SectorOptions []string               `json:"sector_options"`
	Opportunities []OpportunityCard      `json:"opportunities"`
}

func investorDashboard(ctx context.Context, s *session.Session, data fixtures.Provider) (any, error) {
	stats, err := data.InvestorStats(ctx)
	if err != nil {
		return nil, err
	}
	sectors, err := data.SectorOptions(ctx)
	if err != nil {
		return nil, err
	}
	ops, err := data.Opportunities(ctx)
	if err != nil {
		return nil, err
	}

	// cards keep their index in the unfiltered list so selection stays stable
	cards := []OpportunityCard{}
	for i, op := range ops {
		if !fixtures.MatchOpportunity(op, s.SearchQuery, s.FilterSector) {
			continue
		}
		cards = append(cards, OpportunityCard{
			Index:         i,
			Opportunity:   op,
			FundedPercent: fixtures.FundingPercent(op.Raised, op.Goal),
		})
	}
	return InvestorDashboardData{
		Stats:         stats,
		SearchQuery:   s.SearchQuery,
		FilterSector:  s.FilterSector,
		SectorOptions: sectors,
		Opportunities: cards,
	}, nil
}

type PortfolioData struct {
	Investments []fixtures.Investment    `json:"investments"`
	Totals      fixtures.PortfolioTotals `json:"totals"`
	BackTo      session.ViewID           `json:"back_to"`
	ExportPath  string                   `json:"export_path"`
}

func investorPortfolio(ctx context.Context, _ *session.Session, data fixtures.Provider) (any, error) {
	invs, err := data.Investments(ctx)
	if err != nil {
		return nil, err
	}
	return PortfolioData{
		Investments: invs,
		Totals:      fixtures.Totals(invs),
		BackTo:      session.ViewInvestorDashboard,
		ExportPath:  "/api/portfolio/export",
	}, nil
}

type ProjectDetailData struct {
	fixtures.ProjectDetail
	Selected      *session.ProjectSummary `json:"selected,omitempty"`
	FundedPercent int                     `json:"funded_percent"`
	CanInvest     bool                    `json:"can_invest"`
	MinimumReturn fixtures.Projection     `json:"minimum_return"`
	BackTo        session.ViewID          `json:"back_to"`
}

// projectDetail shows the featured project, with the card the user picked laid over it.
func projectDetail(ctx context.Context, s *session.Session, data fixtures.Provider) (any, error) {
	p, err := data.FeaturedProject(ctx)
	if err != nil {
		return nil, err
	}
	out := ProjectDetailData{
		Selected:  s.SelectedProject,
		CanInvest: s.UserType == session.RoleInvestor,
		BackTo:    session.ViewInvestorDashboard,
	}
	if sel := s.SelectedProject; sel != nil {
		p = MergeSummary(p, *sel)
	}
	out.ProjectDetail = p
	out.FundedPercent = fixtures.FundingPercent(p.Raised, p.Goal)
	out.MinimumReturn = fixtures.Project(p, p.MinInvestment)
	return out, nil
}

// SummaryOf turns an opportunity card into the selection kept on the session.
func SummaryOf(op fixtures.Opportunity) session.ProjectSummary {
	return session.ProjectSummary{
		Title:  op.Title,
		Sector: op.Sector,
		ROI:    op.ROI,
		Goal:   op.Goal.IntPart(),
		Raised: op.Raised.IntPart(),
	}
}

// MergeSummary overrides the headline fields of a project with a selected card.
func MergeSummary(p fixtures.ProjectDetail, sel session.ProjectSummary) fixtures.ProjectDetail {
	p.Title = sel.Title
	p.Sector = sel.Sector
	p.Goal = decimal.NewFromInt(sel.Goal)
	p.Raised = decimal.NewFromInt(sel.Raised)
	if roi, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(sel.ROI), "%")); err == nil {
		p.ROI = roi
	}
	return p
}
