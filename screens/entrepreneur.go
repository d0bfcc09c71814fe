package screens

import (
	"context"

	"fidexia/backend/fixtures"
	"fidexia/backend/session"
)

type QuickAction struct {
	Label string         `json:"label"`
	View  session.ViewID `json:"view"`
}

type EntrepreneurDashboardData struct {
	fixtures.EntrepreneurOverview
	FundedPercent int               `json:"funded_percent"`
	Actions       []QuickAction     `json:"actions"`
	Courses       []fixtures.Course `json:"courses"`
}

func entrepreneurDashboard(ctx context.Context, _ *session.Session, data fixtures.Provider) (any, error) {
	ov, err := data.EntrepreneurOverview(ctx)
	if err != nil {
		return nil, err
	}
	courses, err := data.RecommendedCourses(ctx)
	if err != nil {
		return nil, err
	}
	return EntrepreneurDashboardData{
		EntrepreneurOverview: ov,
		FundedPercent:        fixtures.FundingPercent(ov.Raised, ov.Goal),
		Actions: []QuickAction{
			{Label: "Nuevo Proyecto", View: session.ViewNewProject},
			{Label: "Centro de Aprendizaje", View: session.ViewLearningCenter},
		},
		Courses: courses,
	}, nil
}

type NewProjectData struct {
	Form     *FormData      `json:"form"`
	BackTo   session.ViewID `json:"back_to"`
	OnSubmit session.ViewID `json:"on_submit"`
}

func newProject(_ context.Context, s *session.Session, _ fixtures.Provider) (any, error) {
	return NewProjectData{
		Form:     formData(s.FormFlow, s.Form),
		BackTo:   session.ViewEntrepreneurDashboard,
		OnSubmit: session.ViewEntrepreneurDashboard,
	}, nil
}
