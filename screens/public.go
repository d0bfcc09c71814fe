package screens

import (
	"context"

	"fidexia/backend/fixtures"
	"fidexia/backend/session"
)

type LandingData struct {
	Headline      string                 `json:"headline"`
	Tagline       string                 `json:"tagline"`
	TrustBadges   []string               `json:"trust_badges"`
	Benefits      []fixtures.Benefit     `json:"benefits"`
	Stories       []fixtures.ImpactStory `json:"stories"`
	LoginView     session.ViewID         `json:"login_view"`
	RegisterView  session.ViewID         `json:"register_view"`
	ExploreTarget string                 `json:"explore_target"`
	MenuOpen      bool                   `json:"menu_open"`
}

func landing(ctx context.Context, s *session.Session, data fixtures.Provider) (any, error) {
	benefits, err := data.Benefits(ctx)
	if err != nil {
		return nil, err
	}
	stories, err := data.ImpactStories(ctx)
	if err != nil {
		return nil, err
	}
	return LandingData{
		Headline:     "Inversión con Propósito, Impacto con Retorno",
		Tagline:      "Conecta a emprendedores sociales con inversionistas que buscan rentabilidad y transformación real.",
		TrustBadges:  []string{"Sin comisiones ocultas", "100% Seguro", "+10k usuarios activos"},
		Benefits:     benefits,
		Stories:      stories,
		LoginView:    session.ViewLogin,
		RegisterView: session.ViewRegister,
		// not a registered view; following it lands back here
		ExploreTarget: "projects",
		MenuOpen:      s.MenuOpen,
	}, nil
}

type RoleTab struct {
	Role   session.Role `json:"role"`
	Label  string       `json:"label"`
	Active bool         `json:"active"`
}

func roleTabs(active session.Role) []RoleTab {
	return []RoleTab{
		{Role: session.RoleInvestor, Label: "Inversor", Active: active == session.RoleInvestor},
		{Role: session.RoleEntrepreneur, Label: "Emprendedor", Active: active == session.RoleEntrepreneur},
	}
}

type LoginData struct {
	Tabs        []RoleTab      `json:"tabs"`
	Destination session.ViewID `json:"destination"`
}

func login(_ context.Context, s *session.Session, _ fixtures.Provider) (any, error) {
	return LoginData{
		Tabs:        roleTabs(s.PendingRole),
		Destination: session.DefaultDashboard(s.PendingRole),
	}, nil
}

type StepView struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
	Done   bool   `json:"done"`
	Active bool   `json:"active"`
}

// FormData describes a multi-step flow as rendered.
type FormData struct {
	Flow        session.Flow `json:"flow"`
	Current     int          `json:"current"`
	Total       int          `json:"total"`
	Progress    int          `json:"progress"`
	Steps       []StepView   `json:"steps"`
	ShowBack    bool         `json:"show_back"`
	CanComplete bool         `json:"can_complete"`
}

func formData(fl session.Flow, f *session.StepForm) *FormData {
	if f == nil {
		return nil
	}
	titles := fl.Steps()
	steps := make([]StepView, len(titles))
	for i, t := range titles {
		n := i + 1
		steps[i] = StepView{Number: n, Title: t, Done: n < f.Current, Active: n == f.Current}
	}
	return &FormData{
		Flow:        fl,
		Current:     f.Current,
		Total:       f.Total,
		Progress:    f.Progress(),
		Steps:       steps,
		ShowBack:    f.CanGoBack(),
		CanComplete: f.IsLast(),
	}
}

type RegisterData struct {
	Tabs       []RoleTab `json:"tabs"`
	Form       *FormData `json:"form"`
	CodeLength int       `json:"code_length"`
}

func register(_ context.Context, s *session.Session, _ fixtures.Provider) (any, error) {
	return RegisterData{
		Tabs:       roleTabs(s.PendingRole),
		Form:       formData(s.FormFlow, s.Form),
		CodeLength: 6,
	}, nil
}
