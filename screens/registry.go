package screens

import (
	"context"
	"errors"
	"fmt"

	"fidexia/backend/fixtures"
	"fidexia/backend/session"
)

var ErrUnregisteredView = errors.New("view has no screen")

// Screen is what the client renders for the current view.
type Screen struct {
	View   session.ViewID `json:"view"`
	Title  string         `json:"title"`
	Header *Header        `json:"header,omitempty"`
	Data   any            `json:"data"`
}

// Builder produces a screen's payload. It must not mutate the session.
type Builder func(ctx context.Context, s *session.Session, data fixtures.Provider) (any, error)

type entry struct {
	title  string
	header bool
	build  Builder
}

// Registry maps every ViewID to exactly one screen.
type Registry struct {
	data    fixtures.Provider
	entries map[session.ViewID]entry
}

func defaultEntries() map[session.ViewID]entry {
	return map[session.ViewID]entry{
		session.ViewLanding:               {title: "Fidexia", build: landing},
		session.ViewLogin:                 {title: "Iniciar Sesión", build: login},
		session.ViewRegister:              {title: "Crear Cuenta en Fidexia", build: register},
		session.ViewInvestorDashboard:     {title: "Panel de Inversión", header: true, build: investorDashboard},
		session.ViewInvestorPortfolio:     {title: "Mi Portafolio", header: true, build: investorPortfolio},
		session.ViewEntrepreneurDashboard: {title: "Panel de Emprendedor", header: true, build: entrepreneurDashboard},
		session.ViewNewProject:            {title: "Nuevo Proyecto", header: true, build: newProject},
		session.ViewLearningCenter:        {title: "Centro de Aprendizaje", header: true, build: learningCenter},
		session.ViewCommunityForum:        {title: "Comunidad Fidexia", header: true, build: communityForum},
		session.ViewProfileSettings:       {title: "Configuración de Perfil", header: true, build: profileSettings},
		session.ViewProjectDetail:         {title: "Detalle del Proyecto", header: true, build: projectDetail},
		session.ViewMessages:              {title: "Mensajes", header: true, build: messages},
	}
}

// NewRegistry wires the built-in screens and fails if any view is left without one.
func NewRegistry(data fixtures.Provider) (*Registry, error) {
	return newRegistry(data, defaultEntries())
}

func newRegistry(data fixtures.Provider, entries map[session.ViewID]entry) (*Registry, error) {
	for _, v := range session.AllViews() {
		e, ok := entries[v]
		if !ok || e.build == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnregisteredView, v)
		}
	}
	for v := range entries {
		if !v.Valid() {
			return nil, fmt.Errorf("screen registered for unknown view %q", v)
		}
	}
	return &Registry{data: data, entries: entries}, nil
}

// Resolve builds the screen for the session's current view. Unknown views render landing.
func (r *Registry) Resolve(ctx context.Context, s *session.Session) (Screen, error) {
	view := s.CurrentView
	e, ok := r.entries[view]
	if !ok {
		view = session.ViewLanding
		e = r.entries[view]
	}
	payload, err := e.build(ctx, s, r.data)
	if err != nil {
		return Screen{}, fmt.Errorf("build %s: %w", view, err)
	}
	out := Screen{View: view, Title: e.title, Data: payload}
	if e.header && s.UserType != session.RoleNone {
		h, err := buildHeader(ctx, s, r.data)
		if err != nil {
			return Screen{}, fmt.Errorf("build header: %w", err)
		}
		out.Header = h
	}
	return out, nil
}
