package screens

import (
	"context"

	"fidexia/backend/fixtures"
	"fidexia/backend/session"
)

// Header is the authenticated top bar.
type Header struct {
	Links             []session.NavLink       `json:"links"`
	LogoTarget        session.ViewID          `json:"logo_target"`
	Profile           session.ProfileCard     `json:"profile"`
	NotificationBadge int                     `json:"notification_badge"`
	NotificationsOpen bool                    `json:"notifications_open"`
	Notifications     []fixtures.Notification `json:"notifications,omitempty"`
	ProfileMenuOpen   bool                    `json:"profile_menu_open"`
	MenuOpen          bool                    `json:"menu_open"`
}

func buildHeader(ctx context.Context, s *session.Session, data fixtures.Provider) (*Header, error) {
	profile, _ := session.ProfileFor(s.UserType)
	notes, badge, err := data.Notifications(ctx)
	if err != nil {
		return nil, err
	}
	h := &Header{
		Links:             session.LinksFor(s.UserType),
		LogoTarget:        session.LogoTarget(s.UserType),
		Profile:           profile,
		NotificationBadge: badge,
		NotificationsOpen: s.NotificationsOpen,
		ProfileMenuOpen:   s.ProfileMenuOpen,
		MenuOpen:          s.MenuOpen,
	}
	if s.NotificationsOpen {
		h.Notifications = notes
	}
	return h, nil
}
