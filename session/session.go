package session

import (
	"strings"
	"time"
)

const (
	FilterAll = "all"

	TabPersonal      = "personal"
	TabSecurity      = "security"
	TabNotifications = "notifications"
	TabPrivacy       = "privacy"
)

var profileTabs = []string{TabPersonal, TabSecurity, TabNotifications, TabPrivacy}

// ProfileTabs lists the profile settings tabs in display order.
func ProfileTabs() []string {
	out := make([]string, len(profileTabs))
	copy(out, profileTabs)
	return out
}

// ProjectSummary is the opportunity card a user picked before opening project-detail.
type ProjectSummary struct {
	Title  string `json:"title"`
	Sector string `json:"sector"`
	ROI    string `json:"roi"`
	Goal   int64  `json:"goal"`
	Raised int64  `json:"raised"`
}

// Session is everything the client is currently shown and to whom.
// It is mutated only through its methods, one request at a time.
type Session struct {
	ID                string          `json:"id"`
	CurrentView       ViewID          `json:"current_view"`
	UserType          Role            `json:"user_type"`
	MenuOpen          bool            `json:"menu_open"`
	NotificationsOpen bool            `json:"notifications_open"`
	ProfileMenuOpen   bool            `json:"profile_menu_open"`
	SelectedProject   *ProjectSummary `json:"selected_project,omitempty"`
	SearchQuery       string          `json:"search_query"`
	FilterSector      string          `json:"filter_sector"`
	ForumCategory     string          `json:"forum_category"`
	LearningRole      string          `json:"learning_role"`
	SelectedChat      int             `json:"selected_chat"`
	ProfileTab        string          `json:"profile_tab"`
	ProfileEditing    bool            `json:"profile_editing"`
	PendingRole       Role            `json:"pending_role"`
	FormFlow          Flow            `json:"form_flow,omitempty"`
	Form              *StepForm       `json:"form,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// New returns a session on the landing view with no role.
func New(id string) *Session {
	s := &Session{ID: id}
	s.reset()
	return s
}

func (s *Session) reset() {
	s.CurrentView = ViewLanding
	s.UserType = RoleNone
	s.CloseOverlays()
	s.SelectedProject = nil
	s.SearchQuery = ""
	s.FilterSector = FilterAll
	s.ForumCategory = FilterAll
	s.LearningRole = FilterAll
	s.SelectedChat = 0
	s.ProfileTab = TabPersonal
	s.ProfileEditing = false
	s.PendingRole = RoleInvestor
	s.FormFlow = FlowNone
	s.Form = nil
}

// Navigate switches the current view and dismisses every overlay.
// Unknown views and role-gated views without a role land on landing.
func (s *Session) Navigate(v ViewID) {
	if !v.Valid() || (v.RequiresRole() && s.UserType == RoleNone) {
		v = ViewLanding
	}
	prev := s.CurrentView
	s.CloseOverlays()
	s.CurrentView = v

	if prev == ViewProjectDetail && v != ViewProjectDetail {
		s.SelectedProject = nil
	}
	if prev == ViewMessages && v != ViewMessages {
		s.SelectedChat = 0
	}
	if prev == ViewProfileSettings && v != ViewProfileSettings {
		s.ProfileTab = TabPersonal
		s.ProfileEditing = false
	}

	fl := flowForView(v)
	switch {
	case fl == FlowNone:
		s.FormFlow, s.Form = FlowNone, nil
	case fl != s.FormFlow || prev != v:
		s.StartFlow(fl)
	}
}

// NavigateString parses wire input then navigates.
func (s *Session) NavigateString(raw string) ViewID {
	v, _ := ParseView(strings.TrimSpace(raw))
	s.Navigate(v)
	return s.CurrentView
}

// SetRole records the persona; it does not navigate.
func (s *Session) SetRole(r Role) {
	s.UserType = r
	if r != RoleNone {
		s.PendingRole = r
	}
}

// Login sets the role and lands on its dashboard.
func (s *Session) Login(r Role) {
	s.SetRole(r)
	s.Navigate(DefaultDashboard(r))
}

// Logout returns the session to its initial state.
func (s *Session) Logout() {
	s.reset()
}

func (s *Session) CloseOverlays() {
	s.MenuOpen = false
	s.NotificationsOpen = false
	s.ProfileMenuOpen = false
}

func (s *Session) ToggleMenu()          { s.MenuOpen = !s.MenuOpen }
func (s *Session) ToggleNotifications() { s.NotificationsOpen = !s.NotificationsOpen }
func (s *Session) ToggleProfileMenu()   { s.ProfileMenuOpen = !s.ProfileMenuOpen }

// SelectProject opens project-detail and keeps the picked card there.
// Nothing is kept when project-detail cannot be opened.
func (s *Session) SelectProject(p ProjectSummary) {
	s.Navigate(ViewProjectDetail)
	if s.CurrentView != ViewProjectDetail {
		s.SelectedProject = nil
		return
	}
	s.SelectedProject = &p
}

// SetPendingRole picks the role tab on the login and register screens.
func (s *Session) SetPendingRole(r Role) {
	if r.Valid() {
		s.PendingRole = r
	}
}

func (s *Session) SetSearch(q string) { s.SearchQuery = strings.TrimSpace(q) }

func (s *Session) SetSectorFilter(sector string) {
	sector = strings.TrimSpace(sector)
	if sector == "" {
		sector = FilterAll
	}
	s.FilterSector = sector
}

func (s *Session) SetForumCategory(c string) {
	c = strings.TrimSpace(c)
	if c == "" || strings.EqualFold(c, "Todos") {
		c = FilterAll
	}
	s.ForumCategory = c
}

// SetLearningRole switches the course catalog shown to visitors without a role.
func (s *Session) SetLearningRole(raw string) {
	if r, ok := ParseRole(raw); ok {
		s.LearningRole = string(r)
		return
	}
	s.LearningRole = FilterAll
}

// EffectiveLearningRole prefers the logged-in role over the local picker.
func (s *Session) EffectiveLearningRole() string {
	if s.UserType != RoleNone {
		return string(s.UserType)
	}
	return s.LearningRole
}

func (s *Session) SelectChat(id int) { s.SelectedChat = id }

// SetProfileTab reports false for an unknown tab and leaves the state untouched.
func (s *Session) SetProfileTab(tab string) bool {
	for _, t := range profileTabs {
		if t == tab {
			s.ProfileTab = tab
			return true
		}
	}
	return false
}

func (s *Session) SetProfileEditing(editing bool) { s.ProfileEditing = editing }

// StartFlow (re)starts a multi-step flow at step 1.
func (s *Session) StartFlow(fl Flow) {
	def, ok := flows[fl]
	if !ok {
		s.FormFlow, s.Form = FlowNone, nil
		return
	}
	s.FormFlow = fl
	s.Form = NewStepForm(len(def.steps))
}

func (s *Session) FormNext() error {
	if s.Form == nil {
		return ErrNoActiveFlow
	}
	s.Form.Next()
	return nil
}

func (s *Session) FormPrevious() error {
	if s.Form == nil {
		return ErrNoActiveFlow
	}
	s.Form.Previous()
	return nil
}

// CompleteFlow runs the terminal action of the active flow and leaves it.
func (s *Session) CompleteFlow() (Flow, error) {
	if s.Form == nil {
		return FlowNone, ErrNoActiveFlow
	}
	if !s.Form.IsLast() {
		return s.FormFlow, ErrFlowNotComplete
	}
	fl := s.FormFlow
	switch fl {
	case FlowRegistration:
		r := s.PendingRole
		if !r.Valid() {
			r = RoleInvestor
		}
		s.Login(r)
	default:
		s.Navigate(flows[fl].onDone)
	}
	return fl, nil
}

// Touch stamps the modification time.
func (s *Session) Touch(now time.Time) {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	s.UpdatedAt = now
}

// Clone returns a deep copy.
func (s *Session) Clone() *Session {
	c := *s
	if s.SelectedProject != nil {
		p := *s.SelectedProject
		c.SelectedProject = &p
	}
	if s.Form != nil {
		f := *s.Form
		c.Form = &f
	}
	return &c
}
