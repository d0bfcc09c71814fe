package session

// ViewID identifies one full screen the client can be on.
type ViewID string

const (
	ViewLanding               ViewID = "landing"
	ViewLogin                 ViewID = "login"
	ViewRegister              ViewID = "register"
	ViewInvestorDashboard     ViewID = "investor-dashboard"
	ViewInvestorPortfolio     ViewID = "investor-portfolio"
	ViewEntrepreneurDashboard ViewID = "entrepreneur-dashboard"
	ViewNewProject            ViewID = "new-project"
	ViewLearningCenter        ViewID = "learning-center"
	ViewCommunityForum        ViewID = "community-forum"
	ViewProfileSettings       ViewID = "profile-settings"
	ViewProjectDetail         ViewID = "project-detail"
	ViewMessages              ViewID = "messages"
)

var allViews = []ViewID{
	ViewLanding,
	ViewLogin,
	ViewRegister,
	ViewInvestorDashboard,
	ViewInvestorPortfolio,
	ViewEntrepreneurDashboard,
	ViewNewProject,
	ViewLearningCenter,
	ViewCommunityForum,
	ViewProfileSettings,
	ViewProjectDetail,
	ViewMessages,
}

// views that only make sense once a role has been chosen
var roleViews = map[ViewID]bool{
	ViewInvestorDashboard:     true,
	ViewInvestorPortfolio:     true,
	ViewEntrepreneurDashboard: true,
	ViewNewProject:            true,
	ViewProfileSettings:       true,
	ViewProjectDetail:         true,
	ViewMessages:              true,
}

// AllViews returns every known view in declaration order.
func AllViews() []ViewID {
	out := make([]ViewID, len(allViews))
	copy(out, allViews)
	return out
}

// ParseView maps wire input to a ViewID. Unknown values fall back to landing.
func ParseView(s string) (ViewID, bool) {
	v := ViewID(s)
	if v.Valid() {
		return v, true
	}
	return ViewLanding, false
}

func (v ViewID) Valid() bool {
	for _, known := range allViews {
		if v == known {
			return true
		}
	}
	return false
}

// RequiresRole reports whether the view is gated behind login.
func (v ViewID) RequiresRole() bool {
	return roleViews[v]
}

func (v ViewID) String() string { return string(v) }
