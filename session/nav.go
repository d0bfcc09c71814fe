package session

// NavLink is one entry of the authenticated header menu.
type NavLink struct {
	Label string `json:"label"`
	View  ViewID `json:"view"`
}

// ProfileCard is the identity shown in the header's profile dropdown.
type ProfileCard struct {
	Name      string `json:"name"`
	RoleLabel string `json:"role_label"`
	Initial   string `json:"initial"`
}

type roleEntry struct {
	links   []NavLink
	profile ProfileCard
}

// The first link of every role is its dashboard; DefaultDashboard relies on it.
var roleTable = map[Role]roleEntry{
	RoleInvestor: {
		links: []NavLink{
			{Label: "Dashboard", View: ViewInvestorDashboard},
			{Label: "Portafolio", View: ViewInvestorPortfolio},
			{Label: "Comunidad", View: ViewCommunityForum},
			{Label: "Aprendizaje", View: ViewLearningCenter},
		},
		profile: ProfileCard{Name: "Carlos Ruiz", RoleLabel: "Inversor", Initial: "C"},
	},
	RoleEntrepreneur: {
		links: []NavLink{
			{Label: "Dashboard", View: ViewEntrepreneurDashboard},
			{Label: "Proyectos", View: ViewNewProject},
			{Label: "Comunidad", View: ViewCommunityForum},
			{Label: "Aprendizaje", View: ViewLearningCenter},
		},
		profile: ProfileCard{Name: "Laura Gómez", RoleLabel: "Emprendedora", Initial: "L"},
	},
}

// LinksFor returns the header menu for a role. Callers get their own copy.
func LinksFor(r Role) []NavLink {
	e, ok := roleTable[r]
	if !ok {
		return nil
	}
	out := make([]NavLink, len(e.links))
	copy(out, e.links)
	return out
}

// DefaultDashboard is where a role lands after login and where the logo points.
func DefaultDashboard(r Role) ViewID {
	e, ok := roleTable[r]
	if !ok || len(e.links) == 0 {
		return ViewLanding
	}
	return e.links[0].View
}

// LogoTarget is the view the header logo navigates to.
func LogoTarget(r Role) ViewID {
	return DefaultDashboard(r)
}

func ProfileFor(r Role) (ProfileCard, bool) {
	e, ok := roleTable[r]
	return e.profile, ok
}

// HasLink reports whether the role's menu offers the view.
func HasLink(r Role, v ViewID) bool {
	for _, l := range roleTable[r].links {
		if l.View == v {
			return true
		}
	}
	return false
}
