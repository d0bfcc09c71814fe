package session

import "strings"

// Role is the persona the user logged in as.
type Role string

const (
	RoleNone         Role = ""
	RoleInvestor     Role = "investor"
	RoleEntrepreneur Role = "entrepreneur"
)

// ParseRole accepts "investor" or "entrepreneur" in any case.
func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleInvestor:
		return RoleInvestor, true
	case RoleEntrepreneur:
		return RoleEntrepreneur, true
	default:
		return RoleNone, false
	}
}

func (r Role) Valid() bool {
	return r == RoleInvestor || r == RoleEntrepreneur
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}
