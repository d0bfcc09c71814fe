package screens

import (
	"context"
	"strings"

	"fidexia/backend/fixtures"
	"fidexia/backend/session"
)

type LearningData struct {
	Role        string            `json:"role"` // investor | entrepreneur | all
	CanPickRole bool              `json:"can_pick_role"`
	Courses     []fixtures.Course `json:"courses"`
	Completed   int               `json:"completed"`
	InProgress  int               `json:"in_progress"`
}

func learningCenter(ctx context.Context, s *session.Session, data fixtures.Provider) (any, error) {
	role := s.EffectiveLearningRole()
	var courses []fixtures.Course
	switch role {
	case string(session.RoleInvestor):
		inv, err := data.InvestorCourses(ctx)
		if err != nil {
			return nil, err
		}
		courses = inv
	case string(session.RoleEntrepreneur):
		ent, err := data.EntrepreneurCourses(ctx)
		if err != nil {
			return nil, err
		}
		courses = ent
	default:
		inv, err := data.InvestorCourses(ctx)
		if err != nil {
			return nil, err
		}
		ent, err := data.EntrepreneurCourses(ctx)
		if err != nil {
			return nil, err
		}
		courses = append(inv, ent...)
	}
	out := LearningData{
		Role:        role,
		CanPickRole: s.UserType == session.RoleNone,
		Courses:     courses,
	}
	for _, c := range courses {
		switch {
		case c.Progress >= 100:
			out.Completed++
		case c.Progress > 0:
			out.InProgress++
		}
	}
	return out, nil
}

type CategoryTab struct {
	Label  string `json:"label"`
	Value  string `json:"value"`
	Active bool   `json:"active"`
}

type ForumData struct {
	Categories []CategoryTab        `json:"categories"`
	Posts      []fixtures.ForumPost `json:"posts"`
}

func communityForum(ctx context.Context, s *session.Session, data fixtures.Provider) (any, error) {
	cats, err := data.ForumCategories(ctx)
	if err != nil {
		return nil, err
	}
	posts, err := data.ForumPosts(ctx)
	if err != nil {
		return nil, err
	}
	tabs := make([]CategoryTab, 0, len(cats))
	for _, c := range cats {
		value := c
		if c == "Todos" {
			value = session.FilterAll
		}
		tabs = append(tabs, CategoryTab{Label: c, Value: value, Active: strings.EqualFold(value, s.ForumCategory)})
	}
	return ForumData{
		Categories: tabs,
		Posts:      fixtures.FilterPosts(posts, s.ForumCategory),
	}, nil
}

type ProfileData struct {
	Profile session.ProfileCard `json:"profile"`
	Tabs    []string            `json:"tabs"`
	Active  string              `json:"active"`
	Editing bool                `json:"editing"`
	BackTo  session.ViewID      `json:"back_to"`
}

func profileSettings(_ context.Context, s *session.Session, _ fixtures.Provider) (any, error) {
	card, _ := session.ProfileFor(s.UserType)
	return ProfileData{
		Profile: card,
		Tabs:    session.ProfileTabs(),
		Active:  s.ProfileTab,
		Editing: s.ProfileEditing,
		BackTo:  session.DefaultDashboard(s.UserType),
	}, nil
}

type MessagesData struct {
	Chats    []fixtures.Chat        `json:"chats"`
	Selected *fixtures.Chat         `json:"selected,omitempty"`
	Thread   []fixtures.ChatMessage `json:"thread"`
}

func messages(ctx context.Context, s *session.Session, data fixtures.Provider) (any, error) {
	chats, err := data.Chats(ctx)
	if err != nil {
		return nil, err
	}
	out := MessagesData{Chats: chats, Thread: []fixtures.ChatMessage{}}
	for i := range chats {
		if chats[i].ID != s.SelectedChat {
			continue
		}
		out.Selected = &chats[i]
		thread, err := data.ChatThread(ctx, chats[i].ID)
		if err != nil {
			return nil, err
		}
		out.Thread = thread
	}
	return out, nil
}
