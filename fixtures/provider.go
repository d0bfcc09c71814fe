package fixtures

import (
	"context"
	"errors"
)

var ErrChatNotFound = errors.New("chat not found")

// Provider supplies read-only demo data to screens.
type Provider interface {
	Opportunities(ctx context.Context) ([]Opportunity, error)
	SectorOptions(ctx context.Context) ([]string, error)
	Investments(ctx context.Context) ([]Investment, error)
	InvestorCourses(ctx context.Context) ([]Course, error)
	EntrepreneurCourses(ctx context.Context) ([]Course, error)
	RecommendedCourses(ctx context.Context) ([]Course, error)
	ForumCategories(ctx context.Context) ([]string, error)
	ForumPosts(ctx context.Context) ([]ForumPost, error)
	Chats(ctx context.Context) ([]Chat, error)
	ChatThread(ctx context.Context, chatID int) ([]ChatMessage, error)
	Notifications(ctx context.Context) ([]Notification, int, error)
	FeaturedProject(ctx context.Context) (ProjectDetail, error)
	ImpactStories(ctx context.Context) ([]ImpactStory, error)
	Benefits(ctx context.Context) ([]Benefit, error)
	InvestorStats(ctx context.Context) (InvestorStats, error)
	EntrepreneurOverview(ctx context.Context) (EntrepreneurOverview, error)
}

type staticProvider struct{}

// Static returns the built-in literal fixtures. Each call hands out fresh copies.
func Static() Provider { return staticProvider{} }

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

func (staticProvider) Opportunities(context.Context) ([]Opportunity, error) {
	return clone(opportunities), nil
}

func (staticProvider) SectorOptions(context.Context) ([]string, error) {
	return clone(sectorOptions), nil
}

func (staticProvider) Investments(context.Context) ([]Investment, error) {
	return clone(investments), nil
}

func (staticProvider) InvestorCourses(context.Context) ([]Course, error) {
	return clone(investorCourses), nil
}

func (staticProvider) EntrepreneurCourses(context.Context) ([]Course, error) {
	return clone(entrepreneurCourses), nil
}

func (staticProvider) RecommendedCourses(context.Context) ([]Course, error) {
	return clone(recommendedCourses), nil
}

func (staticProvider) ForumCategories(context.Context) ([]string, error) {
	return clone(forumCategories), nil
}

func (staticProvider) ForumPosts(context.Context) ([]ForumPost, error) {
	return clone(forumPosts), nil
}

func (staticProvider) Chats(context.Context) ([]Chat, error) {
	return clone(chats), nil
}

func (staticProvider) ChatThread(_ context.Context, chatID int) ([]ChatMessage, error) {
	for _, c := range chats {
		if c.ID == chatID {
			return clone(chatThread), nil
		}
	}
	return nil, ErrChatNotFound
}

func (staticProvider) Notifications(context.Context) ([]Notification, int, error) {
	return clone(notifications), notificationBadge, nil
}

func (staticProvider) FeaturedProject(context.Context) (ProjectDetail, error) {
	p := featuredProject
	p.ODS = clone(featuredProject.ODS)
	p.Documents = clone(featuredProject.Documents)
	p.Milestones = clone(featuredProject.Milestones)
	return p, nil
}

func (staticProvider) ImpactStories(context.Context) ([]ImpactStory, error) {
	return clone(impactStories), nil
}

func (staticProvider) Benefits(context.Context) ([]Benefit, error) {
	return clone(benefits), nil
}

func (staticProvider) InvestorStats(context.Context) (InvestorStats, error) {
	return investorStats, nil
}

func (staticProvider) EntrepreneurOverview(context.Context) (EntrepreneurOverview, error) {
	o := entrepreneurOverview
	o.Checklist = clone(entrepreneurOverview.Checklist)
	return o, nil
}
