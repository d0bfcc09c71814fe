package fixtures

import "github.com/shopspring/decimal"

type Opportunity struct {
	Title  string          `json:"title"`
	Sector string          `json:"sector"`
	ROI    string          `json:"roi"`
	Goal   decimal.Decimal `json:"goal"`
	Raised decimal.Decimal `json:"raised"`
}

type InvestmentStatus string

const (
	InvestmentActive    InvestmentStatus = "Activo"
	InvestmentCompleted InvestmentStatus = "Completado"
)

type Investment struct {
	Title  string           `json:"title"`
	Status InvestmentStatus `json:"status"`
	Amount decimal.Decimal  `json:"amount"`
	ROI    int              `json:"roi"`
	Impact string           `json:"impact"`
}

type Course struct {
	Title    string `json:"title"`
	Duration string `json:"duration"`
	Level    string `json:"level,omitempty"`
	Progress int    `json:"progress"`
	Lessons  int    `json:"lessons,omitempty"`
}

type ForumPost struct {
	ID       int    `json:"id"`
	Author   string `json:"author"`
	Role     string `json:"role"`
	Avatar   string `json:"avatar"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Likes    int    `json:"likes"`
	Comments int    `json:"comments"`
	Time     string `json:"time"`
	IsLiked  bool   `json:"is_liked"`
}

type Chat struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Avatar      string `json:"avatar"`
	LastMessage string `json:"last_message"`
	Time        string `json:"time"`
	Unread      int    `json:"unread"`
	Online      bool   `json:"online"`
}

type ChatMessage struct {
	ID     int    `json:"id"`
	Sender string `json:"sender"` // me | other
	Text   string `json:"text"`
	Time   string `json:"time"`
}

type Notification struct {
	ID         int    `json:"id"`
	Type       string `json:"type"` // opportunity | message | success | update | reminder
	Message    string `json:"message"`
	Time       string `json:"time"`
	Read       bool   `json:"read"`
	Action     string `json:"action"`
	ActionView string `json:"action_view"`
}

type Document struct {
	Name string `json:"name"`
	Size string `json:"size"`
	Type string `json:"type"`
}

type MilestoneStatus string

const (
	MilestoneCompleted  MilestoneStatus = "completed"
	MilestoneInProgress MilestoneStatus = "in-progress"
	MilestonePending    MilestoneStatus = "pending"
)

type Milestone struct {
	Title  string          `json:"title"`
	Status MilestoneStatus `json:"status"`
	Date   string          `json:"date"`
}

type Impact struct {
	Beneficiaries int    `json:"beneficiaries"`
	Jobs          int    `json:"jobs"`
	CO2Reduction  string `json:"co2_reduction"`
}

type ProjectDetail struct {
	Title         string          `json:"title"`
	Entrepreneur  string          `json:"entrepreneur"`
	Sector        string          `json:"sector"`
	Goal          decimal.Decimal `json:"goal"`
	Raised        decimal.Decimal `json:"raised"`
	ROI           int             `json:"roi"`
	TimelineMonth int             `json:"timeline_months"`
	Investors     int             `json:"investors"`
	MinInvestment decimal.Decimal `json:"min_investment"`
	Description   string          `json:"description"`
	Impact        Impact          `json:"impact"`
	ODS           []string        `json:"ods"`
	Documents     []Document      `json:"documents"`
	Milestones    []Milestone     `json:"milestones"`
}

type ImpactStory struct {
	Name    string `json:"name"`
	Project string `json:"project"`
	Impact  string `json:"impact"`
	ROI     string `json:"roi"`
}

type Benefit struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type InvestorStats struct {
	TotalInvested  decimal.Decimal `json:"total_invested"`
	AnnualROI      string          `json:"annual_roi"`
	ActiveProjects int             `json:"active_projects"`
}

type ChecklistItem struct {
	Label string `json:"label"`
	Done  bool   `json:"done"`
}

type EntrepreneurOverview struct {
	ProjectUnderReview string          `json:"project_under_review"`
	ResponseTime       string          `json:"response_time"`
	ProfileCompletion  int             `json:"profile_completion"`
	Checklist          []ChecklistItem `json:"checklist"`
	Raised             decimal.Decimal `json:"raised"`
	Goal               decimal.Decimal `json:"goal"`
	Investors          int             `json:"investors"`
}
