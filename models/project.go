package models

import "time"

// Milestone is one entry in a project's delivery timeline. Entries are
// append-style: the admin UI always submits the whole array back.
type Milestone struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      string `json:"status"` // pending, in_progress, completed
	DueDate     string `json:"dueDate,omitempty"`
}

// TeamUpdate is an internal progress note. Never shown to clients.
type TeamUpdate struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Update string `json:"update"`
	Author string `json:"author"`
}

// ClientFeedback records something the client said about the project.
type ClientFeedback struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Feedback string `json:"feedback"`
	Type     string `json:"type"` // general, request, approval, concern
}

// NextStep is an internal task on the project. Never shown to clients.
type NextStep struct {
	ID       string `json:"id"`
	Task     string `json:"task"`
	Priority string `json:"priority"` // low, medium, high
	Assignee string `json:"assignee,omitempty"`
	DueDate  string `json:"dueDate,omitempty"`
}

// RiskIssue is an internal risk log entry. Never shown to clients.
type RiskIssue struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Severity     string `json:"severity"` // low, medium, high
	Status       string `json:"status"`   // open, resolved
	ReportedDate string `json:"reportedDate"`
}

// Project is a client engagement tracked by the back office. Each project
// gets a unique client access token at creation; the token never changes for
// the life of the project and grants unauthenticated read access to the
// client-safe view only.
//
// Progress fields are string-encoded to match the admin UI contract; health,
// delivery and payment status are independent admin-set labels with no
// derivation between them.
type Project struct {
	ID                    string           `json:"id"`
	Title                 string           `json:"title"`
	ClientName            string           `json:"clientName"`
	ClientEmail           string           `json:"clientEmail"`
	Description           string           `json:"description"`
	Category              string           `json:"category"`
	Technology            string           `json:"technology"`
	ProgressPercentage    string           `json:"progressPercentage"`
	ProgressDescription   string           `json:"progressDescription"`
	EstimatedDeliveryDays string           `json:"estimatedDeliveryDays"`
	DeliveryStatus        string           `json:"deliveryStatus"` // pending, completed
	PaymentStatus         string           `json:"paymentStatus"`  // pending, partial, completed
	ProjectHealth         string           `json:"projectHealth"`  // green, yellow, red
	ClientAccessToken     string           `json:"clientAccessToken"`
	Milestones            []Milestone      `json:"milestones"`
	TeamUpdates           []TeamUpdate     `json:"teamUpdates"`
	ClientFeedback        []ClientFeedback `json:"clientFeedback"`
	NextSteps             []NextStep       `json:"nextSteps"`
	RiskIssues            []RiskIssue      `json:"riskIssues"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

// CreateProjectRequest is the admin payload for creating a project. Status
// fields left out get defaults (progress "0", delivery/payment pending,
// health green, 30 delivery days).
type CreateProjectRequest struct {
	Title                 string           `json:"title" binding:"required"`
	ClientName            string           `json:"clientName" binding:"required"`
	ClientEmail           string           `json:"clientEmail" binding:"required,email"`
	Description           string           `json:"description" binding:"required"`
	Category              string           `json:"category" binding:"required"`
	Technology            string           `json:"technology" binding:"required"`
	ProgressPercentage    string           `json:"progressPercentage"`
	ProgressDescription   string           `json:"progressDescription"`
	EstimatedDeliveryDays string           `json:"estimatedDeliveryDays"`
	DeliveryStatus        string           `json:"deliveryStatus" binding:"omitempty,oneof=pending completed"`
	PaymentStatus         string           `json:"paymentStatus" binding:"omitempty,oneof=pending partial completed"`
	ProjectHealth         string           `json:"projectHealth" binding:"omitempty,oneof=green yellow red"`
	Milestones            []Milestone      `json:"milestones"`
	TeamUpdates           []TeamUpdate     `json:"teamUpdates"`
	ClientFeedback        []ClientFeedback `json:"clientFeedback"`
	NextSteps             []NextStep       `json:"nextSteps"`
	RiskIssues            []RiskIssue      `json:"riskIssues"`
}

// UpdateProjectRequest is a partial update: nil means "leave unchanged".
// A supplied log array replaces the stored one wholesale; entries without an
// id are assigned one before the write.
type UpdateProjectRequest struct {
	Title                 *string           `json:"title"`
	ClientName            *string           `json:"clientName"`
	ClientEmail           *string           `json:"clientEmail" binding:"omitempty,email"`
	Description           *string           `json:"description"`
	Category              *string           `json:"category"`
	Technology            *string           `json:"technology"`
	ProgressPercentage    *string           `json:"progressPercentage"`
	ProgressDescription   *string           `json:"progressDescription"`
	EstimatedDeliveryDays *string           `json:"estimatedDeliveryDays"`
	DeliveryStatus        *string           `json:"deliveryStatus" binding:"omitempty,oneof=pending completed"`
	PaymentStatus         *string           `json:"paymentStatus" binding:"omitempty,oneof=pending partial completed"`
	ProjectHealth         *string           `json:"projectHealth" binding:"omitempty,oneof=green yellow red"`
	Milestones            *[]Milestone      `json:"milestones"`
	TeamUpdates           *[]TeamUpdate     `json:"teamUpdates"`
	ClientFeedback        *[]ClientFeedback `json:"clientFeedback"`
	NextSteps             *[]NextStep       `json:"nextSteps"`
	RiskIssues            *[]RiskIssue      `json:"riskIssues"`
}

// ClientProjectView is the token-gated projection of a project. It must never
// carry the client email, the access token itself, or the internal logs
// (team updates, next steps, risk issues).
type ClientProjectView struct {
	ID                    string           `json:"id"`
	Title                 string           `json:"title"`
	Description           string           `json:"description"`
	Category              string           `json:"category"`
	Technology            string           `json:"technology"`
	ProgressPercentage    string           `json:"progressPercentage"`
	ProgressDescription   string           `json:"progressDescription"`
	EstimatedDeliveryDays string           `json:"estimatedDeliveryDays"`
	DeliveryStatus        string           `json:"deliveryStatus"`
	PaymentStatus         string           `json:"paymentStatus"`
	ProjectHealth         string           `json:"projectHealth"`
	Milestones            []Milestone      `json:"milestones"`
	ClientFeedback        []ClientFeedback `json:"clientFeedback"`
	CreatedAt             time.Time        `json:"createdAt"`
	UpdatedAt             time.Time        `json:"updatedAt"`
}

// ClientView returns the client-safe projection of the project.
func (p *Project) ClientView() ClientProjectView {
	return ClientProjectView{
		ID:                    p.ID,
		Title:                 p.Title,
		Description:           p.Description,
		Category:              p.Category,
		Technology:            p.Technology,
		ProgressPercentage:    p.ProgressPercentage,
		ProgressDescription:   p.ProgressDescription,
		EstimatedDeliveryDays: p.EstimatedDeliveryDays,
		DeliveryStatus:        p.DeliveryStatus,
		PaymentStatus:         p.PaymentStatus,
		ProjectHealth:         p.ProjectHealth,
		Milestones:            p.Milestones,
		ClientFeedback:        p.ClientFeedback,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
