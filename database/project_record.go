package database

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"lovgol/models"
)

// Default status values applied when a create request omits them.
const (
	defaultProgress      = "0"
	defaultDeliveryDays  = "30"
	defaultDeliveryState = "pending"
	defaultPaymentState  = "pending"
	defaultHealth        = "green"
)

// newProjectRecord builds a complete project record from a create request:
// server-generated id and client access token, defaulted status fields, ids
// assigned to every supplied log entry, both timestamps set to now. The
// token is generated exactly once here and never regenerated afterwards.
func newProjectRecord(req *models.CreateProjectRequest) *models.Project {
	now := time.Now().UTC()

	p := &models.Project{
		ID:                    uuid.NewString(),
		Title:                 req.Title,
		ClientName:            req.ClientName,
		ClientEmail:           req.ClientEmail,
		Description:           req.Description,
		Category:              req.Category,
		Technology:            req.Technology,
		ProgressPercentage:    req.ProgressPercentage,
		ProgressDescription:   req.ProgressDescription,
		EstimatedDeliveryDays: req.EstimatedDeliveryDays,
		DeliveryStatus:        req.DeliveryStatus,
		PaymentStatus:         req.PaymentStatus,
		ProjectHealth:         req.ProjectHealth,
		ClientAccessToken:     uuid.NewString(),
		Milestones:            req.Milestones,
		TeamUpdates:           req.TeamUpdates,
		ClientFeedback:        req.ClientFeedback,
		NextSteps:             req.NextSteps,
		RiskIssues:            req.RiskIssues,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if p.ProgressPercentage == "" {
		p.ProgressPercentage = defaultProgress
	}
	if p.EstimatedDeliveryDays == "" {
		p.EstimatedDeliveryDays = defaultDeliveryDays
	}
	if p.DeliveryStatus == "" {
		p.DeliveryStatus = defaultDeliveryState
	}
	if p.PaymentStatus == "" {
		p.PaymentStatus = defaultPaymentState
	}
	if p.ProjectHealth == "" {
		p.ProjectHealth = defaultHealth
	}

	ensureLogEntryIDs(p)
	return p
}

// applyProjectUpdate merges a partial update over an existing record. Scalar
// fields replace when supplied; a supplied log array replaces the stored one
// entirely, with fresh ids for entries that lack one. UpdatedAt is always
// bumped, even for an empty partial.
func applyProjectUpdate(p *models.Project, req *models.UpdateProjectRequest) {
	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.ClientEmail != nil {
		p.ClientEmail = *req.ClientEmail
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Technology != nil {
		p.Technology = *req.Technology
	}
	if req.ProgressPercentage != nil {
		p.ProgressPercentage = *req.ProgressPercentage
	}
	if req.ProgressDescription != nil {
		p.ProgressDescription = *req.ProgressDescription
	}
	if req.EstimatedDeliveryDays != nil {
		p.EstimatedDeliveryDays = *req.EstimatedDeliveryDays
	}
	if req.DeliveryStatus != nil {
		p.DeliveryStatus = *req.DeliveryStatus
	}
	if req.PaymentStatus != nil {
		p.PaymentStatus = *req.PaymentStatus
	}
	if req.ProjectHealth != nil {
		p.ProjectHealth = *req.ProjectHealth
	}
	if req.Milestones != nil {
		p.Milestones = *req.Milestones
	}
	if req.TeamUpdates != nil {
		p.TeamUpdates = *req.TeamUpdates
	}
	if req.ClientFeedback != nil {
		p.ClientFeedback = *req.ClientFeedback
	}
	if req.NextSteps != nil {
		p.NextSteps = *req.NextSteps
	}
	if req.RiskIssues != nil {
		p.RiskIssues = *req.RiskIssues
	}

	ensureLogEntryIDs(p)
	p.UpdatedAt = time.Now().UTC()
}

// ensureLogEntryIDs assigns an id to every log entry that does not have one.
// Existing ids are preserved.
func ensureLogEntryIDs(p *models.Project) {
	for i := range p.Milestones {
		if p.Milestones[i].ID == "" {
			p.Milestones[i].ID = uuid.NewString()
		}
	}
	for i := range p.TeamUpdates {
		if p.TeamUpdates[i].ID == "" {
			p.TeamUpdates[i].ID = uuid.NewString()
		}
	}
	for i := range p.ClientFeedback {
		if p.ClientFeedback[i].ID == "" {
			p.ClientFeedback[i].ID = uuid.NewString()
		}
	}
	for i := range p.NextSteps {
		if p.NextSteps[i].ID == "" {
			p.NextSteps[i].ID = uuid.NewString()
		}
	}
	for i := range p.RiskIssues {
		if p.RiskIssues[i].ID == "" {
			p.RiskIssues[i].ID = uuid.NewString()
		}
	}
}

// bumpCount increments a string-encoded counter. Unparseable values count
// from zero rather than erroring.
func bumpCount(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		n = 0
	}
	return strconv.Itoa(n + 1)
}
