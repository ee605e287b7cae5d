package models

import "time"

// ContactSubmission is a message from the public contact form.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Service     string    `json:"service,omitempty"`
	Budget      string    `json:"budget,omitempty"`
	Message     string    `json:"message"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type CreateContactSubmissionRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Service string `json:"service"`
	Budget  string `json:"budget"`
	Message string `json:"message" binding:"required"`
}

// InquirySubmission is a service-specific inquiry from the public site.
type InquirySubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Service     string    `json:"service"`
	Details     string    `json:"details"`
	SubmittedAt time.Time `json:"submittedAt"`
}

type CreateInquirySubmissionRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Service string `json:"service" binding:"required"`
	Details string `json:"details" binding:"required"`
}
