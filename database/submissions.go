package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"lovgol/models"
)

func (db *DB) CreateContactSubmission(ctx context.Context, req *models.CreateContactSubmissionRequest) (*models.ContactSubmission, error) {
	sub := &models.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Service:     req.Service,
		Budget:      req.Budget,
		Message:     req.Message,
		SubmittedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO contact_submissions (id, name, email, service, budget, message, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := db.Pool.Exec(ctx, query,
		sub.ID, sub.Name, sub.Email, sub.Service, sub.Budget, sub.Message, sub.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create contact submission: %w", err)
	}
	return sub, nil
}

func (db *DB) ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error) {
	query := `
		SELECT id, name, email, service, budget, message, submitted_at
		FROM contact_submissions
		ORDER BY submitted_at DESC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list contact submissions: %w", err)
	}
	defer rows.Close()

	subs := []models.ContactSubmission{}
	for rows.Next() {
		var sub models.ContactSubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Service, &sub.Budget, &sub.Message, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan contact submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contact submissions: %w", err)
	}
	return subs, nil
}

func (db *DB) CreateInquirySubmission(ctx context.Context, req *models.CreateInquirySubmissionRequest) (*models.InquirySubmission, error) {
	sub := &models.InquirySubmission{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Service:     req.Service,
		Details:     req.Details,
		SubmittedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO inquiry_submissions (id, name, email, service, details, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := db.Pool.Exec(ctx, query,
		sub.ID, sub.Name, sub.Email, sub.Service, sub.Details, sub.SubmittedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create inquiry submission: %w", err)
	}
	return sub, nil
}

func (db *DB) ListInquirySubmissions(ctx context.Context) ([]models.InquirySubmission, error) {
	query := `
		SELECT id, name, email, service, details, submitted_at
		FROM inquiry_submissions
		ORDER BY submitted_at DESC
	`
	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list inquiry submissions: %w", err)
	}
	defer rows.Close()

	subs := []models.InquirySubmission{}
	for rows.Next() {
		var sub models.InquirySubmission
		if err := rows.Scan(&sub.ID, &sub.Name, &sub.Email, &sub.Service, &sub.Details, &sub.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan inquiry submission: %w", err)
		}
		subs = append(subs, sub)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating inquiry submissions: %w", err)
	}
	return subs, nil
}
