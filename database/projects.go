package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"lovgol/logger"
	"lovgol/models"
)

const projectColumns = `id, title, client_name, client_email, description, category, technology,
	progress_percentage, progress_description, estimated_delivery_days,
	delivery_status, payment_status, project_health, client_access_token,
	milestones, team_updates, client_feedback, next_steps, risk_issues,
	created_at, updated_at`

func (db *DB) CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	p := newProjectRecord(req)

	query := `
		INSERT INTO projects (` + projectColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
	`

	_, err := db.Pool.Exec(ctx, query,
		p.ID, p.Title, p.ClientName, p.ClientEmail, p.Description, p.Category, p.Technology,
		p.ProgressPercentage, p.ProgressDescription, p.EstimatedDeliveryDays,
		p.DeliveryStatus, p.PaymentStatus, p.ProjectHealth, p.ClientAccessToken,
		jsonOrEmpty(p.Milestones), jsonOrEmpty(p.TeamUpdates), jsonOrEmpty(p.ClientFeedback),
		jsonOrEmpty(p.NextSteps), jsonOrEmpty(p.RiskIssues),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	logger.Log.Info("created project", zap.String("id", p.ID), zap.String("title", p.Title))
	return p, nil
}

func (db *DB) GetProject(ctx context.Context, id string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = $1`

	p, err := scanProject(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return p, nil
}

// GetProjectByToken looks a project up by its client access token, falling
// back to the primary key so callers holding either identifier succeed.
func (db *DB) GetProjectByToken(ctx context.Context, token string) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE client_access_token = $1 OR id = $1`

	p, err := scanProject(db.Pool.QueryRow(ctx, query, token))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by token: %w", err)
	}
	return p, nil
}

// UpdateProject merges the partial over the stored record and writes the
// whole row back. Read-merge-write with no version check: concurrent admin
// updates are last-write-wins.
func (db *DB) UpdateProject(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	p, err := db.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	applyProjectUpdate(p, req)

	query := `
		UPDATE projects SET
			title = $2, client_name = $3, client_email = $4, description = $5,
			category = $6, technology = $7, progress_percentage = $8,
			progress_description = $9, estimated_delivery_days = $10,
			delivery_status = $11, payment_status = $12, project_health = $13,
			milestones = $14, team_updates = $15, client_feedback = $16,
			next_steps = $17, risk_issues = $18, updated_at = $19
		WHERE id = $1
	`

	_, err = db.Pool.Exec(ctx, query,
		p.ID, p.Title, p.ClientName, p.ClientEmail, p.Description,
		p.Category, p.Technology, p.ProgressPercentage,
		p.ProgressDescription, p.EstimatedDeliveryDays,
		p.DeliveryStatus, p.PaymentStatus, p.ProjectHealth,
		jsonOrEmpty(p.Milestones), jsonOrEmpty(p.TeamUpdates), jsonOrEmpty(p.ClientFeedback),
		jsonOrEmpty(p.NextSteps), jsonOrEmpty(p.RiskIssues), p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return p, nil
}

func (db *DB) DeleteProject(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	logger.Log.Info("deleted project", zap.String("id", id))
	return nil
}

func (db *DB) ListProjects(ctx context.Context) ([]models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects ORDER BY created_at DESC`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating projects: %w", err)
	}

	return projects, nil
}

func scanProject(row rowScanner) (*models.Project, error) {
	var p models.Project
	err := row.Scan(
		&p.ID, &p.Title, &p.ClientName, &p.ClientEmail, &p.Description, &p.Category, &p.Technology,
		&p.ProgressPercentage, &p.ProgressDescription, &p.EstimatedDeliveryDays,
		&p.DeliveryStatus, &p.PaymentStatus, &p.ProjectHealth, &p.ClientAccessToken,
		&p.Milestones, &p.TeamUpdates, &p.ClientFeedback, &p.NextSteps, &p.RiskIssues,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
