package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"lovgol/models"
)

const servicePreviewColumns = `id, title, description, category, technology, tags, image_url, created_at, updated_at`

func (db *DB) CreateServicePreview(ctx context.Context, req *models.CreateServicePreviewRequest) (*models.ServicePreview, error) {
	now := time.Now().UTC()
	sp := &models.ServicePreview{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Technology:  req.Technology,
		Tags:        req.Tags,
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	query := `
		INSERT INTO services_previews (` + servicePreviewColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := db.Pool.Exec(ctx, query,
		sp.ID, sp.Title, sp.Description, sp.Category, sp.Technology,
		jsonOrEmpty(sp.Tags), sp.ImageURL, sp.CreatedAt, sp.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create service preview: %w", err)
	}
	return sp, nil
}

func (db *DB) GetServicePreview(ctx context.Context, id string) (*models.ServicePreview, error) {
	query := `SELECT ` + servicePreviewColumns + ` FROM services_previews WHERE id = $1`

	sp, err := scanServicePreview(db.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get service preview: %w", err)
	}
	return sp, nil
}

func (db *DB) UpdateServicePreview(ctx context.Context, id string, req *models.UpdateServicePreviewRequest) (*models.ServicePreview, error) {
	sp, err := db.GetServicePreview(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		sp.Title = *req.Title
	}
	if req.Description != nil {
		sp.Description = *req.Description
	}
	if req.Category != nil {
		sp.Category = *req.Category
	}
	if req.Technology != nil {
		sp.Technology = *req.Technology
	}
	if req.Tags != nil {
		sp.Tags = *req.Tags
	}
	if req.ImageURL != nil {
		sp.ImageURL = *req.ImageURL
	}
	sp.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE services_previews SET
			title = $2, description = $3, category = $4, technology = $5,
			tags = $6, image_url = $7, updated_at = $8
		WHERE id = $1
	`
	_, err = db.Pool.Exec(ctx, query,
		sp.ID, sp.Title, sp.Description, sp.Category, sp.Technology,
		jsonOrEmpty(sp.Tags), sp.ImageURL, sp.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update service preview: %w", err)
	}
	return sp, nil
}

func (db *DB) DeleteServicePreview(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM services_previews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service preview: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) ListServicePreviews(ctx context.Context, category, technology string) ([]models.ServicePreview, error) {
	qb := NewQueryBuilder()
	if category != "" {
		qb.AddCondition("category", category)
	} else if technology != "" {
		qb.AddCondition("technology", technology)
	}

	query := fmt.Sprintf(`SELECT %s FROM services_previews %s ORDER BY created_at DESC`,
		servicePreviewColumns, qb.WhereClause())

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list service previews: %w", err)
	}
	defer rows.Close()

	previews := []models.ServicePreview{}
	for rows.Next() {
		sp, err := scanServicePreview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan service preview: %w", err)
		}
		previews = append(previews, *sp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service previews: %w", err)
	}
	return previews, nil
}

func scanServicePreview(row rowScanner) (*models.ServicePreview, error) {
	var sp models.ServicePreview
	err := row.Scan(
		&sp.ID, &sp.Title, &sp.Description, &sp.Category, &sp.Technology,
		&sp.Tags, &sp.ImageURL, &sp.CreatedAt, &sp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sp, nil
}
