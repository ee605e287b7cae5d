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

const caseStudyColumns = `id, title, slug, client, industry, timeline, team_size, challenge,
	solution, hero_image, live_url, service_id, technologies, results, created_at, updated_at`

func (db *DB) CreateCaseStudy(ctx context.Context, req *models.CreateCaseStudyRequest) (*models.CaseStudy, error) {
	now := time.Now().UTC()
	cs := &models.CaseStudy{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Slug:         req.Slug,
		Client:       req.Client,
		Industry:     req.Industry,
		Timeline:     req.Timeline,
		TeamSize:     req.TeamSize,
		Challenge:    req.Challenge,
		Solution:     req.Solution,
		HeroImage:    req.HeroImage,
		LiveURL:      req.LiveURL,
		ServiceID:    req.ServiceID,
		Technologies: req.Technologies,
		Results:      req.Results,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	query := `
		INSERT INTO case_studies (` + caseStudyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := db.Pool.Exec(ctx, query,
		cs.ID, cs.Title, cs.Slug, cs.Client, cs.Industry, cs.Timeline, cs.TeamSize,
		cs.Challenge, cs.Solution, cs.HeroImage, cs.LiveURL, cs.ServiceID,
		jsonOrEmpty(cs.Technologies), jsonOrEmpty(cs.Results), cs.CreatedAt, cs.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create case study: %w", err)
	}
	return cs, nil
}

func (db *DB) GetCaseStudy(ctx context.Context, id string) (*models.CaseStudy, error) {
	query := `SELECT ` + caseStudyColumns + ` FROM case_studies WHERE id = $1`
	return db.getCaseStudy(ctx, query, id)
}

func (db *DB) GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error) {
	query := `SELECT ` + caseStudyColumns + ` FROM case_studies WHERE slug = $1`
	return db.getCaseStudy(ctx, query, slug)
}

func (db *DB) getCaseStudy(ctx context.Context, query, key string) (*models.CaseStudy, error) {
	cs, err := scanCaseStudy(db.Pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get case study: %w", err)
	}
	return cs, nil
}

func (db *DB) UpdateCaseStudy(ctx context.Context, id string, req *models.UpdateCaseStudyRequest) (*models.CaseStudy, error) {
	cs, err := db.GetCaseStudy(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		cs.Title = *req.Title
	}
	if req.Slug != nil {
		cs.Slug = *req.Slug
	}
	if req.Client != nil {
		cs.Client = *req.Client
	}
	if req.Industry != nil {
		cs.Industry = *req.Industry
	}
	if req.Timeline != nil {
		cs.Timeline = *req.Timeline
	}
	if req.TeamSize != nil {
		cs.TeamSize = *req.TeamSize
	}
	if req.Challenge != nil {
		cs.Challenge = *req.Challenge
	}
	if req.Solution != nil {
		cs.Solution = *req.Solution
	}
	if req.HeroImage != nil {
		cs.HeroImage = *req.HeroImage
	}
	if req.LiveURL != nil {
		cs.LiveURL = *req.LiveURL
	}
	if req.ServiceID != nil {
		cs.ServiceID = *req.ServiceID
	}
	if req.Technologies != nil {
		cs.Technologies = *req.Technologies
	}
	if req.Results != nil {
		cs.Results = *req.Results
	}
	cs.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE case_studies SET
			title = $2, slug = $3, client = $4, industry = $5, timeline = $6,
			team_size = $7, challenge = $8, solution = $9, hero_image = $10,
			live_url = $11, service_id = $12, technologies = $13, results = $14,
			updated_at = $15
		WHERE id = $1
	`
	_, err = db.Pool.Exec(ctx, query,
		cs.ID, cs.Title, cs.Slug, cs.Client, cs.Industry, cs.Timeline,
		cs.TeamSize, cs.Challenge, cs.Solution, cs.HeroImage,
		cs.LiveURL, cs.ServiceID, jsonOrEmpty(cs.Technologies), jsonOrEmpty(cs.Results),
		cs.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to update case study: %w", err)
	}
	return cs, nil
}

func (db *DB) DeleteCaseStudy(ctx context.Context, id string) error {
	result, err := db.Pool.Exec(ctx, `DELETE FROM case_studies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete case study: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (db *DB) ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error) {
	query := `SELECT ` + caseStudyColumns + ` FROM case_studies ORDER BY created_at DESC`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list case studies: %w", err)
	}
	defer rows.Close()

	studies := []models.CaseStudy{}
	for rows.Next() {
		cs, err := scanCaseStudy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan case study: %w", err)
		}
		studies = append(studies, *cs)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating case studies: %w", err)
	}
	return studies, nil
}

func scanCaseStudy(row rowScanner) (*models.CaseStudy, error) {
	var cs models.CaseStudy
	err := row.Scan(
		&cs.ID, &cs.Title, &cs.Slug, &cs.Client, &cs.Industry, &cs.Timeline,
		&cs.TeamSize, &cs.Challenge, &cs.Solution, &cs.HeroImage,
		&cs.LiveURL, &cs.ServiceID, &cs.Technologies, &cs.Results,
		&cs.CreatedAt, &cs.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &cs, nil
}
