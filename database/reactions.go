package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"lovgol/models"
)

func (db *DB) CreateBlogReaction(ctx context.Context, req *models.CreateBlogReactionRequest) (*models.BlogReaction, error) {
	reaction := &models.BlogReaction{
		ID:           uuid.NewString(),
		PostID:       req.PostID,
		ReactionType: req.ReactionType,
		UserName:     req.UserName,
		Comment:      req.Comment,
		CreatedAt:    time.Now().UTC(),
	}

	query := `
		INSERT INTO blog_reactions (id, post_id, reaction_type, user_name, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := db.Pool.Exec(ctx, query,
		reaction.ID, reaction.PostID, reaction.ReactionType,
		reaction.UserName, reaction.Comment, reaction.CreatedAt)
	if err != nil {
		// FK violation means the post does not exist.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create blog reaction: %w", err)
	}
	return reaction, nil
}

func (db *DB) ListBlogReactions(ctx context.Context, postID string) ([]models.BlogReaction, error) {
	qb := NewQueryBuilder()
	if postID != "" {
		qb.AddCondition("post_id", postID)
	}

	query := fmt.Sprintf(`
		SELECT id, post_id, reaction_type, user_name, comment, created_at
		FROM blog_reactions %s
		ORDER BY created_at DESC
	`, qb.WhereClause())

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog reactions: %w", err)
	}
	defer rows.Close()

	reactions := []models.BlogReaction{}
	for rows.Next() {
		var r models.BlogReaction
		if err := rows.Scan(&r.ID, &r.PostID, &r.ReactionType, &r.UserName, &r.Comment, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog reaction: %w", err)
		}
		reactions = append(reactions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog reactions: %w", err)
	}
	return reactions, nil
}
