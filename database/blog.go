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

const blogPostColumns = `id, title, slug, excerpt, content, featured_image, category, tags,
	is_published, published_at, view_count, like_count, created_at, updated_at`

func (db *DB) CreateBlogPost(ctx context.Context, req *models.CreateBlogPostRequest) (*models.BlogPost, error) {
	now := time.Now().UTC()
	post := &models.BlogPost{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          req.Tags,
		IsPublished:   req.IsPublished,
		PublishedAt:   req.PublishedAt,
		ViewCount:     "0",
		LikeCount:     "0",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.IsPublished && post.PublishedAt == nil {
		post.PublishedAt = &now
	}

	query := `
		INSERT INTO blog_posts (` + blogPostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`
	_, err := db.Pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content,
		post.FeaturedImage, post.Category, jsonOrEmpty(post.Tags),
		post.IsPublished, post.PublishedAt, post.ViewCount, post.LikeCount,
		post.CreatedAt, post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create blog post: %w", err)
	}
	return post, nil
}

func (db *DB) GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1`
	return db.getBlogPost(ctx, query, id)
}

func (db *DB) GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = $1`
	return db.getBlogPost(ctx, query, slug)
}

func (db *DB) getBlogPost(ctx context.Context, query, key string) (*models.BlogPost, error) {
	post, err := scanBlogPost(db.Pool.QueryRow(ctx, query, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return post, nil
}

func (db *DB) UpdateBlogPost(ctx context.Context, id string, req *models.UpdateBlogPostRequest) (*models.BlogPost, error) {
	post, err := db.GetBlogPost(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = *req.Tags
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}
	if req.PublishedAt != nil {
		post.PublishedAt = req.PublishedAt
	}
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	post.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE blog_posts SET
			title = $2, slug = $3, excerpt = $4, content = $5, featured_image = $6,
			category = $7, tags = $8, is_published = $9, published_at = $10,
			updated_at = $11
		WHERE id = $1
	`
	_, err = db.Pool.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.FeaturedImage,
		post.Category, jsonOrEmpty(post.Tags), post.IsPublished, post.PublishedAt,
		post.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to update blog post: %w", err)
	}
	return post, nil
}

// DeleteBlogPost removes a post and its reactions. Reactions go first so a
// failed post delete leaves nothing dangling.
func (db *DB) DeleteBlogPost(ctx context.Context, id string) error {
	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM blog_reactions WHERE post_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete blog reactions: %w", err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}

	return tx.Commit(ctx)
}

func (db *DB) ListBlogPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	qb := NewQueryBuilder()
	orderBy := "created_at DESC"
	if publishedOnly {
		qb.AddCondition("is_published", true)
		orderBy = "published_at DESC"
	}

	query := fmt.Sprintf(`SELECT %s FROM blog_posts %s ORDER BY %s`,
		blogPostColumns, qb.WhereClause(), orderBy)

	rows, err := db.Pool.Query(ctx, query, qb.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []models.BlogPost{}
	for rows.Next() {
		post, err := scanBlogPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, *post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating blog posts: %w", err)
	}
	return posts, nil
}

func (db *DB) IncrementBlogPostViews(ctx context.Context, id string) error {
	return db.bumpBlogPostCounter(ctx, id, "view_count")
}

func (db *DB) IncrementBlogPostLikes(ctx context.Context, id string) error {
	return db.bumpBlogPostCounter(ctx, id, "like_count")
}

// bumpBlogPostCounter increments a string-encoded counter column in place.
// The cast round-trip keeps the stored representation textual.
func (db *DB) bumpBlogPostCounter(ctx context.Context, id, column string) error {
	query := fmt.Sprintf(`
		UPDATE blog_posts
		SET %s = (COALESCE(NULLIF(%s, '')::int, 0) + 1)::text
		WHERE id = $1
	`, column, column)

	result, err := db.Pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to increment %s: %w", column, err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanBlogPost(row rowScanner) (*models.BlogPost, error) {
	var post models.BlogPost
	err := row.Scan(
		&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content,
		&post.FeaturedImage, &post.Category, &post.Tags,
		&post.IsPublished, &post.PublishedAt, &post.ViewCount, &post.LikeCount,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &post, nil
}
