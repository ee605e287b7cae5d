package models

import "time"

// BlogPost is an article on the marketing site. View and like counts are
// string-encoded integers, matching the admin UI contract.
type BlogPost struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	FeaturedImage string     `json:"featuredImage,omitempty"`
	Category      string     `json:"category"`
	Tags          []string   `json:"tags"`
	IsPublished   bool       `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt"`
	ViewCount     string     `json:"viewCount"`
	LikeCount     string     `json:"likeCount"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

type CreateBlogPostRequest struct {
	Title         string     `json:"title" binding:"required"`
	Slug          string     `json:"slug" binding:"required"`
	Excerpt       string     `json:"excerpt" binding:"required"`
	Content       string     `json:"content" binding:"required"`
	FeaturedImage string     `json:"featuredImage"`
	Category      string     `json:"category" binding:"required"`
	Tags          []string   `json:"tags"`
	IsPublished   bool       `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt"`
}

type UpdateBlogPostRequest struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Excerpt       *string    `json:"excerpt"`
	Content       *string    `json:"content"`
	FeaturedImage *string    `json:"featuredImage"`
	Category      *string    `json:"category"`
	Tags          *[]string  `json:"tags"`
	IsPublished   *bool      `json:"isPublished"`
	PublishedAt   *time.Time `json:"publishedAt"`
}
