package models

import "time"

// ServicePreview is a service card shown on the marketing site, filterable by
// category ('web', 'app', 'automation') and technology.
type ServicePreview struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Technology  string    `json:"technology"`
	Tags        []string  `json:"tags"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type CreateServicePreviewRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Technology  string   `json:"technology" binding:"required"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
}

type UpdateServicePreviewRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Technology  *string   `json:"technology"`
	Tags        *[]string `json:"tags"`
	ImageURL    *string   `json:"imageUrl"`
}
