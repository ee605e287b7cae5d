package models

import "time"

// BlogReaction is a reader reaction or comment on a blog post. Creating a
// "like" reaction also bumps the post's like counter.
type BlogReaction struct {
	ID           string    `json:"id"`
	PostID       string    `json:"postId"`
	ReactionType string    `json:"reactionType"`
	UserName     string    `json:"userName,omitempty"`
	Comment      string    `json:"comment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CreateBlogReactionRequest struct {
	PostID       string `json:"postId" binding:"required"`
	ReactionType string `json:"reactionType" binding:"required,oneof=like love insightful comment"`
	UserName     string `json:"userName"`
	Comment      string `json:"comment"`
}
