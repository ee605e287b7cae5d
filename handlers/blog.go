package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lovgol/database"
	"lovgol/logger"
	"lovgol/middleware"
	"lovgol/models"
	"lovgol/session"
)

// ListBlogPosts serves the blog listing. Anonymous callers only ever see
// published posts; drafts appear only for a caller with a live admin session
// (the routes are shared, so visibility is decided here rather than by a
// separate gated route).
func ListBlogPosts(store database.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		publishedOnly := true
		if c.Query("published") != "true" {
			if _, ok := middleware.ActiveAdmin(c, sessions, store); ok {
				publishedOnly = false
			}
		}

		posts, err := store.ListBlogPosts(c.Request.Context(), publishedOnly)
		if err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}
		c.JSON(http.StatusOK, posts)
	}
}

func GetBlogPost(store database.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		post, err := store.GetBlogPost(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}

		// A draft looks like a missing post to everyone but an admin.
		if !post.IsPublished {
			if _, ok := middleware.ActiveAdmin(c, sessions, store); !ok {
				c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
				return
			}
		}
		c.JSON(http.StatusOK, post)
	}
}

// GetBlogPostBySlug is the public read path: each published fetch counts as
// a view. Admin draft previews are served without counting.
func GetBlogPostBySlug(store database.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		post, err := store.GetBlogPostBySlug(ctx, c.Param("slug"))
		if err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}

		if !post.IsPublished {
			if _, ok := middleware.ActiveAdmin(c, sessions, store); !ok {
				c.JSON(http.StatusNotFound, gin.H{"message": "Blog post not found"})
				return
			}
			c.JSON(http.StatusOK, post)
			return
		}

		if err := store.IncrementBlogPostViews(ctx, post.ID); err != nil {
			// The read already succeeded; a lost view increment is not worth
			// failing the request over.
			logger.Log.Warn("failed to increment view count",
				zap.String("id", post.ID), zap.Error(err))
		} else {
			post.ViewCount = bumpDisplayCount(post.ViewCount)
		}

		c.JSON(http.StatusOK, post)
	}
}

// LikeBlogPost bumps a post's like counter without recording a reaction.
func LikeBlogPost(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("id")

		if err := store.IncrementBlogPostLikes(ctx, id); err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}

		post, err := store.GetBlogPost(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}
		c.JSON(http.StatusOK, gin.H{"likeCount": post.LikeCount})
	}
}

func CreateBlogPost(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateBlogPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		post, err := store.CreateBlogPost(c.Request.Context(), &req)
		if err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}
		c.JSON(http.StatusCreated, post)
	}
}

func UpdateBlogPost(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateBlogPostRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		post, err := store.UpdateBlogPost(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}
		c.JSON(http.StatusOK, post)
	}
}

func DeleteBlogPost(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteBlogPost(c.Request.Context(), c.Param("id")); err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
