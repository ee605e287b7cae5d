package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lovgol/database"
	"lovgol/logger"
	"lovgol/models"
)

func ListBlogReactions(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		reactions, err := store.ListBlogReactions(c.Request.Context(), c.Query("postId"))
		if err != nil {
			respondStoreError(c, err, "Blog reaction")
			return
		}
		c.JSON(http.StatusOK, reactions)
	}
}

// CreateBlogReaction records a reaction; a "like" also bumps the post's like
// counter.
func CreateBlogReaction(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateBlogReactionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		reaction, err := store.CreateBlogReaction(ctx, &req)
		if err != nil {
			respondStoreError(c, err, "Blog post")
			return
		}

		if req.ReactionType == "like" {
			if err := store.IncrementBlogPostLikes(ctx, req.PostID); err != nil {
				logger.Log.Warn("failed to increment like count",
					zap.String("postId", req.PostID), zap.Error(err))
			}
		}

		c.JSON(http.StatusCreated, reaction)
	}
}
