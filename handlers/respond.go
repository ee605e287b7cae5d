package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lovgol/database"
	"lovgol/logger"
)

// respondStoreError maps store failures onto the API error taxonomy. Internal
// failures are logged with detail but surface only a generic message.
func respondStoreError(c *gin.Context, err error, entity string) {
	switch {
	case errors.Is(err, database.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": entity + " not found"})
	case errors.Is(err, database.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"message": entity + " already exists"})
	default:
		logger.Log.Error("store operation failed", zap.String("entity", entity), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

// bumpDisplayCount mirrors a just-applied counter increment in the response
// body without re-reading the record.
func bumpDisplayCount(s string) string {
	n, err := strconv.Atoi(s)
	if err != nil {
		n = 0
	}
	return strconv.Itoa(n + 1)
}

// requestBaseURL reconstructs the caller-facing origin from the request, used
// to build client status page links.
func requestBaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
