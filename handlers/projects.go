package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lovgol/database"
	"lovgol/logger"
	"lovgol/models"
	"lovgol/notify"
)

// projectUpdateResponse flattens the updated project and, when the progress
// changed, attaches the email decision for the caller's dispatcher.
type projectUpdateResponse struct {
	models.Project
	ShouldSendEmail bool              `json:"shouldSendEmail"`
	EmailData       *notify.EmailData `json:"emailData,omitempty"`
}

func CreateProject(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		project, err := store.CreateProject(c.Request.Context(), &req)
		if err != nil {
			respondStoreError(c, err, "Project")
			return
		}

		logger.Log.Info("project created",
			zap.String("id", project.ID),
			zap.String("client", project.ClientName))
		c.JSON(http.StatusCreated, project)
	}
}

func ListProjects(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		projects, err := store.ListProjects(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, "Project")
			return
		}
		c.JSON(http.StatusOK, projects)
	}
}

func GetProject(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.GetProject(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "Project")
			return
		}
		c.JSON(http.StatusOK, project)
	}
}

// UpdateProject applies a partial update and evaluates the progress
// notification decision against the pre-update record. The decision rides on
// the response; this server never sends the email itself.
func UpdateProject(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateProjectRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		id := c.Param("id")

		before, err := store.GetProject(ctx, id)
		if err != nil {
			respondStoreError(c, err, "Project")
			return
		}

		updated, err := store.UpdateProject(ctx, id, &req)
		if err != nil {
			respondStoreError(c, err, "Project")
			return
		}

		decision := notify.Evaluate(before, req.ProgressPercentage, updated, requestBaseURL(c))
		if decision.ShouldSend {
			logger.Log.Info("progress changed, notification due",
				zap.String("id", updated.ID),
				zap.String("from", before.ProgressPercentage),
				zap.String("to", updated.ProgressPercentage))
		}

		c.JSON(http.StatusOK, projectUpdateResponse{
			Project:         *updated,
			ShouldSendEmail: decision.ShouldSend,
			EmailData:       decision.Email,
		})
	}
}

func DeleteProject(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteProject(c.Request.Context(), c.Param("id")); err != nil {
			respondStoreError(c, err, "Project")
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// GetClientProject serves the token-gated status page data. The response is
// the client-safe projection only; an invalid token gets the same generic 404
// as a well-formed unknown one.
func GetClientProject(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		project, err := store.GetProjectByToken(c.Request.Context(), c.Param("token"))
		if err != nil {
			respondStoreError(c, err, "Project")
			return
		}
		c.JSON(http.StatusOK, project.ClientView())
	}
}
