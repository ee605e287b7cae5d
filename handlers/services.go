package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lovgol/database"
	"lovgol/models"
)

func ListServicePreviews(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		previews, err := store.ListServicePreviews(c.Request.Context(),
			c.Query("category"), c.Query("technology"))
		if err != nil {
			respondStoreError(c, err, "Service preview")
			return
		}
		c.JSON(http.StatusOK, previews)
	}
}

func GetServicePreview(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		preview, err := store.GetServicePreview(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "Service preview")
			return
		}
		c.JSON(http.StatusOK, preview)
	}
}

func CreateServicePreview(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateServicePreviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		preview, err := store.CreateServicePreview(c.Request.Context(), &req)
		if err != nil {
			respondStoreError(c, err, "Service preview")
			return
		}
		c.JSON(http.StatusCreated, preview)
	}
}

func UpdateServicePreview(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateServicePreviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		preview, err := store.UpdateServicePreview(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondStoreError(c, err, "Service preview")
			return
		}
		c.JSON(http.StatusOK, preview)
	}
}

func DeleteServicePreview(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteServicePreview(c.Request.Context(), c.Param("id")); err != nil {
			respondStoreError(c, err, "Service preview")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
