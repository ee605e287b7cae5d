package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lovgol/database"
	"lovgol/models"
)

func ListCaseStudies(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		studies, err := store.ListCaseStudies(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, "Case study")
			return
		}
		c.JSON(http.StatusOK, studies)
	}
}

func GetCaseStudy(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cs, err := store.GetCaseStudy(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondStoreError(c, err, "Case study")
			return
		}
		c.JSON(http.StatusOK, cs)
	}
}

func GetCaseStudyBySlug(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		cs, err := store.GetCaseStudyBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			respondStoreError(c, err, "Case study")
			return
		}
		c.JSON(http.StatusOK, cs)
	}
}

func CreateCaseStudy(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateCaseStudyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		cs, err := store.CreateCaseStudy(c.Request.Context(), &req)
		if err != nil {
			respondStoreError(c, err, "Case study")
			return
		}
		c.JSON(http.StatusCreated, cs)
	}
}

func UpdateCaseStudy(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.UpdateCaseStudyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		cs, err := store.UpdateCaseStudy(c.Request.Context(), c.Param("id"), &req)
		if err != nil {
			respondStoreError(c, err, "Case study")
			return
		}
		c.JSON(http.StatusOK, cs)
	}
}

func DeleteCaseStudy(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.DeleteCaseStudy(c.Request.Context(), c.Param("id")); err != nil {
			respondStoreError(c, err, "Case study")
			return
		}
		c.Status(http.StatusNoContent)
	}
}
