package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lovgol/database"
	"lovgol/models"
)

func CreateContactSubmission(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateContactSubmissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		sub, err := store.CreateContactSubmission(c.Request.Context(), &req)
		if err != nil {
			respondStoreError(c, err, "Contact submission")
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

func ListContactSubmissions(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := store.ListContactSubmissions(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, "Contact submission")
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}

func CreateInquirySubmission(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.CreateInquirySubmissionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		sub, err := store.CreateInquirySubmission(c.Request.Context(), &req)
		if err != nil {
			respondStoreError(c, err, "Inquiry submission")
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

func ListInquirySubmissions(store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		subs, err := store.ListInquirySubmissions(c.Request.Context())
		if err != nil {
			respondStoreError(c, err, "Inquiry submission")
			return
		}
		c.JSON(http.StatusOK, subs)
	}
}
