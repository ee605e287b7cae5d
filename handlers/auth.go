package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"lovgol/auth"
	"lovgol/database"
	"lovgol/logger"
	"lovgol/middleware"
	"lovgol/models"
	"lovgol/session"
)

// credentialsMessage is shared by every login failure so the response never
// reveals whether the username or the password was wrong.
const credentialsMessage = "Incorrect username or password"

// dummyHash is a valid bcrypt hash (cost 10) compared against on the
// unknown-username branch, so that branch costs the same bcrypt work as a
// real comparison and response timing does not reveal which usernames exist.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

func Login(store database.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}

		ctx := c.Request.Context()
		admin, err := store.GetAdminByUsername(ctx, req.Username)
		if err != nil {
			auth.CheckPassword(req.Password, dummyHash)
			c.JSON(http.StatusUnauthorized, gin.H{"message": credentialsMessage})
			return
		}

		if !auth.CheckPassword(req.Password, admin.Password) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": credentialsMessage})
			return
		}

		sessionID, err := sessions.Create(ctx, admin.ID)
		if err != nil {
			logger.Log.Error("failed to create session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
			return
		}

		c.SetCookie(middleware.SessionCookie, sessionID, 0, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged in", "username": admin.Username})
	}
}

func Logout(sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID, err := c.Cookie(middleware.SessionCookie); err == nil && sessionID != "" {
			if err := sessions.Delete(c.Request.Context(), sessionID); err != nil {
				logger.Log.Warn("failed to delete session", zap.Error(err))
			}
		}

		// Expire the cookie regardless of whether a session existed.
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
	}
}

func AuthStatus(store database.Store, sessions session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := middleware.ActiveAdmin(c, sessions, store)
		if !ok {
			c.JSON(http.StatusOK, models.AuthStatusResponse{})
			return
		}

		c.JSON(http.StatusOK, models.AuthStatusResponse{
			Authenticated: true,
			Username:      admin.Username,
		})
	}
}
