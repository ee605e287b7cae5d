package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lovgol/database"
	"lovgol/models"
	"lovgol/session"
)

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "lovgol_session"

// Context keys set for downstream handlers once a session is validated.
const (
	ContextAdminID       = "admin_id"
	ContextAdminUsername = "admin_username"
)

// ActiveAdmin resolves the request's session cookie to an admin without
// rejecting the request. Public routes that show more to a logged-in admin
// (draft blog posts) use this directly; SessionRequired builds on it.
func ActiveAdmin(c *gin.Context, sessions session.Store, store database.Store) (*models.Admin, bool) {
	sessionID, err := c.Cookie(SessionCookie)
	if err != nil || sessionID == "" {
		return nil, false
	}

	ctx := c.Request.Context()
	adminID, err := sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, false
	}

	admin, err := store.GetAdminByID(ctx, adminID)
	if err != nil {
		return nil, false
	}
	return admin, true
}

// SessionRequired rejects requests without a live admin session. The error
// body is deliberately uniform: missing cookie, unknown session and deleted
// admin all look the same to the caller.
func SessionRequired(sessions session.Store, store database.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := ActiveAdmin(c, sessions, store)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			c.Abort()
			return
		}

		c.Set(ContextAdminID, admin.ID)
		c.Set(ContextAdminUsername, admin.Username)

		c.Next()
	}
}
