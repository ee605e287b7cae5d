package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"lovgol/auth"
	"lovgol/database"
	"lovgol/middleware"
	"lovgol/session"
)

func newAuthRouter(store database.Store, sessions session.Store) *gin.Engine {
	r := gin.New()
	r.POST("/api/login", Login(store, sessions))
	r.POST("/api/logout", Logout(sessions))
	r.GET("/api/auth/status", AuthStatus(store, sessions))

	admin := r.Group("/api")
	admin.Use(middleware.SessionRequired(sessions, store))
	admin.GET("/projects", ListProjects(store))
	return r
}

func seedAdmin(t *testing.T, store database.Store, username, password string) {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	_, err = store.CreateAdmin(context.Background(), username, hash)
	require.NoError(t, err)
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			return c
		}
	}
	return nil
}

func TestLogin(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newAuthRouter(store, sessions)
	seedAdmin(t, store, "root", "hunter22")

	w := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"username": "root", "password": "hunter22",
	})

	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
}

func TestLogin_BadCredentials(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newAuthRouter(store, sessions)
	seedAdmin(t, store, "root", "hunter22")

	tests := []struct {
		name string
		body gin.H
	}{
		{"wrong password", gin.H{"username": "root", "password": "wrong"}},
		{"unknown user", gin.H{"username": "ghost", "password": "hunter22"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/login", tt.body)

			require.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Nil(t, sessionCookie(w))

			// Same message either way: the response must not reveal which
			// part of the credentials failed.
			var resp struct {
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Incorrect username or password", resp.Message)
		})
	}
}

// The unknown-username branch burns a bcrypt comparison against dummyHash so
// its timing matches the wrong-password branch. That only holds if the
// constant stays a well-formed hash at the same cost as real admin hashes.
func TestLoginDummyHashMatchesRealCost(t *testing.T) {
	cost, err := bcrypt.Cost([]byte(dummyHash))
	require.NoError(t, err)

	real, err := auth.HashPassword("any")
	require.NoError(t, err)
	realCost, err := bcrypt.Cost([]byte(real))
	require.NoError(t, err)

	assert.Equal(t, realCost, cost)
}

func TestSessionRequired(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newAuthRouter(store, sessions)
	seedAdmin(t, store, "root", "hunter22")

	// No cookie.
	w := doJSON(t, r, http.MethodGet, "/api/projects", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// Login and replay the cookie.
	login := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"username": "root", "password": "hunter22",
	})
	require.Equal(t, http.StatusOK, login.Code)
	cookie := sessionCookie(login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	// Garbage cookie.
	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "garbage"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthStatus(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newAuthRouter(store, sessions)
	seedAdmin(t, store, "root", "hunter22")

	// Anonymous.
	w := doJSON(t, r, http.MethodGet, "/api/auth/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Authenticated bool   `json:"authenticated"`
		Username      string `json:"username"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Authenticated)

	// Logged in.
	login := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"username": "root", "password": "hunter22",
	})
	cookie := sessionCookie(login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/status", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	assert.Equal(t, "root", resp.Username)
}

func TestLogout(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newAuthRouter(store, sessions)
	seedAdmin(t, store, "root", "hunter22")

	login := doJSON(t, r, http.MethodPost, "/api/login", gin.H{
		"username": "root", "password": "hunter22",
	})
	cookie := sessionCookie(login)
	require.NotNil(t, cookie)

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	expired := sessionCookie(w)
	require.NotNil(t, expired)
	assert.Empty(t, expired.Value)

	// The old session id no longer grants access.
	req = httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
