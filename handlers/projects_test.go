package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lovgol/database"
	"lovgol/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newProjectRouter(store database.Store) *gin.Engine {
	r := gin.New()
	r.POST("/api/projects", CreateProject(store))
	r.GET("/api/projects", ListProjects(store))
	r.GET("/api/projects/:id", GetProject(store))
	r.PUT("/api/projects/:id", UpdateProject(store))
	r.DELETE("/api/projects/:id", DeleteProject(store))
	r.GET("/api/client-project/:token", GetClientProject(store))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedProject(t *testing.T, store database.Store) *models.Project {
	t.Helper()

	p, err := store.CreateProject(context.Background(), &models.CreateProjectRequest{
		Title:       "Marketing Site",
		ClientName:  "Dana",
		ClientEmail: "dana@example.com",
		Description: "Full rebuild",
		Category:    "web",
		Technology:  "go",
	})
	require.NoError(t, err)
	return p
}

func TestCreateProjectHandler(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)

	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{
		"title":       "Marketing Site",
		"clientName":  "Dana",
		"clientEmail": "dana@example.com",
		"description": "Full rebuild",
		"category":    "web",
		"technology":  "go",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var got models.Project
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotEmpty(t, got.ID)
	assert.NotEmpty(t, got.ClientAccessToken)
	assert.Equal(t, "0", got.ProgressPercentage)
}

func TestCreateProjectHandler_ValidationError(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)

	// Missing required clientEmail.
	w := doJSON(t, r, http.MethodPost, "/api/projects", gin.H{
		"title": "Incomplete",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProjectHandler_ProgressChangeTriggersEmail(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)
	p := seedProject(t, store)

	w := doJSON(t, r, http.MethodPut, "/api/projects/"+p.ID, gin.H{
		"progressPercentage": "50",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ShouldSendEmail bool `json:"shouldSendEmail"`
		EmailData       *struct {
			ToEmail            string `json:"to_email"`
			ToName             string `json:"to_name"`
			ProjectTitle       string `json:"project_title"`
			ProgressPercentage string `json:"progress_percentage"`
			ProgressDesc       string `json:"progress_description"`
			ProjectLink        string `json:"project_link"`
		} `json:"emailData"`
		ProgressPercentage string `json:"progressPercentage"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.True(t, resp.ShouldSendEmail)
	assert.Equal(t, "50", resp.ProgressPercentage)
	require.NotNil(t, resp.EmailData)
	assert.Equal(t, "dana@example.com", resp.EmailData.ToEmail)
	assert.Equal(t, "Dana", resp.EmailData.ToName)
	assert.Equal(t, "Marketing Site", resp.EmailData.ProjectTitle)
	assert.Equal(t, "50", resp.EmailData.ProgressPercentage)
	assert.Equal(t, "No additional details provided.", resp.EmailData.ProgressDesc)
	assert.Contains(t, resp.EmailData.ProjectLink, "/client-project/"+p.ClientAccessToken)
}

func TestUpdateProjectHandler_UnrelatedEditNoEmail(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)
	p := seedProject(t, store)

	w := doJSON(t, r, http.MethodPut, "/api/projects/"+p.ID, gin.H{
		"clientName": "Dana R.",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ShouldSendEmail bool            `json:"shouldSendEmail"`
		EmailData       json.RawMessage `json:"emailData"`
		ClientName      string          `json:"clientName"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.False(t, resp.ShouldSendEmail)
	assert.Nil(t, resp.EmailData)
	assert.Equal(t, "Dana R.", resp.ClientName)
}

func TestUpdateProjectHandler_SameProgressNoEmail(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)
	p := seedProject(t, store)

	w := doJSON(t, r, http.MethodPut, "/api/projects/"+p.ID, gin.H{
		"progressPercentage": "0",
	})

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ShouldSendEmail bool `json:"shouldSendEmail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.ShouldSendEmail)
}

func TestUpdateProjectHandler_NotFound(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)

	w := doJSON(t, r, http.MethodPut, "/api/projects/missing", gin.H{
		"progressPercentage": "50",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteProjectHandler(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)
	p := seedProject(t, store)

	w := doJSON(t, r, http.MethodDelete, "/api/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/projects/"+p.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetClientProjectHandler(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)
	p := seedProject(t, store)

	w := doJSON(t, r, http.MethodGet, "/api/client-project/"+p.ClientAccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var keys map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &keys))

	assert.Contains(t, keys, "progressPercentage")
	assert.Contains(t, keys, "milestones")
	for _, hidden := range []string{
		"clientEmail", "clientAccessToken", "teamUpdates", "nextSteps", "riskIssues",
	} {
		assert.NotContains(t, keys, hidden)
	}
}

func TestGetClientProjectHandler_BadToken(t *testing.T) {
	store := database.NewMemory()
	r := newProjectRouter(store)
	seedProject(t, store)

	w := doJSON(t, r, http.MethodGet, "/api/client-project/not-a-token", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
