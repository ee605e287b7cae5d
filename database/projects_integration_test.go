package database

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lovgol/models"
)

func TestCreateProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()
	project, err := db.CreateProject(ctx, newProjectRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, project.ID)
	assert.NotEmpty(t, project.ClientAccessToken)
	assert.Equal(t, "Marketing Site", project.Title)
	assert.Equal(t, "0", project.ProgressPercentage)
	assert.Equal(t, "green", project.ProjectHealth)
	assert.False(t, project.CreatedAt.IsZero())
	assert.False(t, project.UpdatedAt.IsZero())
}

func TestGetProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()

	created, err := db.CreateProject(ctx, newProjectRequest())
	require.NoError(t, err)

	retrieved, err := db.GetProject(ctx, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, retrieved.ID)
	assert.Equal(t, created.Title, retrieved.Title)
	assert.Equal(t, created.ClientAccessToken, retrieved.ClientAccessToken)
}

func TestGetProject_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	_, err := db.GetProject(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetProjectByToken(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()

	created, err := db.CreateProject(ctx, newProjectRequest())
	require.NoError(t, err)

	byToken, err := db.GetProjectByToken(ctx, created.ClientAccessToken)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byToken.ID)

	byID, err := db.GetProjectByToken(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, byID.ID)

	_, err = db.GetProjectByToken(ctx, uuid.NewString())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()

	created, err := db.CreateProject(ctx, newProjectRequest())
	require.NoError(t, err)

	milestones := []models.Milestone{{Title: "Kickoff", Status: "completed"}}
	updated, err := db.UpdateProject(ctx, created.ID, &models.UpdateProjectRequest{
		ProgressPercentage: strPtr("60"),
		Milestones:         &milestones,
	})
	require.NoError(t, err)

	assert.Equal(t, "60", updated.ProgressPercentage)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.ClientAccessToken, updated.ClientAccessToken)
	require.Len(t, updated.Milestones, 1)
	assert.NotEmpty(t, updated.Milestones[0].ID)

	// Round-trip through the database preserves the merged record.
	retrieved, err := db.GetProject(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "60", retrieved.ProgressPercentage)
	require.Len(t, retrieved.Milestones, 1)
	assert.Equal(t, updated.Milestones[0].ID, retrieved.Milestones[0].ID)
}

func TestUpdateProject_NotFound(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	_, err := db.UpdateProject(context.Background(), uuid.NewString(), &models.UpdateProjectRequest{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteProject(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()

	created, err := db.CreateProject(ctx, newProjectRequest())
	require.NoError(t, err)

	require.NoError(t, db.DeleteProject(ctx, created.ID))

	_, err = db.GetProject(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, db.DeleteProject(ctx, created.ID), ErrNotFound)
}

func TestListProjects(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}
	db := requireTestDB(t)
	CleanupTestDB(t, db)

	ctx := context.Background()

	projects, err := db.ListProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, projects)

	for i := 0; i < 3; i++ {
		_, err := db.CreateProject(ctx, newProjectRequest())
		require.NoError(t, err)
	}

	projects, err = db.ListProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 3)
}
