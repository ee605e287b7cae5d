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

	"lovgol/database"
	"lovgol/middleware"
	"lovgol/models"
	"lovgol/session"
)

func newBlogRouter(store database.Store, sessions session.Store) *gin.Engine {
	r := gin.New()
	r.GET("/api/blog-posts", ListBlogPosts(store, sessions))
	r.GET("/api/blog-posts/:id", GetBlogPost(store, sessions))
	r.GET("/api/blog-posts/slug/:slug", GetBlogPostBySlug(store, sessions))
	r.POST("/api/blog-posts", CreateBlogPost(store))
	r.POST("/api/blog-posts/:id/like", LikeBlogPost(store))
	r.GET("/api/blog-reactions", ListBlogReactions(store))
	r.POST("/api/blog-reactions", CreateBlogReaction(store))
	return r
}

// adminSessionCookie seeds an admin and opens a session for it directly.
func adminSessionCookie(t *testing.T, store database.Store, sessions session.Store) *http.Cookie {
	t.Helper()

	admin, err := store.CreateAdmin(context.Background(), "root", "hash")
	require.NoError(t, err)
	id, err := sessions.Create(context.Background(), admin.ID)
	require.NoError(t, err)
	return &http.Cookie{Name: middleware.SessionCookie, Value: id}
}

func doJSONWithCookie(t *testing.T, r *gin.Engine, method, path string, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	req.AddCookie(cookie)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedBlogPost(t *testing.T, store database.Store, slug string, published bool) *models.BlogPost {
	t.Helper()

	post, err := store.CreateBlogPost(context.Background(), &models.CreateBlogPostRequest{
		Title:       "Post " + slug,
		Slug:        slug,
		Excerpt:     "excerpt",
		Content:     "content",
		Category:    "engineering",
		IsPublished: published,
	})
	require.NoError(t, err)
	return post
}

func TestGetBlogPostBySlug_IncrementsViews(t *testing.T) {
	store := database.NewMemory()
	r := newBlogRouter(store, session.NewMemoryStore(time.Hour))
	post := seedBlogPost(t, store, "first", true)

	w := doJSON(t, r, http.MethodGet, "/api/blog-posts/slug/first", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, post.ID, got.ID)
	assert.Equal(t, "1", got.ViewCount)

	// Fetching by id does not count a view.
	w = doJSON(t, r, http.MethodGet, "/api/blog-posts/"+post.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "1", got.ViewCount)
}

func TestGetBlogPostBySlug_NotFound(t *testing.T) {
	store := database.NewMemory()
	r := newBlogRouter(store, session.NewMemoryStore(time.Hour))

	w := doJSON(t, r, http.MethodGet, "/api/blog-posts/slug/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBlogPostHandler_SlugConflict(t *testing.T) {
	store := database.NewMemory()
	r := newBlogRouter(store, session.NewMemoryStore(time.Hour))
	seedBlogPost(t, store, "taken", false)

	w := doJSON(t, r, http.MethodPost, "/api/blog-posts", gin.H{
		"title": "Another", "slug": "taken", "excerpt": "e", "content": "c", "category": "eng",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLikeBlogPostHandler(t *testing.T) {
	store := database.NewMemory()
	r := newBlogRouter(store, session.NewMemoryStore(time.Hour))
	post := seedBlogPost(t, store, "likeable", true)

	w := doJSON(t, r, http.MethodPost, "/api/blog-posts/"+post.ID+"/like", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		LikeCount string `json:"likeCount"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.LikeCount)

	w = doJSON(t, r, http.MethodPost, "/api/blog-posts/missing/like", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateBlogReactionHandler_LikeBumpsCounter(t *testing.T) {
	store := database.NewMemory()
	r := newBlogRouter(store, session.NewMemoryStore(time.Hour))
	post := seedBlogPost(t, store, "liked", true)

	w := doJSON(t, r, http.MethodPost, "/api/blog-reactions", gin.H{
		"postId": post.ID, "reactionType": "like", "userName": "Dana",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	got, err := store.GetBlogPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "1", got.LikeCount)
}

func TestCreateBlogReactionHandler_CommentDoesNotBump(t *testing.T) {
	store := database.NewMemory()
	r := newBlogRouter(store, session.NewMemoryStore(time.Hour))
	post := seedBlogPost(t, store, "commented", true)

	w := doJSON(t, r, http.MethodPost, "/api/blog-reactions", gin.H{
		"postId": post.ID, "reactionType": "comment", "userName": "Dana", "comment": "Nice",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	got, err := store.GetBlogPost(context.Background(), post.ID)
	require.NoError(t, err)
	assert.Equal(t, "0", got.LikeCount)
}

func TestCreateBlogReactionHandler_Validation(t *testing.T) {
	store := database.NewMemory()
	r := newBlogRouter(store, session.NewMemoryStore(time.Hour))
	post := seedBlogPost(t, store, "reacted", true)

	// Unsupported reaction type.
	w := doJSON(t, r, http.MethodPost, "/api/blog-reactions", gin.H{
		"postId": post.ID, "reactionType": "dislike",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown post.
	w = doJSON(t, r, http.MethodPost, "/api/blog-reactions", gin.H{
		"postId": "missing", "reactionType": "like",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListBlogPostsHandler_AnonymousNeverSeesDrafts(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newBlogRouter(store, sessions)
	seedBlogPost(t, store, "draft", false)
	seedBlogPost(t, store, "live", true)

	// With and without the published filter, anonymous listings contain only
	// published posts.
	for _, path := range []string{"/api/blog-posts", "/api/blog-posts?published=true"} {
		w := doJSON(t, r, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var posts []models.BlogPost
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
		require.Len(t, posts, 1)
		assert.Equal(t, "live", posts[0].Slug)
		assert.True(t, posts[0].IsPublished)
	}
}

func TestListBlogPostsHandler_AdminSeesDrafts(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newBlogRouter(store, sessions)
	seedBlogPost(t, store, "draft", false)
	seedBlogPost(t, store, "live", true)
	cookie := adminSessionCookie(t, store, sessions)

	w := doJSONWithCookie(t, r, http.MethodGet, "/api/blog-posts", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)

	// The explicit published filter wins even for an admin.
	w = doJSONWithCookie(t, r, http.MethodGet, "/api/blog-posts?published=true", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &posts))
	require.Len(t, posts, 1)
	assert.Equal(t, "live", posts[0].Slug)
}

func TestGetBlogPost_DraftHiddenFromAnonymous(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newBlogRouter(store, sessions)
	draft := seedBlogPost(t, store, "draft", false)

	w := doJSON(t, r, http.MethodGet, "/api/blog-posts/"+draft.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/blog-posts/slug/draft", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// No views are counted for the rejected fetches.
	got, err := store.GetBlogPost(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "0", got.ViewCount)
}

func TestGetBlogPostBySlug_AdminDraftPreviewDoesNotCountViews(t *testing.T) {
	store := database.NewMemory()
	sessions := session.NewMemoryStore(time.Hour)
	r := newBlogRouter(store, sessions)
	draft := seedBlogPost(t, store, "draft", false)
	cookie := adminSessionCookie(t, store, sessions)

	w := doJSONWithCookie(t, r, http.MethodGet, "/api/blog-posts/slug/draft", cookie)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.BlogPost
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, draft.ID, got.ID)
	assert.Equal(t, "0", got.ViewCount)

	stored, err := store.GetBlogPost(context.Background(), draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "0", stored.ViewCount)
}
