package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"lovgol/models"
)

// Memory is an in-process Store keeping every record in maps guarded by an
// RWMutex. It backs handler tests and DB-less local runs; the production
// contract is the Store interface, not this map layout.
type Memory struct {
	mu          sync.RWMutex
	projects    map[string]*models.Project
	admins      map[string]*models.Admin
	services    map[string]*models.ServicePreview
	posts       map[string]*models.BlogPost
	studies     map[string]*models.CaseStudy
	contacts    map[string]*models.ContactSubmission
	inquiries   map[string]*models.InquirySubmission
	reactions   map[string]*models.BlogReaction
	insertOrder map[string]int
	seq         int
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{
		projects:    make(map[string]*models.Project),
		admins:      make(map[string]*models.Admin),
		services:    make(map[string]*models.ServicePreview),
		posts:       make(map[string]*models.BlogPost),
		studies:     make(map[string]*models.CaseStudy),
		contacts:    make(map[string]*models.ContactSubmission),
		inquiries:   make(map[string]*models.InquirySubmission),
		reactions:   make(map[string]*models.BlogReaction),
		insertOrder: make(map[string]int),
	}
}

// track remembers insertion order so newest-first listings are stable even
// when timestamps collide within clock resolution.
func (m *Memory) track(id string) {
	m.seq++
	m.insertOrder[id] = m.seq
}

// --- Projects ---

func (m *Memory) CreateProject(_ context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p := newProjectRecord(req)
	m.projects[p.ID] = p
	m.track(p.ID)

	out := copyProject(p)
	return &out, nil
}

func (m *Memory) GetProject(_ context.Context, id string) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := copyProject(p)
	return &out, nil
}

func (m *Memory) GetProjectByToken(_ context.Context, token string) (*models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, p := range m.projects {
		if p.ClientAccessToken == token {
			out := copyProject(p)
			return &out, nil
		}
	}
	// Fall back to id lookup, same as the Postgres store.
	if p, ok := m.projects[token]; ok {
		out := copyProject(p)
		return &out, nil
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateProject(_ context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	p, ok := m.projects[id]
	if !ok {
		return nil, ErrNotFound
	}

	applyProjectUpdate(p, req)

	out := copyProject(p)
	return &out, nil
}

func (m *Memory) DeleteProject(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.projects[id]; !ok {
		return ErrNotFound
	}
	delete(m.projects, id)
	delete(m.insertOrder, id)
	return nil
}

func (m *Memory) ListProjects(_ context.Context) ([]models.Project, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.Project{}
	for _, p := range m.projects {
		out = append(out, copyProject(p))
	}
	sortNewestFirst(out, m.insertOrder, func(p models.Project) (time.Time, string) { return p.CreatedAt, p.ID })
	return out, nil
}

// copyProject returns a deep copy so callers never alias the stored slices.
func copyProject(p *models.Project) models.Project {
	out := *p
	out.Milestones = append([]models.Milestone{}, p.Milestones...)
	out.TeamUpdates = append([]models.TeamUpdate{}, p.TeamUpdates...)
	out.ClientFeedback = append([]models.ClientFeedback{}, p.ClientFeedback...)
	out.NextSteps = append([]models.NextStep{}, p.NextSteps...)
	out.RiskIssues = append([]models.RiskIssue{}, p.RiskIssues...)
	return out
}

// --- Admins ---

func (m *Memory) CreateAdmin(_ context.Context, username, passwordHash string) (*models.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.admins {
		if a.Username == username {
			return nil, ErrConflict
		}
	}

	admin := &models.Admin{
		ID:        uuid.NewString(),
		Username:  username,
		Password:  passwordHash,
		CreatedAt: time.Now().UTC(),
	}
	m.admins[admin.ID] = admin

	out := *admin
	return &out, nil
}

func (m *Memory) GetAdminByUsername(_ context.Context, username string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.admins {
		if a.Username == username {
			out := *a
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) GetAdminByID(_ context.Context, id string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	a, ok := m.admins[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *a
	return &out, nil
}

// --- Service previews ---

func (m *Memory) CreateServicePreview(_ context.Context, req *models.CreateServicePreviewRequest) (*models.ServicePreview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	sp := &models.ServicePreview{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Technology:  req.Technology,
		Tags:        append([]string{}, req.Tags...),
		ImageURL:    req.ImageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	m.services[sp.ID] = sp
	m.track(sp.ID)

	out := *sp
	return &out, nil
}

func (m *Memory) GetServicePreview(_ context.Context, id string) (*models.ServicePreview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sp, ok := m.services[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *sp
	return &out, nil
}

func (m *Memory) UpdateServicePreview(_ context.Context, id string, req *models.UpdateServicePreviewRequest) (*models.ServicePreview, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sp, ok := m.services[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Title != nil {
		sp.Title = *req.Title
	}
	if req.Description != nil {
		sp.Description = *req.Description
	}
	if req.Category != nil {
		sp.Category = *req.Category
	}
	if req.Technology != nil {
		sp.Technology = *req.Technology
	}
	if req.Tags != nil {
		sp.Tags = append([]string{}, (*req.Tags)...)
	}
	if req.ImageURL != nil {
		sp.ImageURL = *req.ImageURL
	}
	sp.UpdatedAt = time.Now().UTC()

	out := *sp
	return &out, nil
}

func (m *Memory) DeleteServicePreview(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.services[id]; !ok {
		return ErrNotFound
	}
	delete(m.services, id)
	delete(m.insertOrder, id)
	return nil
}

func (m *Memory) ListServicePreviews(_ context.Context, category, technology string) ([]models.ServicePreview, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.ServicePreview{}
	for _, sp := range m.services {
		if category != "" && sp.Category != category {
			continue
		}
		if category == "" && technology != "" && sp.Technology != technology {
			continue
		}
		out = append(out, *sp)
	}
	sortNewestFirst(out, m.insertOrder, func(sp models.ServicePreview) (time.Time, string) { return sp.CreatedAt, sp.ID })
	return out, nil
}

// --- Blog posts ---

func (m *Memory) CreateBlogPost(_ context.Context, req *models.CreateBlogPostRequest) (*models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.posts {
		if p.Slug == req.Slug {
			return nil, ErrConflict
		}
	}

	now := time.Now().UTC()
	post := &models.BlogPost{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Slug:          req.Slug,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		FeaturedImage: req.FeaturedImage,
		Category:      req.Category,
		Tags:          append([]string{}, req.Tags...),
		IsPublished:   req.IsPublished,
		PublishedAt:   req.PublishedAt,
		ViewCount:     "0",
		LikeCount:     "0",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if post.IsPublished && post.PublishedAt == nil {
		post.PublishedAt = &now
	}
	m.posts[post.ID] = post
	m.track(post.ID)

	out := *post
	return &out, nil
}

func (m *Memory) GetBlogPost(_ context.Context, id string) (*models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *post
	return &out, nil
}

func (m *Memory) GetBlogPostBySlug(_ context.Context, slug string) (*models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, post := range m.posts {
		if post.Slug == slug {
			out := *post
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateBlogPost(_ context.Context, id string, req *models.UpdateBlogPostRequest) (*models.BlogPost, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Slug != nil && *req.Slug != post.Slug {
		for _, other := range m.posts {
			if other.Slug == *req.Slug {
				return nil, ErrConflict
			}
		}
		post.Slug = *req.Slug
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.FeaturedImage != nil {
		post.FeaturedImage = *req.FeaturedImage
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.Tags != nil {
		post.Tags = append([]string{}, (*req.Tags)...)
	}
	if req.IsPublished != nil {
		post.IsPublished = *req.IsPublished
	}
	if req.PublishedAt != nil {
		post.PublishedAt = req.PublishedAt
	}
	if post.IsPublished && post.PublishedAt == nil {
		now := time.Now().UTC()
		post.PublishedAt = &now
	}
	post.UpdatedAt = time.Now().UTC()

	out := *post
	return &out, nil
}

func (m *Memory) DeleteBlogPost(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[id]; !ok {
		return ErrNotFound
	}
	for rid, r := range m.reactions {
		if r.PostID == id {
			delete(m.reactions, rid)
			delete(m.insertOrder, rid)
		}
	}
	delete(m.posts, id)
	delete(m.insertOrder, id)
	return nil
}

func (m *Memory) ListBlogPosts(_ context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.BlogPost{}
	for _, post := range m.posts {
		if publishedOnly && !post.IsPublished {
			continue
		}
		out = append(out, *post)
	}
	if publishedOnly {
		sort.Slice(out, func(i, j int) bool {
			pi, pj := out[i].PublishedAt, out[j].PublishedAt
			if pi == nil || pj == nil {
				return pj == nil && pi != nil
			}
			return pi.After(*pj)
		})
	} else {
		sortNewestFirst(out, m.insertOrder, func(p models.BlogPost) (time.Time, string) { return p.CreatedAt, p.ID })
	}
	return out, nil
}

func (m *Memory) IncrementBlogPostViews(_ context.Context, id string) error {
	return m.bumpPostCounter(id, true)
}

func (m *Memory) IncrementBlogPostLikes(_ context.Context, id string) error {
	return m.bumpPostCounter(id, false)
}

func (m *Memory) bumpPostCounter(id string, views bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	post, ok := m.posts[id]
	if !ok {
		return ErrNotFound
	}
	if views {
		post.ViewCount = bumpCount(post.ViewCount)
	} else {
		post.LikeCount = bumpCount(post.LikeCount)
	}
	return nil
}

// --- Case studies ---

func (m *Memory) CreateCaseStudy(_ context.Context, req *models.CreateCaseStudyRequest) (*models.CaseStudy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, cs := range m.studies {
		if cs.Slug == req.Slug {
			return nil, ErrConflict
		}
	}

	now := time.Now().UTC()
	cs := &models.CaseStudy{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Slug:         req.Slug,
		Client:       req.Client,
		Industry:     req.Industry,
		Timeline:     req.Timeline,
		TeamSize:     req.TeamSize,
		Challenge:    req.Challenge,
		Solution:     req.Solution,
		HeroImage:    req.HeroImage,
		LiveURL:      req.LiveURL,
		ServiceID:    req.ServiceID,
		Technologies: append([]string{}, req.Technologies...),
		Results:      append([]string{}, req.Results...),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.studies[cs.ID] = cs
	m.track(cs.ID)

	out := *cs
	return &out, nil
}

func (m *Memory) GetCaseStudy(_ context.Context, id string) (*models.CaseStudy, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cs, ok := m.studies[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *cs
	return &out, nil
}

func (m *Memory) GetCaseStudyBySlug(_ context.Context, slug string) (*models.CaseStudy, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, cs := range m.studies {
		if cs.Slug == slug {
			out := *cs
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (m *Memory) UpdateCaseStudy(_ context.Context, id string, req *models.UpdateCaseStudyRequest) (*models.CaseStudy, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cs, ok := m.studies[id]
	if !ok {
		return nil, ErrNotFound
	}

	if req.Slug != nil && *req.Slug != cs.Slug {
		for _, other := range m.studies {
			if other.Slug == *req.Slug {
				return nil, ErrConflict
			}
		}
		cs.Slug = *req.Slug
	}
	if req.Title != nil {
		cs.Title = *req.Title
	}
	if req.Client != nil {
		cs.Client = *req.Client
	}
	if req.Industry != nil {
		cs.Industry = *req.Industry
	}
	if req.Timeline != nil {
		cs.Timeline = *req.Timeline
	}
	if req.TeamSize != nil {
		cs.TeamSize = *req.TeamSize
	}
	if req.Challenge != nil {
		cs.Challenge = *req.Challenge
	}
	if req.Solution != nil {
		cs.Solution = *req.Solution
	}
	if req.HeroImage != nil {
		cs.HeroImage = *req.HeroImage
	}
	if req.LiveURL != nil {
		cs.LiveURL = *req.LiveURL
	}
	if req.ServiceID != nil {
		cs.ServiceID = *req.ServiceID
	}
	if req.Technologies != nil {
		cs.Technologies = append([]string{}, (*req.Technologies)...)
	}
	if req.Results != nil {
		cs.Results = append([]string{}, (*req.Results)...)
	}
	cs.UpdatedAt = time.Now().UTC()

	out := *cs
	return &out, nil
}

func (m *Memory) DeleteCaseStudy(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.studies[id]; !ok {
		return ErrNotFound
	}
	delete(m.studies, id)
	delete(m.insertOrder, id)
	return nil
}

func (m *Memory) ListCaseStudies(_ context.Context) ([]models.CaseStudy, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.CaseStudy{}
	for _, cs := range m.studies {
		out = append(out, *cs)
	}
	sortNewestFirst(out, m.insertOrder, func(cs models.CaseStudy) (time.Time, string) { return cs.CreatedAt, cs.ID })
	return out, nil
}

// --- Submissions ---

func (m *Memory) CreateContactSubmission(_ context.Context, req *models.CreateContactSubmissionRequest) (*models.ContactSubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := &models.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Service:     req.Service,
		Budget:      req.Budget,
		Message:     req.Message,
		SubmittedAt: time.Now().UTC(),
	}
	m.contacts[sub.ID] = sub
	m.track(sub.ID)

	out := *sub
	return &out, nil
}

func (m *Memory) ListContactSubmissions(_ context.Context) ([]models.ContactSubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.ContactSubmission{}
	for _, sub := range m.contacts {
		out = append(out, *sub)
	}
	sortNewestFirst(out, m.insertOrder, func(s models.ContactSubmission) (time.Time, string) { return s.SubmittedAt, s.ID })
	return out, nil
}

func (m *Memory) CreateInquirySubmission(_ context.Context, req *models.CreateInquirySubmissionRequest) (*models.InquirySubmission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sub := &models.InquirySubmission{
		ID:          uuid.NewString(),
		Name:        req.Name,
		Email:       req.Email,
		Service:     req.Service,
		Details:     req.Details,
		SubmittedAt: time.Now().UTC(),
	}
	m.inquiries[sub.ID] = sub
	m.track(sub.ID)

	out := *sub
	return &out, nil
}

func (m *Memory) ListInquirySubmissions(_ context.Context) ([]models.InquirySubmission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.InquirySubmission{}
	for _, sub := range m.inquiries {
		out = append(out, *sub)
	}
	sortNewestFirst(out, m.insertOrder, func(s models.InquirySubmission) (time.Time, string) { return s.SubmittedAt, s.ID })
	return out, nil
}

// --- Blog reactions ---

func (m *Memory) CreateBlogReaction(_ context.Context, req *models.CreateBlogReactionRequest) (*models.BlogReaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.posts[req.PostID]; !ok {
		return nil, ErrNotFound
	}

	reaction := &models.BlogReaction{
		ID:           uuid.NewString(),
		PostID:       req.PostID,
		ReactionType: req.ReactionType,
		UserName:     req.UserName,
		Comment:      req.Comment,
		CreatedAt:    time.Now().UTC(),
	}
	m.reactions[reaction.ID] = reaction
	m.track(reaction.ID)

	out := *reaction
	return &out, nil
}

func (m *Memory) ListBlogReactions(_ context.Context, postID string) ([]models.BlogReaction, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.BlogReaction{}
	for _, r := range m.reactions {
		if postID != "" && r.PostID != postID {
			continue
		}
		out = append(out, *r)
	}
	sortNewestFirst(out, m.insertOrder, func(r models.BlogReaction) (time.Time, string) { return r.CreatedAt, r.ID })
	return out, nil
}

// sortNewestFirst orders records newest-first by timestamp, breaking ties by
// insertion order so listings are deterministic in fast tests.
func sortNewestFirst[T any](items []T, order map[string]int, key func(T) (time.Time, string)) {
	sort.Slice(items, func(i, j int) bool {
		ti, idi := key(items[i])
		tj, idj := key(items[j])
		if !ti.Equal(tj) {
			return ti.After(tj)
		}
		return order[idi] > order[idj]
	})
}
