package database

import (
	"context"

	"lovgol/models"
)

// Store is the persistence contract for the whole back office. All mutation
// goes through it; nothing else writes state. Two implementations exist: DB
// (Postgres, production) and Memory (process memory, tests and local dev).
type Store interface {
	// Projects. CreateProject generates the id and the client access token,
	// fills defaulted status fields and assigns ids to supplied log entries.
	// GetProjectByToken matches the access token first and falls back to the
	// primary key, tolerating callers that hold either identifier.
	// UpdateProject merges the partial over the stored record (log arrays
	// replace wholesale, new entries get ids) and bumps UpdatedAt.
	CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	GetProject(ctx context.Context, id string) (*models.Project, error)
	GetProjectByToken(ctx context.Context, token string) (*models.Project, error)
	UpdateProject(ctx context.Context, id string, req *models.UpdateProjectRequest) (*models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	ListProjects(ctx context.Context) ([]models.Project, error)

	// Admins.
	CreateAdmin(ctx context.Context, username, passwordHash string) (*models.Admin, error)
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*models.Admin, error)

	// Service previews. Category and technology filters are exclusive; empty
	// strings mean unfiltered.
	CreateServicePreview(ctx context.Context, req *models.CreateServicePreviewRequest) (*models.ServicePreview, error)
	GetServicePreview(ctx context.Context, id string) (*models.ServicePreview, error)
	UpdateServicePreview(ctx context.Context, id string, req *models.UpdateServicePreviewRequest) (*models.ServicePreview, error)
	DeleteServicePreview(ctx context.Context, id string) error
	ListServicePreviews(ctx context.Context, category, technology string) ([]models.ServicePreview, error)

	// Blog posts. Deleting a post removes its reactions first.
	CreateBlogPost(ctx context.Context, req *models.CreateBlogPostRequest) (*models.BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (*models.BlogPost, error)
	GetBlogPostBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, req *models.UpdateBlogPostRequest) (*models.BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) error
	ListBlogPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error)
	IncrementBlogPostViews(ctx context.Context, id string) error
	IncrementBlogPostLikes(ctx context.Context, id string) error

	// Case studies.
	CreateCaseStudy(ctx context.Context, req *models.CreateCaseStudyRequest) (*models.CaseStudy, error)
	GetCaseStudy(ctx context.Context, id string) (*models.CaseStudy, error)
	GetCaseStudyBySlug(ctx context.Context, slug string) (*models.CaseStudy, error)
	UpdateCaseStudy(ctx context.Context, id string, req *models.UpdateCaseStudyRequest) (*models.CaseStudy, error)
	DeleteCaseStudy(ctx context.Context, id string) error
	ListCaseStudies(ctx context.Context) ([]models.CaseStudy, error)

	// Form submissions.
	CreateContactSubmission(ctx context.Context, req *models.CreateContactSubmissionRequest) (*models.ContactSubmission, error)
	ListContactSubmissions(ctx context.Context) ([]models.ContactSubmission, error)
	CreateInquirySubmission(ctx context.Context, req *models.CreateInquirySubmissionRequest) (*models.InquirySubmission, error)
	ListInquirySubmissions(ctx context.Context) ([]models.InquirySubmission, error)

	// Blog reactions.
	CreateBlogReaction(ctx context.Context, req *models.CreateBlogReactionRequest) (*models.BlogReaction, error)
	ListBlogReactions(ctx context.Context, postID string) ([]models.BlogReaction, error)
}
