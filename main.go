package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"lovgol/config"
	"lovgol/database"
	"lovgol/handlers"
	"lovgol/logger"
	"lovgol/middleware"
	"lovgol/session"
)

func main() {
	godotenv.Load()

	cfg := config.Load()
	log := logger.NewLogger(cfg.Env)
	defer log.Sync()

	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL not set")
	}

	// Context with timeout for initial connection.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	sessions := newSessionStore(cfg)

	r := gin.Default()
	r.Use(middleware.Metrics())

	registerRoutes(r, db, sessions)

	log.Info("server starting", zap.String("addr", cfg.Addr))
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}

// newSessionStore picks Redis-backed sessions when configured, in-process
// memory otherwise (single-instance deployments and local dev).
func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr == "" {
		logger.Log.Info("using in-memory session store")
		return session.NewMemoryStore(cfg.SessionTTL)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	logger.Log.Info("using redis session store", zap.String("addr", cfg.RedisAddr))
	return session.NewRedisStore(client, cfg.SessionTTL)
}

func registerRoutes(r *gin.Engine, store database.Store, sessions session.Store) {
	r.GET("/health", handlers.HealthCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	// Session lifecycle.
	api.POST("/login", handlers.Login(store, sessions))
	api.POST("/logout", handlers.Logout(sessions))
	api.GET("/auth/status", handlers.AuthStatus(store, sessions))

	// Public marketing-site reads and form submissions.
	api.GET("/service-previews", handlers.ListServicePreviews(store))
	api.GET("/service-previews/:id", handlers.GetServicePreview(store))
	api.GET("/blog-posts", handlers.ListBlogPosts(store, sessions))
	api.GET("/blog-posts/:id", handlers.GetBlogPost(store, sessions))
	api.GET("/blog-posts/slug/:slug", handlers.GetBlogPostBySlug(store, sessions))
	api.POST("/blog-posts/:id/like", handlers.LikeBlogPost(store))
	api.GET("/blog-reactions", handlers.ListBlogReactions(store))
	api.POST("/blog-reactions", handlers.CreateBlogReaction(store))
	api.GET("/case-studies", handlers.ListCaseStudies(store))
	api.GET("/case-studies/:id", handlers.GetCaseStudy(store))
	api.GET("/case-studies/slug/:slug", handlers.GetCaseStudyBySlug(store))
	api.POST("/contact-submissions", handlers.CreateContactSubmission(store))
	api.POST("/inquiry-submissions", handlers.CreateInquirySubmission(store))

	// Token-gated client status page.
	api.GET("/client-project/:token", handlers.GetClientProject(store))

	// Admin back office.
	admin := api.Group("")
	admin.Use(middleware.SessionRequired(sessions, store))

	admin.POST("/service-previews", handlers.CreateServicePreview(store))
	admin.PUT("/service-previews/:id", handlers.UpdateServicePreview(store))
	admin.DELETE("/service-previews/:id", handlers.DeleteServicePreview(store))

	admin.POST("/blog-posts", handlers.CreateBlogPost(store))
	admin.PUT("/blog-posts/:id", handlers.UpdateBlogPost(store))
	admin.DELETE("/blog-posts/:id", handlers.DeleteBlogPost(store))

	admin.POST("/case-studies", handlers.CreateCaseStudy(store))
	admin.PUT("/case-studies/:id", handlers.UpdateCaseStudy(store))
	admin.DELETE("/case-studies/:id", handlers.DeleteCaseStudy(store))

	admin.GET("/contact-submissions", handlers.ListContactSubmissions(store))
	admin.GET("/inquiry-submissions", handlers.ListInquirySubmissions(store))

	admin.GET("/projects", handlers.ListProjects(store))
	admin.POST("/projects", handlers.CreateProject(store))
	admin.GET("/projects/:id", handlers.GetProject(store))
	admin.PUT("/projects/:id", handlers.UpdateProject(store))
	admin.DELETE("/projects/:id", handlers.DeleteProject(store))
}
