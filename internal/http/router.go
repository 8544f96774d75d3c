// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns
// such as tracing, correlation IDs, logging, panic recovery, metrics, CORS,
// security headers, compression, and rate limiting.
//
// Design goals:
//   - Observability first (OTel + Prometheus)
//   - Safe-by-default middleware ordering (RequestID → logging → recovery)
//   - Deterministic, minimal router setup; all dependencies injected
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	"github.com/tbourn/go-news-backend/internal/config"
	"github.com/tbourn/go-news-backend/internal/domain"
	"github.com/tbourn/go-news-backend/internal/http/handlers"
	"github.com/tbourn/go-news-backend/internal/http/middleware"
	"github.com/tbourn/go-news-backend/internal/repo"
	"github.com/tbourn/go-news-backend/internal/services"
)

// articleRepoShim adapts the repository free functions to the
// services.ArticleRepo interface expected by the ArticleService. This keeps
// services decoupled from the concrete repo package while reusing the
// existing functions.
type articleRepoShim struct{}

// ListArticles proxies repo.ListArticles.
func (articleRepoShim) ListArticles(ctx context.Context, db *gorm.DB, topic, sortBy, order string) ([]domain.Article, error) {
	return repo.ListArticles(ctx, db, topic, sortBy, order)
}

// GetArticle proxies repo.GetArticle.
func (articleRepoShim) GetArticle(ctx context.Context, db *gorm.DB, id int64) (*domain.Article, error) {
	return repo.GetArticle(ctx, db, id)
}

// IncrementVotes proxies repo.IncrementVotes.
func (articleRepoShim) IncrementVotes(ctx context.Context, db *gorm.DB, id int64, delta int) (*domain.Article, error) {
	return repo.IncrementVotes(ctx, db, id, delta)
}

// TopicExists proxies repo.TopicExists.
func (articleRepoShim) TopicExists(ctx context.Context, db *gorm.DB, slug string) error {
	return repo.TopicExists(ctx, db, slug)
}

// commentRepoShim adapts the repository free functions to the
// services.CommentRepo interface expected by the CommentService.
type commentRepoShim struct{}

// ListArticleComments proxies repo.ListArticleComments.
func (commentRepoShim) ListArticleComments(ctx context.Context, db *gorm.DB, articleID int64) ([]domain.Comment, error) {
	return repo.ListArticleComments(ctx, db, articleID)
}

// CreateComment proxies repo.CreateComment.
func (commentRepoShim) CreateComment(ctx context.Context, db *gorm.DB, articleID int64, username, body string) (*domain.Comment, error) {
	return repo.CreateComment(ctx, db, articleID, username, body)
}

// DeleteComment proxies repo.DeleteComment.
func (commentRepoShim) DeleteComment(ctx context.Context, db *gorm.DB, id int64) error {
	return repo.DeleteComment(ctx, db, id)
}

// ArticleExists proxies repo.ArticleExists.
func (commentRepoShim) ArticleExists(ctx context.Context, db *gorm.DB, id int64) error {
	return repo.ArticleExists(ctx, db, id)
}

// RegisterRoutes attaches all middleware and HTTP endpoints to the given
// Gin engine: observability (tracing, metrics), rate limiting, CORS and
// security headers, health and metrics endpoints, and the public API under
// cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Logger: structured access logs
//  4. Recovery: capture panics after logger
//  5. Body size limiter
//  6. Metrics
//  7. Rate limiter (per client IP)
//  8. CORS and security headers
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	r.Use(middleware.Logger())

	// 4) Panic recovery to JSON 500 (with request id)
	r.Use(middleware.Recovery())

	// 5) Global body size limit (1 MiB)
	r.Use(limitBody(1 << 20))

	// 6) Prometheus metrics and /metrics endpoint
	r.Use(middleware.Metrics())
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 7) Token-bucket rate limiter per client IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByClientIP())
	r.Use(rl.Handler())

	// 8) CORS posture (safe defaults: allow all if none configured)
	if len(cfg.CORS.AllowedOrigins) == 0 {
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"X-Request-ID", "Content-Length"},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS)
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:   cfg.Security.EnableHSTS,
		HSTSMaxAge:   cfg.Security.HSTSMaxAge,
		NoStore:      false,
		EnablePolicy: true,
	}))

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		handlers.Fail(c, http.StatusNotFound, handlers.ErrCodeNotFound, "Invalid path")
	})
	r.NoMethod(func(c *gin.Context) {
		handlers.Fail(c, http.StatusMethodNotAllowed, handlers.ErrCodeMethodNotAllowed, "method not allowed")
	})

	// Liveness/health
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	// API docs (optional)
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Dependency injection: services ← repo/db
	topicSvc := &services.TopicService{DB: db}
	articleSvc := services.NewArticleService(db, articleRepoShim{})
	commentSvc := services.NewCommentService(db, commentRepoShim{})
	userSvc := &services.UserService{DB: db}
	h := handlers.New(topicSvc, articleSvc, commentSvc, userSvc)

	// Public API
	api := groupWithPrefix(r, cfg.APIBasePath)
	api.Use(gzip.Gzip(gzip.DefaultCompression))
	{
		// Topics
		api.GET("/topics", h.GetTopics)

		// Articles
		api.GET("/articles", h.GetArticles)
		api.GET("/articles/:article_id", h.GetArticleByID)
		api.PATCH("/articles/:article_id", h.PatchArticleVotes)

		// Comments
		api.GET("/articles/:article_id/comments", h.GetArticleComments)
		api.POST("/articles/:article_id/comments", h.PostArticleComment)
		api.DELETE("/comments/:comment_id", h.DeleteComment)

		// Users
		api.GET("/users", h.GetUsers)
	}
}

// limitBody returns a Gin middleware that caps the request body size for
// all endpoints to maxBytes using http.MaxBytesReader. Requests exceeding
// the cap will cause downstream body reads to error.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
