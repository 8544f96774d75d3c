package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// ---- stubs to satisfy handlers.New() dependencies ----

type stubTopicSvc struct {
	list func(ctx context.Context) ([]domain.Topic, error)
}

func (s stubTopicSvc) List(ctx context.Context) ([]domain.Topic, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

type stubArticleSvc struct {
	list func(ctx context.Context, topic, sortBy, order string) ([]domain.Article, error)
	get  func(ctx context.Context, id int64) (*domain.Article, error)
	inc  func(ctx context.Context, id int64, delta int) (*domain.Article, error)
}

func (s stubArticleSvc) List(ctx context.Context, topic, sortBy, order string) ([]domain.Article, error) {
	if s.list != nil {
		return s.list(ctx, topic, sortBy, order)
	}
	return nil, nil
}

func (s stubArticleSvc) Get(ctx context.Context, id int64) (*domain.Article, error) {
	if s.get != nil {
		return s.get(ctx, id)
	}
	return nil, nil
}

func (s stubArticleSvc) IncrementVotes(ctx context.Context, id int64, delta int) (*domain.Article, error) {
	if s.inc != nil {
		return s.inc(ctx, id, delta)
	}
	return nil, nil
}

type stubCommentSvc struct {
	list   func(ctx context.Context, articleID int64) ([]domain.Comment, error)
	create func(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error)
	del    func(ctx context.Context, id int64) error
}

func (s stubCommentSvc) ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	if s.list != nil {
		return s.list(ctx, articleID)
	}
	return nil, nil
}

func (s stubCommentSvc) Create(ctx context.Context, articleID int64, username, body string) (*domain.Comment, error) {
	if s.create != nil {
		return s.create(ctx, articleID, username, body)
	}
	return nil, nil
}

func (s stubCommentSvc) Delete(ctx context.Context, id int64) error {
	if s.del != nil {
		return s.del(ctx, id)
	}
	return nil
}

type stubUserSvc struct {
	list func(ctx context.Context) ([]domain.User, error)
}

func (s stubUserSvc) List(ctx context.Context) ([]domain.User, error) {
	if s.list != nil {
		return s.list(ctx)
	}
	return nil, nil
}

// newTestRouter registers the full handler route table on a bare engine.
func newTestRouter(h *Handlers) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/topics", h.GetTopics)
	r.GET("/articles", h.GetArticles)
	r.GET("/articles/:article_id", h.GetArticleByID)
	r.PATCH("/articles/:article_id", h.PatchArticleVotes)
	r.GET("/articles/:article_id/comments", h.GetArticleComments)
	r.POST("/articles/:article_id/comments", h.PostArticleComment)
	r.DELETE("/comments/:comment_id", h.DeleteComment)
	r.GET("/users", h.GetUsers)
	return r
}

// doJSON performs a request with an optional JSON body and returns the recorder.
func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
