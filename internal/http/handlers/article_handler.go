// Article HTTP handlers.
//
// This file exposes REST endpoints for article resources:
//   - GET    /articles                  (list, filter + sort via query params)
//   - GET    /articles/{article_id}     (fetch one)
//   - PATCH  /articles/{article_id}     (vote increment)
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// parseID parses a decimal path identifier. The returned error wraps
// strconv.ErrSyntax or strconv.ErrRange, which the classifier chain
// translates to the right status.
func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ArticlesResponse wraps the article collection.
type ArticlesResponse struct {
	Articles []domain.Article `json:"articles"`
}

// ArticleResponse wraps a single article.
type ArticleResponse struct {
	Article *domain.Article `json:"article"`
}

// PatchArticleRequest is the JSON payload for the vote increment. IncVotes
// is a pointer so an absent field is distinguishable from a zero delta.
type PatchArticleRequest struct {
	IncVotes *int `json:"inc_votes" example:"10"`
}

// GetArticles godoc
// @ID          getArticles
// @Summary     List articles
// @Description Returns articles with comment counts, newest first by default.
// @Description Supports filtering by topic and ordering by an allow-listed column.
// @Tags        Articles
// @Produce     json
//
// @Param       topic    query  string  false "Filter by exact topic slug"        example(coding)
// @Param       sort_by  query  string  false "Sort column"                        Enums(article_id, title, topic, author, created_at, votes)
// @Param       order    query  string  false "Sort direction"                     Enums(asc, desc)
//
// @Success     200  {object}  handlers.ArticlesResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid order/sort query"
// @Failure     404  {object}  handlers.ErrorResponse  "Topic not found"
// @Router      /articles [get]
func (h *Handlers) GetArticles(c *gin.Context) {
	articles, err := h.articleSvc.List(
		c.Request.Context(),
		c.Query("topic"),
		c.Query("sort_by"),
		c.Query("order"),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticlesResponse{Articles: articles})
}

// GetArticleByID godoc
// @ID          getArticleByID
// @Summary     Fetch an article
// @Description Returns a single article, including its comment count.
// @Tags        Articles
// @Produce     json
//
// @Param       article_id  path  int  true  "Article ID"  example(1)
//
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Failure     404  {object}  handlers.ErrorResponse  "ID not found"
// @Router      /articles/{article_id} [get]
func (h *Handlers) GetArticleByID(c *gin.Context) {
	id, err := parseID(c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	article, err := h.articleSvc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: article})
}

// PatchArticleVotes godoc
// @ID          patchArticleVotes
// @Summary     Adjust an article's votes
// @Description Applies votes += inc_votes atomically and returns the updated
// @Description article. Repeated calls keep accumulating; the operation is
// @Description intentionally not idempotent.
// @Tags        Articles
// @Accept      json
// @Produce     json
//
// @Param       article_id  path  int                           true  "Article ID"  example(1)
// @Param       body        path  handlers.PatchArticleRequest  true  "Vote delta"
//
// @Success     200  {object}  handlers.ArticleResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input / missing inc_votes"
// @Failure     404  {object}  handlers.ErrorResponse  "ID not found"
// @Router      /articles/{article_id} [patch]
func (h *Handlers) PatchArticleVotes(c *gin.Context) {
	id, err := parseID(c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req PatchArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A wrong-type inc_votes is an invalid value; an empty or truncated
		// body means the field was never supplied.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Invalid input")
		} else {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing required information")
		}
		return
	}
	if req.IncVotes == nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing required information")
		return
	}

	article, err := h.articleSvc.IncrementVotes(c.Request.Context(), id, *req.IncVotes)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, ArticleResponse{Article: article})
}
