// Comment HTTP handlers.
//
// This file exposes REST endpoints for comment resources:
//   - GET    /articles/{article_id}/comments   (list, most recent first)
//   - POST   /articles/{article_id}/comments   (create)
//   - DELETE /comments/{comment_id}            (delete)
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// CommentsResponse wraps the comment collection of an article.
type CommentsResponse struct {
	Comments []domain.Comment `json:"comments"`
}

// CommentResponse wraps a single comment.
type CommentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

// CreateCommentRequest is the JSON payload for posting a comment.
type CreateCommentRequest struct {
	Username string `json:"username" example:"butter_bridge"`
	Body     string `json:"body"     example:"Great article!"`
}

// GetArticleComments godoc
// @ID          getArticleComments
// @Summary     List an article's comments
// @Description Returns the comments of an article, most recent first. An
// @Description existing article with no comments yields an empty list.
// @Tags        Comments
// @Produce     json
//
// @Param       article_id  path  int  true  "Article ID"  example(1)
//
// @Success     200  {object}  handlers.CommentsResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Failure     404  {object}  handlers.ErrorResponse  "ID not found"
// @Router      /articles/{article_id}/comments [get]
func (h *Handlers) GetArticleComments(c *gin.Context) {
	id, err := parseID(c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	comments, err := h.commentSvc.ListForArticle(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, CommentsResponse{Comments: comments})
}

// PostArticleComment godoc
// @ID          postArticleComment
// @Summary     Comment on an article
// @Description Creates a comment authored by an existing user and returns it
// @Description with the generated id, timestamp, and zero votes.
// @Tags        Comments
// @Accept      json
// @Produce     json
//
// @Param       article_id  path  int                            true  "Article ID"  example(1)
// @Param       body        body  handlers.CreateCommentRequest  true  "Comment payload"
//
// @Success     201  {object}  handlers.CommentResponse
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input / missing fields"
// @Failure     404  {object}  handlers.ErrorResponse  "ID or username not found"
// @Router      /articles/{article_id}/comments [post]
func (h *Handlers) PostArticleComment(c *gin.Context) {
	id, err := parseID(c.Param("article_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Invalid input")
		} else {
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "Missing required information")
		}
		return
	}

	comment, err := h.commentSvc.Create(c.Request.Context(), id, req.Username, req.Body)
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusCreated, CommentResponse{Comment: comment})
}

// DeleteComment godoc
// @ID          deleteComment
// @Summary     Delete a comment
// @Description Removes a comment by id.
// @Tags        Comments
// @Produce     json
//
// @Param       comment_id  path  int  true  "Comment ID"  example(5)
//
// @Success     204  {string}  string  "No Content"
// @Failure     400  {object}  handlers.ErrorResponse  "Invalid input"
// @Failure     404  {object}  handlers.ErrorResponse  "Comment not found"
// @Router      /comments/{comment_id} [delete]
func (h *Handlers) DeleteComment(c *gin.Context) {
	id, err := parseID(c.Param("comment_id"))
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.commentSvc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	noContent(c)
}
