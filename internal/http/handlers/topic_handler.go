// Topic HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// TopicsResponse wraps the topic collection.
type TopicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

// GetTopics godoc
// @ID          getTopics
// @Summary     List topics
// @Description Returns every topic with its slug and description.
// @Tags        Topics
// @Produce     json
//
// @Success     200  {object}  handlers.TopicsResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /topics [get]
func (h *Handlers) GetTopics(c *gin.Context) {
	topics, err := h.topicSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, TopicsResponse{Topics: topics})
}
