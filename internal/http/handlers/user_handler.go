// User HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-news-backend/internal/domain"
)

// UsersResponse wraps the user collection.
type UsersResponse struct {
	Users []domain.User `json:"users"`
}

// GetUsers godoc
// @ID          getUsers
// @Summary     List users
// @Description Returns every user with username, display name, and avatar.
// @Tags        Users
// @Produce     json
//
// @Success     200  {object}  handlers.UsersResponse
// @Failure     500  {object}  handlers.ErrorResponse  "Internal error"
// @Router      /users [get]
func (h *Handlers) GetUsers(c *gin.Context) {
	users, err := h.userSvc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	ok(c, http.StatusOK, UsersResponse{Users: users})
}
