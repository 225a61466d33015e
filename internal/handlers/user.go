package handlers

import (
	"net/http"

	"finch/internal/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users *services.UserService
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Profile returns a user's public profile
func (h *UserHandler) Profile(c *gin.Context) {
	user, err := h.users.GetByID(idParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
