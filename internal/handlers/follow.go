package handlers

import (
	"errors"
	"net/http"

	"finch/internal/services"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	follows *services.FollowService
}

func NewFollowHandler(follows *services.FollowService) *FollowHandler {
	return &FollowHandler{follows: follows}
}

func (h *FollowHandler) Follow(c *gin.Context) {
	user, _ := currentUser(c)

	err := h.follows.Follow(user.ID, idParam(c, "id"))
	if err != nil {
		if errors.Is(err, services.ErrSelfFollow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": true})
}

func (h *FollowHandler) Unfollow(c *gin.Context) {
	user, _ := currentUser(c)

	if err := h.follows.Unfollow(user.ID, idParam(c, "id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"following": false})
}
