package handlers

import (
	"net/http"

	"finch/internal/services"

	"github.com/gin-gonic/gin"
)

type EngagementHandler struct {
	engagements *services.EngagementManager
}

func NewEngagementHandler(engagements *services.EngagementManager) *EngagementHandler {
	return &EngagementHandler{engagements: engagements}
}

// Get returns the post's engagement record with its likes, each carrying
// the liking user. 404 when the post has no interactions.
func (h *EngagementHandler) Get(c *gin.Context) {
	engagement, err := h.engagements.Get(idParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, engagement)
}
