package handlers

import (
	"net/http"

	"finch/internal/services"

	"github.com/gin-gonic/gin"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// Like records the user's like and returns the fresh count
func (h *LikeHandler) Like(c *gin.Context) {
	user, _ := currentUser(c)
	postID := idParam(c, "id")

	if err := h.likes.Like(user.ID, postID); err != nil {
		respondServiceError(c, err)
		return
	}

	count, err := h.likes.Count(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": true, "likes": count})
}

// Unlike removes the user's like and returns the fresh count
func (h *LikeHandler) Unlike(c *gin.Context) {
	user, _ := currentUser(c)
	postID := idParam(c, "id")

	if err := h.likes.Unlike(user.ID, postID); err != nil {
		respondServiceError(c, err)
		return
	}

	count, err := h.likes.Count(postID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": false, "likes": count})
}

// Liked reports whether the authenticated user has liked the post
func (h *LikeHandler) Liked(c *gin.Context) {
	user, _ := currentUser(c)

	liked, err := h.likes.Exists(user.ID, idParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

// Likers lists who liked the post, the requesting user's connections first
func (h *LikeHandler) Likers(c *gin.Context) {
	user, _ := currentUser(c)

	likers, err := h.likes.ListLikers(user.ID, idParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, likers)
}

// MutualLikers lists only likers who are mutual connections of the
// requesting user
func (h *LikeHandler) MutualLikers(c *gin.Context) {
	user, _ := currentUser(c)

	likers, err := h.likes.ListMutualLikers(user.ID, idParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, likers)
}

func (h *LikeHandler) Count(c *gin.Context) {
	count, err := h.likes.Count(idParam(c, "id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"likes": count})
}
