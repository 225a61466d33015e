package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"finch/internal/middleware"
	"finch/internal/models"
	"finch/internal/store"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the authenticated user out of the request context.
// Routes behind AuthRequired always have one; the bool covers public routes
// that behave differently when logged in.
func currentUser(c *gin.Context) (*models.User, bool) {
	user, exists := c.Get(middleware.CheckUserKey)
	if !exists {
		return nil, false
	}
	return user.(*models.User), true
}

// idParam parses a numeric path parameter, 0 when malformed
func idParam(c *gin.Context, name string) uint {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 0 {
		return 0
	}
	return uint(id)
}

// respondServiceError maps the store error taxonomy onto HTTP statuses.
// Everything outside the taxonomy is an opaque 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, store.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
