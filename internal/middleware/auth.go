package middleware

import (
	"net/http"
	"strings"

	"finch/internal/db"
	"finch/internal/models"
	"finch/internal/services"

	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// LoadUser resolves the Bearer token, if any, and puts the matching user
// into the request context. Requests without a valid token pass through
// anonymous; AuthRequired decides what needs one.
func LoadUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.Next()
			return
		}

		claims, err := services.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.Next()
			return
		}

		var user models.User
		if result := db.DB.First(&user, claims.UserID); result.Error == nil {
			c.Set(CheckUserKey, &user)
		}
		c.Next()
	}
}

// AuthRequired rejects requests that did not resolve to a user
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(CheckUserKey); !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}
