package router

import (
	"finch/internal/handlers"
	"finch/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.Engine,
	auth *handlers.AuthHandler,
	users *handlers.UserHandler,
	posts *handlers.PostHandler,
	likes *handlers.LikeHandler,
	comments *handlers.CommentHandler,
	engagements *handlers.EngagementHandler,
	follows *handlers.FollowHandler,
) {
	r.Use(middleware.LoadUser())

	// Public routes
	r.POST("/signup", auth.Signup)
	r.GET("/signup/check", auth.CheckAvailability)
	r.POST("/login", auth.Login)

	r.GET("/users/:id", users.Profile)
	r.GET("/posts", posts.List)
	r.GET("/posts/:id", posts.Get)
	r.GET("/posts/:id/likes/count", likes.Count)
	r.GET("/posts/:id/comments", comments.List)
	r.GET("/posts/:id/comments/count", comments.Count)
	r.GET("/posts/:id/engagement", engagements.Get)

	// Protected routes
	authorized := r.Group("/")
	authorized.Use(middleware.AuthRequired())
	{
		authorized.GET("/me", auth.Me)

		authorized.POST("/posts", posts.Create)
		authorized.PUT("/posts/:id", posts.Update)
		authorized.DELETE("/posts/:id", posts.Delete)

		authorized.POST("/posts/:id/like", likes.Like)
		authorized.DELETE("/posts/:id/like", likes.Unlike)
		authorized.GET("/posts/:id/like", likes.Liked)
		authorized.GET("/posts/:id/likes", likes.Likers)
		authorized.GET("/posts/:id/likes/mutual", likes.MutualLikers)

		authorized.POST("/posts/:id/comments", comments.Create)
		authorized.PUT("/comments/:cid", comments.Update)
		authorized.DELETE("/posts/:id/comments/:cid", comments.Delete)

		authorized.POST("/users/:id/follow", follows.Follow)
		authorized.DELETE("/users/:id/follow", follows.Unfollow)
	}
}
