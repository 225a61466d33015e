package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"finch/internal/middleware"
	"finch/internal/models"
	"finch/internal/services"
	"finch/internal/store/storetest"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func newTestRouter(fake *storetest.Fake) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	engagements := services.NewEngagementManager(fake, log)
	likes := NewLikeHandler(services.NewLikeService(fake, engagements, log))
	comments := NewCommentHandler(services.NewCommentService(fake, engagements, log))
	engagement := NewEngagementHandler(engagements)

	r := gin.New()
	// Stand-in for the JWT middleware: every request acts as user 1
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CheckUserKey, &models.User{ID: 1, Username: "ada"})
	})
	r.POST("/posts/:id/like", likes.Like)
	r.DELETE("/posts/:id/like", likes.Unlike)
	r.GET("/posts/:id/likes/count", likes.Count)
	r.GET("/posts/:id/engagement", engagement.Get)
	r.POST("/posts/:id/comments", comments.Create)
	r.DELETE("/posts/:id/comments/:cid", comments.Delete)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLikeEndpointLifecycle(t *testing.T) {
	r := newTestRouter(storetest.NewFake())

	w := do(r, http.MethodPost, "/posts/7/like", "")
	if w.Code != http.StatusOK {
		t.Fatalf("like: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"likes":1`) {
		t.Fatalf("unexpected like response: %s", w.Body.String())
	}

	// Liking twice is a conflict, not a second like
	if w := do(r, http.MethodPost, "/posts/7/like", ""); w.Code != http.StatusConflict {
		t.Fatalf("duplicate like: expected 409, got %d", w.Code)
	}

	// The first like materialized the engagement record
	if w := do(r, http.MethodGet, "/posts/7/engagement", ""); w.Code != http.StatusOK {
		t.Fatalf("engagement: expected 200, got %d", w.Code)
	}

	if w := do(r, http.MethodDelete, "/posts/7/like", ""); w.Code != http.StatusOK {
		t.Fatalf("unlike: expected 200, got %d", w.Code)
	}

	// The last unlike removed the engagement record
	if w := do(r, http.MethodGet, "/posts/7/engagement", ""); w.Code != http.StatusNotFound {
		t.Fatalf("engagement after unlike: expected 404, got %d", w.Code)
	}

	if w := do(r, http.MethodDelete, "/posts/7/like", ""); w.Code != http.StatusNotFound {
		t.Fatalf("unlike without like: expected 404, got %d", w.Code)
	}
}

func TestCommentEndpoints(t *testing.T) {
	r := newTestRouter(storetest.NewFake())

	w := do(r, http.MethodPost, "/posts/7/comments", `{"content":"hello"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create comment: expected 201, got %d (%s)", w.Code, w.Body.String())
	}

	if w := do(r, http.MethodPost, "/posts/7/comments", `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("empty comment: expected 400, got %d", w.Code)
	}

	// Unknown comment id on the right post is a plain 404
	if w := do(r, http.MethodDelete, "/posts/7/comments/999", ""); w.Code != http.StatusNotFound {
		t.Fatalf("delete missing comment: expected 404, got %d", w.Code)
	}
}
