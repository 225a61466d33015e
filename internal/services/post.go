package services

import (
	"errors"
	"fmt"
	"time"

	"finch/internal/db"
	"finch/internal/models"
	"finch/internal/store"
	"finch/internal/utils"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const postCacheTTL = 5 * time.Minute

// PostService covers the tweet CRUD around the engagement core.
type PostService struct {
	log *logrus.Logger
}

func NewPostService(log *logrus.Logger) *PostService {
	return &PostService{log: log}
}

func postCacheKey(id uint) string {
	return fmt.Sprintf("post:detail:%d", id)
}

func (s *PostService) Create(authorID uint, content, imageURL string) (*models.Post, error) {
	post := models.Post{
		Pid:      uuid.NewString(),
		AuthorID: authorID,
		Content:  content,
		ImageURL: imageURL,
	}
	if err := db.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// Get serves post detail through the shared cache.
func (s *PostService) Get(id uint) (*models.Post, error) {
	if cached := utils.GetCache().Get(postCacheKey(id)); cached != nil {
		if post, ok := cached.(*models.Post); ok {
			return post, nil
		}
	}

	var post models.Post
	if err := db.DB.Preload("Author").First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}
		return nil, err
	}
	post.ContentHTML = utils.RenderMarkdown(post.Content)

	utils.GetCache().Set(postCacheKey(id), &post, postCacheTTL)
	return &post, nil
}

func (s *PostService) ListRecent(limit int) ([]models.Post, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var posts []models.Post
	err := db.DB.
		Preload("Author").
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	for i := range posts {
		posts[i].ContentHTML = utils.RenderMarkdown(posts[i].Content)
	}
	return posts, nil
}

// Update edits the author's own post. Someone else's post is reported as
// missing, same policy as comments.
func (s *PostService) Update(authorID, id uint, content, imageURL string) (*models.Post, error) {
	res := db.DB.Model(&models.Post{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(map[string]interface{}{
			"content":   content,
			"image_url": imageURL,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, store.ErrNotFound
	}

	utils.GetCache().Delete(postCacheKey(id))

	var post models.Post
	if err := db.DB.Preload("Author").First(&post, id).Error; err != nil {
		return nil, err
	}
	post.ContentHTML = utils.RenderMarkdown(post.Content)
	return &post, nil
}

func (s *PostService) Delete(authorID, id uint) error {
	res := db.DB.Where("id = ? AND author_id = ?", id, authorID).Delete(&models.Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	utils.GetCache().Delete(postCacheKey(id))
	return nil
}
