package store

import (
	"errors"
	"time"

	"finch/internal/models"

	"gorm.io/gorm"
)

// The two failure kinds callers are expected to branch on. Anything else
// coming out of the store is an opaque persistence failure and propagates
// unchanged.
var (
	ErrNotFound = errors.New("store: not found")
	ErrConflict = errors.New("store: duplicate key")
)

// Store is the persistence contract the engagement core runs against.
// Find methods return (nil, nil) when the row is simply absent; mutations
// that require presence return ErrNotFound, and inserts that hit a unique
// key return ErrConflict. gorm error translation happens here and nowhere
// else.
type Store interface {
	FindEngagementByPost(postID uint) (*models.Engagement, error)
	GetEngagement(postID uint) (*models.Engagement, error)
	CreateEngagement(postID uint) (*models.Engagement, error)
	DeleteEngagement(postID uint) error

	CreateLike(userID, postID uint) (*models.Like, error)
	DeleteLike(userID, postID uint) error
	FindLike(userID, postID uint) (*models.Like, error)
	ListLikes(postID uint) ([]models.Like, error)
	CountLikes(postID uint) (int64, error)

	CreateComment(authorID, postID uint, content string) (*models.Comment, error)
	DeleteComment(id, authorID, postID uint) error
	UpdateComment(id, authorID uint, content string) (*models.Comment, error)
	ListComments(postID uint) ([]models.Comment, error)
	CountComments(postID uint) (int64, error)
}

// GormStore is the Postgres-backed Store.
type GormStore struct {
	db *gorm.DB
}

func New(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) FindEngagementByPost(postID uint) (*models.Engagement, error) {
	var e models.Engagement
	err := s.db.Where("post_id = ?", postID).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetEngagement loads the engagement with its post and likes, each like
// carrying the liking user and that user's follow edges in both directions
// so the graph reader can rank without further lookups.
func (s *GormStore) GetEngagement(postID uint) (*models.Engagement, error) {
	var e models.Engagement
	err := s.db.
		Preload("Post").
		Preload("Likes.User.Following").
		Preload("Likes.User.Followers").
		Where("post_id = ?", postID).
		First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (s *GormStore) CreateEngagement(postID uint) (*models.Engagement, error) {
	e := models.Engagement{PostID: postID}
	if err := s.db.Create(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &e, nil
}

// DeleteEngagement is benign when the record is already gone: a concurrent
// remover winning the race is the satisfied outcome, not a failure.
func (s *GormStore) DeleteEngagement(postID uint) error {
	return s.db.Where("post_id = ?", postID).Delete(&models.Engagement{}).Error
}

func (s *GormStore) CreateLike(userID, postID uint) (*models.Like, error) {
	like := models.Like{UserID: userID, PostID: postID}
	if err := s.db.Create(&like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return &like, nil
}

func (s *GormStore) DeleteLike(userID, postID uint) error {
	res := s.db.Where("user_id = ? AND post_id = ?", userID, postID).Delete(&models.Like{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) FindLike(userID, postID uint) (*models.Like, error) {
	var like models.Like
	err := s.db.Where("user_id = ? AND post_id = ?", userID, postID).First(&like).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &like, nil
}

func (s *GormStore) ListLikes(postID uint) ([]models.Like, error) {
	var likes []models.Like
	err := s.db.
		Preload("User.Following").
		Preload("User.Followers").
		Where("post_id = ?", postID).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *GormStore) CountLikes(postID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}

func (s *GormStore) CreateComment(authorID, postID uint, content string) (*models.Comment, error) {
	comment := models.Comment{
		AuthorID: authorID,
		PostID:   postID,
		Content:  content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// DeleteComment matches id, author and post in a single predicate. A comment
// that exists under another author deletes zero rows and reports ErrNotFound,
// indistinguishable from true absence.
func (s *GormStore) DeleteComment(id, authorID, postID uint) error {
	res := s.db.
		Where("id = ? AND author_id = ? AND post_id = ?", id, authorID, postID).
		Delete(&models.Comment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) UpdateComment(id, authorID uint, content string) (*models.Comment, error) {
	res := s.db.Model(&models.Comment{}).
		Where("id = ? AND author_id = ?", id, authorID).
		Updates(map[string]interface{}{
			"content":    content,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (s *GormStore) ListComments(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.
		Preload("Author").
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *GormStore) CountComments(postID uint) (int64, error) {
	var count int64
	err := s.db.Model(&models.Comment{}).Where("post_id = ?", postID).Count(&count).Error
	return count, err
}
