package services

import (
	"errors"

	"finch/internal/db"
	"finch/internal/models"
	"finch/internal/store"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrSelfFollow = errors.New("cannot follow yourself")

// FollowService writes the directed follow edges the connection graph
// reader later ranks over.
type FollowService struct {
	log *logrus.Logger
}

func NewFollowService(log *logrus.Logger) *FollowService {
	return &FollowService{log: log}
}

// Follow creates the follower -> followee edge. Following twice surfaces as
// store.ErrConflict, a missing followee as store.ErrNotFound.
func (s *FollowService) Follow(followerID, followeeID uint) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	var followee models.User
	if err := db.DB.First(&followee, followeeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return store.ErrNotFound
		}
		return err
	}

	edge := models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := db.DB.Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return store.ErrConflict
		}
		return err
	}
	return nil
}

func (s *FollowService) Unfollow(followerID, followeeID uint) error {
	res := db.DB.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
