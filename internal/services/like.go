package services

import (
	"finch/internal/models"
	"finch/internal/store"

	"github.com/sirupsen/logrus"
)

// LikeService records and removes single-user likes on posts and drives the
// engagement record lifecycle around them.
type LikeService struct {
	store       store.Store
	engagements *EngagementManager
	log         *logrus.Logger
}

func NewLikeService(st store.Store, engagements *EngagementManager, log *logrus.Logger) *LikeService {
	return &LikeService{store: st, engagements: engagements, log: log}
}

// Like ensures the engagement record exists, then records the like.
// A second like from the same user fails with store.ErrConflict.
func (s *LikeService) Like(userID, postID uint) error {
	if err := s.engagements.EnsureExists(postID); err != nil {
		return err
	}
	_, err := s.store.CreateLike(userID, postID)
	return err
}

// Unlike removes the like, then drops the engagement record if this was the
// last interaction on the post. Unliking something never liked fails with
// store.ErrNotFound.
func (s *LikeService) Unlike(userID, postID uint) error {
	if err := s.store.DeleteLike(userID, postID); err != nil {
		return err
	}
	return s.engagements.EnsureRemovedIfEmpty(postID)
}

func (s *LikeService) Exists(userID, postID uint) (bool, error) {
	like, err := s.store.FindLike(userID, postID)
	if err != nil {
		return false, err
	}
	return like != nil, nil
}

// ListLikers returns the users who liked the post, reordered relative to the
// requesting user's graph: mutual connections first, then one-directional,
// then the rest.
func (s *LikeService) ListLikers(requesterID, postID uint) ([]models.User, error) {
	likers, err := s.likers(postID)
	if err != nil {
		return nil, err
	}
	return Rerank(requesterID, likers), nil
}

// ListMutualLikers returns only the likers in a mutual-follow relationship
// with the requesting user.
func (s *LikeService) ListMutualLikers(requesterID, postID uint) ([]models.User, error) {
	likers, err := s.likers(postID)
	if err != nil {
		return nil, err
	}
	return MutualOnly(requesterID, likers), nil
}

func (s *LikeService) likers(postID uint) ([]models.User, error) {
	likes, err := s.store.ListLikes(postID)
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(likes))
	for _, like := range likes {
		users = append(users, like.User)
	}
	return users, nil
}

func (s *LikeService) Count(postID uint) (int64, error) {
	return s.store.CountLikes(postID)
}
