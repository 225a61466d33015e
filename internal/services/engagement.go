package services

import (
	"errors"

	"finch/internal/models"
	"finch/internal/store"

	"github.com/sirupsen/logrus"
)

// EngagementManager owns the lifecycle of the per-post engagement record:
// lazily created by the first like or comment, removed by the last removal
// that brings both counts back to zero. Nothing else creates or deletes it.
type EngagementManager struct {
	store store.Store
	log   *logrus.Logger
}

func NewEngagementManager(st store.Store, log *logrus.Logger) *EngagementManager {
	return &EngagementManager{store: st, log: log}
}

// EnsureExists creates the engagement record for a post if it is missing.
// Safe to call when it already exists. Two concurrent first interactions can
// both observe "missing"; the loser hits the post_id unique key, which is
// the satisfied outcome rather than a failure.
func (m *EngagementManager) EnsureExists(postID uint) error {
	found, err := m.store.FindEngagementByPost(postID)
	if err != nil {
		return err
	}
	if found != nil {
		return nil
	}

	if _, err := m.store.CreateEngagement(postID); err != nil {
		if errors.Is(err, store.ErrConflict) {
			// Lost the create race; the record exists now either way.
			m.log.WithField("post_id", postID).Debug("engagement already created concurrently")
			return nil
		}
		return err
	}
	return nil
}

// EnsureRemovedIfEmpty deletes the engagement record when the post has no
// likes and no comments left. Counts are recomputed from the authoritative
// tables at call time; the record itself never caches them. A record that is
// already gone is a no-op.
func (m *EngagementManager) EnsureRemovedIfEmpty(postID uint) error {
	likes, err := m.store.CountLikes(postID)
	if err != nil {
		return err
	}
	comments, err := m.store.CountComments(postID)
	if err != nil {
		return err
	}
	if likes > 0 || comments > 0 {
		return nil
	}
	return m.store.DeleteEngagement(postID)
}

// Get returns the engagement record with its post and likes, each like
// carrying its user and that user's follow edges.
func (m *EngagementManager) Get(postID uint) (*models.Engagement, error) {
	return m.store.GetEngagement(postID)
}
