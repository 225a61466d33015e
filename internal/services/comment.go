package services

import (
	"finch/internal/models"
	"finch/internal/store"
	"finch/internal/utils"

	"github.com/sirupsen/logrus"
)

// CommentService records, edits and removes comments on posts and drives the
// engagement record lifecycle around them.
type CommentService struct {
	store       store.Store
	engagements *EngagementManager
	log         *logrus.Logger
}

func NewCommentService(st store.Store, engagements *EngagementManager, log *logrus.Logger) *CommentService {
	return &CommentService{store: st, engagements: engagements, log: log}
}

// Create ensures the engagement record exists, then inserts the comment.
func (s *CommentService) Create(authorID, postID uint, content string) (*models.Comment, error) {
	if err := s.engagements.EnsureExists(postID); err != nil {
		return nil, err
	}
	return s.store.CreateComment(authorID, postID, content)
}

// Delete removes the author's own comment on the given post, then drops the
// engagement record if nothing remains. The (id, author, post) predicate
// means a comment owned by someone else looks exactly like a missing one.
func (s *CommentService) Delete(authorID, postID, commentID uint) error {
	if err := s.store.DeleteComment(commentID, authorID, postID); err != nil {
		return err
	}
	return s.engagements.EnsureRemovedIfEmpty(postID)
}

// Update edits the author's own comment and bumps updated_at. Content edits
// never touch the engagement record.
func (s *CommentService) Update(authorID, commentID uint, content string) (*models.Comment, error) {
	return s.store.UpdateComment(commentID, authorID, content)
}

// List returns the post's comments, most recent first.
func (s *CommentService) List(postID uint) ([]models.Comment, error) {
	comments, err := s.store.ListComments(postID)
	if err != nil {
		return nil, err
	}
	for i := range comments {
		comments[i].ContentHTML = utils.RenderMarkdown(comments[i].Content)
	}
	return comments, nil
}

func (s *CommentService) Count(postID uint) (int64, error) {
	return s.store.CountComments(postID)
}
