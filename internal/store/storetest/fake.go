// Package storetest provides an in-memory store.Store for service and
// handler tests.
package storetest

import (
	"sort"
	"sync"
	"time"

	"finch/internal/models"
	"finch/internal/store"
)

type Fake struct {
	mu     sync.Mutex
	nextID uint
	now    time.Time

	Engagements map[uint]*models.Engagement // keyed by post id
	Likes       []models.Like
	Comments    []models.Comment
	Users       map[uint]models.User // embedded into likes on list

	// When set, the next CreateEngagement reports a duplicate key even
	// though no record is stored, simulating a concurrent first
	// interaction winning the create race.
	ConflictNextEngagementCreate bool
}

func NewFake() *Fake {
	return &Fake{
		now:         time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		Engagements: make(map[uint]*models.Engagement),
		Users:       make(map[uint]models.User),
	}
}

func (f *Fake) id() uint {
	f.nextID++
	return f.nextID
}

// tick advances the fake clock so successive writes get distinct,
// strictly increasing timestamps.
func (f *Fake) tick() time.Time {
	f.now = f.now.Add(time.Second)
	return f.now
}

func (f *Fake) FindEngagementByPost(postID uint) (*models.Engagement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.Engagements[postID]
	if !ok {
		return nil, nil
	}
	copied := *e
	return &copied, nil
}

func (f *Fake) GetEngagement(postID uint) (*models.Engagement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	e, ok := f.Engagements[postID]
	if !ok {
		return nil, store.ErrNotFound
	}
	copied := *e
	copied.Likes = f.likesForPost(postID)
	return &copied, nil
}

func (f *Fake) CreateEngagement(postID uint) (*models.Engagement, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ConflictNextEngagementCreate {
		f.ConflictNextEngagementCreate = false
		return nil, store.ErrConflict
	}
	if _, ok := f.Engagements[postID]; ok {
		return nil, store.ErrConflict
	}
	e := &models.Engagement{ID: f.id(), PostID: postID, CreatedAt: f.tick()}
	f.Engagements[postID] = e
	copied := *e
	return &copied, nil
}

func (f *Fake) DeleteEngagement(postID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.Engagements, postID) // benign when absent
	return nil
}

func (f *Fake) CreateLike(userID, postID uint) (*models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.Likes {
		if l.UserID == userID && l.PostID == postID {
			return nil, store.ErrConflict
		}
	}
	like := models.Like{ID: f.id(), UserID: userID, PostID: postID, CreatedAt: f.tick()}
	f.Likes = append(f.Likes, like)
	return &like, nil
}

func (f *Fake) DeleteLike(userID, postID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, l := range f.Likes {
		if l.UserID == userID && l.PostID == postID {
			f.Likes = append(f.Likes[:i], f.Likes[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *Fake) FindLike(userID, postID uint) (*models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, l := range f.Likes {
		if l.UserID == userID && l.PostID == postID {
			copied := l
			return &copied, nil
		}
	}
	return nil, nil
}

func (f *Fake) ListLikes(postID uint) ([]models.Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.likesForPost(postID), nil
}

func (f *Fake) likesForPost(postID uint) []models.Like {
	var likes []models.Like
	for _, l := range f.Likes {
		if l.PostID == postID {
			if u, ok := f.Users[l.UserID]; ok {
				l.User = u
			}
			likes = append(likes, l)
		}
	}
	return likes
}

func (f *Fake) CountLikes(postID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, l := range f.Likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

func (f *Fake) CreateComment(authorID, postID uint, content string) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	now := f.tick()
	comment := models.Comment{
		ID:        f.id(),
		AuthorID:  authorID,
		PostID:    postID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	f.Comments = append(f.Comments, comment)
	return &comment, nil
}

func (f *Fake) DeleteComment(id, authorID, postID uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i, cm := range f.Comments {
		if cm.ID == id && cm.AuthorID == authorID && cm.PostID == postID {
			f.Comments = append(f.Comments[:i], f.Comments[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

func (f *Fake) UpdateComment(id, authorID uint, content string) (*models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.Comments {
		if f.Comments[i].ID == id && f.Comments[i].AuthorID == authorID {
			f.Comments[i].Content = content
			f.Comments[i].UpdatedAt = f.tick()
			copied := f.Comments[i]
			return &copied, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *Fake) ListComments(postID uint) ([]models.Comment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var comments []models.Comment
	for _, cm := range f.Comments {
		if cm.PostID == postID {
			comments = append(comments, cm)
		}
	}
	sort.SliceStable(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (f *Fake) CountComments(postID uint) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var count int64
	for _, cm := range f.Comments {
		if cm.PostID == postID {
			count++
		}
	}
	return count, nil
}
