package services

import (
	"testing"

	"finch/internal/models"
	"finch/internal/store"
	"finch/internal/store/storetest"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T) (*storetest.Fake, *EngagementManager, *LikeService, *CommentService) {
	t.Helper()
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)

	fake := storetest.NewFake()
	engagements := NewEngagementManager(fake, log)
	likes := NewLikeService(fake, engagements, log)
	comments := NewCommentService(fake, engagements, log)
	return fake, engagements, likes, comments
}

// requireInvariant asserts the core invariant: an engagement record exists
// iff the post has at least one like or comment.
func requireInvariant(t *testing.T, fake *storetest.Fake, postID uint) {
	t.Helper()
	likes, err := fake.CountLikes(postID)
	require.NoError(t, err)
	comments, err := fake.CountComments(postID)
	require.NoError(t, err)

	e, err := fake.FindEngagementByPost(postID)
	require.NoError(t, err)
	if likes+comments > 0 {
		require.NotNil(t, e, "engagement must exist while interactions remain")
	} else {
		require.Nil(t, e, "engagement must be gone once no interactions remain")
	}
}

func TestEnsureExistsIsIdempotent(t *testing.T) {
	fake, engagements, _, _ := newTestServices(t)

	require.NoError(t, engagements.EnsureExists(7))
	require.NoError(t, engagements.EnsureExists(7))

	require.Len(t, fake.Engagements, 1)
}

func TestEnsureExistsAbsorbsCreateRace(t *testing.T) {
	fake, engagements, _, _ := newTestServices(t)

	// Another first interaction wins the create between our existence
	// check and our insert; the duplicate key must read as success.
	fake.ConflictNextEngagementCreate = true
	require.NoError(t, engagements.EnsureExists(7))
}

func TestEnsureRemovedIfEmptyWhenAbsentIsNoOp(t *testing.T) {
	_, engagements, _, _ := newTestServices(t)
	require.NoError(t, engagements.EnsureRemovedIfEmpty(7))
}

func TestEnsureRemovedIfEmptyKeepsRecordWhileInteractionsRemain(t *testing.T) {
	fake, engagements, likes, _ := newTestServices(t)

	require.NoError(t, likes.Like(1, 7))
	require.NoError(t, engagements.EnsureRemovedIfEmpty(7))

	require.Contains(t, fake.Engagements, uint(7))
}

func TestLikeLifecycle(t *testing.T) {
	fake, _, likes, _ := newTestServices(t)
	const user, post = 1, 7

	requireInvariant(t, fake, post)

	require.NoError(t, likes.Like(user, post))
	requireInvariant(t, fake, post)

	exists, err := likes.Exists(user, post)
	require.NoError(t, err)
	require.True(t, exists)

	count, err := likes.Count(post)
	require.NoError(t, err)
	require.EqualValues(t, 1, count)

	require.NoError(t, likes.Unlike(user, post))
	requireInvariant(t, fake, post)

	exists, err = likes.Exists(user, post)
	require.NoError(t, err)
	require.False(t, exists)
}

func TestLikeTwiceIsConflict(t *testing.T) {
	_, _, likes, _ := newTestServices(t)

	require.NoError(t, likes.Like(1, 7))
	require.ErrorIs(t, likes.Like(1, 7), store.ErrConflict)
}

func TestUnlikeWithoutLikeIsNotFound(t *testing.T) {
	_, _, likes, _ := newTestServices(t)
	require.ErrorIs(t, likes.Unlike(1, 7), store.ErrNotFound)
}

func TestMixedInteractionsKeepEngagementAlive(t *testing.T) {
	fake, _, likes, comments := newTestServices(t)
	const post = 7

	require.NoError(t, likes.Like(1, post))
	created, err := comments.Create(2, post, "nice one")
	require.NoError(t, err)
	requireInvariant(t, fake, post)

	// Deleting the comment leaves the like, so the record stays.
	require.NoError(t, comments.Delete(2, post, created.ID))
	require.Contains(t, fake.Engagements, uint(post))
	requireInvariant(t, fake, post)

	// Removing the last interaction drops it.
	require.NoError(t, likes.Unlike(1, post))
	requireInvariant(t, fake, post)
}

func TestCommentsListedMostRecentFirst(t *testing.T) {
	_, _, _, comments := newTestServices(t)
	const post = 7

	first, err := comments.Create(1, post, "first")
	require.NoError(t, err)
	second, err := comments.Create(2, post, "second")
	require.NoError(t, err)
	third, err := comments.Create(1, post, "third")
	require.NoError(t, err)

	listed, err := comments.List(post)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	require.Equal(t, []uint{third.ID, second.ID, first.ID},
		[]uint{listed[0].ID, listed[1].ID, listed[2].ID})
}

func TestCommentUpdateBumpsUpdatedAtOnly(t *testing.T) {
	fake, _, _, comments := newTestServices(t)
	const post = 7

	created, err := comments.Create(1, post, "draft")
	require.NoError(t, err)

	updated, err := comments.Update(1, created.ID, "final")
	require.NoError(t, err)
	require.Equal(t, "final", updated.Content)
	require.Equal(t, created.CreatedAt, updated.CreatedAt)
	require.True(t, updated.UpdatedAt.After(created.UpdatedAt))

	// Content edits never touch the engagement record.
	require.Contains(t, fake.Engagements, uint(post))
}

func TestCommentOwnershipMismatchReadsAsNotFound(t *testing.T) {
	_, _, _, comments := newTestServices(t)
	const author, other, post = 1, 2, 7

	created, err := comments.Create(author, post, "mine")
	require.NoError(t, err)

	_, err = comments.Update(other, created.ID, "hijacked")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, comments.Delete(other, post, created.ID), store.ErrNotFound)

	// Wrong post id is just as invisible as wrong author.
	require.ErrorIs(t, comments.Delete(author, post+1, created.ID), store.ErrNotFound)
}

func TestListLikersRanksAgainstRequesterGraph(t *testing.T) {
	fake, _, likes, _ := newTestServices(t)
	const requester, post = 1, 7

	// mutual: 2, one-way: 3, stranger: 4
	fake.Users[2] = models.User{
		ID:        2,
		Following: []models.Follow{{FollowerID: 2, FolloweeID: requester}},
		Followers: []models.Follow{{FollowerID: requester, FolloweeID: 2}},
	}
	fake.Users[3] = models.User{
		ID:        3,
		Followers: []models.Follow{{FollowerID: requester, FolloweeID: 3}},
	}
	fake.Users[4] = models.User{ID: 4}

	require.NoError(t, likes.Like(4, post))
	require.NoError(t, likes.Like(3, post))
	require.NoError(t, likes.Like(2, post))

	ranked, err := likes.ListLikers(requester, post)
	require.NoError(t, err)
	require.Equal(t, []uint{2, 3, 4}, ids(ranked))

	mutual, err := likes.ListMutualLikers(requester, post)
	require.NoError(t, err)
	require.Equal(t, []uint{2}, ids(mutual))
}

func TestGetEngagementIncludesLikes(t *testing.T) {
	fake, engagements, likes, _ := newTestServices(t)
	const post = 7

	_, err := engagements.Get(post)
	require.ErrorIs(t, err, store.ErrNotFound)

	fake.Users[2] = models.User{ID: 2, Username: "ada"}
	require.NoError(t, likes.Like(2, post))

	e, err := engagements.Get(post)
	require.NoError(t, err)
	require.EqualValues(t, post, e.PostID)
	require.Len(t, e.Likes, 1)
	require.Equal(t, "ada", e.Likes[0].User.Username)
}
