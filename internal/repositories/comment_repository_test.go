package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline-app/backend/internal/apperrors"
	"github.com/threadline-app/backend/internal/models"
)

func TestCreateComment(t *testing.T) {
	t.Run("creates a top-level comment with zero likes", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		comment := &models.Comment{Text: "hello", AuthorID: "user-1", Author: "User One"}
		require.NoError(t, repo.CreateComment(comment))
		assert.NotZero(t, comment.ID)

		forest, err := repo.ListForest()
		require.NoError(t, err)
		require.Len(t, forest, 1)
		assert.Equal(t, "hello", forest[0].Text)
		assert.Equal(t, 0, forest[0].Likes)
		assert.Nil(t, forest[0].ParentID)
		assert.False(t, forest[0].Timestamp.IsZero())
	})

	t.Run("rejects empty text", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		err := repo.CreateComment(&models.Comment{AuthorID: "user-1"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("rejects empty authorId", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		err := repo.CreateComment(&models.Comment{Text: "hello"})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("creates a reply under an existing parent", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		parent := seedComment(t, db, "parent", "user-1", nil, time.Now())
		reply := &models.Comment{Text: "reply", AuthorID: "user-2", ParentID: &parent.ID}
		require.NoError(t, repo.CreateComment(reply))

		forest, err := repo.ListForest()
		require.NoError(t, err)
		require.Len(t, forest, 1)
		require.Len(t, forest[0].Children, 1)
		assert.Equal(t, reply.ID, forest[0].Children[0].ID)
	})

	t.Run("rejects a dangling parent id", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		missing := uint(9999)
		err := repo.CreateComment(&models.Comment{Text: "orphan", AuthorID: "user-1", ParentID: &missing})
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestListForest(t *testing.T) {
	t.Run("orders newest first at every level", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		older := seedComment(t, db, "older root", "user-1", nil, base)
		newer := seedComment(t, db, "newer root", "user-1", nil, base.Add(time.Hour))
		seedComment(t, db, "older reply", "user-2", &older.ID, base.Add(2*time.Hour))
		seedComment(t, db, "newer reply", "user-2", &older.ID, base.Add(3*time.Hour))

		forest, err := repo.ListForest()
		require.NoError(t, err)
		require.Len(t, forest, 2)
		assert.Equal(t, newer.ID, forest[0].ID)
		assert.Equal(t, older.ID, forest[1].ID)

		replies := forest[1].Children
		require.Len(t, replies, 2)
		assert.Equal(t, "newer reply", replies[0].Text)
		assert.Equal(t, "older reply", replies[1].Text)
	})

	t.Run("materializes three levels of replies", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		root := seedComment(t, db, "level 0", "user-1", nil, at)
		l1 := seedComment(t, db, "level 1", "user-1", &root.ID, at)
		l2 := seedComment(t, db, "level 2", "user-1", &l1.ID, at)
		l3 := seedComment(t, db, "level 3", "user-1", &l2.ID, at)
		seedComment(t, db, "level 4", "user-1", &l3.ID, at)

		forest, err := repo.ListForest()
		require.NoError(t, err)
		require.Len(t, forest, 1)

		level1 := forest[0].Children
		require.Len(t, level1, 1)
		level2 := level1[0].Children
		require.Len(t, level2, 1)
		level3 := level2[0].Children
		require.Len(t, level3, 1)
		assert.Equal(t, "level 3", level3[0].Text)
		// the fourth level exists in the store but is not materialized
		assert.Empty(t, level3[0].Children)
	})

	t.Run("empty store yields an empty forest", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		forest, err := repo.ListForest()
		require.NoError(t, err)
		assert.Empty(t, forest)
	})
}

func TestDeleteComment(t *testing.T) {
	t.Run("author deletes the comment and every descendant", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)
		likeRepo := NewPostgresLikeRepository(db)

		at := time.Now()
		root := seedComment(t, db, "root", "author", nil, at)
		reply := seedComment(t, db, "reply", "other", &root.ID, at)
		nested := seedComment(t, db, "nested", "author", &reply.ID, at)
		keep := seedComment(t, db, "unrelated", "other", nil, at)

		// a like on a descendant must cascade away with it
		_, _, err := likeRepo.ToggleLike(nested.ID, "liker")
		require.NoError(t, err)

		require.NoError(t, repo.DeleteComment(root.ID, "author"))

		var commentCount int64
		require.NoError(t, db.Model(&models.Comment{}).Count(&commentCount).Error)
		assert.Equal(t, int64(1), commentCount)

		var likeCount int64
		require.NoError(t, db.Model(&models.Like{}).Count(&likeCount).Error)
		assert.Equal(t, int64(0), likeCount)

		forest, err := repo.ListForest()
		require.NoError(t, err)
		require.Len(t, forest, 1)
		assert.Equal(t, keep.ID, forest[0].ID)
	})

	t.Run("non-author delete fails and leaves the tree intact", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		at := time.Now()
		root := seedComment(t, db, "root", "author", nil, at)
		seedComment(t, db, "reply", "other", &root.ID, at)

		err := repo.DeleteComment(root.ID, "intruder")
		assert.True(t, apperrors.IsAuthorization(err))

		var count int64
		require.NoError(t, db.Model(&models.Comment{}).Count(&count).Error)
		assert.Equal(t, int64(2), count)
	})

	t.Run("deleting a missing comment is not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresCommentRepository(db)

		err := repo.DeleteComment(12345, "anyone")
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestGetAuthorName(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, db.Create(&models.Comment{
		Text: "old", AuthorID: "user-1", Author: "Old Name", Timestamp: base,
	}).Error)
	require.NoError(t, db.Create(&models.Comment{
		Text: "new", AuthorID: "user-1", Author: "New Name", Timestamp: base.Add(time.Hour),
	}).Error)

	name, err := repo.GetAuthorName("user-1")
	require.NoError(t, err)
	assert.Equal(t, "New Name", name)

	// an author with no comments resolves to empty, not an error
	name, err = repo.GetAuthorName("stranger")
	require.NoError(t, err)
	assert.Equal(t, "", name)
}

func TestGetCommentByID(t *testing.T) {
	db := newTestDB(t)
	repo := NewPostgresCommentRepository(db)

	created := seedComment(t, db, "hello", "user-1", nil, time.Now())

	found, err := repo.GetCommentByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "hello", found.Text)

	_, err = repo.GetCommentByID(9999)
	assert.True(t, apperrors.IsNotFound(err))
}
