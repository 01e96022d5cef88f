package repositories

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadline-app/backend/internal/apperrors"
	"github.com/threadline-app/backend/internal/models"
)

func TestToggleLike(t *testing.T) {
	t.Run("first toggle likes, second unlikes", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresLikeRepository(db)
		comment := seedComment(t, db, "hello", "author", nil, time.Now())

		action, likes, err := repo.ToggleLike(comment.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, models.LikeActionLiked, action)
		assert.Equal(t, 1, likes)

		liked, err := repo.HasUserLikedComment(comment.ID, "user-1")
		require.NoError(t, err)
		assert.True(t, liked)

		action, likes, err = repo.ToggleLike(comment.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, models.LikeActionUnliked, action)
		assert.Equal(t, 0, likes)

		// the pair leaves no like row behind
		liked, err = repo.HasUserLikedComment(comment.ID, "user-1")
		require.NoError(t, err)
		assert.False(t, liked)

		count, err := repo.GetLikesCount(comment.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})

	t.Run("counter tracks the like rows exactly", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresLikeRepository(db)
		comment := seedComment(t, db, "popular", "author", nil, time.Now())

		const users = 7
		for i := 0; i < users; i++ {
			action, _, err := repo.ToggleLike(comment.ID, fmt.Sprintf("user-%d", i))
			require.NoError(t, err)
			assert.Equal(t, models.LikeActionLiked, action)
		}

		var fresh models.Comment
		require.NoError(t, db.First(&fresh, comment.ID).Error)
		assert.Equal(t, users, fresh.Likes)

		rows, err := repo.GetLikesCount(comment.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(users), rows)

		// one user unlikes, the rest stay
		_, likes, err := repo.ToggleLike(comment.ID, "user-0")
		require.NoError(t, err)
		assert.Equal(t, users-1, likes)
	})

	t.Run("concurrent likes by distinct users all land", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresLikeRepository(db)
		comment := seedComment(t, db, "trending", "author", nil, time.Now())

		const users = 8
		errs := make([]error, users)
		var wg sync.WaitGroup
		for i := 0; i < users; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				_, _, errs[i] = repo.ToggleLike(comment.ID, fmt.Sprintf("user-%d", i))
			}(i)
		}
		wg.Wait()

		for i, err := range errs {
			require.NoError(t, err, "user-%d", i)
		}

		var fresh models.Comment
		require.NoError(t, db.First(&fresh, comment.ID).Error)
		assert.Equal(t, users, fresh.Likes)

		rows, err := repo.GetLikesCount(comment.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(users), rows)
	})

	t.Run("toggling a missing comment is not found", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresLikeRepository(db)

		_, _, err := repo.ToggleLike(9999, "user-1")
		assert.True(t, apperrors.IsNotFound(err))
	})

	t.Run("empty user id is a validation error", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresLikeRepository(db)
		comment := seedComment(t, db, "hello", "author", nil, time.Now())

		_, _, err := repo.ToggleLike(comment.ID, "")
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("decrement clamps at zero", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewPostgresLikeRepository(db)
		comment := seedComment(t, db, "hello", "author", nil, time.Now())

		// simulate a drifted cache: a like row exists but the counter is 0
		require.NoError(t, db.Create(&models.Like{CommentID: comment.ID, UserID: "user-1"}).Error)

		_, likes, err := repo.ToggleLike(comment.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, 0, likes)

		var fresh models.Comment
		require.NoError(t, db.First(&fresh, comment.ID).Error)
		assert.Equal(t, 0, fresh.Likes)
	})

	t.Run("unique index rejects a duplicate like row", func(t *testing.T) {
		db := newTestDB(t)
		comment := seedComment(t, db, "hello", "author", nil, time.Now())

		require.NoError(t, db.Create(&models.Like{CommentID: comment.ID, UserID: "user-1"}).Error)
		err := db.Create(&models.Like{CommentID: comment.ID, UserID: "user-1"}).Error
		assert.Error(t, err)
	})
}
