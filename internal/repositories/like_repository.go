package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/threadline-app/backend/internal/apperrors"
	"github.com/threadline-app/backend/internal/models"
)

// LikeRepository defines the interface for comment like operations
type LikeRepository interface {
	ToggleLike(commentID uint, userID string) (action string, likes int, err error)
	HasUserLikedComment(commentID uint, userID string) (bool, error)
	GetLikesCount(commentID uint) (int64, error)
}

type postgresLikeRepository struct {
	db *gorm.DB
}

// NewPostgresLikeRepository creates a new LikeRepository backed by PostgreSQL
func NewPostgresLikeRepository(db *gorm.DB) LikeRepository {
	return &postgresLikeRepository{db: db}
}

// ToggleLike adds the user's like if absent or removes it if present, and
// moves the comment's denormalized counter in the same transaction. The
// counter is updated with a SQL expression, never read-modify-write, and
// the returned count is re-read after the write so concurrent toggles by
// other users are reflected.
func (r *postgresLikeRepository) ToggleLike(commentID uint, userID string) (string, int, error) {
	if userID == "" {
		return "", 0, errors.Wrap(apperrors.ErrValidation, "userId is required")
	}

	var action string
	var likes int
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, commentID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(apperrors.ErrNotFound, "comment not found")
			}
			return errors.Wrap(apperrors.ErrStore, err.Error())
		}

		var like models.Like
		err := tx.Where("comment_id = ? AND user_id = ?", commentID, userID).First(&like).Error
		switch {
		case err == nil:
			if err := tx.Delete(&like).Error; err != nil {
				return errors.Wrap(apperrors.ErrStore, err.Error())
			}
			// clamped so a raced decrement can never push the cache negative
			if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("CASE WHEN likes > 0 THEN likes - 1 ELSE 0 END")).Error; err != nil {
				return errors.Wrap(apperrors.ErrStore, err.Error())
			}
			action = models.LikeActionUnliked
		case errors.Is(err, gorm.ErrRecordNotFound):
			// the unique (comment_id, user_id) index rejects a concurrent duplicate
			if err := tx.Create(&models.Like{CommentID: commentID, UserID: userID}).Error; err != nil {
				return errors.Wrap(apperrors.ErrStore, err.Error())
			}
			if err := tx.Model(&models.Comment{}).Where("id = ?", commentID).
				UpdateColumn("likes", gorm.Expr("likes + ?", 1)).Error; err != nil {
				return errors.Wrap(apperrors.ErrStore, err.Error())
			}
			action = models.LikeActionLiked
		default:
			return errors.Wrap(apperrors.ErrStore, err.Error())
		}

		var fresh models.Comment
		if err := tx.Select("likes").First(&fresh, commentID).Error; err != nil {
			return errors.Wrap(apperrors.ErrStore, err.Error())
		}
		likes = fresh.Likes
		return nil
	})
	if err != nil {
		return "", 0, err
	}
	return action, likes, nil
}

// HasUserLikedComment reports whether the user currently has a like row
// for the comment
func (r *postgresLikeRepository) HasUserLikedComment(commentID uint, userID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("comment_id = ? AND user_id = ?", commentID, userID).Count(&count).Error
	if err != nil {
		return false, errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return count > 0, nil
}

// GetLikesCount returns the live count of like rows for the comment
func (r *postgresLikeRepository) GetLikesCount(commentID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Like{}).Where("comment_id = ?", commentID).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return count, nil
}
