package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/threadline-app/backend/internal/apperrors"
	"github.com/threadline-app/backend/internal/models"
)

// forestDepth bounds how many reply levels ListForest materializes.
const forestDepth = 3

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(comment *models.Comment) error
	GetCommentByID(id uint) (*models.Comment, error)
	GetAuthorName(authorID string) (string, error)
	ListForest() ([]*models.Comment, error)
	DeleteComment(id uint, requesterID string) error
}

// PostgresCommentRepository implements CommentRepository for PostgreSQL
type PostgresCommentRepository struct {
	db *gorm.DB
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository
func NewPostgresCommentRepository(db *gorm.DB) *PostgresCommentRepository {
	return &PostgresCommentRepository{db: db}
}

// CreateComment inserts a new comment. A reply's parent must already exist;
// dangling parent ids are rejected so the forest never holds orphans.
func (r *PostgresCommentRepository) CreateComment(comment *models.Comment) error {
	if comment.Text == "" || comment.AuthorID == "" {
		return errors.Wrap(apperrors.ErrValidation, "text and authorId are required")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if comment.ParentID != nil {
			var count int64
			if err := tx.Model(&models.Comment{}).Where("id = ?", *comment.ParentID).Count(&count).Error; err != nil {
				return errors.Wrap(apperrors.ErrStore, err.Error())
			}
			if count == 0 {
				return errors.Wrap(apperrors.ErrNotFound, "parent comment not found")
			}
		}
		if err := tx.Create(comment).Error; err != nil {
			return errors.Wrap(apperrors.ErrStore, err.Error())
		}
		return nil
	})
}

// GetCommentByID retrieves a single comment without its children
func (r *PostgresCommentRepository) GetCommentByID(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(apperrors.ErrNotFound, "comment not found")
		}
		return nil, errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return &comment, nil
}

// GetAuthorName returns the display-name snapshot from the author's most
// recent comment, or "" if the author has never commented
func (r *PostgresCommentRepository) GetAuthorName(authorID string) (string, error) {
	var comment models.Comment
	err := r.db.Select("author").Where("author_id = ?", authorID).Order("timestamp DESC").First(&comment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return comment.Author, nil
}

// ListForest returns all top-level comments with replies preloaded to
// forestDepth levels, newest first at every level.
func (r *PostgresCommentRepository) ListForest() ([]*models.Comment, error) {
	newestFirst := func(db *gorm.DB) *gorm.DB {
		return db.Order("timestamp DESC")
	}

	q := r.db.Where("parent_id IS NULL").Order("timestamp DESC")
	path := "Children"
	for level := 0; level < forestDepth; level++ {
		q = q.Preload(path, newestFirst)
		path += ".Children"
	}

	forest := []*models.Comment{}
	if err := q.Find(&forest).Error; err != nil {
		return nil, errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return forest, nil
}

// DeleteComment removes a comment after checking the requester is its
// author. The parent and like foreign keys cascade, so the whole subtree
// and every like row under it go in the same statement.
func (r *PostgresCommentRepository) DeleteComment(id uint, requesterID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var comment models.Comment
		if err := tx.First(&comment, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errors.Wrap(apperrors.ErrNotFound, "comment not found")
			}
			return errors.Wrap(apperrors.ErrStore, err.Error())
		}
		if comment.AuthorID != requesterID {
			return errors.Wrap(apperrors.ErrAuthorization, "only the author can delete a comment")
		}
		if err := tx.Delete(&models.Comment{}, id).Error; err != nil {
			return errors.Wrap(apperrors.ErrStore, err.Error())
		}
		return nil
	})
}
