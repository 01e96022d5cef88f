package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/threadline-app/backend/internal/apperrors"
	"github.com/threadline-app/backend/internal/models"
)

// UserRepository defines the interface for user profile snapshots
type UserRepository interface {
	UpsertProfile(user *models.User) error
	GetByFirebaseUID(firebaseUID string) (*models.User, error)
}

// PostgresUserRepository implements UserRepository for PostgreSQL
type PostgresUserRepository struct {
	db *gorm.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository
func NewPostgresUserRepository(db *gorm.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

// UpsertProfile inserts the profile row or refreshes its display data when
// the provider uid is already known
func (r *PostgresUserRepository) UpsertProfile(user *models.User) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "firebase_uid"}},
		DoUpdates: clause.AssignmentColumns([]string{"full_name", "email", "updated_at"}),
	}).Create(user).Error
	if err != nil {
		return errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return nil
}

// GetByFirebaseUID retrieves a profile snapshot by provider uid
func (r *PostgresUserRepository) GetByFirebaseUID(firebaseUID string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("firebase_uid = ?", firebaseUID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.Wrap(apperrors.ErrNotFound, "user not found")
		}
		return nil, errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return &user, nil
}
