package repositories

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/threadline-app/backend/internal/apperrors"
	"github.com/threadline-app/backend/internal/models"
)

// NotificationRepository defines the interface for notification operations
type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	GetByRecipientID(recipientID string) ([]models.Notification, error)
	GetUnreadCount(recipientID string) (int64, error)
	MarkAsRead(notificationID uint) error
}

type postgresNotificationRepository struct {
	db *gorm.DB
}

// NewPostgresNotificationRepository creates a new NotificationRepository backed by PostgreSQL
func NewPostgresNotificationRepository(db *gorm.DB) NotificationRepository {
	return &postgresNotificationRepository{db: db}
}

func (r *postgresNotificationRepository) CreateNotification(notification *models.Notification) error {
	if err := r.db.Create(notification).Error; err != nil {
		return errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return nil
}

func (r *postgresNotificationRepository) GetByRecipientID(recipientID string) ([]models.Notification, error) {
	notifications := []models.Notification{}
	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").
		Limit(100).
		Find(&notifications).Error
	if err != nil {
		return nil, errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return notifications, nil
}

func (r *postgresNotificationRepository) GetUnreadCount(recipientID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = false", recipientID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(apperrors.ErrStore, err.Error())
	}
	return count, nil
}

func (r *postgresNotificationRepository) MarkAsRead(notificationID uint) error {
	res := r.db.Model(&models.Notification{}).Where("id = ?", notificationID).Update("is_read", true)
	if res.Error != nil {
		return errors.Wrap(apperrors.ErrStore, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return errors.Wrap(apperrors.ErrNotFound, "notification not found")
	}
	return nil
}
