package models

import "time"

// Notification types
const (
	NotificationTypeReply = "reply"
	NotificationTypeLike  = "like"
)

// Notification tells a comment author that someone replied to or liked
// their comment. Recipient and actor ids are identity-provider ids, same
// as Comment.AuthorID.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID string    `json:"recipientId" gorm:"index;not null"`
	ActorID     string    `json:"actorId" gorm:"not null"`
	ActorName   string    `json:"actorName"`
	Type        string    `json:"type" gorm:"not null"` // "reply" or "like"
	CommentID   uint      `json:"commentId" gorm:"index;not null"`
	IsRead      bool      `json:"read" gorm:"default:false;index"`
	CreatedAt   time.Time `json:"createdAt"`
}
