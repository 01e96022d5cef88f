package models

import "time"

// Like records that a user has liked a comment. The composite unique index
// guarantees at most one row per (comment, user) pair; Comment.Likes is a
// denormalized cache of the row count, maintained in the same transaction
// as every insert or delete here.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CommentID uint      `json:"commentId" gorm:"index;uniqueIndex:idx_like_comment_user;not null"`
	UserID    string    `json:"userId" gorm:"index;uniqueIndex:idx_like_comment_user;not null"`
	CreatedAt time.Time `json:"createdAt"`
	Comment   Comment   `json:"-" gorm:"foreignKey:CommentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// Actions reported by the like toggle
const (
	LikeActionLiked   = "liked"
	LikeActionUnliked = "unliked"
)
