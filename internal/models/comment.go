package models

import "time"

// Comment represents a single comment in the discussion tree. Top-level
// comments have a nil ParentID; replies point at their parent. Children is
// a relationship view materialized by query, never written directly.
type Comment struct {
	ID        uint       `json:"id" gorm:"primaryKey"`
	Text      string     `json:"text" gorm:"type:text;not null"`
	AuthorID  string     `json:"authorId" gorm:"index;not null"` // opaque identity-provider user id
	Author    string     `json:"author"`                         // display name snapshot at post time
	ParentID  *uint      `json:"parentId" gorm:"index"`          // nil for top-level comments
	Likes     int        `json:"likes" gorm:"not null;default:0"`
	Timestamp time.Time  `json:"timestamp" gorm:"autoCreateTime;index"`
	Children  []*Comment `json:"children,omitempty" gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// CreateCommentRequest defines the request body for posting a comment or reply
type CreateCommentRequest struct {
	Text     string `json:"text" validate:"required,min=1,max=2000"`
	AuthorID string `json:"authorId" validate:"required"`
	Author   string `json:"author" validate:"max=100"`
	ParentID *uint  `json:"parentId"`
}

// LikeCommentRequest defines the request body for toggling a like
type LikeCommentRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// DeleteCommentRequest defines the request body for deleting a comment
type DeleteCommentRequest struct {
	UserID string `json:"userId" validate:"required"`
}

// LikeCommentResponse is returned by the like toggle endpoint. Likes is the
// authoritative count re-read after the write, not a client-side guess.
type LikeCommentResponse struct {
	Success bool   `json:"success"`
	Action  string `json:"action"` // "liked" or "unliked"
	Likes   int    `json:"likes"`
}

// DeleteCommentResponse is returned by the delete endpoint
type DeleteCommentResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
