package models

import "time"

// User is a local snapshot of an identity-provider profile, filled in the
// first time a verified token is seen. The provider owns the account; this
// row only caches the display data the comment feature needs.
type User struct {
	ID          uint      `json:"-" gorm:"primaryKey"`
	FirebaseUID string    `json:"id" gorm:"uniqueIndex;not null"`
	FullName    string    `json:"fullName"`
	Email       string    `json:"email,omitempty" gorm:"index"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}
