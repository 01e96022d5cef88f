package repositories

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/threadline-app/backend/internal/models"
)

// newTestDB opens an in-memory SQLite database with foreign keys enforced,
// migrated to the same schema AutoMigrate produces in production. The pool
// is capped at one connection so every query sees the same in-memory DB.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Comment{},
		&models.Like{},
		&models.Notification{},
	))
	return db
}

// seedComment inserts a comment with an explicit timestamp so ordering
// assertions are deterministic
func seedComment(t *testing.T, db *gorm.DB, text, authorID string, parentID *uint, at time.Time) *models.Comment {
	t.Helper()
	comment := &models.Comment{
		Text:      text,
		AuthorID:  authorID,
		Author:    "Test User",
		ParentID:  parentID,
		Timestamp: at,
	}
	require.NoError(t, db.Create(comment).Error)
	return comment
}
