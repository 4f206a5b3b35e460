package repositories

import (
	"context"
	"fmt"
	"testing"

	"todo-app/backend/internal/models"

	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a uniquely named shared in-memory database so each
// test gets isolated state while gorm's connection pool still sees the
// same data.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.Must(uuid.NewV4()).String())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Task{}))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user, err := NewUserStore(db).Create(context.Background(), email, "hashed-password")
	require.NoError(t, err)
	return user
}
