package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/thereayou/contacts-api/internal/models"
)

func newTestDB(t *testing.T) *Database {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Contact{}))

	return NewDatabase(db)
}

func createTestUser(t *testing.T, d *Database, email string) *models.User {
	t.Helper()

	user := &models.User{
		Username:  "testuser",
		Email:     email,
		Password:  "hashed",
		CreatedAt: time.Now(),
	}
	require.NoError(t, d.SaveUser(context.Background(), user))
	return user
}

func createTestContact(t *testing.T, d *Database, userID uint, firstname, email, phone string, birthday *time.Time) *models.Contact {
	t.Helper()

	contact := &models.Contact{
		Firstname: firstname,
		Lastname:  "Doe",
		Email:     email,
		Phone:     phone,
		Birthday:  birthday,
		UserID:    userID,
	}
	require.NoError(t, d.CreateContact(context.Background(), contact))
	return contact
}
