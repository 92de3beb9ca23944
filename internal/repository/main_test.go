package repository

import (
	"fmt"
	"log"
	"os"
	"testing"
	"time"

	"tutegram/internal/database"
	"tutegram/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDB *gorm.DB

func TestMain(m *testing.M) {
	os.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatalf("failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate test database: %v", err)
	}
	testDB = db

	os.Exit(m.Run())
}

// createTestUser inserts a user with unique username/email.
func createTestUser(t *testing.T, firstName string) *models.User {
	t.Helper()
	ts := time.Now().UnixNano()
	user := &models.User{
		FirstName: firstName,
		LastName:  "Tester",
		Username:  fmt.Sprintf("%s_%d", firstName, ts),
		Email:     fmt.Sprintf("%s_%d@example.com", firstName, ts),
		Password:  "hashed-password",
	}
	if err := testDB.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}
