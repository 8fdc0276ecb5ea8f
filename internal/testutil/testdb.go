package testutil

import (
	"github.com/brandoline/Kanbanize.me/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewInMemoryDB creates an in-memory SQLite DB and runs migrations.
func NewInMemoryDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Task{},
		&models.Contact{},
		&models.Category{},
		&models.Course{},
		&models.Preference{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}
