package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

func Migrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.StudentProfile{},
		&models.ApplicationTracker{},
		&models.Essay{},
		&models.Task{},
		&models.Scholarship{},
		&models.SelectedCollege{},
		&models.Outbox{},
		&models.DLQ{},
		&models.ReminderDigest{},
	)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	log.Println("database migrated successfully")
}
