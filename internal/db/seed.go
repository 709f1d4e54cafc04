package db

import (
	"encoding/json"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/Akr1040317/CollegeApp-sub000/internal/models"
)

// Seed inserts a demo account with a complete profile and a small
// scholarship corpus so the search index has content on first boot.
func Seed(db *gorm.DB) {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		log.Println("Data already exists, skipping seed.")
		return
	}

	db.Transaction(func(tx *gorm.DB) error {
		hash, _ := bcrypt.GenerateFromPassword([]byte("demo-password"), bcrypt.DefaultCost)
		user := models.User{
			Email:        "demo@example.com",
			PasswordHash: string(hash),
			DisplayName:  "Demo Student",
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}

		gpa := 3.75
		sat := 1450
		aps, _ := json.Marshal([]models.APScore{
			{Subject: "Calculus BC", Score: 5, Year: 2025},
			{Subject: "US History", Score: 4, Year: 2024},
		})
		ecs, _ := json.Marshal([]string{"Robotics Club", "Debate Team"})
		prefs, _ := json.Marshal(models.PreferenceSet{
			Locations:  []string{"California", "Massachusetts"},
			Region:     "any",
			CampusSize: "medium",
			MaxCost:    45000,
			Culture:    []string{"research", "collaborative"},
		})
		profile := models.StudentProfile{
			UserID:           user.ID,
			FirstName:        "Demo",
			LastName:         "Student",
			Email:            user.Email,
			GPA:              &gpa,
			GPAScale:         4.0,
			SATScore:         &sat,
			APScores:         datatypes.JSON(aps),
			Extracurriculars: datatypes.JSON(ecs),
			Preferences:      datatypes.JSON(prefs),
			SafetyPercent:    30,
			TargetPercent:    50,
			ReachPercent:     20,
			WizardStep:       5,
			Status:           models.ProfileComplete,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}

		amount := 5000.0
		deadline := time.Now().AddDate(0, 3, 0)
		scholarships := []models.Scholarship{
			{StudentID: profile.ID, Name: "STEM Futures Grant", Provider: "National STEM Fund",
				Amount: &amount, Deadline: &deadline,
				Eligibility: "3.5+ GPA, STEM major intent", Status: models.ScholarshipDiscovered},
			{StudentID: profile.ID, Name: "Community Leaders Award", Provider: "Civic Trust",
				Eligibility: "Documented volunteer leadership", Status: models.ScholarshipDiscovered},
		}
		if err := tx.Create(&scholarships).Error; err != nil {
			return err
		}

		log.Println("Sample data inserted successfully.")
		return nil
	})
}
