package config

import (
	"fmt"
	"log"
	"os"

	"bloom/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	var dialector gorm.Dialector
	switch os.Getenv("DB_DRIVER") {
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "bloom.db"
		}
		dialector = sqlite.Open(path)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Mood{},
		&models.ActivityLog{},
		&models.SleepLog{},
		&models.MoodLog{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	if err := SeedMoods(DB); err != nil {
		log.Fatalf("Failed to seed mood vocabulary: %v", err)
	}
}

// SeedMoods inserts the shared mood vocabulary (user_id NULL rows).
// Safe to run on every startup: existing rows are left alone.
func SeedMoods(db *gorm.DB) error {
	seed := []models.Mood{
		{Mood: "joyful", Vibe: "happy"},
		{Mood: "grateful", Vibe: "happy"},
		{Mood: "excited", Vibe: "happy"},
		{Mood: "calm", Vibe: "neutral"},
		{Mood: "content", Vibe: "neutral"},
		{Mood: "tired", Vibe: "neutral"},
		{Mood: "anxious", Vibe: "heavy"},
		{Mood: "sad", Vibe: "heavy"},
		{Mood: "stressed", Vibe: "heavy"},
		{Mood: "energetic", Vibe: "driven"},
		{Mood: "motivated", Vibe: "driven"},
	}

	for _, m := range seed {
		row := models.Mood{Mood: m.Mood, Vibe: m.Vibe}
		if err := db.Where("user_id IS NULL AND mood = ?", m.Mood).
			FirstOrCreate(&row).Error; err != nil {
			return err
		}
	}
	return nil
}
