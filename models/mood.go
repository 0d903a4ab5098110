package models

import (
	"gorm.io/gorm"
)

// Mood is one vocabulary entry. UserID nil means the entry is a shared
// seed mood visible to everyone; non-nil scopes it to that user.
type Mood struct {
	gorm.Model
	UserID *uint  `gorm:"uniqueIndex:idx_moods_user_mood"`
	Mood   string `gorm:"uniqueIndex:idx_moods_user_mood;not null"`
	Vibe   string `gorm:"not null"`
}
