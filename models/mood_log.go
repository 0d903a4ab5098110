package models

import (
	"gorm.io/gorm"
)

type MoodLog struct {
	gorm.Model
	UserID uint `gorm:"index;not null"`
	MoodID uint `gorm:"not null"`
	Cause  string
}
