package models

import (
	"gorm.io/gorm"
)

type ActivityLog struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	ActivityName string `gorm:"not null"` // stored lowercase
	TotalMinutes int    `gorm:"not null"`
	Enjoyment    *float64
	Reflection   string
}
