package models

import (
	"gorm.io/gorm"
)

type SleepLog struct {
	gorm.Model
	UserID       uint `gorm:"index;not null"`
	TotalMinutes int  `gorm:"not null"`
	Feeling      string
	Reflection   string
}
