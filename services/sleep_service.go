package services

import (
	"strings"
	"time"

	"bloom/models"
	"bloom/utils"

	"gorm.io/gorm"
)

const defaultFeeling = "no feeling input for today!"

type SleepService struct{ db *gorm.DB }

func NewSleepService(db *gorm.DB) *SleepService { return &SleepService{db: db} }

type SleepInput struct {
	Hours      string `form:"hours" json:"hours"`
	Minutes    string `form:"minutes" json:"minutes"`
	Feeling    string `form:"feeling" json:"feeling"`
	Reflection string `form:"reflection" json:"reflection"`
}

type SleepEntry struct {
	Duration   string `json:"duration"`
	Feeling    string `json:"feeling"`
	Reflection string `json:"reflection"`
}

func (s *SleepService) Log(userID uint, in SleepInput) error {
	total, err := ParseTotalMinutes(in.Hours, in.Minutes)
	if err != nil {
		return err
	}

	feeling := strings.TrimSpace(in.Feeling)
	if feeling == "" {
		feeling = defaultFeeling
	}
	reflection := strings.TrimSpace(in.Reflection)
	if reflection == "" {
		reflection = defaultReflection
	}

	row := models.SleepLog{
		UserID:       userID,
		TotalMinutes: total,
		Feeling:      feeling,
		Reflection:   reflection,
	}
	return s.db.Create(&row).Error
}

func (s *SleepService) Days(userID uint) ([]DayBucket[SleepEntry], error) {
	var rows []models.SleepLog
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return GroupByDay(rows,
		func(r models.SleepLog) time.Time { return r.CreatedAt },
		func(r models.SleepLog) SleepEntry {
			return SleepEntry{
				Duration:   utils.FormatMinutes(r.TotalMinutes),
				Feeling:    r.Feeling,
				Reflection: r.Reflection,
			}
		}), nil
}
