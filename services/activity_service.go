package services

import (
	"strings"
	"time"

	"bloom/models"
	"bloom/utils"

	"gorm.io/gorm"
)

const defaultReflection = "no reflection for today!"

type ActivityService struct{ db *gorm.DB }

func NewActivityService(db *gorm.DB) *ActivityService { return &ActivityService{db: db} }

// ActivityInput carries the raw form fields as submitted, unparsed.
type ActivityInput struct {
	Name       string `form:"name" json:"name"`
	Hours      string `form:"hours" json:"hours"`
	Minutes    string `form:"minutes" json:"minutes"`
	Enjoyment  string `form:"enjoyment" json:"enjoyment"`
	Reflection string `form:"reflection" json:"reflection"`
}

type ActivityEntry struct {
	ActivityName string   `json:"activity_name"`
	Duration     string   `json:"duration"`
	Enjoyment    *float64 `json:"enjoyment,omitempty"`
	Reflection   string   `json:"reflection"`
}

func (s *ActivityService) Log(userID uint, in ActivityInput) error {
	name, err := NormalizeActivityName(in.Name)
	if err != nil {
		return err
	}
	total, err := ParseTotalMinutes(in.Hours, in.Minutes)
	if err != nil {
		return err
	}
	enjoyment, err := ParseEnjoyment(in.Enjoyment)
	if err != nil {
		return err
	}

	reflection := strings.TrimSpace(in.Reflection)
	if reflection == "" {
		reflection = defaultReflection
	}

	row := models.ActivityLog{
		UserID:       userID,
		ActivityName: name,
		TotalMinutes: total,
		Enjoyment:    enjoyment,
		Reflection:   reflection,
	}
	return s.db.Create(&row).Error
}

// Days returns the user's activity history grouped by calendar day,
// most recent day first.
func (s *ActivityService) Days(userID uint) ([]DayBucket[ActivityEntry], error) {
	var rows []models.ActivityLog
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	return GroupByDay(rows,
		func(r models.ActivityLog) time.Time { return r.CreatedAt },
		func(r models.ActivityLog) ActivityEntry {
			return ActivityEntry{
				ActivityName: r.ActivityName,
				Duration:     utils.FormatMinutes(r.TotalMinutes),
				Enjoyment:    r.Enjoyment,
				Reflection:   r.Reflection,
			}
		}), nil
}
