package services

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"bloom/models"

	"gorm.io/gorm"
)

// Vibe assigned to moods a user coins themselves via free text.
const personalVibe = "personal"

type MoodService struct{ db *gorm.DB }

func NewMoodService(db *gorm.DB) *MoodService { return &MoodService{db: db} }

type MoodInput struct {
	CustomMood string `form:"custom_mood" json:"custom_mood"`
	MoodSelect string `form:"mood_select" json:"mood_select"`
	Cause      string `form:"cause" json:"cause"`
}

type MoodEntry struct {
	Time  string `json:"time"`
	Mood  string `json:"mood"`
	Cause string `json:"cause"`
}

// Log resolves the submitted mood to a vocabulary entry and records it.
// A non-empty custom mood wins over the dropdown selection and is added
// to the user's personal vocabulary if novel. Both writes share one
// transaction so a new vocabulary row never outlives a failed log insert.
func (s *MoodService) Log(userID uint, in MoodInput) error {
	label := strings.ToLower(strings.TrimSpace(in.CustomMood))
	custom := label != ""
	if !custom {
		label = strings.TrimSpace(in.MoodSelect)
	}
	if label == "" {
		return &ValidationError{Field: "mood", Message: "missing mood"}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if custom {
			if err := upsertMood(tx, userID, label, personalVibe); err != nil {
				return err
			}
		}

		mood, err := resolveMood(tx, userID, label)
		if err != nil {
			return err
		}

		return tx.Create(&models.MoodLog{
			UserID: userID,
			MoodID: mood.ID,
			Cause:  strings.TrimSpace(in.Cause),
		}).Error
	})
}

// upsertMood adds a mood to the user's private vocabulary. Inserting a
// label the user already has is a no-op.
func upsertMood(tx *gorm.DB, userID uint, label, vibe string) error {
	row := models.Mood{UserID: &userID, Mood: label, Vibe: vibe}
	return tx.Where("user_id = ? AND mood = ?", userID, label).
		FirstOrCreate(&row).Error
}

// resolveMood finds the vocabulary entry for a label among the rows
// visible to the user. When a private and a global entry share the label,
// the private one wins; the CASE ordering makes that explicit instead of
// leaning on driver-specific NULL sorting.
func resolveMood(tx *gorm.DB, userID uint, label string) (*models.Mood, error) {
	var mood models.Mood
	err := tx.
		Where("mood = ? AND (user_id = ? OR user_id IS NULL)", label, userID).
		Order("CASE WHEN user_id IS NULL THEN 1 ELSE 0 END").
		First(&mood).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Upstream validation guarantees the label exists, so this is
			// an invariant failure, not user error.
			return nil, fmt.Errorf("mood %q missing from vocabulary", label)
		}
		return nil, err
	}
	return &mood, nil
}

// Options returns the selectable vocabulary for the user: vibe mapped to
// its mood labels, labels sorted. JSON object keys serialize sorted, so
// the vibe ordering is alphabetical as well.
func (s *MoodService) Options(userID uint) (map[string][]string, error) {
	var rows []models.Mood
	if err := s.db.
		Where("user_id = ? OR user_id IS NULL", userID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make(map[string][]string)
	for _, m := range rows {
		out[m.Vibe] = append(out[m.Vibe], m.Mood)
	}
	for _, labels := range out {
		sort.Strings(labels)
	}
	return out, nil
}

// Days returns the user's mood history grouped by calendar day. Entries
// carry the time of day the mood was logged plus the resolved label.
func (s *MoodService) Days(userID uint) ([]DayBucket[MoodEntry], error) {
	type moodRow struct {
		CreatedAt time.Time
		Mood      string
		Cause     string
	}

	var rows []moodRow
	if err := s.db.
		Model(&models.MoodLog{}).
		Select("mood_logs.created_at, moods.mood, mood_logs.cause").
		Joins("JOIN moods ON moods.id = mood_logs.mood_id").
		Where("mood_logs.user_id = ?", userID).
		Order("mood_logs.created_at DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	return GroupByDay(rows,
		func(r moodRow) time.Time { return r.CreatedAt },
		func(r moodRow) MoodEntry {
			return MoodEntry{
				Time:  r.CreatedAt.Format("3:04 PM"),
				Mood:  r.Mood,
				Cause: r.Cause,
			}
		}), nil
}
