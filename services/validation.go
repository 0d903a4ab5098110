package services

import (
	"math"
	"strconv"
	"strings"
)

// ValidationError reports a user-input problem on a single form field.
// Handlers echo the original input back alongside Field and Message so
// nothing the user typed is lost on a failed submit.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ParseTotalMinutes combines the hours and minutes form fields into a
// single positive minute total.
func ParseTotalMinutes(hours, minutes string) (int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(hours))
	if err != nil {
		return 0, &ValidationError{Field: "hours", Message: "not a number"}
	}
	m, err := strconv.Atoi(strings.TrimSpace(minutes))
	if err != nil {
		return 0, &ValidationError{Field: "minutes", Message: "not a number"}
	}

	total := h*60 + m
	if total <= 0 {
		return 0, &ValidationError{Field: "minutes", Message: "zero duration"}
	}
	return total, nil
}

// ParseEnjoyment parses the optional enjoyment rating. Empty input means
// the field was left blank and returns nil, which is distinct from zero.
// Accepted values lie in [0, 10] and are rounded to one decimal place.
func ParseEnjoyment(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, &ValidationError{Field: "enjoyment", Message: "not a number"}
	}
	if v < 0 || v > 10 {
		return nil, &ValidationError{Field: "enjoyment", Message: "out of range"}
	}

	v = math.Round(v*10) / 10
	return &v, nil
}

// NormalizeActivityName trims and lowercases the activity name.
func NormalizeActivityName(raw string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	if name == "" {
		return "", &ValidationError{Field: "name", Message: "missing name"}
	}
	return name, nil
}
