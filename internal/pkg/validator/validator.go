package validator

import (
	"regexp"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// Time-of-day validation (HH:MM:SS, 24-hour)
func IsValidTimeOfDay(s string) bool {
	_, err := time.Parse("15:04:05", s)
	return err == nil
}

var (
	hasLetterRegex = regexp.MustCompile(`[A-Za-z]`)
	hasDigitRegex  = regexp.MustCompile(`[0-9]`)
)

// IsStrongPassword requires at least 8 characters containing both letters
// and digits.
func IsStrongPassword(password string) bool {
	return len(password) >= 8 &&
		hasLetterRegex.MatchString(password) &&
		hasDigitRegex.MatchString(password)
}

// Latitude / longitude range checks (decimal degrees)
func IsValidLatitude(lat float64) bool {
	return lat >= -90 && lat <= 90
}

func IsValidLongitude(lon float64) bool {
	return lon >= -180 && lon <= 180
}
