package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	// Submission errors
	ErrConfigInvalid    = errors.New("attendance settings are missing or invalid")
	ErrOutsideWindow    = errors.New("the attendance window is closed")
	ErrInvalidStatus    = errors.New("unknown attendance status")
	ErrNoteRequired     = errors.New("a note is required for sick or leave")
	ErrLocationRequired = errors.New("your location is required to report present")

	// General errors
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// OutOfRangeError is returned when a present claim falls outside the office
// geofence. It carries the computed distance so callers can surface it.
type OutOfRangeError struct {
	DistanceMeters float64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("you are outside the allowed radius (distance: %.0f m)", e.DistanceMeters)
}
