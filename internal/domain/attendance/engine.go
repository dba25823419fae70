package attendance

import (
	"math"
	"strings"
	"time"

	"github.com/desadigital/absensi-backend-go/internal/domain/settings"
	"github.com/desadigital/absensi-backend-go/internal/pkg/geo"
)

// Coordinates is a point claimed by the staff member at submission time.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Claim is the staff member's asserted status for today, prior to validation.
type Claim struct {
	Status   Status
	Note     string
	Location *Coordinates
}

type Action string

const (
	ActionCreate Action = "CREATE"
	ActionAmend  Action = "AMEND"
)

// EvaluationContext carries everything one evaluation needs. It is built once
// per submission by the service layer; in particular Date is the day key
// computed from Now exactly once, so the record looked up and the record
// written always belong to the same working day.
type EvaluationContext struct {
	Now      time.Time
	Date     time.Time
	StaffID  string
	Settings *settings.Settings
	Existing *Attendance
	Claim    Claim
}

// Decision is the engine's verdict on a submission that passed every check.
// Record is the row to persist: on ActionAmend it keeps the existing record's
// identity, on ActionCreate the store assigns one. DistanceMeters is set for
// present claims so callers can display it.
type Decision struct {
	Action         Action
	Record         Attendance
	DistanceMeters *float64
}

// Evaluate decides whether the claimed submission is allowed and whether it
// creates today's record or amends it. Checks run in a fixed order: settings,
// window, claim shape, geofence. It performs no I/O.
func Evaluate(ec EvaluationContext) (Decision, error) {
	start, end, err := windowFromSettings(ec.Settings)
	if err != nil {
		return Decision{}, err
	}

	// The window gates amends too: once it closes, the day's record is
	// read-only until the next day starts a fresh identity.
	if !WithinWindow(ec.Now, start, end) {
		return Decision{}, ErrOutsideWindow
	}

	if !ec.Claim.Status.Valid() {
		return Decision{}, ErrInvalidStatus
	}

	if ec.Claim.Status.RequiresNote() && strings.TrimSpace(ec.Claim.Note) == "" {
		return Decision{}, ErrNoteRequired
	}

	var distance *float64
	if ec.Claim.Status.RequiresLocation() {
		loc := ec.Claim.Location
		if loc == nil || !isFinite(loc.Latitude) || !isFinite(loc.Longitude) {
			return Decision{}, ErrLocationRequired
		}

		d := geo.DistanceMeters(loc.Latitude, loc.Longitude, *ec.Settings.OfficeLatitude, *ec.Settings.OfficeLongitude)
		if math.IsNaN(d) {
			return Decision{}, ErrLocationRequired
		}
		if d > *ec.Settings.MaxDistanceMeters {
			return Decision{}, &OutOfRangeError{DistanceMeters: d}
		}
		distance = &d
	}

	record := Attendance{
		StaffID:     ec.StaffID,
		Date:        ec.Date,
		Status:      ec.Claim.Status,
		SubmittedAt: ec.Now,
	}
	if note := strings.TrimSpace(ec.Claim.Note); note != "" {
		record.Note = &note
	}
	if loc := ec.Claim.Location; loc != nil {
		record.Latitude = &loc.Latitude
		record.Longitude = &loc.Longitude
	}

	action := ActionCreate
	if ec.Existing != nil {
		action = ActionAmend
		record.ID = ec.Existing.ID
		record.CreatedAt = ec.Existing.CreatedAt
	}

	return Decision{Action: action, Record: record, DistanceMeters: distance}, nil
}

// WindowOpen reports whether submissions are currently accepted under s.
// False for incomplete or ambiguous configurations.
func WindowOpen(s *settings.Settings, now time.Time) bool {
	start, end, err := windowFromSettings(s)
	if err != nil {
		return false
	}
	return WithinWindow(now, start, end)
}

func windowFromSettings(s *settings.Settings) (start, end TimeOfDay, err error) {
	if s == nil || !s.Complete() {
		return TimeOfDay{}, TimeOfDay{}, ErrConfigInvalid
	}
	if !isFinite(*s.OfficeLatitude) || !isFinite(*s.OfficeLongitude) ||
		!isFinite(*s.MaxDistanceMeters) || *s.MaxDistanceMeters < 0 {
		return TimeOfDay{}, TimeOfDay{}, ErrConfigInvalid
	}

	start, err = ParseTimeOfDay(*s.WindowStart)
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, ErrConfigInvalid
	}
	end, err = ParseTimeOfDay(*s.WindowEnd)
	if err != nil {
		return TimeOfDay{}, TimeOfDay{}, ErrConfigInvalid
	}

	// Equal start and end could mean "all day" or "never"; the admin screen
	// rejects it and the engine refuses to guess.
	if start == end {
		return TimeOfDay{}, TimeOfDay{}, ErrConfigInvalid
	}

	return start, end, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
