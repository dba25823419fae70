package attendance

import (
	"time"

	"github.com/desadigital/absensi-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type SubmitRequest struct {
	Status    string   `json:"status"`
	Note      string   `json:"note"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of PRESENT, SICK, LEAVE",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude and longitude must be supplied together",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Claim converts the validated request into the engine's claim shape.
func (r *SubmitRequest) Claim() Claim {
	c := Claim{
		Status: Status(r.Status),
		Note:   r.Note,
	}
	if r.Latitude != nil && r.Longitude != nil {
		c.Location = &Coordinates{Latitude: *r.Latitude, Longitude: *r.Longitude}
	}
	return c
}

type AttendanceResponse struct {
	ID            string   `json:"id"`
	StaffID       string   `json:"staff_id"`
	StaffName     *string  `json:"staff_name,omitempty"`
	StaffPosition *string  `json:"staff_position,omitempty"`
	Date          string   `json:"date"`
	Status        string   `json:"status"`
	Note          *string  `json:"note,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	SubmittedAt   string   `json:"submitted_at"`
}

func ToAttendanceResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:            a.ID,
		StaffID:       a.StaffID,
		StaffName:     a.StaffName,
		StaffPosition: a.StaffPosition,
		Date:          a.Date.Format("2006-01-02"),
		Status:        string(a.Status),
		Note:          a.Note,
		Latitude:      a.Latitude,
		Longitude:     a.Longitude,
		SubmittedAt:   a.SubmittedAt.Format(time.RFC3339),
	}
}

type SubmitResponse struct {
	Action         string             `json:"action"`
	DistanceMeters *float64           `json:"distance_meters,omitempty"`
	Attendance     AttendanceResponse `json:"attendance"`
}

// TodayResponse drives the submission form: the current record if one exists,
// and whether the window currently accepts a create or amend.
type TodayResponse struct {
	Attendance *AttendanceResponse `json:"attendance"`
	WindowOpen bool                `json:"window_open"`
	CanAmend   bool                `json:"can_amend"`
}

type HistoryPeriod string

const (
	PeriodDay   HistoryPeriod = "day"
	PeriodWeek  HistoryPeriod = "week"
	PeriodMonth HistoryPeriod = "month"
)

type HistoryRequest struct {
	Period string
	Page   int
	Limit  int
}

func (r *HistoryRequest) Validate() error {
	var errs validator.ValidationErrors

	switch HistoryPeriod(r.Period) {
	case PeriodDay, PeriodWeek, PeriodMonth:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be one of day, week, month",
		})
	}

	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 || r.Limit > 100 {
		r.Limit = 10
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HistoryFilter is the repository-level shape of a history query. StaffID nil
// means all staff (admin view).
type HistoryFilter struct {
	StaffID *string
	From    time.Time
	To      time.Time
	Page    int
	Limit   int
}

type ListAttendanceResponse struct {
	Attendances []AttendanceResponse `json:"attendances"`
	TotalItems  int64                `json:"-"`
}
