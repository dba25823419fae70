package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. Records
// are keyed by (staff_id, date); date is midnight of the working day in the
// office timezone and must be the exact value the service computed for the
// evaluation, never re-derived.
type AttendanceRepository interface {
	// GetByStaffAndDate returns the record for one staff member on one
	// working day, or nil when none exists yet.
	GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*Attendance, error)

	// Upsert writes the record, keyed on (staff_id, date). The write is
	// atomic per key: concurrent submissions for the same day resolve to a
	// single row, last writer winning on submitted_at.
	Upsert(ctx context.Context, att Attendance) (Attendance, error)

	// List returns records matching the filter with staff names joined,
	// newest first, plus the unpaginated total.
	List(ctx context.Context, filter HistoryFilter) ([]Attendance, int64, error)
}
