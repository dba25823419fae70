package attendance

import "context"

// AttendanceService defines business logic for attendance operations.
type AttendanceService interface {
	// Submit evaluates the authenticated staff member's claim for today and,
	// when allowed, creates or amends the day's record.
	Submit(ctx context.Context, req SubmitRequest) (SubmitResponse, error)

	// GetToday returns the staff member's record for today (if any) together
	// with the current window state, for rendering the submission form.
	GetToday(ctx context.Context) (TodayResponse, error)

	// History lists attendance records for the requested period. Staff see
	// their own rows; the village head sees everyone.
	History(ctx context.Context, req HistoryRequest) (ListAttendanceResponse, error)
}
