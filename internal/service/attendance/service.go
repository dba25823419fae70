package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/desadigital/absensi-backend-go/internal/domain/attendance"
	"github.com/desadigital/absensi-backend-go/internal/domain/settings"
	"github.com/desadigital/absensi-backend-go/internal/domain/user"
	"github.com/desadigital/absensi-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
)

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	settings.SettingsRepository
	clock clock.Clock
	loc   *time.Location
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	settingsRepo settings.SettingsRepository,
	clk clock.Clock,
	loc *time.Location,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepo,
		SettingsRepository:   settingsRepo,
		clock:                clk,
		loc:                  loc,
	}
}

func identityFromContext(ctx context.Context) (staffID string, role user.Role, err error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	staffID, ok := claims["user_id"].(string)
	if !ok || staffID == "" {
		return "", "", fmt.Errorf("user_id claim is missing or invalid")
	}

	roleStr, ok := claims["role"].(string)
	if !ok || roleStr == "" {
		return "", "", fmt.Errorf("role claim is missing or invalid")
	}

	return staffID, user.Role(roleStr), nil
}

// dayKey is midnight of now's calendar day in the office timezone. Computed
// exactly once per request and threaded through both the lookup and the
// upsert, so a submission near midnight cannot read one day and write another.
func (s *AttendanceServiceImpl) dayKey(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

// currentSettings returns the settings snapshot, or nil when the office has
// never been configured. Infrastructure failures propagate.
func (s *AttendanceServiceImpl) currentSettings(ctx context.Context) (*settings.Settings, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load attendance settings: %w", err)
	}
	return &cfg, nil
}

// Submit implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, req attendance.SubmitRequest) (attendance.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitResponse{}, err
	}

	staffID, _, err := identityFromContext(ctx)
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	now := s.clock.Now().In(s.loc)
	day := s.dayKey(now)

	cfg, err := s.currentSettings(ctx)
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	existing, err := s.AttendanceRepository.GetByStaffAndDate(ctx, staffID, day)
	if err != nil {
		return attendance.SubmitResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	decision, err := attendance.Evaluate(attendance.EvaluationContext{
		Now:      now,
		Date:     day,
		StaffID:  staffID,
		Settings: cfg,
		Existing: existing,
		Claim:    req.Claim(),
	})
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	saved, err := s.AttendanceRepository.Upsert(ctx, decision.Record)
	if err != nil {
		return attendance.SubmitResponse{}, fmt.Errorf("failed to persist attendance: %w", err)
	}

	return attendance.SubmitResponse{
		Action:         string(decision.Action),
		DistanceMeters: decision.DistanceMeters,
		Attendance:     attendance.ToAttendanceResponse(saved),
	}, nil
}

// GetToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) GetToday(ctx context.Context) (attendance.TodayResponse, error) {
	staffID, _, err := identityFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	now := s.clock.Now().In(s.loc)
	day := s.dayKey(now)

	cfg, err := s.currentSettings(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	existing, err := s.AttendanceRepository.GetByStaffAndDate(ctx, staffID, day)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	resp := attendance.TodayResponse{
		WindowOpen: attendance.WindowOpen(cfg, now),
	}
	if existing != nil {
		r := attendance.ToAttendanceResponse(*existing)
		resp.Attendance = &r
	}
	resp.CanAmend = resp.WindowOpen && existing != nil

	return resp, nil
}

// History implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) History(ctx context.Context, req attendance.HistoryRequest) (attendance.ListAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	staffID, role, err := identityFromContext(ctx)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	now := s.clock.Now().In(s.loc)
	from, to := s.periodRange(attendance.HistoryPeriod(req.Period), now)

	filter := attendance.HistoryFilter{
		From:  from,
		To:    to,
		Page:  req.Page,
		Limit: req.Limit,
	}
	// Staff only ever see their own history.
	if role != user.RoleAdmin {
		filter.StaffID = &staffID
	}

	records, total, err := s.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance history: %w", err)
	}

	resp := attendance.ListAttendanceResponse{
		Attendances: make([]attendance.AttendanceResponse, 0, len(records)),
		TotalItems:  total,
	}
	for _, rec := range records {
		resp.Attendances = append(resp.Attendances, attendance.ToAttendanceResponse(rec))
	}

	return resp, nil
}

// periodRange resolves a history period to a half-open [from, to) interval in
// the office timezone. Weeks start on Monday.
func (s *AttendanceServiceImpl) periodRange(period attendance.HistoryPeriod, now time.Time) (time.Time, time.Time) {
	day := s.dayKey(now)

	switch period {
	case attendance.PeriodWeek:
		offset := int(day.Weekday()) - int(time.Monday)
		if offset < 0 {
			offset += 7
		}
		monday := day.AddDate(0, 0, -offset)
		return monday, monday.AddDate(0, 0, 7)
	case attendance.PeriodMonth:
		first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, s.loc)
		return first, first.AddDate(0, 1, 0)
	default:
		return day, day.AddDate(0, 0, 1)
	}
}
