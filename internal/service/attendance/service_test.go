package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/desadigital/absensi-backend-go/internal/domain/attendance"
	"github.com/desadigital/absensi-backend-go/internal/domain/settings"
	"github.com/desadigital/absensi-backend-go/internal/domain/user"
	"github.com/desadigital/absensi-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	records map[string]attendance.Attendance // keyed by staffID + date
	listed  []attendance.Attendance
	filter  *attendance.HistoryFilter
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]attendance.Attendance)}
}

func recordKey(staffID string, date time.Time) string {
	return staffID + "|" + date.Format("2006-01-02")
}

func (f *fakeAttendanceRepo) GetByStaffAndDate(_ context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	rec, ok := f.records[recordKey(staffID, date)]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	key := recordKey(att.StaffID, att.Date)
	if existing, ok := f.records[key]; ok {
		att.ID = existing.ID
		att.CreatedAt = existing.CreatedAt
	} else if att.ID == "" {
		att.ID = "att-" + key
		att.CreatedAt = att.SubmittedAt
	}
	att.UpdatedAt = att.SubmittedAt
	f.records[key] = att
	return att, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	f.filter = &filter
	return f.listed, int64(len(f.listed)), nil
}

type fakeSettingsRepo struct {
	settings *settings.Settings
}

func (f *fakeSettingsRepo) Get(_ context.Context) (settings.Settings, error) {
	if f.settings == nil {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	return *f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, s settings.Settings) (settings.Settings, error) {
	f.settings = &s
	return s, nil
}

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

func configuredSettings() *settings.Settings {
	return &settings.Settings{
		WindowStart:       strPtr("07:00:00"),
		WindowEnd:         strPtr("16:00:00"),
		OfficeLatitude:    f64Ptr(0),
		OfficeLongitude:   f64Ptr(0),
		MaxDistanceMeters: f64Ptr(200),
	}
}

func authedContext(t *testing.T, userID string, role user.Role) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id": userID,
		"role":    string(role),
		"type":    "access",
	})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(attRepo *fakeAttendanceRepo, setRepo *fakeSettingsRepo, now time.Time) attendance.AttendanceService {
	return NewAttendanceService(attRepo, setRepo, clock.Func(func() time.Time { return now }), time.UTC)
}

func TestSubmit_CreatesRecord(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	now := time.Date(2026, time.March, 10, 8, 30, 0, 0, time.UTC)
	svc := newTestService(attRepo, setRepo, now)

	ctx := authedContext(t, "staff-1", user.RoleStaff)
	resp, err := svc.Submit(ctx, attendance.SubmitRequest{
		Status:    string(attendance.StatusPresent),
		Latitude:  f64Ptr(0),
		Longitude: f64Ptr(0.0005),
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.ActionCreate), resp.Action)
	require.NotNil(t, resp.DistanceMeters)
	assert.InDelta(t, 55, *resp.DistanceMeters, 2)
	assert.Equal(t, "2026-03-10", resp.Attendance.Date)
	assert.Len(t, attRepo.records, 1)
}

func TestSubmit_SecondSubmissionAmends(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	morning := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

	ctx := authedContext(t, "staff-1", user.RoleStaff)
	first, err := newTestService(attRepo, setRepo, morning).Submit(ctx, attendance.SubmitRequest{
		Status:    string(attendance.StatusPresent),
		Latitude:  f64Ptr(0),
		Longitude: f64Ptr(0),
	})
	require.NoError(t, err)
	require.Equal(t, string(attendance.ActionCreate), first.Action)

	// Later the same day, still inside the window, switch to sick.
	later := morning.Add(3 * time.Hour)
	second, err := newTestService(attRepo, setRepo, later).Submit(ctx, attendance.SubmitRequest{
		Status: string(attendance.StatusSick),
		Note:   "came down with a fever",
	})
	require.NoError(t, err)

	assert.Equal(t, string(attendance.ActionAmend), second.Action)
	assert.Equal(t, first.Attendance.ID, second.Attendance.ID)
	assert.Len(t, attRepo.records, 1)

	saved := attRepo.records[recordKey("staff-1", time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC))]
	assert.Equal(t, attendance.StatusSick, saved.Status)
	assert.Equal(t, later, saved.SubmittedAt)
}

func TestSubmit_OutsideWindow(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	evening := time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, setRepo, evening)

	ctx := authedContext(t, "staff-1", user.RoleStaff)
	_, err := svc.Submit(ctx, attendance.SubmitRequest{
		Status:    string(attendance.StatusPresent),
		Latitude:  f64Ptr(0),
		Longitude: f64Ptr(0),
	})
	assert.ErrorIs(t, err, attendance.ErrOutsideWindow)
	assert.Empty(t, attRepo.records)
}

func TestSubmit_UnconfiguredOffice(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{}
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, setRepo, now)

	ctx := authedContext(t, "staff-1", user.RoleStaff)
	_, err := svc.Submit(ctx, attendance.SubmitRequest{
		Status:    string(attendance.StatusPresent),
		Latitude:  f64Ptr(0),
		Longitude: f64Ptr(0),
	})
	assert.ErrorIs(t, err, attendance.ErrConfigInvalid)
}

func TestSubmit_DayKeyUsesOfficeTimezone(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Makassar")
	require.NoError(t, err)

	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	// 23:30 UTC on March 9 is already 07:30 on March 10 in Makassar.
	now := time.Date(2026, time.March, 9, 23, 30, 0, 0, time.UTC)
	svc := NewAttendanceService(attRepo, setRepo, clock.Func(func() time.Time { return now }), loc)

	ctx := authedContext(t, "staff-1", user.RoleStaff)
	resp, err := svc.Submit(ctx, attendance.SubmitRequest{
		Status:    string(attendance.StatusPresent),
		Latitude:  f64Ptr(0),
		Longitude: f64Ptr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", resp.Attendance.Date)
}

func TestSubmit_MissingIdentity(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	now := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, setRepo, now)

	_, err := svc.Submit(context.Background(), attendance.SubmitRequest{
		Status:    string(attendance.StatusPresent),
		Latitude:  f64Ptr(0),
		Longitude: f64Ptr(0),
	})
	assert.Error(t, err)
}

func TestGetToday(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, setRepo, now)
	ctx := authedContext(t, "staff-1", user.RoleStaff)

	resp, err := svc.GetToday(ctx)
	require.NoError(t, err)
	assert.True(t, resp.WindowOpen)
	assert.False(t, resp.CanAmend)
	assert.Nil(t, resp.Attendance)

	_, err = svc.Submit(ctx, attendance.SubmitRequest{
		Status:    string(attendance.StatusPresent),
		Latitude:  f64Ptr(0),
		Longitude: f64Ptr(0),
	})
	require.NoError(t, err)

	resp, err = svc.GetToday(ctx)
	require.NoError(t, err)
	assert.True(t, resp.CanAmend)
	require.NotNil(t, resp.Attendance)
	assert.Equal(t, string(attendance.StatusPresent), resp.Attendance.Status)
}

func TestGetToday_ClosedWindow(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	evening := time.Date(2026, time.March, 10, 20, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, setRepo, evening)

	resp, err := svc.GetToday(authedContext(t, "staff-1", user.RoleStaff))
	require.NoError(t, err)
	assert.False(t, resp.WindowOpen)
	assert.False(t, resp.CanAmend)
}

func TestHistory_StaffSeeOnlyThemselves(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	now := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC) // a Wednesday
	svc := newTestService(attRepo, setRepo, now)

	_, err := svc.History(authedContext(t, "staff-1", user.RoleStaff), attendance.HistoryRequest{
		Period: string(attendance.PeriodWeek),
		Page:   1,
		Limit:  10,
	})
	require.NoError(t, err)

	require.NotNil(t, attRepo.filter)
	require.NotNil(t, attRepo.filter.StaffID)
	assert.Equal(t, "staff-1", *attRepo.filter.StaffID)

	// The week window starts on Monday March 9 and ends before Monday March 16.
	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), attRepo.filter.From)
	assert.Equal(t, time.Date(2026, time.March, 16, 0, 0, 0, 0, time.UTC), attRepo.filter.To)
}

func TestHistory_AdminSeesEveryone(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	now := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, setRepo, now)

	_, err := svc.History(authedContext(t, "admin-1", user.RoleAdmin), attendance.HistoryRequest{
		Period: string(attendance.PeriodMonth),
		Page:   1,
		Limit:  10,
	})
	require.NoError(t, err)

	require.NotNil(t, attRepo.filter)
	assert.Nil(t, attRepo.filter.StaffID)
	assert.Equal(t, time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC), attRepo.filter.From)
	assert.Equal(t, time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC), attRepo.filter.To)
}

func TestHistory_InvalidPeriod(t *testing.T) {
	attRepo := newFakeAttendanceRepo()
	setRepo := &fakeSettingsRepo{settings: configuredSettings()}
	now := time.Date(2026, time.March, 11, 9, 0, 0, 0, time.UTC)
	svc := newTestService(attRepo, setRepo, now)

	_, err := svc.History(authedContext(t, "staff-1", user.RoleStaff), attendance.HistoryRequest{
		Period: "year",
	})
	assert.Error(t, err)
}
