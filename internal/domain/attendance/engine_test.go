package attendance

import (
	"math"
	"testing"
	"time"

	"github.com/desadigital/absensi-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func f64Ptr(f float64) *float64 { return &f }

// testSettings returns a fully configured office: open 07:00-16:00, located
// at the equator/prime-meridian crossing, 200 m radius.
func testSettings() *settings.Settings {
	return &settings.Settings{
		WindowStart:       strPtr("07:00:00"),
		WindowEnd:         strPtr("16:00:00"),
		OfficeLatitude:    f64Ptr(0),
		OfficeLongitude:   f64Ptr(0),
		MaxDistanceMeters: f64Ptr(200),
	}
}

func testEvalContext(s *settings.Settings) EvaluationContext {
	now := time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)
	return EvaluationContext{
		Now:      now,
		Date:     time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		StaffID:  "staff-1",
		Settings: s,
		Claim: Claim{
			Status:   StatusPresent,
			Location: &Coordinates{Latitude: 0, Longitude: 0},
		},
	}
}

func TestEvaluate_ConfigInvalid(t *testing.T) {
	cases := []struct {
		name string
		muck func(s *settings.Settings)
	}{
		{"nil settings", nil},
		{"missing window start", func(s *settings.Settings) { s.WindowStart = nil }},
		{"missing office latitude", func(s *settings.Settings) { s.OfficeLatitude = nil }},
		{"missing max distance", func(s *settings.Settings) { s.MaxDistanceMeters = nil }},
		{"unparseable window end", func(s *settings.Settings) { s.WindowEnd = strPtr("4pm") }},
		{"negative max distance", func(s *settings.Settings) { s.MaxDistanceMeters = f64Ptr(-1) }},
		{"non-finite latitude", func(s *settings.Settings) { s.OfficeLatitude = f64Ptr(math.NaN()) }},
		{"equal start and end", func(s *settings.Settings) {
			s.WindowStart = strPtr("08:00:00")
			s.WindowEnd = strPtr("08:00:00")
		}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := testSettings()
			if c.muck == nil {
				s = nil
			} else {
				c.muck(s)
			}
			_, err := Evaluate(testEvalContext(s))
			assert.ErrorIs(t, err, ErrConfigInvalid)
		})
	}
}

func TestEvaluate_OutsideWindow(t *testing.T) {
	ec := testEvalContext(testSettings())
	ec.Now = time.Date(2026, time.March, 10, 17, 30, 0, 0, time.UTC)

	_, err := Evaluate(ec)
	assert.ErrorIs(t, err, ErrOutsideWindow)
}

func TestEvaluate_OutsideWindowBlocksAmendToo(t *testing.T) {
	// An existing record does not reopen a closed window.
	ec := testEvalContext(testSettings())
	ec.Now = time.Date(2026, time.March, 10, 18, 0, 0, 0, time.UTC)
	ec.Existing = &Attendance{ID: "att-1", StaffID: "staff-1", Status: StatusPresent}

	_, err := Evaluate(ec)
	assert.ErrorIs(t, err, ErrOutsideWindow)
}

func TestEvaluate_InvalidStatus(t *testing.T) {
	ec := testEvalContext(testSettings())
	ec.Claim = Claim{Status: Status("HOLIDAY")}

	_, err := Evaluate(ec)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestEvaluate_NoteRequiredForSickAndLeave(t *testing.T) {
	for _, status := range []Status{StatusSick, StatusLeave} {
		ec := testEvalContext(testSettings())
		ec.Claim = Claim{Status: status, Note: "   "}

		_, err := Evaluate(ec)
		assert.ErrorIs(t, err, ErrNoteRequired, "status %s", status)
	}
}

func TestEvaluate_SickWithNoteSkipsGeofence(t *testing.T) {
	// Sick from home, far outside the radius, no coordinates at all.
	ec := testEvalContext(testSettings())
	ec.Claim = Claim{Status: StatusSick, Note: "flu, resting at home"}

	decision, err := Evaluate(ec)
	require.NoError(t, err)
	assert.Equal(t, ActionCreate, decision.Action)
	assert.Nil(t, decision.DistanceMeters)
	assert.Nil(t, decision.Record.Latitude)
	require.NotNil(t, decision.Record.Note)
	assert.Equal(t, "flu, resting at home", *decision.Record.Note)
}

func TestEvaluate_LocationRequired(t *testing.T) {
	ec := testEvalContext(testSettings())
	ec.Claim = Claim{Status: StatusPresent}

	_, err := Evaluate(ec)
	assert.ErrorIs(t, err, ErrLocationRequired)

	ec.Claim.Location = &Coordinates{Latitude: math.NaN(), Longitude: 0}
	_, err = Evaluate(ec)
	assert.ErrorIs(t, err, ErrLocationRequired)
}

func TestEvaluate_OutOfRange(t *testing.T) {
	// 0.001 degrees of longitude at the equator is roughly 111 m, past the
	// 100 m limit set here.
	s := testSettings()
	s.MaxDistanceMeters = f64Ptr(100)
	ec := testEvalContext(s)
	ec.Claim.Location = &Coordinates{Latitude: 0, Longitude: 0.001}

	_, err := Evaluate(ec)
	var outOfRange *OutOfRangeError
	require.ErrorAs(t, err, &outOfRange)
	assert.InDelta(t, 111, outOfRange.DistanceMeters, 2)
}

func TestEvaluate_CreateWithinRange(t *testing.T) {
	s := testSettings()
	s.MaxDistanceMeters = f64Ptr(100)
	ec := testEvalContext(s)
	ec.Claim.Location = &Coordinates{Latitude: 0, Longitude: 0.0005}

	decision, err := Evaluate(ec)
	require.NoError(t, err)
	assert.Equal(t, ActionCreate, decision.Action)
	require.NotNil(t, decision.DistanceMeters)
	assert.InDelta(t, 55, *decision.DistanceMeters, 2)
	assert.Equal(t, "staff-1", decision.Record.StaffID)
	assert.Equal(t, ec.Date, decision.Record.Date)
	assert.Equal(t, ec.Now, decision.Record.SubmittedAt)
	assert.Empty(t, decision.Record.ID)
}

func TestEvaluate_AmendKeepsIdentity(t *testing.T) {
	createdAt := time.Date(2026, time.March, 10, 7, 5, 0, 0, time.UTC)
	ec := testEvalContext(testSettings())
	ec.Existing = &Attendance{
		ID:          "att-1",
		StaffID:     "staff-1",
		Date:        ec.Date,
		Status:      StatusPresent,
		SubmittedAt: createdAt,
		CreatedAt:   createdAt,
	}
	ec.Claim = Claim{Status: StatusLeave, Note: "family matter in town"}

	decision, err := Evaluate(ec)
	require.NoError(t, err)
	assert.Equal(t, ActionAmend, decision.Action)
	assert.Equal(t, "att-1", decision.Record.ID)
	assert.Equal(t, createdAt, decision.Record.CreatedAt)
	assert.Equal(t, StatusLeave, decision.Record.Status)
	// SubmittedAt restamps on amend.
	assert.Equal(t, ec.Now, decision.Record.SubmittedAt)
	// The amended record carries only the new claim's fields.
	assert.Nil(t, decision.Record.Latitude)
	assert.Nil(t, decision.Record.Longitude)
}

func TestEvaluate_WrapWindowAcceptsEarlyMorning(t *testing.T) {
	s := testSettings()
	s.WindowStart = strPtr("22:00:00")
	s.WindowEnd = strPtr("02:00:00")
	ec := testEvalContext(s)
	ec.Now = time.Date(2026, time.March, 11, 1, 0, 0, 0, time.UTC)
	ec.Date = time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC)

	decision, err := Evaluate(ec)
	require.NoError(t, err)
	assert.Equal(t, ActionCreate, decision.Action)
}

func TestWindowOpen(t *testing.T) {
	s := testSettings()
	assert.True(t, WindowOpen(s, time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)))
	assert.False(t, WindowOpen(s, time.Date(2026, time.March, 10, 17, 0, 0, 0, time.UTC)))
	assert.False(t, WindowOpen(nil, time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)))
	s.WindowEnd = nil
	assert.False(t, WindowOpen(s, time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)))
}
