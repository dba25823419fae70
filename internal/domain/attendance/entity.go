package attendance

import "time"

type Status string

const (
	StatusPresent Status = "PRESENT"
	StatusSick    Status = "SICK"
	StatusLeave   Status = "LEAVE"
)

// Valid reports whether s is one of the three accepted claim statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusSick, StatusLeave:
		return true
	}
	return false
}

// RequiresNote reports whether a claim of this status must carry a note.
func (s Status) RequiresNote() bool {
	return s == StatusSick || s == StatusLeave
}

// RequiresLocation reports whether a claim of this status must carry
// coordinates to be checked against the office geofence.
func (s Status) RequiresLocation() bool {
	return s == StatusPresent
}

// Attendance is one staff member's record for one calendar day, keyed by
// (StaffID, Date). Date is midnight of the working day in the office
// timezone. SubmittedAt restamps on every amend.
type Attendance struct {
	ID          string
	StaffID     string
	Date        time.Time
	Status      Status
	Note        *string
	Latitude    *float64
	Longitude   *float64
	SubmittedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	StaffName     *string
	StaffPosition *string
}
