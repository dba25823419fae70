package settings

import "time"

// Settings is the single office-wide attendance configuration row. Fields are
// pointers because the office may not be fully configured yet; the attendance
// engine refuses every submission until all five values are present.
type Settings struct {
	WindowStart       *string // "HH:MM:SS", office-local
	WindowEnd         *string // "HH:MM:SS"; may sort before WindowStart (wraps past midnight)
	OfficeLatitude    *float64
	OfficeLongitude   *float64
	MaxDistanceMeters *float64
	UpdatedBy         *string
	UpdatedAt         time.Time
}

// Complete reports whether every field the attendance engine needs is set.
func (s Settings) Complete() bool {
	return s.WindowStart != nil &&
		s.WindowEnd != nil &&
		s.OfficeLatitude != nil &&
		s.OfficeLongitude != nil &&
		s.MaxDistanceMeters != nil
}
