package settings

import (
	"github.com/desadigital/absensi-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	WindowStart       string  `json:"window_start"`
	WindowEnd         string  `json:"window_end"`
	OfficeLatitude    float64 `json:"office_latitude"`
	OfficeLongitude   float64 `json:"office_longitude"`
	MaxDistanceMeters float64 `json:"max_distance_meters"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WindowStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "window_start",
			Message: "window_start is required",
		})
	} else if !validator.IsValidTimeOfDay(r.WindowStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "window_start",
			Message: "window_start must be in HH:MM:SS format",
		})
	}

	if validator.IsEmpty(r.WindowEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "window_end",
			Message: "window_end is required",
		})
	} else if !validator.IsValidTimeOfDay(r.WindowEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "window_end",
			Message: "window_end must be in HH:MM:SS format",
		})
	}

	if !validator.IsEmpty(r.WindowStart) && !validator.IsEmpty(r.WindowEnd) && r.WindowStart == r.WindowEnd {
		errs = append(errs, validator.ValidationError{
			Field:   "window_end",
			Message: "window_end must differ from window_start",
		})
	}

	if !validator.IsValidLatitude(r.OfficeLatitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_latitude",
			Message: "office_latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.OfficeLongitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "office_longitude",
			Message: "office_longitude must be between -180 and 180",
		})
	}

	if r.MaxDistanceMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "max_distance_meters",
			Message: "max_distance_meters must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SettingsResponse struct {
	WindowStart       *string  `json:"window_start"`
	WindowEnd         *string  `json:"window_end"`
	OfficeLatitude    *float64 `json:"office_latitude"`
	OfficeLongitude   *float64 `json:"office_longitude"`
	MaxDistanceMeters *float64 `json:"max_distance_meters"`
	Configured        bool     `json:"configured"`
	UpdatedAt         *string  `json:"updated_at,omitempty"`
}
