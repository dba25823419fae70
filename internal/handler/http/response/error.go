package response

import (
	"errors"
	"net/http"

	"github.com/desadigital/absensi-backend-go/internal/domain/announcement"
	"github.com/desadigital/absensi-backend-go/internal/domain/attendance"
	"github.com/desadigital/absensi-backend-go/internal/domain/auth"
	"github.com/desadigital/absensi-backend-go/internal/domain/settings"
	"github.com/desadigital/absensi-backend-go/internal/domain/user"
	"github.com/desadigital/absensi-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var outOfRange *attendance.OutOfRangeError
	if errors.As(err, &outOfRange) {
		BadRequest(w, outOfRange.Error(), nil)
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrConfigInvalid):
		ServiceUnavailable(w, "Attendance settings are not configured, contact the administrator")
	case errors.Is(err, attendance.ErrOutsideWindow):
		Conflict(w, "Attendance is closed outside the configured hours")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Unknown attendance status", nil)
	case errors.Is(err, attendance.ErrNoteRequired):
		BadRequest(w, "A note is required for this status", nil)
	case errors.Is(err, attendance.ErrLocationRequired):
		BadRequest(w, "Location is required to check in as present", nil)

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Attendance settings have not been configured")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrResetTokenInvalid):
		BadRequest(w, "Reset link is invalid or has expired", nil)

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrPositionTaken):
		Conflict(w, "Position already assigned to another staff member")
	case errors.Is(err, user.ErrWrongPassword):
		BadRequest(w, "Current password is incorrect", nil)
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Administrator privilege required")

	// Announcement domain errors
	case errors.Is(err, announcement.ErrAnnouncementNotFound):
		NotFound(w, "Announcement not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
