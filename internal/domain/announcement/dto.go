package announcement

import (
	"time"

	"github.com/desadigital/absensi-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if len(r.Title) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 255 characters",
		})
	}

	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AnnouncementResponse struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Body        string  `json:"body"`
	PublishedAt string  `json:"published_at"`
	AuthorName  *string `json:"author_name,omitempty"`
}

func ToAnnouncementResponse(a Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID,
		Title:       a.Title,
		Body:        a.Body,
		PublishedAt: a.PublishedAt.Format(time.RFC3339),
		AuthorName:  a.AuthorName,
	}
}

type ListAnnouncementsResponse struct {
	Announcements []AnnouncementResponse `json:"announcements"`
	TotalItems    int64                  `json:"-"`
}
