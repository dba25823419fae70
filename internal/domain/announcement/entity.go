package announcement

import "time"

type Announcement struct {
	ID          string
	Title       string
	Body        string
	PublishedAt time.Time
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// DTO / Join
	AuthorName *string
}
