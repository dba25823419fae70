package announcement

import "context"

// AnnouncementRepository defines data access methods for announcements.
type AnnouncementRepository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	List(ctx context.Context, page, limit int) ([]Announcement, int64, error)
	Delete(ctx context.Context, id string) error
}
