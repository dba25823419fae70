package announcement

import "context"

// AnnouncementService defines business logic for announcements.
type AnnouncementService interface {
	// List returns announcements newest first.
	List(ctx context.Context, page, limit int) (ListAnnouncementsResponse, error)

	// Create publishes an announcement (admin only).
	Create(ctx context.Context, req CreateAnnouncementRequest) (AnnouncementResponse, error)

	// Delete removes an announcement (admin only).
	Delete(ctx context.Context, id string) error
}
