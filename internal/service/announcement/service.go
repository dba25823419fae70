package announcement

import (
	"context"
	"fmt"
	"time"

	"github.com/desadigital/absensi-backend-go/internal/domain/announcement"
	"github.com/desadigital/absensi-backend-go/internal/pkg/clock"
	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
)

type AnnouncementServiceImpl struct {
	announcement.AnnouncementRepository
	clock clock.Clock
}

func NewAnnouncementService(announcementRepo announcement.AnnouncementRepository, clk clock.Clock) announcement.AnnouncementService {
	return &AnnouncementServiceImpl{
		AnnouncementRepository: announcementRepo,
		clock:                  clk,
	}
}

// List implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) List(ctx context.Context, page, limit int) (announcement.ListAnnouncementsResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	items, total, err := s.AnnouncementRepository.List(ctx, page, limit)
	if err != nil {
		return announcement.ListAnnouncementsResponse{}, fmt.Errorf("failed to list announcements: %w", err)
	}

	resp := announcement.ListAnnouncementsResponse{
		Announcements: make([]announcement.AnnouncementResponse, 0, len(items)),
		TotalItems:    total,
	}
	for _, a := range items {
		resp.Announcements = append(resp.Announcements, announcement.ToAnnouncementResponse(a))
	}

	return resp, nil
}

// Create implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	createdBy, ok := claims["user_id"].(string)
	if !ok || createdBy == "" {
		return announcement.AnnouncementResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	a := announcement.Announcement{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Body:        req.Body,
		PublishedAt: s.clock.Now().UTC().Truncate(time.Second),
		CreatedBy:   createdBy,
	}

	created, err := s.AnnouncementRepository.Create(ctx, a)
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return announcement.ToAnnouncementResponse(created), nil
}

// Delete implements announcement.AnnouncementService.
func (s *AnnouncementServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.AnnouncementRepository.Delete(ctx, id); err != nil {
		return err
	}
	return nil
}
