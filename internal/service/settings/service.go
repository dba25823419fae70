package settings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/desadigital/absensi-backend-go/internal/domain/settings"
	"github.com/go-chi/jwtauth/v5"
)

type SettingsServiceImpl struct {
	settings.SettingsRepository
}

func NewSettingsService(settingsRepo settings.SettingsRepository) settings.SettingsService {
	return &SettingsServiceImpl{SettingsRepository: settingsRepo}
}

func toResponse(s settings.Settings) settings.SettingsResponse {
	resp := settings.SettingsResponse{
		WindowStart:       s.WindowStart,
		WindowEnd:         s.WindowEnd,
		OfficeLatitude:    s.OfficeLatitude,
		OfficeLongitude:   s.OfficeLongitude,
		MaxDistanceMeters: s.MaxDistanceMeters,
		Configured:        s.Complete(),
	}
	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt.Format(time.RFC3339)
		resp.UpdatedAt = &updatedAt
	}
	return resp
}

// Get implements settings.SettingsService.
func (s *SettingsServiceImpl) Get(ctx context.Context) (settings.SettingsResponse, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.SettingsResponse{Configured: false}, nil
		}
		return settings.SettingsResponse{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return toResponse(cfg), nil
}

// Update implements settings.SettingsService.
func (s *SettingsServiceImpl) Update(ctx context.Context, req settings.UpdateSettingsRequest) (settings.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return settings.SettingsResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	updatedBy, _ := claims["user_id"].(string)

	cfg := settings.Settings{
		WindowStart:       &req.WindowStart,
		WindowEnd:         &req.WindowEnd,
		OfficeLatitude:    &req.OfficeLatitude,
		OfficeLongitude:   &req.OfficeLongitude,
		MaxDistanceMeters: &req.MaxDistanceMeters,
	}
	if updatedBy != "" {
		cfg.UpdatedBy = &updatedBy
	}

	saved, err := s.SettingsRepository.Upsert(ctx, cfg)
	if err != nil {
		return settings.SettingsResponse{}, fmt.Errorf("failed to update settings: %w", err)
	}

	return toResponse(saved), nil
}
