package settings

import "context"

// SettingsService defines business logic for the attendance configuration.
type SettingsService interface {
	// Get returns the configuration as seen by the admin screen.
	Get(ctx context.Context) (SettingsResponse, error)

	// Update replaces the configuration. Admin only; the updater is taken
	// from the authenticated context.
	Update(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
