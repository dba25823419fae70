package settings

import "context"

// SettingsRepository reads and writes the single attendance configuration row.
type SettingsRepository interface {
	// Get returns the current settings snapshot, or ErrSettingsNotFound when
	// the row has never been written.
	Get(ctx context.Context) (Settings, error)

	// Upsert replaces the configuration row atomically.
	Upsert(ctx context.Context, s Settings) (Settings, error)
}
