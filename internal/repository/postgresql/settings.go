package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/desadigital/absensi-backend-go/internal/domain/settings"
	"github.com/desadigital/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// The attendance configuration is a single row pinned to id = 1.
const settingsRowID = 1

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get implements settings.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT window_start::text, window_end::text,
			   office_latitude, office_longitude, max_distance_meters,
			   updated_by, updated_at
		FROM attendance_settings
		WHERE id = $1
	`

	var s settings.Settings
	err := q.QueryRow(ctx, query, settingsRowID).Scan(
		&s.WindowStart, &s.WindowEnd,
		&s.OfficeLatitude, &s.OfficeLongitude, &s.MaxDistanceMeters,
		&s.UpdatedBy, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, fmt.Errorf("failed to get attendance settings: %w", err)
	}

	return s, nil
}

// Upsert implements settings.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, s settings.Settings) (settings.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance_settings
			(id, window_start, window_end, office_latitude, office_longitude, max_distance_meters, updated_by)
		VALUES ($1, $2::time, $3::time, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			window_start        = EXCLUDED.window_start,
			window_end          = EXCLUDED.window_end,
			office_latitude     = EXCLUDED.office_latitude,
			office_longitude    = EXCLUDED.office_longitude,
			max_distance_meters = EXCLUDED.max_distance_meters,
			updated_by          = EXCLUDED.updated_by,
			updated_at          = NOW()
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		settingsRowID,
		s.WindowStart,
		s.WindowEnd,
		s.OfficeLatitude,
		s.OfficeLongitude,
		s.MaxDistanceMeters,
		s.UpdatedBy,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to upsert attendance settings: %w", err)
	}

	return s, nil
}
