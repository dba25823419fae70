package postgresql

import (
	"context"
	"fmt"

	"github.com/desadigital/absensi-backend-go/internal/domain/announcement"
	"github.com/desadigital/absensi-backend-go/internal/pkg/database"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (id, title, body, published_at, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.Title, a.Body, a.PublishedAt, a.CreatedBy,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// List implements announcement.AnnouncementRepository.
func (r *announcementRepository) List(ctx context.Context, page, limit int) ([]announcement.Announcement, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM announcements`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count announcements: %w", err)
	}

	query := `
		SELECT a.id, a.title, a.body, a.published_at, a.created_by,
			   a.created_at, a.updated_at, u.name
		FROM announcements a
		JOIN users u ON u.id = a.created_by
		ORDER BY a.published_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := q.Query(ctx, query, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list announcements: %w", err)
	}
	defer rows.Close()

	var result []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Body, &a.PublishedAt, &a.CreatedBy,
			&a.CreatedAt, &a.UpdatedAt, &a.AuthorName,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan announcement row: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate announcement rows: %w", err)
	}

	return result, total, nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}
