package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/desadigital/absensi-backend-go/internal/domain/attendance"
	"github.com/desadigital/absensi-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// GetByStaffAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) GetByStaffAndDate(ctx context.Context, staffID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, date, status, note, latitude, longitude,
			   submitted_at, created_at, updated_at
		FROM attendances
		WHERE staff_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, staffID, date).Scan(
		&att.ID, &att.StaffID, &att.Date, &att.Status, &att.Note,
		&att.Latitude, &att.Longitude,
		&att.SubmittedAt, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by staff and date: %w", err)
	}

	return &att, nil
}

// Upsert implements attendance.AttendanceRepository. The ON CONFLICT clause
// makes the write atomic per (staff_id, date): two racing submissions for the
// same day collapse into one row, the later submitted_at winning.
func (r *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendances (staff_id, date, status, note, latitude, longitude, submitted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (staff_id, date) DO UPDATE SET
			status       = EXCLUDED.status,
			note         = EXCLUDED.note,
			latitude     = EXCLUDED.latitude,
			longitude    = EXCLUDED.longitude,
			submitted_at = EXCLUDED.submitted_at,
			updated_at   = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.StaffID,
		att.Date,
		att.Status,
		att.Note,
		att.Latitude,
		att.Longitude,
		att.SubmittedAt,
	).Scan(&att.ID, &att.CreatedAt, &att.UpdatedAt)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := `WHERE a.submitted_at >= $1 AND a.submitted_at < $2`
	args := []interface{}{filter.From, filter.To}

	if filter.StaffID != nil {
		where += fmt.Sprintf(" AND a.staff_id = $%d", len(args)+1)
		args = append(args, *filter.StaffID)
	}

	countQuery := `SELECT COUNT(*) FROM attendances a ` + where

	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	query := `
		SELECT a.id, a.staff_id, a.date, a.status, a.note, a.latitude, a.longitude,
			   a.submitted_at, a.created_at, a.updated_at,
			   u.name, u.position
		FROM attendances a
		JOIN users u ON u.id = a.staff_id
		` + where + fmt.Sprintf(`
		ORDER BY a.submitted_at DESC
		LIMIT $%d OFFSET $%d
	`, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.StaffID, &att.Date, &att.Status, &att.Note,
			&att.Latitude, &att.Longitude,
			&att.SubmittedAt, &att.CreatedAt, &att.UpdatedAt,
			&att.StaffName, &att.StaffPosition,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		result = append(result, att)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	return result, total, nil
}
