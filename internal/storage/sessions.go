package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/google/uuid"
)

// InsertSessions batch-inserts computed sessions. Re-ingested packages
// (same user and package hash) are skipped. Returns the count inserted.
func (db *DB) InsertSessions(ctx context.Context, rows []models.SessionRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	query := `INSERT INTO sessions (id, user_id, activity, package_hash, action, duration_hr, weight_kg,
	 distance_km, mean_speed_kmh, calories_kcal, summary, recorded_at, raw_json) VALUES `
	args := make([]any, 0, len(rows)*13)
	valueStrings := make([]string, 0, len(rows))

	for i, r := range rows {
		base := i * 13
		valueStrings = append(valueStrings, fmt.Sprintf(
			"($%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d,$%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7,
			base+8, base+9, base+10, base+11, base+12, base+13,
		))
		args = append(args, r.ID, r.UserID, r.Activity, r.PackageHash, r.Action, r.DurationHr,
			r.WeightKg, r.DistanceKm, r.MeanSpeed, r.Calories, r.Summary, r.RecordedAt, r.RawJSON)
	}

	query += strings.Join(valueStrings, ",") + " ON CONFLICT DO NOTHING"

	tag, err := db.Pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("inserting sessions: %w", err)
	}
	return tag.RowsAffected(), nil
}

// QuerySessions retrieves sessions in a time range, newest first, with an
// optional activity name filter.
func (db *DB) QuerySessions(ctx context.Context, start, end time.Time, userID int, activityFilter string) ([]models.SessionRow, error) {
	query := `SELECT id, user_id, activity, package_hash, action, duration_hr, weight_kg,
	 distance_km, mean_speed_kmh, calories_kcal, summary, recorded_at
	 FROM sessions
	 WHERE user_id = $1 AND recorded_at >= $2 AND recorded_at <= $3`
	args := []any{userID, start, end}

	if activityFilter != "" {
		query += ` AND activity = $4`
		args = append(args, activityFilter)
	}
	query += ` ORDER BY recorded_at DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var result []models.SessionRow
	for rows.Next() {
		var r models.SessionRow
		if err := rows.Scan(&r.ID, &r.UserID, &r.Activity, &r.PackageHash, &r.Action, &r.DurationHr,
			&r.WeightKg, &r.DistanceKm, &r.MeanSpeed, &r.Calories, &r.Summary, &r.RecordedAt); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// GetSession retrieves a single session by ID.
func (db *DB) GetSession(ctx context.Context, id uuid.UUID, userID int) (*models.SessionRow, error) {
	var r models.SessionRow
	err := db.Pool.QueryRow(ctx,
		`SELECT id, user_id, activity, package_hash, action, duration_hr, weight_kg,
		 distance_km, mean_speed_kmh, calories_kcal, summary, recorded_at
		 FROM sessions WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&r.ID, &r.UserID, &r.Activity, &r.PackageHash, &r.Action, &r.DurationHr,
		&r.WeightKg, &r.DistanceKm, &r.MeanSpeed, &r.Calories, &r.Summary, &r.RecordedAt)
	if err != nil {
		return nil, fmt.Errorf("querying session %s: %w", id, err)
	}
	return &r, nil
}
