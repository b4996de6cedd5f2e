package storage

import (
	"context"
	"fmt"
	"time"
)

// ActivityStat holds summary stats for a single activity type.
type ActivityStat struct {
	Activity      string  `json:"activity"`
	Count         int64   `json:"count"`
	TotalDuration float64 `json:"total_duration_hr"`
	TotalDistance float64 `json:"total_distance_km"`
	TotalCalories float64 `json:"total_calories_kcal"`
	AvgSpeed      float64 `json:"avg_speed_kmh"`
}

// DataStats holds aggregate statistics about all stored sessions.
type DataStats struct {
	TotalSessions int64          `json:"total_sessions"`
	EarliestData  *time.Time     `json:"earliest_data"`
	LatestData    *time.Time     `json:"latest_data"`
	ByActivity    []ActivityStat `json:"by_activity"`
}

// GetDataStats returns aggregate statistics for a user's stored sessions.
func (db *DB) GetDataStats(ctx context.Context, userID int) (*DataStats, error) {
	stats := &DataStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*), MIN(recorded_at), MAX(recorded_at) FROM sessions WHERE user_id = $1`,
		userID,
	).Scan(&stats.TotalSessions, &stats.EarliestData, &stats.LatestData)
	if err != nil {
		return nil, fmt.Errorf("counting sessions: %w", err)
	}

	rows, err := db.Pool.Query(ctx,
		`SELECT activity, COUNT(*), COALESCE(SUM(duration_hr), 0), COALESCE(SUM(distance_km), 0),
		 COALESCE(SUM(calories_kcal), 0), COALESCE(AVG(mean_speed_kmh), 0)
		 FROM sessions
		 WHERE user_id = $1
		 GROUP BY activity
		 ORDER BY COUNT(*) DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("querying activity stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var s ActivityStat
		if err := rows.Scan(&s.Activity, &s.Count, &s.TotalDuration, &s.TotalDistance,
			&s.TotalCalories, &s.AvgSpeed); err != nil {
			return nil, fmt.Errorf("scanning activity stat: %w", err)
		}
		stats.ByActivity = append(stats.ByActivity, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stats, nil
}
