package models

import (
	"time"

	"github.com/google/uuid"
)

// SessionRow is a computed training session ready for insertion into the
// sessions table.
type SessionRow struct {
	ID          uuid.UUID `json:"id"`
	UserID      int       `json:"user_id"`
	Activity    string    `json:"activity"`
	PackageHash string    `json:"-"`
	Action      int       `json:"action"`
	DurationHr  float64   `json:"duration_hr"`
	WeightKg    float64   `json:"weight_kg"`
	DistanceKm  float64   `json:"distance_km"`
	MeanSpeed   float64   `json:"mean_speed_kmh"`
	Calories    float64   `json:"calories_kcal"`
	Summary     string    `json:"summary"`
	RecordedAt  time.Time `json:"recorded_at"`
	RawJSON     []byte    `json:"-"`
}
