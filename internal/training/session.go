package training

import "fmt"

// metersPerKm converts per-action lengths in meters to distances in km.
const metersPerKm = 1000

// Session is one completed training activity. Implementations are
// immutable; every derived metric is a pure function of the constructor
// parameters.
type Session interface {
	// Type is the activity name used in summaries, e.g. "Running".
	Type() string
	// Action is the raw sensor action count (steps or strokes).
	Action() int
	// Duration is the session length in hours.
	Duration() float64
	// Weight is the athlete's weight in kilograms.
	Weight() float64
	// Distance is the covered distance in kilometers.
	Distance() float64
	// MeanSpeed is the average speed in km/h (distance over duration).
	MeanSpeed() float64
	// Calories is the estimated energy burned in kcal.
	Calories() float64
}

// base holds the attributes every activity variant carries.
type base struct {
	action   int     // steps or strokes
	duration float64 // hours
	weight   float64 // kg
}

func (b base) Duration() float64 { return b.duration }
func (b base) Weight() float64   { return b.weight }

// Action is the raw sensor action count (steps or strokes).
func (b base) Action() int { return b.action }

// distanceKm converts the action count to kilometers for the given
// per-action length in meters.
func (b base) distanceKm(actionLen float64) float64 {
	return float64(b.action) * actionLen / metersPerKm
}

// Summary renders the one-line human-readable report for a session.
// Inputs are not clamped: a zero-duration session prints +Inf speed.
func Summary(s Session) string {
	return fmt.Sprintf(
		"Training type: %s; Duration: %.3f h; Distance: %.3f km; Mean speed: %.3f km/h; Calories burned: %.3f.",
		s.Type(), s.Duration(), s.Distance(), s.MeanSpeed(), s.Calories())
}
