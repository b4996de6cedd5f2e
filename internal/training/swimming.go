package training

// Stroke length and calorie coefficients for swimming.
const (
	swimStrokeLen  = 1.38 // meters per stroke
	swimSpeedShift = 1.1
	swimFactor     = 2
)

// Swimming is a pool swimming session. Pool length and pool count are
// carried from the sensor package but enter no formula: distance derives
// from the stroke count like the other activities.
type Swimming struct {
	base
	poolLength float64 // meters
	poolCount  int     // pool lengths swum
}

// NewSwimming creates a swimming session from raw sensor values.
func NewSwimming(action int, duration, weight, poolLength float64, poolCount int) Swimming {
	return Swimming{
		base:       base{action: action, duration: duration, weight: weight},
		poolLength: poolLength,
		poolCount:  poolCount,
	}
}

func (s Swimming) Type() string { return "Swimming" }

// PoolLength is the pool length in meters.
func (s Swimming) PoolLength() float64 { return s.poolLength }

// PoolCount is the number of pool lengths swum.
func (s Swimming) PoolCount() int { return s.poolCount }

func (s Swimming) Distance() float64 { return s.distanceKm(swimStrokeLen) }

func (s Swimming) MeanSpeed() float64 { return s.Distance() / s.duration }

func (s Swimming) Calories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimFactor * s.weight * s.duration
}
