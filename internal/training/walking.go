package training

// Step length and calorie coefficients for sports walking. The calorie
// formula works in minutes, hence the trailing hours-to-minutes factor.
const (
	walkStepLen      = 0.65 // meters per step, same as running
	walkWeightFactor = 0.035
	walkSpeedFactor  = 0.029
	minutesPerHour   = 60
)

// SportsWalking is a sports walking session.
type SportsWalking struct {
	base
	height float64 // cm
}

// NewSportsWalking creates a walking session from raw sensor values.
// Height is in centimeters.
func NewSportsWalking(action int, duration, weight, height float64) SportsWalking {
	return SportsWalking{
		base:   base{action: action, duration: duration, weight: weight},
		height: height,
	}
}

func (w SportsWalking) Type() string { return "SportsWalking" }

// Height is the athlete's height in centimeters.
func (w SportsWalking) Height() float64 { return w.height }

func (w SportsWalking) Distance() float64 { return w.distanceKm(walkStepLen) }

func (w SportsWalking) MeanSpeed() float64 { return w.Distance() / w.duration }

// Calories divides by height, so a zero height yields ±Inf/NaN rather
// than an error.
func (w SportsWalking) Calories() float64 {
	speed := w.MeanSpeed()
	return (walkWeightFactor*w.weight + speed*speed/w.height*walkSpeedFactor*w.weight) *
		w.duration * minutesPerHour
}
