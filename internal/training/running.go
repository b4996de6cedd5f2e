package training

// Step length and calorie coefficients for running.
const (
	runStepLen     = 0.65 // meters per step
	runSpeedFactor = 18
	runSpeedShift  = 1.79
)

// Running is a running session.
type Running struct {
	base
}

// NewRunning creates a running session from raw sensor values.
func NewRunning(action int, duration, weight float64) Running {
	return Running{base{action: action, duration: duration, weight: weight}}
}

func (r Running) Type() string { return "Running" }

func (r Running) Distance() float64 { return r.distanceKm(runStepLen) }

func (r Running) MeanSpeed() float64 { return r.Distance() / r.duration }

func (r Running) Calories() float64 {
	return (runSpeedFactor*r.MeanSpeed() + runSpeedShift) * r.weight * r.duration
}
