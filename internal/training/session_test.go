package training

import (
	"math"
	"testing"
)

const tolerance = 1e-9

// TestRunningSummary verifies the exact summary line for the canonical
// running package (15000 steps, 1 h, 75 kg).
func TestRunningSummary(t *testing.T) {
	r := NewRunning(15000, 1, 75)

	want := "Training type: Running; Duration: 1.000 h; Distance: 9.750 km; Mean speed: 9.750 km/h; Calories burned: 13296.750."
	if got := Summary(r); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

// TestWalkingSummary verifies the exact summary line for the canonical
// walking package (9000 steps, 1 h, 75 kg, 180 cm).
func TestWalkingSummary(t *testing.T) {
	w := NewSportsWalking(9000, 1, 75, 180)

	want := "Training type: SportsWalking; Duration: 1.000 h; Distance: 5.850 km; Mean speed: 5.850 km/h; Calories burned: 182.311."
	if got := Summary(w); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

// TestSwimmingSummary verifies the exact summary line for the canonical
// swimming package (720 strokes, 1 h, 80 kg, 25 m pool, 40 lengths).
func TestSwimmingSummary(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)

	want := "Training type: Swimming; Duration: 1.000 h; Distance: 0.994 km; Mean speed: 0.994 km/h; Calories burned: 334.976."
	if got := Summary(s); got != want {
		t.Errorf("Summary = %q, want %q", got, want)
	}
}

// TestRunningCalories checks the running calorie formula against a
// hand-computed value: (18*9.75 + 1.79) * 75 * 1.
func TestRunningCalories(t *testing.T) {
	r := NewRunning(15000, 1, 75)
	want := (18*9.75 + 1.79) * 75 * 1
	if got := r.Calories(); math.Abs(got-want) > tolerance {
		t.Errorf("Calories = %v, want %v", got, want)
	}
}

// TestWalkingCalories checks the walking calorie formula against a
// hand-computed value: (0.035*75 + 5.85²/180*0.029*75) * 1 * 60.
func TestWalkingCalories(t *testing.T) {
	w := NewSportsWalking(9000, 1, 75, 180)
	want := (0.035*75 + 5.85*5.85/180*0.029*75) * 1 * 60
	if got := w.Calories(); math.Abs(got-want) > tolerance {
		t.Errorf("Calories = %v, want %v", got, want)
	}
}

// TestSwimmingCalories checks the swimming calorie formula against a
// hand-computed value: (0.9936 + 1.1) * 2 * 80 * 1.
func TestSwimmingCalories(t *testing.T) {
	s := NewSwimming(720, 1, 80, 25, 40)
	want := (720*1.38/1000 + 1.1) * 2 * 80 * 1
	if got := s.Calories(); math.Abs(got-want) > tolerance {
		t.Errorf("Calories = %v, want %v", got, want)
	}
}

// TestDistanceLinearity verifies distance is linear in the action count
// for all three variants.
func TestDistanceLinearity(t *testing.T) {
	sessions := map[string][2]Session{
		"Running":       {NewRunning(4000, 1, 70), NewRunning(8000, 1, 70)},
		"SportsWalking": {NewSportsWalking(4000, 1, 70, 175), NewSportsWalking(8000, 1, 70, 175)},
		"Swimming":      {NewSwimming(4000, 1, 70, 25, 10), NewSwimming(8000, 1, 70, 25, 10)},
	}

	for name, pair := range sessions {
		single, double := pair[0], pair[1]
		if got, want := double.Distance(), 2*single.Distance(); math.Abs(got-want) > tolerance {
			t.Errorf("%s: Distance(2n) = %v, want %v", name, got, want)
		}
	}
}

// TestMeanSpeedIdentity verifies MeanSpeed == Distance / Duration for
// every variant.
func TestMeanSpeedIdentity(t *testing.T) {
	sessions := []Session{
		NewRunning(12000, 1.5, 68),
		NewSportsWalking(7500, 0.75, 82, 190),
		NewSwimming(960, 2, 77, 50, 20),
	}

	for _, s := range sessions {
		want := s.Distance() / s.Duration()
		if got := s.MeanSpeed(); math.Abs(got-want) > tolerance {
			t.Errorf("%s: MeanSpeed = %v, want %v", s.Type(), got, want)
		}
	}
}

// TestSwimmingPoolParamsUnused pins the deliberate simplification that
// pool geometry does not influence distance or speed: swapping pool
// length and pool count changes nothing.
func TestSwimmingPoolParamsUnused(t *testing.T) {
	a := NewSwimming(720, 1, 80, 25, 40)
	b := NewSwimming(720, 1, 80, 40, 25)

	if a.Distance() != b.Distance() {
		t.Errorf("Distance changed with pool params: %v vs %v", a.Distance(), b.Distance())
	}
	if a.MeanSpeed() != b.MeanSpeed() {
		t.Errorf("MeanSpeed changed with pool params: %v vs %v", a.MeanSpeed(), b.MeanSpeed())
	}
	if a.Calories() != b.Calories() {
		t.Errorf("Calories changed with pool params: %v vs %v", a.Calories(), b.Calories())
	}
}

// TestZeroDurationIsInf documents the numeric-fault behavior: a zero
// duration is not rejected and produces +Inf mean speed.
func TestZeroDurationIsInf(t *testing.T) {
	r := NewRunning(15000, 0, 75)
	if !math.IsInf(r.MeanSpeed(), 1) {
		t.Errorf("MeanSpeed with zero duration = %v, want +Inf", r.MeanSpeed())
	}
}

// TestZeroHeightIsInf documents that a zero walking height divides the
// calorie formula by zero, yielding +Inf rather than an error.
func TestZeroHeightIsInf(t *testing.T) {
	w := NewSportsWalking(9000, 1, 75, 0)
	if !math.IsInf(w.Calories(), 1) {
		t.Errorf("Calories with zero height = %v, want +Inf", w.Calories())
	}
}
