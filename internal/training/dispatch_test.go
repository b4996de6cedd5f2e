package training

import (
	"errors"
	"testing"
)

// TestReadPackageVariants verifies each activity code constructs the
// matching variant with positional parameters applied in order.
func TestReadPackageVariants(t *testing.T) {
	s, err := ReadPackage(CodeRunning, []float64{15000, 1, 75})
	if err != nil {
		t.Fatalf("RUN: unexpected error: %v", err)
	}
	if _, ok := s.(Running); !ok {
		t.Fatalf("RUN: got %T, want Running", s)
	}
	if s.Weight() != 75 {
		t.Errorf("RUN: Weight = %v, want 75", s.Weight())
	}
	if s.Action() != 15000 {
		t.Errorf("RUN: Action = %d, want 15000", s.Action())
	}

	s, err = ReadPackage(CodeWalking, []float64{9000, 1, 75, 180})
	if err != nil {
		t.Fatalf("WLK: unexpected error: %v", err)
	}
	w, ok := s.(SportsWalking)
	if !ok {
		t.Fatalf("WLK: got %T, want SportsWalking", s)
	}
	if w.Height() != 180 {
		t.Errorf("WLK: Height = %v, want 180", w.Height())
	}

	s, err = ReadPackage(CodeSwimming, []float64{720, 1, 80, 25, 40})
	if err != nil {
		t.Fatalf("SWM: unexpected error: %v", err)
	}
	swim, ok := s.(Swimming)
	if !ok {
		t.Fatalf("SWM: got %T, want Swimming", s)
	}
	if swim.PoolLength() != 25 || swim.PoolCount() != 40 {
		t.Errorf("SWM: pool = (%v, %d), want (25, 40)", swim.PoolLength(), swim.PoolCount())
	}
}

// TestReadPackageUnknownCode verifies an unrecognized activity code fails
// with UnknownActivityError carrying the offending code.
func TestReadPackageUnknownCode(t *testing.T) {
	_, err := ReadPackage("XYZ", []float64{1, 1, 1})
	if err == nil {
		t.Fatal("expected error for unknown code")
	}

	var unknownErr *UnknownActivityError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("error type = %T, want *UnknownActivityError", err)
	}
	if unknownErr.Code != "XYZ" {
		t.Errorf("Code = %q, want %q", unknownErr.Code, "XYZ")
	}
}

// TestReadPackageArity verifies wrong parameter counts fail fast with
// ArityError before any construction.
func TestReadPackageArity(t *testing.T) {
	cases := []struct {
		code string
		data []float64
		want int
	}{
		{CodeRunning, []float64{15000, 1}, 3},
		{CodeRunning, []float64{15000, 1, 75, 99}, 3},
		{CodeWalking, []float64{9000, 1, 75}, 4},
		{CodeSwimming, []float64{720, 1, 80, 25}, 5},
		{CodeSwimming, nil, 5},
	}

	for _, c := range cases {
		_, err := ReadPackage(c.code, c.data)
		var arityErr *ArityError
		if !errors.As(err, &arityErr) {
			t.Errorf("%s with %d params: error = %v, want *ArityError", c.code, len(c.data), err)
			continue
		}
		if arityErr.Want != c.want || arityErr.Got != len(c.data) {
			t.Errorf("%s: arity = want %d got %d, expected want %d got %d",
				c.code, arityErr.Want, arityErr.Got, c.want, len(c.data))
		}
	}
}
