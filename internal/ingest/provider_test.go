package ingest

import (
	"math"
	"testing"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/google/uuid"
)

// TestBuildRow verifies a valid package produces a fully populated
// session row with computed metrics and a summary line.
func TestBuildRow(t *testing.T) {
	pkg := models.SensorPackage{Type: "RUN", Data: []float64{15000, 1, 75}}
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	row, err := BuildRow(pkg, 1, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if row.Activity != "Running" {
		t.Errorf("Activity = %q, want %q", row.Activity, "Running")
	}
	if row.Action != 15000 {
		t.Errorf("Action = %d, want 15000", row.Action)
	}
	if math.Abs(row.DistanceKm-9.75) > 1e-9 {
		t.Errorf("DistanceKm = %v, want 9.75", row.DistanceKm)
	}
	if row.RecordedAt != now {
		t.Errorf("RecordedAt = %v, want %v", row.RecordedAt, now)
	}
	if row.ID == uuid.Nil {
		t.Error("ID not assigned")
	}
	if row.PackageHash == "" {
		t.Error("PackageHash not assigned")
	}
	if row.Summary == "" {
		t.Error("Summary not rendered")
	}
	if len(row.RawJSON) == 0 {
		t.Error("RawJSON not captured")
	}
}

// TestBuildRowRejectable verifies dispatch faults surface unwrapped and
// are classified as per-package rejections.
func TestBuildRowRejectable(t *testing.T) {
	cases := []models.SensorPackage{
		{Type: "XYZ", Data: []float64{1, 1, 1}},
		{Type: "RUN", Data: []float64{15000, 1}},
	}

	for _, pkg := range cases {
		_, err := BuildRow(pkg, 1, time.Now())
		if err == nil {
			t.Errorf("%s: expected error", pkg.Type)
			continue
		}
		if !IsRejectable(err) {
			t.Errorf("%s: error %v not classified as rejectable", pkg.Type, err)
		}
	}
}

// TestHashPackageStable verifies the package hash depends on code and
// parameters only, and distinguishes different packages.
func TestHashPackageStable(t *testing.T) {
	a := models.SensorPackage{Type: "RUN", Data: []float64{15000, 1, 75}}
	b := models.SensorPackage{Type: "RUN", Data: []float64{15000, 1, 75}}
	c := models.SensorPackage{Type: "RUN", Data: []float64{15000, 1, 76}}

	if HashPackage(a) != HashPackage(b) {
		t.Error("identical packages hash differently")
	}
	if HashPackage(a) == HashPackage(c) {
		t.Error("different packages hash identically")
	}
}

// TestResultReject verifies rejected codes are counted per package but
// listed once per code.
func TestResultReject(t *testing.T) {
	var r Result
	r.Reject("XYZ")
	r.Reject("XYZ")
	r.Reject("ABC")

	if r.PackagesRejected != 3 {
		t.Errorf("PackagesRejected = %d, want 3", r.PackagesRejected)
	}
	if len(r.RejectedCodes) != 2 {
		t.Errorf("RejectedCodes = %v, want 2 entries", r.RejectedCodes)
	}
}
