package storage

import (
	"context"
	"testing"
)

// TestOpenInvalidDSN verifies a malformed DSN fails at parse time, before
// any connection attempt.
func TestOpenInvalidDSN(t *testing.T) {
	if _, err := Open(context.Background(), "://not-a-dsn"); err == nil {
		t.Error("expected error for malformed DSN")
	}
}

// TestMigrateMissingDir verifies a missing migrations directory surfaces
// an error instead of silently applying nothing.
func TestMigrateMissingDir(t *testing.T) {
	dsn := "postgres://u:p@localhost:5432/paceline?sslmode=disable"
	if err := Migrate(dsn, t.TempDir()+"/does-not-exist"); err == nil {
		t.Error("expected error for missing migrations directory")
	}
}
