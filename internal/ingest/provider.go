package ingest

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/training"
	"github.com/google/uuid"
)

// Result holds the outcome of an ingest operation.
type Result struct {
	PackagesReceived int      `json:"packages_received"`
	SessionsComputed int      `json:"sessions_computed"`
	SessionsInserted int64    `json:"sessions_inserted"`
	SessionsSkipped  int64    `json:"sessions_skipped"`
	PackagesRejected int      `json:"packages_rejected"`
	RejectedCodes    []string `json:"rejected_codes,omitempty"`

	Message string `json:"message,omitempty"`
}

// Reject records a package that failed dispatch, deduplicating the
// offending code in RejectedCodes.
func (r *Result) Reject(code string) {
	r.PackagesRejected++
	for _, c := range r.RejectedCodes {
		if c == code {
			return
		}
	}
	r.RejectedCodes = append(r.RejectedCodes, code)
}

// IsRejectable reports whether err is a per-package dispatch fault
// (unknown activity code or wrong arity) rather than a batch-level error.
func IsRejectable(err error) bool {
	var unknownErr *training.UnknownActivityError
	var arityErr *training.ArityError
	return errors.As(err, &unknownErr) || errors.As(err, &arityErr)
}

// HashPackage returns a stable SHA-256 hex digest of a sensor package,
// used for idempotent re-ingest and CLI history dedupe.
func HashPackage(pkg models.SensorPackage) string {
	var b strings.Builder
	b.WriteString(pkg.Type)
	for _, v := range pkg.Data {
		b.WriteByte(';')
		b.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// BuildRow dispatches a sensor package through the training model and
// materializes a session row. Dispatch faults come back unwrapped so the
// caller can distinguish them with IsRejectable.
func BuildRow(pkg models.SensorPackage, userID int, now time.Time) (*models.SessionRow, error) {
	session, err := training.ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		return nil, err
	}

	raw, err := json.Marshal(pkg)
	if err != nil {
		return nil, fmt.Errorf("marshaling package: %w", err)
	}

	return &models.SessionRow{
		ID:          uuid.New(),
		UserID:      userID,
		Activity:    session.Type(),
		PackageHash: HashPackage(pkg),
		Action:      session.Action(),
		DurationHr:  session.Duration(),
		WeightKg:    session.Weight(),
		DistanceKm:  session.Distance(),
		MeanSpeed:   session.MeanSpeed(),
		Calories:    session.Calories(),
		Summary:     training.Summary(session),
		RecordedAt:  now,
		RawJSON:     raw,
	}, nil
}
