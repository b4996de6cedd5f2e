package jsonfeed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/paceline/internal/ingest"
	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/storage"
)

// Provider processes JSON sensor payloads posted by wearables.
type Provider struct {
	db  *storage.DB
	log *slog.Logger
}

// NewProvider creates a new JSON ingest provider.
func NewProvider(db *storage.DB, log *slog.Logger) *Provider {
	return &Provider{db: db, log: log}
}

// Ingest computes and stores a session for every package in the payload.
// Packages with an unknown activity code or wrong parameter count are
// rejected individually; the rest of the batch proceeds.
func (p *Provider) Ingest(ctx context.Context, payload *models.SensorPayload, userID int) (*ingest.Result, error) {
	result := &ingest.Result{}
	now := time.Now()

	var rows []models.SessionRow
	for _, pkg := range payload.Packages {
		result.PackagesReceived++

		row, err := ingest.BuildRow(pkg, userID, now)
		if err != nil {
			if ingest.IsRejectable(err) {
				p.log.Warn("rejecting package", "type", pkg.Type, "error", err)
				result.Reject(pkg.Type)
				continue
			}
			return result, fmt.Errorf("building session row: %w", err)
		}
		rows = append(rows, *row)
	}
	result.SessionsComputed = len(rows)

	if len(rows) > 0 {
		inserted, err := p.db.InsertSessions(ctx, rows)
		if err != nil {
			return result, fmt.Errorf("inserting sessions: %w", err)
		}
		result.SessionsInserted = inserted
		result.SessionsSkipped = int64(len(rows)) - inserted
	}

	if len(result.RejectedCodes) > 0 {
		result.Message = fmt.Sprintf(
			"Some packages were rejected (unknown activity code or wrong parameter count): %v. "+
				"Accepted packages are stored.", result.RejectedCodes)
	}

	return result, nil
}
