package csvfeed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/claude/paceline/internal/ingest"
	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/storage"
)

// Provider processes semicolon-separated sensor exports.
type Provider struct {
	db  *storage.DB
	log *slog.Logger
}

// NewProvider creates a new CSV ingest provider.
func NewProvider(db *storage.DB, log *slog.Logger) *Provider {
	return &Provider{db: db, log: log}
}

// Ingest parses a CSV export and stores a session per accepted line.
// A malformed line fails the whole batch (nothing is stored); dispatch
// faults reject individual packages like the JSON provider.
func (p *Provider) Ingest(ctx context.Context, r io.Reader, userID int) (*ingest.Result, error) {
	packages, err := Parse(r)
	if err != nil {
		return nil, err
	}

	result := &ingest.Result{}
	now := time.Now()

	var rows []models.SessionRow
	for _, pkg := range packages {
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

	return result, nil
}
