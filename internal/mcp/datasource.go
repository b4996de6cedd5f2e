package mcp

import (
	"context"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/storage"
)

// DataSource abstracts the session store for MCP tools.
type DataSource interface {
	QuerySessions(ctx context.Context, start, end time.Time, userID int, activityFilter string) ([]models.SessionRow, error)
	GetDataStats(ctx context.Context, userID int) (*storage.DataStats, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
