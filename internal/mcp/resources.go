package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
)

// --- Resource definitions ---

var resRecentSessions = mcp.NewResource(
	"paceline://recent_sessions",
	"Recent Sessions",
	mcp.WithResourceDescription("Training sessions from the last 14 days with computed metrics"),
	mcp.WithMIMEType("application/json"),
)

var resActivityCatalog = mcp.NewResource(
	"paceline://activity_catalog",
	"Activity Catalog",
	mcp.WithResourceDescription("Supported activity codes with their positional parameters"),
	mcp.WithMIMEType("application/json"),
)

// --- Resource handlers ---

func (h *handlers) recentSessions(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)
	end := time.Now()
	start := end.AddDate(0, 0, -14)

	sessions, err := h.ds.QuerySessions(ctx, start, end, uid, "")
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(sessions)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// activityCatalog describes the fixed set of activity codes and the
// positional parameters each expects.
func (h *handlers) activityCatalog(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	catalog := []map[string]any{
		{
			"code":     "RUN",
			"activity": "Running",
			"params":   []string{"action (steps)", "duration (hours)", "weight (kg)"},
		},
		{
			"code":     "WLK",
			"activity": "SportsWalking",
			"params":   []string{"action (steps)", "duration (hours)", "weight (kg)", "height (cm)"},
		},
		{
			"code":     "SWM",
			"activity": "Swimming",
			"params":   []string{"action (strokes)", "duration (hours)", "weight (kg)", "pool_length (m)", "pool_count"},
		},
	}

	data, err := json.Marshal(catalog)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
