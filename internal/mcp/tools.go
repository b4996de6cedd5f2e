package mcp

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/claude/paceline/internal/training"
	"github.com/mark3labs/mcp-go/mcp"
)

// defaultTimeRange returns start/end defaulting to the last 7 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -7)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// parseData splits a comma- or semicolon-separated number list into the
// positional parameter slice a sensor package carries.
func parseData(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ';' || r == ' '
	})
	data := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		data = append(data, v)
	}
	return data, nil
}

// --- Tool definitions ---

var toolComputeSession = mcp.NewTool("compute_session",
	mcp.WithDescription("Compute distance (km), mean speed (km/h), and calories (kcal) for one training session package. Pure computation; nothing is stored."),
	mcp.WithString("type", mcp.Required(), mcp.Description("Activity code"), mcp.Enum("RUN", "WLK", "SWM")),
	mcp.WithString("data", mcp.Required(), mcp.Description("Positional parameters, comma-separated: action,duration_hr,weight_kg then height_cm for WLK or pool_length_m,pool_count for SWM. Example: 15000,1,75")),
)

var toolListSessions = mcp.NewTool("list_sessions",
	mcp.WithDescription("Query stored training sessions with computed metrics and summary lines."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 7 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
	mcp.WithString("activity", mcp.Description("Filter by activity name"), mcp.Enum("Running", "SportsWalking", "Swimming")),
)

var toolGetActivityStats = mcp.NewTool("get_activity_stats",
	mcp.WithDescription("Aggregate statistics for stored sessions: totals per activity (count, duration, distance, calories, average speed) plus the overall date range."),
)

// --- Tool handlers ---

func (h *handlers) computeSession(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code, err := req.RequireString("type")
	if err != nil {
		return mcp.NewToolResultError("type parameter is required"), nil
	}
	dataStr, err := req.RequireString("data")
	if err != nil {
		return mcp.NewToolResultError("data parameter is required"), nil
	}

	data, err := parseData(dataStr)
	if err != nil {
		return mcp.NewToolResultError("invalid data list: " + err.Error()), nil
	}

	session, err := training.ReadPackage(code, data)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"activity":       session.Type(),
		"duration_hr":    session.Duration(),
		"distance_km":    session.Distance(),
		"mean_speed_kmh": session.MeanSpeed(),
		"calories_kcal":  session.Calories(),
		"summary":        training.Summary(session),
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) listSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	sessions, err := h.ds.QuerySessions(ctx, start, end, uid, req.GetString("activity", ""))
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(sessions)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getActivityStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	stats, err := h.ds.GetDataStats(ctx, uid)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
