package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/training"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// computeResponse is the body returned by the one-shot compute endpoint.
type computeResponse struct {
	Activity   string  `json:"activity"`
	DurationHr float64 `json:"duration_hr"`
	DistanceKm float64 `json:"distance_km"`
	MeanSpeed  float64 `json:"mean_speed_kmh"`
	Calories   float64 `json:"calories_kcal"`
	Summary    string  `json:"summary"`
}

func (s *Server) handleCompute(w http.ResponseWriter, r *http.Request) {
	var pkg models.SensorPackage
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	session, err := training.ReadPackage(pkg.Type, pkg.Data)
	if err != nil {
		var unknownErr *training.UnknownActivityError
		var arityErr *training.ArityError
		switch {
		case errors.As(err, &unknownErr):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": err.Error(), "code": "unknown_activity_type",
			})
		case errors.As(err, &arityErr):
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error": err.Error(), "code": "arity_mismatch",
			})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		return
	}

	writeJSON(w, http.StatusOK, computeResponse{
		Activity:   session.Type(),
		DurationHr: session.Duration(),
		DistanceKm: session.Distance(),
		MeanSpeed:  session.MeanSpeed(),
		Calories:   session.Calories(),
		Summary:    training.Summary(session),
	})
}

func (s *Server) handleJSONIngest(w http.ResponseWriter, r *http.Request) {
	var payload models.SensorPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result, err := s.json.Ingest(r.Context(), &payload, 1)
	if err != nil {
		s.log.Error("ingest error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleCSVIngest(w http.ResponseWriter, r *http.Request) {
	result, err := s.csv.Ingest(r.Context(), r.Body, 1)
	if err != nil {
		s.log.Error("csv ingest error", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleQuerySessions(w http.ResponseWriter, r *http.Request) {
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	activityFilter := r.URL.Query().Get("activity")
	sessions, err := s.db.QuerySessions(r.Context(), start, end, 1, activityFilter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, sessions)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	idStr := chi.URLParam(r, "id")
	sessionID, err := uuid.Parse(idStr)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid session ID"})
		return
	}

	row, err := s.db.GetSession(r.Context(), sessionID, 1)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "session not found"})
		return
	}
	writeJSON(w, http.StatusOK, row)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.db.GetDataStats(r.Context(), 1)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Pool.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "db unreachable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// parseTimeRange reads the start/end query params. Each bound defaults
// independently: end falls back to now, start to 7 days before end, so
// "end only" queries keep their bound.
func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}

	if startStr == "" {
		start = end.AddDate(0, 0, -7)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return
}
