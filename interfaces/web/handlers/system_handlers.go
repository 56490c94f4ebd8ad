package handlers

import (
	"net/http"

	"todolists/database"
	"todolists/domain/contracts"
	"todolists/platform/events"
)

// ActivitySource reports session lifecycle counters.
type ActivitySource interface {
	Snapshot() events.ActivitySnapshot
}

// SystemHandlers serves operational endpoints.
type SystemHandlers struct {
	db       *database.Database
	sessions contracts.SessionRepository
	activity ActivitySource
}

// NewSystemHandlers creates the system handlers. db is nil when sessions are
// kept in memory; activity may be nil.
func NewSystemHandlers(db *database.Database, repo contracts.SessionRepository, activity ActivitySource) *SystemHandlers {
	return &SystemHandlers{db: db, sessions: repo, activity: activity}
}

// Health reports database pool statistics and the stored session count.
func (h *SystemHandlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	response := map[string]any{"status": "ok"}

	if h.db != nil {
		report, err := h.db.Health(ctx)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		response["database"] = report
	}

	count, err := h.sessions.Count(ctx)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	response["sessions"] = count

	if h.activity != nil {
		response["activity"] = h.activity.Snapshot()
	}

	RenderJSON(w, http.StatusOK, response)
}
