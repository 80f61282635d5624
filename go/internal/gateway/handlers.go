package gateway

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mpetrick/draftcaddy/go/internal/advisor"
)

// AdvisorSource exposes the latest pipeline result to the HTTP surface.
type AdvisorSource interface {
	Latest() (advisor.Result, bool)
}

// Handler serves the JSON API and the WebSocket upgrade endpoint.
type Handler struct {
	source            AdvisorSource
	connectionManager *ConnectionManager
	wake              func()
}

// NewHandler creates the HTTP handler set. wake may be nil when no poller
// is wired (e.g. replaying an archived draft).
func NewHandler(source AdvisorSource, cm *ConnectionManager, wake func()) *Handler {
	return &Handler{
		source:            source,
		connectionManager: cm,
		wake:              wake,
	}
}

// RegisterRoutes registers all routes with an HTTP mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/api/tips", h.HandleTips)
	mux.HandleFunc("/api/scores", h.HandleScores)
	mux.HandleFunc("/api/board", h.HandleBoard)
	mux.HandleFunc("/api/sync", h.HandleSync)
	mux.HandleFunc("/ws", h.HandleWebSocket)
	mux.HandleFunc("/healthz", h.HandleHealth)
}

// HandleTips returns the latest ranked tip list with its draft-position
// context.
func (h *Handler) HandleTips(w http.ResponseWriter, r *http.Request) {
	result, ok := h.source.Latest()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"tips": []interface{}{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"tips":           result.Tips,
		"current_pick":   result.CurrentPick,
		"round":          result.Round,
		"distance":       result.Distance,
		"distance_known": result.DistanceKnown,
		"complete":       result.Complete,
		"computed_at":    result.ComputedAt,
	})
}

// HandleScores returns the post-draft score table. Before the draft is
// complete the table is empty, not an error.
func (h *Handler) HandleScores(w http.ResponseWriter, r *http.Request) {
	result, ok := h.source.Latest()
	if !ok || !result.Complete {
		writeJSON(w, http.StatusOK, map[string]interface{}{"complete": false, "scores": []interface{}{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"complete": true, "scores": result.Scores})
}

// HandleBoard returns the board with draft status applied.
func (h *Handler) HandleBoard(w http.ResponseWriter, r *http.Request) {
	result, ok := h.source.Latest()
	if !ok {
		writeJSON(w, http.StatusOK, map[string]interface{}{"board": []interface{}{}})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"board": result.Board})
}

// HandleSync forces an immediate pick sync.
func (h *Handler) HandleSync(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.wake == nil {
		http.Error(w, "sync not available", http.StatusServiceUnavailable)
		return
	}
	h.wake()
	w.WriteHeader(http.StatusAccepted)
}

// HandleWebSocket upgrades the connection and attaches it to the feed.
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	if err := h.connectionManager.UpgradeConnection(w, r); err != nil {
		log.Error().Err(err).Msg("failed to upgrade WebSocket connection")
	}
}

// HandleHealth is a liveness probe.
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"connections": h.connectionManager.ConnectionCount(),
	})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}
