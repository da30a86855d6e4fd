package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/money"
)

// DBPinger is satisfied by *sql.DB.
type DBPinger interface {
	PingContext(ctx context.Context) error
}

// CachePinger is satisfied by the session stores.
type CachePinger interface {
	Ping(ctx context.Context) error
}

// DiagHandler backs the settings/diagnostics screen: the configured tax
// rate plus a liveness check of each collaborator.
type DiagHandler struct {
	db              DBPinger
	cache           CachePinger
	messagingOn     bool
	taxRateTenthBps int64
}

func NewDiagHandler(db DBPinger, cache CachePinger, messagingOn bool, taxRateTenthBps int64) *DiagHandler {
	return &DiagHandler{db: db, cache: cache, messagingOn: messagingOn, taxRateTenthBps: taxRateTenthBps}
}

func (h *DiagHandler) Diagnostics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{
		"database":     "ok",
		"sessionCache": "ok",
		"messaging":    "disabled",
	}
	status := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		checks["database"] = err.Error()
		status = http.StatusServiceUnavailable
	}
	if err := h.cache.Ping(ctx); err != nil {
		// session cache is best-effort, its failure does not degrade status
		checks["sessionCache"] = err.Error()
	}
	if h.messagingOn {
		checks["messaging"] = "enabled"
	}

	writeJSON(w, status, map[string]any{
		"service":    "pos-service",
		"taxRateBps": money.FormatRateBps(h.taxRateTenthBps),
		"checks":     checks,
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "service": "pos-service"})
}
