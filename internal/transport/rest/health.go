package rest

import (
	"context"
	"net/http"
	"time"
)

const pingTimeout = 3 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type assistantProbe interface {
	Configured() bool
}

// HealthHandler serves the liveness, readiness and health probes.
type HealthHandler struct {
	db        dbPinger
	assistant assistantProbe
	version   string
	now       func() time.Time
}

// NewHealthHandler creates a HealthHandler. assistant may be nil.
func NewHealthHandler(db dbPinger, assistant assistantProbe, version string) *HealthHandler {
	return &HealthHandler{db: db, assistant: assistant, version: version, now: time.Now}
}

// HealthResponse is the body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the state of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live always answers 200 while the process is up.
//
//	@Summary	Liveness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/live [get]
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 503 until the database responds.
//
//	@Summary	Readiness probe
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if st := h.pingDB(r.Context()); st.Status != "ok" {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health reports every dependency. Only the database decides the overall
// status; an unconfigured assistant is reported as "disabled".
//
//	@Summary	Health report
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Failure	503	{object}	HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.pingDB(r.Context())
	components := map[string]CompStatus{"database": db}

	if h.assistant != nil {
		st := CompStatus{Status: "ok"}
		if !h.assistant.Configured() {
			st.Status = "disabled"
		}
		components["assistant"] = st
	}

	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:     status,
		Version:    h.version,
		Components: components,
		Timestamp:  h.now(),
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: "down"}
	}
	return CompStatus{Status: "ok", Latency: time.Since(start).String()}
}
