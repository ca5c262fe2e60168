package api

import (
	"net/http"
	"time"

	"talky/backend/internal/model"
)

// isoMillis matches the millisecond ISO-8601 form browsers produce.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

// HealthHandler answers liveness probes. It checks no dependencies.
type HealthHandler struct {
	now func() time.Time
}

func NewHealthHandler(now func() time.Time) *HealthHandler {
	if now == nil {
		now = time.Now
	}
	return &HealthHandler{now: now}
}

// HandleHealth godoc
// @Summary      Liveness probe
// @Tags         Health
// @Produce      json
// @Success      200  {object}  model.HealthResponse
// @Router       /health [get]
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	respondWithJSON(w, http.StatusOK, model.HealthResponse{
		Status:    "ok",
		Message:   "Backend server is running",
		Timestamp: h.now().UTC().Format(isoMillis),
	})
}
