package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/arjunkp/ammascold/internal/scold"
)

type HealthHandler struct {
	svc *scold.Service
}

func NewHealthHandler(svc *scold.Service) *HealthHandler {
	return &HealthHandler{svc: svc}
}

func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":     "ok",
		"configured": h.svc.Configured(),
	})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
