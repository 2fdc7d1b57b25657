package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/arjunkp/ammascold/internal/genai"
	"github.com/arjunkp/ammascold/internal/scold"
)

type ScoldingHandler struct {
	svc *scold.Service
}

func NewScoldingHandler(svc *scold.Service) *ScoldingHandler {
	return &ScoldingHandler{svc: svc}
}

// Generate produces a fresh Manglish scolding phrase. The request
// carries no body; every call is an independent generation.
func (h *ScoldingHandler) Generate(w http.ResponseWriter, r *http.Request) {
	phrase, err := h.svc.GenerateScolding(r.Context())
	if err != nil {
		var ue *genai.UpstreamError
		switch {
		case errors.As(err, &ue):
			writeJSON(w, ue.StatusCode, map[string]string{
				"error": fmt.Sprintf("Gemini API error: %d - %s", ue.StatusCode, ue.Message),
			})
		case errors.Is(err, genai.ErrNoCandidates):
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Invalid response from Gemini API"})
		case errors.Is(err, scold.ErrNotConfigured):
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "API keys not configured. Please ensure GEMINI_API_KEY is set."})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate scolding"})
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"scolding": phrase})
}
