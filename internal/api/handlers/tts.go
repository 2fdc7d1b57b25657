package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/arjunkp/ammascold/internal/genai"
	"github.com/arjunkp/ammascold/internal/scold"
)

type TTSHandler struct {
	svc *scold.Service
}

func NewTTSHandler(svc *scold.Service) *TTSHandler {
	return &TTSHandler{svc: svc}
}

type ttsRequest struct {
	ManglishText string `json:"manglishText"`
}

// Speak translates a Manglish phrase to Malayalam script and returns
// the synthesized speech as an MP3 body. The configuration check runs
// before input validation, and both run before any upstream call.
func (h *TTSHandler) Speak(w http.ResponseWriter, r *http.Request) {
	if !h.svc.Configured() {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"error": "API keys not configured. Please ensure GEMINI_API_KEY and SARVAM_API_KEY are set.",
		})
		return
	}

	var req ttsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.ManglishText == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Manglish text is required."})
		return
	}

	result, err := h.svc.Speak(r.Context(), req.ManglishText)
	if err != nil {
		var ue *genai.UpstreamError
		switch {
		case errors.As(err, &ue):
			writeJSON(w, ue.StatusCode, map[string]string{
				"error": fmt.Sprintf("Translation failed: %s", ue.Message),
			})
		case errors.Is(err, scold.ErrEmptyTranslation):
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to translate text to Malayalam."})
		default:
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error": fmt.Sprintf("Failed to generate speech: %s", err.Error()),
			})
		}
		return
	}

	w.Header().Set("Content-Type", result.ContentType)
	w.Header().Set("Content-Disposition", `inline; filename="scolding.mp3"`)
	w.WriteHeader(http.StatusOK)
	w.Write(result.Audio)
}
