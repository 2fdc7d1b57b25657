package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrNoAudioData is returned when Sarvam answers 200 but the audios
// array is missing or empty.
var ErrNoAudioData = errors.New("no audio data found in sarvam response")

// SarvamConfig holds configuration for the Sarvam AI TTS backend.
type SarvamConfig struct {
	APIKey  string
	BaseURL string // default: "https://api.sarvam.ai"
}

// SarvamTTS synthesizes speech using the Sarvam AI text-to-speech API.
type SarvamTTS struct {
	cfg        SarvamConfig
	httpClient *http.Client
}

// NewSarvamTTS creates a SarvamTTS with sensible defaults applied.
func NewSarvamTTS(cfg SarvamConfig) *SarvamTTS {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.sarvam.ai"
	}
	return &SarvamTTS{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 120 * time.Second,
		},
	}
}

func (s *SarvamTTS) Name() string { return "sarvam-tts" }

type sarvamResponse struct {
	RequestID string   `json:"request_id"`
	Audios    []string `json:"audios"`
}

// Synthesize converts text to audio. Sarvam returns base64-encoded MP3
// entries in an audios array; the first entry is decoded and returned.
func (s *SarvamTTS) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, "POST", s.cfg.BaseURL+"/text-to-speech", bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("api-subscription-key", s.cfg.APIKey)

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tts request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tts failed (status %d): %s", resp.StatusCode, string(respBody))
	}

	var sr sarvamResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parse tts response: %w", err)
	}

	if len(sr.Audios) == 0 {
		return nil, ErrNoAudioData
	}

	audio, err := base64.StdEncoding.DecodeString(sr.Audios[0])
	if err != nil {
		return nil, fmt.Errorf("decode audio data: %w", err)
	}

	return &SynthesisResult{
		Audio:       audio,
		ContentType: "audio/mpeg",
	}, nil
}
