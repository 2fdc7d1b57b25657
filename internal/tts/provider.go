package tts

import "context"

// SynthesisRequest holds the parameters for text-to-speech generation.
type SynthesisRequest struct {
	Text                string  `json:"text"`
	TargetLanguageCode  string  `json:"target_language_code"`
	Speaker             string  `json:"speaker,omitempty"`
	Pitch               float64 `json:"pitch,omitempty"`
	Pace                float64 `json:"pace,omitempty"`
	Loudness            float64 `json:"loudness,omitempty"`
	SpeechSampleRate    int     `json:"speech_sample_rate,omitempty"`
	EnablePreprocessing bool    `json:"enable_preprocessing,omitempty"`
	Model               string  `json:"model,omitempty"`
}

// SynthesisResult holds the generated audio and its content type.
type SynthesisResult struct {
	Audio       []byte
	ContentType string // "audio/mpeg"
}

// Provider is the interface for text-to-speech backends.
type Provider interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	Name() string
}
