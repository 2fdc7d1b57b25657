package scold

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arjunkp/ammascold/internal/genai"
	"github.com/arjunkp/ammascold/internal/tts"
)

const scoldingPrompt = "Generate a short, funny, and typical scolding a Malayali mother would say to her child for being lazy or wasting time. The response must be in Malayalam, but written using only English letters (Manglish). Keep it to one or two sentences."

const translationPromptFmt = `Translate the following Manglish text to proper Malayalam script. Only provide the translated text, no extra words or explanations: %q`

// Voice parameters for the Malayalam "amma" voice.
const (
	targetLanguageCode = "ml-IN"
	speaker            = "arya"
	pitch              = 0.1
	pace               = 1
	loudness           = 1
	sampleRate         = 22050
	ttsModel           = "bulbul:v2"
)

var (
	// ErrNotConfigured means a required API credential is absent.
	ErrNotConfigured = errors.New("API keys not configured")
	// ErrEmptyTranslation means the translation call succeeded but
	// produced no text.
	ErrEmptyTranslation = errors.New("failed to translate text to malayalam")
)

// TextGenerator is the slice of the Gemini client the service needs.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string, cfg genai.GenerationConfig) (string, error)
}

// AudioStore persists synthesized audio for debugging.
type AudioStore interface {
	Save(data []byte) (string, error)
}

// Service orchestrates scolding generation: text, translation and
// speech synthesis. State is request-scoped; nothing is cached across
// calls.
type Service struct {
	gemini TextGenerator
	synth  tts.Provider
	store  AudioStore // nil disables debug persistence
}

func NewService(gemini TextGenerator, synth tts.Provider, store AudioStore) *Service {
	return &Service{gemini: gemini, synth: synth, store: store}
}

// Configured reports whether both upstream credentials were provided.
func (s *Service) Configured() bool {
	return s.gemini != nil && s.synth != nil
}

// GenerateScolding asks Gemini for a fresh Manglish scolding phrase.
// High temperature keeps repeated calls varied.
func (s *Service) GenerateScolding(ctx context.Context) (string, error) {
	if s.gemini == nil {
		return "", ErrNotConfigured
	}
	return s.gemini.Generate(ctx, scoldingPrompt, genai.GenerationConfig{
		Temperature:     0.9,
		TopK:            1,
		TopP:            1,
		MaxOutputTokens: 100,
	})
}

// Speak renders a Manglish phrase as Malayalam speech. The phrase is
// first translated to Malayalam script; if the translation call is
// rejected for quota reasons (HTTP 429) the original Manglish text is
// synthesized instead. Any other translation failure fails the request.
func (s *Service) Speak(ctx context.Context, manglishText string) (*tts.SynthesisResult, error) {
	if s.gemini == nil || s.synth == nil {
		return nil, ErrNotConfigured
	}

	speechText := manglishText
	translated, err := s.translate(ctx, manglishText)
	switch {
	case genai.IsQuotaExceeded(err):
		slog.Warn("gemini quota exceeded, synthesizing original manglish text")
	case err != nil:
		return nil, fmt.Errorf("translation failed: %w", err)
	case translated == "":
		return nil, ErrEmptyTranslation
	default:
		speechText = translated
	}

	result, err := s.synth.Synthesize(ctx, tts.SynthesisRequest{
		Text:                speechText,
		TargetLanguageCode:  targetLanguageCode,
		Speaker:             speaker,
		Pitch:               pitch,
		Pace:                pace,
		Loudness:            loudness,
		SpeechSampleRate:    sampleRate,
		EnablePreprocessing: true,
		Model:               ttsModel,
	})
	if err != nil {
		return nil, err
	}

	if s.store != nil {
		if path, err := s.store.Save(result.Audio); err != nil {
			slog.Warn("failed to save debug audio", "error", err)
		} else {
			slog.Debug("saved debug audio", "path", path)
		}
	}

	return result, nil
}

func (s *Service) translate(ctx context.Context, manglishText string) (string, error) {
	out, err := s.gemini.Generate(ctx, fmt.Sprintf(translationPromptFmt, manglishText), genai.GenerationConfig{
		Temperature:     0.1,
		MaxOutputTokens: 200,
	})
	if errors.Is(err, genai.ErrNoCandidates) {
		// A 200 with no usable text is an empty translation, not an
		// upstream failure.
		return "", nil
	}
	return out, err
}
