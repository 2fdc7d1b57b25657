package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/arjunkp/ammascold/internal/api/handlers"
	"github.com/arjunkp/ammascold/internal/api/middleware"
	"github.com/arjunkp/ammascold/internal/config"
	"github.com/arjunkp/ammascold/internal/genai"
	"github.com/arjunkp/ammascold/internal/scold"
	"github.com/arjunkp/ammascold/internal/storage"
	"github.com/arjunkp/ammascold/internal/tts"
	"github.com/arjunkp/ammascold/web"
)

type Router struct {
	mux *chi.Mux
	cfg *config.Config
	svc *scold.Service
}

func NewRouter(cfg *config.Config) *Router {
	// Upstream clients exist only when their credential does; the
	// service reports "not configured" per-request for the rest.
	var gemini scold.TextGenerator
	if cfg.Gemini.APIKey != "" {
		gemini = genai.NewClient(genai.Config{
			APIKey:  cfg.Gemini.APIKey,
			BaseURL: cfg.Gemini.BaseURL,
			Model:   cfg.Gemini.Model,
		})
	}

	var synth tts.Provider
	if cfg.Sarvam.APIKey != "" {
		synth = tts.NewSarvamTTS(tts.SarvamConfig{
			APIKey:  cfg.Sarvam.APIKey,
			BaseURL: cfg.Sarvam.BaseURL,
		})
	}

	var store scold.AudioStore
	if cfg.Debug.AudioDir != "" {
		store = storage.NewFileStore(cfg.Debug.AudioDir)
	}

	return &Router{
		mux: chi.NewRouter(),
		cfg: cfg,
		svc: scold.NewService(gemini, synth, store),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
	}))

	rl := middleware.NewRateLimiter(5, 10)
	r.Use(rl.Limit)

	health := handlers.NewHealthHandler(rt.svc)
	r.Get("/healthz", health.Healthz)

	scoldingH := handlers.NewScoldingHandler(rt.svc)
	ttsH := handlers.NewTTSHandler(rt.svc)
	r.Post("/scolding", scoldingH.Generate)
	r.Post("/tts", ttsH.Speak)

	// Browser client
	r.Handle("/*", http.FileServer(http.FS(web.Static())))

	return r
}
