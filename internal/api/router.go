package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/asetenapa/kasa/internal/api/handlers"
	"github.com/asetenapa/kasa/internal/api/middleware"
	"github.com/asetenapa/kasa/internal/config"
	"github.com/asetenapa/kasa/internal/provider/ghananlp"
)

type Router struct {
	mux      *chi.Mux
	cfg      *config.Config
	provider *ghananlp.Client
}

func NewRouter(cfg *config.Config) *Router {
	return &Router{
		mux: chi.NewRouter(),
		cfg: cfg,
		provider: ghananlp.New(ghananlp.Config{
			APIKey:            cfg.GhanaNLP.APIKey,
			TranslateURL:      cfg.GhanaNLP.TranslateURL,
			SynthesizeURL:     cfg.GhanaNLP.SynthesizeURL,
			TranslateTimeout:  cfg.GhanaNLP.TranslateTimeout,
			SynthesizeTimeout: cfg.GhanaNLP.SynthesizeTimeout,
		}),
	}
}

func (rt *Router) Setup() http.Handler {
	r := rt.mux

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logging)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS(rt.cfg.CORS.AllowedOrigins))

	r.Get("/", handlers.Root)

	// Swagger UI — doc.json is generated by `swag init` at build time.
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	translateH := handlers.NewTranslateHandler(rt.provider)
	speechH := handlers.NewSpeechHandler(rt.provider)
	languagesH := handlers.NewLanguagesHandler()
	healthH := handlers.NewHealthHandler(rt.provider)

	r.Route("/api", func(r chi.Router) {
		r.Post("/translate", translateH.Translate)
		r.Get("/languages", languagesH.List)
		r.Post("/text-to-speech", speechH.Synthesize)
		r.Get("/health", healthH.Health)
	})

	return r
}
