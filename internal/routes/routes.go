package routes

import (
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/handlers"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/middleware"
	"github.com/Vasanthadithya-mundrathi/AI-journal-COSC/internal/services"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

type Deps struct {
	ServiceName string
	Version     string
	Store       *services.EntryStore
	Journal     *handlers.JournalHandler
	Gatherer    prometheus.Gatherer // nil disables /metrics
	Logger      *logrus.Logger

	AllowedOrigins []string
	// Production adds security headers and per-IP rate limiting; the
	// limiter cleanup goroutine stops when Stop is closed.
	Production bool
	Stop       <-chan struct{}
}

// NewRouter builds the chi router with the full middleware stack.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.CORS(deps.AllowedOrigins))

	if deps.Production {
		for _, mw := range middleware.ProductionSecurity(deps.Stop) {
			r.Use(mw)
		}
	}

	SetupRoutes(r, deps)
	return r
}

func SetupRoutes(r chi.Router, deps Deps) {
	r.Get("/", handlers.Root)
	r.Get("/health", handlers.Health(deps.ServiceName, deps.Version, deps.Store))
	if deps.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	// Journaling routes
	r.Route("/api/journal", func(r chi.Router) {
		r.Post("/entries", deps.Journal.CreateEntry)
		r.Get("/entries", deps.Journal.ListEntries)
		r.Get("/entries/{entryID}", deps.Journal.GetEntry)
		r.Delete("/entries/{entryID}", deps.Journal.DeleteEntry)
		r.Post("/analyze", deps.Journal.AnalyzeText)
	})
}
