package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riskops-lab/themis/pkg/usecase"
	"github.com/riskops-lab/themis/pkg/utils/logging"
	"github.com/riskops-lab/themis/pkg/utils/safe"
)

type Server struct {
	router *chi.Mux
	uc     *usecase.UseCases
}

type Options func(*Server)

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/assess", func(r chi.Router) {
			r.Post("/qualitative", s.assessQualitative)
			r.Post("/quantitative", s.assessQuantitative)
		})

		r.Route("/register", func(r chi.Router) {
			r.Get("/", s.listRisks)
			r.Post("/", s.addRisk)
			r.Get("/export", s.exportRegister)
			r.Post("/import", s.importRegister)
			r.Delete("/", s.clearRegister)

			r.Route("/{riskID}", func(r chi.Router) {
				r.Get("/", s.getRisk)
				r.Put("/", s.updateRisk)
				r.Patch("/status", s.updateRiskStatus)
				r.Delete("/", s.deleteRisk)
			})
		})

		r.Get("/heatmap", s.heatmap)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	safe.Write(r.Context(), w, []byte(`{"status":"ok"}`))
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}
