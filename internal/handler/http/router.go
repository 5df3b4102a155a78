package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Fylinde/brand-service/internal/service"
	"github.com/Fylinde/brand-service/pkg/health"
	"github.com/Fylinde/brand-service/pkg/middleware"
)

// NewRouter creates a chi router with all brand service routes registered.
func NewRouter(
	brandService *service.BrandService,
	healthHandler *health.Handler,
	logger *slog.Logger,
	defaultLimit, maxLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS)
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("brand"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Brand API endpoints
	brandHandler := NewBrandHandler(brandService, logger, defaultLimit, maxLimit)

	r.Route("/api/v1/brands", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.CacheControl(30))

		r.Post("/", brandHandler.CreateBrand)
		r.Get("/", brandHandler.ListBrands)

		r.Get("/{id}", brandHandler.GetBrand)
		r.Put("/{id}", brandHandler.UpdateBrand)
		r.Delete("/{id}", brandHandler.DeleteBrand)
		r.Post("/{id}/activate", brandHandler.ActivateBrand)
		r.Post("/{id}/deactivate", brandHandler.DeactivateBrand)
	})

	return r
}
