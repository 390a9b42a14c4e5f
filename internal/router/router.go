package router

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"uidgen/internal/handler"
	"uidgen/internal/middleware"
)

// New создаёт и настраивает chi-роутер со всеми маршрутами и middleware.
func New(svc handler.UIDService, logger *slog.Logger) chi.Router {
	generateH := handler.NewGenerateHandler(svc)
	parseH := handler.NewParseHandler(svc)
	healthH := handler.NewHealthHandler(svc)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(logger))

	r.Get("/health", healthH.Health)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	r.Route("/api/v1/uid", func(r chi.Router) {
		r.Get("/", generateH.Generate)
		r.Get("/batch", generateH.Batch)
		r.Get("/{uid}", parseH.Parse)
	})

	return r
}
