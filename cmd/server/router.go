package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/scry-cards/internal/api"
	apiMiddleware "github.com/phrazzld/scry-cards/internal/api/middleware"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	cardHandler := api.NewCardHandler(app.cardService, app.logger)
	reviewHandler := api.NewReviewHandler(app.cardReviewService, app.logger)
	statsHandler := api.NewStatsHandler(app.cardService, app.progressService, app.logger)

	r.Route("/api", func(r chi.Router) {
		// Card management endpoints
		r.Post("/cards", cardHandler.CreateCard)
		r.Get("/cards", cardHandler.ListCards)
		r.Get("/cards/search", cardHandler.SearchCards)
		r.Get("/cards/{id}", cardHandler.GetCard)
		r.Delete("/cards/{id}", cardHandler.DeleteCard)
		r.Put("/cards/{id}/archive", cardHandler.SetArchived)
		r.Post("/cards/{id}/tags", cardHandler.AddTag)
		r.Delete("/cards/{id}/tags/{tag}", cardHandler.RemoveTag)

		// Card review endpoints
		r.Get("/cards/next", reviewHandler.GetNextReviewCard)
		r.Post("/cards/{id}/answer", reviewHandler.SubmitAnswer)
		r.Get("/cards/{id}/reviews", reviewHandler.GetHistory)

		r.Get("/stats", statsHandler.GetStats)
		r.Get("/progress", statsHandler.GetProgress)
	})

	r.Get("/health", statsHandler.Health)

	return r
}
