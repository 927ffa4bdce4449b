package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/taskwell/tasks-api/internal/api"
	apiMiddleware "github.com/taskwell/tasks-api/internal/api/middleware"
	"github.com/taskwell/tasks-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware. CORS runs first so even preflight and
	// error responses carry the permissive headers; the body assembler
	// runs last so handlers always see a fully accumulated body.
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.CORS)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.Recoverer)
	r.Use(apiMiddleware.BodyAssembler(app.config.Server.MaxBodyBytes, app.config.Server.BodyChunkBytes))

	// Create API handlers using the application's dependencies
	taskHandler := api.NewTaskHandler(app.taskStore, app.logger)
	healthHandler := api.NewHealthHandler(serviceName, serviceVersion, app.logger)
	docsHandler := api.NewDocsHandler(app.logger)

	// Register routes
	r.Get("/health", healthHandler.Health)
	r.Get("/", docsHandler.Docs)
	r.Get("/docs", docsHandler.Docs)

	r.Route("/tasks", func(r chi.Router) {
		r.Get("/", taskHandler.ListTasks)
		r.Post("/", taskHandler.CreateTask)
		r.Get("/stats", taskHandler.GetTaskStats)
		r.Get("/{id}", taskHandler.GetTask)
		r.Put("/{id}", taskHandler.UpdateTask)
		r.Delete("/{id}", taskHandler.DeleteTask)
	})

	// Unknown routes and unmatched methods both produce the JSON 404
	// envelope rather than chi's plain-text defaults.
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithError(w, r, http.StatusNotFound, "Endpoint not found")
	})

	return r
}
